package audiofile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateExtension(t *testing.T) {
	assert.NoError(t, ValidateExtension("track.mp3"))
	assert.NoError(t, ValidateExtension("TRACK.FLAC"))
	assert.NoError(t, ValidateExtension("song.m4a"))
	assert.Error(t, ValidateExtension("track.exe"))
	assert.Error(t, ValidateExtension("noextension"))
}

func TestValidateContentRejectsNonAudio(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fake.mp3")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\necho not audio\n"), 0o644))

	assert.Error(t, ValidateContent(path))
}

func TestValidateContentAcceptsMP3Header(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "real.mp3")
	// Minimal ID3v2 header followed by padding.
	head := append([]byte("ID3\x03\x00\x00\x00\x00\x00\x00"), make([]byte, 512)...)
	require.NoError(t, os.WriteFile(path, head, 0o644))

	assert.NoError(t, ValidateContent(path))
}

func TestCleanupToleratesMissingFile(t *testing.T) {
	Cleanup(filepath.Join(t.TempDir(), "never-created.mp3"))
}
