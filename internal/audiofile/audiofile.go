// Package audiofile validates and probes uploaded audio files.
package audiofile

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
)

var allowedExtensions = map[string]bool{
	".mp3": true, ".wav": true, ".flac": true, ".m4a": true, ".aac": true,
}

// Probe is the metadata recovered from an uploaded file's tags.
type Probe struct {
	Title  string
	Artist string
	Album  string
	Genre  string
}

// ValidateExtension checks the file name against the allowed audio
// extensions (mp3/wav/flac/m4a/aac).
func ValidateExtension(name string) error {
	ext := strings.ToLower(filepath.Ext(name))
	if !allowedExtensions[ext] {
		return fmt.Errorf("unsupported audio extension %q", ext)
	}
	return nil
}

// ValidateContent sniffs the stored file's magic bytes; the extension alone
// is caller-controlled and cannot be trusted.
func ValidateContent(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func(f *os.File) {
		if err := f.Close(); err != nil {
			log.Printf("close %s: %v", path, err)
		}
	}(f)

	head := make([]byte, 261)
	n, err := f.Read(head)
	if err != nil {
		return err
	}

	kind, err := filetype.Match(head[:n])
	if err != nil {
		return err
	}
	if kind == types.Unknown || kind.MIME.Type != "audio" {
		return fmt.Errorf("file content is not audio (detected %s)", kind.MIME.Value)
	}
	return nil
}

// ReadTags extracts embedded tag metadata to default missing form fields.
// A tag-less file is not an error; the caller falls back to its own values.
func ReadTags(path string) (*Probe, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func(f *os.File) {
		if err := f.Close(); err != nil {
			log.Printf("close %s: %v", path, err)
		}
	}(f)

	m, err := tag.ReadFrom(f)
	if err != nil {
		return &Probe{}, nil
	}
	return &Probe{
		Title:  m.Title(),
		Artist: m.Artist(),
		Album:  m.Album(),
		Genre:  m.Genre(),
	}, nil
}

// Cleanup removes an orphaned upload after a post-write validation failure.
func Cleanup(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("cleanup orphaned upload %s: %v", path, err)
	}
}
