package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	page := NewPage([]string{"a", "b"}, 2, 10, 25)
	assert.Equal(t, 2, page.Pagination.Current)
	assert.Equal(t, 3, page.Pagination.Pages)
	assert.Equal(t, int64(25), page.Pagination.Total)
	assert.Equal(t, 10, page.Pagination.Limit)
}

func TestNewPageEmpty(t *testing.T) {
	page := NewPage([]string{}, 1, 20, 0)
	assert.Equal(t, 1, page.Pagination.Pages)
	assert.Equal(t, int64(0), page.Pagination.Total)
}

func TestNewPageDefaults(t *testing.T) {
	page := NewPage(nil, 0, 0, 40)
	assert.Equal(t, 1, page.Pagination.Current)
	assert.Equal(t, 20, page.Pagination.Limit)
	assert.Equal(t, 2, page.Pagination.Pages)
}
