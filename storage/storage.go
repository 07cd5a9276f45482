// Package storage menyimpan blob foto barang di luar database relasional.
package storage

import (
	"context"
	"io"
	"strings"
)

const urlPrefix = "/api/files/"

// ObjectStorage adalah kontrak penyimpanan objek untuk foto barang
type ObjectStorage interface {
	// Upload menyimpan isi r dan mengembalikan ID objek
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)
	Download(ctx context.Context, objectID string) ([]byte, error)
	Delete(ctx context.Context, objectID string) error
}

// URLFor mengubah ID objek menjadi URL publik yang disimpan di kolom foto
func URLFor(objectID string) string {
	return urlPrefix + objectID
}

// ObjectIDFromURL membalik URLFor; mengembalikan false untuk URL asing
func ObjectIDFromURL(url string) (string, bool) {
	if !strings.HasPrefix(url, urlPrefix) {
		return "", false
	}
	id := strings.TrimPrefix(url, urlPrefix)
	return id, id != ""
}
