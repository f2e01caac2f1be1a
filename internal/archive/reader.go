package archive

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zip"
)

// Entry is one member of a container, in stored order.
type Entry struct {
	Name  string
	IsDir bool
	Size  int64
	Open  func() (io.ReadCloser, error)
}

// Reader lists the entries of a container held in memory.
type Reader interface {
	Entries(data []byte) ([]Entry, error)
}

// ZipReader reads zip containers.
type ZipReader struct{}

// Entries returns the zip members in central-directory order.
func (ZipReader) Entries(data []byte) ([]Entry, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(zr.File))
	for _, f := range zr.File {
		entries = append(entries, Entry{
			Name:  f.Name,
			IsDir: f.FileInfo().IsDir(),
			Size:  int64(f.UncompressedSize64),
			Open:  f.Open,
		})
	}
	return entries, nil
}
