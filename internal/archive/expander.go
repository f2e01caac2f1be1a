// Package archive expands uploaded containers into independently analyzed documents.
package archive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"golang.org/x/sync/errgroup"

	"psdgrader/internal/model"
)

var (
	ErrArchive       = errors.New("archive: unreadable container")
	ErrEntryTooLarge = errors.New("archive: entry exceeds size limit")
)

// Error reports a container that could not be opened. It matches ErrArchive.
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %v", ErrArchive, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool { return target == ErrArchive }

// DocumentAnalyzer analyzes one document in isolation.
type DocumentAnalyzer interface {
	Analyze(ctx context.Context, doc model.RawDocument) (*model.AnalysisResult, error)
}

// Item is the outcome for one document entry. Exactly one of Analysis and Err is set.
type Item struct {
	Name     string
	Filename string
	Analysis *model.AnalysisResult
	Err      error
}

// Expander walks a container and analyzes its document entries.
type Expander struct {
	reader       Reader
	analyzer     DocumentAnalyzer
	maxEntrySize int64
	workers      int
}

// Option configures an Expander.
type Option func(*Expander)

// WithWorkers analyzes up to n entries concurrently. Item order is unaffected.
func WithWorkers(n int) Option {
	return func(x *Expander) {
		if n > 0 {
			x.workers = n
		}
	}
}

// NewExpander constructs an Expander. maxEntrySize <= 0 disables the size limit.
func NewExpander(r Reader, a DocumentAnalyzer, maxEntrySize int64, opts ...Option) *Expander {
	x := &Expander{reader: r, analyzer: a, maxEntrySize: maxEntrySize, workers: 1}
	for _, o := range opts {
		o(x)
	}
	return x
}

// Expand returns one Item per document entry, in stored order. OS artifacts, directories and
// other files are skipped silently. A failing entry yields an Item with Err set and does not
// stop the walk.
func (x *Expander) Expand(ctx context.Context, data []byte) ([]Item, error) {
	entries, err := x.reader.Entries(data)
	if err != nil {
		return nil, &Error{Err: err}
	}

	var docs []Entry
	for _, e := range entries {
		if e.IsDir || strings.HasSuffix(e.Name, "/") || IsArtifact(e.Name) || !IsDocument(e.Name) {
			continue
		}
		docs = append(docs, e)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	items := make([]Item, len(docs))
	var g errgroup.Group
	g.SetLimit(x.workers)
	for i, e := range docs {
		g.Go(func() error {
			items[i] = x.expandEntry(ctx, e)
			return nil
		})
	}
	_ = g.Wait()
	return items, ctx.Err()
}

func (x *Expander) expandEntry(ctx context.Context, e Entry) (item Item) {
	item = Item{Name: e.Name, Filename: path.Base(strings.ReplaceAll(e.Name, "\\", "/"))}
	defer func() {
		if r := recover(); r != nil {
			item.Analysis = nil
			item.Err = fmt.Errorf("entry %s: panic: %v", e.Name, r)
		}
	}()

	data, err := x.read(e)
	if err != nil {
		item.Err = fmt.Errorf("read entry %s: %w", e.Name, err)
		return item
	}
	res, err := x.analyzer.Analyze(ctx, model.RawDocument{Filename: item.Filename, Data: data})
	if err != nil {
		item.Err = err
		return item
	}
	item.Analysis = res
	return item
}

func (x *Expander) read(e Entry) ([]byte, error) {
	if x.maxEntrySize > 0 && e.Size > x.maxEntrySize {
		return nil, ErrEntryTooLarge
	}
	rc, err := e.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var r io.Reader = rc
	if x.maxEntrySize > 0 {
		r = io.LimitReader(rc, x.maxEntrySize+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if x.maxEntrySize > 0 && int64(len(data)) > x.maxEntrySize {
		return nil, ErrEntryTooLarge
	}
	return data, nil
}
