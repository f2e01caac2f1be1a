package archive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"psdgrader/internal/model"
)

type zipFile struct {
	name string
	body string
}

func buildZip(t *testing.T, files ...zipFile) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range files {
		w, err := zw.Create(f.name)
		require.NoError(t, err)
		_, err = w.Write([]byte(f.body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

type fakeAnalyzer struct {
	seen []string
}

func (f *fakeAnalyzer) Analyze(_ context.Context, doc model.RawDocument) (*model.AnalysisResult, error) {
	f.seen = append(f.seen, doc.Filename)
	switch string(doc.Data) {
	case "corrupt":
		return nil, errors.New("unreadable document")
	case "panic":
		panic("decoder bug")
	}
	return &model.AnalysisResult{FileSize: doc.Size()}, nil
}

func TestIsArtifact(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{".DS_Store", true},
		{"folder/.ds_store", true},
		{"Thumbs.db", true},
		{"THUMBS.DB", true},
		{"desktop.ini", true},
		{"Icon\r", true},
		{"._poster.psd", true},
		{"__MACOSX/poster.psd", true},
		{"work/poster.psd~", true},
		{"poster.psd.tmp", true},
		{"poster.BAK", true},
		{"download.psd.crdownload", true},
		{"~$report.docx", true},
		{"poster.psd", false},
		{"class/Smith_A01.psd", false},
		{"thumbs.db.psd", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsArtifact(tt.name))
		})
	}
}

func TestExpand_SkipsArtifactsAndOtherFiles(t *testing.T) {
	data := buildZip(t,
		zipFile{".DS_Store", "junk"},
		zipFile{"__MACOSX/._poster.psd", "junk"},
		zipFile{"readme.txt", "hello"},
		zipFile{"poster.psd", "document"},
	)
	fa := &fakeAnalyzer{}
	items, err := NewExpander(ZipReader{}, fa, 0).Expand(context.Background(), data)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "poster.psd", items[0].Filename)
	assert.NoError(t, items[0].Err)
	assert.EqualValues(t, len("document"), items[0].Analysis.FileSize)
	assert.Equal(t, []string{"poster.psd"}, fa.seen)
}

func TestExpand_EntryFailuresAreIsolated(t *testing.T) {
	data := buildZip(t,
		zipFile{"a.psd", "ok"},
		zipFile{"b.psd", "corrupt"},
		zipFile{"c.psd", "panic"},
		zipFile{"nested/d.PSD", "ok"},
	)
	items, err := NewExpander(ZipReader{}, &fakeAnalyzer{}, 0).Expand(context.Background(), data)
	require.NoError(t, err)
	require.Len(t, items, 4)

	assert.Equal(t, "a.psd", items[0].Name)
	assert.NotNil(t, items[0].Analysis)

	assert.Equal(t, "b.psd", items[1].Name)
	assert.Nil(t, items[1].Analysis)
	assert.EqualError(t, items[1].Err, "unreadable document")

	assert.Equal(t, "c.psd", items[2].Name)
	assert.Nil(t, items[2].Analysis)
	assert.Contains(t, items[2].Err.Error(), "panic")

	assert.Equal(t, "nested/d.PSD", items[3].Name)
	assert.Equal(t, "d.PSD", items[3].Filename)
	assert.NotNil(t, items[3].Analysis)
}

func TestExpand_EntrySizeLimit(t *testing.T) {
	data := buildZip(t,
		zipFile{"big.psd", "0123456789"},
		zipFile{"small.psd", "ok"},
	)
	items, err := NewExpander(ZipReader{}, &fakeAnalyzer{}, 4).Expand(context.Background(), data)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.ErrorIs(t, items[0].Err, ErrEntryTooLarge)
	assert.NoError(t, items[1].Err)
}

func TestExpand_UnreadableContainer(t *testing.T) {
	_, err := NewExpander(ZipReader{}, &fakeAnalyzer{}, 0).Expand(context.Background(), []byte("not a zip"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrArchive)

	var aerr *Error
	assert.ErrorAs(t, err, &aerr)
}

type stubReader struct {
	entries []Entry
}

func (s stubReader) Entries([]byte) ([]Entry, error) { return s.entries, nil }

func TestExpand_DirectoryMarkersAndOpenErrors(t *testing.T) {
	openErr := errors.New("checksum mismatch")
	r := stubReader{entries: []Entry{
		{Name: "folder.psd/", IsDir: true},
		{Name: "broken.psd", Open: func() (io.ReadCloser, error) { return nil, openErr }},
		{Name: "fine.psd", Open: func() (io.ReadCloser, error) { return io.NopCloser(bytes.NewReader([]byte("ok"))), nil }},
	}}
	items, err := NewExpander(r, &fakeAnalyzer{}, 0).Expand(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.ErrorIs(t, items[0].Err, openErr)
	assert.NotNil(t, items[1].Analysis)
}

func TestExpand_CancelledContext(t *testing.T) {
	data := buildZip(t, zipFile{"a.psd", "ok"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	items, err := NewExpander(ZipReader{}, &fakeAnalyzer{}, 0).Expand(ctx, data)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, items)
}

type slowAnalyzer struct {
	inFlight, peak atomic.Int32
}

func (s *slowAnalyzer) Analyze(_ context.Context, doc model.RawDocument) (*model.AnalysisResult, error) {
	n := s.inFlight.Add(1)
	defer s.inFlight.Add(-1)
	for {
		p := s.peak.Load()
		if n <= p || s.peak.CompareAndSwap(p, n) {
			break
		}
	}
	time.Sleep(10 * time.Millisecond)
	return &model.AnalysisResult{ParseNote: doc.Filename}, nil
}

func TestExpand_WorkersPreserveOrder(t *testing.T) {
	var files []zipFile
	for i := 0; i < 12; i++ {
		files = append(files, zipFile{fmt.Sprintf("s%02d.psd", i), "ok"})
	}
	sa := &slowAnalyzer{}
	items, err := NewExpander(ZipReader{}, sa, 0, WithWorkers(4)).Expand(context.Background(), buildZip(t, files...))
	require.NoError(t, err)
	require.Len(t, items, 12)
	for i, it := range items {
		assert.Equal(t, fmt.Sprintf("s%02d.psd", i), it.Analysis.ParseNote)
	}
	assert.LessOrEqual(t, sa.peak.Load(), int32(4))
	assert.Greater(t, sa.peak.Load(), int32(1))
}
