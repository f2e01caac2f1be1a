package cli

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"psdgrader/internal/config"
	"psdgrader/internal/model"
	"psdgrader/internal/psd"
	"psdgrader/internal/service"
)

func psdHeader(width, height uint32) []byte {
	b := make([]byte, psd.HeaderSize)
	copy(b, psd.Signature)
	binary.BigEndian.PutUint16(b[4:], 1)
	binary.BigEndian.PutUint16(b[12:], 3)
	binary.BigEndian.PutUint32(b[14:], height)
	binary.BigEndian.PutUint32(b[18:], width)
	binary.BigEndian.PutUint16(b[22:], 8)
	binary.BigEndian.PutUint16(b[24:], 3)
	return b
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, data, 0o600))
	return p
}

// run executes the command tree with a decoder that always fails, so documents are read
// through the header fallback.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfg := &config.AppConfig{Grader: config.GraderConfig{Workers: 2, PassThreshold: 70, PatternCacheSize: 8}}
	dec := psd.DecoderFunc(func([]byte, psd.DecodeOptions) (*psd.Tree, error) {
		return nil, errors.New("unsupported compression")
	})
	cmd := newRootCommand(&env{cfg: cfg, decoder: dec})

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGrade(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.psd", psdHeader(1920, 1080))
	b := writeFile(t, dir, "b.psd", psdHeader(800, 600))
	criteria := writeFile(t, dir, "criteria.yaml", []byte("technical:\n  enabled: true\n  width: 1920\n  height: 1080\n"))
	presets := writeFile(t, dir, "presets.yaml", []byte("presets:\n  hd:\n    technical: {enabled: true, width: 1920}\n"))

	t.Run("json with criteria file", func(t *testing.T) {
		out, err := run(t, "grade", "--criteria", criteria, a, b)
		require.NoError(t, err)

		var report model.BatchReport
		require.NoError(t, json.Unmarshal([]byte(out), &report))
		require.Len(t, report.Results, 2)
		assert.Equal(t, "a.psd", report.Results[0].Filename)
		assert.Equal(t, 100, report.Results[0].Percentage)
		assert.Equal(t, 0, report.Results[1].Percentage)
		assert.Equal(t, model.BatchSummary{TotalFiles: 2, AverageScore: 50, PassedCount: 1, FailedCount: 1}, report.Summary)
	})

	t.Run("preset", func(t *testing.T) {
		out, err := run(t, "grade", "--presets", presets, "--preset", "hd", b)
		require.NoError(t, err)

		var report model.BatchReport
		require.NoError(t, json.Unmarshal([]byte(out), &report))
		assert.Equal(t, 1920, report.Criteria.Technical.Width)
		assert.Equal(t, 0, report.Results[0].Percentage)
	})

	t.Run("csv", func(t *testing.T) {
		out, err := run(t, "grade", "--format", "csv", "--criteria", criteria, a)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 2)
		assert.True(t, strings.HasPrefix(lines[0], "Filename,"))
		assert.True(t, strings.HasPrefix(lines[1], "a.psd,"))
	})

	t.Run("unknown preset", func(t *testing.T) {
		_, err := run(t, "grade", "--presets", presets, "--preset", "nope", a)
		assert.ErrorIs(t, err, config.ErrPresetNotFound)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := run(t, "grade", "--format", "xml", a)
		assert.ErrorContains(t, err, "unknown format")
	})

	t.Run("criteria and preset exclusive", func(t *testing.T) {
		_, err := run(t, "grade", "--criteria", criteria, "--preset", "hd", a)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := run(t, "grade", filepath.Join(dir, "absent.psd"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("no args", func(t *testing.T) {
		_, err := run(t, "grade")
		assert.Error(t, err)
	})
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "poster.psd", psdHeader(640, 480))

	out, err := run(t, "inspect", p)
	require.NoError(t, err)

	var files []service.AnalyzedFile
	require.NoError(t, json.Unmarshal([]byte(out), &files))
	require.Len(t, files, 1)
	assert.Equal(t, "poster.psd", files[0].Filename)
	require.NotNil(t, files[0].Analysis)
	assert.Equal(t, model.Dimensions{Width: 640, Height: 480}, files[0].Analysis.Dimensions)
	assert.True(t, files[0].Analysis.IsLimitedParse)

	t.Run("unsupported", func(t *testing.T) {
		txt := writeFile(t, dir, "notes.txt", []byte("hi"))
		_, err := run(t, "inspect", txt)
		assert.ErrorIs(t, err, service.ErrUnsupportedUpload)
	})
}

func TestDecodeName(t *testing.T) {
	out, err := run(t, "decode-name", "smithJohn_LATE_123_456_poster.psd", "poster.psd")
	require.NoError(t, err)

	var got []decodedName
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.True(t, got[0].Recognized)
	assert.Equal(t, "smith", got[0].Info.FirstNameGuess)
	assert.Equal(t, "John", got[0].Info.LastNameGuess)
	assert.True(t, got[0].Info.IsLate)
	assert.False(t, got[1].Recognized)
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		matched []bool
		wantErr bool
	}{
		{
			name:    "template",
			args:    []string{"match", "-p", "{LASTNAME}_{NUMBER}", "smith_1.psd", "smith.psd"},
			matched: []bool{true, false},
		},
		{
			name:    "exact case-sensitive",
			args:    []string{"match", "-p", "Poster", "-t", "exact", "--case-sensitive", "Poster.psd", "poster.psd"},
			matched: []bool{true, false},
		},
		{
			name:    "invalid regex",
			args:    []string{"match", "-p", "([", "-t", "regex", "a.psd"},
			wantErr: true,
		},
		{
			name:    "pattern required",
			args:    []string{"match", "a.psd"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			var got []matchResult
			require.NoError(t, json.Unmarshal([]byte(out), &got))
			require.Len(t, got, len(tt.matched))
			for i, want := range tt.matched {
				assert.Equal(t, want, got[i].Matched, got[i].Filename)
			}
		})
	}
}
