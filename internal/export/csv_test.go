package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"psdgrader/internal/model"
)

func TestWriteCSV(t *testing.T) {
	results := []model.GradingResult{
		{
			Filename:   "johnSmith_LATE_1_2_poster.psd",
			Score:      15,
			MaxScore:   20,
			Percentage: 75,
			Checks: []model.CriterionCheck{
				{RuleName: "width", Passed: true, PointsAwarded: 10, PointsPossible: 10},
				{RuleName: "fonts", Passed: false, PointsAwarded: 0, PointsPossible: 10},
			},
			Analysis: &model.AnalysisResult{
				Dimensions: model.Dimensions{Width: 800, Height: 600},
				ColorMode:  "RGB",
				Resolution: 72,
				Layers: []model.Layer{
					{Kind: model.LayerRaster, Name: "Background"},
					{Kind: model.LayerText, Name: "Title", Text: &model.TextInfo{Font: "Arial"}},
				},
			},
			Submission: &model.SubmissionInfo{FirstNameGuess: "john", LastNameGuess: "Smith", UserID: "1", IsLate: true},
		},
		{Filename: "broken.psd", MaxScore: 20, Error: "invalid signature"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, results))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, append(append([]string{}, baseHeader...), "width", "fonts"), rows[0])
	assert.Equal(t, []string{
		"johnSmith_LATE_1_2_poster.psd", "john Smith", "1", "true", "15", "20", "75",
		"800", "600", "RGB", "72", "2", "Arial", "", "PASS (10/10)", "FAIL (0/10)",
	}, rows[1])
	assert.Equal(t, []string{
		"broken.psd", "", "", "", "0", "20", "0",
		"", "", "", "", "", "", "invalid signature", "", "",
	}, rows[2])
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteCSV_WriterError(t *testing.T) {
	err := WriteCSV(failingWriter{}, []model.GradingResult{{Filename: "a.psd"}})
	assert.EqualError(t, err, "disk full")
}
