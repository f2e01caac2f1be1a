package scoring

import (
	"math"

	"psdgrader/internal/model"
)

// DefaultPassThreshold is the percentage at or above which a document counts as passed.
const DefaultPassThreshold = 70

// Summarize folds per-document results into batch statistics. Errored results count as
// failed with a percentage of 0. averageScore is the mean percentage rounded to one decimal.
func Summarize(results []model.GradingResult, passThreshold int) model.BatchSummary {
	s := model.BatchSummary{TotalFiles: len(results)}
	if len(results) == 0 {
		return s
	}
	var total int
	for _, r := range results {
		if r.Error != "" {
			s.FailedCount++
			continue
		}
		total += r.Percentage
		if r.Percentage >= passThreshold {
			s.PassedCount++
		} else {
			s.FailedCount++
		}
	}
	s.AverageScore = math.Round(float64(total)/float64(len(results))*10) / 10
	return s
}
