package model

import "time"

// CheckItem is the per-entry status of a list-valued rule (e.g. one required layer name).
type CheckItem struct {
	Name  string `json:"name"`
	Found bool   `json:"found"`
	Match string `json:"match,omitempty"`
	Hint  string `json:"hint,omitempty"`
}

// CriterionCheck is the outcome of one evaluated rule.
type CriterionCheck struct {
	RuleName       string      `json:"ruleName"`
	Expected       string      `json:"expected"`
	Actual         string      `json:"actual"`
	Passed         bool        `json:"passed"`
	PointsAwarded  float64     `json:"pointsAwarded"`
	PointsPossible float64     `json:"pointsPossible"`
	Items          []CheckItem `json:"items,omitempty"`
	Violations     []string    `json:"violations,omitempty"`
}

// GradingResult is produced once per document and is not mutated after scoring.
type GradingResult struct {
	Filename   string           `json:"filename"`
	Score      float64          `json:"score"`
	MaxScore   float64          `json:"maxScore"`
	Percentage int              `json:"percentage"`
	Checks     []CriterionCheck `json:"checks"`
	Analysis   *AnalysisResult  `json:"analysis,omitempty"`
	Submission *SubmissionInfo  `json:"submission,omitempty"`
	Error      string           `json:"error,omitempty"`
}

// BatchSummary aggregates the results of one batch.
type BatchSummary struct {
	TotalFiles   int     `json:"totalFiles"`
	AverageScore float64 `json:"averageScore"`
	PassedCount  int     `json:"passedCount"`
	FailedCount  int     `json:"failedCount"`
}

// BatchReport is the request-scoped outcome of grading a batch of uploads.
type BatchReport struct {
	ID        string          `json:"id"`
	CreatedAt time.Time       `json:"createdAt"`
	Criteria  Criteria        `json:"criteria"`
	Results   []GradingResult `json:"results"`
	Summary   BatchSummary    `json:"summary"`
}
