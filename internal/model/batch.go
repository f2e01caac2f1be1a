package model

import "time"

// Batch is the archived metadata of a graded batch. The full report lives in object storage
// under ReportPath.
type Batch struct {
	ID           string    `json:"id"`
	TotalFiles   int       `json:"total_files"`
	AverageScore float64   `json:"average_score"`
	PassedCount  int       `json:"passed_count"`
	FailedCount  int       `json:"failed_count"`
	ReportPath   string    `json:"report_path"`
	CreatedAt    time.Time `json:"created_at"`
}
