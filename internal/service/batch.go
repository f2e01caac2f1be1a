// Package service holds the grading use cases: batch grading and the batch report archive.
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"psdgrader/internal/model"
	"psdgrader/internal/repository"
	"psdgrader/internal/storage"
)

var (
	ErrIDRequired = errors.New("id is required")
	ErrNotFound   = errors.New("batch not found")
	ErrReportNil  = errors.New("report is nil")
)

// ReportURLExpiry is the lifetime of presigned report download URLs.
const ReportURLExpiry = 15 * time.Minute

// BatchListResult is one page of archived batches.
type BatchListResult struct {
	Items []model.Batch `json:"data"`
	Total int           `json:"total"`
}

// BatchDetail is an archived batch with its full report.
type BatchDetail struct {
	Batch     *model.Batch       `json:"batch"`
	Report    *model.BatchReport `json:"report"`
	ReportURL string             `json:"report_url,omitempty"`
}

// BatchService archives graded batches: the JSON report in object storage, the summary row
// in the repository.
type BatchService interface {
	// Save stores report and its summary row, removing the object again if the row insert fails.
	Save(ctx context.Context, report *model.BatchReport) (*model.Batch, error)

	// List returns archived batches newest first.
	List(ctx context.Context, limit, offset int) (*BatchListResult, error)

	// Get loads a batch and its report.
	Get(ctx context.Context, id string) (*BatchDetail, error)

	// Delete removes the report object, then the summary row.
	Delete(ctx context.Context, id string) error
}

type batchService struct {
	store storage.Storage
	repo  repository.BatchRepository
}

// NewBatchService constructs a BatchService.
func NewBatchService(store storage.Storage, repo repository.BatchRepository) BatchService {
	return &batchService{store: store, repo: repo}
}

func (s *batchService) Save(ctx context.Context, report *model.BatchReport) (*model.Batch, error) {
	if report == nil {
		return nil, ErrReportNil
	}
	if report.ID == "" {
		return nil, ErrIDRequired
	}

	payload, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}
	key := storage.ReportKey(report.ID)
	obj, err := s.store.Put(ctx, key, bytes.NewReader(payload), storage.PutObjectOptions{
		Size:        int64(len(payload)),
		ContentType: "application/json",
		Metadata:    map[string]string{"batch-id": report.ID},
	})
	if err != nil {
		return nil, fmt.Errorf("upload report: %w", err)
	}

	stored, err := s.repo.Create(ctx, &model.Batch{
		ID:           report.ID,
		TotalFiles:   report.Summary.TotalFiles,
		AverageScore: report.Summary.AverageScore,
		PassedCount:  report.Summary.PassedCount,
		FailedCount:  report.Summary.FailedCount,
		ReportPath:   obj.Key,
		CreatedAt:    report.CreatedAt,
	})
	if err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

func (s *batchService) List(ctx context.Context, limit, offset int) (*BatchListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &BatchListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *batchService) find(ctx context.Context, id string) (*model.Batch, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	b, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return b, err
}

func (s *batchService) Get(ctx context.Context, id string) (*BatchDetail, error) {
	b, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	rc, _, err := s.store.Get(ctx, b.ReportPath)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: report object missing", ErrNotFound)
		}
		return nil, fmt.Errorf("download report: %w", err)
	}
	defer rc.Close()

	var report model.BatchReport
	if err := json.NewDecoder(rc).Decode(&report); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}

	detail := &BatchDetail{Batch: b, Report: &report}
	// A missing presigned URL does not make the report unavailable.
	if u, err := s.store.PresignGet(ctx, b.ReportPath, ReportURLExpiry); err == nil {
		detail.ReportURL = u
	}
	return detail, nil
}

func (s *batchService) Delete(ctx context.Context, id string) error {
	b, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	// Storage first: a failed delete keeps the row pointing at the object.
	if err := s.store.Delete(ctx, b.ReportPath); err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	return nil
}
