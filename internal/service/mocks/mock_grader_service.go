package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"psdgrader/internal/model"
	"psdgrader/internal/service"
)

type MockGraderService struct {
	mock.Mock
}

var _ service.GraderService = (*MockGraderService)(nil)

func (m *MockGraderService) GradeBatch(ctx context.Context, uploads []model.Upload, c model.Criteria) (*model.BatchReport, error) {
	args := m.Called(ctx, uploads, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BatchReport), args.Error(1)
}

func (m *MockGraderService) Analyze(ctx context.Context, u model.Upload) ([]service.AnalyzedFile, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.AnalyzedFile), args.Error(1)
}
