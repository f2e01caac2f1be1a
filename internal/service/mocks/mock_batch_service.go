package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"psdgrader/internal/model"
	"psdgrader/internal/service"
)

type MockBatchService struct {
	mock.Mock
}

var _ service.BatchService = (*MockBatchService)(nil)

func (m *MockBatchService) Save(ctx context.Context, report *model.BatchReport) (*model.Batch, error) {
	args := m.Called(ctx, report)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Batch), args.Error(1)
}

func (m *MockBatchService) List(ctx context.Context, limit, offset int) (*service.BatchListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BatchListResult), args.Error(1)
}

func (m *MockBatchService) Get(ctx context.Context, id string) (*service.BatchDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BatchDetail), args.Error(1)
}

func (m *MockBatchService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
