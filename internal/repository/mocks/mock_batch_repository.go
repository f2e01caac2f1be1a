package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"psdgrader/internal/model"
	"psdgrader/internal/repository"
)

type MockBatchRepository struct {
	mock.Mock
}

var _ repository.BatchRepository = (*MockBatchRepository)(nil)

func (m *MockBatchRepository) Create(ctx context.Context, b *model.Batch) (*model.Batch, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Batch), args.Error(1)
}

func (m *MockBatchRepository) FindByID(ctx context.Context, id string) (*model.Batch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Batch), args.Error(1)
}

func (m *MockBatchRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Batch], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Batch]), args.Error(1)
}

func (m *MockBatchRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
