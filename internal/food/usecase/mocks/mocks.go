// Package mocks provides mock implementations of the food use case interfaces for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	foodDomain "github.com/foodshare/server/internal/food/domain"
)

// MockFoodRepository is a mock implementation of FoodRepository.
type MockFoodRepository struct {
	mock.Mock
}

// NewMockFoodRepository creates a MockFoodRepository that asserts its expectations on cleanup.
func NewMockFoodRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFoodRepository {
	m := &MockFoodRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockFoodRepository) List(ctx context.Context, filter foodDomain.ListFilter) ([]*foodDomain.Food, error) {
	args := m.Called(ctx, filter)
	return foodsOrNil(args.Get(0)), args.Error(1)
}

func (m *MockFoodRepository) ListByDonor(ctx context.Context, donorEmail string) ([]*foodDomain.Food, error) {
	args := m.Called(ctx, donorEmail)
	return foodsOrNil(args.Get(0)), args.Error(1)
}

func (m *MockFoodRepository) Get(ctx context.Context, id string) (*foodDomain.Food, error) {
	args := m.Called(ctx, id)
	return foodOrNil(args.Get(0)), args.Error(1)
}

func (m *MockFoodRepository) Create(ctx context.Context, food *foodDomain.Food) error {
	args := m.Called(ctx, food)
	return args.Error(0)
}

func (m *MockFoodRepository) Update(
	ctx context.Context,
	id string,
	update *foodDomain.FoodUpdate,
) (*foodDomain.UpdateResult, error) {
	args := m.Called(ctx, id, update)
	return updateResultOrNil(args.Get(0)), args.Error(1)
}

func (m *MockFoodRepository) Delete(ctx context.Context, id string) (*foodDomain.DeleteResult, error) {
	args := m.Called(ctx, id)
	return deleteResultOrNil(args.Get(0)), args.Error(1)
}

// MockFoodUseCase is a mock implementation of FoodUseCase.
type MockFoodUseCase struct {
	mock.Mock
}

// NewMockFoodUseCase creates a MockFoodUseCase that asserts its expectations on cleanup.
func NewMockFoodUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFoodUseCase {
	m := &MockFoodUseCase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockFoodUseCase) List(ctx context.Context, filter foodDomain.ListFilter) ([]*foodDomain.Food, error) {
	args := m.Called(ctx, filter)
	return foodsOrNil(args.Get(0)), args.Error(1)
}

func (m *MockFoodUseCase) ListByDonor(ctx context.Context, donorEmail string) ([]*foodDomain.Food, error) {
	args := m.Called(ctx, donorEmail)
	return foodsOrNil(args.Get(0)), args.Error(1)
}

func (m *MockFoodUseCase) Get(ctx context.Context, id string) (*foodDomain.Food, error) {
	args := m.Called(ctx, id)
	return foodOrNil(args.Get(0)), args.Error(1)
}

func (m *MockFoodUseCase) Create(ctx context.Context, food *foodDomain.Food) error {
	args := m.Called(ctx, food)
	return args.Error(0)
}

func (m *MockFoodUseCase) Update(
	ctx context.Context,
	id string,
	update *foodDomain.FoodUpdate,
) (*foodDomain.UpdateResult, error) {
	args := m.Called(ctx, id, update)
	return updateResultOrNil(args.Get(0)), args.Error(1)
}

func (m *MockFoodUseCase) Delete(ctx context.Context, id string) (*foodDomain.DeleteResult, error) {
	args := m.Called(ctx, id)
	return deleteResultOrNil(args.Get(0)), args.Error(1)
}

func foodsOrNil(v any) []*foodDomain.Food {
	if v == nil {
		return nil
	}
	return v.([]*foodDomain.Food)
}

func foodOrNil(v any) *foodDomain.Food {
	if v == nil {
		return nil
	}
	return v.(*foodDomain.Food)
}

func updateResultOrNil(v any) *foodDomain.UpdateResult {
	if v == nil {
		return nil
	}
	return v.(*foodDomain.UpdateResult)
}

func deleteResultOrNil(v any) *foodDomain.DeleteResult {
	if v == nil {
		return nil
	}
	return v.(*foodDomain.DeleteResult)
}
