// Package mocks provides mock implementations of the food request use case interfaces for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	requestDomain "github.com/foodshare/server/internal/foodrequest/domain"
)

// MockFoodRequestRepository is a mock implementation of FoodRequestRepository.
type MockFoodRequestRepository struct {
	mock.Mock
}

// NewMockFoodRequestRepository creates a mock that asserts its expectations on cleanup.
func NewMockFoodRequestRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFoodRequestRepository {
	m := &MockFoodRequestRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockFoodRequestRepository) Create(ctx context.Context, request *requestDomain.FoodRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockFoodRequestRepository) ListByUser(
	ctx context.Context,
	userEmail string,
) ([]*requestDomain.FoodRequest, error) {
	args := m.Called(ctx, userEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*requestDomain.FoodRequest), args.Error(1)
}

// MockFoodRequestUseCase is a mock implementation of FoodRequestUseCase.
type MockFoodRequestUseCase struct {
	mock.Mock
}

// NewMockFoodRequestUseCase creates a mock that asserts its expectations on cleanup.
func NewMockFoodRequestUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFoodRequestUseCase {
	m := &MockFoodRequestUseCase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockFoodRequestUseCase) Create(ctx context.Context, request *requestDomain.FoodRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockFoodRequestUseCase) ListByUser(
	ctx context.Context,
	userEmail string,
) ([]*requestDomain.FoodRequest, error) {
	args := m.Called(ctx, userEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*requestDomain.FoodRequest), args.Error(1)
}
