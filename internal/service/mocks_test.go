package service

import (
	"github.com/phrazzld/unitconv/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockConversionTable mocks the ConversionTable interface
type MockConversionTable struct {
	mock.Mock
}

func (m *MockConversionTable) Categories() []domain.CategoryInfo {
	args := m.Called()
	return args.Get(0).([]domain.CategoryInfo)
}

func (m *MockConversionTable) Category(name string) (domain.Category, error) {
	args := m.Called(name)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *MockConversionTable) CategoriesOf(unit string) []string {
	args := m.Called(unit)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *MockConversionTable) Resolve(req domain.ConversionRequest) (*domain.Conversion, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversion), args.Error(1)
}

// MockMetricsRecorder mocks the MetricsRecorder interface
type MockMetricsRecorder struct {
	mock.Mock
}

func (m *MockMetricsRecorder) ObserveConversion(category, outcome string, seconds float64) {
	m.Called(category, outcome, seconds)
}
