package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/phrazzld/unitconv/internal/domain"
	"github.com/phrazzld/unitconv/internal/domain/units"
	"github.com/phrazzld/unitconv/internal/platform/logger"
	"github.com/phrazzld/unitconv/internal/platform/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, recorder MetricsRecorder) ConversionService {
	t.Helper()
	svc, err := NewConversionService(units.Default(), recorder, nil)
	require.NoError(t, err)
	return svc
}

func TestNewConversionService_NilTable(t *testing.T) {
	svc, err := NewConversionService(nil, nil, nil)
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestConversionService_Categories(t *testing.T) {
	svc := newTestService(t, nil)

	cats := svc.Categories(context.Background())

	require.Len(t, cats, 4)
	assert.Equal(t, "Length", cats[0].Name)
	assert.Equal(t, domain.CategoryKindAffine, cats[1].Kind)
	assert.Equal(t, "Kilograms", cats[2].BaseUnit)
}

func TestConversionService_Category(t *testing.T) {
	svc := newTestService(t, nil)

	c, err := svc.Category(context.Background(), " weight ")
	require.NoError(t, err)
	assert.Equal(t, "Weight", c.Name)
	assert.Len(t, c.Units, 6)
	assert.Equal(t, "Kilograms", c.Units[0].Name)

	_, err = svc.Category(context.Background(), "Speed")
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
}

func TestConversionService_CategoryUnexpectedErrorIsWrapped(t *testing.T) {
	table := &MockConversionTable{}
	boom := errors.New("table corrupted")
	table.On("Category", "Length").Return(domain.Category{}, boom)

	svc, err := NewConversionService(table, nil, nil)
	require.NoError(t, err)

	_, err = svc.Category(context.Background(), "Length")

	var svcErr *ConversionServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "get_category", svcErr.Operation)
	assert.ErrorIs(t, err, boom)
	table.AssertExpectations(t)
}

func TestConversionService_Convert(t *testing.T) {
	recorder := &MockMetricsRecorder{}
	recorder.On("ObserveConversion", "Length", metrics.OutcomeSuccess, mock.AnythingOfType("float64")).Return()
	svc := newTestService(t, recorder)

	conv, err := svc.Convert(context.Background(), domain.ConversionRequest{
		Category: "Length",
		From:     "Meters",
		To:       "Kilometers",
		Value:    1000,
	})

	require.NoError(t, err)
	assert.Equal(t, 1.0, conv.Result)
	assert.Equal(t, "Kilometers", conv.To.Name)
	recorder.AssertExpectations(t)
}

func TestConversionService_ConvertErrors(t *testing.T) {
	tests := []struct {
		name            string
		req             domain.ConversionRequest
		wantErr         error
		metricsCategory string
		outcome         string
	}{
		{
			name:            "invalid category",
			req:             domain.ConversionRequest{Category: "Speed", From: "Meters", To: "Feet", Value: 1},
			wantErr:         domain.ErrInvalidCategory,
			metricsCategory: "unknown",
			outcome:         metrics.OutcomeInvalidCategory,
		},
		{
			name:            "invalid unit",
			req:             domain.ConversionRequest{Category: "volume", From: "Barrels", To: "Liters", Value: 1},
			wantErr:         domain.ErrInvalidUnit,
			metricsCategory: "Volume",
			outcome:         metrics.OutcomeInvalidUnit,
		},
		{
			name:            "NaN value",
			req:             domain.ConversionRequest{Category: "Length", From: "Meters", To: "Feet", Value: math.NaN()},
			wantErr:         domain.ErrInvalidValue,
			metricsCategory: "Length",
			outcome:         metrics.OutcomeInvalidValue,
		},
		{
			name:            "infinite value",
			req:             domain.ConversionRequest{Category: "Length", From: "Meters", To: "Feet", Value: math.Inf(-1)},
			wantErr:         domain.ErrInvalidValue,
			metricsCategory: "Length",
			outcome:         metrics.OutcomeInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := &MockMetricsRecorder{}
			recorder.On("ObserveConversion", tt.metricsCategory, tt.outcome, mock.AnythingOfType("float64")).Return()
			svc := newTestService(t, recorder)

			conv, err := svc.Convert(context.Background(), tt.req)

			assert.Nil(t, conv)
			assert.ErrorIs(t, err, tt.wantErr)
			recorder.AssertExpectations(t)
		})
	}
}

func TestConversionService_UnexpectedErrorIsWrapped(t *testing.T) {
	table := &MockConversionTable{}
	table.On("Categories").Return([]domain.CategoryInfo{{Name: "Length"}})
	boom := errors.New("table corrupted")
	table.On("Resolve", mock.Anything).Return(nil, boom)

	recorder := &MockMetricsRecorder{}
	recorder.On("ObserveConversion", "Length", metrics.OutcomeError, mock.AnythingOfType("float64")).Return()

	svc, err := NewConversionService(table, recorder, nil)
	require.NoError(t, err)

	_, err = svc.Convert(context.Background(), domain.ConversionRequest{Category: "Length", From: "a", To: "b", Value: 1})

	var svcErr *ConversionServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "convert", svcErr.Operation)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "conversion service convert failed: failed to convert value: table corrupted", err.Error())
	table.AssertExpectations(t)
	recorder.AssertExpectations(t)
}

func TestConversionService_InferCategory(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	category, err := svc.InferCategory(ctx, "Miles", "km")
	require.NoError(t, err)
	assert.Equal(t, "Length", category)

	category, err = svc.InferCategory(ctx, "°F", "Kelvin")
	require.NoError(t, err)
	assert.Equal(t, "Temperature", category)

	_, err = svc.InferCategory(ctx, "Parsecs", "Meters")
	assert.ErrorIs(t, err, domain.ErrInvalidUnit)

	_, err = svc.InferCategory(ctx, "Meters", "Parsecs")
	assert.ErrorIs(t, err, domain.ErrInvalidUnit)

	_, err = svc.InferCategory(ctx, "Meters", "Liters")
	assert.ErrorIs(t, err, domain.ErrInvalidUnit)
}

func TestConversionService_InferCategoryAmbiguous(t *testing.T) {
	table := &MockConversionTable{}
	table.On("CategoriesOf", "pt").Return([]string{"Volume", "Typography"})
	table.On("CategoriesOf", "Cups").Return([]string{"Volume", "Typography"})

	svc, err := NewConversionService(table, nil, nil)
	require.NoError(t, err)

	_, err = svc.InferCategory(context.Background(), "pt", "Cups")
	assert.ErrorIs(t, err, ErrAmbiguousCategory)
}

func TestConversionService_UsesContextLogger(t *testing.T) {
	buf, l := logger.SetupTestLogger(t)
	svc := newTestService(t, nil)
	ctx := logger.WithLogger(context.Background(), l.With("trace_id", "trace-123"))

	_, err := svc.Convert(ctx, domain.ConversionRequest{Category: "Weight", From: "kg", To: "lb", Value: 1})
	require.NoError(t, err)

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	last := entries[len(entries)-1]
	assert.Equal(t, "conversion completed", last["msg"])
	assert.Equal(t, "trace-123", last["trace_id"])
	assert.InDelta(t, 2.20462, last["result"], 1e-5)
}

func TestNewConversionServiceError(t *testing.T) {
	assert.Nil(t, NewConversionServiceError("convert", "msg", nil))

	sentinel := NewConversionServiceError("convert", "msg", domain.ErrInvalidUnit)
	assert.Same(t, domain.ErrInvalidUnit, sentinel)

	err := NewConversionServiceError("get_category", "failed", errors.New("boom"))
	var svcErr *ConversionServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "get_category", svcErr.Operation)

	noCause := &ConversionServiceError{Operation: "convert", Message: "no cause"}
	assert.Equal(t, "conversion service convert failed: no cause", noCause.Error())
}
