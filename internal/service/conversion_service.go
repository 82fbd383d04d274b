package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/phrazzld/unitconv/internal/domain"
	"github.com/phrazzld/unitconv/internal/platform/logger"
	"github.com/phrazzld/unitconv/internal/platform/metrics"
)

// ConversionTable is the read-only lookup the service converts against.
// *units.Table satisfies it.
type ConversionTable interface {
	// Categories returns the category summaries in display order
	Categories() []domain.CategoryInfo

	// Category returns a copy of a category, looked up case-insensitively
	Category(name string) (domain.Category, error)

	// CategoriesOf returns the categories containing the given unit
	CategoriesOf(unit string) []string

	// Resolve validates a request against the table and converts it
	Resolve(req domain.ConversionRequest) (*domain.Conversion, error)
}

// MetricsRecorder records the outcome of conversions.
type MetricsRecorder interface {
	ObserveConversion(category, outcome string, seconds float64)
}

// ConversionService provides the category -> units -> convert flow.
type ConversionService interface {
	// Categories lists the available categories
	Categories(ctx context.Context) []domain.CategoryInfo

	// Category returns a category under its canonical name, with its units
	// in display order
	Category(ctx context.Context, name string) (domain.Category, error)

	// InferCategory finds the single category containing both units
	InferCategory(ctx context.Context, from, to string) (string, error)

	// Convert performs a conversion
	Convert(ctx context.Context, req domain.ConversionRequest) (*domain.Conversion, error)
}

// ConversionServiceError wraps unexpected errors from the conversion service.
type ConversionServiceError struct {
	// Operation is the operation that failed (e.g., "convert", "get_category")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ConversionServiceError.
func (e *ConversionServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("conversion service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("conversion service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ConversionServiceError) Unwrap() error {
	return e.Err
}

// NewConversionServiceError creates a new ConversionServiceError.
// Known sentinel errors are returned as they are, without wrapping.
func NewConversionServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, domain.ErrInvalidCategory) ||
		errors.Is(err, domain.ErrInvalidUnit) ||
		errors.Is(err, domain.ErrInvalidValue) ||
		errors.Is(err, ErrAmbiguousCategory) {
		return err
	}

	return &ConversionServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// conversionServiceImpl implements the ConversionService interface
type conversionServiceImpl struct {
	table   ConversionTable
	metrics MetricsRecorder
	logger  *slog.Logger
}

// NewConversionService creates a new ConversionService.
// recorder may be nil, in which case no metrics are recorded.
func NewConversionService(
	table ConversionTable,
	recorder MetricsRecorder,
	logger *slog.Logger,
) (ConversionService, error) {
	if table == nil {
		return nil, fmt.Errorf("conversion table cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &conversionServiceImpl{
		table:   table,
		metrics: recorder,
		logger:  logger.With("component", "conversion_service"),
	}, nil
}

// Categories implements ConversionService.Categories
func (s *conversionServiceImpl) Categories(ctx context.Context) []domain.CategoryInfo {
	return s.table.Categories()
}

// Category implements ConversionService.Category
func (s *conversionServiceImpl) Category(ctx context.Context, name string) (domain.Category, error) {
	c, err := s.table.Category(name)
	if err != nil {
		s.log(ctx).Debug("category lookup failed", "category", name, "error", err)
		return domain.Category{}, NewConversionServiceError("get_category", "failed to get category", err)
	}
	return c, nil
}

// InferCategory implements ConversionService.InferCategory
func (s *conversionServiceImpl) InferCategory(ctx context.Context, from, to string) (string, error) {
	fromCategories := s.table.CategoriesOf(from)
	if len(fromCategories) == 0 {
		return "", fmt.Errorf("%w: %q is not a known unit", domain.ErrInvalidUnit, from)
	}

	toCategories := make(map[string]struct{})
	for _, c := range s.table.CategoriesOf(to) {
		toCategories[c] = struct{}{}
	}
	if len(toCategories) == 0 {
		return "", fmt.Errorf("%w: %q is not a known unit", domain.ErrInvalidUnit, to)
	}

	var shared []string
	for _, c := range fromCategories {
		if _, ok := toCategories[c]; ok {
			shared = append(shared, c)
		}
	}

	switch len(shared) {
	case 0:
		return "", fmt.Errorf("%w: %q and %q share no category", domain.ErrInvalidUnit, from, to)
	case 1:
		return shared[0], nil
	default:
		return "", fmt.Errorf("%w: %q and %q appear in %v", ErrAmbiguousCategory, from, to, shared)
	}
}

// Convert implements ConversionService.Convert
func (s *conversionServiceImpl) Convert(
	ctx context.Context,
	req domain.ConversionRequest,
) (*domain.Conversion, error) {
	log := s.log(ctx).With(
		"category", req.Category,
		"from", req.From,
		"to", req.To,
	)

	if err := req.Validate(); err != nil {
		s.observe(req.Category, metrics.OutcomeInvalidValue, 0)
		log.Debug("rejected conversion value", "error", err)
		return nil, err
	}

	start := time.Now()
	conv, err := s.table.Resolve(req)
	elapsed := time.Since(start).Seconds()

	if err != nil {
		s.observe(req.Category, outcomeFor(err), elapsed)
		log.Debug("conversion failed", "error", err)
		return nil, NewConversionServiceError("convert", "failed to convert value", err)
	}

	s.observe(conv.Category, metrics.OutcomeSuccess, elapsed)
	log.Debug("conversion completed",
		"value", conv.Value,
		"result", conv.Result)

	return conv, nil
}

func (s *conversionServiceImpl) log(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, s.logger)
}

func (s *conversionServiceImpl) observe(category, outcome string, seconds float64) {
	if s.metrics == nil {
		return
	}
	s.metrics.ObserveConversion(s.metricsCategory(category), outcome, seconds)
}

// metricsCategory maps client input onto a canonical category name so that
// arbitrary requests cannot create new label values.
func (s *conversionServiceImpl) metricsCategory(category string) string {
	for _, c := range s.table.Categories() {
		if strings.EqualFold(c.Name, strings.TrimSpace(category)) {
			return c.Name
		}
	}
	return "unknown"
}

func outcomeFor(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCategory):
		return metrics.OutcomeInvalidCategory
	case errors.Is(err, domain.ErrInvalidUnit):
		return metrics.OutcomeInvalidUnit
	case errors.Is(err, domain.ErrInvalidValue):
		return metrics.OutcomeInvalidValue
	default:
		return metrics.OutcomeError
	}
}
