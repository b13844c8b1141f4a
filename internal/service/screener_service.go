package service

import (
	"context"
	"fmt"

	"finlens/internal/domain"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultScreenerLimit applies when the caller omits the limit parameter.
	DefaultScreenerLimit = 25
	// MaxScreenerLimit bounds a single screener response.
	MaxScreenerLimit = 500
)

// RowFetcher retrieves all rows of the screener export.
type RowFetcher interface {
	FetchRows(ctx context.Context) ([]domain.ScreenerRow, error)
}

// ScreenerService fetches the export and truncates it to the requested
// row count.
type ScreenerService struct {
	tracer  trace.Tracer
	fetcher RowFetcher
}

func NewScreenerService(tracer trace.Tracer, fetcher RowFetcher) *ScreenerService {
	return &ScreenerService{tracer: tracer, fetcher: fetcher}
}

// GetRows returns at most limit rows. Limits outside [1, MaxScreenerLimit]
// are rejected, never clamped.
func (s *ScreenerService) GetRows(ctx context.Context, limit int) ([]domain.ScreenerRow, error) {
	ctx, span := s.tracer.Start(ctx, "screener-service.get-rows")
	defer span.End()
	span.SetAttributes(attribute.Int("limit", limit))

	if limit < 1 || limit > MaxScreenerLimit {
		return nil, &domain.ValidationError{
			Field:  "limit",
			Reason: fmt.Sprintf("must be between 1 and %d", MaxScreenerLimit),
		}
	}

	rows, err := s.fetcher.FetchRows(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}
