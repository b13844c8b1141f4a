package service

import (
	"context"
	"regexp"
	"strings"

	"finlens/internal/domain"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tickerRe = regexp.MustCompile(`^[A-Z0-9.\-]{1,12}$`)

// QuoteFetcher retrieves and parses a ticker's quote page.
type QuoteFetcher interface {
	FetchQuote(ctx context.Context, ticker string) (*domain.TickerQuote, error)
}

// QuoteService validates ticker symbols and delegates to the quote provider.
type QuoteService struct {
	tracer  trace.Tracer
	fetcher QuoteFetcher
}

func NewQuoteService(tracer trace.Tracer, fetcher QuoteFetcher) *QuoteService {
	return &QuoteService{tracer: tracer, fetcher: fetcher}
}

// GetQuote uppercases and validates the ticker, then fetches fundamentals,
// news and the chart URL. The result is rebuilt on every call.
func (s *QuoteService) GetQuote(ctx context.Context, ticker string) (*domain.TickerQuote, error) {
	ctx, span := s.tracer.Start(ctx, "quote-service.get-quote")
	defer span.End()

	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	span.SetAttributes(attribute.String("ticker", ticker))

	if ticker == "" {
		return nil, &domain.ValidationError{Field: "ticker", Reason: "must not be empty"}
	}
	if !tickerRe.MatchString(ticker) {
		return nil, &domain.ValidationError{Field: "ticker", Reason: "must match " + tickerRe.String()}
	}

	return s.fetcher.FetchQuote(ctx, ticker)
}
