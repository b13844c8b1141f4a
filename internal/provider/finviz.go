package provider

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"finlens/internal/domain"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	finvizBaseURL = "https://finviz.com"

	// Finviz rejects requests without a conventional browser UA.
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

	chartURLTemplate = finvizBaseURL + "/chart.ashx?t=%s&ty=c&ta=1&p=d"
)

// FinvizProvider fetches and parses Finviz quote pages.
type FinvizProvider struct {
	client  *http.Client
	baseURL string
	tracer  trace.Tracer
}

func NewFinvizProvider(tracer trace.Tracer, timeout time.Duration) *FinvizProvider {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &FinvizProvider{
		client:  &http.Client{Timeout: timeout},
		baseURL: finvizBaseURL,
		tracer:  tracer,
	}
}

// FetchQuote fetches the quote page for a ticker and parses fundamentals,
// news rows and the chart URL. A symbol unknown to the upstream yields
// domain.ErrTickerNotFound.
func (p *FinvizProvider) FetchQuote(ctx context.Context, ticker string) (*domain.TickerQuote, error) {
	ctx, span := p.tracer.Start(ctx, "finviz.fetch-quote")
	defer span.End()
	span.SetAttributes(attribute.String("ticker", ticker))

	url := fmt.Sprintf("%s/quote.ashx?t=%s", p.baseURL, ticker)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, &domain.UpstreamError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", domain.ErrTickerNotFound, ticker)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.UpstreamError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.UpstreamError{URL: url, Err: err}
	}

	return ParseQuotePage(ticker, body)
}

// ChartURL derives the chart image URL for a ticker. No network call.
func ChartURL(ticker string) string {
	return fmt.Sprintf(chartURLTemplate, ticker)
}

// ParseQuotePage extracts fundamentals and news from raw quote page markup.
// A page without the snapshot table is treated as an unknown ticker, since
// the upstream serves a search page instead of a hard 404 for some symbols.
func ParseQuotePage(ticker string, page []byte) (*domain.TickerQuote, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parse quote page for %s: %w", ticker, err)
	}

	quote := parseSnapshotTable(doc)
	if len(quote) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrTickerNotFound, ticker)
	}

	return &domain.TickerQuote{
		Ticker:   ticker,
		Quote:    quote,
		News:     parseNewsTable(doc),
		ChartURL: ChartURL(ticker),
	}, nil
}

// parseSnapshotTable reads the fundamentals table as alternating label/value
// cells, row by row.
func parseSnapshotTable(doc *goquery.Document) domain.Quote {
	quote := domain.Quote{}
	doc.Find(`table[class*="snapshot-table"] tr`).Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		for i := 0; i+1 < cells.Length(); i += 2 {
			label := strings.TrimSpace(cells.Eq(i).Text())
			value := strings.TrimSpace(cells.Eq(i + 1).Text())
			if label != "" {
				quote[label] = value
			}
		}
	})
	return quote
}

// parseNewsTable reads the news rows below the quote. Finviz only prints the
// date on the first headline of a day; later rows carry just a time and
// inherit the previous row's date. A missing news table yields an empty
// list, not an error.
func parseNewsTable(doc *goquery.Document) []domain.NewsItem {
	items := []domain.NewsItem{}
	lastDate := ""
	doc.Find("#news-table tr").Each(func(_ int, row *goquery.Selection) {
		link := row.Find("a").First()
		title := strings.TrimSpace(link.Text())
		if title == "" {
			return
		}
		href, _ := link.Attr("href")

		stamp := strings.TrimSpace(row.Find("td").First().Text())
		date, clock := splitNewsStamp(stamp)
		if date == "" {
			date = lastDate
		} else {
			lastDate = date
		}
		when := strings.TrimSpace(date + " " + clock)

		source := strings.TrimSpace(row.Find("span").Last().Text())
		source = strings.Trim(source, "()")

		items = append(items, domain.NewsItem{
			Date:   when,
			Title:  title,
			Link:   absoluteFinvizURL(href),
			Source: source,
		})
	})
	return items
}

// splitNewsStamp splits a "Jan-02-26 08:30AM" cell into date and time parts.
// Cells holding only a time return an empty date.
func splitNewsStamp(stamp string) (date, clock string) {
	fields := strings.Fields(stamp)
	switch len(fields) {
	case 0:
		return "", ""
	case 1:
		if strings.Contains(fields[0], "-") {
			return fields[0], ""
		}
		return "", fields[0]
	default:
		return fields[0], fields[1]
	}
}

// absoluteFinvizURL resolves relative links (e.g. /news/123/...) against the
// Finviz origin.
func absoluteFinvizURL(href string) string {
	if strings.HasPrefix(href, "/") {
		return finvizBaseURL + href
	}
	return href
}
