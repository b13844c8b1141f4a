package provider

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"time"

	"finlens/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

// ExportProvider fetches the screener CSV export. The export URL is
// configured once at startup and already carries any auth token and column
// selection.
type ExportProvider struct {
	client    *http.Client
	exportURL string
	tracer    trace.Tracer
}

func NewExportProvider(tracer trace.Tracer, exportURL string, timeout time.Duration) *ExportProvider {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &ExportProvider{
		client:    &http.Client{Timeout: timeout},
		exportURL: exportURL,
		tracer:    tracer,
	}
}

// FetchRows downloads the export and parses it into rows keyed by the header
// columns. Truncation is the caller's concern; all parsed rows are returned.
func (p *ExportProvider) FetchRows(ctx context.Context) ([]domain.ScreenerRow, error) {
	ctx, span := p.tracer.Start(ctx, "export.fetch-rows")
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.exportURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", "text/csv")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, &domain.UpstreamError{URL: p.exportURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.UpstreamError{URL: p.exportURL, StatusCode: resp.StatusCode}
	}

	rows, err := ParseExportCSV(resp.Body)
	if err != nil {
		return nil, &domain.UpstreamError{URL: p.exportURL, Err: err}
	}
	return rows, nil
}

// ParseExportCSV reads CSV text with a header row. The header becomes the
// column set for every row; short records are padded with empty strings.
func ParseExportCSV(r io.Reader) ([]domain.ScreenerRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("export response is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read export header: %w", err)
	}

	rows := []domain.ScreenerRow{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read export row %d: %w", len(rows)+1, err)
		}
		row := make(domain.ScreenerRow, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
