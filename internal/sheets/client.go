package sheets

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/agnikas07/HustleBot/internal/domain/entity"
)

// Client reads the activity tracking worksheet and converts rows into
// header-keyed records: every header present as a key, short rows padded
// with empty strings. A column only counts as missing when its header is
// absent from the sheet entirely.
type Client struct {
	svc           *sheetsapi.Service
	spreadsheetID string
	worksheet     string
}

// New builds a read-only Sheets client from a service account credentials
// file.
func New(ctx context.Context, credentialsFile, spreadsheetID, worksheet string) (*Client, error) {
	svc, err := sheetsapi.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheetsapi.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		worksheet:     worksheet,
	}, nil
}

// FetchRecords re-reads the full worksheet and returns its data rows.
func (c *Client) FetchRecords(ctx context.Context) ([]entity.RawRecord, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, c.worksheet).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet %q: %w", c.worksheet, err)
	}

	return RecordsFromRows(resp.Values), nil
}

// RecordsFromRows keys each data row by the first (header) row. Exported
// separately so the conversion is testable without a live service.
func RecordsFromRows(rows [][]interface{}) []entity.RawRecord {
	if len(rows) == 0 {
		return nil
	}

	headers := make([]string, 0, len(rows[0]))
	for _, cell := range rows[0] {
		headers = append(headers, strings.TrimSpace(fmt.Sprint(cell)))
	}

	records := make([]entity.RawRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(entity.RawRecord, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			if i < len(row) {
				record[header] = fmt.Sprint(row[i])
			} else {
				record[header] = ""
			}
		}
		records = append(records, record)
	}

	return records
}
