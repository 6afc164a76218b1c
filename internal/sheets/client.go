package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"google.golang.org/api/option"
	sheetsv4 "google.golang.org/api/sheets/v4"
)

type Client struct {
	srv                 *sheetsv4.Service
	serviceAccountEmail string
}

// New connects to the Sheets API with a service account credentials file.
// Access is read only.
func New(ctx context.Context, serviceAccountJSONPath string) (*Client, error) {
	data, err := os.ReadFile(serviceAccountJSONPath)
	if err != nil {
		return nil, fmt.Errorf("service account json: %w", err)
	}

	var creds struct {
		ClientEmail string `json:"client_email"`
	}
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("service account json: %w", err)
	}

	c, err := newWithOptions(ctx,
		option.WithCredentialsJSON(data),
		option.WithScopes(sheetsv4.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, err
	}
	c.serviceAccountEmail = creds.ClientEmail
	return c, nil
}

func newWithOptions(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	srv, err := sheetsv4.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &Client{srv: srv}, nil
}

// ServiceAccountEmail is the address that must be granted access to a sheet.
func (c *Client) ServiceAccountEmail() string { return c.serviceAccountEmail }

// FetchRows returns the cells of readRange as text. Missing trailing cells are
// not padded, so rows may be shorter than the range.
func (c *Client) FetchRows(ctx context.Context, spreadsheetID, readRange string) ([][]string, error) {
	resp, err := c.srv.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", readRange, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, values := range resp.Values {
		row := make([]string, len(values))
		for i := range values {
			row[i] = get(values, i)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func get(row []interface{}, idx int) string {
	if idx < 0 || idx >= len(row) || row[idx] == nil {
		return ""
	}
	return fmt.Sprint(row[idx])
}
