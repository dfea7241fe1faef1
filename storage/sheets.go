package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrRemoteUnavailable marks any I/O failure against the remote table
// service. It is surfaced as-is; callers may re-attempt manually.
var ErrRemoteUnavailable = errors.New("remote store unavailable")

// SheetClient talks to the spreadsheet service over its JSON API. Requests
// use the default client settings; no timeout is configured here.
type SheetClient struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewSheetClient creates a client for the service at baseURL. token may be
// empty for unauthenticated deployments.
func NewSheetClient(baseURL, token string) *SheetClient {
	return &SheetClient{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{},
	}
}

type valuesResponse struct {
	Values [][]string `json:"values"`
}

type appendRequest struct {
	Values []string `json:"values"`
}

// Values returns every row of the table, header first. An empty table
// returns no rows.
func (c *SheetClient) Values(tableID string) ([][]string, error) {
	url := fmt.Sprintf("%s/tables/%s/values", c.baseURL, tableID)
	resp, err := c.do(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body valuesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode values for table %q: %v", ErrRemoteUnavailable, tableID, err)
	}
	return body.Values, nil
}

// AppendRow adds one row at the end of the table.
func (c *SheetClient) AppendRow(tableID string, row []string) error {
	payload, err := json.Marshal(appendRequest{Values: row})
	if err != nil {
		return fmt.Errorf("sheets: encode row: %w", err)
	}

	url := fmt.Sprintf("%s/tables/%s/rows", c.baseURL, tableID)
	resp, err := c.do(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// Clear erases the entire table, header included.
func (c *SheetClient) Clear(tableID string) error {
	url := fmt.Sprintf("%s/tables/%s/clear", c.baseURL, tableID)
	resp, err := c.do(http.MethodPost, url, nil)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func (c *SheetClient) do(method, url string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, fmt.Errorf("sheets: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrRemoteUnavailable, method, url, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s %s: status %d", ErrRemoteUnavailable, method, url, resp.StatusCode)
	}
	return resp, nil
}
