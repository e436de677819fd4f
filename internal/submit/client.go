// Package submit delivers finished documents to the submission sink
// endpoint. It is the only place a completed form crosses the network.
package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pharmadesk/api/internal/document"
)

// Client posts complete documents to the sink. Implements form.Sink.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a submission client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Submit posts the document and returns the receipt ID the sink assigned.
func (c *Client) Submit(ctx context.Context, doc document.Document) (string, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}

	url := fmt.Sprintf("%s/documents/%s", c.baseURL, strings.ToLower(doc.Kind))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build submit request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("submit document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("submit document: unexpected status %d", resp.StatusCode)
	}

	var payload struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode receipt: %w", err)
	}
	return payload.ID, nil
}
