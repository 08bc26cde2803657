package formrelay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"portfolio-site/pkg/models"
)

// Client defines the interface for posting contact submissions to a form relay
type Client interface {
	Submit(ctx context.Context, data models.ContactFormData) error
}

// RelayError is returned when the relay answers with a non-2xx status
type RelayError struct {
	StatusCode int
}

func (e *RelayError) Error() string {
	return fmt.Sprintf("form relay rejected submission: status %d", e.StatusCode)
}

type clientImpl struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a new form relay client posting to endpoint.
// A nil httpClient uses http.DefaultClient; deadlines come from the caller's context.
func NewClient(endpoint string, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &clientImpl{
		endpoint:   endpoint,
		httpClient: httpClient,
	}
}

// Submit posts the form data as JSON. Any 2xx status counts as delivered;
// the response body is never interpreted.
func (c *clientImpl) Submit(ctx context.Context, data models.ContactFormData) error {
	jsonPayload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(jsonPayload))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error posting to form relay: %w", err)
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RelayError{StatusCode: resp.StatusCode}
	}
	return nil
}
