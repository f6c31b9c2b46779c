package http

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/observeinc/obship/internal/domain"
	"github.com/observeinc/obship/internal/ports"
)

// contentType identifies the newline-delimited JSON record encoding.
const contentType = "application/x-ndjson"

// BatchSender implements ports.BatchSender using HTTP.
type BatchSender struct {
	client ports.HTTPClient
	logger ports.Logger
}

// NewBatchSender creates a new HTTP batch sender.
func NewBatchSender(client ports.HTTPClient, logger ports.Logger) *BatchSender {
	return &BatchSender{
		client: client,
		logger: logger,
	}
}

// Send transmits a batch to the collection endpoint. The body is the
// concatenation of the batch's serialized records in submission order; any
// response status above 299 is a failure carrying the code and status text.
func (s *BatchSender) Send(ctx context.Context, batch *domain.Batch, metadata ports.SendMetadata) error {
	if batch.Empty() {
		return nil
	}

	body := batch.Payload()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, metadata.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.ContentLength = int64(batch.TotalBytes)

	req.Header.Set("Authorization", "Bearer "+metadata.Token)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Agent-Hostname", metadata.Hostname)
	req.Header.Set("X-Agent-OSArch", metadata.OSArch)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode > 299 {
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, statusText(resp))
	}

	return nil
}

// statusText extracts the reason phrase from the response status line.
func statusText(resp *http.Response) string {
	text := strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode))
	return strings.TrimSpace(text)
}
