package ports

import (
	"context"

	"github.com/observeinc/obship/internal/domain"
)

// BatchSender transmits detached batches to the collection endpoint.
// Implementations handle transport, authentication, and outcome
// interpretation.
type BatchSender interface {
	// Send transmits one batch to the remote endpoint. The body is the
	// concatenation of the batch's serialized items in submission order.
	// Returns nil on success, a descriptive error on failure; the error
	// applies uniformly to every item in the batch.
	Send(ctx context.Context, batch *domain.Batch, metadata SendMetadata) error
}

// SendMetadata provides context for the send operation.
type SendMetadata struct {
	// URL is the absolute collection endpoint.
	URL string

	// Token is the bearer credential sent in the Authorization header.
	Token string

	// Hostname is the shipping host's name, included for server-side tracking.
	Hostname string

	// OSArch is the operating system and architecture (e.g., "linux/amd64").
	OSArch string
}
