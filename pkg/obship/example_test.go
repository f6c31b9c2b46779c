package obship_test

import (
	"context"
	"fmt"
	"time"

	"github.com/observeinc/obship/pkg/obship"
)

// ExampleNew demonstrates how to embed the client in your application.
func ExampleNew() {
	cfg := obship.Config{
		URL:   "https://collect.example.com/v1/http",
		Token: "your-api-token",
	}

	client, err := obship.New(cfg)
	if err != nil {
		fmt.Printf("failed to create client: %v\n", err)
		return
	}

	fmt.Printf("Status: %s\n", client.Status())

	// Output: Status: Idle
}

// ExampleClient_Send demonstrates fire-and-forget submission with an
// optional callback for the outcome.
func ExampleClient_Send() {
	cfg := obship.Config{
		URL:   "https://collect.example.com/v1/http",
		Token: "your-api-token",
	}

	client, err := obship.New(cfg)
	if err != nil {
		fmt.Printf("failed to create client: %v\n", err)
		return
	}

	// The callback receives nil on success or a descriptive error.
	client.Send(map[string]any{"event": "login", "user": "alice"}, func(err error) {
		if err != nil {
			fmt.Printf("record failed: %v\n", err)
		}
	})

	// Flush buffered records before exiting.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = client.Close(ctx)
}
