//go:build e2e

package e2e

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/shamank/web3storage-sdk-go/pkg/api"
	"github.com/shamank/web3storage-sdk-go/pkg/config"
)

func TestListUploadsLive(t *testing.T) {
	token := os.Getenv("W3S_ACCESS_TOKEN")
	if token == "" {
		t.Skip("W3S_ACCESS_TOKEN not set")
	}

	client, err := api.New(&config.Config{Token: token})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	uploads, err := client.ListUploads(ctx, &api.ListOptions{Size: 1})
	if err != nil {
		t.Fatalf("ListUploads error: %v", err)
	}
	if len(uploads) > 1 {
		t.Fatalf("size parameter ignored: got %d records", len(uploads))
	}
}
