package api

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shamank/web3storage-sdk-go/internal/testutil/w3sfake"
	"github.com/shamank/web3storage-sdk-go/pkg/config"
)

func writeTokenFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "token")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write token file: %v", err)
	}
	return path
}

// TestNew_TokenFromFile verifies that construction with a well-formed token
// file succeeds and that the client holds the resolved token.
func TestNew_TokenFromFile(t *testing.T) {
	path := writeTokenFile(t, "ACCESS_TOKEN: secret-token\n")

	client, err := New(&config.Config{TokenPath: path})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if client.Token() != "secret-token" {
		t.Fatalf("got token %q want %q", client.Token(), "secret-token")
	}
	if client.Endpoint() != config.DefaultEndpoint {
		t.Fatalf("unexpected endpoint: %s", client.Endpoint())
	}
}

// TestNew_MissingTokenFile verifies that construction fails with a
// configuration error when the token file does not exist.
func TestNew_MissingTokenFile(t *testing.T) {
	_, err := New(&config.Config{
		TokenPath: filepath.Join(t.TempDir(), "missing"),
	})
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestNew_MalformedTokenFile(t *testing.T) {
	path := writeTokenFile(t, "nothing useful here\n")
	_, err := New(&config.Config{TokenPath: path})
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestNew_NilConfig(t *testing.T) {
	_, err := New(nil)
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

// TestClient_SendsBearerToken verifies that every request carries the
// Authorization header with the configured token.
func TestClient_SendsBearerToken(t *testing.T) {
	fake := w3sfake.New("tok-123")
	srv := w3sfake.Start(t, fake.Handler())
	defer srv.Close()

	client, err := New(&config.Config{Token: "tok-123", Endpoint: srv.URL})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.ListUploads(context.Background(), nil); err != nil {
		t.Fatalf("ListUploads returned error: %v", err)
	}
	if fake.LastAuth() != "Bearer tok-123" {
		t.Fatalf("unexpected auth header: %q", fake.LastAuth())
	}
}

// TestClient_CIDCheck verifies that WithCIDCheck rejects malformed
// identifiers before any request is made.
func TestClient_CIDCheck(t *testing.T) {
	fake := w3sfake.New("")
	srv := w3sfake.Start(t, fake.Handler())
	defer srv.Close()

	client, err := New(&config.Config{Token: "t", Endpoint: srv.URL}, WithCIDCheck())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	_, err = client.Retrieve(context.Background(), "definitely not a cid")
	if !errors.Is(err, ErrInvalidCID) {
		t.Fatalf("expected ErrInvalidCID, got %v", err)
	}
	if fake.LastAuth() != "" {
		t.Fatal("request was issued despite failed CID validation")
	}

	// a real CIDv1 passes validation and reaches the service
	_, err = client.Status(context.Background(), "bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound from service, got %v", err)
	}
}

// TestClient_EmptyCIDAlwaysRejected verifies that an empty identifier is
// rejected locally even without WithCIDCheck.
func TestClient_EmptyCIDAlwaysRejected(t *testing.T) {
	client, err := New(&config.Config{Token: "t", Endpoint: "http://127.0.0.1:0"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	for _, call := range []func() error{
		func() error { _, err := client.Retrieve(context.Background(), ""); return err },
		func() error { _, err := client.Status(context.Background(), "  "); return err },
		func() error { _, err := client.Header(context.Background(), ""); return err },
	} {
		if err := call(); !errors.Is(err, ErrInvalidCID) {
			t.Fatalf("expected ErrInvalidCID, got %v", err)
		}
	}
}
