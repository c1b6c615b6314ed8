package sdk

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shamank/web3storage-sdk-go/internal/testutil/w3sfake"
	"github.com/shamank/web3storage-sdk-go/pkg/api"
	"github.com/shamank/web3storage-sdk-go/pkg/config"
)

func newTestSDK(t *testing.T, fake *w3sfake.Fake) (*Core, func()) {
	t.Helper()
	srv := w3sfake.Start(t, fake.Handler())
	core, err := NewSDK(&config.Config{
		Token:    fake.Token,
		Endpoint: srv.URL,
	})
	if err != nil {
		srv.Close()
		t.Fatalf("NewSDK returned error: %v", err)
	}
	return core, srv.Close
}

func TestNewSDK_InvalidConfig(t *testing.T) {
	_, err := NewSDK(&config.Config{
		TokenPath: filepath.Join(t.TempDir(), "missing"),
	})
	if !errors.Is(err, api.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

// TestSDK_UploadRetrieveRoundTrip exercises the full path: upload a file,
// list it, retrieve it, and check its status, all through the public
// interface.
func TestSDK_UploadRetrieveRoundTrip(t *testing.T) {
	fake := w3sfake.New("tok")
	core, done := newTestSDK(t, fake)
	defer done()

	ctx := context.Background()
	contents := []byte("round trip payload")
	path := filepath.Join(t.TempDir(), "payload.bin")
	if err := os.WriteFile(path, contents, 0o600); err != nil {
		t.Fatalf("write input: %v", err)
	}

	before, err := core.ListUploads(ctx, nil)
	if err != nil {
		t.Fatalf("ListUploads returned error: %v", err)
	}

	cid, err := core.Upload(ctx, path, "payload.bin")
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}

	got, err := core.Retrieve(ctx, cid)
	if err != nil {
		t.Fatalf("Retrieve returned error: %v", err)
	}
	if !bytes.Equal(got, contents) {
		t.Fatalf("round trip mismatch: got %q want %q", got, contents)
	}

	status, err := core.Status(ctx, cid)
	if err != nil {
		t.Fatalf("Status returned error: %v", err)
	}
	if status.CID != cid || status.DagSize != int64(len(contents)) {
		t.Fatalf("unexpected status: %#v", status)
	}

	header, err := core.Header(ctx, cid)
	if err != nil {
		t.Fatalf("Header returned error: %v", err)
	}
	if header.Get("Content-Length") == "" {
		t.Fatal("missing Content-Length header")
	}

	after, err := core.ListUploads(ctx, nil)
	if err != nil {
		t.Fatalf("ListUploads returned error: %v", err)
	}
	if len(after) != len(before)+1 {
		t.Fatalf("listing grew from %d to %d, want +1", len(before), len(after))
	}
	if after[0].CID != cid || after[0].Name != "payload.bin" {
		t.Fatalf("unexpected newest record: %#v", after[0])
	}
}
