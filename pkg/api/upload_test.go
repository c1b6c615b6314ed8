package api

import (
	"bytes"
	"context"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shamank/web3storage-sdk-go/internal/testutil/w3sfake"
	"github.com/shamank/web3storage-sdk-go/pkg/config"
)

func newTestClient(t *testing.T, fake *w3sfake.Fake) (*Client, func()) {
	t.Helper()
	srv := w3sfake.Start(t, fake.Handler())
	client, err := New(&config.Config{Token: fake.Token, Endpoint: srv.URL})
	if err != nil {
		srv.Close()
		t.Fatalf("New returned error: %v", err)
	}
	return client, srv.Close
}

func TestUpload_File(t *testing.T) {
	fake := w3sfake.New("tok")
	client, done := newTestClient(t, fake)
	defer done()

	contents := []byte("hello web3")
	path := filepath.Join(t.TempDir(), "hello.txt")
	if err := os.WriteFile(path, contents, 0o600); err != nil {
		t.Fatalf("write input file: %v", err)
	}

	cid, err := client.Upload(context.Background(), path, "")
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}
	if cid != w3sfake.CIDFor(contents) {
		t.Fatalf("unexpected cid: %s", cid)
	}
	// the file's base name is used when no display name is given
	if fake.LastXName() != "hello.txt" {
		t.Fatalf("unexpected X-NAME header: %q", fake.LastXName())
	}
}

func TestUpload_DisplayNameEscaped(t *testing.T) {
	fake := w3sfake.New("tok")
	client, done := newTestClient(t, fake)
	defer done()

	_, err := client.UploadData(context.Background(), "my notes.txt", strings.NewReader("data"))
	if err != nil {
		t.Fatalf("UploadData returned error: %v", err)
	}
	if fake.LastXName() != url.PathEscape("my notes.txt") {
		t.Fatalf("unexpected X-NAME header: %q", fake.LastXName())
	}
}

// TestUpload_TooLarge verifies that an oversized file is rejected locally
// before any request is issued. The input is a sparse file, so only its
// reported size matters.
func TestUpload_TooLarge(t *testing.T) {
	fake := w3sfake.New("tok")
	client, done := newTestClient(t, fake)
	defer done()

	path := filepath.Join(t.TempDir(), "huge.bin")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create file: %v", err)
	}
	if err := f.Truncate(MaxUploadSize + 1); err != nil {
		_ = f.Close()
		t.Skipf("cannot create sparse file: %v", err)
	}
	_ = f.Close()

	_, err = client.Upload(context.Background(), path, "")
	if !errors.Is(err, ErrPayloadTooLarge) {
		t.Fatalf("expected ErrPayloadTooLarge, got %v", err)
	}
	if fake.LastAuth() != "" {
		t.Fatal("request was issued despite oversized payload")
	}
	if fake.Count() != 0 {
		t.Fatalf("fake stored %d objects", fake.Count())
	}
}

func TestUpload_MissingFile(t *testing.T) {
	fake := w3sfake.New("tok")
	client, done := newTestClient(t, fake)
	defer done()

	_, err := client.Upload(context.Background(), filepath.Join(t.TempDir(), "absent"), "")
	if !errors.Is(err, ErrUpload) {
		t.Fatalf("expected ErrUpload, got %v", err)
	}
}

func TestUpload_Directory(t *testing.T) {
	fake := w3sfake.New("tok")
	client, done := newTestClient(t, fake)
	defer done()

	_, err := client.Upload(context.Background(), t.TempDir(), "")
	if !errors.Is(err, ErrUpload) {
		t.Fatalf("expected ErrUpload, got %v", err)
	}
}

// TestUpload_ServiceRejection verifies that a service-side failure surfaces
// both ErrUpload and the underlying response details.
func TestUpload_ServiceRejection(t *testing.T) {
	fake := w3sfake.New("expected-token")
	srv := w3sfake.Start(t, fake.Handler())
	defer srv.Close()

	client, err := New(&config.Config{Token: "wrong-token", Endpoint: srv.URL})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	_, err = client.UploadData(context.Background(), "x", bytes.NewReader([]byte("x")))
	if !errors.Is(err, ErrUpload) {
		t.Fatalf("expected ErrUpload, got %v", err)
	}
	var respErr *ResponseError
	if !errors.As(err, &respErr) {
		t.Fatalf("expected ResponseError in chain, got %v", err)
	}
	if respErr.StatusCode != 401 || respErr.Message != "Unauthorized" {
		t.Fatalf("unexpected response error: %#v", respErr)
	}
}
