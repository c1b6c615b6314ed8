package api

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/shamank/web3storage-sdk-go/internal/testutil/w3sfake"
	"github.com/shamank/web3storage-sdk-go/pkg/model"
)

func TestStatus(t *testing.T) {
	fake := w3sfake.New("tok")
	client, done := newTestClient(t, fake)
	defer done()

	contents := []byte("status me")
	cid, err := client.UploadData(context.Background(), "s.txt", bytes.NewReader(contents))
	if err != nil {
		t.Fatalf("UploadData returned error: %v", err)
	}

	status, err := client.Status(context.Background(), cid)
	if err != nil {
		t.Fatalf("Status returned error: %v", err)
	}
	if status.CID != cid {
		t.Fatalf("unexpected cid: %s", status.CID)
	}
	if status.DagSize != int64(len(contents)) {
		t.Fatalf("unexpected dagSize: %d", status.DagSize)
	}
	if status.Created.IsZero() {
		t.Fatal("missing created timestamp")
	}
	if len(status.Pins) == 0 || status.Pins[0].Status != model.PinStatusPinned {
		t.Fatalf("unexpected pins: %#v", status.Pins)
	}
}

// TestStatus_NotFound verifies that metadata for an unknown CID fails with
// ErrNotFound.
func TestStatus_NotFound(t *testing.T) {
	fake := w3sfake.New("tok")
	client, done := newTestClient(t, fake)
	defer done()

	_, err := client.Status(context.Background(), "bafkfakeunknown")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
