package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/shamank/web3storage-sdk-go/pkg/model"
)

// Status fetches the storage metadata for cid: creation date, DAG size, the
// IPFS peers pinning the content and the Filecoin deals covering it. The
// document is returned as the service reports it. Unknown identifiers fail
// with an error matching ErrNotFound.
func (c *Client) Status(ctx context.Context, cid string) (*model.Status, error) {
	if err := c.checkContentID(cid); err != nil {
		return nil, err
	}

	ctx, cancel := ensureDeadline(ctx, c.timeouts.Query)
	defer cancel()

	req, err := c.newRequest(ctx, http.MethodGet, "/status/"+cid, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read status body: %w", err)
	}

	var status model.Status
	if err := json.Unmarshal(payload, &status); err != nil {
		return nil, fmt.Errorf("decode status response: %w", err)
	}
	return &status, nil
}
