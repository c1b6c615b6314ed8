package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// Retrieve downloads the content stored under cid and returns the verbatim
// response bytes (a CAR file packaging the IPFS DAG). No decoding of any
// kind is applied to the payload. Unknown identifiers fail with an error
// matching ErrNotFound.
func (c *Client) Retrieve(ctx context.Context, cid string) ([]byte, error) {
	if err := c.checkContentID(cid); err != nil {
		return nil, err
	}

	ctx, cancel := ensureDeadline(ctx, c.timeouts.Retrieve)
	defer cancel()

	req, err := c.newRequest(ctx, http.MethodGet, "/car/"+cid, nil)
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

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read content body: %w", err)
	}

	zap.L().Debug("retrieve complete", zap.String("cid", cid), zap.Int("size", len(data)))
	return data, nil
}

// Header performs a dry run of Retrieve: it issues a HEAD request for the
// content and returns the response headers without transferring the payload.
// Useful for checking existence and Content-Length cheaply.
func (c *Client) Header(ctx context.Context, cid string) (http.Header, error) {
	if err := c.checkContentID(cid); err != nil {
		return nil, err
	}

	ctx, cancel := ensureDeadline(ctx, c.timeouts.Query)
	defer cancel()

	req, err := c.newRequest(ctx, http.MethodHead, "/car/"+cid, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	_ = resp.Body.Close()

	return resp.Header, nil
}
