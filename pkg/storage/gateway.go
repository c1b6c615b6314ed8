package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// GetGatewayFile fetches a blob from an IPFS HTTP gateway.
//
// It performs a simple HTTP GET to {endpoint}{cid} and returns the response
// body as bytes. The CID is concatenated directly to the endpoint string;
// ensure the trailing slash if the gateway requires it (e.g.
// "https://w3s.link/ipfs/").
func GetGatewayFile(ctx context.Context, endpoint, cid string) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	zap.L().Debug("Getting gateway file", zap.String("cid", cid))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+cid, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("gateway returned status %d for %s", resp.StatusCode, cid)
	}

	file, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return file, nil
}

// GetGatewayFileCtx is like GetGatewayFile but bounds the request with the
// given timeout when the context carries no deadline.
func GetGatewayFileCtx(ctx context.Context, endpoint, cid string, timeout time.Duration) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); !ok && timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return GetGatewayFile(ctx, endpoint, cid)
}
