package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ipfs/go-cid"
	"github.com/ipfs/kubo/client/rpc"
	"go.uber.org/zap"
)

// nodeFetcher is the concrete implementation of NodeFetcher using the Kubo
// HTTP API.
type nodeFetcher struct {
	api *rpc.HttpApi
}

// Fetch retrieves content by CID from an IPFS node via `ipfs cat`. The
// supplied hash must already be normalized. The method performs a
// best-effort sanity check by parsing the identifier as a CID and logging a
// mismatch warning when the parse fails; content bytes are returned as read
// from the node.
func (f *nodeFetcher) Fetch(ctx context.Context, hash string) ([]byte, error) {
	if ctx == nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
	}

	zap.L().Debug("Hash used to retrieve from IPFS node", zap.String("hash", hash))

	if f.api == nil {
		return nil, fmt.Errorf("ipfs client not configured")
	}

	cID, err := cid.Parse(hash)
	if err != nil {
		return nil, fmt.Errorf("parse cid %q: %w", hash, err)
	}

	resp, err := f.api.Request("cat", cID.String()).Send(ctx)
	if err != nil {
		zap.L().Error("error executing the cat command in ipfs", zap.String("hash", hash), zap.Error(err))
		return nil, err
	}
	defer func() {
		if err := resp.Close(); err != nil {
			zap.L().Error("error closing response in ipfs", zap.String("hash", hash), zap.Error(err))
		}
	}()

	if resp.Error != nil {
		zap.L().Error("cat command returned error", zap.String("hash", hash), zap.Error(resp.Error))
		return nil, resp.Error
	}

	fileContent, err := io.ReadAll(resp.Output)
	if err != nil {
		zap.L().Error("error reading content from ipfs node", zap.String("hash", hash), zap.Error(err))
		return nil, err
	}
	return fileContent, nil
}

// NewIPFSClient constructs a Kubo HTTP API client pointed at url.
// The client uses a short HTTP timeout suitable for content reads.
func NewIPFSClient(url string) (*rpc.HttpApi, error) {
	httpClient := http.Client{
		Timeout: 60 * time.Second,
	}
	client, err := rpc.NewURLApiWithClient(url, &httpClient)
	if err != nil {
		zap.L().Error("Connection failed to IPFS", zap.String("url", url), zap.Error(err))
		return nil, err
	}
	return client, nil
}
