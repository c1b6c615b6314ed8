// Package storage provides direct read paths for content stored with
// Web3.Storage. Uploaded data is public on the IPFS network, so besides the
// authenticated API it can be fetched from any HTTP gateway or from an IPFS
// node (Kubo). This package offers both backends behind a small interface.
package storage

import (
	"context"
	"regexp"
	"strings"

	"github.com/ipfs/kubo/client/rpc"
	"go.uber.org/zap"
)

// IpfsPrefix is the URI scheme prefix recognized for IPFS content.
const IpfsPrefix = "ipfs://"

// GatewayFetcher fetches content from an IPFS HTTP gateway.
type GatewayFetcher interface {
	Fetch(ctx context.Context, endpoint, cid string) ([]byte, error)
}

// NodeFetcher fetches content addressed by CID from an IPFS node.
type NodeFetcher interface {
	Fetch(ctx context.Context, cid string) ([]byte, error)
}

// Client aggregates the configured read backends: an HTTP gateway and,
// optionally, a Kubo node.
type Client struct {
	// GatewayURL is the base URL of the IPFS HTTP gateway, including the
	// /ipfs/ path (e.g. "https://w3s.link/ipfs/").
	GatewayURL string

	gatewayFetcher GatewayFetcher
	nodeFetcher    NodeFetcher
}

// NewStorage constructs a read client for the given gateway URL and optional
// IPFS node API endpoint. Pass an empty ipfsURL to disable the node path.
func NewStorage(gatewayURL, ipfsURL string) *Client {
	s := &Client{
		GatewayURL:     gatewayURL,
		gatewayFetcher: defaultGatewayFetcher{},
	}
	if ipfsURL != "" {
		api, err := NewIPFSClient(ipfsURL)
		if err != nil {
			zap.L().Error("IPFS node client init failed", zap.String("url", ipfsURL), zap.Error(err))
		} else {
			s.nodeFetcher = newNodeFetcher(api)
		}
	}
	return s
}

// ReadFile fetches the content identified by the given CID or ipfs:// URI.
// When a node fetcher is configured it is preferred; otherwise the gateway
// is used. The identifier is normalized with formatHash before retrieval.
func (s *Client) ReadFile(ctx context.Context, hash string) ([]byte, error) {
	if s.gatewayFetcher == nil {
		s.gatewayFetcher = defaultGatewayFetcher{}
	}

	if s.nodeFetcher != nil {
		return s.nodeFetcher.Fetch(ctx, formatHash(hash))
	}
	return s.gatewayFetcher.Fetch(ctx, s.GatewayURL, formatHash(hash))
}

// defaultGatewayFetcher is the production implementation of GatewayFetcher.
type defaultGatewayFetcher struct{}

func (defaultGatewayFetcher) Fetch(ctx context.Context, endpoint, cid string) ([]byte, error) {
	return GetGatewayFile(ctx, endpoint, cid)
}

// newNodeFetcher creates a node fetcher over the given Kubo HTTP API client.
func newNodeFetcher(api *rpc.HttpApi) NodeFetcher {
	return &nodeFetcher{api: api}
}

// formatHash removes the ipfs:// scheme prefix and any non-alphanumeric
// characters (except '=') from the supplied CID/URI to produce a clean
// identifier suitable for the underlying backends.
func formatHash(hash string) string {
	hash = strings.Replace(hash, IpfsPrefix, "", -1)
	hash = removeSpecialCharacters(hash)
	return hash
}

// removeSpecialCharacters strips all characters except ASCII letters, digits,
// and '=' from pString. Used to sanitize incoming CIDs.
func removeSpecialCharacters(pString string) string {
	reg := regexp.MustCompile("[^a-zA-Z0-9=]")
	return reg.ReplaceAllString(pString, "")
}
