// Package storage provides unauthenticated read paths for content stored
// with Web3.Storage.
//
// Every object uploaded through the API is content-addressed and served by
// the public IPFS network. This package fetches such content without the
// API token, either through an HTTP gateway or through an IPFS node.
//
// # Supported Backends
//
// Gateway (HTTP):
//   - Any public or self-hosted IPFS gateway
//   - Default: https://w3s.link/ipfs/
//   - Simple GET of {gateway}{cid}
//
// Node (Kubo HTTP API):
//   - Requires access to an IPFS node (e.g. http://localhost:5001)
//   - Uses `ipfs cat` via the Kubo RPC client
//
// # Usage
//
//	client := storage.NewStorage("https://w3s.link/ipfs/", "")
//	data, err := client.ReadFile(ctx, "bafybeig...")
//
// With a local node preferred over the gateway:
//
//	client := storage.NewStorage("https://w3s.link/ipfs/", "http://localhost:5001")
//
// Direct helpers are also exported:
//
//	data, err := storage.GetGatewayFile(ctx, "https://w3s.link/ipfs/", cid)
//
// # CID Formats
//
// Both CIDv0 (Qm..., 46 characters) and CIDv1 (bafy...) identifiers are
// accepted. Inputs may carry the ipfs:// scheme prefix; it is stripped
// before retrieval.
//
// # Note
//
// Gateway reads return the unpacked file bytes, while the authenticated
// api.Client.Retrieve returns a CAR archive packaging the DAG. Use the
// gateway path when you want the plain content.
//
// # See Also
//
//   - api package for authenticated API access
//   - sdk package for automatic wiring from config
package storage
