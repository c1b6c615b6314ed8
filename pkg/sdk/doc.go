// Package sdk provides the high-level entry point for interacting with
// Web3.Storage.
//
// The SDK wraps the service's HTTP API behind five operations — upload,
// retrieve, status, header and list — plus a tokenless gateway read path
// for content that is already public on IPFS.
//
// # Quick Start
//
//	import (
//		"github.com/shamank/web3storage-sdk-go/pkg/config"
//		"github.com/shamank/web3storage-sdk-go/pkg/sdk"
//	)
//
//	func main() {
//		cfg := &config.Config{} // token read from ~/.web3_storage_token
//
//		w3s, err := sdk.NewSDK(cfg)
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		cid, err := w3s.Upload(ctx, "./photo.jpg", "")
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Println("stored as", cid)
//	}
//
// # Architecture
//
// The SDK coordinates two subsystems:
//
//   - api: the authenticated REST client (bearer token, multipart upload,
//     status and listing endpoints)
//   - storage: unauthenticated reads through IPFS gateways or a Kubo node
//
// # Error Handling
//
// Errors are classified with the api package sentinels:
//
//	cid, err := w3s.Upload(ctx, path, "")
//	switch {
//	case errors.Is(err, api.ErrPayloadTooLarge):
//		// file over the 100 MiB limit, nothing was sent
//	case errors.Is(err, api.ErrUpload):
//		// service or transport failure
//	}
//
// # Logging
//
// A global zap logger is installed at package init at Info level;
// Config.Debug raises it to Debug. Replace it with
// zap.ReplaceGlobals(...) for custom setups.
//
// # Thread Safety
//
// The Core holds only immutable state and is safe for concurrent use
// across goroutines.
//
// # See Also
//
// For runnable examples, see the examples/ directory:
//   - examples/quick-start: upload and retrieve a file
//   - examples/list-uploads: walk the account listing
//   - examples/retrieve: fetch by CID, API and gateway paths
package sdk
