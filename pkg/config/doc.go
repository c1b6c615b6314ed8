// Package config provides configuration management for the Web3.Storage SDK.
//
// This package defines the Config structure that controls SDK behavior:
// the API endpoint, authentication token, gateway URLs, debug mode, and
// timeouts.
//
// # Basic Configuration
//
// The only required setting is the access token, either inline or via a
// token file:
//
//	cfg := &config.Config{
//		Token: "eyJhbGciOi...",
//	}
//
// or, relying on the conventional token file:
//
//	cfg := &config.Config{} // reads ~/.web3_storage_token
//
// # Token File
//
// The token file is a plain text file holding a single entry:
//
//	ACCESS_TOKEN: eyJhbGciOi...
//
// Create it once after generating a token in the Web3.Storage console:
//
//	echo 'ACCESS_TOKEN: put_token_here' > ~/.web3_storage_token
//
// A custom location can be set with Config.TokenPath. An inline
// Config.Token always takes precedence over the file.
//
// # Endpoints and Gateways
//
// Defaults are provided for the production service:
//
//	Endpoint:   "https://api.web3.storage"
//	GatewayURL: "https://w3s.link/ipfs/"
//
// Uploaded content is public on the IPFS network, so reads can also go
// through any gateway or a local node:
//
//	cfg.GatewayURL = "https://dweb.link/ipfs/"
//	cfg.IpfsURL = "http://localhost:5001"
//
// # Timeouts
//
// Timeouts apply per operation and only when the caller's context carries
// no deadline:
//
//	cfg.Timeouts = config.Timeouts{
//		Upload:   5 * time.Minute,
//		Retrieve: 2 * time.Minute,
//		Query:    10 * time.Second,
//	}
//
// Zero values are replaced with defaults via WithDefaults().
//
// # Validation
//
// Always call Validate() to apply defaults and resolve the token:
//
//	if err := cfg.Validate(); err != nil {
//		log.Fatalf("Invalid config: %v", err)
//	}
//
// Validate() will:
//   - Set default Endpoint, GatewayURL and TokenPath if not provided
//   - Read the token file when no inline token is set
//   - Return an error if no token can be resolved
//
// # Thread Safety
//
// Config instances should be created once and not modified after passing
// to sdk.NewSDK(). The Config is read-only during SDK operations.
//
// # See Also
//
//   - sdk.NewSDK() for SDK initialization
//   - examples/quick-start for basic configuration
package config
