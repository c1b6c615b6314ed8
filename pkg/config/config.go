// Package config defines the runtime configuration for the SDK: the API
// endpoint, the bearer token (inline or loaded from a token file), gateway
// URLs for direct content reads, debug mode, and operation timeouts. It also
// provides validation and defaulting helpers.
package config

import (
	"errors"
	"time"
)

// Config holds all SDK settings required to initialize the API client.
// Use Validate to fill implicit defaults, resolve the bearer token, and
// check for required fields.
type Config struct {
	// Endpoint is the base URL of the Web3.Storage HTTP API.
	// Default: https://api.web3.storage
	Endpoint string `json:"endpoint" yaml:"endpoint"`
	// Token is the bearer token used to authenticate API requests. When set
	// it takes precedence over TokenPath.
	Token string `json:"token" yaml:"token"`
	// TokenPath is the location of the token file read when Token is empty.
	// The file contains a single "ACCESS_TOKEN: <token>" line.
	// Default: ~/.web3_storage_token
	TokenPath string `json:"token_path" yaml:"token_path"`
	// GatewayURL is the public IPFS HTTP gateway used for direct content
	// reads by CID. Default: https://w3s.link/ipfs/
	GatewayURL string `json:"gateway_url" yaml:"gateway_url"`
	// IpfsURL is the optional HTTP API endpoint of an IPFS node (Kubo) used
	// for node-based content reads. Empty disables the node read path.
	IpfsURL string `json:"ipfs_url" yaml:"ipfs_url"`
	// Debug enables verbose logging.
	Debug bool `json:"debug" yaml:"debug"`
	// Timeouts configures per-operation timeouts. See Timeouts.WithDefaults
	// for defaults.
	Timeouts Timeouts `json:"timeouts" yaml:"timeouts"`
}

// DefaultEndpoint is the production Web3.Storage API endpoint.
const DefaultEndpoint = "https://api.web3.storage"

// DefaultGatewayURL is the public gateway serving Web3.Storage content.
const DefaultGatewayURL = "https://w3s.link/ipfs/"

// Timeouts controls SDK operation deadlines. They apply only when the caller
// supplies a context without a deadline. Zero values will be replaced by sane
// defaults in WithDefaults.
type Timeouts struct {
	Upload       time.Duration // multipart upload
	Retrieve     time.Duration // content download by CID
	Query        time.Duration // status, header, list
	GatewayFetch time.Duration // direct gateway/node reads
}

// Validate normalizes the configuration by applying implicit defaults for
// Endpoint, TokenPath and GatewayURL, then resolves the bearer token: an
// explicit Token wins, otherwise the token file at TokenPath is read.
// Returns an error when no token can be resolved.
func (c *Config) Validate() error {

	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}

	if c.GatewayURL == "" {
		c.GatewayURL = DefaultGatewayURL
	}

	if c.TokenPath == "" {
		c.TokenPath = DefaultTokenPath
	}

	if c.Token == "" {
		token, err := ReadTokenFile(c.TokenPath)
		if err != nil {
			return err
		}
		c.Token = token
	}

	if c.Token == "" {
		return errors.New("access token is required")
	}

	return nil
}

// WithDefaults returns a copy of t with zero values replaced by defaults:
//
//	Upload:       120s
//	Retrieve:     60s
//	Query:        15s
//	GatewayFetch: 60s
func (t Timeouts) WithDefaults() Timeouts {
	tt := t
	if tt.Upload == 0 {
		tt.Upload = 120 * time.Second
	}
	if tt.Retrieve == 0 {
		tt.Retrieve = 60 * time.Second
	}
	if tt.Query == 0 {
		tt.Query = 15 * time.Second
	}
	if tt.GatewayFetch == 0 {
		tt.GatewayFetch = 60 * time.Second
	}
	return tt
}
