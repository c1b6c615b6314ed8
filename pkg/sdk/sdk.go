// Package sdk exposes the high-level Web3.Storage SDK entry points. It wires
// together the authenticated API client (upload, retrieve, status, header,
// list) and the unauthenticated gateway read paths.
package sdk

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/shamank/web3storage-sdk-go/pkg/api"
	"github.com/shamank/web3storage-sdk-go/pkg/config"
	"github.com/shamank/web3storage-sdk-go/pkg/model"
	"github.com/shamank/web3storage-sdk-go/pkg/storage"
)

// W3Storage is the public interface of the SDK. All operations are
// stateless, synchronous request/response exchanges against the service.
type W3Storage interface {
	// Upload stores the local file at path and returns its CID. The
	// optional display name defaults to the file's base name.
	Upload(ctx context.Context, path string, name string) (string, error)

	// UploadData stores the contents of r under the given display name and
	// returns the assigned CID.
	UploadData(ctx context.Context, name string, r io.Reader) (string, error)

	// Retrieve downloads the CAR bytes stored under cid via the API.
	Retrieve(ctx context.Context, cid string) ([]byte, error)

	// RetrieveViaGateway reads the plain content bytes for cid through the
	// configured IPFS gateway or node, without the API token.
	RetrieveViaGateway(ctx context.Context, cid string) ([]byte, error)

	// Status returns the storage metadata for cid (pins, deals, size).
	Status(ctx context.Context, cid string) (*model.Status, error)

	// Header returns the response headers of a retrieval dry run for cid.
	Header(ctx context.Context, cid string) (http.Header, error)

	// ListUploads returns the account's upload records, newest first.
	ListUploads(ctx context.Context, opts *api.ListOptions) ([]model.Upload, error)
}

// init configures a default global zap logger for the SDK. Applications may
// replace it with zap.ReplaceGlobals(...) if they need custom logging.
func init() {
	c := zap.Config{
		Level:            zap.NewAtomicLevelAt(zap.InfoLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := c.Build()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
}

// Core is the concrete SDK implementation. It embeds the validated runtime
// configuration and holds the API and storage clients.
type Core struct {
	*config.Config
	apiClient *api.Client
	store     *storage.Client
}

// NewSDK initializes the SDK with validated configuration: the bearer token
// is resolved (inline or from the token file), defaults are applied, and the
// API and gateway clients are constructed. Returns an error wrapping
// api.ErrConfiguration when the configuration is invalid.
func NewSDK(cfg *config.Config, opts ...api.Option) (*Core, error) {
	apiClient, err := api.New(cfg, opts...)
	if err != nil {
		return nil, err
	}

	if cfg.Debug {
		raiseLogLevel()
	}

	cfg.Timeouts = cfg.Timeouts.WithDefaults()

	return &Core{
		Config:    cfg,
		apiClient: apiClient,
		store:     storage.NewStorage(cfg.GatewayURL, cfg.IpfsURL),
	}, nil
}

// raiseLogLevel rebuilds the global logger at debug level.
func raiseLogLevel() {
	c := zap.Config{
		Level:            zap.NewAtomicLevelAt(zap.DebugLevel),
		Development:      true,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
	logger, err := c.Build()
	if err != nil {
		zap.L().Error("debug logger init failed", zap.Error(err))
		return
	}
	zap.ReplaceGlobals(logger)
}

// API returns the underlying API client for advanced operations.
func (c *Core) API() *api.Client {
	return c.apiClient
}

// Upload stores the local file at path and returns its CID.
func (c *Core) Upload(ctx context.Context, path string, name string) (string, error) {
	return c.apiClient.Upload(ctx, path, name)
}

// UploadData stores the contents of r and returns the assigned CID.
func (c *Core) UploadData(ctx context.Context, name string, r io.Reader) (string, error) {
	return c.apiClient.UploadData(ctx, name, r)
}

// Retrieve downloads the CAR bytes stored under cid via the API.
func (c *Core) Retrieve(ctx context.Context, cid string) ([]byte, error) {
	return c.apiClient.Retrieve(ctx, cid)
}

// RetrieveViaGateway reads the plain content bytes for cid through the
// configured gateway or node.
func (c *Core) RetrieveViaGateway(ctx context.Context, cid string) ([]byte, error) {
	if c.store == nil {
		return nil, fmt.Errorf("gateway client not configured")
	}
	return c.store.ReadFile(ctx, cid)
}

// Status returns the storage metadata for cid.
func (c *Core) Status(ctx context.Context, cid string) (*model.Status, error) {
	return c.apiClient.Status(ctx, cid)
}

// Header returns the response headers of a retrieval dry run for cid.
func (c *Core) Header(ctx context.Context, cid string) (http.Header, error) {
	return c.apiClient.Header(ctx, cid)
}

// ListUploads returns the account's upload records, newest first.
func (c *Core) ListUploads(ctx context.Context, opts *api.ListOptions) ([]model.Upload, error) {
	return c.apiClient.ListUploads(ctx, opts)
}

var _ W3Storage = (*Core)(nil)
