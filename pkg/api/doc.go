// Package api provides the low-level HTTP client for the Web3.Storage API.
//
// The client authenticates every request with a bearer token resolved at
// construction time and exposes one method per remote endpoint. Each call is
// an independent, synchronous request/response exchange; there are no
// retries and no client-side state beyond the immutable token.
//
// # Construction
//
//	cfg := &config.Config{Token: "eyJhbGciOi..."}
//	client, err := api.New(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Construction fails with ErrConfiguration when no token can be resolved
// from the configuration or the conventional token file.
//
// # Operations
//
//   - Upload / UploadData: multipart POST /upload, returns the assigned CID.
//     Inputs over MaxUploadSize (100 MiB) fail with ErrPayloadTooLarge
//     before any network I/O.
//   - Retrieve: GET /car/{cid}, returns the verbatim CAR bytes.
//   - Status: GET /status/{cid}, returns pins and Filecoin deals.
//   - Header: HEAD /car/{cid}, returns response headers only.
//   - ListUploads: GET /user/uploads, newest first, with before/size
//     pagination via ListOptions.
//
// # Errors
//
// Failures are classified with sentinel errors (ErrNotFound,
// ErrPayloadTooLarge, ErrUpload, ErrInvalidCID, ErrConfiguration) and can be
// inspected with errors.Is. HTTP-level failures additionally carry a
// *ResponseError with the status code and the service's error document:
//
//	data, err := client.Retrieve(ctx, cid)
//	if errors.Is(err, api.ErrNotFound) {
//		// unknown CID
//	}
//	var respErr *api.ResponseError
//	if errors.As(err, &respErr) {
//		log.Printf("service said: %s", respErr.Message)
//	}
//
// # CID Handling
//
// Content identifiers are opaque strings passed through to the service
// unchanged. The WithCIDCheck option enables client-side validation for
// callers that prefer failing fast on malformed identifiers.
//
// # Concurrency
//
// A Client is immutable after construction and safe for concurrent use.
// Deadlines come from the caller's context; when the context carries none,
// the per-operation timeouts from config.Timeouts apply.
package api
