package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shamank/web3storage-sdk-go/pkg/model"
)

// ListOptions controls pagination of ListUploads. The listing is ordered by
// creation date, newest first; pass the creation date of the oldest record
// of the previous batch as Before to fetch the next one.
type ListOptions struct {
	// Before restricts the listing to uploads created strictly before the
	// given time. Zero means no restriction.
	Before time.Time
	// Size caps the number of records returned per call. Zero uses the
	// service's default batch size.
	Size int
}

// ListUploads returns the upload records of the authenticated account,
// newest first. The listing covers the whole account, not just the token in
// use. A nil opts fetches the first batch with the service defaults.
func (c *Client) ListUploads(ctx context.Context, opts *ListOptions) ([]model.Upload, error) {
	ctx, cancel := ensureDeadline(ctx, c.timeouts.Query)
	defer cancel()

	path := "/user/uploads"
	if opts != nil {
		q := url.Values{}
		if !opts.Before.IsZero() {
			q.Set("before", opts.Before.UTC().Format(time.RFC3339))
		}
		if opts.Size > 0 {
			q.Set("size", strconv.Itoa(opts.Size))
		}
		if len(q) > 0 {
			path += "?" + q.Encode()
		}
	}

	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
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

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read uploads body: %w", err)
	}

	var uploads []model.Upload
	if err := json.Unmarshal(payload, &uploads); err != nil {
		return nil, fmt.Errorf("decode uploads response: %w", err)
	}
	return uploads, nil
}
