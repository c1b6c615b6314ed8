package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/shamank/web3storage-sdk-go/pkg/config"
)

// Upload stores the local file at path with the service and returns the CID
// assigned to it. An optional display name is attached to the upload; when
// empty, the file's base name is used.
//
// Files larger than MaxUploadSize fail with an error wrapping
// ErrPayloadTooLarge before any network I/O takes place. Service rejections
// and transport failures wrap ErrUpload.
func (c *Client) Upload(ctx context.Context, path string, name string) (string, error) {
	fullPath, err := config.ExpandPath(path)
	if err != nil {
		return "", fmt.Errorf("%w: resolve path %q: %v", ErrUpload, path, err)
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %q is a directory", ErrUpload, path)
	}
	if info.Size() > MaxUploadSize {
		return "", fmt.Errorf("%w: %q is %d bytes, limit is %d", ErrPayloadTooLarge, path, info.Size(), int64(MaxUploadSize))
	}

	f, err := os.Open(fullPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if name == "" {
		name = filepath.Base(fullPath)
	}
	return c.UploadData(ctx, name, f)
}

// UploadData stores the contents of r with the service under the given
// display name and returns the assigned CID. The reader is drained into
// memory before the request is built; inputs larger than MaxUploadSize fail
// with an error wrapping ErrPayloadTooLarge without contacting the service.
func (c *Client) UploadData(ctx context.Context, name string, r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxUploadSize+1))
	if err != nil {
		return "", fmt.Errorf("%w: read payload: %v", ErrUpload, err)
	}
	if len(data) > MaxUploadSize {
		return "", fmt.Errorf("%w: payload is over %d bytes", ErrPayloadTooLarge, int64(MaxUploadSize))
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", partFilename(name))
	if err != nil {
		return "", fmt.Errorf("%w: build multipart body: %v", ErrUpload, err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("%w: build multipart body: %v", ErrUpload, err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("%w: build multipart body: %v", ErrUpload, err)
	}

	ctx, cancel := ensureDeadline(ctx, c.timeouts.Upload)
	defer cancel()

	req, err := c.newRequest(ctx, http.MethodPost, "/upload", body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if name != "" {
		req.Header.Set("X-NAME", url.PathEscape(name))
	}

	resp, err := c.do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpload, err)
	}
	payload, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", ErrUpload, err)
	}

	var result struct {
		CID string `json:"cid"`
	}
	if err := json.Unmarshal(payload, &result); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrUpload, err)
	}
	if strings.TrimSpace(result.CID) == "" {
		return "", fmt.Errorf("%w: missing cid in response", ErrUpload)
	}

	zap.L().Debug("upload complete",
		zap.String("name", name),
		zap.String("cid", result.CID),
		zap.Int("size", len(data)))
	return result.CID, nil
}

// partFilename keeps the multipart filename to the final path element so the
// display name never leaks directory structure into the form data.
func partFilename(name string) string {
	if name == "" {
		return "file"
	}
	return filepath.Base(name)
}
