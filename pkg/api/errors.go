package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors returned by the client. Use errors.Is to classify
// failures; ResponseError values returned for HTTP-level failures match
// the corresponding sentinels through their Is method.
var (
	// ErrConfiguration indicates the client could not be constructed from
	// the supplied configuration (missing or malformed token, bad endpoint).
	ErrConfiguration = errors.New("invalid configuration")
	// ErrPayloadTooLarge indicates the upload exceeds the service's
	// per-request size limit.
	ErrPayloadTooLarge = errors.New("payload exceeds upload size limit")
	// ErrUpload indicates the service or transport rejected an upload.
	ErrUpload = errors.New("upload failed")
	// ErrNotFound indicates the requested CID is unknown to the service.
	ErrNotFound = errors.New("content not found")
	// ErrInvalidCID indicates client-side CID validation rejected the
	// identifier before any request was made. Empty identifiers are always
	// rejected; full parsing requires the WithCIDCheck option.
	ErrInvalidCID = errors.New("invalid content identifier")
)

// ResponseError represents a non-2xx HTTP response returned by the service.
// Name and Message carry the service's JSON error document when present.
type ResponseError struct {
	StatusCode int
	Name       string
	Message    string
	Body       []byte
}

func (e *ResponseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Message != "" {
		return fmt.Sprintf("api error: status=%d name=%s message=%s", e.StatusCode, e.Name, e.Message)
	}
	return fmt.Sprintf("api error: status=%d body=%s", e.StatusCode, string(e.Body))
}

// Is maps well-known HTTP statuses onto the package sentinels so that
// errors.Is(err, ErrNotFound) works on service responses.
func (e *ResponseError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrPayloadTooLarge:
		return e.StatusCode == http.StatusRequestEntityTooLarge
	}
	return false
}

// newResponseError builds a ResponseError from a drained response body,
// decoding the service's {"name":..,"message":..} error document when the
// body is JSON.
func newResponseError(statusCode int, body []byte) *ResponseError {
	respErr := &ResponseError{
		StatusCode: statusCode,
		Body:       body,
	}
	var doc struct {
		Name    string `json:"name"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &doc); err == nil {
		respErr.Name = doc.Name
		respErr.Message = doc.Message
	}
	return respErr
}
