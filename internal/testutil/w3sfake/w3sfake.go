// Package w3sfake provides an in-memory stand-in for the Web3.Storage HTTP
// API, used by package tests. It implements the upload, car, status and
// user/uploads endpoints over a map of stored objects with deterministic
// CIDs, and captures request details for later inspection.
package w3sfake

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shamank/web3storage-sdk-go/pkg/model"
)

// Fake is an in-memory Web3.Storage API double. The zero value is not
// usable; construct it with New.
type Fake struct {
	// Token, when non-empty, is the bearer token required on every request;
	// mismatches are answered with 401.
	Token string

	mu      sync.Mutex
	objects map[string][]byte
	records map[string]model.Upload
	clock   time.Time

	lastAuth  string
	lastXName string
}

// New returns a Fake that accepts the given bearer token ("" disables the
// auth check).
func New(token string) *Fake {
	return &Fake{
		Token:   token,
		objects: make(map[string][]byte),
		records: make(map[string]model.Upload),
		clock:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

// CIDFor returns the deterministic CID the fake assigns to the given
// content bytes.
func CIDFor(data []byte) string {
	sum := sha256.Sum256(data)
	return "bafkfake" + hex.EncodeToString(sum[:8])
}

// LastAuth returns the Authorization header of the most recent request.
func (f *Fake) LastAuth() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastAuth
}

// LastXName returns the X-NAME header of the most recent upload request.
func (f *Fake) LastXName() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastXName
}

// Count returns the number of stored objects.
func (f *Fake) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.objects)
}

// Handler returns the HTTP handler implementing the fake API surface.
func (f *Fake) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/upload", f.handleUpload)
	mux.HandleFunc("/car/", f.handleCar)
	mux.HandleFunc("/status/", f.handleStatus)
	mux.HandleFunc("/user/uploads", f.handleUploads)
	return f.withAuth(mux)
}

func (f *Fake) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		f.mu.Lock()
		f.lastAuth = auth
		f.mu.Unlock()
		if f.Token != "" && auth != "Bearer "+f.Token {
			writeError(w, http.StatusUnauthorized, "HTTPError", "Unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (f *Fake) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "HTTPError", "Method Not Allowed")
		return
	}

	name := r.Header.Get("X-NAME")
	f.mu.Lock()
	f.lastXName = name
	f.mu.Unlock()
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}

	var data []byte
	if file, _, err := r.FormFile("file"); err == nil {
		data, err = io.ReadAll(file)
		_ = file.Close()
		if err != nil {
			writeError(w, http.StatusBadRequest, "HTTPError", "bad multipart body")
			return
		}
	} else {
		// raw body uploads, as issued by the original client
		var readErr error
		data, readErr = io.ReadAll(r.Body)
		if readErr != nil {
			writeError(w, http.StatusBadRequest, "HTTPError", "bad body")
			return
		}
	}

	cid := CIDFor(data)
	f.mu.Lock()
	f.clock = f.clock.Add(time.Second)
	f.objects[cid] = data
	f.records[cid] = model.Upload{
		CID:     cid,
		Name:    name,
		Type:    "Upload",
		DagSize: int64(len(data)),
		Created: f.clock,
		Pins: []model.Pin{{
			PeerID:  "12D3KooWFake",
			Status:  model.PinStatusPinned,
			Updated: f.clock,
		}},
	}
	f.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]string{"cid": cid})
}

func (f *Fake) handleCar(w http.ResponseWriter, r *http.Request) {
	cid := strings.TrimPrefix(r.URL.Path, "/car/")
	f.mu.Lock()
	data, ok := f.objects[cid]
	f.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "HTTPError", fmt.Sprintf("NFT not found: %s", cid))
		return
	}

	w.Header().Set("Content-Type", "application/vnd.ipld.car")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}
	_, _ = w.Write(data)
}

func (f *Fake) handleStatus(w http.ResponseWriter, r *http.Request) {
	cid := strings.TrimPrefix(r.URL.Path, "/status/")
	f.mu.Lock()
	rec, ok := f.records[cid]
	f.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "HTTPError", fmt.Sprintf("NFT not found: %s", cid))
		return
	}

	writeJSON(w, http.StatusOK, model.Status{
		CID:     rec.CID,
		DagSize: rec.DagSize,
		Created: rec.Created,
		Pins:    rec.Pins,
		Deals:   rec.Deals,
	})
}

func (f *Fake) handleUploads(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	uploads := make([]model.Upload, 0, len(f.records))
	for _, rec := range f.records {
		uploads = append(uploads, rec)
	}
	f.mu.Unlock()

	// newest first, like the real listing
	sort.Slice(uploads, func(i, j int) bool {
		return uploads[i].Created.After(uploads[j].Created)
	})

	q := r.URL.Query()
	if beforeRaw := q.Get("before"); beforeRaw != "" {
		before, err := time.Parse(time.RFC3339, beforeRaw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "HTTPError", "bad before parameter")
			return
		}
		filtered := uploads[:0]
		for _, up := range uploads {
			if up.Created.Before(before) {
				filtered = append(filtered, up)
			}
		}
		uploads = filtered
	}
	if sizeRaw := q.Get("size"); sizeRaw != "" {
		size, err := strconv.Atoi(sizeRaw)
		if err != nil || size < 1 {
			writeError(w, http.StatusBadRequest, "HTTPError", "bad size parameter")
			return
		}
		if len(uploads) > size {
			uploads = uploads[:size]
		}
	}

	writeJSON(w, http.StatusOK, uploads)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, name, message string) {
	writeJSON(w, status, map[string]string{"name": name, "message": message})
}

// Start runs handler on a local test server, skipping the test when the
// sandbox denies socket operations.
func Start(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			msg := fmt.Sprint(r)
			if strings.Contains(msg, "operation not permitted") {
				t.Skip("network operations not permitted in sandbox")
			}
			panic(r)
		}
	}()
	return httptest.NewServer(handler)
}
