// Package source reads the record collection the search widget filters.
// The collection is fetched whole on every request; nothing is cached.
package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"dexsearch/internal/domain"
)

// maxBodyBytes caps how much of a response is read
const maxBodyBytes = 32 << 20

// Source returns the full record collection
type Source interface {
	Fetch(ctx context.Context) ([]domain.Record, error)
	Location() string
}

// ErrorKind classifies fetch failures
type ErrorKind int

const (
	NetworkError ErrorKind = iota
	StatusError
	ParseError
)

func (k ErrorKind) String() string {
	switch k {
	case NetworkError:
		return "network error"
	case StatusError:
		return "bad response"
	case ParseError:
		return "parse error"
	default:
		return "unknown error"
	}
}

// FetchError describes why the collection could not be read
type FetchError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// KindOf returns the FetchError kind of err, or NetworkError for anything else
func KindOf(err error) ErrorKind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return NetworkError
}

// New picks an implementation from the location: http(s) URLs are fetched,
// file:// URLs and bare paths are read from disk.
func New(location string, timeout time.Duration) (Source, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, errors.New("empty source location")
	}

	u, err := url.Parse(location)
	if err != nil || u.Scheme == "" || len(u.Scheme) == 1 {
		// bare path, including Windows drive letters
		return NewFileSource(location), nil
	}

	switch u.Scheme {
	case "http", "https":
		return NewHTTPSource(location, &http.Client{Timeout: timeout}), nil
	case "file":
		return NewFileSource(u.Path), nil
	default:
		return nil, fmt.Errorf("unsupported source scheme %q", u.Scheme)
	}
}

// HTTPSource GETs the collection from a fixed URL
type HTTPSource struct {
	url    string
	client *http.Client
}

// NewHTTPSource creates a source for url. A nil client uses http.DefaultClient.
func NewHTTPSource(url string, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{url: url, client: client}
}

func (s *HTTPSource) Location() string {
	return s.url
}

// Fetch performs one GET and decodes the JSON array
func (s *HTTPSource) Fetch(ctx context.Context) ([]domain.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, &FetchError{Kind: NetworkError, Message: "failed to build request", Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &FetchError{Kind: NetworkError, Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &FetchError{Kind: StatusError, Message: fmt.Sprintf("unexpected status %s", resp.Status)}
	}

	return decode(io.LimitReader(resp.Body, maxBodyBytes))
}

// FileSource reads the collection from a local JSON file
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Location() string {
	return s.path
}

func (s *FileSource) Fetch(ctx context.Context) ([]domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, &FetchError{Kind: NetworkError, Message: "cancelled", Err: err}
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, &FetchError{Kind: NetworkError, Message: "failed to open " + s.path, Err: err}
	}
	defer f.Close()

	return decode(f)
}

func decode(r io.Reader) ([]domain.Record, error) {
	var records []domain.Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, &FetchError{Kind: ParseError, Message: "invalid record list", Err: err}
	}
	if records == nil {
		// JSON null
		records = []domain.Record{}
	}
	return records, nil
}
