package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `[
  {"Name":"Pikachu","Types":["Electric"],"img":"http://img/pikachu.png","MaxCP":"1000"},
  {"Name":"Pidgey","Types":["Normal","Flying"],"img":"http://img/pidgey.png"},
  {"Name":"Charmander","Types":["Fire"],"img":"http://img/charmander.png","MaxCP":"500"}
]`

func TestHTTPSourceFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleJSON))
	}))
	defer srv.Close()

	records, err := NewHTTPSource(srv.URL, srv.Client()).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "Pikachu", records[0].Name)
	assert.Equal(t, []string{"Electric"}, records[0].Types)
	assert.Equal(t, "http://img/pikachu.png", records[0].ImageURL)
	require.True(t, records[0].HasMaxCP())
	assert.Equal(t, 1000, records[0].MaxCP.Value)

	assert.False(t, records[1].HasMaxCP())
	assert.Equal(t, []string{"Normal", "Flying"}, records[1].Types)
}

func TestHTTPSourceStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewHTTPSource(srv.URL, nil).Fetch(context.Background())
	require.Error(t, err)
	assert.Equal(t, StatusError, KindOf(err))
	assert.Contains(t, err.Error(), "404")
}

func TestHTTPSourceParseError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"`))
	}))
	defer srv.Close()

	_, err := NewHTTPSource(srv.URL, nil).Fetch(context.Background())
	require.Error(t, err)
	assert.Equal(t, ParseError, KindOf(err))
}

func TestHTTPSourceNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewHTTPSource(url, nil).Fetch(context.Background())
	require.Error(t, err)
	assert.Equal(t, NetworkError, KindOf(err))
}

func TestHTTPSourceHonoursContext(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewHTTPSource(srv.URL, nil).Fetch(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleJSON), 0644))

	records, err := NewFileSource(path).Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 3)

	_, err = NewFileSource(filepath.Join(t.TempDir(), "missing.json")).Fetch(context.Background())
	require.Error(t, err)
	assert.Equal(t, NetworkError, KindOf(err))
}

func TestNullBodyIsEmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	require.NoError(t, os.WriteFile(path, []byte("null"), 0644))

	records, err := NewFileSource(path).Fetch(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestNewPicksImplementation(t *testing.T) {
	tests := []struct {
		location string
		wantHTTP bool
		wantLoc  string
	}{
		{"https://example.com/records.json", true, "https://example.com/records.json"},
		{"http://localhost:8080/x", true, "http://localhost:8080/x"},
		{"file:///tmp/records.json", false, "/tmp/records.json"},
		{"/tmp/records.json", false, "/tmp/records.json"},
		{"records.json", false, "records.json"},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			src, err := New(tt.location, time.Second)
			require.NoError(t, err)
			_, isHTTP := src.(*HTTPSource)
			assert.Equal(t, tt.wantHTTP, isHTTP)
			assert.Equal(t, tt.wantLoc, src.Location())
		})
	}

	_, err := New("ftp://example.com/x", 0)
	assert.Error(t, err)
	_, err = New("  ", 0)
	assert.Error(t, err)
}
