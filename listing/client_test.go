package listing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper: serve a fixed body and record the requested path
func setupListingServer(t *testing.T, status int, body string) (*httptest.Server, *string) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server, &gotPath
}

func TestPageURL(t *testing.T) {
	c := NewClient("https://api.example.com/post/", nil, "")

	assert.Equal(t,
		"https://api.example.com/post/categoryPostPagination/2/0/50/",
		c.PageURL(2, 0, 50),
	)
}

func TestFetchPage_Success(t *testing.T) {
	server, gotPath := setupListingServer(t, http.StatusOK, `{
		"postResponseDto": [
			{"title": {"rendered": "A"}, "post_url": "/a"},
			{"title": {"rendered": "B"}, "post_url": "/b", "extra": 1}
		]
	}`)

	c := NewClient(server.URL+"/post", server.Client(), "newspulse-test")
	items, err := c.FetchPage(context.Background(), 2, 1, 25)
	require.NoError(t, err)

	assert.Equal(t, "/post/categoryPostPagination/2/1/25/", *gotPath)
	require.Len(t, items, 2)
	require.NotNil(t, items[0].Title)
	assert.Equal(t, "A", items[0].Title.Rendered)
	assert.Equal(t, "/a", items[0].PostURL)
	assert.Equal(t, "/b", items[1].PostURL)
}

func TestFetchPage_MissingArray(t *testing.T) {
	server, _ := setupListingServer(t, http.StatusOK, `{"other": []}`)

	c := NewClient(server.URL, server.Client(), "")
	items, err := c.FetchPage(context.Background(), 2, 0, 50)
	require.NoError(t, err)
	assert.Empty(t, items)
}

// TestFetchPage_MalformedEntries verifies odd entries are kept as zero items
func TestFetchPage_MalformedEntries(t *testing.T) {
	server, _ := setupListingServer(t, http.StatusOK, `{
		"postResponseDto": [
			{"title": "not an object", "post_url": "/a"},
			42,
			{"post_url": "/c"}
		]
	}`)

	c := NewClient(server.URL, server.Client(), "")
	items, err := c.FetchPage(context.Background(), 2, 0, 50)
	require.NoError(t, err)

	require.Len(t, items, 3, "raw count includes malformed entries")
	assert.Equal(t, RawItem{}, items[0])
	assert.Equal(t, RawItem{}, items[1])
	assert.Nil(t, items[2].Title)
	assert.Equal(t, "/c", items[2].PostURL)
}

func TestFetchPage_HTTPError(t *testing.T) {
	server, _ := setupListingServer(t, http.StatusInternalServerError, `oops`)

	c := NewClient(server.URL, server.Client(), "")
	_, err := c.FetchPage(context.Background(), 2, 0, 50)
	assert.ErrorIs(t, err, ErrHTTPStatus)
}

func TestFetchPage_InvalidJSON(t *testing.T) {
	server, _ := setupListingServer(t, http.StatusOK, `<html>not json</html>`)

	c := NewClient(server.URL, server.Client(), "")
	_, err := c.FetchPage(context.Background(), 2, 0, 50)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode listing page")
}

func TestFetchPage_ConnectionRefused(t *testing.T) {
	server, _ := setupListingServer(t, http.StatusOK, `{}`)
	url := server.URL
	server.Close()

	c := NewClient(url, nil, "")
	_, err := c.FetchPage(context.Background(), 2, 0, 50)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch listing page")
}

func TestFetchPage_SetsUserAgent(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(`{"postResponseDto": []}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, server.Client(), "newspulse/1.0")
	_, err := c.FetchPage(context.Background(), 2, 0, 50)
	require.NoError(t, err)
	assert.Equal(t, "newspulse/1.0", gotUA)
}
