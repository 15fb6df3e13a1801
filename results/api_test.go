package results

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Test helper: a router over a CSV store seeded with results
func setupTestResultsRouter(t *testing.T, seed []Result) *gin.Engine {
	store, _ := createTestCSVStore(t)
	for _, r := range seed {
		require.NoError(t, store.Append(r))
	}
	return NewAPIServer(store).SetupRouter()
}

func sampleResults() []Result {
	return []Result{
		{Title: "A", PrimaryLabel: "Positive", SubCategory: "Happy", URL: "https://x/a"},
		{Title: "B", PrimaryLabel: "Negative.", SubCategory: "Angry", URL: "https://x/b"},
		{Title: "C", PrimaryLabel: "The reader will feel positive", SubCategory: "Hopeful", URL: "https://x/c"},
		{Title: "D", PrimaryLabel: "None", SubCategory: "None", URL: "https://x/d"},
		{Title: "E", PrimaryLabel: "Neutral", SubCategory: "Neutral", URL: "https://x/e"},
	}
}

func getJSON(t *testing.T, router *gin.Engine, url string, v any) int {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
	return w.Code
}

func TestHandleListResults_Empty(t *testing.T) {
	router := setupTestResultsRouter(t, nil)

	var resp ListResultsResponse
	code := getJSON(t, router, "/api/v1/results", &resp)

	assert.Equal(t, http.StatusOK, code)
	assert.NotNil(t, resp.Results, "results should be an empty array, not null")
	assert.Empty(t, resp.Results)
	assert.Equal(t, 0, resp.Total)
	assert.Equal(t, 50, resp.Limit)
}

func TestHandleListResults_All(t *testing.T) {
	router := setupTestResultsRouter(t, sampleResults())

	var resp ListResultsResponse
	code := getJSON(t, router, "/api/v1/results", &resp)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 5, resp.Total)
	require.Len(t, resp.Results, 5)
	assert.Equal(t, "A", resp.Results[0].Title)
	assert.Equal(t, "E", resp.Results[4].Title)
}

func TestFilterByPrimary(t *testing.T) {
	router := setupTestResultsRouter(t, sampleResults())

	tests := []struct {
		primary string
		titles  []string
	}{
		{"positive", []string{"A", "C"}},
		{"NEGATIVE", []string{"B"}},
		{"none", []string{"D"}},
		{"mixed", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.primary, func(t *testing.T) {
			var resp ListResultsResponse
			code := getJSON(t, router, "/api/v1/results?primary="+tt.primary, &resp)
			require.Equal(t, http.StatusOK, code)

			titles := []string{}
			for _, r := range resp.Results {
				titles = append(titles, r.Title)
			}
			assert.Equal(t, tt.titles, titles)
			assert.Equal(t, len(tt.titles), resp.Total)
		})
	}
}

func TestFilterBySubCategory(t *testing.T) {
	router := setupTestResultsRouter(t, sampleResults())

	var resp ListResultsResponse
	code := getJSON(t, router, "/api/v1/results?sub_category=hopeful", &resp)

	require.Equal(t, http.StatusOK, code)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "C", resp.Results[0].Title)
}

func TestPagination(t *testing.T) {
	var seed []Result
	for i := range 100 {
		seed = append(seed, Result{Title: fmt.Sprintf("T%d", i), PrimaryLabel: "Neutral", SubCategory: "Neutral", URL: fmt.Sprintf("https://x/%d", i)})
	}
	router := setupTestResultsRouter(t, seed)

	tests := []struct {
		name          string
		query         string
		expectedLimit int
		expectedCount int
		expectedFirst string
	}{
		{"default pagination", "", 50, 50, "T0"},
		{"custom limit", "?limit=10", 10, 10, "T0"},
		{"with offset", "?limit=10&offset=5", 10, 10, "T5"},
		{"offset at end", "?limit=10&offset=95", 10, 5, "T95"},
		{"offset beyond end", "?limit=10&offset=200", 10, 0, ""},
		{"max limit enforcement", "?limit=2000", 1000, 100, "T0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp ListResultsResponse
			code := getJSON(t, router, "/api/v1/results"+tt.query, &resp)

			require.Equal(t, http.StatusOK, code)
			assert.Equal(t, 100, resp.Total, "total should always be 100")
			assert.Equal(t, tt.expectedLimit, resp.Limit)
			require.Len(t, resp.Results, tt.expectedCount)
			if tt.expectedFirst != "" {
				assert.Equal(t, tt.expectedFirst, resp.Results[0].Title)
			}
		})
	}
}

func TestPagination_InvalidParameters(t *testing.T) {
	router := setupTestResultsRouter(t, sampleResults())

	tests := []struct {
		name   string
		params string
	}{
		{"invalid limit", "?limit=invalid"},
		{"negative limit", "?limit=-1"},
		{"zero limit", "?limit=0"},
		{"invalid offset", "?offset=invalid"},
		{"negative offset", "?offset=-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errResp ErrorResponse
			code := getJSON(t, router, "/api/v1/results"+tt.params, &errResp)

			assert.Equal(t, http.StatusBadRequest, code)
			assert.Equal(t, "invalid_parameter", errResp.Error.Code)
		})
	}
}

func TestHandleSummary(t *testing.T) {
	router := setupTestResultsRouter(t, sampleResults())

	var resp SummaryResponse
	code := getJSON(t, router, "/api/v1/results/summary", &resp)

	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 5, resp.Total)
	assert.Equal(t, 1, resp.ByPrimary["Positive"])
	assert.Equal(t, 1, resp.ByPrimary["None"])
	assert.Equal(t, 2, resp.BySubCategory["Neutral"]+resp.BySubCategory["None"])
	assert.Equal(t, 1, resp.BySubCategory["Hopeful"])
}

func TestSummarize_TrimsPrimaryLabel(t *testing.T) {
	summary := Summarize([]Result{
		{PrimaryLabel: "Positive", SubCategory: "Happy"},
		{PrimaryLabel: "  Positive\n", SubCategory: "Happy"},
	})

	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, map[string]int{"Positive": 2}, summary.ByPrimary)
	assert.Equal(t, map[string]int{"Happy": 2}, summary.BySubCategory)
}

type failingStore struct{}

func (failingStore) Append(Result) error      { return errors.New("append failed") }
func (failingStore) List() ([]Result, error) { return nil, errors.New("disk on fire") }
func (failingStore) Close() error            { return nil }

func TestHandleListResults_StoreError(t *testing.T) {
	router := NewAPIServer(failingStore{}).SetupRouter()

	for _, url := range []string{"/api/v1/results", "/api/v1/results/summary"} {
		var errResp ErrorResponse
		code := getJSON(t, router, url, &errResp)

		assert.Equal(t, http.StatusInternalServerError, code, url)
		assert.Equal(t, "internal_error", errResp.Error.Code, url)
	}
}

func TestCORSPreflight(t *testing.T) {
	router := setupTestResultsRouter(t, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/results", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestFilter_Combined(t *testing.T) {
	all := sampleResults()

	assert.Equal(t, all, Filter(all, "", ""), "no filters should return everything")

	got := Filter(all, "positive", "HAPPY")
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Title)

	assert.Empty(t, Filter(all, "negative", "Happy"))
}

func TestPaginate(t *testing.T) {
	all := sampleResults()

	page, err := Paginate(all, 1, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "B", page[0].Title)
	assert.Equal(t, "C", page[1].Title)

	page, err = Paginate(all, 10, 2)
	require.NoError(t, err)
	assert.NotNil(t, page)
	assert.Empty(t, page)

	page, err = Paginate(all, 3, 1000)
	require.NoError(t, err)
	assert.Len(t, page, 2)
}

func TestPaginate_InvalidArguments(t *testing.T) {
	tests := []struct {
		name    string
		input   []Result
		offset  int
		limit   int
		wantErr error
	}{
		{"negative offset", sampleResults(), -1, 10, ErrInvalidOffset},
		{"zero limit", sampleResults(), 0, 0, ErrInvalidLimit},
		{"negative limit", sampleResults(), 0, -5, ErrInvalidLimit},
		{"negative offset on empty input", nil, -3, 10, ErrInvalidOffset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := Paginate(tt.input, tt.offset, tt.limit)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, page)
		})
	}
}
