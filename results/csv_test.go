package results

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper: create a CSV store in a temp dir
func createTestCSVStore(t *testing.T) (*CSVStore, string) {
	path := filepath.Join(t.TempDir(), "result.csv")
	store, err := NewCSVStore(path)
	require.NoError(t, err)
	return store, path
}

func TestCSVStore_AppendWritesHeaderlessRows(t *testing.T) {
	store, path := createTestCSVStore(t)

	require.NoError(t, store.Append(Result{
		Title:        "A",
		PrimaryLabel: "Positive",
		SubCategory:  "Hopeful",
		URL:          "https://x/a",
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "A,Positive,Hopeful,https://x/a\n", string(data))
}

func TestCSVStore_AppendQuotesFields(t *testing.T) {
	store, path := createTestCSVStore(t)

	require.NoError(t, store.Append(Result{
		Title:        "Rates, taxes rise",
		PrimaryLabel: "Negative",
		SubCategory:  "Worried",
		URL:          "https://x/b",
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "\"Rates, taxes rise\",Negative,Worried,https://x/b\n", string(data))
}

func TestCSVStore_AppendIsAppendOnly(t *testing.T) {
	store, _ := createTestCSVStore(t)

	r := Result{Title: "A", PrimaryLabel: "None", SubCategory: "None", URL: "https://x/a"}
	require.NoError(t, store.Append(r))
	require.NoError(t, store.Append(r))

	all, err := store.List()
	require.NoError(t, err)
	assert.Len(t, all, 2, "same URL should be stored twice")
}

func TestCSVStore_ListMissingFile(t *testing.T) {
	store, _ := createTestCSVStore(t)

	all, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCSVStore_ListRoundTrip(t *testing.T) {
	store, _ := createTestCSVStore(t)

	want := []Result{
		{Title: "A", PrimaryLabel: "Positive", SubCategory: "Happy", URL: "https://x/a"},
		{Title: "B", PrimaryLabel: "Neutral", SubCategory: "Neutral", URL: "https://x/b"},
	}
	for _, r := range want {
		require.NoError(t, store.Append(r))
	}

	all, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, want, all)
}

func TestCSVStore_ListSkipsHeaderRow(t *testing.T) {
	store, path := createTestCSVStore(t)

	content := "title,palm_response,palm_sub_response,url\nA,Positive,Happy,https://x/a\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	all, err := store.List()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "A", all[0].Title)
}

func TestCSVStore_ListMalformedRow(t *testing.T) {
	store, path := createTestCSVStore(t)

	require.NoError(t, os.WriteFile(path, []byte("A,Positive\n"), 0o600))

	_, err := store.List()
	assert.Error(t, err)
}

func TestNewCSVStore_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "result.csv")

	store, err := NewCSVStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Append(Result{Title: "A", URL: "https://x/a"}))

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
