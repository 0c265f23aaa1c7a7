package dupfind

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func storeOf(t *testing.T, docs map[int64]string) *DocumentStore {
	t.Helper()
	store := NewDefaultDocumentStore()
	ids := make([]int64, 0, len(docs))
	for id := range docs {
		ids = append(ids, id)
	}
	for _, id := range ids {
		ct, err := NewCharText([]byte(docs[id]))
		require.NoError(t, err)
		require.True(t, store.Add(ct, id))
	}
	return store
}

// TestFindDuplicatesScenarios exercises literal end-to-end scenarios,
// including UTF-8 multi-document input and threshold edge cases.
func TestFindDuplicatesScenarios(t *testing.T) {
	finder := NewFinder()

	t.Run("simple prefix", func(t *testing.T) {
		store := storeOf(t, map[int64]string{1: "hello world", 2: "Say hello world"})
		matches, err := finder.FindDuplicates(store, 5)
		require.NoError(t, err)
		require.Equal(t, []Match{{DocA: 1, DocB: 2, StartA: 0, StartB: 4, Length: 11}}, matches)
	})

	t.Run("tie-broken pick", func(t *testing.T) {
		store := storeOf(t, map[int64]string{1: "The quick brown fox", 2: "The slow brown cat"})
		matches, err := finder.FindDuplicates(store, 4)
		require.NoError(t, err)
		require.Equal(t, []Match{{DocA: 1, DocB: 2, StartA: 9, StartB: 8, Length: 7}}, matches)
	})

	t.Run("utf-8 multi-document", func(t *testing.T) {
		store := storeOf(t, map[int64]string{
			1: "გამარჯობა მსოფლიო",
			2: "გამარჯობა კარგო",
			3: "ჩემო კარგო",
			4: "მსოფლიო ულამაზესია!",
		})
		matches, err := finder.FindDuplicates(store, 5)
		require.NoError(t, err)
		require.ElementsMatch(t, []Match{
			{DocA: 1, DocB: 2, StartA: 0, StartB: 0, Length: 10},
			{DocA: 2, DocB: 3, StartA: 9, StartB: 4, Length: 6},
			{DocA: 1, DocB: 4, StartA: 10, StartB: 0, Length: 7},
		}, matches)
	})

	t.Run("zero threshold", func(t *testing.T) {
		store := storeOf(t, map[int64]string{1: "test", 2: "test"})
		matches, err := finder.FindDuplicates(store, 0)
		require.NoError(t, err)
		require.Equal(t, []Match{{DocA: 1, DocB: 2, StartA: 0, StartB: 0, Length: 4}}, matches)
	})

	t.Run("threshold above maximum", func(t *testing.T) {
		store := storeOf(t, map[int64]string{1: "short text", 2: "short text"})
		matches, err := finder.FindDuplicates(store, 100)
		require.NoError(t, err)
		require.Empty(t, matches)
	})

	t.Run("single document", func(t *testing.T) {
		store := storeOf(t, map[int64]string{1: "anything"})
		matches, err := finder.FindDuplicates(store, 1)
		require.NoError(t, err)
		require.Empty(t, matches)
	})
}

// TestFindDuplicatesIdempotent checks that running the full pipeline
// twice on the same inputs yields an identical Match list.
func TestFindDuplicatesIdempotent(t *testing.T) {
	finder := NewFinder()
	docs := map[int64]string{1: "the rain in spain", 2: "the plain in spain", 3: "mostly plain"}

	first, err := finder.FindDuplicates(storeOf(t, docs), 3)
	require.NoError(t, err)
	second, err := finder.FindDuplicates(storeOf(t, docs), 3)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestFindDuplicatesSortOrder(t *testing.T) {
	store := storeOf(t, map[int64]string{
		1: "xxxxxabc",
		2: "xxxabc",
		3: "xxxxabc",
	})
	matches, err := NewFinder().FindDuplicates(store, 1)
	require.NoError(t, err)
	for i := 1; i < len(matches); i++ {
		prev, cur := matches[i-1], matches[i]
		require.False(t, cur.Length > prev.Length, "matches must be sorted by length descending")
		if cur.Length == prev.Length {
			require.False(t, cur.DocA < prev.DocA, "ties must be ascending by DocA")
		}
	}
}
