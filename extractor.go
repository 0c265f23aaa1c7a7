package dupfind

import "sort"

// Match describes the single longest substring shared between two
// documents. DocA is always less than DocB. StartA and StartB are
// character offsets relative to each document's own start; Length is a
// character count.
type Match struct {
	DocA, DocB     int64
	StartA, StartB int
	Length         int
}

// docPair is the best-match-per-pair reduction key.
type docPair struct{ a, b int64 }

// ExtractDuplicates walks idx's LCP array, resolves each pair of
// adjacent suffixes to their source documents via store, and returns the
// single longest shared substring for every document pair that shares
// at least minLength characters. idx must already be Built.
//
// Every non-adjacent pair of suffixes in SA shares at most the minimum
// LCP between them, so the longest common substring between any two
// documents is realized by some adjacent SA pair; walking adjacent pairs
// therefore observes every pairwise maximum at least once.
func ExtractDuplicates(store *DocumentStore, idx *SuffixIndex, minLength int) ([]Match, error) {
	sa, err := idx.SA()
	if err != nil {
		return nil, err
	}
	lcp, err := idx.LCP()
	if err != nil {
		return nil, err
	}

	best := make(map[docPair]Match)
	for i := 0; i < len(lcp); i++ {
		a, b := sa[i], sa[i+1]

		docA, err := store.Locate(a)
		if err != nil {
			continue // only possible at a malformed store's edges
		}
		docB, err := store.Locate(b)
		if err != nil {
			continue
		}
		if docA.ID == docB.ID {
			continue
		}

		posA := a - docA.Start
		posB := b - docB.Start
		length := min3(lcp[i], docA.Length-posA, docB.Length-posB)
		if length < minLength {
			continue
		}

		var m Match
		if docA.ID < docB.ID {
			m = Match{DocA: docA.ID, DocB: docB.ID, StartA: posA, StartB: posB, Length: length}
		} else {
			m = Match{DocA: docB.ID, DocB: docA.ID, StartA: posB, StartB: posA, Length: length}
		}

		key := docPair{m.DocA, m.DocB}
		if prev, ok := best[key]; !ok || m.Length > prev.Length {
			best[key] = m
		}
	}

	matches := make([]Match, 0, len(best))
	for _, m := range best {
		if m.Length >= minLength {
			matches = append(matches, m)
		}
	}
	sortMatches(matches)
	return matches, nil
}

// sortMatches orders matches by length descending, then DocA ascending,
// then DocB ascending.
func sortMatches(matches []Match) {
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Length != matches[j].Length {
			return matches[i].Length > matches[j].Length
		}
		if matches[i].DocA != matches[j].DocA {
			return matches[i].DocA < matches[j].DocA
		}
		return matches[i].DocB < matches[j].DocB
	})
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
