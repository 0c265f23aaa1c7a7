package dupfind

import (
	"sort"

	"github.com/viniciusth/rmq"
)

// SubstringIndex answers exact substring-containment queries against an
// already-built SuffixIndex: which documents, if any, contain a given
// pattern. It locates matches by binary-searching the suffix array,
// using an LCP range-minimum query to skip redundant character
// comparisons, then walks document ownership boundaries via a
// range-minimum query over a prev-occurrence array to collect distinct
// owning documents.
//
// This is exact containment search, not fuzzy or near-duplicate
// matching, and it reports once per document rather than once per
// document pair, so it does not reopen either of those Non-goals; it is
// a read-only query over the index DuplicateExtractor already builds.
type SubstringIndex struct {
	chars  []Character
	sa     []int
	lcp    []int
	lcpRMQ *rmq.RMQHybridNaive[int]

	docIDs  []int64 // docIDs[i]: id of the document Locate attributes sa[i] to, or -1 for the last document's trailing separator
	prev    []int
	prevRMQ *rmq.RMQHybridNaive[int]
}

// NewSubstringIndex builds a SubstringIndex from a Built SuffixIndex and
// the DocumentStore it was built over.
func NewSubstringIndex(store *DocumentStore, idx *SuffixIndex) (*SubstringIndex, error) {
	sa, err := idx.SA()
	if err != nil {
		return nil, err
	}
	lcp, err := idx.LCP()
	if err != nil {
		return nil, err
	}

	text := idx.Text()
	n := text.Len()
	chars := make([]Character, n)
	for i := 0; i < n; i++ {
		chars[i], _ = text.CharAt(i)
	}

	docIDs := make([]int64, n)
	for i, pos := range sa {
		if dp, err := store.Locate(pos); err == nil {
			docIDs[i] = dp.ID
		} else {
			docIDs[i] = -1
		}
	}

	si := &SubstringIndex{
		chars:  chars,
		sa:     sa,
		lcp:    lcp,
		docIDs: docIDs,
	}
	if n > 1 {
		si.lcpRMQ = rmq.NewRMQHybridNaive(lcp)
	}
	si.prev = buildDocPrevArray(docIDs)
	si.prevRMQ = rmq.NewRMQHybridNaive(si.prev)
	return si, nil
}

// buildDocPrevArray returns, for every SA rank i, the most recent prior
// SA rank owned by the same document, or -1 if none.
func buildDocPrevArray(docIDs []int64) []int {
	prev := make([]int, len(docIDs))
	last := make(map[int64]int, len(docIDs))
	for i, id := range docIDs {
		if p, ok := last[id]; ok {
			prev[i] = p
		} else {
			prev[i] = -1
		}
		last[id] = i
	}
	return prev
}

// Contains reports whether any document contains pattern as a substring.
func (si *SubstringIndex) Contains(pattern string) (bool, error) {
	p, err := charsOf(pattern)
	if err != nil {
		return false, err
	}
	l, r := si.boundaries(p)
	return l != -1 && l <= r, nil
}

// FindDocuments returns up to k distinct document ids containing pattern
// as a substring. Order is unspecified.
func (si *SubstringIndex) FindDocuments(pattern string, k int) ([]int64, error) {
	p, err := charsOf(pattern)
	if err != nil {
		return nil, err
	}
	l, r := si.boundaries(p)
	if l == -1 || k <= 0 {
		return nil, nil
	}

	var matches []int64
	matches = collectDocuments(l, l, r, k, si.docIDs, si.prev, si.prevRMQ, matches)
	return matches, nil
}

func collectDocuments(baseL, l, r, k int, docIDs []int64, prev []int, prevRMQ *rmq.RMQHybridNaive[int], matches []int64) []int64 {
	if k <= len(matches) || l > r {
		return matches
	}

	p := prevRMQ.Query(l, r)
	if prev[p] >= baseL {
		return matches
	}
	if docIDs[p] != -1 {
		matches = append(matches, docIDs[p])
	}
	matches = collectDocuments(baseL, l, p-1, k, docIDs, prev, prevRMQ, matches)
	return collectDocuments(baseL, p+1, r, k, docIDs, prev, prevRMQ, matches)
}

// boundaries returns the inclusive [l, r] range of SA ranks whose
// suffixes have pattern as a prefix, or (-1, -1) if none do.
func (si *SubstringIndex) boundaries(pattern []Character) (int, int) {
	n := len(si.sa)
	if len(pattern) == 0 {
		if n == 0 {
			return -1, -1
		}
		return 0, n - 1
	}

	bestIdx, best := -1, -1
	expand := func(i int) bool {
		bestIdx = i // best becomes the match length of suffix i
		suf := si.sa[i]
		for best < len(pattern) && suf+best < len(si.chars) && pattern[best].Equal(si.chars[suf+best]) {
			best++
		}
		if best == len(pattern) {
			return true
		}
		if suf+best == len(si.chars) {
			return false
		}
		return pattern[best].Less(si.chars[suf+best])
	}

	l := sort.Search(n, func(i int) bool {
		if bestIdx == -1 {
			bestIdx = i
			best = 0
			return expand(i)
		}
		lo, hi := bestIdx, i
		if lo > hi {
			lo, hi = hi, lo
		}
		if lo == hi {
			return expand(i)
		}
		minIdx := si.lcpRMQ.Query(lo, hi-1)
		if si.lcp[minIdx] < best {
			return i > bestIdx
		}
		return expand(i)
	})

	if l == n || best < len(pattern) {
		return -1, -1
	}

	r := sort.Search(n-l, func(i int) bool {
		if i == 0 {
			return false
		}
		minIdx := si.lcpRMQ.Query(l, l+i-1)
		return si.lcp[minIdx] < len(pattern)
	})
	return l, l + r - 1
}

// charsOf decodes s into its Character sequence.
func charsOf(s string) ([]Character, error) {
	t, err := NewCharText([]byte(s))
	if err != nil {
		return nil, err
	}
	n := t.Len()
	out := make([]Character, n)
	for i := 0; i < n; i++ {
		out[i], _ = t.CharAt(i)
	}
	return out, nil
}
