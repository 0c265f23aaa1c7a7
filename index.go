package dupfind

// SuffixIndex builds and holds the suffix array and LCP array of a
// CharText. It is a small Unbuilt -> Built state machine: sa and lcp are
// only readable once Build has succeeded, and a failed Build discards
// any partial state and leaves the index Unbuilt.
type SuffixIndex struct {
	text  CharText
	sa    []int
	lcp   []int
	built bool
}

// NewSuffixIndex returns an Unbuilt index over text. Build must be
// called before SA or LCP are readable.
func NewSuffixIndex(text CharText) *SuffixIndex {
	return &SuffixIndex{text: text}
}

// Build constructs the suffix array and LCP array. Empty text is
// rejected with a BuildError wrapping ErrEmptyInput.
func (idx *SuffixIndex) Build() error {
	idx.built = false
	idx.sa, idx.lcp = nil, nil

	n := idx.text.Len()
	if n == 0 {
		return &BuildError{Err: ErrEmptyInput}
	}

	chars := make([]Character, n)
	for i := 0; i < n; i++ {
		chars[i], _ = idx.text.CharAt(i)
	}

	idx.sa = buildSuffixArray(idx.text)
	idx.lcp = buildLCPArray(idx.sa, chars)
	idx.built = true
	return nil
}

// SA returns the built suffix array: a permutation of 0..n-1 such that
// the suffix starting at SA()[i] is lexicographically less than the one
// starting at SA()[i+1].
func (idx *SuffixIndex) SA() ([]int, error) {
	if !idx.built {
		return nil, ErrNotBuilt
	}
	return idx.sa, nil
}

// LCP returns the built LCP array: LCP()[i] is the length of the longest
// common prefix of the suffixes at SA()[i] and SA()[i+1].
func (idx *SuffixIndex) LCP() ([]int, error) {
	if !idx.built {
		return nil, ErrNotBuilt
	}
	return idx.lcp, nil
}

// Built reports whether Build has completed successfully.
func (idx *SuffixIndex) Built() bool { return idx.built }

// Text returns the CharText the index was built over.
func (idx *SuffixIndex) Text() CharText { return idx.text }
