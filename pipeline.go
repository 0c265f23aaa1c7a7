package dupfind

import "github.com/rs/zerolog"

// Finder ties DocumentStore ingestion, SuffixIndex construction and
// DuplicateExtractor together into the single operation callers need:
// turn an ingested document set into its pairwise duplicate matches.
//
// Finder reports its build phases as structured debug-level log events
// on an injectable zerolog.Logger.
type Finder struct {
	logger zerolog.Logger
}

// FinderOption configures a Finder built by NewFinder.
type FinderOption func(*Finder)

// WithLogger attaches l as the Finder's diagnostic logger. The default
// is zerolog.Nop(), matching the zero-log-by-default convention a
// synchronous library should follow.
func WithLogger(l zerolog.Logger) FinderOption {
	return func(f *Finder) { f.logger = l }
}

// NewFinder constructs a Finder with the given options applied.
func NewFinder(opts ...FinderOption) *Finder {
	f := &Finder{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FindDuplicates builds a SuffixIndex over store's concatenated text and
// returns the longest shared substring, at least minLength characters
// long, for every pair of documents in store that has one. It is a pure
// function of its inputs: nothing outside idx and store is read or
// written, and there is no cancellation. The pipeline runs to
// completion or returns an error.
func (f *Finder) FindDuplicates(store *DocumentStore, minLength int) ([]Match, error) {
	f.logger.Debug().Int("documents", store.Len()).Msg("building suffix index")

	idx := NewSuffixIndex(store.Concatenated())
	if err := idx.Build(); err != nil {
		return nil, err
	}

	f.logger.Debug().Msg("extracting duplicate matches")
	matches, err := ExtractDuplicates(store, idx, minLength)
	if err != nil {
		return nil, err
	}

	f.logger.Debug().Int("matches", len(matches)).Msg("duplicate extraction complete")
	return matches, nil
}
