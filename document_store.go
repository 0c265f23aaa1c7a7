package dupfind

import "sort"

// DocumentPosition locates one ingested document inside a DocumentStore's
// concatenated text. Start and Length are character counts; the
// separator trailing the document is not included in Length.
type DocumentPosition struct {
	ID     int64
	Start  int
	Length int
}

// DefaultSeparator is the document separator used when a DocumentStore
// is constructed without specifying one explicitly.
var DefaultSeparator = MustNewCharText("$")

// DocumentStore appends documents into a single concatenated CharText,
// inserting the separator character after each one, and maps any
// character offset in that text back to its owning document.
//
// The caller is responsible for guaranteeing the separator does not
// occur in any added document; DocumentStore does not scan content to
// verify this.
type DocumentStore struct {
	sep   CharText
	text  CharText
	ids   map[int64]int      // document id -> index into byPos
	byPos []DocumentPosition // ordered by Start, append-only
}

// NewDocumentStore constructs an empty store using separator, which must
// have a character length of exactly one.
func NewDocumentStore(separator CharText) (*DocumentStore, error) {
	if separator.Len() != 1 {
		return nil, ErrBadSeparator
	}
	return &DocumentStore{
		sep:  separator,
		text: EmptyCharText,
		ids:  make(map[int64]int),
	}, nil
}

// NewDefaultDocumentStore constructs an empty store using DefaultSeparator.
func NewDefaultDocumentStore() *DocumentStore {
	s, err := NewDocumentStore(DefaultSeparator)
	if err != nil {
		panic(err) // DefaultSeparator is always a single character
	}
	return s
}

// Add appends content under id. It returns false, without modifying the
// store, if id is already present; duplicate ids are not an error.
func (s *DocumentStore) Add(content CharText, id int64) bool {
	if _, exists := s.ids[id]; exists {
		return false
	}

	pos := DocumentPosition{ID: id, Start: s.text.Len(), Length: content.Len()}
	s.ids[id] = len(s.byPos)
	s.byPos = append(s.byPos, pos)

	s.text.Append(content)
	s.text.Append(s.sep)
	return true
}

// Concatenated returns the concatenated text built so far, in the form
// d1 . sep . d2 . sep . ... . dk . sep. The returned value shares storage
// with the store and must not be mutated by the caller.
func (s *DocumentStore) Concatenated() CharText { return s.text }

// Locate returns the document whose range contains the character offset
// pos. The separator following a document is attributed to that
// (preceding) document, except after the very last document, whose
// trailing separator lies outside any document's range.
func (s *DocumentStore) Locate(pos int) (DocumentPosition, error) {
	if len(s.byPos) == 0 {
		return DocumentPosition{}, &OutOfRangeError{Index: pos, Len: 0}
	}

	// Upper bound: first index whose Start exceeds pos, then step back one.
	i := sort.Search(len(s.byPos), func(i int) bool { return s.byPos[i].Start > pos })
	if i == 0 {
		return DocumentPosition{}, &OutOfRangeError{Index: pos, Len: s.text.Len()}
	}
	i--

	doc := s.byPos[i]
	end := doc.Start + doc.Length
	if i != len(s.byPos)-1 {
		end += s.sep.Len()
	}
	if pos >= doc.Start && pos < end {
		return doc, nil
	}
	return DocumentPosition{}, &OutOfRangeError{Index: pos, Len: s.text.Len()}
}

// Len returns the number of documents added so far.
func (s *DocumentStore) Len() int { return len(s.byPos) }
