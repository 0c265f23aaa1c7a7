package dupfind

import (
	"bytes"
	"unicode/utf8"
)

// Character is a single Unicode scalar value, held as the byte slice of
// its UTF-8 encoding. Equality and ordering are byte-lexicographic over
// that encoding, which for valid UTF-8 coincides with code-point order.
type Character struct {
	b []byte
}

// String returns the character's UTF-8 encoding as a string.
func (c Character) String() string { return string(c.b) }

// Equal reports whether c and other encode the same scalar value.
func (c Character) Equal(other Character) bool { return bytes.Equal(c.b, other.b) }

// Less reports whether c sorts before other in byte-lexicographic order.
func (c Character) Less(other Character) bool { return bytes.Compare(c.b, other.b) < 0 }

// CharText is a byte sequence known to be valid UTF-8, indexed so that
// the i-th character and the total character count are both O(1). It is
// immutable after construction: Substr, Concat and Append all produce or
// extend copies rather than aliasing a parent's storage, since matches
// extracted from a concatenated text must be able to outlive it.
type CharText struct {
	data    []byte
	charPos []int // len n+1; charPos[i] is the byte offset of character i, charPos[n] == len(data)
}

// EmptyCharText is the zero-length CharText, a valid starting point for
// repeated Append calls.
var EmptyCharText = CharText{charPos: []int{0}}

// NewCharText validates b as UTF-8 and builds its character index.
// It rejects invalid leading bytes, truncated multi-byte sequences,
// malformed continuation bytes, and overlong encodings, because all of
// these are exactly what a failed utf8.DecodeRune with a width of one
// byte signals.
func NewCharText(b []byte) (CharText, error) {
	pos := make([]int, 0, len(b)+1)
	data := append([]byte(nil), b...)
	for i := 0; i < len(data); {
		pos = append(pos, i)
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return CharText{}, &InvalidUTF8Error{Offset: i}
		}
		i += size
	}
	pos = append(pos, len(data))
	return CharText{data: data, charPos: pos}, nil
}

// MustNewCharText is a convenience wrapper for callers (tests, literal
// fixtures) that know the input is valid UTF-8; it panics otherwise.
func MustNewCharText(s string) CharText {
	t, err := NewCharText([]byte(s))
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the character count.
func (t CharText) Len() int {
	if len(t.charPos) == 0 {
		return 0
	}
	return len(t.charPos) - 1
}

// ByteLen returns the total byte length of the UTF-8 encoding.
func (t CharText) ByteLen() int { return len(t.data) }

// Bytes returns the underlying UTF-8 bytes. The caller must not mutate
// the returned slice.
func (t CharText) Bytes() []byte { return t.data }

// String returns the text as a Go string.
func (t CharText) String() string { return string(t.data) }

// CharAt returns the i-th character.
func (t CharText) CharAt(i int) (Character, error) {
	if i < 0 || i >= t.Len() {
		return Character{}, &OutOfRangeError{Index: i, Len: t.Len()}
	}
	return Character{b: t.data[t.charPos[i]:t.charPos[i+1]]}, nil
}

// Substr returns the length characters starting at start, as a new,
// independently owned CharText.
func (t CharText) Substr(start, length int) (CharText, error) {
	n := t.Len()
	if start < 0 || length < 0 || start+length > n {
		return CharText{}, &OutOfRangeError{Index: start + length, Len: n}
	}
	byteStart, byteEnd := t.charPos[start], t.charPos[start+length]
	data := append([]byte(nil), t.data[byteStart:byteEnd]...)
	pos := make([]int, length+1)
	for i := 0; i <= length; i++ {
		pos[i] = t.charPos[start+i] - byteStart
	}
	return CharText{data: data, charPos: pos}, nil
}

// Concat returns a new CharText holding t followed by other. other's
// character index is shifted by t's byte length.
func (t CharText) Concat(other CharText) CharText {
	data := append(append([]byte(nil), t.data...), other.data...)
	pos := make([]int, 0, t.Len()+other.Len()+1)
	pos = append(pos, t.charPos[:t.Len()]...)
	shift := len(t.data)
	for _, p := range other.charPos {
		pos = append(pos, p+shift)
	}
	return CharText{data: data, charPos: pos}
}

// Append extends t in place with other, equivalent to t = t.Concat(other)
// without discarding t's backing array when it has spare capacity.
func (t *CharText) Append(other CharText) {
	shift := len(t.data)
	t.data = append(t.data, other.data...)
	if len(t.charPos) > 0 {
		t.charPos = t.charPos[:len(t.charPos)-1]
	}
	for _, p := range other.charPos {
		t.charPos = append(t.charPos, p+shift)
	}
}

// Less reports whether t sorts before other in byte-lexicographic order.
func (t CharText) Less(other CharText) bool { return bytes.Compare(t.data, other.data) < 0 }
