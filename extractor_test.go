package dupfind

import (
	"math/rand"
	"testing"
)

// naiveLongestCommonSubstring returns the length of the longest common
// substring between a and b, used as a brute-force oracle for small
// random document sets.
func naiveLongestCommonSubstring(a, b string) int {
	best := 0
	for i := 0; i < len(a); i++ {
		for j := 0; j < len(b); j++ {
			l := 0
			for i+l < len(a) && j+l < len(b) && a[i+l] == b[j+l] {
				l++
			}
			if l > best {
				best = l
			}
		}
	}
	return best
}

func TestExtractDuplicatesAgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	alphabet := []byte("ab")

	for trial := 0; trial < 30; trial++ {
		docs := make(map[int64]string)
		numDocs := rng.Intn(4) + 2
		for id := int64(1); id <= int64(numDocs); id++ {
			n := rng.Intn(8) + 1
			buf := make([]byte, n)
			for i := range buf {
				buf[i] = alphabet[rng.Intn(len(alphabet))]
			}
			docs[id] = string(buf)
		}

		store := storeOfStrings(t, docs)
		matches, err := NewFinder().FindDuplicates(store, 1)
		if err != nil {
			t.Fatalf("FindDuplicates error: %v", err)
		}

		got := make(map[[2]int64]int)
		for _, m := range matches {
			got[[2]int64{m.DocA, m.DocB}] = m.Length

			a, b := docs[m.DocA], docs[m.DocB]
			if a[m.StartA:m.StartA+m.Length] != b[m.StartB:m.StartB+m.Length] {
				t.Fatalf("match %+v does not point at equal substrings: %q vs %q", m, a[m.StartA:m.StartA+m.Length], b[m.StartB:m.StartB+m.Length])
			}
			if m.DocA >= m.DocB {
				t.Fatalf("match %+v violates DocA < DocB", m)
			}
		}

		for idA := int64(1); idA <= int64(numDocs); idA++ {
			for idB := idA + 1; idB <= int64(numDocs); idB++ {
				want := naiveLongestCommonSubstring(docs[idA], docs[idB])
				gotLen, reported := got[[2]int64{idA, idB}]
				if want == 0 {
					if reported {
						t.Errorf("pair (%d,%d): reported a match of length %d, want none", idA, idB, gotLen)
					}
					continue
				}
				if !reported || gotLen != want {
					t.Errorf("pair (%d,%d): got length %d (reported=%v), want %d", idA, idB, gotLen, reported, want)
				}
			}
		}
	}
}

func storeOfStrings(t *testing.T, docs map[int64]string) *DocumentStore {
	t.Helper()
	store := NewDefaultDocumentStore()
	for id, content := range docs {
		ct, err := NewCharText([]byte(content))
		if err != nil {
			t.Fatalf("NewCharText: %v", err)
		}
		store.Add(ct, id)
	}
	return store
}

func FuzzExtractDuplicates(f *testing.F) {
	f.Add([]byte("apple\x01banana\x01app\x01pineapple"), 3)
	f.Add([]byte("hello\x01world\x01hell\x01loworld"), 2)

	f.Fuzz(func(t *testing.T, data []byte, minLength int) {
		if minLength < 0 || minLength > 64 {
			return
		}
		parts := splitOnSeparator(data)
		if len(parts) < 1 || len(parts) > 20 {
			return
		}

		store := NewDefaultDocumentStore()
		docs := make(map[int64]string)
		var id int64 = 1
		for _, p := range parts {
			if len(p) == 0 || len(p) > 200 {
				continue
			}
			ct, err := NewCharText(p)
			if err != nil {
				continue
			}
			if ct.String() == "$" {
				continue // would collide with the default separator
			}
			store.Add(ct, id)
			docs[id] = ct.String()
			id++
		}
		if len(docs) < 2 {
			return
		}

		matches, err := NewFinder().FindDuplicates(store, minLength)
		if err != nil {
			t.Fatalf("FindDuplicates error: %v", err)
		}
		for _, m := range matches {
			if m.Length < minLength {
				t.Fatalf("match %+v shorter than minLength %d", m, minLength)
			}
			a, b := docs[m.DocA], docs[m.DocB]
			if m.StartA+m.Length > len([]rune(a)) || m.StartB+m.Length > len([]rune(b)) {
				t.Fatalf("match %+v runs past its document's end", m)
			}
		}
	})
}

func splitOnSeparator(data []byte) [][]byte {
	var parts [][]byte
	start := 0
	for i, b := range data {
		if b == 0x01 {
			parts = append(parts, data[start:i])
			start = i + 1
		}
	}
	parts = append(parts, data[start:])
	return parts
}
