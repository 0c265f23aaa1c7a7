package dupfind

import "sort"

// buildSuffixArray builds the suffix array of t's characters via doubling
// in cyclic-shift space: p holds, at each round, the permutation of
// positions sorted by their length-L cyclic substring, and c holds the
// dense equivalence class of each position's length-L cyclic substring.
// A virtual sentinel (the empty Character, which sorts before every real
// character) is placed after t's last character, so every rotation is
// distinct and cyclic-rotation order coincides with true suffix order
// even when the separator occurs many times in t. The sentinel's own
// rotation sorts first and is dropped from the result.
func buildSuffixArray(t CharText) []int {
	n := t.Len()
	if n == 0 {
		return nil
	}

	chars := make([]Character, n+1) // chars[n] stays the empty sentinel
	for i := 0; i < n; i++ {
		chars[i], _ = t.CharAt(i)
	}

	p, c, classes := rankInitial(chars)
	for length := 1; length < n+1 && classes < n+1; length *= 2 {
		p, c, classes = rankDoubled(p, c, classes, length)
	}
	return p[1:]
}

// rankInitial performs the L=1 pass: characters get a dense rank by
// stable-sorting the character multiset, p is built by counting sort on
// those ranks, and c holds the resulting equivalence classes.
func rankInitial(chars []Character) (p, c []int, classes int) {
	n := len(chars)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return chars[order[a]].Less(chars[order[b]]) })

	rank := make([]int, n)
	rankClasses := 1
	rank[order[0]] = 0
	for i := 1; i < n; i++ {
		if !chars[order[i]].Equal(chars[order[i-1]]) {
			rankClasses++
		}
		rank[order[i]] = rankClasses - 1
	}

	p = countingSortByClass(rank, rankClasses)

	c = make([]int, n)
	classes = 1
	c[p[0]] = 0
	for i := 1; i < n; i++ {
		if !chars[p[i]].Equal(chars[p[i-1]]) {
			classes++
		}
		c[p[i]] = classes - 1
	}
	return p, c, classes
}

// rankDoubled sorts cyclic substrings of length 2*length from the
// existing sort of length-length substrings.
func rankDoubled(p, c []int, classes, length int) (newP, newC []int, newClasses int) {
	n := len(p)
	pn := make([]int, n)
	for i := 0; i < n; i++ {
		pn[i] = ((p[i]-length)%n + n) % n
	}

	key := make([]int, n)
	for i := 0; i < n; i++ {
		key[i] = c[pn[i]]
	}
	order := countingSortByClass(key, classes)
	newP = make([]int, n)
	for i, idx := range order {
		newP[i] = pn[idx]
	}

	newC = make([]int, n)
	newClasses = 1
	newC[newP[0]] = 0
	for i := 1; i < n; i++ {
		cur := [2]int{c[newP[i]], c[(newP[i]+length)%n]}
		prev := [2]int{c[newP[i-1]], c[(newP[i-1]+length)%n]}
		if cur != prev {
			newClasses++
		}
		newC[newP[i]] = newClasses - 1
	}
	return newP, newC, newClasses
}

// countingSortByClass returns the permutation of 0..len(class)-1 sorted
// by class[i], stable, assuming class values are dense in [0, classes).
func countingSortByClass(class []int, classes int) []int {
	n := len(class)
	count := make([]int, classes)
	for i := 0; i < n; i++ {
		count[class[i]]++
	}
	for i := 1; i < classes; i++ {
		count[i] += count[i-1]
	}
	order := make([]int, n)
	for i := n - 1; i >= 0; i-- {
		count[class[i]]--
		order[count[class[i]]] = i
	}
	return order
}
