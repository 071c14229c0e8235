package keyword

// Ratio returns a similarity measure for two strings in the range [0, 1],
// computed over runes as 2*M/T, where T is the total number of runes in both
// strings and M is the number of matched runes across all longest matching
// blocks. This matches the behavior of Python's difflib.SequenceMatcher
// ratio (without junk heuristics), which the fuzzy keyword matching
// thresholds were originally tuned against.
func Ratio(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1.0
	}
	matches := 0
	for _, m := range matchingBlocks(ra, rb) {
		matches += m.size
	}
	return 2.0 * float64(matches) / float64(total)
}

type match struct {
	a, b, size int
}

func matchingBlocks(a, b []rune) []match {
	b2j := make(map[rune][]int, len(b))
	for i, r := range b {
		b2j[r] = append(b2j[r], i)
	}

	var blocks []match
	type span struct{ alo, ahi, blo, bhi int }
	queue := []span{{0, len(a), 0, len(b)}}
	for len(queue) > 0 {
		s := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		m := longestMatch(a, b2j, s.alo, s.ahi, s.blo, s.bhi)
		if m.size == 0 {
			continue
		}
		blocks = append(blocks, m)
		if s.alo < m.a && s.blo < m.b {
			queue = append(queue, span{s.alo, m.a, s.blo, m.b})
		}
		if m.a+m.size < s.ahi && m.b+m.size < s.bhi {
			queue = append(queue, span{m.a + m.size, s.ahi, m.b + m.size, s.bhi})
		}
	}
	return blocks
}

// finds the longest matching block of a[alo:ahi] and b[blo:bhi]; of all
// maximal blocks, prefers the one starting earliest in a, then earliest in b
func longestMatch(a []rune, b2j map[rune][]int, alo, ahi, blo, bhi int) match {
	best := match{alo, blo, 0}
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		newj2len := make(map[int]int)
		for _, j := range b2j[a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > best.size {
				best = match{i - k + 1, j - k + 1, k}
			}
		}
		j2len = newj2len
	}
	return best
}
