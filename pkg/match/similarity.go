package match

// Ratio computes a bounded similarity score between two strings: 2*M/T,
// where M is the length of their longest common subsequence and T the sum
// of their lengths. The result is in [0, 1], with 1 meaning identical.
// Callers are expected to pass already-normalized names.
func Ratio(a, b string) float64 {
	if a == b {
		return 1
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	ar := []rune(a)
	br := []rune(b)

	// LCS length with a rolling row
	prev := make([]int, len(br)+1)
	curr := make([]int, len(br)+1)
	for _, ca := range ar {
		for j, cb := range br {
			if ca == cb {
				curr[j+1] = prev[j] + 1
			} else if prev[j+1] >= curr[j] {
				curr[j+1] = prev[j+1]
			} else {
				curr[j+1] = curr[j]
			}
		}
		prev, curr = curr, prev
	}
	lcs := prev[len(br)]

	return 2 * float64(lcs) / float64(len(ar)+len(br))
}
