package match

import "strings"

// Normalize canonicalizes a free-text name for comparison: lowercase with
// every character outside [a-z0-9] removed. It is idempotent, and maps
// "Zezima_07" and "zezima07" to the same key.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// StripTrailingDigits removes a trailing run of min to max digits from a
// name. Discord usernames often carry discriminator-style numeric suffixes
// ("PlayerName1234"); stripping them lets the remainder match the RSN.
// Names shorter than the digit run, or runs outside the window, are left
// untouched.
func StripTrailingDigits(s string, min, max int) string {
	if min <= 0 || max < min {
		return s
	}

	run := 0
	for i := len(s) - 1; i >= 0 && s[i] >= '0' && s[i] <= '9'; i-- {
		run++
	}
	if run > max {
		run = max
	}
	if run < min || run == len(s) {
		return s
	}
	return s[:len(s)-run]
}
