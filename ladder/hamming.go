package ladder

import (
	"unicode"
	"unicode/utf8"
)

// NotComparable is the distance reported for two words of different length.
const NotComparable = -1

// HammingDistance counts the positions at which a and b hold different
// characters, ignoring case. Words of different length have no Hamming
// distance; NotComparable is returned for them.
func HammingDistance(a, b string) int {
	if utf8.RuneCountInString(a) != utf8.RuneCountInString(b) {
		return NotComparable
	}
	d := 0
	for len(a) > 0 {
		ra, na := utf8.DecodeRuneInString(a)
		rb, nb := utf8.DecodeRuneInString(b)
		if ra != rb && unicode.ToLower(ra) != unicode.ToLower(rb) {
			d++
		}
		a, b = a[na:], b[nb:]
	}
	return d
}
