package services

import (
	"strconv"
	"unicode"
)

// naturalLess compares strings treating digit runs as numbers, so
// "page2" sorts before "page10". Used wherever page content is ordered,
// to keep the output deterministic and human-friendly.
func naturalLess(s1, s2 string) bool {
	i, j := 0, 0
	for i < len(s1) && j < len(s2) {
		c1, c2 := rune(s1[i]), rune(s2[j])

		if unicode.IsDigit(c1) && unicode.IsDigit(c2) {
			start1, start2 := i, j
			for i < len(s1) && unicode.IsDigit(rune(s1[i])) {
				i++
			}
			for j < len(s2) && unicode.IsDigit(rune(s2[j])) {
				j++
			}

			n1, _ := strconv.Atoi(s1[start1:i])
			n2, _ := strconv.Atoi(s2[start2:j])
			if n1 != n2 {
				return n1 < n2
			}
			continue
		}

		if c1 != c2 {
			return c1 < c2
		}
		i++
		j++
	}

	return len(s1)-i < len(s2)-j
}
