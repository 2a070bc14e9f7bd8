package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldName lowercases a Vietnamese name, strips diacritics and collapses
// whitespace, so "Nguyễn Văn A" and "NGUYEN VAN A" compare equal.
func FoldName(s string) string {
	folded, _, err := transform.String(diacriticStripper, s)
	if err != nil {
		folded = s
	}
	folded = strings.ToLower(folded)
	// U+0111 is a stroked letter, not a combining mark, so NFD leaves it.
	folded = strings.ReplaceAll(folded, "đ", "d")
	return strings.Join(strings.Fields(folded), " ")
}

// CompareNames reports whether two names plausibly refer to the same person:
// equal after folding, one contains the other, or at least half of the
// shorter name's words appear in the longer one.
func CompareNames(a, b string) bool {
	n1 := FoldName(a)
	n2 := FoldName(b)
	if n1 == "" || n2 == "" {
		return false
	}
	if n1 == n2 {
		return true
	}

	c1 := strings.ReplaceAll(n1, " ", "")
	c2 := strings.ReplaceAll(n2, " ", "")
	if strings.Contains(c1, c2) || strings.Contains(c2, c1) {
		return true
	}

	words1 := strings.Fields(n1)
	words2 := strings.Fields(n2)
	if len(words1) > len(words2) {
		words1, words2 = words2, words1
	}

	matchCount := 0
	for _, w1 := range words1 {
		for _, w2 := range words2 {
			if w1 == w2 {
				matchCount++
				break
			}
		}
	}
	return float64(matchCount)/float64(len(words1)) >= 0.5
}

// NameSimilarity scores two names in [0, 1] using Levenshtein distance over
// the folded forms.
func NameSimilarity(a, b string) float64 {
	s1 := strings.ReplaceAll(FoldName(a), " ", "")
	s2 := strings.ReplaceAll(FoldName(b), " ", "")

	if s1 == "" && s2 == "" {
		return 1.0
	}
	if s1 == "" || s2 == "" {
		return 0.0
	}

	dist := levenshteinDistance(s1, s2)
	maxLen := len(s1)
	if len(s2) > maxLen {
		maxLen = len(s2)
	}
	return 1.0 - float64(dist)/float64(maxLen)
}

func levenshteinDistance(s1, s2 string) int {
	r1 := []rune(s1)
	r2 := []rune(s2)
	n, m := len(r1), len(r2)

	if n == 0 {
		return m
	}
	if m == 0 {
		return n
	}

	matrix := make([][]int, n+1)
	for i := range matrix {
		matrix[i] = make([]int, m+1)
	}

	for i := 0; i <= n; i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= m; j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			matrix[i][j] = min3(
				matrix[i-1][j]+1,
				matrix[i][j-1]+1,
				matrix[i-1][j-1]+cost,
			)
		}
	}

	return matrix[n][m]
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
