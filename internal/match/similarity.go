package match

import (
	"strings"
	"unicode"

	"github.com/texttheater/golang-levenshtein/levenshtein"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes accented characters and drops the combining marks, so
// "Münchén" and "Munchen" normalize to the same string.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Similarity scores how alike two free-text descriptions are, in [0,1].
// It is symmetric, reflexive for non-empty input, and returns 0 when either
// side is empty. Comparison is case-, whitespace- and diacritics-insensitive.
//
// The score blends token-set overlap (order-insensitive, good for reordered
// counterparty names) with a Levenshtein ratio (good for typos and truncation)
// in equal parts.
func Similarity(a, b string) float64 {
	na := normalizeDescription(a)
	nb := normalizeDescription(b)
	if na == "" || nb == "" {
		return 0
	}
	if na == nb {
		return 1
	}
	return (tokenOverlap(na, nb) + editRatio(na, nb)) / 2
}

func normalizeDescription(s string) string {
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		folded = s
	}
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

// tokenOverlap is the Dice coefficient over the unique token sets.
func tokenOverlap(a, b string) float64 {
	as := tokenSet(a)
	bs := tokenSet(b)
	common := 0
	for tok := range as {
		if bs[tok] {
			common++
		}
	}
	return 2 * float64(common) / float64(len(as)+len(bs))
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(s) {
		set[tok] = true
	}
	return set
}

// editRatio maps Levenshtein distance onto [0,1], 1 meaning identical.
func editRatio(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	longest := max(len(ra), len(rb))
	dist := levenshtein.DistanceForStrings(ra, rb, levenshtein.DefaultOptions)
	return 1 - float64(dist)/float64(longest)
}
