// Package match resolves a user query to a single element.
//
// A query that parses as a positive integer is looked up by atomic number
// only. Anything else is compared against symbols, then names, and finally
// falls back to the nearest name by Levenshtein distance when that distance
// is within FuzzyThreshold. Only names are ever fuzzy-matched.
package match

import (
	"strconv"
	"strings"

	"github.com/xrash/smetrics"

	"github.com/madprops/el/internal/element"
)

// FuzzyThreshold is the largest edit distance accepted for a fuzzy name match.
const FuzzyThreshold = 3

// Kind says which rule produced a match.
type Kind string

const (
	KindNumber Kind = "number"
	KindSymbol Kind = "symbol"
	KindName   Kind = "name"
	KindFuzzy  Kind = "fuzzy"
)

// Result is a resolved element plus how it was found. Distance is the edit
// distance for KindFuzzy and 0 otherwise.
type Result struct {
	Element  element.Element
	Kind     Kind
	Distance int
}

// Resolve returns a copy of the element matching query, or false when nothing matches.
func Resolve(elements []element.Element, query string) (element.Element, bool) {
	res, ok := Find(elements, query)
	if !ok {
		return element.Element{}, false
	}
	return res.Element, true
}

// Find is Resolve with match metadata. It never modifies elements.
// An empty query matches nothing.
func Find(elements []element.Element, query string) (Result, bool) {
	needle := Normalize(query)
	if needle == "" {
		return Result{}, false
	}

	if num := parseNumber(needle); num > 0 {
		for _, el := range elements {
			if el.Number != nil && *el.Number == num {
				return Result{Element: el.Clone(), Kind: KindNumber}, true
			}
		}
		return Result{}, false
	}

	for _, el := range elements {
		if el.Symbol != nil && strings.ToLower(*el.Symbol) == needle {
			return Result{Element: el.Clone(), Kind: KindSymbol}, true
		}
	}

	best := -1
	bestDist := 0
	for i, el := range elements {
		if el.Name == nil {
			continue
		}
		name := strings.ToLower(*el.Name)
		if name == needle {
			return Result{Element: el.Clone(), Kind: KindName}, true
		}
		// Strict comparison keeps the first element on ties.
		if d := Distance(name, needle); best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}

	if best >= 0 && bestDist <= FuzzyThreshold {
		return Result{Element: elements[best].Clone(), Kind: KindFuzzy, Distance: bestDist}, true
	}
	return Result{}, false
}

// Normalize trims surrounding whitespace and lower-cases the query.
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Distance is the Levenshtein distance between a and b counted in characters
// (runes), with unit costs.
func Distance(a, b string) int {
	ea, eb, ok := encodeRunes(a, b)
	if !ok {
		return runeDistance([]rune(a), []rune(b))
	}
	return smetrics.WagnerFischer(ea, eb, 1, 1, 1)
}

// otherRune is the code given to runes that only occur on one side. Such runes
// are only ever compared against the other side's alphabet, so they can share it.
const otherRune = 0xff

// encodeRunes rewrites a and b so that every rune becomes exactly one byte,
// which lets the byte-oriented edit distance count characters. The alphabet
// is taken from whichever string has fewer distinct runes; ok is false when
// neither fits in a byte.
func encodeRunes(a, b string) (string, string, bool) {
	ra, rb := []rune(a), []rune(b)
	alphaA, okA := alphabetOf(ra)
	alphaB, okB := alphabetOf(rb)

	var alphabet map[rune]byte
	switch {
	case okA && (!okB || len(alphaA) <= len(alphaB)):
		alphabet = alphaA
	case okB:
		alphabet = alphaB
	default:
		return "", "", false
	}
	return encode(ra, alphabet), encode(rb, alphabet), true
}

// alphabetOf numbers the distinct runes of rs, reserving otherRune.
func alphabetOf(rs []rune) (map[rune]byte, bool) {
	m := make(map[rune]byte, len(rs))
	for _, r := range rs {
		if _, seen := m[r]; seen {
			continue
		}
		if len(m) == otherRune {
			return nil, false
		}
		m[r] = byte(len(m))
	}
	return m, true
}

func encode(rs []rune, alphabet map[rune]byte) string {
	buf := make([]byte, len(rs))
	for i, r := range rs {
		code, ok := alphabet[r]
		if !ok {
			code = otherRune
		}
		buf[i] = code
	}
	return string(buf)
}

// runeDistance covers inputs with more distinct runes than encodeRunes can map.
func runeDistance(a, b []rune) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

// parseNumber reads s as an unsigned 32-bit integer with an optional leading
// '+'. Anything unparsable yields 0, which sends the query down the text path.
func parseNumber(s string) uint32 {
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 32)
	if err != nil {
		return 0
	}
	return uint32(n)
}
