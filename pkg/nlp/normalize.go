package nlp

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

func cleanText(text string) string {
	text = strings.ToLower(text)

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	result, _, _ := transform.String(t, text)

	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, result)

	return strings.Join(strings.Fields(result), " ")
}

func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}

	distance := levenshteinDistance(a, b)
	maxLen := math.Max(float64(utf8.RuneCountInString(a)), float64(utf8.RuneCountInString(b)))
	if maxLen == 0 {
		return 0.0
	}

	return math.Max(0, 1.0-(float64(distance)/maxLen))
}

func levenshteinDistance(a, b string) int {
	s1, s2 := []rune(a), []rune(b)
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	prev := make([]int, len(s2)+1)
	curr := make([]int, len(s2)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(s1); i++ {
		curr[0] = i
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(s2)]
}

// keywordHit is one occurrence of a keyword inside a lower-cased window.
type keywordHit struct {
	keyword string
	start   int
	end     int
}

// findKeywords returns every occurrence of the keywords in text that starts
// on a word boundary. Suffixes (-nya, -an) are allowed after the keyword.
func findKeywords(text string, keywords []string) []keywordHit {
	var hits []keywordHit
	for _, kw := range keywords {
		from := 0
		for from <= len(text) {
			idx := strings.Index(text[from:], kw)
			if idx < 0 {
				break
			}
			start := from + idx
			if startsWord(text, start, kw) {
				hits = append(hits, keywordHit{keyword: kw, start: start, end: start + len(kw)})
			}
			from = start + 1
		}
	}
	return hits
}

func startsWord(text string, start int, kw string) bool {
	first, _ := utf8.DecodeRuneInString(kw)
	if !unicode.IsLetter(first) || start == 0 {
		return true
	}
	prev, _ := utf8.DecodeLastRuneInString(text[:start])
	return !unicode.IsLetter(prev) && !unicode.IsDigit(prev)
}

func containsPhrase(text string, phrase string) bool {
	return len(findKeywords(text, []string{phrase})) > 0
}
