package nlp

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	amountPattern = regexp.MustCompile(`(?i)(rp\.?\s*)?(\d+(?:[.,]\d+)*)(?:\s*(juta|jt|ribu|rb|k))?\b`)
	digitGroup    = regexp.MustCompile(`^\d{1,3}$`)
)

const maxAmount = 1e15

var magnitudes = map[string]float64{
	"juta": 1000000,
	"jt":   1000000,
	"ribu": 1000,
	"rb":   1000,
	"k":    1000,
}

// Tokenize scans message left to right for amounts. Plain numbers below the
// configured minimum, percentages and years are returned flagged
// LowConfidence so callers can ignore them.
func (e *Engine) Tokenize(message string) []AmountToken {
	matches := amountPattern.FindAllStringSubmatchIndex(message, -1)
	tokens := make([]AmountToken, 0, len(matches))

	for _, m := range matches {
		start, end := m[0], m[1]
		numStart, numEnd := m[4], m[5]

		if m[2] >= 0 && precededByWordChar(message, m[2]) {
			start = numStart
		}
		if precededByWordChar(message, start) {
			continue
		}

		suffix := ""
		if m[6] >= 0 {
			suffix = strings.ToLower(message[m[6]:m[7]])
		}

		value, ok := parseAmount(message[numStart:numEnd], suffix)
		if !ok {
			continue
		}

		token := AmountToken{
			Raw:   message[start:end],
			Value: value,
			Start: start,
			End:   end,
		}
		if suffix == "" && e.lowConfidence(message, token) {
			token.LowConfidence = true
		}
		tokens = append(tokens, token)
	}

	return tokens
}

func (e *Engine) usableTokens(message string) []AmountToken {
	var usable []AmountToken
	for _, t := range e.Tokenize(message) {
		if !t.LowConfidence {
			usable = append(usable, t)
		}
	}
	return usable
}

func (e *Engine) lowConfidence(message string, token AmountToken) bool {
	if token.Value < e.kw.MinPlainAmount {
		return true
	}
	if strings.HasPrefix(message[token.End:], "%") {
		return true
	}
	before := strings.ToLower(strings.TrimRight(message[:token.Start], " "))
	return strings.HasSuffix(before, "tahun") || strings.HasSuffix(before, "thn")
}

func precededByWordChar(text string, idx int) bool {
	if idx == 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(text[:idx])
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// parseAmount turns the numeric part of a token and its magnitude suffix into
// Rupiah. Separators are read as thousand groups when every group after the
// first has three digits, otherwise the last separator is a decimal point.
func parseAmount(num string, suffix string) (int64, bool) {
	factor := 1.0
	if f, ok := magnitudes[suffix]; ok {
		factor = f
	}

	parts := strings.FieldsFunc(num, func(r rune) bool { return r == '.' || r == ',' })
	if len(parts) == 0 {
		return 0, false
	}

	var mantissa string
	switch {
	case len(parts) == 1:
		mantissa = parts[0]
	case allGroups(parts[1:]):
		mantissa = strings.Join(parts, "")
	case allGroups(parts[1:len(parts)-1]) && (len(parts) == 2 || digitGroup.MatchString(parts[0])):
		mantissa = strings.Join(parts[:len(parts)-1], "") + "." + parts[len(parts)-1]
	default:
		return 0, false
	}

	f, err := strconv.ParseFloat(mantissa, 64)
	if err != nil {
		return 0, false
	}

	value := math.Round(f * factor)
	if value <= 0 || value > maxAmount {
		return 0, false
	}
	return int64(value), true
}

func allGroups(parts []string) bool {
	for _, p := range parts {
		if len(p) != 3 {
			return false
		}
	}
	return true
}
