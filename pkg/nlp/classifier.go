package nlp

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

type keywordClass int

const (
	classNone keywordClass = iota
	classTarget
	classMonthly
	classWeekly
	classRecurring
)

type classifiedHit struct {
	keywordHit
	class keywordClass
}

type span struct {
	start int
	end   int
}

// Classify assigns target, monthly and weekly amounts. Each token is judged
// by its own context window; the order of amounts in the message only
// matters for the two-number fallback and for breaking exact ties.
func (e *Engine) Classify(message string, tokens []AmountToken) ExtractionResult {
	roles := e.classifyTokens(message, tokens)

	var result ExtractionResult
	if len(roles) == 0 {
		result.Diagnostics = append(result.Diagnostics, Diagnostic{
			Kind:    DiagNoAmountFound,
			Message: "no usable amount in message",
		})
		return result
	}

	if isPositionalPair(roles) {
		roles[0].Role = RoleTarget
		roles[1].Role = RoleMonthly
		result.Diagnostics = append(result.Diagnostics, Diagnostic{
			Kind:    DiagPositional,
			Message: "no role keywords found, using first amount as target and second as monthly",
		})
	}

	winners := map[Role]TokenRole{}
	for _, tr := range roles {
		if tr.Role == RoleNone {
			continue
		}
		current, exists := winners[tr.Role]
		if !exists {
			winners[tr.Role] = tr
			continue
		}

		keep := current
		if len(tr.Keyword) > len(current.Keyword) {
			keep = tr
		}
		tie := len(tr.Keyword) == len(current.Keyword)
		winners[tr.Role] = keep

		msg := fmt.Sprintf("%s matched %q (%d) and %q (%d), kept %d",
			tr.Role, current.Token.Raw, current.Token.Value, tr.Token.Raw, tr.Token.Value, keep.Token.Value)
		if tie {
			msg += " by reading order"
		} else {
			msg += fmt.Sprintf(" by keyword %q", keep.Keyword)
		}
		result.Diagnostics = append(result.Diagnostics, Diagnostic{
			Kind:    DiagAmbiguousRole,
			Role:    tr.Role,
			Message: msg,
		})
	}

	if w, ok := winners[RoleTarget]; ok {
		result.Target = int64Ptr(w.Token.Value)
	}
	if w, ok := winners[RoleMonthly]; ok {
		result.Monthly = int64Ptr(w.Token.Value)
	}
	if w, ok := winners[RoleWeekly]; ok {
		result.Weekly = int64Ptr(w.Token.Value)
	}

	return result
}

// ExtractAmounts is Tokenize followed by Classify.
func (e *Engine) ExtractAmounts(message string) ExtractionResult {
	return e.Classify(message, e.Tokenize(message))
}

// ClassifyTokens exposes the per-token decision, including the positional
// fallback, for callers that need more than one amount per role.
func (e *Engine) ClassifyTokens(message string) []TokenRole {
	roles := e.classifyTokens(message, e.Tokenize(message))
	if isPositionalPair(roles) {
		roles[0].Role = RoleTarget
		roles[1].Role = RoleMonthly
	}
	return roles
}

// isPositionalPair is true for exactly two amounts without any role keyword.
func isPositionalPair(roles []TokenRole) bool {
	return len(roles) == 2 && roles[0].Role == RoleNone && roles[1].Role == RoleNone
}

func (e *Engine) classifyTokens(message string, tokens []AmountToken) []TokenRole {
	usable := make([]AmountToken, 0, len(tokens))
	for _, t := range tokens {
		if !t.LowConfidence && t.Value > 0 {
			usable = append(usable, t)
		}
	}
	if len(usable) == 0 {
		return nil
	}

	delims := e.clauseDelimiters(message, usable)
	roles := make([]TokenRole, 0, len(usable))

	for i, tok := range usable {
		left := 0
		if i > 0 {
			left = usable[i-1].End
		}
		right := len(message)
		if i < len(usable)-1 {
			right = usable[i+1].Start
		}
		for _, d := range delims {
			if d.end <= tok.Start && d.end > left {
				left = d.end
			}
			if d.start >= tok.End && d.start < right {
				right = d.start
			}
		}

		window := ContextWindow{
			Left:  strings.ToLower(message[left:tok.Start]),
			Right: strings.ToLower(message[tok.End:right]),
		}
		role, keyword := e.decideRole(window)
		roles = append(roles, TokenRole{
			Token:   tok,
			Role:    role,
			Keyword: keyword,
			Window:  window,
		})
	}

	return roles
}

// decideRole picks the keyword nearest to the amount, looking left first
// since Indonesian puts "harga", "gaji" and friends before the number. A
// recurring amount then takes the period keyword closest to it on either
// side, monthly when none is present.
func (e *Engine) decideRole(w ContextWindow) (Role, string) {
	leftHits := e.classifiedHits(w.Left)
	rightHits := e.classifiedHits(w.Right)

	var decider *classifiedHit
	if len(leftHits) > 0 {
		decider = nearest(leftHits, func(h classifiedHit) int { return len(w.Left) - h.end })
	} else if len(rightHits) > 0 {
		decider = nearest(rightHits, func(h classifiedHit) int { return h.start })
	}
	if decider == nil {
		return RoleNone, ""
	}
	if decider.class == classTarget {
		return RoleTarget, decider.keyword
	}

	var periods []classifiedHit
	var distances []int
	for _, h := range leftHits {
		if h.class == classMonthly || h.class == classWeekly {
			periods = append(periods, h)
			distances = append(distances, len(w.Left)-h.end)
		}
	}
	for _, h := range rightHits {
		if h.class == classMonthly || h.class == classWeekly {
			periods = append(periods, h)
			distances = append(distances, h.start)
		}
	}

	best := -1
	for i := range periods {
		if best < 0 || distances[i] < distances[best] ||
			(distances[i] == distances[best] && len(periods[i].keyword) > len(periods[best].keyword)) {
			best = i
		}
	}
	if best >= 0 && periods[best].class == classWeekly {
		return RoleWeekly, decider.keyword
	}
	return RoleMonthly, decider.keyword
}

func nearest(hits []classifiedHit, distance func(classifiedHit) int) *classifiedHit {
	best := -1
	for i := range hits {
		if best < 0 {
			best = i
			continue
		}
		d, bd := distance(hits[i]), distance(hits[best])
		if d < bd || (d == bd && len(hits[i].keyword) > len(hits[best].keyword)) {
			best = i
		}
	}
	return &hits[best]
}

func (e *Engine) classifiedHits(text string) []classifiedHit {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var hits []classifiedHit
	add := func(class keywordClass, keywords []string) {
		for _, h := range findKeywords(text, keywords) {
			hits = append(hits, classifiedHit{keywordHit: h, class: class})
		}
	}
	add(classTarget, e.kw.Roles.Target)
	add(classMonthly, e.kw.Roles.Monthly)
	add(classWeekly, e.kw.Roles.Weekly)
	add(classRecurring, e.kw.Roles.Recurring)

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].start < hits[j].start })
	return hits
}

// clauseDelimiters finds punctuation and clause-breaking conjunctions that
// end a context window. Separators inside amounts ("1.500.000", "Rp.") are
// skipped.
func (e *Engine) clauseDelimiters(message string, tokens []AmountToken) []span {
	inToken := func(i int) bool {
		for _, t := range tokens {
			if i >= t.Start && i < t.End {
				return true
			}
		}
		return false
	}

	var delims []span
	for i := 0; i < len(message); i++ {
		c := message[i]
		switch c {
		case ',', ';', '\n':
			if !inToken(i) {
				delims = append(delims, span{i, i + 1})
			}
		case '.', '!', '?':
			if inToken(i) {
				continue
			}
			if i+1 == len(message) || message[i+1] == ' ' || message[i+1] == '\n' {
				delims = append(delims, span{i, i + 1})
			}
		}
	}

	lower := strings.ToLower(message)
	for _, h := range findKeywords(lower, e.kw.ClauseBreakers) {
		if endsWord(lower, h.end) {
			delims = append(delims, span{h.start, h.end})
		}
	}

	return delims
}

func endsWord(text string, end int) bool {
	if end >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[end:])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func int64Ptr(v int64) *int64 {
	return &v
}
