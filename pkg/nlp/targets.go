package nlp

import (
	"fmt"
	"strings"
	"unicode"
)

const maxTargetNameWords = 4

// ExtractMultipleTargets lists every purchase amount in the message with the
// noun phrase in front of it, e.g. "ipad 7jt dan macbook 20jt". Monthly and
// weekly amounts are left out.
//
// The two-number fallback of ClassifyTokens only applies when nothing
// separates the amounts; "ipad 7jt dan macbook 20jt" is a list of purchases.
// Amounts next to a balance cue ("saldo aku 2jt") are money already owned.
func (e *Engine) ExtractMultipleTargets(message string) []NamedTarget {
	roles := e.classifyTokens(message, e.Tokenize(message))
	if len(roles) == 0 {
		return nil
	}

	segments := e.targetSegments(message)
	if isPositionalPair(roles) && !separated(segments, roles[0].Token, roles[1].Token) {
		roles[0].Role = RoleTarget
		roles[1].Role = RoleMonthly
	}

	targets := make([]NamedTarget, 0, len(roles))

	for i, tr := range roles {
		if tr.Role == RoleMonthly || tr.Role == RoleWeekly {
			continue
		}
		if tr.Role == RoleNone && e.hasBalanceCue(tr.Window.Left) {
			continue
		}

		from := 0
		for _, s := range segments {
			if s.end <= tr.Token.Start && s.end > from {
				from = s.end
			}
		}
		if i > 0 && roles[i-1].Token.End > from {
			from = roles[i-1].Token.End
		}

		name := e.nounPhraseBefore(message[from:tr.Token.Start])
		if name == "" {
			name = fmt.Sprintf("target %d", len(targets)+1)
		}
		targets = append(targets, NamedTarget{Name: name, Amount: tr.Token.Value})
	}

	return targets
}

// CalculateTotalTarget sums the amounts of all targets.
func CalculateTotalTarget(targets []NamedTarget) int64 {
	var total int64
	for _, t := range targets {
		total += t.Amount
	}
	return total
}

// separated reports whether a comma or target separator sits between a and b.
func separated(segments []span, a, b AmountToken) bool {
	for _, s := range segments {
		if s.start >= a.End && s.end <= b.Start {
			return true
		}
	}
	return false
}

func (e *Engine) hasBalanceCue(left string) bool {
	for _, h := range findKeywords(left, e.kw.BalanceCues) {
		if endsWord(left, h.end) {
			return true
		}
	}
	return false
}

func (e *Engine) targetSegments(message string) []span {
	var seps []span
	for i := 0; i < len(message); i++ {
		if message[i] == ',' {
			seps = append(seps, span{i, i + 1})
		}
	}

	lower := strings.ToLower(message)
	for _, h := range findKeywords(lower, e.kw.TargetSeparators) {
		if endsWord(lower, h.end) {
			seps = append(seps, span{h.start, h.end})
		}
	}
	return seps
}

// nounPhraseBefore walks backwards from the amount: stop-words right next to
// the amount are skipped, then words are collected until the next stop-word.
func (e *Engine) nounPhraseBefore(text string) string {
	words := strings.Fields(text)

	var collected []string
	for i := len(words) - 1; i >= 0; i-- {
		w := strings.ToLower(strings.Trim(words[i], ".,:;!?()\"'-"))
		if w == "" {
			continue
		}
		if e.kw.IsStopWord(w) || isNumber(w) {
			if len(collected) > 0 {
				break
			}
			continue
		}
		collected = append(collected, w)
		if len(collected) == maxTargetNameWords {
			break
		}
	}

	for i, j := 0, len(collected)-1; i < j; i, j = i+1, j-1 {
		collected[i], collected[j] = collected[j], collected[i]
	}
	return strings.Join(collected, " ")
}

func isNumber(word string) bool {
	for _, r := range word {
		if !unicode.IsDigit(r) && r != '.' && r != ',' {
			return false
		}
	}
	return true
}
