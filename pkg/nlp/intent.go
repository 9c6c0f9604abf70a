package nlp

import "strings"

const fuzzyThreshold = 0.85

// DetectMultipleIntents returns every intent the message qualifies for in
// priority order. A message matching nothing yields IntentUnknown.
func (e *Engine) DetectMultipleIntents(message string) []Intent {
	text := cleanText(message)
	if text == "" {
		return []Intent{IntentUnknown}
	}
	words := strings.Fields(text)

	var intents []Intent
	if e.matchesAny(text, words, e.kw.Intents.Goal) &&
		(e.matchesAny(text, words, e.kw.Intents.Saving) || len(e.usableTokens(message)) >= 2) {
		intents = append(intents, IntentGoalSimulation)
	}
	if e.matchesAny(text, words, e.kw.Intents.Recommendation) {
		intents = append(intents, IntentRecommendation)
	}
	if e.matchesAny(text, words, e.kw.Intents.Report) {
		intents = append(intents, IntentReport)
	}

	if len(intents) == 0 {
		return []Intent{IntentUnknown}
	}
	return intents
}

// DetectIntent returns the highest-priority intent.
func (e *Engine) DetectIntent(message string) Intent {
	return e.DetectMultipleIntents(message)[0]
}

func (e *Engine) matchesAny(text string, words []string, phrases []string) bool {
	for _, phrase := range phrases {
		p := cleanText(phrase)
		if p == "" {
			continue
		}
		if containsPhrase(text, p) {
			return true
		}
		if strings.Contains(p, " ") || len([]rune(p)) < 6 {
			continue
		}
		for _, w := range words {
			if similarity(w, p) >= fuzzyThreshold {
				return true
			}
		}
	}
	return false
}
