package nlp

// Engine extracts amounts and intents from Indonesian chat messages. It holds
// only read-only keyword data, so one Engine can serve concurrent requests.
type Engine struct {
	kw *Keywords
}

func New(kw *Keywords) *Engine {
	if kw == nil {
		kw = DefaultKeywords()
	}
	return &Engine{kw: kw}
}

func (e *Engine) Keywords() *Keywords {
	return e.kw
}

var _ IExtractor = (*Engine)(nil)

var defaultEngine = New(DefaultKeywords())

func Tokenize(message string) []AmountToken {
	return defaultEngine.Tokenize(message)
}

func ExtractAmounts(message string) ExtractionResult {
	return defaultEngine.ExtractAmounts(message)
}

func ExtractMultipleTargets(message string) []NamedTarget {
	return defaultEngine.ExtractMultipleTargets(message)
}

func DetectIntent(message string) Intent {
	return defaultEngine.DetectIntent(message)
}

func DetectMultipleIntents(message string) []Intent {
	return defaultEngine.DetectMultipleIntents(message)
}
