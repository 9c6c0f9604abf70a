package nlp

type Role string

const (
	RoleNone    Role = ""
	RoleTarget  Role = "target"
	RoleMonthly Role = "monthly"
	RoleWeekly  Role = "weekly"
)

type Intent string

const (
	IntentGoalSimulation Intent = "goal_simulation"
	IntentRecommendation Intent = "recommendation"
	IntentReport         Intent = "report"
	IntentUnknown        Intent = "unknown"
)

// AmountToken is a single amount found in a message. Start and End are byte
// offsets into the original message.
type AmountToken struct {
	Raw           string `json:"raw"`
	Value         int64  `json:"value"`
	Start         int    `json:"start"`
	End           int    `json:"end"`
	LowConfidence bool   `json:"low_confidence,omitempty"`
}

// ContextWindow is the text around a token up to the nearest clause
// delimiter or neighbouring amount on each side.
type ContextWindow struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

type DiagnosticKind string

const (
	DiagNoAmountFound DiagnosticKind = "no_amount_found"
	DiagAmbiguousRole DiagnosticKind = "ambiguous_role"
	DiagPositional    DiagnosticKind = "positional_fallback"
)

type Diagnostic struct {
	Kind    DiagnosticKind `json:"kind"`
	Role    Role           `json:"role,omitempty"`
	Message string         `json:"message"`
}

type ExtractionResult struct {
	Target      *int64       `json:"target"`
	Monthly     *int64       `json:"monthly"`
	Weekly      *int64       `json:"weekly"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

func (r ExtractionResult) HasAmounts() bool {
	return r.Target != nil || r.Monthly != nil || r.Weekly != nil
}

func (r ExtractionResult) HasDiagnostic(kind DiagnosticKind) bool {
	for _, d := range r.Diagnostics {
		if d.Kind == kind {
			return true
		}
	}
	return false
}

type NamedTarget struct {
	Name   string `json:"name"`
	Amount int64  `json:"amount"`
}

// TokenRole is the classification of one token together with the keyword
// that decided it.
type TokenRole struct {
	Token   AmountToken   `json:"token"`
	Role    Role          `json:"role"`
	Keyword string        `json:"keyword,omitempty"`
	Window  ContextWindow `json:"window"`
}

type IExtractor interface {
	Tokenize(message string) []AmountToken
	Classify(message string, tokens []AmountToken) ExtractionResult
	ExtractAmounts(message string) ExtractionResult
	ExtractMultipleTargets(message string) []NamedTarget
	DetectIntent(message string) Intent
	DetectMultipleIntents(message string) []Intent
}
