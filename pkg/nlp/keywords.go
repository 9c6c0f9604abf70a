package nlp

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

//go:embed keywords_id.json
var defaultKeywordsJSON []byte

// Keywords is the locale data the engine runs on. It is read-only once
// loaded and may be shared between goroutines.
type Keywords struct {
	Locale           string       `json:"locale"`
	MinPlainAmount   int64        `json:"min_plain_amount"`
	Roles            RoleKeywords `json:"roles"`
	ClauseBreakers   []string     `json:"clause_breakers"`
	TargetSeparators []string     `json:"target_separators"`
	BalanceCues      []string     `json:"balance_cues"`
	StopWords        []string     `json:"stop_words"`
	Intents          IntentPhrase `json:"intents"`

	stopWords map[string]bool
}

type RoleKeywords struct {
	Target    []string `json:"target"`
	Monthly   []string `json:"monthly"`
	Weekly    []string `json:"weekly"`
	Recurring []string `json:"recurring"`
}

type IntentPhrase struct {
	Goal           []string `json:"goal"`
	Saving         []string `json:"saving"`
	Recommendation []string `json:"recommendation"`
	Report         []string `json:"report"`
}

// DefaultKeywords returns the embedded Indonesian keyword set.
func DefaultKeywords() *Keywords {
	kw, err := ParseKeywords(defaultKeywordsJSON)
	if err != nil {
		panic(fmt.Sprintf("nlp: embedded keywords are invalid: %v", err))
	}
	return kw
}

// LoadKeywords reads a keyword file in the same layout as the embedded one.
func LoadKeywords(path string) (*Keywords, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keywords file: %w", err)
	}
	return ParseKeywords(data)
}

func ParseKeywords(data []byte) (*Keywords, error) {
	var kw Keywords
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &kw); err != nil {
		return nil, fmt.Errorf("decode keywords: %w", err)
	}
	if err := kw.Validate(); err != nil {
		return nil, err
	}
	kw.normalize()
	return &kw, nil
}

func (k *Keywords) Validate() error {
	var missing []string
	if len(k.Roles.Target) == 0 {
		missing = append(missing, "roles.target")
	}
	if len(k.Roles.Monthly) == 0 {
		missing = append(missing, "roles.monthly")
	}
	if len(k.Roles.Weekly) == 0 {
		missing = append(missing, "roles.weekly")
	}
	if len(missing) > 0 {
		return fmt.Errorf("keywords: missing %s", strings.Join(missing, ", "))
	}
	if k.MinPlainAmount < 0 {
		return fmt.Errorf("keywords: min_plain_amount must not be negative")
	}
	return nil
}

func (k *Keywords) normalize() {
	lower := func(list []string) []string {
		out := make([]string, 0, len(list))
		for _, s := range list {
			s = strings.ToLower(strings.TrimSpace(s))
			if s != "" {
				out = append(out, s)
			}
		}
		return out
	}

	k.Roles.Target = lower(k.Roles.Target)
	k.Roles.Monthly = lower(k.Roles.Monthly)
	k.Roles.Weekly = lower(k.Roles.Weekly)
	k.Roles.Recurring = lower(k.Roles.Recurring)
	k.ClauseBreakers = lower(k.ClauseBreakers)
	k.TargetSeparators = lower(k.TargetSeparators)
	k.BalanceCues = lower(k.BalanceCues)
	k.Intents.Goal = lower(k.Intents.Goal)
	k.Intents.Saving = lower(k.Intents.Saving)
	k.Intents.Recommendation = lower(k.Intents.Recommendation)
	k.Intents.Report = lower(k.Intents.Report)

	k.stopWords = make(map[string]bool)
	for _, w := range lower(k.StopWords) {
		k.stopWords[w] = true
	}
	// Role keywords never name a purchase.
	for _, list := range [][]string{k.Roles.Target, k.Roles.Monthly, k.Roles.Weekly, k.Roles.Recurring} {
		for _, w := range list {
			if !strings.ContainsAny(w, " /") {
				k.stopWords[w] = true
			}
		}
	}
}

func (k *Keywords) IsStopWord(word string) bool {
	return k.stopWords[strings.ToLower(word)]
}
