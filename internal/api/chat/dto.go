package chat

import (
	"time"

	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/entity"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/nlp"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/simulation"
)

const (
	MaxMessageLength = 1000

	DefaultListLimit = 20
	MaxListLimit     = 100
)

type ChatRequest struct {
	UserID  string `json:"-"`
	Message string `json:"message" validate:"required,max=1000"`
}

type ChatResponse struct {
	Intents     []string             `json:"intents"`
	Reply       string               `json:"reply"`
	Amounts     nlp.ExtractionResult `json:"amounts"`
	Targets     []nlp.NamedTarget    `json:"targets"`
	TotalTarget int64                `json:"total_target"`
	Simulation  *simulation.Outcome  `json:"simulation,omitempty"`
}

type ExtractRequest struct {
	Message string `json:"message" validate:"required,max=1000"`
}

// ExtractResponse exposes every stage of the engine for one message.
type ExtractResponse struct {
	Tokens        []nlp.TokenRole      `json:"tokens"`
	Amounts       nlp.ExtractionResult `json:"amounts"`
	Targets       []nlp.NamedTarget    `json:"targets"`
	TotalTarget   int64                `json:"total_target"`
	Intents       []string             `json:"intents"`
	PrimaryIntent string               `json:"primary_intent"`
}

type SimulateRequest struct {
	Target         int64  `json:"target"`
	Recurring      int64  `json:"recurring"`
	Unit           string `json:"unit" validate:"omitempty,oneof=day week month"`
	CurrentBalance int64  `json:"current_balance" validate:"gte=0"`
	GoalName       string `json:"goal_name" validate:"max=100"`
}

type HistoryResponse struct {
	Exchanges []entity.ChatExchange `json:"exchanges"`
}

type InsightResponse struct {
	ID        string    `json:"id"`
	Intent    string    `json:"intent"`
	Message   string    `json:"message"`
	Reply     string    `json:"reply"`
	CreatedAt time.Time `json:"created_at"`
}
