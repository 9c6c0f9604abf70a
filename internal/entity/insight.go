package entity

import "time"

type FinancialInsight struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Intent    string    `json:"intent"`
	Message   string    `json:"message"`
	Reply     string    `json:"reply"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatExchange is one message and reply kept in the short-lived chat history.
type ChatExchange struct {
	Message   string    `json:"message"`
	Reply     string    `json:"reply"`
	Intents   []string  `json:"intents"`
	CreatedAt time.Time `json:"created_at"`
}
