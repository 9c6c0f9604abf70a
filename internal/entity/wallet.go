package entity

import "time"

// Wallet holds the running balance and the saving preferences the chat
// assistant falls back to when a message leaves them out.
type Wallet struct {
	UserID           string    `json:"user_id"`
	Balance          int64     `json:"balance"`
	MonthlyAllowance int64     `json:"monthly_allowance"`
	WeeklyAllowance  int64     `json:"weekly_allowance"`
	SavingsGoal      int64     `json:"savings_goal"`
	SavingsGoalName  string    `json:"savings_goal_name"`
	UpdatedAt        time.Time `json:"updated_at"`
}
