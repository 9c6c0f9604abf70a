package finance

const (
	PeriodAll   = "all"
	PeriodWeek  = "week"
	PeriodMonth = "month"
)

func IsValidPeriod(period string) bool {
	return period == PeriodAll || period == PeriodWeek || period == PeriodMonth
}

type UpdateWalletRequest struct {
	UserID           string `json:"-"`
	MonthlyAllowance int64  `json:"monthly_allowance" validate:"gte=0"`
	WeeklyAllowance  int64  `json:"weekly_allowance" validate:"gte=0"`
	SavingsGoal      int64  `json:"savings_goal" validate:"gte=0"`
	SavingsGoalName  string `json:"savings_goal_name" validate:"max=100"`
}

type WalletResponse struct {
	Balance          int64  `json:"balance"`
	MonthlyAllowance int64  `json:"monthly_allowance"`
	WeeklyAllowance  int64  `json:"weekly_allowance"`
	SavingsGoal      int64  `json:"savings_goal"`
	SavingsGoalName  string `json:"savings_goal_name"`
	UpdatedAt        string `json:"updated_at"`
}

type CreateTransactionRequest struct {
	UserID          string `json:"-"`
	Title           string `json:"title" validate:"required,max=150"`
	Description     string `json:"description"`
	Amount          int64  `json:"amount" validate:"required,gt=0"`
	Type            string `json:"type" validate:"required,oneof=income expense"`
	Category        string `json:"category" validate:"required"`
	TransactionDate string `json:"transaction_date"`
}

type UpdateTransactionRequest struct {
	ID              string `json:"-"`
	UserID          string `json:"-"`
	Title           string `json:"title" validate:"required,max=150"`
	Description     string `json:"description"`
	Amount          int64  `json:"amount" validate:"required,gt=0"`
	Type            string `json:"type" validate:"required,oneof=income expense"`
	Category        string `json:"category" validate:"required"`
	TransactionDate string `json:"transaction_date"`
}

type TransactionResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Amount          int64  `json:"amount"`
	Type            string `json:"type"`
	Category        string `json:"category"`
	TransactionDate string `json:"transaction_date"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

type TransactionListResponse struct {
	Period       string                `json:"period"`
	Transactions []TransactionResponse `json:"transactions"`
	TotalIncome  int64                 `json:"total_income"`
	TotalExpense int64                 `json:"total_expense"`
	Net          int64                 `json:"net"`
}

type SummaryResponse struct {
	Period            string           `json:"period"`
	TotalIncome       int64            `json:"total_income"`
	TotalExpense      int64            `json:"total_expense"`
	Net               int64            `json:"net"`
	ExpenseByCategory map[string]int64 `json:"expense_by_category"`
	Balance           int64            `json:"balance"`
}

// SyncReport is the outcome of recomputing every wallet balance.
type SyncReport struct {
	Checked   int `json:"checked"`
	Corrected int `json:"corrected"`
	Failed    int `json:"failed"`
}
