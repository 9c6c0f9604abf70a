package financeHandler

import (
	"time"

	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/finance"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/entity"
)

func makeWalletResponse(w entity.Wallet) finance.WalletResponse {
	return finance.WalletResponse{
		Balance:          w.Balance,
		MonthlyAllowance: w.MonthlyAllowance,
		WeeklyAllowance:  w.WeeklyAllowance,
		SavingsGoal:      w.SavingsGoal,
		SavingsGoalName:  w.SavingsGoalName,
		UpdatedAt:        w.UpdatedAt.Format(time.RFC3339),
	}
}

func makeTransactionResponse(t entity.Transaction) finance.TransactionResponse {
	return finance.TransactionResponse{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		Amount:          t.Amount,
		Type:            t.Type,
		Category:        t.Category,
		TransactionDate: t.TransactionDate.Format(time.RFC3339),
		CreatedAt:       t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       t.UpdatedAt.Format(time.RFC3339),
	}
}
