package entity

import (
	"time"

	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/finance"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

type IncomeCategory string

const (
	IncomeCategoryAllowance  IncomeCategory = "uang saku"
	IncomeCategorySalary     IncomeCategory = "gaji"
	IncomeCategoryBonus      IncomeCategory = "bonus"
	IncomeCategoryInvestment IncomeCategory = "investasi"
	IncomeCategoryPartTime   IncomeCategory = "part time"
	IncomeCategoryOther      IncomeCategory = "lainnya"
)

type ExpenseCategory string

const (
	ExpenseCategoryFood           ExpenseCategory = "makanan"
	ExpenseCategoryDaily          ExpenseCategory = "sehari-hari"
	ExpenseCategoryTransportation ExpenseCategory = "transportasi"
	ExpenseCategorySocial         ExpenseCategory = "sosial"
	ExpenseCategoryCommunication  ExpenseCategory = "komunikasi"
	ExpenseCategoryClothing       ExpenseCategory = "pakaian"
	ExpenseCategoryEntertainment  ExpenseCategory = "hiburan"
	ExpenseCategoryHealth         ExpenseCategory = "kesehatan"
	ExpenseCategoryEducation      ExpenseCategory = "pendidikan"
	ExpenseCategorySavings        ExpenseCategory = "tabungan"
	ExpenseCategoryGadget         ExpenseCategory = "gadget"
	ExpenseCategoryVacation       ExpenseCategory = "liburan"
	ExpenseCategoryOther          ExpenseCategory = "lainnya"
)

func IsValidIncomeCategory(category string) bool {
	switch IncomeCategory(category) {
	case IncomeCategoryAllowance, IncomeCategorySalary, IncomeCategoryBonus,
		IncomeCategoryInvestment, IncomeCategoryPartTime, IncomeCategoryOther:
		return true
	default:
		return false
	}
}

func IsValidExpenseCategory(category string) bool {
	switch ExpenseCategory(category) {
	case ExpenseCategoryFood, ExpenseCategoryDaily, ExpenseCategoryTransportation, ExpenseCategorySocial,
		ExpenseCategoryCommunication, ExpenseCategoryClothing, ExpenseCategoryEntertainment,
		ExpenseCategoryHealth, ExpenseCategoryEducation, ExpenseCategorySavings, ExpenseCategoryGadget,
		ExpenseCategoryVacation, ExpenseCategoryOther:
		return true
	default:
		return false
	}
}

func IsValidCategory(transactionType, category string) bool {
	switch TransactionType(transactionType) {
	case TransactionTypeIncome:
		return IsValidIncomeCategory(category)
	case TransactionTypeExpense:
		return IsValidExpenseCategory(category)
	default:
		return false
	}
}

type Transaction struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Amount          int64     `json:"amount"`
	Type            string    `json:"type"`
	Category        string    `json:"category"`
	TransactionDate time.Time `json:"transaction_date"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (t *Transaction) Validate() error {
	if t.Type != string(TransactionTypeIncome) && t.Type != string(TransactionTypeExpense) {
		return finance.ErrInvalidTransactionType
	}

	if !IsValidCategory(t.Type, t.Category) {
		return finance.ErrInvalidCategory
	}

	if t.Amount <= 0 {
		return finance.ErrInvalidAmount
	}

	return nil
}

// BalanceEffect is the change this transaction applies to the wallet.
func (t Transaction) BalanceEffect() int64 {
	if t.Type == string(TransactionTypeExpense) {
		return -t.Amount
	}
	return t.Amount
}

type TransactionTotals struct {
	Period     string           `json:"period"`
	Income     int64            `json:"income"`
	Expense    int64            `json:"expense"`
	ByCategory map[string]int64 `json:"expense_by_category"`
}

func (t TransactionTotals) Net() int64 {
	return t.Income - t.Expense
}
