package finance

import (
	"net/http"

	"github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/response"
)

var (
	ErrTransactionNotFound    = response.NewError(http.StatusNotFound, "transaction not found")
	ErrTransactionNotOwned    = response.NewError(http.StatusForbidden, "transaction does not belong to user")
	ErrInvalidCategory        = response.NewError(http.StatusBadRequest, "invalid category")
	ErrInvalidTransactionType = response.NewError(http.StatusBadRequest, "invalid transaction type")
	ErrInvalidAmount          = response.NewError(http.StatusBadRequest, "invalid transaction amount")
	ErrInvalidPeriod          = response.NewError(http.StatusBadRequest, "period must be all, week or month")
	ErrInvalidDate            = response.NewError(http.StatusBadRequest, "transaction_date must be RFC3339 or YYYY-MM-DD")
	ErrCreateTransaction      = response.NewError(http.StatusInternalServerError, "failed to create transaction")
	ErrUpdateTransaction      = response.NewError(http.StatusInternalServerError, "failed to update transaction")
	ErrDeleteTransaction      = response.NewError(http.StatusInternalServerError, "failed to delete transaction")
	ErrWalletNotFound         = response.NewError(http.StatusNotFound, "wallet not found")
	ErrInvalidWalletSettings  = response.NewError(http.StatusBadRequest, "wallet amounts must not be negative")
)
