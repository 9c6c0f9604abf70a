package financeService

import (
	"context"
	"time"

	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/finance"
	financeRepository "github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/finance/repository"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/entity"
	contextPkg "github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/context"
	"github.com/sirupsen/logrus"
)

func (s *financeService) CreateTransaction(ctx context.Context, req finance.CreateTransactionRequest) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !entity.IsValidCategory(req.Type, req.Category) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"type":       req.Type,
			"category":   req.Category,
		}).Warn("Invalid transaction category for type")
		return entity.Transaction{}, finance.ErrInvalidCategory
	}

	now := s.now()
	date, err := parseTransactionDate(req.TransactionDate, now)
	if err != nil {
		return entity.Transaction{}, err
	}

	id, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Transaction{}, err
	}

	transaction := entity.Transaction{
		ID:              id,
		UserID:          req.UserID,
		Title:           req.Title,
		Description:     req.Description,
		Amount:          req.Amount,
		Type:            req.Type,
		Category:        req.Category,
		TransactionDate: date,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := transaction.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid transaction data")
		return entity.Transaction{}, err
	}

	err = s.withTx(ctx, func(repo financeRepository.Client) error {
		if _, err := repo.Wallets.GetWalletForUpdate(ctx, req.UserID); err != nil {
			return err
		}
		if err := repo.Transactions.CreateTransaction(ctx, transaction); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to create transaction")
			return finance.ErrCreateTransaction
		}
		return repo.Wallets.AdjustBalance(ctx, req.UserID, transaction.BalanceEffect())
	})
	if err != nil {
		return entity.Transaction{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    req.UserID,
		"id":         transaction.ID,
		"effect":     transaction.BalanceEffect(),
	}).Info("Transaction created")

	return transaction, nil
}

func (s *financeService) GetTransactionByID(ctx context.Context, id string, userID string) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Transaction{}, err
	}

	transaction, err := repo.Transactions.GetTransactionByID(ctx, id)
	if err != nil {
		return entity.Transaction{}, err
	}

	if transaction.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id":          requestID,
			"transaction_user_id": transaction.UserID,
			"request_user_id":     userID,
		}).Warn("Transaction does not belong to user")
		return entity.Transaction{}, finance.ErrTransactionNotOwned
	}

	return transaction, nil
}

func (s *financeService) GetTransactionsByPeriod(ctx context.Context, userID string, period string) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !finance.IsValidPeriod(period) {
		return nil, finance.ErrInvalidPeriod
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	return repo.Transactions.GetTransactionsByPeriod(ctx, userID, period)
}

func (s *financeService) UpdateTransaction(ctx context.Context, req finance.UpdateTransactionRequest) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !entity.IsValidCategory(req.Type, req.Category) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"type":       req.Type,
			"category":   req.Category,
		}).Warn("Invalid transaction category for type")
		return entity.Transaction{}, finance.ErrInvalidCategory
	}

	var updated entity.Transaction
	err := s.withTx(ctx, func(repo financeRepository.Client) error {
		if _, err := repo.Wallets.GetWalletForUpdate(ctx, req.UserID); err != nil {
			return err
		}

		existing, err := repo.Transactions.GetTransactionByID(ctx, req.ID)
		if err != nil {
			return err
		}
		if existing.UserID != req.UserID {
			s.log.WithFields(logrus.Fields{
				"request_id":          requestID,
				"transaction_user_id": existing.UserID,
				"request_user_id":     req.UserID,
			}).Warn("Transaction does not belong to user")
			return finance.ErrTransactionNotOwned
		}

		date := existing.TransactionDate
		if req.TransactionDate != "" {
			if date, err = parseTransactionDate(req.TransactionDate, s.now()); err != nil {
				return err
			}
		}

		updated = existing
		updated.Title = req.Title
		updated.Description = req.Description
		updated.Amount = req.Amount
		updated.Type = req.Type
		updated.Category = req.Category
		updated.TransactionDate = date
		updated.UpdatedAt = s.now()

		if err := updated.Validate(); err != nil {
			return err
		}

		if err := repo.Transactions.UpdateTransaction(ctx, updated); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to update transaction")
			return finance.ErrUpdateTransaction
		}

		if delta := updated.BalanceEffect() - existing.BalanceEffect(); delta != 0 {
			return repo.Wallets.AdjustBalance(ctx, req.UserID, delta)
		}
		return nil
	})
	if err != nil {
		return entity.Transaction{}, err
	}

	return updated, nil
}

func (s *financeService) DeleteTransaction(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	return s.withTx(ctx, func(repo financeRepository.Client) error {
		if _, err := repo.Wallets.GetWalletForUpdate(ctx, userID); err != nil {
			return err
		}

		existing, err := repo.Transactions.GetTransactionByID(ctx, id)
		if err != nil {
			return err
		}
		if existing.UserID != userID {
			s.log.WithFields(logrus.Fields{
				"request_id":          requestID,
				"transaction_user_id": existing.UserID,
				"request_user_id":     userID,
			}).Warn("Transaction does not belong to user")
			return finance.ErrTransactionNotOwned
		}

		if err := repo.Transactions.DeleteTransaction(ctx, id); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to delete transaction")
			return finance.ErrDeleteTransaction
		}

		return repo.Wallets.AdjustBalance(ctx, userID, -existing.BalanceEffect())
	})
}

func (s *financeService) GetTotals(ctx context.Context, userID string, period string) (entity.TransactionTotals, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !finance.IsValidPeriod(period) {
		return entity.TransactionTotals{}, finance.ErrInvalidPeriod
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.TransactionTotals{}, err
	}

	return repo.Transactions.GetTotals(ctx, userID, period)
}

// parseTransactionDate accepts RFC3339 or a plain date; empty means now.
func parseTransactionDate(value string, now time.Time) (time.Time, error) {
	if value == "" {
		return now, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(time.DateOnly, value, now.Location()); err == nil {
		return t, nil
	}
	return time.Time{}, finance.ErrInvalidDate
}
