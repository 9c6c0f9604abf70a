package financeService

import (
	"context"
	"strings"

	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/finance"
	financeRepository "github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/finance/repository"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/entity"
	contextPkg "github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/context"
	"github.com/sirupsen/logrus"
)

func (s *financeService) GetWallet(ctx context.Context, userID string) (entity.Wallet, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Wallet{}, err
	}

	return repo.Wallets.GetWallet(ctx, userID)
}

// UpdateWallet changes allowances and the savings goal. The balance is only
// moved by transactions.
func (s *financeService) UpdateWallet(ctx context.Context, req finance.UpdateWalletRequest) (entity.Wallet, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if req.MonthlyAllowance < 0 || req.WeeklyAllowance < 0 || req.SavingsGoal < 0 {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    req.UserID,
		}).Warn("Negative wallet settings")
		return entity.Wallet{}, finance.ErrInvalidWalletSettings
	}

	var updated entity.Wallet
	err := s.withTx(ctx, func(repo financeRepository.Client) error {
		wallet, err := repo.Wallets.GetWalletForUpdate(ctx, req.UserID)
		if err != nil {
			return err
		}

		wallet.MonthlyAllowance = req.MonthlyAllowance
		wallet.WeeklyAllowance = req.WeeklyAllowance
		wallet.SavingsGoal = req.SavingsGoal
		wallet.SavingsGoalName = strings.TrimSpace(req.SavingsGoalName)
		wallet.UpdatedAt = s.now()

		if err := repo.Wallets.UpdateSettings(ctx, wallet); err != nil {
			return err
		}
		updated = wallet
		return nil
	})
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    req.UserID,
			"error":      err.Error(),
		}).Error("Failed to update wallet")
		return entity.Wallet{}, err
	}

	return updated, nil
}
