package financeService

import (
	"context"

	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/finance"
	financeRepository "github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/finance/repository"
	"github.com/sirupsen/logrus"
)

// SyncBalances recomputes every wallet balance from its transactions, one
// locked wallet at a time, and corrects the ones that drifted.
func (s *financeService) SyncBalances(ctx context.Context) (finance.SyncReport, error) {
	var report finance.SyncReport

	repo, err := s.repo.NewClient(false)
	if err != nil {
		return report, err
	}

	userIDs, err := repo.Wallets.ListUserIDs(ctx)
	if err != nil {
		return report, err
	}

	for _, userID := range userIDs {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		report.Checked++

		corrected := false
		err := s.withTx(ctx, func(tx financeRepository.Client) error {
			wallet, err := tx.Wallets.GetWalletForUpdate(ctx, userID)
			if err != nil {
				return err
			}
			totals, err := tx.Transactions.GetTotals(ctx, userID, finance.PeriodAll)
			if err != nil {
				return err
			}
			if wallet.Balance == totals.Net() {
				return nil
			}

			s.log.WithFields(logrus.Fields{
				"user_id":     userID,
				"old_balance": wallet.Balance,
				"new_balance": totals.Net(),
			}).Info("Correcting wallet balance")

			corrected = true
			return tx.Wallets.SetBalance(ctx, userID, totals.Net())
		})
		if err != nil {
			report.Failed++
			s.log.WithFields(logrus.Fields{
				"user_id": userID,
				"error":   err.Error(),
			}).Error("Failed to sync wallet balance")
			continue
		}
		if corrected {
			report.Corrected++
		}
	}

	return report, nil
}
