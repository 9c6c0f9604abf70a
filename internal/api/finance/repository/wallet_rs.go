package financeRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/finance"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/entity"
	contextPkg "github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/context"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type WalletDB struct {
	UserID           string         `db:"user_id"`
	Balance          int64          `db:"balance"`
	MonthlyAllowance int64          `db:"monthly_allowance"`
	WeeklyAllowance  int64          `db:"weekly_allowance"`
	SavingsGoal      int64          `db:"savings_goal"`
	SavingsGoalName  sql.NullString `db:"savings_goal_name"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

func (r *walletRepository) GetWallet(c context.Context, userID string) (entity.Wallet, error) {
	return r.getWallet(c, queryGetWallet, userID)
}

func (r *walletRepository) GetWalletForUpdate(c context.Context, userID string) (entity.Wallet, error) {
	return r.getWallet(c, queryGetWalletForUpdate, userID)
}

func (r *walletRepository) getWallet(c context.Context, namedQuery string, userID string) (entity.Wallet, error) {
	requestID := contextPkg.GetRequestID(c)
	var wallet WalletDB

	query, args, err := sqlx.Named(namedQuery, map[string]interface{}{"user_id": userID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetWallet named query preparation err")
		return entity.Wallet{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&wallet); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"user_id":    userID,
			}).Warn("GetWallet no rows found")
			return entity.Wallet{}, finance.ErrWalletNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetWallet execution err")
		return entity.Wallet{}, err
	}

	return makeWallet(wallet), nil
}

func (r *walletRepository) UpdateSettings(c context.Context, wallet entity.Wallet) error {
	return r.execOne(c, "UpdateSettings", queryUpdateWalletSettings, map[string]interface{}{
		"user_id":           wallet.UserID,
		"monthly_allowance": wallet.MonthlyAllowance,
		"weekly_allowance":  wallet.WeeklyAllowance,
		"savings_goal":      wallet.SavingsGoal,
		"savings_goal_name": wallet.SavingsGoalName,
		"updated_at":        time.Now(),
	})
}

func (r *walletRepository) AdjustBalance(c context.Context, userID string, delta int64) error {
	return r.execOne(c, "AdjustBalance", queryAdjustBalance, map[string]interface{}{
		"user_id":    userID,
		"delta":      delta,
		"updated_at": time.Now(),
	})
}

func (r *walletRepository) SetBalance(c context.Context, userID string, balance int64) error {
	return r.execOne(c, "SetBalance", querySetBalance, map[string]interface{}{
		"user_id":    userID,
		"balance":    balance,
		"updated_at": time.Now(),
	})
}

func (r *walletRepository) ListUserIDs(c context.Context) ([]string, error) {
	var ids []string
	if err := r.q.SelectContext(c, &ids, queryListWalletUserIDs); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"error":      err.Error(),
		}).Error("ListUserIDs execution err")
		return nil, err
	}
	return ids, nil
}

// execOne runs a wallet update that must touch exactly one row.
func (r *walletRepository) execOne(c context.Context, op string, namedQuery string, argsKV map[string]interface{}) error {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    argsKV["user_id"],
		}).Warn(op + " no rows affected")
		return finance.ErrWalletNotFound
	}

	return nil
}

func makeWallet(w WalletDB) entity.Wallet {
	return entity.Wallet{
		UserID:           w.UserID,
		Balance:          w.Balance,
		MonthlyAllowance: w.MonthlyAllowance,
		WeeklyAllowance:  w.WeeklyAllowance,
		SavingsGoal:      w.SavingsGoal,
		SavingsGoalName:  w.SavingsGoalName.String,
		UpdatedAt:        w.UpdatedAt,
	}
}
