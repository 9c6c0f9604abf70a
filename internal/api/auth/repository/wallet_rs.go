package authRepository

import (
	"context"
	"time"

	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/auth"
	contextPkg "github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/context"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

func (r *walletRepository) CreateWallet(c context.Context, userID string, createdAt time.Time) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"user_id":    userID,
		"updated_at": createdAt,
	}

	query, args, err := sqlx.Named(queryCreateWallet, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateWallet")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Database error when creating wallet")
		return auth.ErrCreateWallet
	}

	return nil
}
