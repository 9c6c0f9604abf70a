package chatRepository

import (
	"context"
	"database/sql"

	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/entity"
	contextPkg "github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/context"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type InsightDB struct {
	ID        sql.NullString `db:"id"`
	UserID    sql.NullString `db:"user_id"`
	Intent    sql.NullString `db:"intent"`
	Message   sql.NullString `db:"message"`
	Reply     sql.NullString `db:"reply"`
	CreatedAt sql.NullTime   `db:"created_at"`
}

func (r *insightRepository) CreateInsight(c context.Context, insight entity.FinancialInsight) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         insight.ID,
		"user_id":    insight.UserID,
		"intent":     insight.Intent,
		"message":    insight.Message,
		"reply":      insight.Reply,
		"created_at": insight.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateInsight, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateInsight")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating insight")
		return err
	}

	return nil
}

func (r *insightRepository) ListInsights(c context.Context, userID string, limit int) ([]entity.FinancialInsight, error) {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"user_id": userID,
		"limit":   limit,
	}

	query, args, err := sqlx.Named(queryListInsights, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListInsights named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	var rows []InsightDB
	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListInsights execution err")
		return nil, err
	}

	insights := make([]entity.FinancialInsight, 0, len(rows))
	for _, row := range rows {
		insights = append(insights, makeInsight(row))
	}

	return insights, nil
}

func makeInsight(row InsightDB) entity.FinancialInsight {
	return entity.FinancialInsight{
		ID:        row.ID.String,
		UserID:    row.UserID.String,
		Intent:    row.Intent.String,
		Message:   row.Message.String,
		Reply:     row.Reply.String,
		CreatedAt: row.CreatedAt.Time,
	}
}
