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

type TransactionDB struct {
	ID              string         `db:"id"`
	UserID          string         `db:"user_id"`
	Title           string         `db:"title"`
	Description     sql.NullString `db:"description"`
	Amount          int64          `db:"amount"`
	Type            string         `db:"type"`
	Category        string         `db:"category"`
	TransactionDate time.Time      `db:"transaction_date"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

type categoryTotalDB struct {
	Type     string `db:"type"`
	Category string `db:"category"`
	Total    int64  `db:"total"`
}

func (r *transactionRepository) CreateTransaction(c context.Context, transaction entity.Transaction) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":               transaction.ID,
		"user_id":          transaction.UserID,
		"title":            transaction.Title,
		"description":      transaction.Description,
		"amount":           transaction.Amount,
		"type":             transaction.Type,
		"category":         transaction.Category,
		"transaction_date": transaction.TransactionDate,
		"created_at":       transaction.CreatedAt,
		"updated_at":       transaction.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateTransaction")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating transaction")
		return err
	}

	return nil
}

func (r *transactionRepository) GetTransactionByID(c context.Context, id string) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(c)
	var transaction TransactionDB

	query, args, err := sqlx.Named(queryGetTransactionByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactionByID named query preparation err")
		return entity.Transaction{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&transaction); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetTransactionByID no rows found")
			return entity.Transaction{}, finance.ErrTransactionNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactionByID execution err")
		return entity.Transaction{}, err
	}

	return makeTransaction(transaction), nil
}

func (r *transactionRepository) GetTransactionsByPeriod(c context.Context, userID string, period string) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(c)
	var transactions []TransactionDB

	filter, ok := periodFilters[period]
	if !ok {
		return nil, finance.ErrInvalidPeriod
	}

	query, args, err := sqlx.Named(queryGetTransactions+filter+orderByDateDesc, map[string]interface{}{"user_id": userID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"period":     period,
		}).Error("GetTransactionsByPeriod named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &transactions, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"period":     period,
		}).Error("GetTransactionsByPeriod execution err")
		return nil, err
	}

	result := make([]entity.Transaction, 0, len(transactions))
	for _, t := range transactions {
		result = append(result, makeTransaction(t))
	}

	return result, nil
}

func (r *transactionRepository) UpdateTransaction(c context.Context, transaction entity.Transaction) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":               transaction.ID,
		"title":            transaction.Title,
		"description":      transaction.Description,
		"amount":           transaction.Amount,
		"type":             transaction.Type,
		"category":         transaction.Category,
		"transaction_date": transaction.TransactionDate,
		"updated_at":       transaction.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryUpdateTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateTransaction named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateTransaction execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return finance.ErrTransactionNotFound
	}

	return nil
}

func (r *transactionRepository) DeleteTransaction(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(queryDeleteTransaction, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTransaction named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTransaction execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return finance.ErrTransactionNotFound
	}

	return nil
}

func (r *transactionRepository) GetTotals(c context.Context, userID string, period string) (entity.TransactionTotals, error) {
	requestID := contextPkg.GetRequestID(c)

	filter, ok := periodFilters[period]
	if !ok {
		return entity.TransactionTotals{}, finance.ErrInvalidPeriod
	}

	query, args, err := sqlx.Named(queryTotals+filter+queryTotalsGroupBy, map[string]interface{}{"user_id": userID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTotals named query preparation err")
		return entity.TransactionTotals{}, err
	}
	query = r.q.Rebind(query)

	var rows []categoryTotalDB
	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"period":     period,
		}).Error("GetTotals execution err")
		return entity.TransactionTotals{}, err
	}

	return makeTotals(period, rows), nil
}

func makeTotals(period string, rows []categoryTotalDB) entity.TransactionTotals {
	totals := entity.TransactionTotals{
		Period:     period,
		ByCategory: make(map[string]int64),
	}
	for _, row := range rows {
		switch entity.TransactionType(row.Type) {
		case entity.TransactionTypeIncome:
			totals.Income += row.Total
		case entity.TransactionTypeExpense:
			totals.Expense += row.Total
			totals.ByCategory[row.Category] += row.Total
		}
	}
	return totals
}

func makeTransaction(t TransactionDB) entity.Transaction {
	return entity.Transaction{
		ID:              t.ID,
		UserID:          t.UserID,
		Title:           t.Title,
		Description:     t.Description.String,
		Amount:          t.Amount,
		Type:            t.Type,
		Category:        t.Category,
		TransactionDate: t.TransactionDate,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}
