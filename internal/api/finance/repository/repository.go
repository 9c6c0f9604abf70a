package financeRepository

import (
	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/entity"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Wallets:      &walletRepository{q: sqlExecutor, log: r.log},
		Transactions: &transactionRepository{q: sqlExecutor, log: r.log},
		Commit:       commitFunc,
		Rollback:     rollbackFunc,
	}, nil
}

type WalletStore interface {
	GetWallet(ctx context.Context, userID string) (entity.Wallet, error)
	// GetWalletForUpdate locks the row until the surrounding transaction ends.
	GetWalletForUpdate(ctx context.Context, userID string) (entity.Wallet, error)
	UpdateSettings(ctx context.Context, wallet entity.Wallet) error
	AdjustBalance(ctx context.Context, userID string, delta int64) error
	SetBalance(ctx context.Context, userID string, balance int64) error
	ListUserIDs(ctx context.Context) ([]string, error)
}

type TransactionStore interface {
	CreateTransaction(ctx context.Context, transaction entity.Transaction) error
	GetTransactionByID(ctx context.Context, id string) (entity.Transaction, error)
	GetTransactionsByPeriod(ctx context.Context, userID string, period string) ([]entity.Transaction, error)
	UpdateTransaction(ctx context.Context, transaction entity.Transaction) error
	DeleteTransaction(ctx context.Context, id string) error
	GetTotals(ctx context.Context, userID string, period string) (entity.TransactionTotals, error)
}

type Client struct {
	Wallets      WalletStore
	Transactions TransactionStore

	Commit   func() error
	Rollback func() error
}

type walletRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type transactionRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
