package financeService

import (
	"context"
	"time"

	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/finance"
	financeRepository "github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/finance/repository"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/entity"
	contextPkg "github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/context"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/utils"
	"github.com/sirupsen/logrus"
)

type IFinanceService interface {
	GetWallet(ctx context.Context, userID string) (entity.Wallet, error)
	UpdateWallet(ctx context.Context, req finance.UpdateWalletRequest) (entity.Wallet, error)

	CreateTransaction(ctx context.Context, req finance.CreateTransactionRequest) (entity.Transaction, error)
	GetTransactionByID(ctx context.Context, id string, userID string) (entity.Transaction, error)
	GetTransactionsByPeriod(ctx context.Context, userID string, period string) ([]entity.Transaction, error)
	UpdateTransaction(ctx context.Context, req finance.UpdateTransactionRequest) (entity.Transaction, error)
	DeleteTransaction(ctx context.Context, id string, userID string) error
	GetTotals(ctx context.Context, userID string, period string) (entity.TransactionTotals, error)

	SyncBalances(ctx context.Context) (finance.SyncReport, error)
}

type financeService struct {
	log   *logrus.Logger
	repo  financeRepository.Repository
	utils utils.IUtils
	now   func() time.Time
}

func NewFinanceService(log *logrus.Logger, repo financeRepository.Repository, utils utils.IUtils) IFinanceService {
	return &financeService{
		log:   log,
		repo:  repo,
		utils: utils,
		now:   time.Now,
	}
}

// withTx runs fn inside a database transaction and commits only when fn
// succeeds.
func (s *financeService) withTx(ctx context.Context, fn func(repo financeRepository.Client) error) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to begin transaction")
		return err
	}

	if err := fn(repo); err != nil {
		if rbErr := repo.Rollback(); rbErr != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      rbErr.Error(),
			}).Error("Failed to rollback transaction")
		}
		return err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return err
	}

	return nil
}
