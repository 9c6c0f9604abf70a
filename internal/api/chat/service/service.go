package chatService

import (
	"context"
	"time"

	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/chat"
	chatRepository "github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/chat/repository"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/entity"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/nlp"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/redis"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/simulation"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/utils"
	"github.com/sirupsen/logrus"
)

type IChatService interface {
	Chat(ctx context.Context, req chat.ChatRequest) (chat.ChatResponse, error)
	Extract(ctx context.Context, message string) (chat.ExtractResponse, error)
	Simulate(ctx context.Context, req chat.SimulateRequest) (simulation.Outcome, error)
	History(ctx context.Context, userID string, limit int) ([]entity.ChatExchange, error)
	ClearHistory(ctx context.Context, userID string) error
	Insights(ctx context.Context, userID string, limit int) ([]entity.FinancialInsight, error)
}

// Extractor is the engine surface the chat flow needs, including the per
// token breakdown served by the extract endpoint.
type Extractor interface {
	nlp.IExtractor
	ClassifyTokens(message string) []nlp.TokenRole
}

type WalletReader interface {
	GetWallet(ctx context.Context, userID string) (entity.Wallet, error)
}

type TotalsReader interface {
	GetTotals(ctx context.Context, userID string, period string) (entity.TransactionTotals, error)
}

type chatService struct {
	log        *logrus.Logger
	extractor  Extractor
	calculator *simulation.Calculator
	wallets    WalletReader
	totals     TotalsReader
	repo       chatRepository.Repository
	history    redis.IChatHistory
	utils      utils.IUtils
	now        func() time.Time
}

func NewChatService(
	log *logrus.Logger,
	extractor Extractor,
	calculator *simulation.Calculator,
	wallets WalletReader,
	totals TotalsReader,
	repo chatRepository.Repository,
	history redis.IChatHistory,
	utils utils.IUtils,
) IChatService {
	return &chatService{
		log:        log,
		extractor:  extractor,
		calculator: calculator,
		wallets:    wallets,
		totals:     totals,
		repo:       repo,
		history:    history,
		utils:      utils,
		now:        time.Now,
	}
}
