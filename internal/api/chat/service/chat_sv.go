package chatService

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/chat"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/finance"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/entity"
	contextPkg "github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/context"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/nlp"
	"github.com/sirupsen/logrus"
)

const sectionSeparator = "\n\n"

// Chat answers every intent found in the message, in priority order, and
// records the exchange.
func (s *chatService) Chat(ctx context.Context, req chat.ChatRequest) (chat.ChatResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	message, err := cleanMessage(req.Message)
	if err != nil {
		return chat.ChatResponse{}, err
	}

	intents := s.extractor.DetectMultipleIntents(message)
	amounts := s.extractor.ExtractAmounts(message)
	targets := s.extractor.ExtractMultipleTargets(message)

	logFields := logrus.Fields{
		"request_id": requestID,
		"user_id":    req.UserID,
		"intents":    intents,
	}
	for _, d := range amounts.Diagnostics {
		if d.Kind == nlp.DiagAmbiguousRole || d.Kind == nlp.DiagPositional {
			s.log.WithFields(logFields).WithField("diagnostic", d.Message).Warn("Amount role resolved by tie-break")
		}
	}

	wallet, err := s.loadWallet(ctx, req.UserID)
	if err != nil {
		return chat.ChatResponse{}, err
	}

	res := chat.ChatResponse{
		Intents:     intentNames(intents),
		Amounts:     amounts,
		Targets:     targets,
		TotalTarget: nlp.CalculateTotalTarget(targets),
	}

	reports := &periodTotals{svc: s, userID: req.UserID}
	sections := make([]string, 0, len(intents))
	for _, intent := range intents {
		switch intent {
		case nlp.IntentGoalSimulation:
			text, outcome := s.goalSection(amounts, targets, wallet)
			sections = append(sections, text)
			res.Simulation = outcome
		case nlp.IntentRecommendation:
			sections = append(sections, s.recommendationSection(ctx, reports, wallet))
		case nlp.IntentReport:
			sections = append(sections, reportSection(ctx, reports, wallet))
		default:
			sections = append(sections, unknownSection())
		}
	}
	res.Reply = strings.Join(sections, sectionSeparator)

	s.record(ctx, req.UserID, message, res)

	s.log.WithFields(logFields).Info("Chat message answered")

	return res, nil
}

// loadWallet treats a missing wallet as an empty one so chat still works for
// accounts created before wallets existed.
func (s *chatService) loadWallet(ctx context.Context, userID string) (entity.Wallet, error) {
	wallet, err := s.wallets.GetWallet(ctx, userID)
	if errors.Is(err, finance.ErrWalletNotFound) {
		return entity.Wallet{UserID: userID}, nil
	}
	return wallet, err
}

// record persists the insight and appends the exchange to the chat history.
// Failures are logged; the reply has already been produced.
func (s *chatService) record(ctx context.Context, userID, message string, res chat.ChatResponse) {
	requestID := contextPkg.GetRequestID(ctx)
	now := s.now()

	if err := s.saveInsight(ctx, userID, message, res, now); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to persist financial insight")
	}

	err := s.history.AppendExchange(ctx, userID, entity.ChatExchange{
		Message:   message,
		Reply:     res.Reply,
		Intents:   res.Intents,
		CreatedAt: now,
	})
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Warn("Failed to append chat history")
	}
}

func (s *chatService) saveInsight(ctx context.Context, userID, message string, res chat.ChatResponse, now time.Time) error {
	id, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		return err
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		return err
	}

	return repo.Insights.CreateInsight(ctx, entity.FinancialInsight{
		ID:        id,
		UserID:    userID,
		Intent:    strings.Join(res.Intents, ","),
		Message:   message,
		Reply:     res.Reply,
		CreatedAt: now,
	})
}

func cleanMessage(message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", chat.ErrEmptyMessage
	}
	if utf8.RuneCountInString(message) > chat.MaxMessageLength {
		return "", chat.ErrMessageTooLong
	}
	return message, nil
}

func intentNames(intents []nlp.Intent) []string {
	names := make([]string, len(intents))
	for i, intent := range intents {
		names[i] = string(intent)
	}
	return names
}
