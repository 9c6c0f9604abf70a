package chatService

import (
	"context"

	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/chat"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/entity"
	contextPkg "github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/context"
	"github.com/sirupsen/logrus"
)

func clampLimit(limit int) int {
	if limit <= 0 {
		return chat.DefaultListLimit
	}
	return min(limit, chat.MaxListLimit)
}

func (s *chatService) History(ctx context.Context, userID string, limit int) ([]entity.ChatExchange, error) {
	exchanges, err := s.history.RecentExchanges(ctx, userID, clampLimit(limit))
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to read chat history")
		return nil, err
	}
	return exchanges, nil
}

func (s *chatService) ClearHistory(ctx context.Context, userID string) error {
	return s.history.ClearHistory(ctx, userID)
}

func (s *chatService) Insights(ctx context.Context, userID string, limit int) ([]entity.FinancialInsight, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	insights, err := repo.Insights.ListInsights(ctx, userID, clampLimit(limit))
	if err != nil {
		return nil, chat.ErrListInsights
	}
	return insights, nil
}
