package chatHandler

import (
	"time"

	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/chat"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/entity"
	contextPkg "github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/context"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/handlerUtil"
	jwtPkg "github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/jwt"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *ChatHandler) GetHistory(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	exchanges, err := h.chatService.History(c, userData.ID, ctx.QueryInt("limit", chat.DefaultListLimit))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_history")
	}
	if exchanges == nil {
		exchanges = []entity.ChatExchange{}
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, chat.HistoryResponse{Exchanges: exchanges})
	}
}

func (h *ChatHandler) ClearHistory(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	if err := h.chatService.ClearHistory(c, userData.ID); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "clear_history")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusNoContent, nil)
	}
}

func (h *ChatHandler) GetInsights(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	insights, err := h.chatService.Insights(c, userData.ID, ctx.QueryInt("limit", chat.DefaultListLimit))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_insights")
	}

	res := make([]chat.InsightResponse, 0, len(insights))
	for _, insight := range insights {
		res = append(res, chat.InsightResponse{
			ID:        insight.ID,
			Intent:    insight.Intent,
			Message:   insight.Message,
			Reply:     insight.Reply,
			CreatedAt: insight.CreatedAt,
		})
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}
