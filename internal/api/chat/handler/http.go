package chatHandler

import (
	chatService "github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/chat/service"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ChatHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	chatService chatService.IChatService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	chatService chatService.IChatService,
) *ChatHandler {
	return &ChatHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		chatService: chatService,
	}
}

func (h *ChatHandler) Start(srv fiber.Router) {
	chat := srv.Group("/chat", h.middleware.NewTokenMiddleware)
	chat.Post("", h.Chat)
	chat.Post("/extract", h.Extract)
	chat.Post("/simulate", h.Simulate)
	chat.Get("/history", h.GetHistory)
	chat.Delete("/history", h.ClearHistory)
	chat.Get("/insights", h.GetInsights)
}
