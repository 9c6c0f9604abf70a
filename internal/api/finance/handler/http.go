package financeHandler

import (
	financeService "github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/finance/service"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type FinanceHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	financeService financeService.IFinanceService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	financeService financeService.IFinanceService,
) *FinanceHandler {
	return &FinanceHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		financeService: financeService,
	}
}

func (h *FinanceHandler) Start(srv fiber.Router) {
	wallet := srv.Group("/wallet", h.middleware.NewTokenMiddleware)
	wallet.Get("", h.GetWallet)
	wallet.Put("", h.UpdateWallet)

	transactions := srv.Group("/transactions", h.middleware.NewTokenMiddleware)
	transactions.Post("", h.CreateTransaction)
	transactions.Get("", h.GetTransactionsByPeriod)
	transactions.Get("/summary", h.GetSummary)
	transactions.Get("/:id", h.GetTransactionByID)
	transactions.Put("/:id", h.UpdateTransaction)
	transactions.Delete("/:id", h.DeleteTransaction)
}
