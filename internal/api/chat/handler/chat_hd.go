package chatHandler

import (
	"errors"
	"time"

	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/chat"
	contextPkg "github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/context"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/handlerUtil"
	jwtPkg "github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/jwt"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/log"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/simulation"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

// simulationErrorResponse keeps the narrative of a rejected simulation so the
// client can still show it.
type simulationErrorResponse struct {
	Error      string             `json:"error"`
	Code       string             `json:"code"`
	Simulation simulation.Outcome `json:"simulation"`
}

func (h *ChatHandler) Chat(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing chat request")

	var req chat.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}
	req.UserID = userData.ID

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	res, err := h.chatService.Chat(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "chat")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *ChatHandler) Extract(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req chat.ExtractRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	res, err := h.chatService.Extract(c, req.Message)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "extract")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *ChatHandler) Simulate(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req chat.SimulateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	out, err := h.chatService.Simulate(c, req)
	switch {
	case errors.Is(err, simulation.ErrInvalidSavingRate):
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(simulationErrorResponse{
			Error: out.Narrative, Code: "INVALID_SAVING_RATE", Simulation: out,
		})
	case errors.Is(err, simulation.ErrInvalidTarget):
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(simulationErrorResponse{
			Error: out.Narrative, Code: "INVALID_TARGET", Simulation: out,
		})
	case err != nil:
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "simulate")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, out)
	}
}
