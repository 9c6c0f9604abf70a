package handlerUtil

import (
	"errors"

	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/auth"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/chat"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/finance"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/log"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/response"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

// errorCodes gives clients a stable code for the errors they branch on.
var errorCodes = []struct {
	err  error
	code string
}{
	{auth.ErrEmailAlreadyExists, "EMAIL_ALREADY_EXISTS"},
	{auth.ErrInvalidEmailOrPassword, "INVALID_CREDENTIALS"},
	{auth.ErrUserNotFound, "USER_NOT_FOUND"},

	{finance.ErrTransactionNotFound, "TRANSACTION_NOT_FOUND"},
	{finance.ErrTransactionNotOwned, "TRANSACTION_NOT_OWNED"},
	{finance.ErrInvalidCategory, "INVALID_CATEGORY"},
	{finance.ErrInvalidTransactionType, "INVALID_TRANSACTION_TYPE"},
	{finance.ErrInvalidAmount, "INVALID_AMOUNT"},
	{finance.ErrInvalidPeriod, "INVALID_PERIOD"},
	{finance.ErrInvalidDate, "INVALID_DATE"},
	{finance.ErrWalletNotFound, "WALLET_NOT_FOUND"},
	{finance.ErrInvalidWalletSettings, "INVALID_WALLET_SETTINGS"},

	{chat.ErrEmptyMessage, "EMPTY_MESSAGE"},
	{chat.ErrMessageTooLong, "MESSAGE_TOO_LONG"},
	{chat.ErrInvalidSimulation, "INVALID_SIMULATION"},
}

func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	fields := log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}

	var respErr *response.Error
	if errors.As(err, &respErr) {
		fields["code"] = respErr.Code
		body := ErrorResponse{Error: err.Error()}
		for _, e := range errorCodes {
			if errors.Is(err, e.err) {
				body.Code = e.code
				break
			}
		}

		if respErr.Code >= fiber.StatusInternalServerError {
			h.logger.WithFields(fields).Error("Operation failed with error response")
		} else {
			h.logger.WithFields(fields).Warn("Operation failed with error response")
		}
		return c.Status(respErr.Code).JSON(body)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		h.logger.WithFields(fields).Warn("Request rejected")
		return c.Status(fiberErr.Code).JSON(ErrorResponse{Error: fiberErr.Message})
	}

	h.logger.WithFields(fields).Error("Unexpected error")

	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: "An unexpected error occurred",
	})
}

func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}).Warn("Validation failed")

	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Error: "Validation failed: " + err.Error(),
		Code:  "VALIDATION_ERROR",
	})
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusRequestTimeout).JSON(utils.StatusMessage(fiber.StatusRequestTimeout))
}

func (h *ErrorHandler) HandleUnauthorized(c *fiber.Ctx, requestID string, message string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"path":       c.Path(),
		"message":    message,
	}).Warn("Unauthorized access")

	return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
		Error: message,
		Code:  "UNAUTHORIZED",
	})
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, data interface{}) error {
	if data == nil {
		return c.SendStatus(statusCode)
	}
	return c.Status(statusCode).JSON(data)
}
