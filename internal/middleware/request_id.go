package middleware

import (
	"time"

	"github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

const (
	RequestIDKey = "X-Request-ID"

	maxRequestIDLength = 64
)

// NewRequestIDMiddleware keeps a caller supplied X-Request-ID and generates
// a ULID otherwise.
func NewRequestIDMiddleware() fiber.Handler {
	utilsInstance := utils.New()

	return func(c *fiber.Ctx) error {
		requestID := c.Get(RequestIDKey)

		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID, _ = utilsInstance.NewULIDFromTimestamp(time.Now())
		}

		c.Locals(RequestIDKey, requestID)
		c.Set(RequestIDKey, requestID)

		return c.Next()
	}
}
