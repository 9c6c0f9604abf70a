package middleware

import (
	"strings"
	"time"

	"github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/log"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var sensitiveFields = []string{
	"password", "token", "access_token", "accessToken",
	"secret", "authorization", "credential",
}

// LoggerConfig logs one line per request once the handler chain returns.
func LoggerConfig() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID, ok := c.Locals(RequestIDKey).(string)
		if !ok || requestID == "" {
			requestID = "unknown"
		}

		err := c.Next()

		latency := time.Since(start)
		status := c.Response().StatusCode()

		if err != nil && status == fiber.StatusInternalServerError {
			return err
		}

		logFields := log.Fields{
			"request_id":    requestID,
			"method":        c.Method(),
			"path":          c.Path(),
			"status":        status,
			"latency_ms":    latency.Milliseconds(),
			"ip":            c.IP(),
			"user_agent":    c.Get("User-Agent"),
			"response_size": len(c.Response().Body()),
		}

		if body := c.Request().Body(); len(body) > 0 {
			logFields["request_body"] = sanitizeRequestBody(c.Path(), body)
		}

		switch {
		case status >= 500:
			log.Error(logFields, "Server error")
		case status >= 400:
			log.Warn(logFields, "Client error")
		default:
			log.Info(logFields, "Success")
		}

		return err
	}
}

func sanitizeRequestBody(path string, body []byte) string {
	var jsonBody map[string]interface{}
	if err := json.Unmarshal(body, &jsonBody); err != nil {
		return "[non-JSON body]"
	}

	fields := sensitiveFields
	if strings.Contains(path, "/auth") {
		fields = append(fields[:len(fields):len(fields)], "email")
	}

	for _, field := range fields {
		if _, exists := jsonBody[field]; exists {
			jsonBody[field] = "[SECRET]"
		}
	}

	sanitized, err := json.Marshal(jsonBody)
	if err != nil {
		return "[sanitization-failed]"
	}

	return string(sanitized)
}
