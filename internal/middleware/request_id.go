package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

const requestIDKey = "requestid"

// requestIDMaxLen caps ids taken from callers so they stay log friendly.
const requestIDMaxLen = 64

// RequestID reuses a caller supplied X-Request-ID or generates a UUID.
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     fiber.HeaderXRequestID,
		ContextKey: requestIDKey,
		Generator:  uuid.NewString,
		Next: func(c *fiber.Ctx) bool {
			if len(c.Get(fiber.HeaderXRequestID)) > requestIDMaxLen {
				c.Request().Header.Del(fiber.HeaderXRequestID)
			}
			return false
		},
	})
}

// RequestIDFromLocals returns the id RequestID stored for this request.
func RequestIDFromLocals(c *fiber.Ctx) string {
	rid, _ := c.Locals(requestIDKey).(string)
	return rid
}
