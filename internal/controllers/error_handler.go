package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"next-target-mock/dto"
)

// ErrorHandler renders errors that escape a handler (unknown routes,
// recovered panics) in the same {success:false} envelope the API uses.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fErr *fiber.Error
		if errors.As(err, &fErr) {
			code = fErr.Code
		}
		if code >= fiber.StatusInternalServerError {
			log.Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
		}
		return c.Status(code).JSON(dto.ErrorResponse{Success: false, Message: err.Error()})
	}
}
