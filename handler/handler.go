package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"speaky-backend/dto/res"
	"speaky-backend/exception"
)

// writeError maps the error taxonomy onto HTTP statuses. Storage failures
// and anything unrecognized surface as an opaque 500.
func writeError(c *fiber.Ctx, log *logrus.Logger, err error) error {
	switch {
	case errors.Is(err, exception.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(res.ErrorResponse{
			Status:     fiber.ErrNotFound.Message,
			StatusCode: fiber.StatusNotFound,
			Error:      err.Error(),
		})
	case errors.Is(err, exception.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(res.ErrorResponse{
			Status:     fiber.ErrBadRequest.Message,
			StatusCode: fiber.StatusBadRequest,
			Error:      err.Error(),
		})
	case errors.Is(err, exception.ErrPermissionDenied):
		return c.Status(fiber.StatusForbidden).JSON(res.ErrorResponse{
			Status:     fiber.ErrForbidden.Message,
			StatusCode: fiber.StatusForbidden,
			Error:      "admin access required",
		})
	default:
		log.WithError(err).Error("request failed")
		return c.Status(fiber.StatusInternalServerError).JSON(res.ErrorResponse{
			Status:     fiber.ErrInternalServerError.Message,
			StatusCode: fiber.StatusInternalServerError,
			Error:      "internal error",
		})
	}
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(res.ErrorResponse{
		Status:     fiber.ErrBadRequest.Message,
		StatusCode: fiber.StatusBadRequest,
		Error:      message,
	})
}
