package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"speaky-backend/dto/req"
	"speaky-backend/dto/res"
	"speaky-backend/usecase"
)

type UploadHandler struct {
	usecase.UploadUsecase
	*logrus.Logger
}

func NewUploadHandler(uploadUsecase usecase.UploadUsecase, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{UploadUsecase: uploadUsecase, Logger: logger}
}

func (handler *UploadHandler) Upload(c *fiber.Ctx) error {
	request := new(req.UploadRequest)
	if err := c.BodyParser(request); err != nil {
		return badRequest(c, "invalid request body")
	}

	result, err := handler.UploadUsecase.Upload(c.Context(), request)
	if err != nil {
		return writeError(c, handler.Logger, err)
	}

	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[res.UploadResponse]{
		Message:    "Successfully Uploaded File",
		StatusCode: fiber.StatusOK,
		Data:       result,
	})
}
