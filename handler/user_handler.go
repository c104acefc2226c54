package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"speaky-backend/dto/req"
	"speaky-backend/dto/res"
	"speaky-backend/usecase"
)

type UserHandler struct {
	usecase.UserUsecase
	*logrus.Logger
}

func NewUserHandler(userUsecase usecase.UserUsecase, logger *logrus.Logger) *UserHandler {
	return &UserHandler{UserUsecase: userUsecase, Logger: logger}
}

func (handler *UserHandler) Register(c *fiber.Ctx) error {
	request := new(req.RegisterRequest)
	if err := c.BodyParser(request); err != nil {
		return badRequest(c, "invalid request body")
	}

	user, err := handler.UserUsecase.Register(c.Context(), request)
	if err != nil {
		return writeError(c, handler.Logger, err)
	}

	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[res.UserResponse]{
		Message:    "Successfully Registered",
		StatusCode: fiber.StatusOK,
		Data:       user,
	})
}

func (handler *UserHandler) Login(c *fiber.Ctx) error {
	request := new(req.LoginRequest)
	if err := c.BodyParser(request); err != nil {
		return badRequest(c, "invalid request body")
	}

	user, err := handler.UserUsecase.Login(c.Context(), request)
	if err != nil {
		return writeError(c, handler.Logger, err)
	}

	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[res.UserResponse]{
		Message:    "Successfully Logged In",
		StatusCode: fiber.StatusOK,
		Data:       user,
	})
}

func (handler *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	request := new(req.EditProfileRequest)
	if err := c.BodyParser(request); err != nil {
		return badRequest(c, "invalid request body")
	}

	user, err := handler.UserUsecase.UpdateProfile(c.Context(), request)
	if err != nil {
		return writeError(c, handler.Logger, err)
	}

	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[res.UserResponse]{
		Message:    "Successfully Updated Profile",
		StatusCode: fiber.StatusOK,
		Data:       user,
	})
}

func (handler *UserHandler) Verify(c *fiber.Ctx) error {
	request := new(req.VerifyUserRequest)
	if err := c.BodyParser(request); err != nil {
		return badRequest(c, "invalid request body")
	}

	user, err := handler.UserUsecase.Verify(c.Context(), request)
	if err != nil {
		return writeError(c, handler.Logger, err)
	}

	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[res.VerifiedUserResponse]{
		Message:    "Successfully Verified User",
		StatusCode: fiber.StatusOK,
		Data:       user,
	})
}

func (handler *UserHandler) FindByUsername(c *fiber.Ctx) error {
	username := c.Params("username")
	if username == "" {
		return badRequest(c, "username is required")
	}

	user, err := handler.UserUsecase.FindByUsername(c.Context(), username)
	if err != nil {
		return writeError(c, handler.Logger, err)
	}

	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[res.UserResponse]{
		Message:    "Successfully Found User",
		StatusCode: fiber.StatusOK,
		Data:       user,
	})
}
