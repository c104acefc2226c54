package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"speaky-backend/dto/req"
	"speaky-backend/dto/res"
	"speaky-backend/usecase"
)

type SocialHandler struct {
	usecase.SocialUsecase
	*logrus.Logger
}

func NewSocialHandler(socialUsecase usecase.SocialUsecase, logger *logrus.Logger) *SocialHandler {
	return &SocialHandler{SocialUsecase: socialUsecase, Logger: logger}
}

func (handler *SocialHandler) AddFriend(c *fiber.Ctx) error {
	request := new(req.AddFriendRequest)
	if err := c.BodyParser(request); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := handler.SocialUsecase.SendFriendRequest(c.Context(), request); err != nil {
		return writeError(c, handler.Logger, err)
	}

	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[any]{
		Message:    "Friend Request Sent",
		StatusCode: fiber.StatusOK,
	})
}

func (handler *SocialHandler) AcceptFriend(c *fiber.Ctx) error {
	request := new(req.AcceptFriendRequest)
	if err := c.BodyParser(request); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := handler.SocialUsecase.AcceptFriendRequest(c.Context(), request); err != nil {
		return writeError(c, handler.Logger, err)
	}

	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[any]{
		Message:    "Friend Request Accepted",
		StatusCode: fiber.StatusOK,
	})
}

func (handler *SocialHandler) ListFriends(c *fiber.Ctx) error {
	userID := c.Params("userId")

	friends, err := handler.SocialUsecase.ListFriends(c.Context(), userID)
	if err != nil {
		return writeError(c, handler.Logger, err)
	}

	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[[]res.UserSummaryResponse]{
		Message:    "Successfully Listed Friends",
		StatusCode: fiber.StatusOK,
		Data:       friends,
	})
}

func (handler *SocialHandler) Block(c *fiber.Ctx) error {
	request := new(req.BlockRequest)
	if err := c.BodyParser(request); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := handler.SocialUsecase.Block(c.Context(), request); err != nil {
		return writeError(c, handler.Logger, err)
	}

	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[any]{
		Message:    "Successfully Blocked User",
		StatusCode: fiber.StatusOK,
	})
}

func (handler *SocialHandler) Unblock(c *fiber.Ctx) error {
	request := new(req.BlockRequest)
	if err := c.BodyParser(request); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := handler.SocialUsecase.Unblock(c.Context(), request); err != nil {
		return writeError(c, handler.Logger, err)
	}

	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[any]{
		Message:    "Successfully Unblocked User",
		StatusCode: fiber.StatusOK,
	})
}

func (handler *SocialHandler) ListBlocked(c *fiber.Ctx) error {
	userID := c.Params("userId")

	blocked, err := handler.SocialUsecase.ListBlocked(c.Context(), userID)
	if err != nil {
		return writeError(c, handler.Logger, err)
	}

	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[[]res.BlockedUserResponse]{
		Message:    "Successfully Listed Blocked Users",
		StatusCode: fiber.StatusOK,
		Data:       blocked,
	})
}

func (handler *SocialHandler) Stats(c *fiber.Ctx) error {
	userID := c.Params("userId")

	stats, err := handler.SocialUsecase.Stats(c.Context(), userID)
	if err != nil {
		return writeError(c, handler.Logger, err)
	}

	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[res.StatsResponse]{
		Message:    "Successfully Retrieved Stats",
		StatusCode: fiber.StatusOK,
		Data:       stats,
	})
}
