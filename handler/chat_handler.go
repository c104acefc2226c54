package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"speaky-backend/dto/req"
	"speaky-backend/dto/res"
	"speaky-backend/usecase"
)

type ChatHandler struct {
	usecase.ChatUsecase
	*logrus.Logger
}

func NewChatHandler(chatUsecase usecase.ChatUsecase, logger *logrus.Logger) *ChatHandler {
	return &ChatHandler{ChatUsecase: chatUsecase, Logger: logger}
}

func (handler *ChatHandler) Create(c *fiber.Ctx) error {
	request := new(req.CreateChatRequest)
	if err := c.BodyParser(request); err != nil {
		return badRequest(c, "invalid request body")
	}

	chat, err := handler.ChatUsecase.Create(c.Context(), request)
	if err != nil {
		return writeError(c, handler.Logger, err)
	}

	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[res.ChatResponse]{
		Message:    "Successfully Created Chat",
		StatusCode: fiber.StatusOK,
		Data:       chat,
	})
}

func (handler *ChatHandler) AddMember(c *fiber.Ctx) error {
	request := new(req.AddMemberRequest)
	if err := c.BodyParser(request); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := handler.ChatUsecase.AddMember(c.Context(), request); err != nil {
		return writeError(c, handler.Logger, err)
	}

	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[any]{
		Message:    "Successfully Added Member",
		StatusCode: fiber.StatusOK,
	})
}

func (handler *ChatHandler) RemoveMember(c *fiber.Ctx) error {
	request := new(req.RemoveMemberRequest)
	if err := c.BodyParser(request); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := handler.ChatUsecase.RemoveMember(c.Context(), request); err != nil {
		return writeError(c, handler.Logger, err)
	}

	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[any]{
		Message:    "Successfully Removed Member",
		StatusCode: fiber.StatusOK,
	})
}

func (handler *ChatHandler) ListChats(c *fiber.Ctx) error {
	userID := c.Query("user_id")
	if userID == "" {
		return badRequest(c, "user_id is required")
	}

	chats, err := handler.ChatUsecase.ListChatsForUser(c.Context(), userID)
	if err != nil {
		return writeError(c, handler.Logger, err)
	}

	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[[]res.ChatResponse]{
		Message:    "Successfully Listed Chats",
		StatusCode: fiber.StatusOK,
		Data:       chats,
	})
}

func (handler *ChatHandler) ListMembers(c *fiber.Ctx) error {
	chatID := c.Params("chatId")
	if chatID == "" {
		return badRequest(c, "chatId is required")
	}

	members, err := handler.ChatUsecase.ListMembers(c.Context(), chatID)
	if err != nil {
		return writeError(c, handler.Logger, err)
	}

	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[[]res.ChatMemberResponse]{
		Message:    "Successfully Listed Members",
		StatusCode: fiber.StatusOK,
		Data:       members,
	})
}
