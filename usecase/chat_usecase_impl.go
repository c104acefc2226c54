package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"speaky-backend/dto/req"
	"speaky-backend/dto/res"
	"speaky-backend/entity"
	"speaky-backend/enum"
	"speaky-backend/exception"
	"speaky-backend/repository"
)

type ChatUsecaseImpl struct {
	*repository.ChatRepository
	*validator.Validate
	*gorm.DB
	*logrus.Logger
}

func NewChatUsecase(chatRepository *repository.ChatRepository, validate *validator.Validate, DB *gorm.DB, logger *logrus.Logger) ChatUsecase {
	return &ChatUsecaseImpl{ChatRepository: chatRepository, Validate: validate, DB: DB, Logger: logger}
}

func (uc *ChatUsecaseImpl) Create(ctx context.Context, request *req.CreateChatRequest) (res.ChatResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return res.ChatResponse{}, fmt.Errorf("%w: %v", exception.ErrValidation, err)
	}

	chat := &entity.Chat{
		ChatType:  enum.ChatType(request.Type),
		Name:      request.Name,
		AvatarURL: request.AvatarURL,
		CreatedBy: request.UserID,
	}

	if err := uc.ChatRepository.CreateChatWithCreator(ctx, uc.DB, chat); err != nil {
		uc.Logger.WithError(err).Error("failed to create chat")
		return res.ChatResponse{}, exception.Storage(err)
	}

	return res.ChatResponse{
		ID:        chat.ID,
		Type:      string(chat.ChatType),
		Name:      chat.Name,
		AvatarURL: chat.AvatarURL,
		CreatedBy: chat.CreatedBy,
		CreatedAt: chat.CreatedAt.Format("2006-01-02 15:04:05"),
		Role:      string(enum.ChatRoleAdmin),
	}, nil
}

func (uc *ChatUsecaseImpl) AddMember(ctx context.Context, request *req.AddMemberRequest) error {
	if err := uc.Validate.Struct(request); err != nil {
		return fmt.Errorf("%w: %v", exception.ErrValidation, err)
	}

	role := enum.ChatRoleMember
	if request.Role != "" {
		role = enum.ChatRole(request.Role)
	}

	member := &entity.ChatMember{
		ChatID: request.ChatID,
		UserID: request.UserID,
		Role:   role,
	}
	if err := uc.ChatRepository.AddMember(ctx, uc.DB, member); err != nil {
		uc.Logger.WithError(err).Error("failed to add chat member")
		return exception.Storage(err)
	}
	return nil
}

func (uc *ChatUsecaseImpl) RemoveMember(ctx context.Context, request *req.RemoveMemberRequest) error {
	if err := uc.Validate.Struct(request); err != nil {
		return fmt.Errorf("%w: %v", exception.ErrValidation, err)
	}

	if err := uc.ChatRepository.RemoveMember(ctx, uc.DB, request.ChatID, request.UserID); err != nil {
		return exception.Storage(err)
	}
	return nil
}

func (uc *ChatUsecaseImpl) ListChatsForUser(ctx context.Context, userID string) ([]res.ChatResponse, error) {
	memberships, err := uc.ChatRepository.FindMembershipsByUserID(ctx, uc.DB, userID)
	if err != nil {
		return nil, exception.Storage(err)
	}

	// Newest chats first.
	sort.Slice(memberships, func(i, j int) bool {
		return memberships[i].Chat.CreatedAt.After(memberships[j].Chat.CreatedAt)
	})

	chats := make([]res.ChatResponse, 0, len(memberships))
	for _, membership := range memberships {
		count, err := uc.ChatRepository.CountMessages(ctx, uc.DB, membership.ChatID)
		if err != nil {
			return nil, exception.Storage(err)
		}
		chat := membership.Chat
		chats = append(chats, res.ChatResponse{
			ID:           chat.ID,
			Type:         string(chat.ChatType),
			Name:         chat.Name,
			AvatarURL:    chat.AvatarURL,
			CreatedBy:    chat.CreatedBy,
			CreatedAt:    chat.CreatedAt.Format("2006-01-02 15:04:05"),
			Role:         string(membership.Role),
			MessageCount: count,
		})
	}
	return chats, nil
}

func (uc *ChatUsecaseImpl) ListMembers(ctx context.Context, chatID string) ([]res.ChatMemberResponse, error) {
	memberships, err := uc.ChatRepository.FindMembersByChatID(ctx, uc.DB, chatID)
	if err != nil {
		return nil, exception.Storage(err)
	}

	members := make([]res.ChatMemberResponse, 0, len(memberships))
	for _, membership := range memberships {
		members = append(members, res.ChatMemberResponse{
			ID:        membership.User.ID,
			Nickname:  membership.User.Nickname,
			Username:  membership.User.Username,
			AvatarURL: membership.User.AvatarURL,
			Verified:  membership.User.Verified,
			Role:      string(membership.Role),
		})
	}
	return members, nil
}
