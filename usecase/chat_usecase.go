package usecase

import (
	"context"

	"speaky-backend/dto/req"
	"speaky-backend/dto/res"
)

type ChatUsecase interface {
	Create(ctx context.Context, request *req.CreateChatRequest) (res.ChatResponse, error)
	AddMember(ctx context.Context, request *req.AddMemberRequest) error
	RemoveMember(ctx context.Context, request *req.RemoveMemberRequest) error
	ListChatsForUser(ctx context.Context, userID string) ([]res.ChatResponse, error)
	ListMembers(ctx context.Context, chatID string) ([]res.ChatMemberResponse, error)
}
