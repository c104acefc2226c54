package usecase

import (
	"context"

	"speaky-backend/dto/req"
	"speaky-backend/dto/res"
)

type SocialUsecase interface {
	SendFriendRequest(ctx context.Context, request *req.AddFriendRequest) error
	AcceptFriendRequest(ctx context.Context, request *req.AcceptFriendRequest) error
	ListFriends(ctx context.Context, userID string) ([]res.UserSummaryResponse, error)
	Block(ctx context.Context, request *req.BlockRequest) error
	Unblock(ctx context.Context, request *req.BlockRequest) error
	ListBlocked(ctx context.Context, userID string) ([]res.BlockedUserResponse, error)
	Stats(ctx context.Context, userID string) (res.StatsResponse, error)
}
