package usecase

import (
	"context"
	"errors"
	"fmt"

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

type SocialUsecaseImpl struct {
	*repository.SocialRepository
	*repository.UserRepository
	*repository.ChatRepository
	*validator.Validate
	*gorm.DB
	*logrus.Logger
}

func NewSocialUsecase(socialRepository *repository.SocialRepository, userRepository *repository.UserRepository, chatRepository *repository.ChatRepository, validate *validator.Validate, DB *gorm.DB, logger *logrus.Logger) SocialUsecase {
	return &SocialUsecaseImpl{
		SocialRepository: socialRepository,
		UserRepository:   userRepository,
		ChatRepository:   chatRepository,
		Validate:         validate,
		DB:               DB,
		Logger:           logger,
	}
}

func (uc *SocialUsecaseImpl) SendFriendRequest(ctx context.Context, request *req.AddFriendRequest) error {
	if err := uc.Validate.Struct(request); err != nil {
		return fmt.Errorf("%w: %v", exception.ErrValidation, err)
	}

	friend, err := uc.UserRepository.FindByUsername(ctx, uc.DB, request.FriendUsername)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return exception.NotFoundf("user %s", request.FriendUsername)
	}
	if err != nil {
		return exception.Storage(err)
	}

	friendship := &entity.Friendship{
		UserID:   request.UserID,
		FriendID: friend.ID,
		Status:   enum.FriendshipPending,
	}
	if err := uc.SocialRepository.SaveFriendRequest(ctx, uc.DB, friendship); err != nil {
		uc.Logger.WithError(err).Error("failed to save friend request")
		return exception.Storage(err)
	}
	return nil
}

func (uc *SocialUsecaseImpl) AcceptFriendRequest(ctx context.Context, request *req.AcceptFriendRequest) error {
	if err := uc.Validate.Struct(request); err != nil {
		return fmt.Errorf("%w: %v", exception.ErrValidation, err)
	}

	affected, err := uc.SocialRepository.AcceptFriendship(ctx, uc.DB, request.RequesterID, request.UserID)
	if err != nil {
		return exception.Storage(err)
	}
	if affected == 0 {
		return exception.NotFoundf("no pending request from %s", request.RequesterID)
	}
	return nil
}

func (uc *SocialUsecaseImpl) ListFriends(ctx context.Context, userID string) ([]res.UserSummaryResponse, error) {
	ids, err := uc.SocialRepository.FindFriendIDs(ctx, uc.DB, userID)
	if err != nil {
		return nil, exception.Storage(err)
	}

	users, err := uc.UserRepository.FindByIDs(ctx, uc.DB, ids)
	if err != nil {
		return nil, exception.Storage(err)
	}

	byID := make(map[string]entity.User, len(users))
	for _, user := range users {
		byID[user.ID] = user
	}

	friends := make([]res.UserSummaryResponse, 0, len(ids))
	for _, id := range ids {
		user, ok := byID[id]
		if !ok {
			continue
		}
		friends = append(friends, res.UserSummaryResponse{
			ID:         user.ID,
			Nickname:   user.Nickname,
			Username:   user.Username,
			AvatarURL:  user.AvatarURL,
			ShowOnline: user.ShowOnline,
		})
	}
	return friends, nil
}

func (uc *SocialUsecaseImpl) Block(ctx context.Context, request *req.BlockRequest) error {
	if err := uc.Validate.Struct(request); err != nil {
		return fmt.Errorf("%w: %v", exception.ErrValidation, err)
	}

	block := &entity.BlockedUser{
		UserID:        request.UserID,
		BlockedUserID: request.BlockedUserID,
	}
	if err := uc.SocialRepository.SaveBlock(ctx, uc.DB, block); err != nil {
		return exception.Storage(err)
	}
	return nil
}

func (uc *SocialUsecaseImpl) Unblock(ctx context.Context, request *req.BlockRequest) error {
	if err := uc.Validate.Struct(request); err != nil {
		return fmt.Errorf("%w: %v", exception.ErrValidation, err)
	}

	if err := uc.SocialRepository.DeleteBlock(ctx, uc.DB, request.UserID, request.BlockedUserID); err != nil {
		return exception.Storage(err)
	}
	return nil
}

func (uc *SocialUsecaseImpl) ListBlocked(ctx context.Context, userID string) ([]res.BlockedUserResponse, error) {
	ids, err := uc.SocialRepository.FindBlockedIDs(ctx, uc.DB, userID)
	if err != nil {
		return nil, exception.Storage(err)
	}

	users, err := uc.UserRepository.FindByIDs(ctx, uc.DB, ids)
	if err != nil {
		return nil, exception.Storage(err)
	}

	byID := make(map[string]entity.User, len(users))
	for _, user := range users {
		byID[user.ID] = user
	}

	blocked := make([]res.BlockedUserResponse, 0, len(ids))
	for _, id := range ids {
		user, ok := byID[id]
		if !ok {
			continue
		}
		blocked = append(blocked, res.BlockedUserResponse{
			ID:        user.ID,
			Nickname:  user.Nickname,
			Username:  user.Username,
			AvatarURL: user.AvatarURL,
		})
	}
	return blocked, nil
}

func (uc *SocialUsecaseImpl) Stats(ctx context.Context, userID string) (res.StatsResponse, error) {
	friendsCount, err := uc.SocialRepository.CountFriends(ctx, uc.DB, userID)
	if err != nil {
		return res.StatsResponse{}, exception.Storage(err)
	}

	memberships, err := uc.ChatRepository.FindMembershipsByUserID(ctx, uc.DB, userID)
	if err != nil {
		return res.StatsResponse{}, exception.Storage(err)
	}
	chatIDs := make([]string, 0, len(memberships))
	for _, membership := range memberships {
		chatIDs = append(chatIDs, membership.ChatID)
	}

	groupsCount, err := uc.ChatRepository.CountChatsByType(ctx, uc.DB, chatIDs, enum.ChatTypeGroup)
	if err != nil {
		return res.StatsResponse{}, exception.Storage(err)
	}
	channelsCount, err := uc.ChatRepository.CountChatsByType(ctx, uc.DB, chatIDs, enum.ChatTypeChannel)
	if err != nil {
		return res.StatsResponse{}, exception.Storage(err)
	}

	return res.StatsResponse{
		FriendsCount:  friendsCount,
		GroupsCount:   groupsCount,
		ChannelsCount: channelsCount,
	}, nil
}
