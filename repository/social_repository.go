package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"speaky-backend/entity"
	"speaky-backend/enum"
)

type SocialRepository struct {
	Repository[entity.Friendship]
}

func NewSocialRepository() *SocialRepository {
	return &SocialRepository{}
}

// SaveFriendRequest inserts a pending friendship. A duplicate ordered pair is
// silently ignored.
func (repository SocialRepository) SaveFriendRequest(ctx context.Context, db *gorm.DB, friendship *entity.Friendship) error {
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "friend_id"}},
		DoNothing: true,
	}).Create(friendship).Error
}

// AcceptFriendship flips the pending request from requesterID to userID.
// Returns the number of rows updated; zero means no such pending request.
func (repository SocialRepository) AcceptFriendship(ctx context.Context, db *gorm.DB, requesterID, userID string) (int64, error) {
	result := db.WithContext(ctx).
		Model(&entity.Friendship{}).
		Where("user_id = ? AND friend_id = ? AND status = ?", requesterID, userID, enum.FriendshipPending).
		Update("status", enum.FriendshipAccepted)
	return result.RowsAffected, result.Error
}

// FindFriendIDs returns the counterparties of every accepted friendship the
// user appears in, on either side.
func (repository SocialRepository) FindFriendIDs(ctx context.Context, db *gorm.DB, userID string) ([]string, error) {
	var rows []entity.Friendship
	err := db.WithContext(ctx).
		Where("(user_id = ? OR friend_id = ?) AND status = ?", userID, userID, enum.FriendshipAccepted).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(rows))
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		other := row.FriendID
		if other == userID {
			other = row.UserID
		}
		if other == userID {
			continue
		}
		if _, ok := seen[other]; ok {
			continue
		}
		seen[other] = struct{}{}
		ids = append(ids, other)
	}
	return ids, nil
}

func (repository SocialRepository) CountFriends(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&entity.Friendship{}).
		Where("(user_id = ? OR friend_id = ?) AND status = ?", userID, userID, enum.FriendshipAccepted).
		Count(&count).Error
	return count, err
}

// SaveBlock is idempotent: re-blocking the same user is a no-op.
func (repository SocialRepository) SaveBlock(ctx context.Context, db *gorm.DB, block *entity.BlockedUser) error {
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "blocked_user_id"}},
		DoNothing: true,
	}).Create(block).Error
}

// DeleteBlock is idempotent: removing an absent block is not an error.
func (repository SocialRepository) DeleteBlock(ctx context.Context, db *gorm.DB, userID, blockedUserID string) error {
	return db.WithContext(ctx).
		Where("user_id = ? AND blocked_user_id = ?", userID, blockedUserID).
		Delete(&entity.BlockedUser{}).Error
}

func (repository SocialRepository) FindBlockedIDs(ctx context.Context, db *gorm.DB, userID string) ([]string, error) {
	var rows []entity.BlockedUser
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.BlockedUserID)
	}
	return ids, nil
}
