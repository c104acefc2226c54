package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"speaky-backend/entity"
	"speaky-backend/enum"
)

type ChatRepository struct {
	Repository[entity.Chat]
}

func NewChatRepository() *ChatRepository {
	return &ChatRepository{}
}

// CreateChatWithCreator inserts the chat and the creator's admin membership
// in one transaction. A chat must never exist without its creator's
// membership, so either both rows land or neither does.
func (repository ChatRepository) CreateChatWithCreator(ctx context.Context, db *gorm.DB, chat *entity.Chat) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(chat).Error; err != nil {
			return err
		}
		member := entity.ChatMember{
			ChatID: chat.ID,
			UserID: chat.CreatedBy,
			Role:   enum.ChatRoleAdmin,
		}
		return tx.Create(&member).Error
	})
}

// AddMember ignores a duplicate (chat, user) pair. Referential integrity for
// unknown chats or users is left to the storage layer's foreign keys.
func (repository ChatRepository) AddMember(ctx context.Context, db *gorm.DB, member *entity.ChatMember) error {
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "chat_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(member).Error
}

func (repository ChatRepository) RemoveMember(ctx context.Context, db *gorm.DB, chatID, userID string) error {
	return db.WithContext(ctx).
		Where("chat_id = ? AND user_id = ?", chatID, userID).
		Delete(&entity.ChatMember{}).Error
}

func (repository ChatRepository) IsMember(ctx context.Context, db *gorm.DB, chatID, userID string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&entity.ChatMember{}).
		Where("chat_id = ? AND user_id = ?", chatID, userID).
		Count(&count).Error
	return count > 0, err
}

// FindMembershipsByUserID preloads each membership's chat so the caller can
// order and annotate without further round trips.
func (repository ChatRepository) FindMembershipsByUserID(ctx context.Context, db *gorm.DB, userID string) ([]entity.ChatMember, error) {
	var memberships []entity.ChatMember
	err := db.WithContext(ctx).
		Preload("Chat").
		Where("user_id = ?", userID).
		Find(&memberships).Error
	return memberships, err
}

func (repository ChatRepository) FindMembersByChatID(ctx context.Context, db *gorm.DB, chatID string) ([]entity.ChatMember, error) {
	var members []entity.ChatMember
	err := db.WithContext(ctx).
		Preload("User").
		Where("chat_id = ?", chatID).
		Order("joined_at ASC").
		Find(&members).Error
	return members, err
}

func (repository ChatRepository) CountMessages(ctx context.Context, db *gorm.DB, chatID string) (int64, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&entity.Message{}).
		Where("chat_id = ?", chatID).
		Count(&count).Error
	return count, err
}

// CountChatsByType counts how many of the given chats are of the requested
// type. Used by the profile stats aggregation.
func (repository ChatRepository) CountChatsByType(ctx context.Context, db *gorm.DB, chatIDs []string, chatType enum.ChatType) (int64, error) {
	if len(chatIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := db.WithContext(ctx).
		Model(&entity.Chat{}).
		Where("id IN ? AND chat_type = ?", chatIDs, chatType).
		Count(&count).Error
	return count, err
}
