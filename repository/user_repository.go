package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"speaky-backend/entity"
)

type UserRepository struct {
	Repository[entity.User]
}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// UpsertByPhone inserts the user or, when the phone is already registered,
// overwrites nickname and username in place. The stored row id never changes.
func (repository UserRepository) UpsertByPhone(ctx context.Context, db *gorm.DB, user *entity.User) error {
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "phone"}},
		DoUpdates: clause.AssignmentColumns([]string{"nickname", "username"}),
	}).Create(user).Error
}

func (repository UserRepository) FindByPhone(ctx context.Context, db *gorm.DB, phone string) (entity.User, error) {
	var user entity.User
	err := db.WithContext(ctx).Where("phone = ?", phone).First(&user).Error
	return user, err
}

func (repository UserRepository) FindByUsername(ctx context.Context, db *gorm.DB, username string) (entity.User, error) {
	var user entity.User
	err := db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	return user, err
}

func (repository UserRepository) FindByIDs(ctx context.Context, db *gorm.DB, ids []string) ([]entity.User, error) {
	var users []entity.User
	if len(ids) == 0 {
		return users, nil
	}
	err := db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error
	return users, err
}

// UpdateFields applies a partial column set and reports how many rows
// matched, so the caller can distinguish a missing user.
func (repository UserRepository) UpdateFields(ctx context.Context, db *gorm.DB, id string, fields map[string]interface{}) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.User{}).Where("id = ?", id).Updates(fields)
	return result.RowsAffected, result.Error
}

func (repository UserRepository) MarkVerified(ctx context.Context, db *gorm.DB, id string) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.User{}).Where("id = ?", id).Update("verified", true)
	return result.RowsAffected, result.Error
}
