package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"speaky-backend/cache"
	"speaky-backend/dto/req"
	"speaky-backend/dto/res"
	"speaky-backend/entity"
	"speaky-backend/exception"
	"speaky-backend/repository"
)

type UserUsecaseImpl struct {
	*repository.UserRepository
	*validator.Validate
	*gorm.DB
	*logrus.Logger
	Cache *cache.UserCache
}

func NewUserUsecase(userRepository *repository.UserRepository, validate *validator.Validate, DB *gorm.DB, logger *logrus.Logger, userCache *cache.UserCache) UserUsecase {
	return &UserUsecaseImpl{UserRepository: userRepository, Validate: validate, DB: DB, Logger: logger, Cache: userCache}
}

// DeriveUsername builds the default handle from a display nickname:
// "John Doe" becomes "@johndoe".
func DeriveUsername(nickname string) string {
	return "@" + strings.ReplaceAll(strings.ToLower(nickname), " ", "")
}

func (uc *UserUsecaseImpl) Register(ctx context.Context, request *req.RegisterRequest) (res.UserResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Error("invalid register request")
		return res.UserResponse{}, fmt.Errorf("%w: %v", exception.ErrValidation, err)
	}

	username := strings.TrimSpace(request.Username)
	if username == "" {
		username = DeriveUsername(request.Nickname)
	}

	user := &entity.User{
		Phone:    request.Phone,
		Nickname: request.Nickname,
		Username: username,
	}

	trx := uc.DB.WithContext(ctx).Begin()
	defer trx.Rollback()

	if err := uc.UserRepository.UpsertByPhone(ctx, trx, user); err != nil {
		uc.Logger.WithError(err).Error("failed to upsert user")
		return res.UserResponse{}, exception.Storage(err)
	}

	// Re-read by phone: on conflict the stored row keeps its original id and
	// created_at, which the freshly built entity does not carry.
	stored, err := uc.UserRepository.FindByPhone(ctx, trx, request.Phone)
	if err != nil {
		uc.Logger.WithError(err).Error("failed to read back registered user")
		return res.UserResponse{}, exception.Storage(err)
	}

	if err := trx.Commit().Error; err != nil {
		uc.Logger.WithError(err).Error("failed to commit registration")
		return res.UserResponse{}, exception.Storage(err)
	}

	uc.Cache.Invalidate(ctx, stored.Phone)
	return toUserResponse(stored), nil
}

func (uc *UserUsecaseImpl) Login(ctx context.Context, request *req.LoginRequest) (res.UserResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return res.UserResponse{}, fmt.Errorf("%w: %v", exception.ErrValidation, err)
	}

	if user, ok := uc.Cache.GetByPhone(ctx, request.Phone); ok {
		return toUserResponse(user), nil
	}

	user, err := uc.UserRepository.FindByPhone(ctx, uc.DB, request.Phone)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return res.UserResponse{}, exception.NotFoundf("user with phone %s", request.Phone)
	}
	if err != nil {
		uc.Logger.WithError(err).Error("failed to find user by phone")
		return res.UserResponse{}, exception.Storage(err)
	}

	uc.Cache.SetByPhone(ctx, user)
	return toUserResponse(user), nil
}

func (uc *UserUsecaseImpl) UpdateProfile(ctx context.Context, request *req.EditProfileRequest) (res.UserResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return res.UserResponse{}, fmt.Errorf("%w: %v", exception.ErrValidation, err)
	}

	fields := map[string]interface{}{}
	if request.Nickname != nil {
		fields["nickname"] = *request.Nickname
	}
	if request.Username != nil {
		fields["username"] = *request.Username
	}
	if request.AvatarURL != nil {
		fields["avatar_url"] = *request.AvatarURL
	}
	if request.BannerURL != nil {
		fields["banner_url"] = *request.BannerURL
	}
	if request.Language != nil {
		fields["language"] = *request.Language
	}
	if request.Theme != nil {
		fields["theme"] = *request.Theme
	}

	trx := uc.DB.WithContext(ctx).Begin()
	defer trx.Rollback()

	if len(fields) > 0 {
		affected, err := uc.UserRepository.UpdateFields(ctx, trx, request.UserID, fields)
		if err != nil {
			uc.Logger.WithError(err).Error("failed to update profile")
			return res.UserResponse{}, exception.Storage(err)
		}
		if affected == 0 {
			return res.UserResponse{}, exception.NotFoundf("user %s", request.UserID)
		}
	}

	var user entity.User
	if err := uc.UserRepository.FindById(ctx, trx, &user, request.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res.UserResponse{}, exception.NotFoundf("user %s", request.UserID)
		}
		return res.UserResponse{}, exception.Storage(err)
	}

	if err := trx.Commit().Error; err != nil {
		return res.UserResponse{}, exception.Storage(err)
	}

	uc.Cache.Invalidate(ctx, user.Phone)
	return toUserResponse(user), nil
}

func (uc *UserUsecaseImpl) Verify(ctx context.Context, request *req.VerifyUserRequest) (res.VerifiedUserResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return res.VerifiedUserResponse{}, fmt.Errorf("%w: %v", exception.ErrValidation, err)
	}

	var actor entity.User
	err := uc.UserRepository.FindById(ctx, uc.DB, &actor, request.AdminID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return res.VerifiedUserResponse{}, exception.ErrPermissionDenied
	}
	if err != nil {
		return res.VerifiedUserResponse{}, exception.Storage(err)
	}
	if !actor.IsAdmin {
		uc.Logger.Warnf("user %s attempted admin verify without privilege", request.AdminID)
		return res.VerifiedUserResponse{}, exception.ErrPermissionDenied
	}

	trx := uc.DB.WithContext(ctx).Begin()
	defer trx.Rollback()

	affected, err := uc.UserRepository.MarkVerified(ctx, trx, request.TargetUserID)
	if err != nil {
		return res.VerifiedUserResponse{}, exception.Storage(err)
	}
	if affected == 0 {
		return res.VerifiedUserResponse{}, exception.NotFoundf("user %s", request.TargetUserID)
	}

	var target entity.User
	if err := uc.UserRepository.FindById(ctx, trx, &target, request.TargetUserID); err != nil {
		return res.VerifiedUserResponse{}, exception.Storage(err)
	}

	if err := trx.Commit().Error; err != nil {
		return res.VerifiedUserResponse{}, exception.Storage(err)
	}

	uc.Cache.Invalidate(ctx, target.Phone)
	return res.VerifiedUserResponse{
		ID:       target.ID,
		Nickname: target.Nickname,
		Username: target.Username,
		Verified: target.Verified,
	}, nil
}

func (uc *UserUsecaseImpl) FindByUsername(ctx context.Context, username string) (res.UserResponse, error) {
	user, err := uc.UserRepository.FindByUsername(ctx, uc.DB, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return res.UserResponse{}, exception.NotFoundf("user %s", username)
	}
	if err != nil {
		return res.UserResponse{}, exception.Storage(err)
	}
	return toUserResponse(user), nil
}

func toUserResponse(user entity.User) res.UserResponse {
	return res.UserResponse{
		ID:        user.ID,
		Phone:     user.Phone,
		Nickname:  user.Nickname,
		Username:  user.Username,
		AvatarURL: user.AvatarURL,
		BannerURL: user.BannerURL,
		Verified:  user.Verified,
		Enots:     user.Enots,
		IsAdmin:   user.IsAdmin,
		Language:  user.Language,
		Theme:     user.Theme,
		CreatedAt: user.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
