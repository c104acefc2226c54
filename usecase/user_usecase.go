package usecase

import (
	"context"

	"speaky-backend/dto/req"
	"speaky-backend/dto/res"
)

type UserUsecase interface {
	Register(ctx context.Context, request *req.RegisterRequest) (res.UserResponse, error)
	Login(ctx context.Context, request *req.LoginRequest) (res.UserResponse, error)
	UpdateProfile(ctx context.Context, request *req.EditProfileRequest) (res.UserResponse, error)
	Verify(ctx context.Context, request *req.VerifyUserRequest) (res.VerifiedUserResponse, error)
	FindByUsername(ctx context.Context, username string) (res.UserResponse, error)
}
