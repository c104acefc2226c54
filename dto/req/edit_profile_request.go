package req

// EditProfileRequest applies only the fields present in the body; absent
// fields are left untouched, not nulled.
type EditProfileRequest struct {
	UserID    string  `json:"user_id" validate:"required"`
	Nickname  *string `json:"nickname,omitempty" validate:"omitempty,min=1,max=100"`
	Username  *string `json:"username,omitempty" validate:"omitempty,min=2,max=100"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	BannerURL *string `json:"banner_url,omitempty"`
	Language  *string `json:"language,omitempty" validate:"omitempty,max=10"`
	Theme     *string `json:"theme,omitempty" validate:"omitempty,max=20"`
}

type VerifyUserRequest struct {
	AdminID      string `json:"admin_id" validate:"required"`
	TargetUserID string `json:"target_user_id" validate:"required"`
}
