package req

type CreateChatRequest struct {
	UserID    string `json:"user_id" validate:"required"`
	Type      string `json:"type" validate:"required,oneof=direct group channel"`
	Name      string `json:"name" validate:"required,max=100"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type AddMemberRequest struct {
	ChatID string `json:"chat_id" validate:"required"`
	UserID string `json:"user_id" validate:"required"`
	Role   string `json:"role,omitempty" validate:"omitempty,oneof=admin member"`
}

type RemoveMemberRequest struct {
	ChatID string `json:"chat_id" validate:"required"`
	UserID string `json:"user_id" validate:"required"`
}
