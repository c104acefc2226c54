package req

type RegisterRequest struct {
	Phone    string `json:"phone" validate:"required,min=5,max=20"`
	Nickname string `json:"nickname" validate:"required,min=1,max=100"`
	Username string `json:"username,omitempty" validate:"omitempty,min=2,max=100"`
}

type LoginRequest struct {
	Phone string `json:"phone" validate:"required"`
}
