package res

type ChatResponse struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	Name         string `json:"name"`
	AvatarURL    string `json:"avatar_url"`
	CreatedBy    string `json:"created_by"`
	CreatedAt    string `json:"created_at"`
	Role         string `json:"role,omitempty"`
	MessageCount int64  `json:"message_count"`
}

type ChatMemberResponse struct {
	ID        string `json:"id"`
	Nickname  string `json:"nickname"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
	Verified  bool   `json:"verified"`
	Role      string `json:"role"`
}
