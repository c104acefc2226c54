package res

type UserResponse struct {
	ID        string `json:"id"`
	Phone     string `json:"phone"`
	Nickname  string `json:"nickname"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
	BannerURL string `json:"banner_url"`
	Verified  bool   `json:"verified"`
	Enots     int64  `json:"enots"`
	IsAdmin   bool   `json:"is_admin"`
	Language  string `json:"language"`
	Theme     string `json:"theme"`
	CreatedAt string `json:"created_at"`
}

// VerifiedUserResponse is the minimal view returned by the admin verify
// action.
type VerifiedUserResponse struct {
	ID       string `json:"id"`
	Nickname string `json:"nickname"`
	Username string `json:"username"`
	Verified bool   `json:"verified"`
}

type UserSummaryResponse struct {
	ID         string `json:"id"`
	Nickname   string `json:"nickname"`
	Username   string `json:"username"`
	AvatarURL  string `json:"avatar_url"`
	ShowOnline bool   `json:"show_online"`
}

type BlockedUserResponse struct {
	ID        string `json:"id"`
	Nickname  string `json:"nickname"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}

type StatsResponse struct {
	FriendsCount  int64 `json:"friends_count"`
	GroupsCount   int64 `json:"groups_count"`
	ChannelsCount int64 `json:"channels_count"`
}
