package req

type AddFriendRequest struct {
	UserID         string `json:"user_id" validate:"required"`
	FriendUsername string `json:"friend_username" validate:"required"`
}

type AcceptFriendRequest struct {
	UserID      string `json:"user_id" validate:"required"`
	RequesterID string `json:"requester_id" validate:"required"`
}

type BlockRequest struct {
	UserID        string `json:"user_id" validate:"required"`
	BlockedUserID string `json:"blocked_user_id" validate:"required"`
}
