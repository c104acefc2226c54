package entity

import "speaky-backend/enum"

// Friendship is a directed request from UserID to FriendID. Reads treat the
// relationship as undirected once the status is accepted.
type Friendship struct {
	BaseEntity
	UserID   string                `json:"userId" gorm:"type:varchar(255);not null;uniqueIndex:idx_friendship_pair"`
	FriendID string                `json:"friendId" gorm:"type:varchar(255);not null;uniqueIndex:idx_friendship_pair"`
	Status   enum.FriendshipStatus `json:"status" gorm:"type:varchar(10);default:'pending'"`

	User   User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
	Friend User `json:"-" gorm:"foreignKey:FriendID;references:ID;constraint:OnDelete:CASCADE;"`
}
