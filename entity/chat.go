package entity

import (
	"time"

	"speaky-backend/enum"
)

type Chat struct {
	BaseEntity
	ChatType  enum.ChatType `json:"type" gorm:"type:varchar(7);not null"`
	Name      string        `json:"name" gorm:"type:varchar(100)"`
	AvatarURL string        `json:"avatarUrl" gorm:"type:text"`
	CreatedBy string        `json:"createdBy" gorm:"type:varchar(255)"`

	Members  []ChatMember `json:"members" gorm:"foreignKey:ChatID;constraint:OnDelete:CASCADE;"`
	Messages []Message    `json:"-" gorm:"foreignKey:ChatID;constraint:OnDelete:CASCADE;"`
}

// ChatMember links a user to a chat with a role. The composite primary key
// makes the (chat, user) pair unique.
type ChatMember struct {
	ChatID   string        `json:"chatId" gorm:"primaryKey;type:varchar(255)"`
	UserID   string        `json:"userId" gorm:"primaryKey;type:varchar(255)"`
	Role     enum.ChatRole `json:"role" gorm:"type:varchar(10);default:'member'"`
	JoinedAt time.Time     `json:"joinedAt" gorm:"autoCreateTime"`

	Chat Chat `json:"-" gorm:"foreignKey:ChatID;references:ID;constraint:OnDelete:CASCADE;"`
	User User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
}
