package entity

// BlockedUser records that UserID blocked BlockedUserID. No reciprocal
// effect: an existing friendship is left alone.
type BlockedUser struct {
	BaseEntity
	UserID        string `json:"userId" gorm:"type:varchar(255);not null;uniqueIndex:idx_block_pair"`
	BlockedUserID string `json:"blockedUserId" gorm:"type:varchar(255);not null;uniqueIndex:idx_block_pair"`

	User    User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
	Blocked User `json:"-" gorm:"foreignKey:BlockedUserID;references:ID;constraint:OnDelete:CASCADE;"`
}
