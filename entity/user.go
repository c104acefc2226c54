package entity

type User struct {
	BaseEntity
	Phone      string `json:"phone" gorm:"uniqueIndex;type:varchar(20);not null"`
	Nickname   string `json:"nickname" gorm:"type:varchar(100);not null"`
	Username   string `json:"username" gorm:"uniqueIndex;type:varchar(100);not null"`
	AvatarURL  string `json:"avatarUrl" gorm:"type:text"`
	BannerURL  string `json:"bannerUrl" gorm:"type:text"`
	Verified   bool   `json:"verified" gorm:"default:false"`
	Enots      int64  `json:"enots" gorm:"default:0"`
	IsAdmin    bool   `json:"isAdmin" gorm:"default:false"`
	ShowOnline bool   `json:"showOnline" gorm:"default:true"`
	Language   string `json:"language" gorm:"type:varchar(10);default:'ru'"`
	Theme      string `json:"theme" gorm:"type:varchar(20);default:'dark'"`

	Memberships []ChatMember `json:"-" gorm:"foreignKey:UserID"`
}
