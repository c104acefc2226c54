package entity

// Message carries only what the chat listing needs: chat ownership for the
// per-chat count. Delivery and read-state live outside this service.
type Message struct {
	BaseEntity
	Content  string `json:"content" gorm:"type:TEXT"`
	ChatID   string `json:"chatId" gorm:"type:varchar(255);not null"`
	SenderID string `json:"senderId" gorm:"type:varchar(255)"`

	Chat   Chat `json:"-" gorm:"foreignKey:ChatID;references:ID"`
	Sender User `json:"-" gorm:"foreignKey:SenderID;references:ID"`
}
