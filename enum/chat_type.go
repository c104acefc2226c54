package enum

type ChatType string

const (
	ChatTypeDirect  ChatType = "direct"
	ChatTypeGroup   ChatType = "group"
	ChatTypeChannel ChatType = "channel"
)

func (t ChatType) IsValid() bool {
	switch t {
	case ChatTypeDirect, ChatTypeGroup, ChatTypeChannel:
		return true
	}
	return false
}
