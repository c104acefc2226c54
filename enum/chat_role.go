package enum

type ChatRole string

const (
	ChatRoleAdmin  ChatRole = "admin"
	ChatRoleMember ChatRole = "member"
)

func (r ChatRole) IsValid() bool {
	return r == ChatRoleAdmin || r == ChatRoleMember
}
