// Package discord provides the chat-platform side of the reconciliation:
// the member data model and the member-export CSV loader.
package discord

// Member represents one account from the Discord member export.
// ID is the only field that is stable over time. Username, Nickname, and
// DisplayName are free text: they may be absent, stale, or bear no
// resemblance to the member's in-game name.
type Member struct {
	ID          string   `json:"id" yaml:"id"`
	Username    string   `json:"username" yaml:"username"`
	Nickname    string   `json:"nickname,omitempty" yaml:"nickname,omitempty"`
	DisplayName string   `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	Roles       []string `json:"roles,omitempty" yaml:"roles,omitempty"`
}

// HasRole reports whether the member holds the named role.
func (m *Member) HasRole(role string) bool {
	for _, r := range m.Roles {
		if r == role {
			return true
		}
	}
	return false
}
