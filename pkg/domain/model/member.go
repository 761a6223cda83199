package model

import "github.com/secmon-lab/specter/pkg/domain/types"

// slackbotUserID is the built-in Slackbot, a member of every channel
const slackbotUserID = "USLACKBOT"

// Member is a participant of a chat as reported by Slack on one enumeration.
// It is never cached or mutated locally.
type Member struct {
	ID            types.SlackUserID
	Name          string
	IsBot         bool
	IsAppUser     bool
	IsDeactivated bool
}

// IsIndividual reports whether the member is a human account.
// Bots, app users and Slackbot are excluded from every count.
func (m *Member) IsIndividual() bool {
	if m == nil {
		return false
	}
	return !m.IsBot && !m.IsAppUser && m.ID != slackbotUserID
}

// IsGhost reports whether the member is an individual account that has been deactivated
func (m *Member) IsGhost() bool {
	return m.IsIndividual() && m.IsDeactivated
}

// User holds the profile fields used for operator alerts
type User struct {
	ID       types.SlackUserID
	Name     string
	RealName string
}

// DisplayName returns the real name, falling back to the handle
func (u *User) DisplayName() string {
	if u.RealName != "" {
		return u.RealName
	}
	return u.Name
}
