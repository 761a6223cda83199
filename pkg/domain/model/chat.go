package model

import (
	"fmt"
	"net/url"

	"github.com/secmon-lab/specter/pkg/domain/types"
)

// ChatKind distinguishes one-to-one conversations from channels with an admin model
type ChatKind int

const (
	ChatKindPrivate ChatKind = iota
	ChatKindGroup
)

// String returns the string representation
func (k ChatKind) String() string {
	switch k {
	case ChatKindPrivate:
		return "private"
	case ChatKindGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Chat identifies the conversation an event arrived in. It lives for one event only.
type Chat struct {
	ID    types.ChannelID
	Title string
	Kind  ChatKind
}

// IsGroup reports whether the chat is a channel rather than a direct conversation
func (c *Chat) IsGroup() bool {
	return c != nil && c.Kind == ChatKindGroup
}

// DisplayTitle returns the channel title or a neutral fallback
func (c *Chat) DisplayTitle() string {
	if c == nil || c.Title == "" {
		return "this channel"
	}
	return c.Title
}

// BotIdentity is the bot's own Slack identity
type BotIdentity struct {
	UserID types.SlackUserID
	BotID  string
	AppID  string
	TeamID types.TeamID
	Name   string
}

// AddToChannelURL returns a link that opens the app in Slack so it can be added to a channel.
// Empty when the app ID is unknown.
func (b *BotIdentity) AddToChannelURL() string {
	if b == nil || b.AppID == "" {
		return ""
	}

	q := url.Values{}
	q.Set("app", b.AppID)
	if b.TeamID != "" {
		q.Set("team", b.TeamID.String())
	}
	return fmt.Sprintf("https://slack.com/app_redirect?%s", q.Encode())
}
