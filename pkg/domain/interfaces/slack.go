package interfaces

//go:generate moq -out mocks/slack_mock.go -pkg mocks . SlackClient

import (
	"context"

	"github.com/slack-go/slack"
)

// SlackClient is the subset of the Slack Web API the bot calls.
// Signatures follow github.com/slack-go/slack so the service can delegate directly.
type SlackClient interface {
	// Messaging
	PostMessage(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
	UpdateMessage(ctx context.Context, channelID, timestamp string, options ...slack.MsgOption) (string, string, string, error)

	// Identity
	AuthTestContext(ctx context.Context) (*slack.AuthTestResponse, error)
	GetBotInfo(ctx context.Context, botID string) (*slack.Bot, error)
	GetUserInfo(ctx context.Context, userID string) (*slack.User, error)
	GetUsersInfo(ctx context.Context, users ...string) ([]slack.User, error)

	// Conversations
	GetConversationInfo(ctx context.Context, channelID string, includeLocale bool) (*slack.Channel, error)
	GetUsersInConversation(ctx context.Context, params *slack.GetUsersInConversationParameters) ([]string, string, error)
	KickUserFromConversation(ctx context.Context, channelID, userID string) error
}
