package slack

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/specter/pkg/domain/interfaces"
	"github.com/secmon-lab/specter/pkg/domain/model"
	"github.com/slack-go/slack"
)

// Slack API error codes that mean a lookup was refused for lack of rights
// rather than failing for an unrelated reason.
var permissionErrorCodes = map[string]bool{
	"missing_scope":     true,
	"not_in_channel":    true,
	"channel_not_found": true,
	"not_authed":        true,
	"restricted_action": true,
}

// Error codes returned by conversations.kick when the member is already absent
var memberGoneErrorCodes = map[string]bool{
	"user_not_found": true,
	"not_in_channel": true,
}

// Service provides Slack API access for the bot
type Service struct {
	client *slack.Client
}

var _ interfaces.SlackClient = (*Service)(nil)

// New creates a new Slack service
func New(token string, options ...slack.Option) *Service {
	return &Service{
		client: slack.New(token, options...),
	}
}

// PostMessage sends a message to a Slack channel
func (s *Service) PostMessage(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
	channel, timestamp, err := s.client.PostMessageContext(ctx, channelID, options...)
	if err != nil {
		return "", "", goerr.Wrap(err, "failed to post message to Slack", goerr.V("channelID", channelID))
	}
	return channel, timestamp, nil
}

// UpdateMessage updates an existing Slack message
func (s *Service) UpdateMessage(ctx context.Context, channelID, timestamp string, options ...slack.MsgOption) (string, string, string, error) {
	channel, ts, text, err := s.client.UpdateMessageContext(ctx, channelID, timestamp, options...)
	if err != nil {
		return "", "", "", goerr.Wrap(err, "failed to update message",
			goerr.V("channelID", channelID),
			goerr.V("timestamp", timestamp))
	}
	return channel, ts, text, nil
}

// AuthTestContext tests authentication and returns basic information about the team and bot
func (s *Service) AuthTestContext(ctx context.Context) (*slack.AuthTestResponse, error) {
	resp, err := s.client.AuthTestContext(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to authenticate with Slack")
	}
	return resp, nil
}

// GetBotInfo retrieves the bot record, which carries the app ID
func (s *Service) GetBotInfo(ctx context.Context, botID string) (*slack.Bot, error) {
	bot, err := s.client.GetBotInfoContext(ctx, slack.GetBotInfoParameters{Bot: botID})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get bot info", goerr.V("botID", botID))
	}
	return bot, nil
}

// GetUserInfo retrieves a single user. Refusals are reported as ErrPermissionQuery.
func (s *Service) GetUserInfo(ctx context.Context, userID string) (*slack.User, error) {
	user, err := s.client.GetUserInfoContext(ctx, userID)
	if err != nil {
		if code := ErrorCode(err); permissionErrorCodes[code] {
			return nil, goerr.Wrap(model.ErrPermissionQuery, "user lookup refused",
				goerr.V("userID", userID),
				goerr.V("slackError", code))
		}
		return nil, goerr.Wrap(err, "failed to get user info", goerr.V("userID", userID))
	}
	return user, nil
}

// GetUsersInfo retrieves several users in one call
func (s *Service) GetUsersInfo(ctx context.Context, users ...string) ([]slack.User, error) {
	if len(users) == 0 {
		return nil, nil
	}

	resp, err := s.client.GetUsersInfoContext(ctx, users...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get users info", goerr.V("count", len(users)))
	}
	if resp == nil {
		return nil, nil
	}
	return *resp, nil
}

// GetConversationInfo retrieves information about a Slack conversation.
// Refusals are reported as ErrPermissionQuery.
func (s *Service) GetConversationInfo(ctx context.Context, channelID string, includeLocale bool) (*slack.Channel, error) {
	params := &slack.GetConversationInfoInput{
		ChannelID:     channelID,
		IncludeLocale: includeLocale,
	}
	channel, err := s.client.GetConversationInfoContext(ctx, params)
	if err != nil {
		if code := ErrorCode(err); permissionErrorCodes[code] {
			return nil, goerr.Wrap(model.ErrPermissionQuery, "conversation lookup refused",
				goerr.V("channelID", channelID),
				goerr.V("slackError", code))
		}
		return nil, goerr.Wrap(err, "failed to get conversation info", goerr.V("channelID", channelID))
	}
	return channel, nil
}

// GetUsersInConversation lists one page of member IDs of a conversation
func (s *Service) GetUsersInConversation(ctx context.Context, params *slack.GetUsersInConversationParameters) ([]string, string, error) {
	members, cursor, err := s.client.GetUsersInConversationContext(ctx, params)
	if err != nil {
		return nil, "", goerr.Wrap(err, "failed to list conversation members",
			goerr.V("channelID", params.ChannelID),
			goerr.V("cursor", params.Cursor))
	}
	return members, cursor, nil
}

// KickUserFromConversation removes a member from a conversation.
// A member that is already absent yields ErrMemberGone.
func (s *Service) KickUserFromConversation(ctx context.Context, channelID, userID string) error {
	if err := s.client.KickUserFromConversationContext(ctx, channelID, userID); err != nil {
		if code := ErrorCode(err); memberGoneErrorCodes[code] {
			return goerr.Wrap(model.ErrMemberGone, "member already absent",
				goerr.V("channelID", channelID),
				goerr.V("userID", userID),
				goerr.V("slackError", code))
		}
		return goerr.Wrap(err, "failed to kick user from conversation",
			goerr.V("channelID", channelID),
			goerr.V("userID", userID))
	}
	return nil
}

// ErrorCode extracts the Slack API error code (e.g. "not_in_channel") from err.
// It returns an empty string for transport or non-API errors.
func ErrorCode(err error) string {
	var resp slack.SlackErrorResponse
	if errors.As(err, &resp) {
		return resp.Err
	}
	return ""
}
