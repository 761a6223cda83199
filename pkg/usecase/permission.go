package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/specter/pkg/domain/interfaces"
	"github.com/secmon-lab/specter/pkg/domain/model"
	"github.com/secmon-lab/specter/pkg/domain/types"
)

// Permission answers admin questions for the bot and for invoking users
type Permission struct {
	slackClient interfaces.SlackClient
	appID       string

	mu   sync.Mutex
	self *model.BotIdentity
}

var _ interfaces.Permission = (*Permission)(nil)

// PermissionOption configures Permission
type PermissionOption func(*Permission)

// WithFallbackAppID sets the app ID used for the add-me link when bots.info
// does not return one
func WithFallbackAppID(appID string) PermissionOption {
	return func(p *Permission) {
		p.appID = appID
	}
}

// NewPermission creates a new Permission use case
func NewPermission(slackClient interfaces.SlackClient, opts ...PermissionOption) *Permission {
	p := &Permission{
		slackClient: slackClient,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Self returns the bot's own identity. It is resolved once and cached for the
// process lifetime; a failed lookup is retried on the next call.
func (p *Permission) Self(ctx context.Context) (*model.BotIdentity, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.self != nil {
		return p.self, nil
	}

	authResp, err := p.slackClient.AuthTestContext(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to authenticate with Slack")
	}

	self := &model.BotIdentity{
		UserID: types.SlackUserID(authResp.UserID),
		BotID:  authResp.BotID,
		TeamID: types.TeamID(authResp.TeamID),
		Name:   authResp.User,
		AppID:  p.appID,
	}

	if authResp.BotID != "" {
		bot, err := p.slackClient.GetBotInfo(ctx, authResp.BotID)
		if err != nil {
			ctxlog.From(ctx).Warn("Failed to get bot info, add-me link falls back to configured app ID",
				"error", err,
				"botID", authResp.BotID,
			)
		} else if bot.AppID != "" {
			self.AppID = bot.AppID
		}
	}

	ctxlog.From(ctx).Info("Bot identity resolved",
		"botUserID", self.UserID,
		"botName", self.Name,
		"appID", self.AppID,
	)

	p.self = self
	return self, nil
}

// IsAdmin reports whether the user is a workspace admin or owner.
// Refused lookups surface as ErrPermissionQuery.
func (p *Permission) IsAdmin(ctx context.Context, channelID types.ChannelID, userID types.SlackUserID) (bool, error) {
	user, err := p.slackClient.GetUserInfo(ctx, userID.String())
	if err != nil {
		return false, goerr.Wrap(err, "failed to query user rights",
			goerr.V("channelID", channelID),
			goerr.V("userID", userID))
	}

	return user.IsAdmin || user.IsOwner || user.IsPrimaryOwner, nil
}

// IsBotAdmin reports whether the bot can operate on the channel, which in Slack
// means being a member of it. A channel the bot cannot see counts as not admin.
func (p *Permission) IsBotAdmin(ctx context.Context, channelID types.ChannelID) (bool, error) {
	channel, err := p.slackClient.GetConversationInfo(ctx, channelID.String(), false)
	if err != nil {
		if errors.Is(err, model.ErrPermissionQuery) {
			return false, nil
		}
		return false, goerr.Wrap(err, "failed to query bot rights", goerr.V("channelID", channelID))
	}

	return channel.IsMember, nil
}

// Authorize runs the bot check first, then the invoker check
func (p *Permission) Authorize(ctx context.Context, channelID types.ChannelID, invoker types.SlackUserID) error {
	botAdmin, err := p.IsBotAdmin(ctx, channelID)
	if err != nil {
		return err
	}
	if !botAdmin {
		return goerr.Wrap(model.ErrBotNotAdmin, "bot cannot operate on channel", goerr.V("channelID", channelID))
	}

	admin, err := p.IsAdmin(ctx, channelID, invoker)
	if err != nil {
		return err
	}
	if !admin {
		return goerr.Wrap(model.ErrInvokerNotAdmin, "invoker is not an admin",
			goerr.V("channelID", channelID),
			goerr.V("userID", invoker))
	}

	return nil
}
