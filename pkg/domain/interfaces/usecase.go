package interfaces

//go:generate moq -out mocks/usecase_mock.go -pkg mocks . Permission Scanner Removal Notifier Ghost

import (
	"context"

	"github.com/secmon-lab/specter/pkg/domain/model"
	"github.com/secmon-lab/specter/pkg/domain/types"
)

// Permission answers whether the bot or a user holds admin rights in a channel
type Permission interface {
	Self(ctx context.Context) (*model.BotIdentity, error)
	IsAdmin(ctx context.Context, channelID types.ChannelID, userID types.SlackUserID) (bool, error)
	IsBotAdmin(ctx context.Context, channelID types.ChannelID) (bool, error)
	// Authorize runs both checks, bot first. It returns ErrBotNotAdmin,
	// ErrInvokerNotAdmin or an ErrPermissionQuery-wrapped error.
	Authorize(ctx context.Context, channelID types.ChannelID, invoker types.SlackUserID) error
}

// Scanner enumerates channel members and classifies ghosts
type Scanner interface {
	ResolveChat(ctx context.Context, channelID types.ChannelID) (*model.Chat, error)
	Scan(ctx context.Context, chat *model.Chat) (*model.ScanResult, error)
	// ForEachGhost walks a fresh enumeration and calls fn for each deactivated member
	ForEachGhost(ctx context.Context, channelID types.ChannelID, fn func(ctx context.Context, member *model.Member) error) error
}

// Notifier sends best-effort alerts to the operator
type Notifier interface {
	NotifyNewUser(ctx context.Context, userID types.SlackUserID)
	NotifyRemovalFailures(ctx context.Context, outcome *model.RemovalOutcome)
}

// Removal runs the kick loop of a confirmed workflow
type Removal interface {
	Remove(ctx context.Context, token *model.WorkflowToken) (*model.RemovalOutcome, error)
}

// Ghost is the entry point used by the Slack controllers
type Ghost interface {
	HandleCommand(ctx context.Context, req *model.CommandRequest) error
	HandleAction(ctx context.Context, req *model.ActionRequest) error
}
