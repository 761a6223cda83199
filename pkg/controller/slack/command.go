package slack

import (
	"context"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/specter/pkg/domain/interfaces"
	"github.com/secmon-lab/specter/pkg/domain/model"
	"github.com/secmon-lab/specter/pkg/domain/types"
	"github.com/secmon-lab/specter/pkg/utils/async"
	"github.com/slack-go/slack"
)

// Channel names Slack reports for slash commands issued in direct conversations
const (
	directMessageChannelName = "directmessage"
	multiPartyDMPrefix       = "mpdm-"
)

// CommandHandler turns slash commands into command requests
type CommandHandler struct {
	ghostUC interfaces.Ghost
}

// NewCommandHandler creates a new slash command handler
func NewCommandHandler(ctx context.Context, ghostUC interfaces.Ghost) *CommandHandler {
	return &CommandHandler{
		ghostUC: ghostUC,
	}
}

// HandleCommand dispatches a recognised slash command. Unknown commands are ignored.
func (h *CommandHandler) HandleCommand(ctx context.Context, cmd *slack.SlashCommand) error {
	command, ok := model.ParseCommand(cmd.Command)
	if !ok {
		ctxlog.From(ctx).Debug("Ignoring unknown slash command", "command", cmd.Command)
		return nil
	}

	req := &model.CommandRequest{
		Command:   command,
		ChannelID: types.ChannelID(cmd.ChannelID),
		UserID:    types.SlackUserID(cmd.UserID),
		Private:   cmd.ChannelName == directMessageChannelName || strings.HasPrefix(cmd.ChannelName, multiPartyDMPrefix),
	}

	ctxlog.From(ctx).Info("Slash command received",
		"command", cmd.Command,
		"user", cmd.UserID,
		"channel", cmd.ChannelID,
		"channelName", cmd.ChannelName,
	)

	async.Dispatch(ctx, func(asyncCtx context.Context) error {
		return h.ghostUC.HandleCommand(asyncCtx, req)
	})
	return nil
}
