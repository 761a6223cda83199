package slack

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/specter/pkg/domain/interfaces"
	"github.com/secmon-lab/specter/pkg/domain/model"
	"github.com/secmon-lab/specter/pkg/domain/types"
	"github.com/secmon-lab/specter/pkg/utils/async"
	"github.com/slack-go/slack/slackevents"
)

// channel_type values of message events in direct conversations
const (
	channelTypeIM   = "im"
	channelTypeMPIM = "mpim"
)

// EventHandler turns message events that carry a bot command into command requests
type EventHandler struct {
	ghostUC interfaces.Ghost
}

// NewEventHandler creates a new event handler
func NewEventHandler(ctx context.Context, ghostUC interfaces.Ghost) *EventHandler {
	return &EventHandler{
		ghostUC: ghostUC,
	}
}

// HandleEvent handles a Slack event
func (h *EventHandler) HandleEvent(ctx context.Context, event *slackevents.EventsAPIEvent) error {
	if event == nil {
		return goerr.New("event is nil")
	}

	ctxlog.From(ctx).Debug("Handling Slack event",
		"type", event.Type,
		"innerEvent", event.InnerEvent.Type,
	)

	switch ev := event.InnerEvent.Data.(type) {
	case *slackevents.MessageEvent:
		return h.handleMessageEvent(ctx, ev)

	default:
		ctxlog.From(ctx).Debug("Unhandled event type",
			"type", event.InnerEvent.Type,
		)
		return nil
	}
}

// handleMessageEvent matches the text against the command patterns and
// dispatches the command for async processing
func (h *EventHandler) handleMessageEvent(ctx context.Context, event *slackevents.MessageEvent) error {
	logger := ctxlog.From(ctx)

	// Skip bot messages to prevent loops
	if event.BotID != "" {
		logger.Debug("Skipping bot message", "botID", event.BotID)
		return nil
	}

	// Edits, joins and other subtypes never carry a command
	if event.SubType != "" {
		logger.Debug("Skipping message subtype", "subtype", event.SubType)
		return nil
	}

	command, ok := model.ParseCommand(event.Text)
	if !ok {
		return nil
	}

	req := &model.CommandRequest{
		Command:   command,
		ChannelID: types.ChannelID(event.Channel),
		UserID:    types.SlackUserID(event.User),
		Private:   event.ChannelType == channelTypeIM || event.ChannelType == channelTypeMPIM,
	}

	logger.Info("Command received",
		"command", req.Command,
		"user", event.User,
		"channel", event.Channel,
		"channelType", event.ChannelType,
	)

	async.Dispatch(ctx, func(asyncCtx context.Context) error {
		return h.ghostUC.HandleCommand(asyncCtx, req)
	})
	return nil
}
