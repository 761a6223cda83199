package slack

import (
	"context"
	"encoding/json"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/specter/pkg/domain/interfaces"
	"github.com/secmon-lab/specter/pkg/domain/model"
	"github.com/secmon-lab/specter/pkg/domain/types"
	"github.com/secmon-lab/specter/pkg/utils/async"
	"github.com/slack-go/slack"
)

// InteractionHandler handles Slack interactions
type InteractionHandler struct {
	ghostUC interfaces.Ghost
}

// NewInteractionHandler creates a new interaction handler
func NewInteractionHandler(ctx context.Context, ghostUC interfaces.Ghost) *InteractionHandler {
	return &InteractionHandler{
		ghostUC: ghostUC,
	}
}

// HandleInteraction handles a Slack interaction
func (h *InteractionHandler) HandleInteraction(ctx context.Context, payload []byte) error {
	var interaction slack.InteractionCallback
	if err := json.Unmarshal(payload, &interaction); err != nil {
		return goerr.Wrap(err, "failed to unmarshal interaction payload")
	}

	ctxlog.From(ctx).Info("Handling Slack interaction",
		"type", string(interaction.Type),
		"user", interaction.User.ID,
		"team", interaction.Team.ID,
	)

	switch interaction.Type {
	case slack.InteractionTypeBlockActions:
		return h.handleBlockActions(ctx, &interaction)

	default:
		ctxlog.From(ctx).Debug("Unhandled interaction type",
			"type", string(interaction.Type),
		)
		return nil
	}
}

// handleBlockActions dispatches each button press to the workflow
func (h *InteractionHandler) handleBlockActions(ctx context.Context, interaction *slack.InteractionCallback) error {
	channelID := interaction.Container.ChannelID
	if channelID == "" {
		channelID = interaction.Channel.ID
	}
	messageTS := interaction.Container.MessageTs
	if messageTS == "" {
		messageTS = interaction.Message.Timestamp
	}

	for _, action := range interaction.ActionCallback.BlockActions {
		req := &model.ActionRequest{
			ActionID:  action.ActionID,
			Value:     action.Value,
			ChannelID: types.ChannelID(channelID),
			MessageTS: types.MessageTS(messageTS),
			UserID:    types.SlackUserID(interaction.User.ID),
		}

		ctxlog.From(ctx).Info("Block action triggered",
			"actionID", action.ActionID,
			"blockID", action.BlockID,
			"channel", channelID,
			"user", interaction.User.ID,
		)

		async.Dispatch(ctx, func(asyncCtx context.Context) error {
			return h.ghostUC.HandleAction(asyncCtx, req)
		})
	}
	return nil
}
