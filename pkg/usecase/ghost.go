package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/specter/pkg/domain/interfaces"
	"github.com/secmon-lab/specter/pkg/domain/model"
	"github.com/secmon-lab/specter/pkg/domain/types"
	slackSvc "github.com/secmon-lab/specter/pkg/service/slack"
	"github.com/secmon-lab/specter/pkg/utils/apperr"
	"github.com/slack-go/slack"
)

// Ghost routes commands and button presses to the permission gate, the
// scanner and the removal workflow, and renders every reply
type Ghost struct {
	slackClient  interfaces.SlackClient
	permission   interfaces.Permission
	scanner      interfaces.Scanner
	removal      interfaces.Removal
	notifier     interfaces.Notifier
	blockBuilder *slackSvc.BlockBuilder
}

var _ interfaces.Ghost = (*Ghost)(nil)

// NewGhost creates a new Ghost use case
func NewGhost(
	slackClient interfaces.SlackClient,
	permission interfaces.Permission,
	scanner interfaces.Scanner,
	removal interfaces.Removal,
	notifier interfaces.Notifier,
) *Ghost {
	return &Ghost{
		slackClient:  slackClient,
		permission:   permission,
		scanner:      scanner,
		removal:      removal,
		notifier:     notifier,
		blockBuilder: slackSvc.NewBlockBuilder(),
	}
}

// HandleCommand processes /start and /scanmembers
func (g *Ghost) HandleCommand(ctx context.Context, req *model.CommandRequest) error {
	ctx = ctxlog.With(ctx, ctxlog.From(ctx).With(
		"command", req.Command,
		"channelID", req.ChannelID,
		"userID", req.UserID,
	))

	switch req.Command {
	case model.CommandStart:
		return g.handleStart(ctx, req)
	case model.CommandScanMembers:
		return g.handleScanMembers(ctx, req)
	default:
		return goerr.New("unknown command", goerr.V("command", req.Command))
	}
}

func (g *Ghost) handleStart(ctx context.Context, req *model.CommandRequest) error {
	if !req.Private && !req.ChannelID.IsDirectMessage() {
		ctxlog.From(ctx).Debug("Ignoring /start outside direct messages")
		return nil
	}

	g.notifier.NotifyNewUser(ctx, req.UserID)

	self := g.selfOrEmpty(ctx)
	return g.postPrivate(ctx, req.UserID, g.blockBuilder.BuildWelcomeBlocks(self), g.blockBuilder.WelcomeText())
}

func (g *Ghost) handleScanMembers(ctx context.Context, req *model.CommandRequest) error {
	if req.Private || req.ChannelID.IsDirectMessage() {
		return g.rejectPrivate(ctx, req)
	}

	chat, err := g.scanner.ResolveChat(ctx, req.ChannelID)
	if err != nil {
		if errors.Is(err, model.ErrPermissionQuery) {
			apperr.Notice(ctx, "Channel is not visible to the bot", err)
			return g.reply(ctx, req, slackSvc.TextBotNotAdmin)
		}
		apperr.Handle(ctx, err)
		return g.reply(ctx, req, slackSvc.TextCommandFailed)
	}
	if !chat.IsGroup() {
		return g.rejectPrivate(ctx, req)
	}

	if err := g.permission.Authorize(ctx, chat.ID, req.UserID); err != nil {
		return g.replyAuthorizationError(ctx, req, err)
	}

	_, ts, err := g.slackClient.PostMessage(ctx, chat.ID.String(),
		slack.MsgOptionText(slackSvc.TextScanning, false),
		slack.MsgOptionBlocks(g.blockBuilder.BuildScanningBlocks()...),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post scanning message")
	}
	msgTS := types.MessageTS(ts)

	scan, err := g.scanner.Scan(ctx, chat)
	if err != nil {
		apperr.Handle(ctx, err)
		return g.update(ctx, chat.ID, msgTS, g.blockBuilder.BuildTextBlocks(slackSvc.TextScanFailed), slackSvc.TextScanFailed)
	}

	blocks, err := g.blockBuilder.BuildScanResultBlocks(scan)
	if err != nil {
		apperr.Handle(ctx, err)
		return g.update(ctx, chat.ID, msgTS, g.blockBuilder.BuildTextBlocks(slackSvc.TextScanFailed), slackSvc.TextScanFailed)
	}
	return g.update(ctx, chat.ID, msgTS, blocks, g.blockBuilder.ScanResultText(scan))
}

func (g *Ghost) rejectPrivate(ctx context.Context, req *model.CommandRequest) error {
	g.notifier.NotifyNewUser(ctx, req.UserID)

	self := g.selfOrEmpty(ctx)
	return g.postPrivate(ctx, req.UserID, g.blockBuilder.BuildPrivateRejectedBlocks(self), slackSvc.TextPrivateRejected)
}

// replyAuthorizationError maps an Authorize failure to its user-facing reply.
// Authorization refusals are expected and not logged as failures.
func (g *Ghost) replyAuthorizationError(ctx context.Context, req *model.CommandRequest, err error) error {
	switch {
	case errors.Is(err, model.ErrBotNotAdmin):
		apperr.Notice(ctx, "Bot is not an admin", err)
		return g.reply(ctx, req, slackSvc.TextBotNotAdmin)
	case errors.Is(err, model.ErrInvokerNotAdmin):
		apperr.Notice(ctx, "Invoker is not an admin", err)
		return g.reply(ctx, req, slackSvc.TextInvokerNotAdmin)
	case errors.Is(err, model.ErrPermissionQuery):
		apperr.Notice(ctx, "Permission query refused", err)
		return g.reply(ctx, req, slackSvc.TextPermissionQuery)
	default:
		apperr.Handle(ctx, err)
		return g.reply(ctx, req, slackSvc.TextCommandFailed)
	}
}

// HandleAction processes the remove, confirm and cancel buttons. The presser
// must be an admin at the time of every press.
func (g *Ghost) HandleAction(ctx context.Context, req *model.ActionRequest) error {
	action := model.WorkflowAction(req.ActionID)
	if !action.IsValid() {
		ctxlog.From(ctx).Debug("Ignoring unknown action", "actionID", req.ActionID)
		return nil
	}

	ctx = ctxlog.With(ctx, ctxlog.From(ctx).With(
		"action", action,
		"channelID", req.ChannelID,
		"userID", req.UserID,
	))

	if err := g.permission.Authorize(ctx, req.ChannelID, req.UserID); err != nil {
		return g.replyAuthorizationError(ctx, &model.CommandRequest{ChannelID: req.ChannelID, UserID: req.UserID}, err)
	}

	token, err := model.DecodeWorkflowToken(req.ActionID, req.Value)
	if err == nil && token.ChannelID != req.ChannelID {
		err = goerr.Wrap(model.ErrInvalidToken, "token belongs to another channel",
			goerr.V("tokenChannelID", token.ChannelID))
	}
	if err != nil {
		apperr.Notice(ctx, "Rejected workflow token", err)
		return g.update(ctx, req.ChannelID, req.MessageTS, g.blockBuilder.BuildTextBlocks(slackSvc.TextActionExpired), slackSvc.TextActionExpired)
	}

	next, err := token.Next()
	if err != nil {
		apperr.Notice(ctx, "Rejected workflow transition", err)
		return g.update(ctx, req.ChannelID, req.MessageTS, g.blockBuilder.BuildTextBlocks(slackSvc.TextActionExpired), slackSvc.TextActionExpired)
	}

	ctxlog.From(ctx).Info("Workflow transition",
		"scanID", token.ScanID,
		"from", token.State.String(),
		"to", next.String(),
	)

	switch action {
	case model.ActionRemoveGhosts:
		blocks, err := g.blockBuilder.BuildConfirmBlocks(token)
		if err != nil {
			return err
		}
		return g.update(ctx, req.ChannelID, req.MessageTS, blocks, slackSvc.TextConfirmPrompt)

	case model.ActionConfirmRemove:
		return g.confirmRemoval(ctx, req, token)

	case model.ActionCancelRemove:
		return g.update(ctx, req.ChannelID, req.MessageTS, g.blockBuilder.BuildCancelledBlocks(), slackSvc.TextCancelled)
	}
	return nil
}

func (g *Ghost) confirmRemoval(ctx context.Context, req *model.ActionRequest, token *model.WorkflowToken) error {
	if err := g.update(ctx, req.ChannelID, req.MessageTS, g.blockBuilder.BuildCleaningBlocks(), slackSvc.TextCleaning); err != nil {
		return err
	}

	outcome, err := g.removal.Remove(ctx, token)
	if errors.Is(err, model.ErrRemovalInProgress) {
		apperr.Notice(ctx, "Removal already running", err)
		return g.postPrivate(ctx, req.UserID, g.blockBuilder.BuildTextBlocks(slackSvc.TextRemovalInProgress), slackSvc.TextRemovalInProgress)
	}
	if err != nil {
		apperr.Handle(ctx, err)
		return g.update(ctx, req.ChannelID, req.MessageTS, g.blockBuilder.BuildTextBlocks(slackSvc.TextRemovalFailed), slackSvc.TextRemovalFailed)
	}

	return g.update(ctx, req.ChannelID, req.MessageTS, g.blockBuilder.BuildRemovalDoneBlocks(outcome), g.blockBuilder.RemovalDoneText(outcome))
}

func (g *Ghost) selfOrEmpty(ctx context.Context) *model.BotIdentity {
	self, err := g.permission.Self(ctx)
	if err != nil {
		apperr.Handle(ctx, err)
		return &model.BotIdentity{}
	}
	return self
}

// reply posts a short message to the command's channel. When the bot cannot post
// there it falls back to a direct message to the invoker.
func (g *Ghost) reply(ctx context.Context, req *model.CommandRequest, text string) error {
	blocks := g.blockBuilder.BuildTextBlocks(text)
	_, _, err := g.slackClient.PostMessage(ctx, req.ChannelID.String(),
		slack.MsgOptionText(text, false),
		slack.MsgOptionBlocks(blocks...),
	)
	if err == nil {
		return nil
	}

	ctxlog.From(ctx).Warn("Failed to reply in channel, falling back to direct message", "error", err)
	return g.postPrivate(ctx, req.UserID, blocks, text)
}

// postPrivate sends a message to the user's direct conversation with the bot
func (g *Ghost) postPrivate(ctx context.Context, userID types.SlackUserID, blocks []slack.Block, text string) error {
	if _, _, err := g.slackClient.PostMessage(ctx, userID.String(),
		slack.MsgOptionText(text, false),
		slack.MsgOptionBlocks(blocks...),
	); err != nil {
		return goerr.Wrap(err, "failed to post direct message", goerr.V("userID", userID))
	}
	return nil
}

func (g *Ghost) update(ctx context.Context, channelID types.ChannelID, ts types.MessageTS, blocks []slack.Block, text string) error {
	if _, _, _, err := g.slackClient.UpdateMessage(ctx, channelID.String(), ts.String(),
		slack.MsgOptionText(text, false),
		slack.MsgOptionBlocks(blocks...),
	); err != nil {
		return goerr.Wrap(err, "failed to update message",
			goerr.V("channelID", channelID),
			goerr.V("ts", ts))
	}
	return nil
}
