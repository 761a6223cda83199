package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/specter/pkg/domain/interfaces"
	"github.com/secmon-lab/specter/pkg/domain/model"
	"github.com/secmon-lab/specter/pkg/domain/types"
	slackSvc "github.com/secmon-lab/specter/pkg/service/slack"
	"github.com/slack-go/slack"
)

// Notifier sends best-effort alerts to the operator's direct messages.
// Failures are logged and never returned.
type Notifier struct {
	slackClient  interfaces.SlackClient
	operatorID   types.SlackUserID
	blockBuilder *slackSvc.BlockBuilder
	now          func() time.Time
}

var _ interfaces.Notifier = (*Notifier)(nil)

// NewNotifier creates a new Notifier. An empty operatorID disables all alerts.
func NewNotifier(slackClient interfaces.SlackClient, operatorID types.SlackUserID) *Notifier {
	return &Notifier{
		slackClient:  slackClient,
		operatorID:   operatorID,
		blockBuilder: slackSvc.NewBlockBuilder(),
		now:          time.Now,
	}
}

// Enabled reports whether an operator is configured
func (n *Notifier) Enabled() bool {
	return n.operatorID != ""
}

// NotifyNewUser alerts the operator that a user talked to the bot in private
func (n *Notifier) NotifyNewUser(ctx context.Context, userID types.SlackUserID) {
	if !n.Enabled() {
		return
	}

	user := &model.User{ID: userID}
	if info, err := n.slackClient.GetUserInfo(ctx, userID.String()); err != nil {
		ctxlog.From(ctx).Warn("Failed to get user info for alert", "error", err, "userID", userID)
	} else {
		user.Name = info.Name
		user.RealName = info.RealName
	}

	n.send(ctx, n.blockBuilder.NewUserAlertText(user, n.now()))
}

// NotifyRemovalFailures sends the failure summary of a removal run
func (n *Notifier) NotifyRemovalFailures(ctx context.Context, outcome *model.RemovalOutcome) {
	if !n.Enabled() || outcome.FailedCount() == 0 {
		return
	}
	n.send(ctx, n.blockBuilder.RemovalFailuresText(outcome))
}

func (n *Notifier) send(ctx context.Context, text string) {
	if _, _, err := n.slackClient.PostMessage(ctx, n.operatorID.String(), slack.MsgOptionText(text, false)); err != nil {
		ctxlog.From(ctx).Error("Failed to send operator alert", "error", err, "operatorID", n.operatorID)
	}
}
