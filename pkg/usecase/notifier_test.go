package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/specter/pkg/domain/model"
	"github.com/secmon-lab/specter/pkg/domain/types"
	"github.com/secmon-lab/specter/pkg/usecase"
	"github.com/slack-go/slack"
)

func TestNotifierNotifyNewUser(t *testing.T) {
	ctx := context.Background()

	t.Run("sends alert to operator", func(t *testing.T) {
		ws := newWorkspace()
		ws.addUser(slack.User{ID: "U0NEW", Name: "newbie", RealName: "New Person"})
		notifier := usecase.NewNotifier(ws.client, "U0OPERATOR")

		notifier.NotifyNewUser(ctx, "U0NEW")

		calls := ws.client.PostMessageCalls()
		gt.Equal(t, 1, len(calls))
		gt.Equal(t, "U0OPERATOR", calls[0].ChannelID)

		text, _ := messageContent(t, calls[0].Options)
		gt.S(t, text).Contains("🎉 New User Alert!")
		gt.S(t, text).Contains("Name: New Person")
		gt.S(t, text).Contains("Username: @newbie")
		gt.S(t, text).Contains("ID: U0NEW")
		gt.S(t, text).Contains(" UTC")
	})

	t.Run("disabled without operator", func(t *testing.T) {
		ws := newWorkspace()
		notifier := usecase.NewNotifier(ws.client, "")
		gt.False(t, notifier.Enabled())

		notifier.NotifyNewUser(ctx, testUserID)
		gt.Equal(t, 0, len(ws.client.PostMessageCalls()))
		gt.Equal(t, 0, len(ws.client.GetUserInfoCalls()))
	})

	t.Run("profile lookup failure still alerts with the ID", func(t *testing.T) {
		ws := newWorkspace()
		ws.userErr = goerr.New("user_not_found")
		notifier := usecase.NewNotifier(ws.client, "U0OPERATOR")

		notifier.NotifyNewUser(ctx, "U0GONE")

		calls := ws.client.PostMessageCalls()
		gt.Equal(t, 1, len(calls))
		text, _ := messageContent(t, calls[0].Options)
		gt.S(t, text).Contains("ID: U0GONE")
		gt.S(t, text).Contains("@No username")
	})

	t.Run("send failure is swallowed", func(t *testing.T) {
		ws := newWorkspace()
		ws.client.PostMessageFunc = func(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
			return "", "", goerr.New("channel_not_found")
		}
		notifier := usecase.NewNotifier(ws.client, "U0OPERATOR")

		notifier.NotifyNewUser(ctx, testUserID)
		gt.Equal(t, 1, len(ws.client.PostMessageCalls()))
	})
}

func TestNotifierNotifyRemovalFailures(t *testing.T) {
	ctx := context.Background()

	outcome := model.NewRemovalOutcome(testChannelID, 2, time.Now())
	outcome.Record("U1", model.RemovalRemoved, nil)
	outcome.Record("U2", model.RemovalFailed, goerr.New("restricted_action"))

	t.Run("summary is sent", func(t *testing.T) {
		ws := newWorkspace()
		notifier := usecase.NewNotifier(ws.client, "U0OPERATOR")

		notifier.NotifyRemovalFailures(ctx, outcome)

		calls := ws.client.PostMessageCalls()
		gt.Equal(t, 1, len(calls))
		text, _ := messageContent(t, calls[0].Options)
		gt.S(t, text).Contains("<@U2>: restricted_action")
	})

	t.Run("nothing sent without failures", func(t *testing.T) {
		ws := newWorkspace()
		notifier := usecase.NewNotifier(ws.client, "U0OPERATOR")

		clean := model.NewRemovalOutcome(testChannelID, 1, time.Now())
		clean.Record(types.SlackUserID("U1"), model.RemovalRemoved, nil)
		notifier.NotifyRemovalFailures(ctx, clean)
		gt.Equal(t, 0, len(ws.client.PostMessageCalls()))
	})
}
