package slack_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/specter/pkg/controller/slack"
	"github.com/secmon-lab/specter/pkg/domain/model"
	"github.com/secmon-lab/specter/pkg/domain/types"
)

func interactionBody(t *testing.T, payload map[string]any) []byte {
	t.Helper()
	raw, err := json.Marshal(payload)
	gt.NoError(t, err).Required()
	return []byte(url.Values{"payload": {string(raw)}}.Encode())
}

func blockActionPayload(actionID, value string) map[string]any {
	return map[string]any{
		"type": "block_actions",
		"user": map[string]any{"id": "U0ADMIN"},
		"team": map[string]any{"id": "T0TEAM"},
		"container": map[string]any{
			"type":       "message",
			"channel_id": "C0TEST",
			"message_ts": "1700000000.000100",
		},
		"channel": map[string]any{"id": "C0TEST"},
		"actions": []map[string]any{
			{
				"type":      "button",
				"action_id": actionID,
				"block_id":  "scan_actions",
				"value":     value,
			},
		},
	}
}

func TestHandleInteraction(t *testing.T) {
	t.Run("button press is dispatched", func(t *testing.T) {
		rec := newGhostRecorder()
		handler := slack.NewHandler(context.Background(), testSlackConfig(), rec.mock)

		body := interactionBody(t, blockActionPayload(model.ActionRemoveGhosts.String(), "token-value"))
		w := httptest.NewRecorder()
		handler.HandleInteraction(w, signedRequest(t, "/hooks/slack/interaction", "application/x-www-form-urlencoded", body, time.Now()))
		gt.Equal(t, http.StatusOK, w.Code)

		got := rec.waitAction(t)
		gt.Equal(t, model.ActionRemoveGhosts.String(), got.ActionID)
		gt.Equal(t, "token-value", got.Value)
		gt.Equal(t, types.ChannelID("C0TEST"), got.ChannelID)
		gt.Equal(t, types.MessageTS("1700000000.000100"), got.MessageTS)
		gt.Equal(t, types.SlackUserID("U0ADMIN"), got.UserID)
	})

	t.Run("invalid signature", func(t *testing.T) {
		rec := newGhostRecorder()
		handler := slack.NewHandler(context.Background(), testSlackConfig(), rec.mock)

		body := interactionBody(t, blockActionPayload(model.ActionConfirmRemove.String(), "x"))
		req := signedRequest(t, "/hooks/slack/interaction", "application/x-www-form-urlencoded", body, time.Now())
		req.Header.Set("X-Slack-Signature", "v0=0000")
		w := httptest.NewRecorder()
		handler.HandleInteraction(w, req)

		gt.Equal(t, http.StatusUnauthorized, w.Code)
		gt.Equal(t, 0, len(rec.mock.HandleActionCalls()))
	})

	t.Run("missing payload", func(t *testing.T) {
		rec := newGhostRecorder()
		handler := slack.NewHandler(context.Background(), testSlackConfig(), rec.mock)

		body := []byte(url.Values{"other": {"1"}}.Encode())
		w := httptest.NewRecorder()
		handler.HandleInteraction(w, signedRequest(t, "/hooks/slack/interaction", "application/x-www-form-urlencoded", body, time.Now()))

		gt.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestInteractionHandlerIgnoresOtherTypes(t *testing.T) {
	rec := newGhostRecorder()
	handler := slack.NewInteractionHandler(context.Background(), rec.mock)

	payload, err := json.Marshal(map[string]any{"type": "view_closed", "user": map[string]any{"id": "U0ADMIN"}})
	gt.NoError(t, err).Required()

	gt.NoError(t, handler.HandleInteraction(context.Background(), payload))
	time.Sleep(20 * time.Millisecond)
	gt.Equal(t, 0, len(rec.mock.HandleActionCalls()))
}

func TestInteractionHandlerRejectsMalformedPayload(t *testing.T) {
	rec := newGhostRecorder()
	handler := slack.NewInteractionHandler(context.Background(), rec.mock)

	gt.Error(t, handler.HandleInteraction(context.Background(), []byte("{not json")))
}
