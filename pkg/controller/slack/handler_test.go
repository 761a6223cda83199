package slack_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/specter/pkg/cli/config"
	"github.com/secmon-lab/specter/pkg/controller/slack"
	"github.com/secmon-lab/specter/pkg/domain/model"
	"github.com/secmon-lab/specter/pkg/domain/types"
)

func messageEventBody(t *testing.T, text, channel, channelType string) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"type":    "event_callback",
		"team_id": "T0TEAM",
		"event": map[string]any{
			"type":         "message",
			"user":         "U0USER",
			"text":         text,
			"channel":      channel,
			"channel_type": channelType,
			"ts":           "1700000000.000100",
		},
	})
	gt.NoError(t, err).Required()
	return body
}

func TestHandleEventChallenge(t *testing.T) {
	rec := newGhostRecorder()
	// Challenge is answered even before the app is configured
	handler := slack.NewHandler(context.Background(), &config.Slack{}, rec.mock)

	body := []byte(`{"type":"url_verification","challenge":"test-challenge-string","token":"x"}`)
	req := httptest.NewRequest(http.MethodPost, "/hooks/slack/event", strings.NewReader(string(body)))
	w := httptest.NewRecorder()

	handler.HandleEvent(w, req)

	gt.Equal(t, http.StatusOK, w.Code)
	gt.Equal(t, "test-challenge-string", w.Body.String())
}

func TestHandleEventSignature(t *testing.T) {
	body := messageEventBody(t, "/scanmembers", "C0TEST", "channel")

	t.Run("invalid signature", func(t *testing.T) {
		rec := newGhostRecorder()
		handler := slack.NewHandler(context.Background(), testSlackConfig(), rec.mock)

		req := signedRequest(t, "/hooks/slack/event", "application/json", body, time.Now())
		req.Header.Set("X-Slack-Signature", "v0=deadbeef")
		w := httptest.NewRecorder()
		handler.HandleEvent(w, req)

		gt.Equal(t, http.StatusUnauthorized, w.Code)
		rec.expectNoCommand(t)
	})

	t.Run("stale timestamp", func(t *testing.T) {
		rec := newGhostRecorder()
		handler := slack.NewHandler(context.Background(), testSlackConfig(), rec.mock)

		req := signedRequest(t, "/hooks/slack/event", "application/json", body, time.Now().Add(-10*time.Minute))
		w := httptest.NewRecorder()
		handler.HandleEvent(w, req)

		gt.Equal(t, http.StatusUnauthorized, w.Code)
		rec.expectNoCommand(t)
	})

	t.Run("missing headers", func(t *testing.T) {
		rec := newGhostRecorder()
		handler := slack.NewHandler(context.Background(), testSlackConfig(), rec.mock)

		req := httptest.NewRequest(http.MethodPost, "/hooks/slack/event", strings.NewReader(string(body)))
		w := httptest.NewRecorder()
		handler.HandleEvent(w, req)

		gt.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("not configured", func(t *testing.T) {
		rec := newGhostRecorder()
		handler := slack.NewHandler(context.Background(), &config.Slack{}, rec.mock)

		req := signedRequest(t, "/hooks/slack/event", "application/json", body, time.Now())
		w := httptest.NewRecorder()
		handler.HandleEvent(w, req)

		gt.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestHandleEventCommand(t *testing.T) {
	testCases := []struct {
		name        string
		text        string
		channel     string
		channelType string
		command     model.Command
		private     bool
	}{
		{"scan in channel", "/scanmembers", "C0TEST", "channel", model.CommandScanMembers, false},
		{"scan with tag", "/scanmembers@specter", "C0TEST", "channel", model.CommandScanMembers, false},
		{"start in DM", "/start", "D0DM", "im", model.CommandStart, true},
		{"scan in group DM", "/scanmembers", "G0MPIM", "mpim", model.CommandScanMembers, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := newGhostRecorder()
			handler := slack.NewHandler(context.Background(), testSlackConfig(), rec.mock)

			body := messageEventBody(t, tc.text, tc.channel, tc.channelType)
			w := httptest.NewRecorder()
			handler.HandleEvent(w, signedRequest(t, "/hooks/slack/event", "application/json", body, time.Now()))
			gt.Equal(t, http.StatusOK, w.Code)

			got := rec.waitCommand(t)
			gt.Equal(t, tc.command, got.Command)
			gt.Equal(t, types.ChannelID(tc.channel), got.ChannelID)
			gt.Equal(t, types.SlackUserID("U0USER"), got.UserID)
			gt.Equal(t, tc.private, got.Private)
		})
	}

	t.Run("non-command text is ignored", func(t *testing.T) {
		rec := newGhostRecorder()
		handler := slack.NewHandler(context.Background(), testSlackConfig(), rec.mock)

		body := messageEventBody(t, "please /scanmembers now", "C0TEST", "channel")
		w := httptest.NewRecorder()
		handler.HandleEvent(w, signedRequest(t, "/hooks/slack/event", "application/json", body, time.Now()))

		gt.Equal(t, http.StatusOK, w.Code)
		rec.expectNoCommand(t)
	})

	t.Run("retries are acknowledged without processing", func(t *testing.T) {
		rec := newGhostRecorder()
		handler := slack.NewHandler(context.Background(), testSlackConfig(), rec.mock)

		body := messageEventBody(t, "/scanmembers", "C0TEST", "channel")
		req := signedRequest(t, "/hooks/slack/event", "application/json", body, time.Now())
		req.Header.Set("X-Slack-Retry-Num", "1")
		w := httptest.NewRecorder()
		handler.HandleEvent(w, req)

		gt.Equal(t, http.StatusOK, w.Code)
		rec.expectNoCommand(t)
	})
}

func TestHandleCommand(t *testing.T) {
	form := func(command, channelID, channelName string) []byte {
		v := url.Values{}
		v.Set("command", command)
		v.Set("channel_id", channelID)
		v.Set("channel_name", channelName)
		v.Set("user_id", "U0USER")
		v.Set("team_id", "T0TEAM")
		v.Set("text", "")
		return []byte(v.Encode())
	}

	t.Run("scanmembers in channel", func(t *testing.T) {
		rec := newGhostRecorder()
		handler := slack.NewHandler(context.Background(), testSlackConfig(), rec.mock)

		body := form("/scanmembers", "C0TEST", "general")
		w := httptest.NewRecorder()
		handler.HandleCommand(w, signedRequest(t, "/hooks/slack/command", "application/x-www-form-urlencoded", body, time.Now()))
		gt.Equal(t, http.StatusOK, w.Code)

		got := rec.waitCommand(t)
		gt.Equal(t, model.CommandScanMembers, got.Command)
		gt.Equal(t, types.ChannelID("C0TEST"), got.ChannelID)
		gt.False(t, got.Private)
	})

	t.Run("start in direct message", func(t *testing.T) {
		rec := newGhostRecorder()
		handler := slack.NewHandler(context.Background(), testSlackConfig(), rec.mock)

		body := form("/start", "D0DM", "directmessage")
		w := httptest.NewRecorder()
		handler.HandleCommand(w, signedRequest(t, "/hooks/slack/command", "application/x-www-form-urlencoded", body, time.Now()))

		got := rec.waitCommand(t)
		gt.Equal(t, model.CommandStart, got.Command)
		gt.True(t, got.Private)
	})

	t.Run("group DM counts as private", func(t *testing.T) {
		rec := newGhostRecorder()
		handler := slack.NewHandler(context.Background(), testSlackConfig(), rec.mock)

		body := form("/scanmembers", "G0MPIM", "mpdm-alice--bob-1")
		w := httptest.NewRecorder()
		handler.HandleCommand(w, signedRequest(t, "/hooks/slack/command", "application/x-www-form-urlencoded", body, time.Now()))

		gt.True(t, rec.waitCommand(t).Private)
	})

	t.Run("unknown command is ignored", func(t *testing.T) {
		rec := newGhostRecorder()
		handler := slack.NewHandler(context.Background(), testSlackConfig(), rec.mock)

		body := form("/other", "C0TEST", "general")
		w := httptest.NewRecorder()
		handler.HandleCommand(w, signedRequest(t, "/hooks/slack/command", "application/x-www-form-urlencoded", body, time.Now()))

		gt.Equal(t, http.StatusOK, w.Code)
		rec.expectNoCommand(t)
	})

	t.Run("forged body is rejected", func(t *testing.T) {
		rec := newGhostRecorder()
		handler := slack.NewHandler(context.Background(), testSlackConfig(), rec.mock)

		req := signedRequest(t, "/hooks/slack/command", "application/x-www-form-urlencoded", form("/scanmembers", "C0TEST", "general"), time.Now())
		forged := signedRequest(t, "/hooks/slack/command", "application/x-www-form-urlencoded", form("/scanmembers", "C0OTHER", "general"), time.Now())
		forged.Header.Set("X-Slack-Signature", req.Header.Get("X-Slack-Signature"))

		w := httptest.NewRecorder()
		handler.HandleCommand(w, forged)
		gt.Equal(t, http.StatusUnauthorized, w.Code)
		rec.expectNoCommand(t)
	})
}
