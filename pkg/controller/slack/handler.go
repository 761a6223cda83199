package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/specter/pkg/cli/config"
	"github.com/secmon-lab/specter/pkg/domain/interfaces"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
)

// Handler handles Slack webhook endpoints
type Handler struct {
	slackConfig        *config.Slack
	eventHandler       *EventHandler
	interactionHandler *InteractionHandler
	commandHandler     *CommandHandler
}

// NewHandler creates a new Slack handler
func NewHandler(ctx context.Context, slackConfig *config.Slack, ghostUC interfaces.Ghost) *Handler {
	return &Handler{
		slackConfig:        slackConfig,
		eventHandler:       NewEventHandler(ctx, ghostUC),
		interactionHandler: NewInteractionHandler(ctx, ghostUC),
		commandHandler:     NewCommandHandler(ctx, ghostUC),
	}
}

// HandleEvent handles a single Slack Events API request
func (h *Handler) HandleEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.writeError(ctx, w, goerr.Wrap(err, "failed to read request body"), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	eventsAPIEvent, err := slackevents.ParseEvent(body, slackevents.OptionNoVerifyToken())
	if err != nil {
		h.writeError(ctx, w, goerr.Wrap(err, "failed to parse event"), http.StatusBadRequest)
		return
	}

	// URL verification is answered before the app is fully configured
	if eventsAPIEvent.Type == slackevents.URLVerification {
		var response slackevents.ChallengeResponse
		if err := json.Unmarshal(body, &response); err != nil {
			h.writeError(ctx, w, goerr.Wrap(err, "failed to parse challenge"), http.StatusBadRequest)
			return
		}

		ctxlog.From(ctx).Info("Responding to Slack URL verification challenge")
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(response.Challenge)); err != nil {
			ctxlog.From(ctx).Error("Failed to write challenge response", "error", err)
		}
		return
	}

	if !h.slackConfig.IsConfigured() {
		h.writeError(ctx, w, goerr.New("Slack not configured"), http.StatusServiceUnavailable)
		return
	}

	if err := h.verifySignature(r, body); err != nil {
		h.writeError(ctx, w, err, http.StatusUnauthorized)
		return
	}

	// Retries are sent when an earlier delivery was not acknowledged in time;
	// the first delivery is already being processed.
	if retry := r.Header.Get("X-Slack-Retry-Num"); retry != "" {
		ctxlog.From(ctx).Debug("Ignoring Slack retry",
			"retryNum", retry,
			"reason", r.Header.Get("X-Slack-Retry-Reason"),
		)
		w.WriteHeader(http.StatusOK)
		return
	}

	w.WriteHeader(http.StatusOK)

	if eventsAPIEvent.Type != slackevents.CallbackEvent {
		ctxlog.From(ctx).Warn("Unknown Slack event type", "type", eventsAPIEvent.Type)
		return
	}

	if err := h.eventHandler.HandleEvent(ctx, &eventsAPIEvent); err != nil {
		ctxlog.From(ctx).Error("Failed to handle event", "error", err)
	}
}

// HandleInteraction handles a single Slack interactivity request
func (h *Handler) HandleInteraction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !h.slackConfig.IsConfigured() {
		h.writeError(ctx, w, goerr.New("Slack not configured"), http.StatusServiceUnavailable)
		return
	}

	body, err := h.readVerifiedBody(r)
	if err != nil {
		h.writeError(ctx, w, err, http.StatusUnauthorized)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.writeError(ctx, w, goerr.Wrap(err, "failed to parse form"), http.StatusBadRequest)
		return
	}

	payload := r.PostFormValue("payload")
	if payload == "" {
		h.writeError(ctx, w, goerr.New("payload not found", goerr.V("bodySize", len(body))), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusOK)

	if err := h.interactionHandler.HandleInteraction(ctx, []byte(payload)); err != nil {
		ctxlog.From(ctx).Error("Failed to handle interaction", "error", err)
	}
}

// HandleCommand handles a single slash command request
func (h *Handler) HandleCommand(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !h.slackConfig.IsConfigured() {
		h.writeError(ctx, w, goerr.New("Slack not configured"), http.StatusServiceUnavailable)
		return
	}

	if _, err := h.readVerifiedBody(r); err != nil {
		h.writeError(ctx, w, err, http.StatusUnauthorized)
		return
	}

	cmd, err := slack.SlashCommandParse(r)
	if err != nil {
		h.writeError(ctx, w, goerr.Wrap(err, "failed to parse slash command"), http.StatusBadRequest)
		return
	}

	// An empty 200 acknowledges the command without an ephemeral reply
	w.WriteHeader(http.StatusOK)

	if err := h.commandHandler.HandleCommand(ctx, &cmd); err != nil {
		ctxlog.From(ctx).Error("Failed to handle slash command", "error", err)
	}
}

// readVerifiedBody reads and verifies the body, then restores it so it can be
// parsed as a form
func (h *Handler) readVerifiedBody(r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read request body")
	}
	r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(body))

	if err := h.verifySignature(r, body); err != nil {
		return nil, err
	}
	return body, nil
}

// verifySignature checks the v0 request signature and the 5 minute timestamp window
func (h *Handler) verifySignature(r *http.Request, body []byte) error {
	sv, err := slack.NewSecretsVerifier(r.Header, h.slackConfig.SigningSecret)
	if err != nil {
		ctxlog.From(r.Context()).Warn("Invalid Slack signature headers", "error", err)
		return goerr.Wrap(err, "invalid signature")
	}
	if _, err := sv.Write(body); err != nil {
		return goerr.Wrap(err, "failed to hash request body")
	}
	if err := sv.Ensure(); err != nil {
		ctxlog.From(r.Context()).Warn("Invalid Slack signature", "error", err)
		return goerr.Wrap(err, "invalid signature")
	}
	return nil
}

// writeError writes an error response
func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, err error, status int) {
	ctxlog.From(ctx).Warn("Rejecting Slack request", "error", err, "status", status)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if encErr := json.NewEncoder(w).Encode(map[string]string{
		"error": err.Error(),
	}); encErr != nil {
		ctxlog.From(ctx).Error("Failed to write error response", "error", encErr)
	}
}
