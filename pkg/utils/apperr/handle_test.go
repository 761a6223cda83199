package apperr_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/specter/pkg/utils/apperr"
)

func newContext(buf *bytes.Buffer) context.Context {
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return ctxlog.With(context.Background(), logger)
}

func TestHandle(t *testing.T) {
	t.Run("logs error level", func(t *testing.T) {
		var buf bytes.Buffer
		apperr.Handle(newContext(&buf), goerr.New("boom"))
		gt.S(t, buf.String()).Contains(`"level":"ERROR"`)
		gt.S(t, buf.String()).Contains("boom")
	})

	t.Run("cancellation is a warning", func(t *testing.T) {
		var buf bytes.Buffer
		apperr.Handle(newContext(&buf), goerr.Wrap(context.Canceled, "scan aborted"))
		gt.S(t, buf.String()).Contains(`"level":"WARN"`)
	})

	t.Run("nil error is ignored", func(t *testing.T) {
		var buf bytes.Buffer
		apperr.Handle(newContext(&buf), nil)
		gt.Equal(t, "", buf.String())
	})
}

func TestNotice(t *testing.T) {
	var buf bytes.Buffer
	apperr.Notice(newContext(&buf), "invoker is not admin", goerr.New("denied"))
	gt.S(t, buf.String()).Contains(`"level":"INFO"`)
	gt.S(t, buf.String()).Contains("invoker is not admin")
}
