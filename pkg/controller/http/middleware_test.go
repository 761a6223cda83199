package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
	controller "github.com/secmon-lab/specter/pkg/controller/http"
)

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	ctx := ctxlog.With(context.Background(), logger)

	var innerHasLogger bool
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxlog.From(r.Context()).Info("inside handler")
		innerHasLogger = true
		w.WriteHeader(http.StatusTeapot)
	})

	handler := middleware.RequestID(controller.LoggingMiddleware(ctx)(inner))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	gt.True(t, innerHasLogger)
	gt.Equal(t, http.StatusTeapot, w.Code)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	gt.A(t, lines).Length(2)

	var inside, access map[string]any
	gt.NoError(t, json.Unmarshal(lines[0], &inside)).Required()
	gt.NoError(t, json.Unmarshal(lines[1], &access)).Required()

	gt.Equal(t, "inside handler", inside["msg"])
	gt.NotEqual(t, "", inside["request_id"])
	gt.Equal(t, inside["request_id"], access["request_id"])

	gt.Equal(t, "HTTP request", access["msg"])
	gt.Equal(t, "GET", access["method"])
	gt.Equal(t, "/health", access["path"])
	status, ok := access["status"].(float64)
	gt.True(t, ok)
	gt.Equal(t, float64(http.StatusTeapot), status)
}
