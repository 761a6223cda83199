package apperr

import (
	"context"
	"errors"

	"github.com/m-mizutani/ctxlog"
)

// Handle logs an error that is swallowed at a handler boundary.
// Cancellation is reported as a warning since it is caused by shutdown or the caller.
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}

	logger := ctxlog.From(ctx)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		logger.Warn("operation canceled", "error", err)
		return
	}
	logger.Error("application error", "error", err)
}

// Notice logs an expected failure that was already reported to the user,
// such as an authorization refusal.
func Notice(ctx context.Context, msg string, err error) {
	ctxlog.From(ctx).Info(msg, "reason", err)
}
