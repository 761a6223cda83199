package async

import (
	"context"
	"runtime/debug"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
)

// Dispatch runs handler in a new goroutine detached from the request context,
// so Slack hooks can be acknowledged before the work completes. Errors and
// panics are logged and never propagated.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	newCtx := NewBackgroundContext(ctx)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()
				ctxlog.From(newCtx).Error("Panic in async handler",
					"recover", r,
					"stack", string(stack),
				)
			}
		}()

		if err := handler(newCtx); err != nil {
			ctxlog.From(newCtx).Error("Error in async handler",
				"error", err,
			)
		}
	}()
}

// NewBackgroundContext creates a context that outlives ctx but keeps its logger.
// Each context gets a dispatch_id attribute to correlate log lines of one job.
func NewBackgroundContext(ctx context.Context) context.Context {
	logger := ctxlog.From(ctx).With("dispatch_id", uuid.NewString())
	return ctxlog.With(context.Background(), logger)
}
