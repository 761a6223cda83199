package async_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/specter/pkg/utils/async"
)

func waitOrFail(t *testing.T, wg *sync.WaitGroup, timeout time.Duration) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
		t.Fatal("Async handler did not complete within timeout")
	}
}

func TestDispatch(t *testing.T) {
	t.Run("Execute handler asynchronously", func(t *testing.T) {
		var wg sync.WaitGroup
		executed := false

		wg.Add(1)
		async.Dispatch(context.Background(), func(ctx context.Context) error {
			defer wg.Done()
			executed = true
			return nil
		})

		waitOrFail(t, &wg, time.Second)
		gt.True(t, executed)
	})

	t.Run("Handle errors in async handler", func(t *testing.T) {
		var wg sync.WaitGroup

		wg.Add(1)
		async.Dispatch(context.Background(), func(ctx context.Context) error {
			defer wg.Done()
			return goerr.New("test error")
		})

		waitOrFail(t, &wg, time.Second)
	})

	t.Run("Recover from panic in async handler", func(t *testing.T) {
		var wg sync.WaitGroup

		wg.Add(1)
		async.Dispatch(context.Background(), func(ctx context.Context) error {
			defer wg.Done()
			panic("test panic")
		})

		waitOrFail(t, &wg, time.Second)
	})

	t.Run("Multiple async dispatches", func(t *testing.T) {
		var wg sync.WaitGroup
		var mu sync.Mutex
		counter := 0

		for i := 0; i < 10; i++ {
			wg.Add(1)
			async.Dispatch(context.Background(), func(ctx context.Context) error {
				defer wg.Done()
				mu.Lock()
				counter++
				mu.Unlock()
				return nil
			})
		}

		waitOrFail(t, &wg, 2*time.Second)
		gt.Equal(t, 10, counter)
	})

	t.Run("Handler context survives request cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		var wg sync.WaitGroup
		var handlerErr error

		wg.Add(1)
		async.Dispatch(ctx, func(ctx context.Context) error {
			defer wg.Done()
			time.Sleep(20 * time.Millisecond)
			handlerErr = ctx.Err()
			return nil
		})
		cancel()

		waitOrFail(t, &wg, time.Second)
		gt.NoError(t, handlerErr)
	})
}

func TestNewBackgroundContext(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	ctx := ctxlog.With(context.Background(), logger)

	bg := async.NewBackgroundContext(ctx)
	ctxlog.From(bg).Info("hello")

	gt.S(t, buf.String()).Contains(`"msg":"hello"`)
	gt.S(t, buf.String()).Contains(`"dispatch_id"`)
}
