package cli

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
)

func TestRunServerReturnsListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	gt.NoError(t, err).Required()
	defer ln.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	server := &http.Server{Addr: ln.Addr().String(), Handler: http.NotFoundHandler()}
	err = runServer(ctx, server, time.Second)

	gt.Error(t, err)
	// The failure is reported right away, not when the context expires
	gt.NoError(t, ctx.Err())
}

func TestRunServerShutsDownOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	server := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}

	done := make(chan error, 1)
	go func() {
		done <- runServer(ctx, server, time.Second)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		gt.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down after cancel")
	}
}
