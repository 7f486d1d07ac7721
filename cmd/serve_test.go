package main

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStartBot_DoneAfterRunReturns(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var finished atomic.Bool
	release := make(chan struct{})
	done := startBot(ctx, func(ctx context.Context) error {
		<-ctx.Done()
		// обработчик ещё работает после отмены
		<-release
		finished.Store(true)
		return nil
	})

	cancel()
	select {
	case <-done:
		t.Fatal("done closed while the bot is still handling an update")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("done was not closed after the bot returned")
	}
	require.True(t, finished.Load())
}

func TestStartBot_Disabled(t *testing.T) {
	done := startBot(context.Background(), nil)
	select {
	case <-done:
	default:
		t.Fatal("done must be closed when the bot is disabled")
	}
}
