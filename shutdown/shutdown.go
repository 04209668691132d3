// Package shutdown cancels a context when the process receives SIGINT or
// SIGTERM, running registered hooks first.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/amp-labs/reorderable/logger"
)

// Handler owns one signal subscription. Create it with SetupHandler.
type Handler struct {
	mut      sync.Mutex
	hooks    []func()
	signals  chan os.Signal
	done     chan struct{}
	stopOnce sync.Once
	finished chan struct{}
}

// SetupHandler returns a child of parent that is canceled once a signal
// arrives (or Shutdown is called). Hooks registered with BeforeShutdown run
// while the returned context is still alive.
func SetupHandler(parent context.Context) (context.Context, *Handler) {
	ctx, cancel := context.WithCancel(parent)

	h := &Handler{
		signals:  make(chan os.Signal, 1),
		done:     make(chan struct{}),
		finished: make(chan struct{}),
	}

	signal.Notify(h.signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer close(h.finished)
		defer cancel()
		defer signal.Stop(h.signals)

		select {
		case sig := <-h.signals:
			logger.Get(ctx).Warn("Received " + sig.String() + ", shutting down...")
			h.runHooks()
		case <-h.done:
		case <-ctx.Done():
		}
	}()

	return ctx, h
}

// BeforeShutdown registers f to run when a signal arrives. Hooks run in
// registration order.
func (h *Handler) BeforeShutdown(f func()) {
	h.mut.Lock()
	defer h.mut.Unlock()

	h.hooks = append(h.hooks, f)
}

// Shutdown behaves as if SIGINT had been received.
func (h *Handler) Shutdown() {
	select {
	case h.signals <- os.Interrupt:
	default:
	}
}

// Stop releases the signal subscription and cancels the context without
// running hooks. It waits for the handler goroutine to exit.
func (h *Handler) Stop() {
	h.stopOnce.Do(func() {
		close(h.done)
	})

	<-h.finished
}

func (h *Handler) runHooks() {
	h.mut.Lock()
	hooks := h.hooks
	h.hooks = nil
	h.mut.Unlock()

	for _, f := range hooks {
		f()
	}
}
