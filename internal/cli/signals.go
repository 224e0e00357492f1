package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
)

// signalHandler cancels the browse session on SIGINT/SIGTERM.
type signalHandler struct {
	sigChan chan os.Signal
}

func newSignalHandler() *signalHandler {
	sh := &signalHandler{
		sigChan: make(chan os.Signal, 1),
	}

	signal.Notify(sh.sigChan, syscall.SIGINT, syscall.SIGTERM)

	return sh
}

// handleSignals waits for a shutdown signal and cancels the context
func (sh *signalHandler) handleSignals(ctx context.Context, cancel context.CancelFunc) {
	go func() {
		select {
		case sig := <-sh.sigChan:
			log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
			cancel()
		case <-ctx.Done():
		}
	}()
}

func (sh *signalHandler) stop() {
	signal.Stop(sh.sigChan)
}
