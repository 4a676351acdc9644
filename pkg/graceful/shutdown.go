// Package graceful sequences shutdown: background components stop before the
// HTTP server drains, so no request observes a half-stopped service.
package graceful

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/superapp/advisor-service/pkg/logger"
)

// StopFunc stops one component within the given context's deadline.
type StopFunc func(ctx context.Context) error

type component struct {
	name string
	stop StopFunc
}

// ShutdownManager coordinates shutdown of the HTTP server and registered
// components on SIGINT/SIGTERM.
type ShutdownManager struct {
	server     *http.Server
	components []component
	timeout    time.Duration
	logger     *logger.Logger
}

func NewShutdownManager(server *http.Server, timeout time.Duration, log *logger.Logger) *ShutdownManager {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ShutdownManager{server: server, timeout: timeout, logger: log}
}

// Register adds a component to stop before the server drains. Components stop
// in registration order.
func (sm *ShutdownManager) Register(name string, stop StopFunc) {
	sm.components = append(sm.components, component{name: name, stop: stop})
}

// WaitForShutdown blocks until a termination signal, then stops components
// and drains the server.
func (sm *ShutdownManager) WaitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	sm.logger.Info("Shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), sm.timeout)
	defer cancel()

	for _, c := range sm.components {
		sm.logger.Info("Stopping component", "component", c.name)
		if err := c.stop(ctx); err != nil {
			sm.logger.Warn("Component shutdown error", "component", c.name, "error", err)
		}
	}

	if err := sm.server.Shutdown(ctx); err != nil {
		sm.logger.Error("Server forced shutdown", "error", err)
	}

	sm.logger.Info("Shutdown complete")
}
