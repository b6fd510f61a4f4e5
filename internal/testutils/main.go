package testutils

import (
	"os"
	"os/signal"
	"syscall"
	"testing"

	"garden-planner-backend/internal/logger"
)

// RunWithSharedContainer runs m and purges the shared Postgres container
// afterwards, including when the run is interrupted.
func RunWithSharedContainer(m *testing.M) int {
	log := logger.New().WithField("component", "testutils")

	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupted)

	go func() {
		if _, ok := <-interrupted; !ok {
			return
		}
		log.Warn("integration run interrupted, purging postgres container")
		CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()
	log.WithField("exit_code", code).Info("integration run finished, purging postgres container")
	CleanupSharedContainer()
	return code
}
