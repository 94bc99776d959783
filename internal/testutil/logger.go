package testutil

import (
	"bytes"
	"log/slog"

	"github.com/preston-bernstein/money-dungeon-web/internal/logging"
)

// NewBufferLogger returns a debug-level text logger tagged with the service
// name, plus the buffer it writes to.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := logging.NewLogger(logging.Config{
		Level:   "debug",
		Service: "money-dungeon-web",
		Output:  &buf,
	})
	return logger, &buf
}
