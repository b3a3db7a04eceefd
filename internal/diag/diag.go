// Package diag writes hook diagnostics to stderr and, when enabled, to an
// append-only debug log. Hook stdout is a data channel consumed by the host
// CLI, so diagnostics must never reach it.
package diag

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

var (
	// invocationID ties together the log lines of one hook run; each hook
	// is a short-lived process, so one ID per process is enough.
	invocationID = uuid.New().String()[:8]

	logger = log.New(os.Stderr, "skillgate: ", 0)

	debugPath string
)

// EnableDebug turns on file logging. Lines are appended to
// skillgate-debug.log under dir.
func EnableDebug(dir string) {
	debugPath = filepath.Join(dir, "skillgate-debug.log")
}

// Logf writes one diagnostic line to stderr and to the debug log when
// enabled. Debug write failures are ignored: diagnostics are best-effort.
func Logf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Printf("[%s] %s", invocationID, msg)

	if debugPath == "" {
		return
	}
	f, err := os.OpenFile(debugPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer f.Close()
	fmt.Fprintf(f, "[%s] [%s] %s\n", time.Now().Format(time.RFC3339), invocationID, msg)
}
