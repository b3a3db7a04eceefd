package gate

import (
	"fmt"
	"strings"

	"github.com/andywolf/skillgate/internal/banner"
)

const (
	// reportThreshold is the diagnostic count at or above which the report
	// is truncated to the first reportShown lines.
	reportThreshold = 5
	reportShown     = 3
)

// FormatReport converts raw diagnostic lines into the bounded report written
// to stdout by the post-edit hook. Returns "" when there is nothing to say.
func FormatReport(lines []string, buildCmd string) string {
	if len(lines) == 0 {
		return ""
	}

	var b strings.Builder
	if len(lines) < reportThreshold {
		b.WriteString("⚠️ Type Errors Detected\n\n```\n")
		for _, line := range lines {
			b.WriteString(line)
			b.WriteByte('\n')
		}
		b.WriteString("```")
	} else {
		fmt.Fprintf(&b, "⚠️ %d Type Errors Detected\n\n", len(lines))
		fmt.Fprintf(&b, "Run `%s` for the complete list.\n\n```\n", buildCmd)
		for _, line := range lines[:reportShown] {
			b.WriteString(line)
			b.WriteByte('\n')
		}
		b.WriteString("```")
	}

	return banner.Render(b.String())
}
