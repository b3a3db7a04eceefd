package gate

import (
	"fmt"
	"strings"
	"testing"
)

func TestFormatReport_EmptyIsNoOp(t *testing.T) {
	if got := FormatReport(nil, "npx tsc --noEmit"); got != "" {
		t.Fatalf("FormatReport(nil) = %q, want empty", got)
	}
	if got := FormatReport([]string{}, "npx tsc --noEmit"); got != "" {
		t.Fatalf("FormatReport([]) = %q, want empty", got)
	}
}

func TestFormatReport_BelowThresholdShowsAllLines(t *testing.T) {
	lines := []string{
		"a.ts(1,1): error TS2322: bad type",
		"b.ts(2,2): error TS2339: no prop",
		"c.ts(3,3): error TS2345: bad arg",
		"d.ts(4,4): error TS7006: implicit any",
	}
	got := FormatReport(lines, "npx tsc --noEmit")

	for _, line := range lines {
		if !strings.Contains(got, line) {
			t.Errorf("report missing line %q:\n%s", line, got)
		}
	}
	if strings.Contains(got, "complete list") {
		t.Error("report below threshold should not suggest the full build")
	}
}

func TestFormatReport_ThresholdFencepost(t *testing.T) {
	line := func(i int) string {
		return fmt.Sprintf("f%d.ts(%d,1): error TS2322: e%d", i, i, i)
	}

	four := FormatReport([]string{line(1), line(2), line(3), line(4)}, "npx tsc --noEmit")
	for i := 1; i <= 4; i++ {
		if !strings.Contains(four, line(i)) {
			t.Errorf("4-line report should show every diagnostic verbatim, missing %q", line(i))
		}
	}
	if strings.Contains(four, "complete list") {
		t.Error("4-line report should not be truncated")
	}

	five := FormatReport([]string{line(1), line(2), line(3), line(4), line(5)}, "npx tsc --noEmit")
	if !strings.Contains(five, "5 Type Errors Detected") {
		t.Errorf("5-line report should state the exact count, got:\n%s", five)
	}
	if !strings.Contains(five, "complete list") {
		t.Error("5-line report should suggest the full build")
	}
	if strings.Contains(five, "e4") || strings.Contains(five, "e5") {
		t.Errorf("5-line report should show only the first three lines, got:\n%s", five)
	}
}

func TestFormatReport_AboveThresholdTruncates(t *testing.T) {
	var lines []string
	for i := 1; i <= 7; i++ {
		lines = append(lines, fmt.Sprintf("f%d.ts(%d,1): error TS2322: e%d", i, i, i))
	}
	got := FormatReport(lines, "npx tsc --noEmit")

	if !strings.Contains(got, "7 Type Errors Detected") {
		t.Errorf("report should state the exact total count, got:\n%s", got)
	}
	if !strings.Contains(got, "Run `npx tsc --noEmit` for the complete list.") {
		t.Errorf("report should suggest the full build command, got:\n%s", got)
	}
	for i := 1; i <= 3; i++ {
		if !strings.Contains(got, fmt.Sprintf("e%d", i)) {
			t.Errorf("report should show line %d, got:\n%s", i, got)
		}
	}
	for i := 4; i <= 7; i++ {
		if strings.Contains(got, fmt.Sprintf("e%d", i)) {
			t.Errorf("report should not show line %d, got:\n%s", i, got)
		}
	}
}

func TestFormatReport_UsesBannerFrame(t *testing.T) {
	got := FormatReport([]string{"a.ts(1,1): error TS2322: x"}, "npx tsc --noEmit")
	if !strings.Contains(got, "╔") || !strings.Contains(got, "╚") {
		t.Errorf("report should use the shared banner frame, got:\n%s", got)
	}
}
