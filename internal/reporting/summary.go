package reporting

import (
	"fmt"
	"strings"
	"time"
)

// InterpretHealth returns a plain-language label for a pass rate (0–1).
func InterpretHealth(rate float64) string {
	pct := rate * 100
	switch {
	case pct > 90:
		return "Excellent (>90%)"
	case pct >= 70:
		return "Good (70-90%)"
	case pct >= 50:
		return "Needs Work (50-70%)"
	default:
		return "Poor (<50%)"
	}
}

// InterpretPassRate returns a human-readable explanation of a pass rate (0–1).
func InterpretPassRate(rate float64) string {
	pct := rate * 100
	switch {
	case pct >= 100:
		return fmt.Sprintf("All checks passed (%.0f%%)", pct)
	case pct >= 80:
		return fmt.Sprintf("Most checks passed (%.0f%%)", pct)
	case pct >= 50:
		return fmt.Sprintf("About half the checks passed (%.0f%%)", pct)
	default:
		return fmt.Sprintf("Few checks passed (%.0f%%)", pct)
	}
}

// FormatSummaryReport produces a full plain-language report from suite outcomes.
func FormatSummaryReport(outcomes []SuiteOutcome) string {
	var b strings.Builder

	var (
		totalPassed, totalFailed int
		skipped                  int
		totalDuration            time.Duration
	)
	for _, o := range outcomes {
		passed, failed := o.Counts()
		totalPassed += passed
		totalFailed += failed
		totalDuration += o.Duration
		if o.Status == StatusSkipped {
			skipped++
		}
	}
	totalChecks := totalPassed + totalFailed

	b.WriteString("=== Interpretation ===\n\n")

	docLine := fmt.Sprintf("Documents: %d checked", len(outcomes)-skipped)
	if skipped > 0 {
		docLine += fmt.Sprintf(", %d skipped", skipped)
	}
	b.WriteString(docLine + "\n")

	if totalChecks > 0 {
		rate := float64(totalPassed) / float64(totalChecks)
		b.WriteString(fmt.Sprintf("Checks:    %d passed, %d failed out of %d total\n",
			totalPassed, totalFailed, totalChecks))
		b.WriteString(fmt.Sprintf("Pass Rate: %s\n", InterpretPassRate(rate)))
		b.WriteString(fmt.Sprintf("Health:    %s\n", InterpretHealth(rate)))
	}
	b.WriteString(fmt.Sprintf("Duration:  %v\n", totalDuration))

	// Per-document interpretation
	if len(outcomes) > 0 {
		b.WriteString("\nPer-Document Interpretation:\n")
		for _, o := range outcomes {
			switch o.Status {
			case StatusSkipped:
				b.WriteString(fmt.Sprintf("  - %s: skipped (%s)\n", o.Target, o.SkipReason))
			case StatusFailed:
				passed, failed := o.Counts()
				b.WriteString(fmt.Sprintf("  ✗ %s: %d/%d checks passed\n", o.Target, passed, passed+failed))
				for _, r := range o.Results {
					if !r.Passed {
						b.WriteString(fmt.Sprintf("      %s: %s\n", r.Name, r.Summary))
					}
				}
			default:
				passed, _ := o.Counts()
				b.WriteString(fmt.Sprintf("  ✓ %s: all %d checks passed\n", o.Target, passed))
			}
		}
	}

	return b.String()
}
