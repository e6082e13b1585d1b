package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpretHealth(t *testing.T) {
	tests := []struct {
		name string
		rate float64
		want string
	}{
		{"excellent high", 0.95, "Excellent (>90%)"},
		{"excellent boundary", 0.91, "Excellent (>90%)"},
		{"good high", 0.90, "Good (70-90%)"},
		{"good mid", 0.80, "Good (70-90%)"},
		{"good low", 0.70, "Good (70-90%)"},
		{"needs work high", 0.69, "Needs Work (50-70%)"},
		{"needs work low", 0.50, "Needs Work (50-70%)"},
		{"poor high", 0.49, "Poor (<50%)"},
		{"poor zero", 0.0, "Poor (<50%)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InterpretHealth(tt.rate)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInterpretPassRate(t *testing.T) {
	tests := []struct {
		name string
		rate float64
		want string
	}{
		{"all passed", 1.0, "All checks passed (100%)"},
		{"most passed", 0.85, "Most checks passed (85%)"},
		{"about half", 0.60, "About half the checks passed (60%)"},
		{"few passed", 0.30, "Few checks passed (30%)"},
		{"none passed", 0.0, "Few checks passed (0%)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InterpretPassRate(tt.rate)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatSummaryReport(t *testing.T) {
	report := FormatSummaryReport(sampleOutcomes())

	assert.Contains(t, report, "=== Interpretation ===")
	assert.Contains(t, report, "Documents: 1 checked, 1 skipped")
	assert.Contains(t, report, "Checks:    2 passed, 1 failed out of 3 total")
	assert.Contains(t, report, "Pass Rate: About half the checks passed (67%)")
	assert.Contains(t, report, "Health:    Needs Work (50-70%)")

	// Per-document lines
	assert.Contains(t, report, "✗ proj/README.md: 2/3 checks passed")
	assert.Contains(t, report, "license: license references incomplete")
	assert.Contains(t, report, "- missing/README.md: skipped (README.md not found)")
}

func TestFormatSummaryReport_AllPassed(t *testing.T) {
	outcomes := sampleOutcomes()[:1]
	for _, r := range outcomes[0].Results {
		r.Passed = true
	}
	outcomes[0].Status = StatusPassed

	report := FormatSummaryReport(outcomes)

	assert.Contains(t, report, "Pass Rate: All checks passed (100%)")
	assert.Contains(t, report, "✓ proj/README.md: all 3 checks passed")
	assert.NotContains(t, report, "✗")
}
