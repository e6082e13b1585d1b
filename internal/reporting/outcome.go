// Package reporting turns check results into the shapes the CLI emits:
// suite outcomes, aggregate JSON reports, JUnit XML, and the plain-language
// summary.
package reporting

import (
	"time"

	"github.com/readmecheck/readmecheck/internal/checks"
)

// Suite status values.
const (
	StatusPassed  = "passed"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"
)

// SuiteOutcome is the result of running the check battery against one README.
type SuiteOutcome struct {
	Target     string // path of the README the suite ran against
	Status     string
	SkipReason string // set only when Status is StatusSkipped
	Results    []*checks.CheckResult
	Duration   time.Duration
	Timestamp  time.Time
}

// NewSuiteOutcome builds an outcome from completed check results. The suite
// passes only when every check passed.
func NewSuiteOutcome(target string, results []*checks.CheckResult, duration time.Duration) SuiteOutcome {
	status := StatusPassed
	for _, r := range results {
		if !r.Passed {
			status = StatusFailed
			break
		}
	}
	return SuiteOutcome{
		Target:    target,
		Status:    status,
		Results:   results,
		Duration:  duration,
		Timestamp: time.Now(),
	}
}

// SkippedSuite builds an outcome for a README that could not be checked at
// all, e.g. because the file does not exist. A skipped suite is not a failure.
func SkippedSuite(target, reason string) SuiteOutcome {
	return SuiteOutcome{
		Target:     target,
		Status:     StatusSkipped,
		SkipReason: reason,
		Timestamp:  time.Now(),
	}
}

// Counts returns how many checks passed and failed.
func (o *SuiteOutcome) Counts() (passed, failed int) {
	for _, r := range o.Results {
		if r.Passed {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}

// PassRate returns the fraction of checks that passed, 0–1. A suite with no
// results has a pass rate of 0.
func (o *SuiteOutcome) PassRate() float64 {
	passed, failed := o.Counts()
	total := passed + failed
	if total == 0 {
		return 0
	}
	return float64(passed) / float64(total)
}

// Report is the top-level JSON output shape.
type Report struct {
	Timestamp time.Time     `json:"timestamp"`
	Digest    Digest        `json:"digest"`
	Suites    []SuiteReport `json:"suites"`
}

// Digest aggregates counts across every suite in a run.
type Digest struct {
	Suites     int     `json:"suites"`
	Skipped    int     `json:"skipped_suites"`
	Checks     int     `json:"checks"`
	Passed     int     `json:"passed"`
	Failed     int     `json:"failed"`
	PassRate   float64 `json:"pass_rate"`
	DurationMs int64   `json:"duration_ms"`
}

// SuiteReport is the JSON shape of one suite outcome.
type SuiteReport struct {
	Target     string        `json:"target"`
	Status     string        `json:"status"`
	SkipReason string        `json:"skip_reason,omitempty"`
	DurationMs int64         `json:"duration_ms"`
	Checks     []CheckReport `json:"checks,omitempty"`
}

// CheckReport is the JSON shape of one check result.
type CheckReport struct {
	Name     string          `json:"name"`
	Passed   bool            `json:"passed"`
	Summary  string          `json:"summary"`
	Details  []string        `json:"details,omitempty"`
	Failures []FailureReport `json:"failures,omitempty"`
}

// FailureReport is the JSON shape of one taxonomy failure.
type FailureReport struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// BuildReport converts suite outcomes into the JSON report shape.
func BuildReport(outcomes []SuiteOutcome) *Report {
	report := &Report{
		Timestamp: time.Now(),
		Suites:    make([]SuiteReport, 0, len(outcomes)),
	}

	for _, o := range outcomes {
		passed, failed := o.Counts()
		sr := SuiteReport{
			Target:     o.Target,
			Status:     o.Status,
			SkipReason: o.SkipReason,
			DurationMs: o.Duration.Milliseconds(),
		}
		for _, r := range o.Results {
			sr.Checks = append(sr.Checks, buildCheckReport(r))
		}
		report.Suites = append(report.Suites, sr)

		report.Digest.Suites++
		if o.Status == StatusSkipped {
			report.Digest.Skipped++
		}
		report.Digest.Checks += passed + failed
		report.Digest.Passed += passed
		report.Digest.Failed += failed
		report.Digest.DurationMs += o.Duration.Milliseconds()
	}

	if report.Digest.Checks > 0 {
		report.Digest.PassRate = float64(report.Digest.Passed) / float64(report.Digest.Checks)
	}
	return report
}

func buildCheckReport(r *checks.CheckResult) CheckReport {
	cr := CheckReport{
		Name:    r.Name,
		Passed:  r.Passed,
		Summary: r.Summary,
		Details: r.Details,
	}
	if holder, ok := r.Data.(checks.FailureHolder); ok {
		for _, f := range holder.GetFailures() {
			cr.Failures = append(cr.Failures, FailureReport{
				Kind:    string(f.Kind),
				Message: f.Message,
			})
		}
	}
	return cr
}
