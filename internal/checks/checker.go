// Package checks provides the Checker interface and the battery of README
// content checks. Every checker is a pure predicate over an immutable
// document.Document: no check mutates the document, depends on another
// check's result, or performs I/O.
package checks

import "github.com/readmecheck/readmecheck/internal/document"

// CheckResult holds the outcome of a single README check.
type CheckResult struct {
	// Name is a stable check identifier used in output and downstream processing.
	Name string
	// Passed indicates whether the check met its acceptance criteria.
	Passed bool
	// Summary is a human-readable one-line result intended for concise display.
	Summary string
	// Details provides optional supporting lines for diagnostics or remediation.
	Details []string
	// Data carries an optional checker-specific payload for structured consumers.
	Data any
}

// Checker runs a single README content check.
type Checker interface {
	Name() string
	Check(document.Document) (*CheckResult, error)
}

// FailureKind identifies the category of a failed check diagnostic.
type FailureKind string

const (
	KindMissingFile                 FailureKind = "MissingFile"
	KindMissingTitle                FailureKind = "MissingTitle"
	KindMissingSection              FailureKind = "MissingSection"
	KindInsufficientRows            FailureKind = "InsufficientRows"
	KindInsufficientExamples        FailureKind = "InsufficientExamples"
	KindUnbalancedBraces            FailureKind = "UnbalancedBraces"
	KindMissingImport               FailureKind = "MissingImport"
	KindIncompleteBuilderChain      FailureKind = "IncompleteBuilderChain"
	KindMissingInstallCommand       FailureKind = "MissingInstallCommand"
	KindMissingPlotType             FailureKind = "MissingPlotType"
	KindInsufficientPlotTypes       FailureKind = "InsufficientPlotTypes"
	KindBadgeMismatch               FailureKind = "BadgeMismatch"
	KindLicenseMismatch             FailureKind = "LicenseMismatch"
	KindImageMissingSrc             FailureKind = "ImageMissingSrc"
	KindImageMissingAlt             FailureKind = "ImageMissingAlt"
	KindInsufficientImages          FailureKind = "InsufficientImages"
	KindInconsistentThumbnailSizing FailureKind = "InconsistentThumbnailSizing"
	KindDocumentSizeOutOfRange      FailureKind = "DocumentSizeOutOfRange"
	KindExcessiveLineLength         FailureKind = "ExcessiveLineLength"
	KindDuplicateContent            FailureKind = "DuplicateContent"
	KindMalformedRepositoryLink     FailureKind = "MalformedRepositoryLink"
	KindNoLinksFound                FailureKind = "NoLinksFound"
	KindMissingExamplesSection      FailureKind = "MissingExamplesSection"
	KindMissingNotebookSection      FailureKind = "MissingNotebookSection"
	KindMissingFeatureDescription   FailureKind = "MissingFeatureDescription"
	KindMissingComparison           FailureKind = "MissingComparison"
	KindInsufficientDocLinks        FailureKind = "InsufficientDocLinks"
	KindMalformedBadges             FailureKind = "MalformedBadges"
	KindMissingAcknowledgement      FailureKind = "MissingAcknowledgement"
)

// Failure pairs a taxonomy kind with its diagnostic message. A failing check
// reports every violation it found, not just the first.
type Failure struct {
	Kind    FailureKind
	Message string
}

// FailureHolder is implemented by check Data types that carry taxonomy failures.
type FailureHolder interface {
	GetFailures() []Failure
}

// CheckData is the common Data payload: the taxonomy failures for the check.
// Checks with richer structured output embed it.
type CheckData struct {
	Failures []Failure
}

// GetFailures implements FailureHolder.
func (d *CheckData) GetFailures() []Failure { return d.Failures }

func (d *CheckData) add(kind FailureKind, message string) {
	d.Failures = append(d.Failures, Failure{Kind: kind, Message: message})
}

// messages flattens the failure list into display lines for CheckResult.Details.
func (d *CheckData) messages() []string {
	if len(d.Failures) == 0 {
		return nil
	}
	lines := make([]string, 0, len(d.Failures))
	for _, f := range d.Failures {
		lines = append(lines, f.Message)
	}
	return lines
}
