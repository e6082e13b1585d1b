package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/readmecheck/readmecheck/internal/checks"
	"github.com/readmecheck/readmecheck/internal/document"
	"github.com/readmecheck/readmecheck/internal/profile"
	"github.com/readmecheck/readmecheck/internal/reporting"
	"github.com/readmecheck/readmecheck/internal/workspace"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// defaultDocName is the file checked when a target resolves to a directory.
const defaultDocName = "README.md"

func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [path | glob | document-name ...]",
		Short: "Run content checks against README files",
		Long: `Run the readmecheck battery against one or more README files.

Each document is checked independently: title, required sections, overview
table, code examples, install commands, badges, license references, images
and documentation links. Check parameters come from the nearest
.readmecheck.yaml profile unless --profile points at an explicit file.

With no arguments, uses workspace detection to find documents automatically:
  - README.md in the working directory (or up to 10 parents) → that file
  - Multiple */README.md children → checks ALL of them with a summary table

You can also specify targets directly:
  readmecheck check README.md          # explicit file
  readmecheck check docs               # directory (checks docs/README.md)
  readmecheck check 'projects/**'      # glob, expanded with ** support
  readmecheck check plotlars           # document name from the workspace

A missing target file skips its suite instead of failing every check.`,
		Args:          cobra.ArbitraryArgs,
		RunE:          runCheck,
		SilenceErrors: true,
	}
	cmd.Flags().String("format", "text", "Output format: text | json")
	cmd.Flags().String("junit", "", "Write a JUnit XML report to this path")
	cmd.Flags().Int("parallel", 0, "Concurrent check workers per document (default: 4)")
	cmd.Flags().String("profile", "", "Explicit profile file (default: nearest .readmecheck.yaml)")
	cmd.Flags().Bool("interpret", false, "Print a plain-language interpretation of the results")
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	if format != "text" && format != "json" {
		return fmt.Errorf("invalid format %q: expected text or json", format)
	}
	junitPath, err := cmd.Flags().GetString("junit")
	if err != nil {
		return err
	}
	workers, err := cmd.Flags().GetInt("parallel")
	if err != nil {
		return err
	}
	profilePath, err := cmd.Flags().GetString("profile")
	if err != nil {
		return err
	}
	interpret, err := cmd.Flags().GetBool("interpret")
	if err != nil {
		return err
	}

	targets, err := resolveTargets(args)
	if err != nil {
		return err
	}
	slog.Debug("Resolved check targets", "count", len(targets), "targets", targets)

	outcomes, err := checkTargets(cmd.Context(), targets, profilePath, workers)
	if err != nil {
		return err
	}

	if format == "json" {
		if err := outputCheckJSON(cmd, outcomes); err != nil {
			return err
		}
	} else {
		w := cmd.OutOrStdout()
		for i := range outcomes {
			if len(outcomes) > 1 {
				if i > 0 {
					fmt.Fprintln(w) //nolint:errcheck
				}
				fmt.Fprintf(w, "\n=== %s ===\n", outcomes[i].Target) //nolint:errcheck
			}
			displaySuiteOutcome(w, &outcomes[i])
		}
		if len(outcomes) > 1 {
			printCheckSummaryTable(w, outcomes)
		}
		if interpret {
			fmt.Fprintf(w, "\n%s", reporting.FormatSummaryReport(outcomes)) //nolint:errcheck
		}
	}

	if junitPath != "" {
		if err := reporting.WriteJUnitXML(outcomes, junitPath); err != nil {
			return fmt.Errorf("writing JUnit report: %w", err)
		}
		if format == "text" {
			fmt.Fprintf(cmd.OutOrStdout(), "JUnit report saved to: %s\n", junitPath) //nolint:errcheck
		}
	}

	failedDocs := 0
	failedChecks := 0
	for i := range outcomes {
		if outcomes[i].Status == reporting.StatusFailed {
			failedDocs++
			_, f := outcomes[i].Counts()
			failedChecks += f
		}
	}
	if failedDocs > 0 {
		return &CheckFailureError{
			Message: fmt.Sprintf("%d check(s) failed across %d document(s)", failedChecks, failedDocs),
		}
	}
	return nil
}

// resolveTargets turns CLI args into README file paths.
//
// Explicit paths and globs go through target expansion (directories resolve
// to their README.md); bare names are matched against documents detected in
// the workspace. With no args the workspace is detected from the working
// directory: a single document is checked directly, a multi-document root
// checks every README found.
func resolveTargets(args []string) ([]string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}

	if len(args) > 0 {
		resolved := make([]string, 0, len(args))
		var wsCtx *workspace.Context
		for _, arg := range args {
			if workspace.LooksLikePath(arg) || strings.ContainsAny(arg, "*?[{") {
				resolved = append(resolved, arg)
				continue
			}
			// Bare name: match against detected documents before treating it
			// as a path.
			if wsCtx == nil {
				wsCtx, err = workspace.DetectContext(wd)
				if err != nil {
					return nil, fmt.Errorf("detecting workspace: %w", err)
				}
			}
			if di, findErr := workspace.FindDoc(wsCtx, arg); findErr == nil {
				resolved = append(resolved, di.Path)
				continue
			}
			resolved = append(resolved, arg)
		}
		return workspace.ExpandTargets(resolved, defaultDocName)
	}

	wsCtx, err := workspace.DetectContext(wd)
	if err != nil {
		return nil, fmt.Errorf("detecting workspace: %w", err)
	}
	if wsCtx.Type == workspace.ContextNone {
		// Nothing detected. Fall through to the missing-file path so a bare
		// run in an empty directory reports a skipped suite, not an error.
		return []string{filepath.Join(wd, defaultDocName)}, nil
	}
	paths := make([]string, 0, len(wsCtx.Docs))
	for _, d := range wsCtx.Docs {
		paths = append(paths, d.Path)
	}
	return paths, nil
}

// checkTargets runs the battery for every target, documents in parallel.
// Outcomes keep target order regardless of completion order.
func checkTargets(ctx context.Context, targets []string, profilePath string, workers int) ([]reporting.SuiteOutcome, error) {
	outcomes := make([]reporting.SuiteOutcome, len(targets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, target := range targets {
		i, target := i, target // per-iteration copies; the go directive predates Go 1.22 loopvar semantics
		g.Go(func() error {
			outcome, err := checkDocument(gctx, target, profilePath, workers)
			if err != nil {
				return fmt.Errorf("checking %s: %w", target, err)
			}
			outcomes[i] = outcome
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

// checkDocument runs the full battery for one README path.
func checkDocument(ctx context.Context, path, profilePath string, workers int) (reporting.SuiteOutcome, error) {
	prof, err := loadProfile(path, profilePath)
	if err != nil {
		return reporting.SuiteOutcome{}, err
	}

	start := time.Now()
	doc, err := document.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		// A missing README skips the whole suite instead of cascading a
		// failure through every check.
		return reporting.SkippedSuite(displayPath(path), fmt.Sprintf("%s not found", filepath.Base(path))), nil
	}
	if err != nil {
		return reporting.SuiteOutcome{}, err
	}

	checkers, err := checks.Battery(prof)
	if err != nil {
		return reporting.SuiteOutcome{}, fmt.Errorf("building check battery: %w", err)
	}
	slog.Debug("Running check battery", "document", doc.Path, "checks", len(checkers))

	results, err := checks.RunChecksConcurrent(ctx, checkers, doc, workers)
	if err != nil {
		return reporting.SuiteOutcome{}, err
	}

	return reporting.NewSuiteOutcome(displayPath(path), results, time.Since(start)), nil
}

// loadProfile resolves the profile for a document: an explicit --profile
// path wins, otherwise the nearest .readmecheck.yaml above the document.
func loadProfile(docPath, profilePath string) (*profile.Profile, error) {
	if profilePath != "" {
		return profile.LoadFile(profilePath)
	}
	return profile.Load(filepath.Dir(docPath))
}

// displayPath renders a path relative to the working directory when it sits
// underneath it, keeping report output short and stable across machines.
func displayPath(path string) string {
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	if rel, relErr := filepath.Rel(wd, path); relErr == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}

// outputCheckJSON marshals the aggregated report as JSON to the command's
// stdout.
func outputCheckJSON(cmd *cobra.Command, outcomes []reporting.SuiteOutcome) error {
	report := reporting.BuildReport(outcomes)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	_, err := fmt.Fprint(cmd.OutOrStdout(), buf.String())
	return err
}

func printCheckSummaryTable(w writer, outcomes []reporting.SuiteOutcome) {
	const maxNameWidth = 40
	const minNameWidth = 10

	// Compute dynamic column width from the longest target path.
	nameWidth := len("Document")
	for i := range outcomes {
		if runeLen := utf8.RuneCountInString(outcomes[i].Target); runeLen > nameWidth {
			nameWidth = runeLen
		}
	}
	if nameWidth > maxNameWidth {
		nameWidth = maxNameWidth
	}
	if nameWidth < minNameWidth {
		nameWidth = minNameWidth
	}

	// Fixed column widths (display columns) for emoji-safe alignment.
	const colChecks = 8
	const colRate = 10
	const colDuration = 10
	totalWidth := nameWidth + colChecks + colRate + colDuration + len("Status") + 8 // 8 = 4 gaps × 2 spaces

	fmt.Fprintf(w, "\n")                                      //nolint:errcheck
	fmt.Fprintf(w, "%s\n", strings.Repeat("═", totalWidth))   //nolint:errcheck
	fmt.Fprintf(w, " CHECK SUMMARY\n")                        //nolint:errcheck
	fmt.Fprintf(w, "%s\n\n", strings.Repeat("═", totalWidth)) //nolint:errcheck

	fmt.Fprintf(w, "%s  %s  %s  %s  %s\n", //nolint:errcheck
		padRight("Document", nameWidth),
		padRight("Checks", colChecks),
		padRight("Pass Rate", colRate),
		padRight("Duration", colDuration),
		"Status")
	fmt.Fprintf(w, "%s\n", strings.Repeat("─", totalWidth)) //nolint:errcheck

	for i := range outcomes {
		o := &outcomes[i]
		passed, failed := o.Counts()

		status := "✅"
		checksCol := fmt.Sprintf("%d/%d", passed, passed+failed)
		rateCol := fmt.Sprintf("%.0f%%", o.PassRate()*100)
		durationCol := o.Duration.Round(time.Millisecond).String()
		switch o.Status {
		case reporting.StatusFailed:
			status = "❌"
		case reporting.StatusSkipped:
			status = "⏭️"
			checksCol = "—"
			rateCol = "—"
			durationCol = "—"
		}

		fmt.Fprintf(w, "%s  %s  %s  %s  %s\n", //nolint:errcheck
			padRight(truncateTarget(o.Target, nameWidth), nameWidth),
			padRight(checksCol, colChecks),
			padRight(rateCol, colRate),
			padRight(durationCol, colDuration),
			status)
	}
	fmt.Fprintf(w, "\n") //nolint:errcheck
}

// truncateTarget shortens a path to maxLen runes, keeping the tail: the
// file-name end of a path is what distinguishes targets.
func truncateTarget(path string, maxLen int) string {
	runes := []rune(path)
	if len(runes) <= maxLen {
		return path
	}
	return "…" + string(runes[len(runes)-maxLen+1:])
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}

// ---------------------------------------------------------------------------
// Shared display helpers — single source of truth for check output formatting.
//
// Convention:
//   Section header:  "emoji Title: summary\n"
//   Status line:     "   emoji  message\n"   (3-space indent, emoji, 2-space gap)
//   Detail line:     "     📎  detail\n"     (5-space indent for sub-detail)
//
// 3-state icons:  ✅ = passed   ⚠️ = warning   ❌ = failed
// ---------------------------------------------------------------------------

type writer = interface{ Write([]byte) (int, error) }

// writeSection prints a section header: "emoji Title: summary\n".
//
//nolint:errcheck
func writeSection(w writer, emoji, title, summary string) {
	if summary != "" {
		fmt.Fprintf(w, "%s %s: %s\n", emoji, title, summary)
	} else {
		fmt.Fprintf(w, "%s %s\n", emoji, title)
	}
}

// writeStatus prints a status line: "   icon  message\n".
//
//nolint:errcheck
func writeStatus(w writer, icon, message string) {
	fmt.Fprintf(w, "   %s  %s\n", icon, message)
}

// statusIcon returns the standard 3-state icon for the given state.
func statusIcon(state string) string {
	switch state {
	case "ok":
		return "✅"
	case "warning":
		return "⚠️"
	case "error":
		return "❌"
	default:
		return "—"
	}
}

//nolint:errcheck // display function — fmt.Fprintf errors to stdout are not actionable
func displaySuiteOutcome(w writer, o *reporting.SuiteOutcome) {
	fmt.Fprintf(w, "\n🔍 README Content Check\n")
	fmt.Fprintf(w, "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n")
	fmt.Fprintf(w, "Document: %s\n\n", o.Target)

	if o.Status == reporting.StatusSkipped {
		writeSection(w, "⏭️", "Suite Skipped", o.SkipReason)
		writeStatus(w, statusIcon("neutral"), "Nothing to check until the file exists.")
		fmt.Fprintf(w, "\n")
		return
	}

	passed, failed := o.Counts()
	writeSection(w, "📋", "Checks", fmt.Sprintf("%d/%d passed", passed, passed+failed))
	for _, r := range o.Results {
		icon := statusIcon("ok")
		if !r.Passed {
			icon = statusIcon("error")
		}
		writeStatus(w, icon, fmt.Sprintf("[%s] %s", r.Name, r.Summary))
		if !r.Passed {
			for _, d := range r.Details {
				fmt.Fprintf(w, "     📎  %s\n", d)
			}
		}
	}
	fmt.Fprintf(w, "\n")

	if o.Status == reporting.StatusPassed {
		writeSection(w, "✅", "Result", fmt.Sprintf("all %d checks passed in %v", passed, o.Duration.Round(time.Millisecond)))
	} else {
		writeSection(w, "❌", "Result", fmt.Sprintf("%d of %d checks failed", failed, passed+failed))
	}
	fmt.Fprintf(w, "\n")
}
