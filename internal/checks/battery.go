package checks

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/readmecheck/readmecheck/internal/document"
	"github.com/readmecheck/readmecheck/internal/profile"
)

// Battery builds the full battery of checkers parameterized by p, in display
// order. Checks listed in the profile's skip list are left out, and per-check
// options from the profile's checks map are decoded onto each checker.
func Battery(p *profile.Profile) ([]Checker, error) {
	title := cases.Title(language.English)

	all := []Checker{
		&TitleChecker{Product: p.Product},
		&SectionsChecker{Sections: p.Sections},
		&OverviewTableChecker{Header: p.Table.Header, Separator: p.Table.Separator},
		&CodeBlockCountChecker{Language: p.Language, Shell: p.Shell},
		&CodeSyntaxChecker{
			Language:      p.Language,
			Package:       p.Package,
			PackageImport: fmt.Sprintf("use %s::", p.Package),
			DataLibrary:   p.DataLibrary,
			DataImport:    fmt.Sprintf("use %s::prelude::*", p.DataLibrary),
		},
		&BuilderChainChecker{Language: p.Language, Entry: p.Builder.Entry, Calls: p.Builder.Calls},
		&InstallCommandsChecker{Shell: p.Shell, AddCommand: p.Install.AddCommand, RunExampleCommand: p.Install.RunExampleCommand},
		&PlotTypesChecker{DocsPrefix: p.Docs.Prefix, Reference: p.PlotTypes},
		&BadgesChecker{Package: p.Package, CratesPrefix: p.Badges.CratesPrefix, DocsPrefix: p.Badges.DocsPrefix},
		&LicenseChecker{Phrase: p.License.Name, Badge: p.License.Badge},
		&ImageSrcChecker{Host: p.Images.Host},
		&ImageCountChecker{Host: p.Images.Host},
		&ThumbnailSizeChecker{},
		&AcknowledgementsChecker{Section: "Acknowledgements", Names: p.Acknowledgements},
		&DocumentSizeChecker{},
		&LineLengthChecker{},
		&DuplicateContentChecker{},
		&RepositoryLinksChecker{},
		&LinkExtractionChecker{},
		&ExamplesSectionChecker{Section: p.Examples.Section, ExamplesDir: p.Examples.Dir, RunFlag: p.Examples.RunFlag},
		&NotebookSectionChecker{Keyword: p.Notebook.Keyword, Tool: p.Notebook.Tool, ToolLink: p.Notebook.ToolURL},
		&FeatureDescriptionsChecker{Section: "Features", DataLibrary: title.String(p.DataLibrary)},
		&CodeComparisonChecker{Product: p.Product, Language: p.Language},
		&DocLinksChecker{LatestPrefix: p.Docs.LatestPrefix},
		&BadgeFormatChecker{Host: p.Badges.Host},
	}

	battery := make([]Checker, 0, len(all))
	for _, c := range all {
		if p.Skips(c.Name()) {
			continue
		}
		if err := p.DecodeCheckOptions(c.Name(), c); err != nil {
			return nil, err
		}
		battery = append(battery, c)
	}
	return battery, nil
}

// RunChecks executes each checker against doc, collecting results and errors.
// A checker error does not stop the run; the remaining checkers still execute.
func RunChecks(checkers []Checker, doc document.Document) ([]*CheckResult, error) {
	var (
		errs    []error
		results []*CheckResult
	)
	for _, c := range checkers {
		r, err := c.Check(doc)
		if err != nil {
			errs = append(errs, fmt.Errorf("check %s: %w", c.Name(), err))
			continue
		}
		results = append(results, r)
	}
	return results, errors.Join(errs...)
}

// RunChecksConcurrent executes the checkers against doc with at most workers
// goroutines in flight. Results come back in checker order regardless of
// completion order. workers <= 0 means 4.
func RunChecksConcurrent(ctx context.Context, checkers []Checker, doc document.Document, workers int) ([]*CheckResult, error) {
	if workers <= 0 {
		workers = 4
	}

	type result struct {
		index int
		res   *CheckResult
		err   error
	}

	resultChan := make(chan result, len(checkers))
	semaphore := make(chan struct{}, workers)

	var wg sync.WaitGroup

	for i, c := range checkers {
		wg.Add(1)
		go func(idx int, checker Checker) {
			defer wg.Done()

			if err := ctx.Err(); err != nil {
				resultChan <- result{index: idx, err: err}
				return
			}

			select {
			case semaphore <- struct{}{}:
			case <-ctx.Done():
				resultChan <- result{index: idx, err: ctx.Err()}
				return
			}
			defer func() { <-semaphore }()

			r, err := checker.Check(doc)
			if err != nil {
				err = fmt.Errorf("check %s: %w", checker.Name(), err)
			}
			resultChan <- result{index: idx, res: r, err: err}
		}(i, c)
	}

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	ordered := make([]*CheckResult, len(checkers))
	errs := make([]error, len(checkers))
	for r := range resultChan {
		ordered[r.index] = r.res
		errs[r.index] = r.err
	}

	var results []*CheckResult
	for _, r := range ordered {
		if r != nil {
			results = append(results, r)
		}
	}
	return results, errors.Join(errs...)
}
