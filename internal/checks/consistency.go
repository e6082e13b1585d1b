package checks

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/readmecheck/readmecheck/internal/document"
	"github.com/readmecheck/readmecheck/internal/markdown"
)

// minPlotTypes is the default minimum number of distinct documented plot types.
const minPlotTypes = 10

// PlotTypesChecker verifies the documented plot types: display names are taken
// from links under the docs URL prefix, normalized by dropping a trailing
// " Plot" and all interior spaces. The document must name enough distinct
// types and cover every reference type.
type PlotTypesChecker struct {
	DocsPrefix  string   // links under this prefix name plot types
	Reference   []string // types that must each match some name
	MinDistinct int      // 0 means minPlotTypes
}

// PlotTypesData carries the distinct normalized names in first-seen order.
type PlotTypesData struct {
	CheckData
	Names []string
}

var _ Checker = (*PlotTypesChecker)(nil)

func (*PlotTypesChecker) Name() string { return "plot-types" }

func (c *PlotTypesChecker) Check(doc document.Document) (*CheckResult, error) {
	minDistinct := c.MinDistinct
	if minDistinct <= 0 {
		minDistinct = minPlotTypes
	}

	data := &PlotTypesData{}
	seen := map[string]bool{}
	for _, link := range markdown.Links(doc.Content) {
		if !strings.HasPrefix(link.URL, c.DocsPrefix) {
			continue
		}
		name := strings.ReplaceAll(strings.ReplaceAll(link.Text, " Plot", ""), " ", "")
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		data.Names = append(data.Names, name)
	}

	if len(data.Names) < minDistinct {
		data.add(KindInsufficientPlotTypes, fmt.Sprintf("found %d distinct plot type(s), want at least %d", len(data.Names), minDistinct))
	}
	for _, ref := range c.Reference {
		found := false
		for _, name := range data.Names {
			if strings.Contains(strings.ToLower(name), strings.ToLower(ref)) {
				found = true
				break
			}
		}
		if !found {
			data.add(KindMissingPlotType, fmt.Sprintf("plot type %q is not documented", ref))
		}
	}

	if len(data.Failures) > 0 {
		return &CheckResult{
			Name:    c.Name(),
			Passed:  false,
			Summary: "Plot type documentation is incomplete",
			Details: data.messages(),
			Data:    data,
		}, nil
	}
	return &CheckResult{
		Name:    c.Name(),
		Passed:  true,
		Summary: fmt.Sprintf("%d distinct plot types documented, all %d reference types covered", len(data.Names), len(c.Reference)),
		Data:    data,
	}, nil
}

// BadgesChecker verifies registry badges name the canonical package. A badge
// URL whose prefix matches captures the package segment up to the closing
// quote; the segment is trimmed at the first "." so "plotlars.svg" compares
// as "plotlars". Absence of a badge is not a failure.
type BadgesChecker struct {
	Package      string // canonical package name
	CratesPrefix string // crates badge URL prefix
	DocsPrefix   string // docs badge URL prefix
}

// BadgesData carries the package segments found in badge URLs (empty when the
// badge is absent).
type BadgesData struct {
	CheckData
	CratesBadge string
	DocsBadge   string
}

var _ Checker = (*BadgesChecker)(nil)

func (*BadgesChecker) Name() string { return "badges" }

func (c *BadgesChecker) Check(doc document.Document) (*CheckResult, error) {
	data := &BadgesData{}
	data.CratesBadge = c.checkBadge(data, doc.Content, "crates", c.CratesPrefix)
	data.DocsBadge = c.checkBadge(data, doc.Content, "docs", c.DocsPrefix)

	if len(data.Failures) > 0 {
		return &CheckResult{
			Name:    c.Name(),
			Passed:  false,
			Summary: "Badge package names do not match",
			Details: data.messages(),
			Data:    data,
		}, nil
	}
	return &CheckResult{
		Name:    c.Name(),
		Passed:  true,
		Summary: "Badges consistent with package name",
		Data:    data,
	}, nil
}

// checkBadge captures the package segment after prefix and records a
// mismatch failure when it differs from the canonical package. Returns the
// captured segment, or "" when no badge matched.
func (c *BadgesChecker) checkBadge(data *BadgesData, content, badgeKind, prefix string) string {
	re := regexp.MustCompile(regexp.QuoteMeta(prefix) + `([^"\s)]+)`)
	m := re.FindStringSubmatch(content)
	if m == nil {
		return ""
	}
	segment := m[1]
	name := segment
	if dot := strings.IndexByte(name, '.'); dot >= 0 {
		name = name[:dot]
	}
	if name != c.Package {
		data.add(KindBadgeMismatch, fmt.Sprintf("%s badge names %q, want %q", badgeKind, name, c.Package))
	}
	return segment
}

// LicenseChecker verifies the license phrase and its badge fragment both
// appear in the document.
type LicenseChecker struct {
	Phrase string // e.g. "MIT License"
	Badge  string // e.g. "license-MIT-blue"
}

var _ Checker = (*LicenseChecker)(nil)

func (*LicenseChecker) Name() string { return "license" }

func (c *LicenseChecker) Check(doc document.Document) (*CheckResult, error) {
	data := &CheckData{}
	if !strings.Contains(doc.Content, c.Phrase) {
		data.add(KindLicenseMismatch, fmt.Sprintf("%q not mentioned", c.Phrase))
	}
	if !strings.Contains(doc.Content, c.Badge) {
		data.add(KindLicenseMismatch, fmt.Sprintf("license badge fragment %q not found", c.Badge))
	}

	if len(data.Failures) > 0 {
		return &CheckResult{
			Name:    c.Name(),
			Passed:  false,
			Summary: "License information is inconsistent",
			Details: data.messages(),
			Data:    data,
		}, nil
	}
	return &CheckResult{
		Name:    c.Name(),
		Passed:  true,
		Summary: fmt.Sprintf("%s mentioned with badge", c.Phrase),
		Data:    data,
	}, nil
}
