package checks

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/readmecheck/readmecheck/internal/document"
	"github.com/readmecheck/readmecheck/internal/markdown"
)

// titleWindowLines is how many leading lines the title check scans.
const titleWindowLines = 10

// TitleChecker verifies the product name appears near the top of the document.
type TitleChecker struct {
	Product string // product name, e.g. "Plotlars"
	Window  int    // lines scanned from the top; 0 means titleWindowLines
}

var _ Checker = (*TitleChecker)(nil)

func (*TitleChecker) Name() string { return "readme-title" }

func (c *TitleChecker) Check(doc document.Document) (*CheckResult, error) {
	window := c.Window
	if window <= 0 {
		window = titleWindowLines
	}

	lines := doc.TextLines()
	if len(lines) > window {
		lines = lines[:window]
	}

	for _, line := range lines {
		if strings.TrimSpace(line) == "# "+c.Product || strings.Contains(line, c.Product) {
			return &CheckResult{
				Name:    c.Name(),
				Passed:  true,
				Summary: fmt.Sprintf("Title mentions %s", c.Product),
				Data:    &CheckData{},
			}, nil
		}
	}

	data := &CheckData{}
	data.add(KindMissingTitle, fmt.Sprintf("%q not found in the first %d lines", c.Product, window))
	return &CheckResult{
		Name:    c.Name(),
		Passed:  false,
		Summary: fmt.Sprintf("Title does not mention %s", c.Product),
		Details: data.messages(),
		Data:    data,
	}, nil
}

// SectionsChecker verifies each configured section appears as a level-2
// heading on its own line. "### Motivation" does not satisfy "Motivation",
// and neither does a longer heading that merely starts with it.
type SectionsChecker struct {
	Sections []string
}

// SectionsData lists the section names absent from the document.
type SectionsData struct {
	CheckData
	Missing []string
}

var _ Checker = (*SectionsChecker)(nil)

func (*SectionsChecker) Name() string { return "required-sections" }

func (c *SectionsChecker) Check(doc document.Document) (*CheckResult, error) {
	data := &SectionsData{}
	for _, section := range c.Sections {
		if !markdown.HasHeading(doc.Content, section) {
			data.Missing = append(data.Missing, section)
			data.add(KindMissingSection, fmt.Sprintf("section %q not found as a level-2 heading", section))
		}
	}

	if len(data.Missing) > 0 {
		return &CheckResult{
			Name:    c.Name(),
			Passed:  false,
			Summary: fmt.Sprintf("%d required section(s) missing: %s", len(data.Missing), strings.Join(data.Missing, ", ")),
			Details: data.messages(),
			Data:    data,
		}, nil
	}
	return &CheckResult{
		Name:    c.Name(),
		Passed:  true,
		Summary: fmt.Sprintf("All %d required sections present", len(c.Sections)),
		Data:    data,
	}, nil
}

// tableRowPattern matches an overview-table data row: a markdown link cell
// followed by an image cell.
var tableRowPattern = regexp.MustCompile(`\| \[.*?\] \| <img.*?> \|`)

// minTableRows is the default minimum number of overview-table data rows.
const minTableRows = 5

// OverviewTableChecker verifies the plot overview table: the literal header
// and separator rows must be present verbatim, and enough data rows must
// match the link-plus-image pattern.
type OverviewTableChecker struct {
	Header    string
	Separator string
	MinRows   int // 0 means minTableRows
}

// OverviewTableData reports what the table scan found.
type OverviewTableData struct {
	CheckData
	HeaderFound    bool
	SeparatorFound bool
	Rows           int
}

var _ Checker = (*OverviewTableChecker)(nil)

func (*OverviewTableChecker) Name() string { return "overview-table" }

func (c *OverviewTableChecker) Check(doc document.Document) (*CheckResult, error) {
	minRows := c.MinRows
	if minRows <= 0 {
		minRows = minTableRows
	}

	data := &OverviewTableData{
		HeaderFound:    strings.Contains(doc.Content, c.Header),
		SeparatorFound: strings.Contains(doc.Content, c.Separator),
		Rows:           len(tableRowPattern.FindAllString(doc.Content, -1)),
	}
	if !data.HeaderFound {
		data.add(KindInsufficientRows, "overview table header row not found")
	}
	if !data.SeparatorFound {
		data.add(KindInsufficientRows, "overview table separator row not found")
	}
	if data.Rows < minRows {
		data.add(KindInsufficientRows, fmt.Sprintf("found %d table row(s), want at least %d", data.Rows, minRows))
	}

	if len(data.Failures) > 0 {
		return &CheckResult{
			Name:    c.Name(),
			Passed:  false,
			Summary: "Overview table is incomplete",
			Details: data.messages(),
			Data:    data,
		}, nil
	}
	return &CheckResult{
		Name:    c.Name(),
		Passed:  true,
		Summary: fmt.Sprintf("Overview table present with %d rows", data.Rows),
		Data:    data,
	}, nil
}
