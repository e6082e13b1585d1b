package checks

import (
	"fmt"
	"strings"

	"github.com/readmecheck/readmecheck/internal/document"
	"github.com/readmecheck/readmecheck/internal/markdown"
)

// ExamplesSectionChecker verifies the document explains how to run the
// example programs: a dedicated section, the examples directory, and the
// run flag all have to appear.
type ExamplesSectionChecker struct {
	Section     string // heading text, e.g. "Running the examples"
	ExamplesDir string // e.g. "examples/"
	RunFlag     string // e.g. "--example"
}

var _ Checker = (*ExamplesSectionChecker)(nil)

func (*ExamplesSectionChecker) Name() string { return "examples-section" }

func (c *ExamplesSectionChecker) Check(doc document.Document) (*CheckResult, error) {
	data := &CheckData{}
	if !markdown.HasHeading(doc.Content, c.Section) {
		data.add(KindMissingExamplesSection, fmt.Sprintf("missing \"## %s\" section", c.Section))
	}
	if !strings.Contains(doc.Content, c.ExamplesDir) {
		data.add(KindMissingExamplesSection, fmt.Sprintf("examples directory %q is never mentioned", c.ExamplesDir))
	}
	if !strings.Contains(doc.Content, c.RunFlag) {
		data.add(KindMissingExamplesSection, fmt.Sprintf("run flag %q is never mentioned", c.RunFlag))
	}

	if len(data.Failures) > 0 {
		return &CheckResult{
			Name:    c.Name(),
			Passed:  false,
			Summary: "Examples section is incomplete",
			Details: data.messages(),
			Data:    data,
		}, nil
	}
	return &CheckResult{
		Name:    c.Name(),
		Passed:  true,
		Summary: "Examples section explains how to run examples",
		Data:    data,
	}, nil
}

// NotebookSectionChecker verifies notebook support is documented. The
// notebook keyword has to appear, and if the kernel tool is named it must be
// linked to its repository.
type NotebookSectionChecker struct {
	Keyword  string // e.g. "Jupyter"
	Tool     string // kernel tool name, e.g. "evcxr"
	ToolLink string // e.g. "https://github.com/evcxr/evcxr"
}

var _ Checker = (*NotebookSectionChecker)(nil)

func (*NotebookSectionChecker) Name() string { return "notebook-section" }

func (c *NotebookSectionChecker) Check(doc document.Document) (*CheckResult, error) {
	data := &CheckData{}
	if !strings.Contains(doc.Content, c.Keyword) {
		data.add(KindMissingNotebookSection, fmt.Sprintf("notebook support (%s) is never mentioned", c.Keyword))
	}
	if strings.Contains(strings.ToLower(doc.Content), strings.ToLower(c.Tool)) && !strings.Contains(doc.Content, c.ToolLink) {
		data.add(KindMissingNotebookSection, fmt.Sprintf("%s is mentioned without linking %s", c.Tool, c.ToolLink))
	}

	if len(data.Failures) > 0 {
		return &CheckResult{
			Name:    c.Name(),
			Passed:  false,
			Summary: "Notebook support is not documented",
			Details: data.messages(),
			Data:    data,
		}, nil
	}
	return &CheckResult{
		Name:    c.Name(),
		Passed:  true,
		Summary: fmt.Sprintf("%s support documented", c.Keyword),
		Data:    data,
	}, nil
}

// FeatureDescriptionsChecker verifies the features section names the data
// library integration and the variety of supported plots.
type FeatureDescriptionsChecker struct {
	Section     string // heading text, e.g. "Features"
	DataLibrary string // e.g. "Polars"
}

var _ Checker = (*FeatureDescriptionsChecker)(nil)

func (*FeatureDescriptionsChecker) Name() string { return "feature-descriptions" }

func (c *FeatureDescriptionsChecker) Check(doc document.Document) (*CheckResult, error) {
	lower := strings.ToLower(doc.Content)

	data := &CheckData{}
	if !markdown.HasHeading(doc.Content, c.Section) {
		data.add(KindMissingSection, fmt.Sprintf("missing \"## %s\" section", c.Section))
	}
	if !strings.Contains(doc.Content, c.DataLibrary) || !strings.Contains(lower, "integration") {
		data.add(KindMissingFeatureDescription, fmt.Sprintf("%s integration is not described", c.DataLibrary))
	}
	if !strings.Contains(lower, "plot") || (!strings.Contains(lower, "types") && !strings.Contains(doc.Content, "Multiple")) {
		data.add(KindMissingFeatureDescription, "plot variety is not described")
	}

	if len(data.Failures) > 0 {
		return &CheckResult{
			Name:    c.Name(),
			Passed:  false,
			Summary: "Feature descriptions are incomplete",
			Details: data.messages(),
			Data:    data,
		}, nil
	}
	return &CheckResult{
		Name:    c.Name(),
		Passed:  true,
		Summary: "Features are described",
		Data:    data,
	}, nil
}

// minComparisonLines is the default line count above which a code block
// counts as a substantial example.
const minComparisonLines = 10

// CodeComparisonChecker verifies the document contrasts plain usage with the
// product and backs the claim with at least one substantial code example.
type CodeComparisonChecker struct {
	Product  string // e.g. "Plotlars"
	Language string // fence language of the code examples
	MinLines int    // 0 means minComparisonLines
}

// CodeComparisonData reports how many substantial code blocks were found.
type CodeComparisonData struct {
	CheckData
	LongBlocks int
}

var _ Checker = (*CodeComparisonChecker)(nil)

func (*CodeComparisonChecker) Name() string { return "code-comparison" }

func (c *CodeComparisonChecker) Check(doc document.Document) (*CheckResult, error) {
	minLines := c.MinLines
	if minLines <= 0 {
		minLines = minComparisonLines
	}

	data := &CodeComparisonData{}
	for _, block := range markdown.FencedBlocks(doc.Content, c.Language) {
		if len(strings.Split(block, "\n")) > minLines {
			data.LongBlocks++
		}
	}

	if !strings.Contains(doc.Content, "without "+c.Product) && !strings.Contains(doc.Content, "using "+c.Product) {
		data.add(KindMissingComparison, fmt.Sprintf("no comparison phrasing (\"without %s\" or \"using %s\")", c.Product, c.Product))
	}
	if data.LongBlocks == 0 {
		data.add(KindMissingComparison, fmt.Sprintf("no %s block longer than %d lines", c.Language, minLines))
	}

	if len(data.Failures) > 0 {
		return &CheckResult{
			Name:    c.Name(),
			Passed:  false,
			Summary: "No before/after code comparison",
			Details: data.messages(),
			Data:    data,
		}, nil
	}
	return &CheckResult{
		Name:    c.Name(),
		Passed:  true,
		Summary: fmt.Sprintf("Comparison backed by %d substantial example(s)", data.LongBlocks),
		Data:    data,
	}, nil
}
