package checks

import (
	"fmt"
	"sort"
	"strings"

	"github.com/readmecheck/readmecheck/internal/document"
	"github.com/readmecheck/readmecheck/internal/markdown"
)

// Default bounds for the document-shape checks.
const (
	minDocumentKB = 5.0
	maxDocumentKB = 50.0

	maxLineLength = 120
	maxLongLines  = 10

	duplicateMinLineLength = 20
	duplicateMaxRepeats    = 3
	duplicateMaxOffenders  = 3
)

// DocumentSizeChecker verifies the document is substantial but not bloated.
type DocumentSizeChecker struct {
	MinKB float64 // 0 means minDocumentKB
	MaxKB float64 // 0 means maxDocumentKB
}

var _ Checker = (*DocumentSizeChecker)(nil)

func (*DocumentSizeChecker) Name() string { return "document-size" }

func (c *DocumentSizeChecker) Check(doc document.Document) (*CheckResult, error) {
	minKB := c.MinKB
	if minKB <= 0 {
		minKB = minDocumentKB
	}
	maxKB := c.MaxKB
	if maxKB <= 0 {
		maxKB = maxDocumentKB
	}

	size := doc.SizeKB()
	data := &CheckData{}
	if size <= minKB {
		data.add(KindDocumentSizeOutOfRange, fmt.Sprintf("document is %.1fKB, want more than %.0fKB", size, minKB))
	}
	if size >= maxKB {
		data.add(KindDocumentSizeOutOfRange, fmt.Sprintf("document is %.1fKB, want less than %.0fKB", size, maxKB))
	}

	if len(data.Failures) > 0 {
		return &CheckResult{
			Name:    c.Name(),
			Passed:  false,
			Summary: fmt.Sprintf("Document size %.1fKB is out of range", size),
			Details: data.messages(),
			Data:    data,
		}, nil
	}
	return &CheckResult{
		Name:    c.Name(),
		Passed:  true,
		Summary: fmt.Sprintf("Document size %.1fKB within %.0f-%.0fKB", size, minKB, maxKB),
		Data:    data,
	}, nil
}

// LineLengthChecker budgets very long lines. Table rows (lines starting with
// "|") are exempt, since the overview table legitimately runs wide.
type LineLengthChecker struct {
	MaxLength int // 0 means maxLineLength
	MaxCount  int // 0 means maxLongLines
}

// LineLengthData reports how many lines exceeded the budget.
type LineLengthData struct {
	CheckData
	LongLines int
}

var _ Checker = (*LineLengthChecker)(nil)

func (*LineLengthChecker) Name() string { return "line-length" }

func (c *LineLengthChecker) Check(doc document.Document) (*CheckResult, error) {
	maxLength := c.MaxLength
	if maxLength <= 0 {
		maxLength = maxLineLength
	}
	maxCount := c.MaxCount
	if maxCount <= 0 {
		maxCount = maxLongLines
	}

	data := &LineLengthData{}
	for _, line := range doc.TextLines() {
		if len(line) > maxLength && !strings.HasPrefix(strings.TrimLeft(line, " \t"), "|") {
			data.LongLines++
		}
	}

	if data.LongLines >= maxCount {
		data.add(KindExcessiveLineLength,
			fmt.Sprintf("%d line(s) exceed %d characters, want fewer than %d", data.LongLines, maxLength, maxCount))
		return &CheckResult{
			Name:    c.Name(),
			Passed:  false,
			Summary: "Too many very long lines",
			Details: data.messages(),
			Data:    data,
		}, nil
	}
	return &CheckResult{
		Name:    c.Name(),
		Passed:  true,
		Summary: fmt.Sprintf("%d line(s) over %d characters (budget %d)", data.LongLines, maxLength, maxCount),
		Data:    data,
	}, nil
}

// DuplicateContentChecker budgets repeated lines. Only substantial lines
// (longer than MinLineLength after trimming) count, so table plumbing and
// blank separators never trip it.
type DuplicateContentChecker struct {
	MinLineLength int // 0 means duplicateMinLineLength
	MaxRepeats    int // repeats above this make a line an offender; 0 means duplicateMaxRepeats
	MaxOffenders  int // offender budget; 0 means duplicateMaxOffenders
}

// DuplicateContentData lists the offending lines.
type DuplicateContentData struct {
	CheckData
	Offenders []string
}

var _ Checker = (*DuplicateContentChecker)(nil)

func (*DuplicateContentChecker) Name() string { return "duplicate-content" }

func (c *DuplicateContentChecker) Check(doc document.Document) (*CheckResult, error) {
	minLen := c.MinLineLength
	if minLen <= 0 {
		minLen = duplicateMinLineLength
	}
	maxRepeats := c.MaxRepeats
	if maxRepeats <= 0 {
		maxRepeats = duplicateMaxRepeats
	}
	maxOffenders := c.MaxOffenders
	if maxOffenders <= 0 {
		maxOffenders = duplicateMaxOffenders
	}

	counts := map[string]int{}
	for _, line := range doc.TextLines() {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) > minLen {
			counts[trimmed]++
		}
	}

	data := &DuplicateContentData{}
	for line, n := range counts {
		if n > maxRepeats {
			data.Offenders = append(data.Offenders, line)
		}
	}
	sort.Strings(data.Offenders)

	if len(data.Offenders) >= maxOffenders {
		for _, line := range data.Offenders {
			data.add(KindDuplicateContent, fmt.Sprintf("line repeated %d times: %q", counts[line], line))
		}
		return &CheckResult{
			Name:    c.Name(),
			Passed:  false,
			Summary: fmt.Sprintf("%d line(s) repeat excessively", len(data.Offenders)),
			Details: data.messages(),
			Data:    data,
		}, nil
	}
	return &CheckResult{
		Name:    c.Name(),
		Passed:  true,
		Summary: "No excessive duplicate content",
		Data:    data,
	}, nil
}

// AcknowledgementsChecker verifies the acknowledgements section credits each
// configured name.
type AcknowledgementsChecker struct {
	Section string // heading name, e.g. "Acknowledgements"
	Names   []string
}

var _ Checker = (*AcknowledgementsChecker)(nil)

func (*AcknowledgementsChecker) Name() string { return "acknowledgements" }

func (c *AcknowledgementsChecker) Check(doc document.Document) (*CheckResult, error) {
	data := &CheckData{}

	body, ok := markdown.SectionBody(doc.Content, c.Section)
	if !ok {
		data.add(KindMissingSection, fmt.Sprintf("section %q not found as a level-2 heading", c.Section))
		return &CheckResult{
			Name:    c.Name(),
			Passed:  false,
			Summary: fmt.Sprintf("No %s section", c.Section),
			Details: data.messages(),
			Data:    data,
		}, nil
	}

	for _, name := range c.Names {
		if !strings.Contains(body, name) {
			data.add(KindMissingAcknowledgement, fmt.Sprintf("%q is not acknowledged", name))
		}
	}

	if len(data.Failures) > 0 {
		return &CheckResult{
			Name:    c.Name(),
			Passed:  false,
			Summary: fmt.Sprintf("%d acknowledgement(s) missing", len(data.Failures)),
			Details: data.messages(),
			Data:    data,
		}, nil
	}
	return &CheckResult{
		Name:    c.Name(),
		Passed:  true,
		Summary: fmt.Sprintf("All %d acknowledgements present", len(c.Names)),
		Data:    data,
	}, nil
}
