package checks

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/readmecheck/readmecheck/internal/document"
)

func makeDoc(content string) document.Document {
	return document.FromString("README.md", content)
}

func TestTitleChecker(t *testing.T) {
	tests := []struct {
		name    string
		content string
		passed  bool
	}{
		{
			name:    "title heading on first line",
			content: "# Plotlars\n\nPlotting for Rust.\n",
			passed:  true,
		},
		{
			name:    "product mentioned in prose within window",
			content: "# Charts\n\nPlotlars wraps Plotly for Polars users.\n",
			passed:  true,
		},
		{
			name:    "product only mentioned beyond the window",
			content: strings.Repeat("filler line\n", 10) + "# Plotlars\n",
			passed:  false,
		},
		{
			name:    "product absent",
			content: "# Something Else\n\nNo mention at all.\n",
			passed:  false,
		},
	}
	checker := &TitleChecker{Product: "Plotlars"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := checker.Check(makeDoc(tt.content))
			require.NoError(t, err)
			require.Equal(t, tt.passed, result.Passed)
			if !tt.passed {
				data, ok := result.Data.(FailureHolder)
				require.True(t, ok)
				require.Len(t, data.GetFailures(), 1)
				require.Equal(t, KindMissingTitle, data.GetFailures()[0].Kind)
			}
		})
	}
}

func TestTitleCheckerCustomWindow(t *testing.T) {
	checker := &TitleChecker{Product: "Plotlars", Window: 2}
	result, err := checker.Check(makeDoc("one\ntwo\nPlotlars\n"))
	require.NoError(t, err)
	require.False(t, result.Passed)
}

func TestSectionsChecker(t *testing.T) {
	sections := []string{"Motivation", "Installation", "License"}
	tests := []struct {
		name    string
		content string
		passed  bool
		missing []string
	}{
		{
			name:    "all sections present",
			content: "## Motivation\ntext\n## Installation\ntext\n## License\ntext\n",
			passed:  true,
		},
		{
			name:    "one section missing",
			content: "## Motivation\ntext\n## License\ntext\n",
			passed:  false,
			missing: []string{"Installation"},
		},
		{
			name:    "level-3 heading does not count",
			content: "### Motivation\ntext\n## Installation\ntext\n## License\ntext\n",
			passed:  false,
			missing: []string{"Motivation"},
		},
		{
			name:    "longer heading does not count",
			content: "## Motivation and Goals\ntext\n## Installation\ntext\n## License\ntext\n",
			passed:  false,
			missing: []string{"Motivation"},
		},
		{
			name:    "inline mention does not count",
			content: "Our ## Motivation is speed\n## Installation\ntext\n## License\ntext\n",
			passed:  false,
			missing: []string{"Motivation"},
		},
		{
			name:    "every section missing is reported",
			content: "just prose\n",
			passed:  false,
			missing: []string{"Motivation", "Installation", "License"},
		},
	}
	checker := &SectionsChecker{Sections: sections}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := checker.Check(makeDoc(tt.content))
			require.NoError(t, err)
			require.Equal(t, tt.passed, result.Passed)
			data, ok := result.Data.(*SectionsData)
			require.True(t, ok)
			require.Equal(t, tt.missing, data.Missing)
			for _, f := range data.Failures {
				require.Equal(t, KindMissingSection, f.Kind)
			}
		})
	}
}

const overviewHeader = "| Plot | Example | Plot | Example | Plot | Example |"
const overviewSeparator = "|------|:---------:|------|:---------:|------|:---------:|"

func overviewCell(name string) string {
	return "| [" + name + "] | <img src=\"https://imgur.com/" + name + ".png\" width=\"100\" height=\"100\"> "
}

// overviewRow builds a three-pair data row. The row pattern consumes the pipe
// between adjacent pairs, so a three-pair row yields two matches.
func overviewRow(a, b, c string) string {
	return overviewCell(a) + overviewCell(b) + overviewCell(c) + "|\n"
}

func TestOverviewTableChecker(t *testing.T) {
	var table strings.Builder
	table.WriteString(overviewHeader + "\n" + overviewSeparator + "\n")
	table.WriteString(overviewRow("a", "b", "c"))
	table.WriteString(overviewRow("d", "e", "f"))
	table.WriteString(overviewRow("g", "h", "i"))

	tests := []struct {
		name    string
		content string
		passed  bool
		rows    int
	}{
		{
			name:    "complete table",
			content: table.String(),
			passed:  true,
			rows:    6,
		},
		{
			name:    "header missing",
			content: overviewSeparator + "\n" + overviewRow("a", "b", "c") + overviewRow("d", "e", "f") + overviewRow("g", "h", "i"),
			passed:  false,
			rows:    6,
		},
		{
			name:    "not enough rows",
			content: overviewHeader + "\n" + overviewSeparator + "\n" + overviewRow("a", "b", "c") + overviewRow("d", "e", "f"),
			passed:  false,
			rows:    4,
		},
		{
			name:    "no table at all",
			content: "prose only\n",
			passed:  false,
			rows:    0,
		},
	}
	checker := &OverviewTableChecker{Header: overviewHeader, Separator: overviewSeparator}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := checker.Check(makeDoc(tt.content))
			require.NoError(t, err)
			require.Equal(t, tt.passed, result.Passed)
			data, ok := result.Data.(*OverviewTableData)
			require.True(t, ok)
			require.Equal(t, tt.rows, data.Rows)
			for _, f := range data.Failures {
				require.Equal(t, KindInsufficientRows, f.Kind)
			}
		})
	}
}

func TestOverviewTableCheckerMinRowsOption(t *testing.T) {
	content := overviewHeader + "\n" + overviewSeparator + "\n" + overviewRow("a", "b", "c")
	checker := &OverviewTableChecker{Header: overviewHeader, Separator: overviewSeparator, MinRows: 2}
	result, err := checker.Check(makeDoc(content))
	require.NoError(t, err)
	require.True(t, result.Passed)
}
