package checks

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const builderExample = "```rust\n" +
	"use plotlars::{Plot, ScatterPlot};\n" +
	"use polars::prelude::*;\n" +
	"\n" +
	"fn main() {\n" +
	"    ScatterPlot::builder()\n" +
	"        .data(&dataset)\n" +
	"        .x(\"body_mass_g\")\n" +
	"        .y(\"flipper_length_mm\")\n" +
	"        .build()\n" +
	"        .plot();\n" +
	"}\n" +
	"```\n"

func TestCodeBlockCountChecker(t *testing.T) {
	tests := []struct {
		name    string
		content string
		passed  bool
		rust    int
		bash    int
	}{
		{
			name:    "enough blocks of both languages",
			content: "```rust\nlet a = 1;\n```\n```rust\nlet b = 2;\n```\n```bash\ncargo add plotlars\n```\n```bash\ncargo run --example scatter\n```\n",
			passed:  true,
			rust:    2,
			bash:    2,
		},
		{
			name:    "too few primary blocks",
			content: "```rust\nlet a = 1;\n```\n```bash\ncargo add plotlars\n```\n```bash\ncargo run --example scatter\n```\n",
			passed:  false,
			rust:    1,
			bash:    2,
		},
		{
			name:    "untagged fences do not count",
			content: "```\nlet a = 1;\n```\n```\nlet b = 2;\n```\n",
			passed:  false,
			rust:    0,
			bash:    0,
		},
	}
	checker := &CodeBlockCountChecker{Language: "rust", Shell: "bash"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := checker.Check(makeDoc(tt.content))
			require.NoError(t, err)
			require.Equal(t, tt.passed, result.Passed)
			data, ok := result.Data.(*CodeBlockCountData)
			require.True(t, ok)
			require.Equal(t, tt.rust, data.Counts["rust"])
			require.Equal(t, tt.bash, data.Counts["bash"])
		})
	}
}

func TestCodeSyntaxChecker(t *testing.T) {
	tests := []struct {
		name    string
		content string
		passed  bool
		kinds   []FailureKind
	}{
		{
			name:    "balanced block with proper imports",
			content: builderExample,
			passed:  true,
		},
		{
			name:    "reversed braces still balance by count",
			content: "```rust\nlet weird = \"}{\";\n```\n",
			passed:  true,
		},
		{
			name:    "unbalanced braces",
			content: "```rust\nfn broken() {\n```\n",
			passed:  false,
			kinds:   []FailureKind{KindUnbalancedBraces},
		},
		{
			name:    "main without any use statement",
			content: "```rust\nfn main() {\n    println!(\"hi\");\n}\n```\n",
			passed:  false,
			kinds:   []FailureKind{KindMissingImport},
		},
		{
			name:    "mentions package without importing it",
			content: "```rust\nuse std::fmt;\n\nfn main() {\n    let p = plotlars_version();\n}\n```\n",
			passed:  false,
			kinds:   []FailureKind{KindMissingImport},
		},
		{
			name:    "mentions data library without its prelude",
			content: "```rust\nuse plotlars::Plot;\n\nfn main() {\n    let df = polars_frame();\n}\n```\n",
			passed:  false,
			kinds:   []FailureKind{KindMissingImport},
		},
	}
	checker := &CodeSyntaxChecker{
		Language:      "rust",
		Package:       "plotlars",
		PackageImport: "use plotlars::",
		DataLibrary:   "polars",
		DataImport:    "use polars::prelude::*",
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := checker.Check(makeDoc(tt.content))
			require.NoError(t, err)
			require.Equal(t, tt.passed, result.Passed)
			data, ok := result.Data.(*CodeSyntaxData)
			require.True(t, ok)
			require.Len(t, data.Failures, len(tt.kinds))
			for i, kind := range tt.kinds {
				require.Equal(t, kind, data.Failures[i].Kind)
			}
		})
	}
}

func TestBuilderChainChecker(t *testing.T) {
	calls := []string{".data(", ".x(", ".y(", ".build()", ".plot()"}
	tests := []struct {
		name    string
		content string
		passed  bool
		blocks  int
	}{
		{
			name:    "complete chain",
			content: builderExample,
			passed:  true,
			blocks:  1,
		},
		{
			name:    "chain missing a call",
			content: "```rust\nScatterPlot::builder()\n    .data(&df)\n    .x(\"a\")\n    .y(\"b\")\n    .build();\n```\n",
			passed:  false,
			blocks:  1,
		},
		{
			name:    "no builder example at all",
			content: "```rust\nlet a = 1;\n```\n",
			passed:  false,
			blocks:  0,
		},
		{
			name:    "other builders are not inspected",
			content: "```rust\nBarPlot::builder().build();\n```\n" + builderExample,
			passed:  true,
			blocks:  1,
		},
	}
	checker := &BuilderChainChecker{Language: "rust", Entry: "ScatterPlot::builder()", Calls: calls}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := checker.Check(makeDoc(tt.content))
			require.NoError(t, err)
			require.Equal(t, tt.passed, result.Passed)
			data, ok := result.Data.(*BuilderChainData)
			require.True(t, ok)
			require.Equal(t, tt.blocks, data.BuilderBlocks)
			for _, f := range data.Failures {
				require.Equal(t, KindIncompleteBuilderChain, f.Kind)
			}
		})
	}
}

func TestInstallCommandsChecker(t *testing.T) {
	tests := []struct {
		name    string
		content string
		passed  bool
		details int
	}{
		{
			name:    "both commands documented",
			content: "```bash\ncargo add plotlars\n```\n```bash\ncargo run --example scatter\n```\n",
			passed:  true,
		},
		{
			name:    "both commands in one block",
			content: "```bash\ncargo add plotlars\ncargo run --example scatter\n```\n",
			passed:  true,
		},
		{
			name:    "run-example missing",
			content: "```bash\ncargo add plotlars\n```\n",
			passed:  false,
			details: 1,
		},
		{
			name:    "commands outside shell blocks do not count",
			content: "Run cargo add plotlars and cargo run --example scatter.\n",
			passed:  false,
			details: 2,
		},
	}
	checker := &InstallCommandsChecker{Shell: "bash", AddCommand: "cargo add plotlars", RunExampleCommand: "cargo run --example"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := checker.Check(makeDoc(tt.content))
			require.NoError(t, err)
			require.Equal(t, tt.passed, result.Passed)
			require.Len(t, result.Details, tt.details)
		})
	}
}
