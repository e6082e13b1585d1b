package checks

import (
	"fmt"
	"strings"

	"github.com/readmecheck/readmecheck/internal/document"
	"github.com/readmecheck/readmecheck/internal/markdown"
)

// minCodeBlocks is the default minimum number of fenced blocks per language.
const minCodeBlocks = 2

// CodeBlockCountChecker requires a minimum number of fenced code blocks for
// both the primary language and the shell language.
type CodeBlockCountChecker struct {
	Language string // primary language tag, e.g. "rust"
	Shell    string // shell language tag, e.g. "bash"
	MinCount int    // 0 means minCodeBlocks
}

// CodeBlockCountData reports how many blocks were found per language tag.
type CodeBlockCountData struct {
	CheckData
	Counts map[string]int
}

var _ Checker = (*CodeBlockCountChecker)(nil)

func (*CodeBlockCountChecker) Name() string { return "code-block-count" }

func (c *CodeBlockCountChecker) Check(doc document.Document) (*CheckResult, error) {
	minCount := c.MinCount
	if minCount <= 0 {
		minCount = minCodeBlocks
	}

	data := &CodeBlockCountData{Counts: map[string]int{}}
	for _, lang := range []string{c.Language, c.Shell} {
		n := len(markdown.FencedBlocks(doc.Content, lang))
		data.Counts[lang] = n
		if n < minCount {
			data.add(KindInsufficientExamples, fmt.Sprintf("found %d %s code block(s), want at least %d", n, lang, minCount))
		}
	}

	if len(data.Failures) > 0 {
		return &CheckResult{
			Name:    c.Name(),
			Passed:  false,
			Summary: "Not enough code examples",
			Details: data.messages(),
			Data:    data,
		}, nil
	}
	return &CheckResult{
		Name:    c.Name(),
		Passed:  true,
		Summary: fmt.Sprintf("%d %s and %d %s code blocks", data.Counts[c.Language], c.Language, data.Counts[c.Shell], c.Shell),
		Data:    data,
	}, nil
}

// CodeSyntaxChecker runs per-block syntax heuristics over the primary-language
// blocks: brace counts must balance, and blocks with an entry point must
// import what they use.
//
// Brace balance is a pure count equality, not a nesting check: a block
// containing "}{" balances even though it is invalid syntax. That is the
// contract; do not strengthen it.
type CodeSyntaxChecker struct {
	Language      string // primary language tag
	Package       string // package name whose mention requires PackageImport
	PackageImport string // e.g. "use plotlars::"
	DataLibrary   string // data library whose mention requires DataImport
	DataImport    string // e.g. "use polars::prelude::*"
}

// CodeSyntaxData reports how many primary blocks were scanned.
type CodeSyntaxData struct {
	CheckData
	Blocks int
}

var _ Checker = (*CodeSyntaxChecker)(nil)

func (*CodeSyntaxChecker) Name() string { return "code-block-syntax" }

func (c *CodeSyntaxChecker) Check(doc document.Document) (*CheckResult, error) {
	blocks := markdown.FencedBlocks(doc.Content, c.Language)
	data := &CodeSyntaxData{Blocks: len(blocks)}

	for i, block := range blocks {
		opens := strings.Count(block, "{")
		closes := strings.Count(block, "}")
		if opens != closes {
			data.add(KindUnbalancedBraces, fmt.Sprintf("block %d has %d '{' but %d '}'", i+1, opens, closes))
		}

		if strings.Contains(block, "main()") && !strings.Contains(block, "use ") {
			data.add(KindMissingImport, fmt.Sprintf("block %d defines main() without a use statement", i+1))
		}

		if !strings.Contains(block, "fn main()") {
			continue
		}
		lower := strings.ToLower(block)
		if c.Package != "" && strings.Contains(lower, strings.ToLower(c.Package)) && !strings.Contains(block, c.PackageImport) {
			data.add(KindMissingImport, fmt.Sprintf("block %d mentions %s but does not import %q", i+1, c.Package, c.PackageImport))
		}
		if c.DataLibrary != "" && strings.Contains(lower, strings.ToLower(c.DataLibrary)) && !strings.Contains(block, c.DataImport) {
			data.add(KindMissingImport, fmt.Sprintf("block %d mentions %s but does not import %q", i+1, c.DataLibrary, c.DataImport))
		}
	}

	if len(data.Failures) > 0 {
		return &CheckResult{
			Name:    c.Name(),
			Passed:  false,
			Summary: fmt.Sprintf("%d syntax issue(s) across %d %s block(s)", len(data.Failures), data.Blocks, c.Language),
			Details: data.messages(),
			Data:    data,
		}, nil
	}
	return &CheckResult{
		Name:    c.Name(),
		Passed:  true,
		Summary: fmt.Sprintf("All %d %s block(s) pass syntax heuristics", data.Blocks, c.Language),
		Data:    data,
	}, nil
}

// BuilderChainChecker verifies builder-API usage: every primary-language
// block invoking the builder entry point must chain all required calls, in
// any order, and at least one such block must exist.
type BuilderChainChecker struct {
	Language string   // primary language tag
	Entry    string   // builder entry point, e.g. "ScatterPlot::builder()"
	Calls    []string // required chained calls, e.g. ".data(", ".build()"
}

// BuilderChainData reports how many builder examples were found.
type BuilderChainData struct {
	CheckData
	BuilderBlocks int
}

var _ Checker = (*BuilderChainChecker)(nil)

func (*BuilderChainChecker) Name() string { return "builder-chain" }

func (c *BuilderChainChecker) Check(doc document.Document) (*CheckResult, error) {
	data := &BuilderChainData{}
	for i, block := range markdown.FencedBlocks(doc.Content, c.Language) {
		if !strings.Contains(block, c.Entry) {
			continue
		}
		data.BuilderBlocks++
		for _, call := range c.Calls {
			if !strings.Contains(block, call) {
				data.add(KindIncompleteBuilderChain, fmt.Sprintf("block %d invokes %s but never calls %s", i+1, c.Entry, call))
			}
		}
	}

	if data.BuilderBlocks == 0 {
		data.add(KindIncompleteBuilderChain, fmt.Sprintf("no code example invokes %s", c.Entry))
	}

	if len(data.Failures) > 0 {
		return &CheckResult{
			Name:    c.Name(),
			Passed:  false,
			Summary: "Builder examples are incomplete",
			Details: data.messages(),
			Data:    data,
		}, nil
	}
	return &CheckResult{
		Name:    c.Name(),
		Passed:  true,
		Summary: fmt.Sprintf("%d builder example(s) chain all %d required calls", data.BuilderBlocks, len(c.Calls)),
		Data:    data,
	}, nil
}

// InstallCommandsChecker verifies the shell blocks document installation: at
// least one block carries the package-manager add command and at least one
// the run-example form.
type InstallCommandsChecker struct {
	Shell             string // shell language tag
	AddCommand        string // e.g. "cargo add plotlars"
	RunExampleCommand string // e.g. "cargo run --example"
}

var _ Checker = (*InstallCommandsChecker)(nil)

func (*InstallCommandsChecker) Name() string { return "install-commands" }

func (c *InstallCommandsChecker) Check(doc document.Document) (*CheckResult, error) {
	blocks := markdown.FencedBlocks(doc.Content, c.Shell)

	hasAdd, hasRun := false, false
	for _, block := range blocks {
		if strings.Contains(block, c.AddCommand) {
			hasAdd = true
		}
		if strings.Contains(block, c.RunExampleCommand) {
			hasRun = true
		}
	}

	data := &CheckData{}
	if !hasAdd {
		data.add(KindMissingInstallCommand, fmt.Sprintf("no %s block contains %q (add)", c.Shell, c.AddCommand))
	}
	if !hasRun {
		data.add(KindMissingInstallCommand, fmt.Sprintf("no %s block contains %q (run-example)", c.Shell, c.RunExampleCommand))
	}

	if len(data.Failures) > 0 {
		return &CheckResult{
			Name:    c.Name(),
			Passed:  false,
			Summary: "Installation commands are missing",
			Details: data.messages(),
			Data:    data,
		}, nil
	}
	return &CheckResult{
		Name:    c.Name(),
		Passed:  true,
		Summary: "Add and run-example commands documented",
		Data:    data,
	}, nil
}
