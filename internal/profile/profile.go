// Package profile provides the Profile struct and loader for .readmecheck.yaml
// project-level configuration files. A profile names the product a README is
// expected to document (package name, registry commands, documentation URL
// prefixes, required sections) and the checks are parameterized by it.
package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the profile file searched for by Load.
const ConfigFileName = ".readmecheck.yaml"

// Default values for the profile. New() references these and no other
// code should duplicate them.
const (
	DefaultProduct     = "Plotlars"
	DefaultPackage     = "plotlars"
	DefaultLanguage    = "rust"
	DefaultShell       = "bash"
	DefaultDataLibrary = "polars"

	DefaultLicenseName  = "MIT License"
	DefaultLicenseBadge = "license-MIT-blue"

	DefaultDocsPrefix       = "https://docs.rs/plotlars/"
	DefaultDocsLatestPrefix = "https://docs.rs/plotlars/latest/plotlars/"

	DefaultBadgeHost         = "https://img.shields.io/"
	DefaultCratesBadgePrefix = "https://img.shields.io/crates/v/"
	DefaultDocsBadgePrefix   = "https://img.shields.io/docsrs/"

	DefaultImageHost = "imgur.com"

	DefaultTableHeader    = "| Plot | Example | Plot | Example | Plot | Example |"
	DefaultTableSeparator = "|------|:---------:|------|:---------:|------|:---------:|"

	DefaultBuilderEntry = "ScatterPlot::builder()"

	DefaultAddCommand        = "cargo add plotlars"
	DefaultRunExampleCommand = "cargo run --example"

	DefaultNotebookKeyword = "Jupyter"
	DefaultNotebookTool    = "evcxr"
	DefaultNotebookToolURL = "https://github.com/evcxr/evcxr"

	DefaultExamplesSection = "Running the examples"
	DefaultExamplesDir     = "examples/"
	DefaultExamplesRunFlag = "--example"
)

// Default slice values. Callers must not mutate these; New() copies them.
var (
	DefaultSections         = []string{"Motivation", "Installation", "Features", "License", "Acknowledgements"}
	DefaultPlotTypes        = []string{"Array2D", "Bar", "Box", "Scatter", "Line", "Histogram"}
	DefaultAcknowledgements = []string{"Polars", "Plotly", "Evcxr", "Rust Community"}
	DefaultBuilderCalls     = []string{".data(", ".x(", ".y(", ".build()", ".plot()"}
)

// LicenseConfig names the license phrase and badge fragment the README must carry.
type LicenseConfig struct {
	Name  string `yaml:"name,omitempty"`
	Badge string `yaml:"badge,omitempty"`
}

// DocsConfig holds documentation URL prefixes.
type DocsConfig struct {
	Prefix       string `yaml:"prefix,omitempty"`
	LatestPrefix string `yaml:"latest_prefix,omitempty"`
}

// BadgesConfig holds badge URL prefixes.
type BadgesConfig struct {
	Host         string `yaml:"host,omitempty"`
	CratesPrefix string `yaml:"crates_prefix,omitempty"`
	DocsPrefix   string `yaml:"docs_prefix,omitempty"`
}

// ImagesConfig names the external image host for example screenshots.
type ImagesConfig struct {
	Host string `yaml:"host,omitempty"`
}

// TableConfig holds the literal overview-table header and separator rows.
type TableConfig struct {
	Header    string `yaml:"header,omitempty"`
	Separator string `yaml:"separator,omitempty"`
}

// BuilderConfig names the builder entry point and the calls every builder
// example must chain.
type BuilderConfig struct {
	Entry string   `yaml:"entry,omitempty"`
	Calls []string `yaml:"calls,omitempty"`
}

// InstallConfig holds the package-manager command forms.
type InstallConfig struct {
	AddCommand        string `yaml:"add_command,omitempty"`
	RunExampleCommand string `yaml:"run_example_command,omitempty"`
}

// NotebookConfig holds the notebook-integration keyword and tool link.
type NotebookConfig struct {
	Keyword string `yaml:"keyword,omitempty"`
	Tool    string `yaml:"tool,omitempty"`
	ToolURL string `yaml:"tool_url,omitempty"`
}

// ExamplesConfig holds the examples-section heading and the strings that
// prove the README explains how to run the examples.
type ExamplesConfig struct {
	Section string `yaml:"section,omitempty"`
	Dir     string `yaml:"dir,omitempty"`
	RunFlag string `yaml:"run_flag,omitempty"`
}

// Profile is the top-level configuration loaded from .readmecheck.yaml.
type Profile struct {
	Product     string `yaml:"product,omitempty"`
	Package     string `yaml:"package,omitempty"`
	Language    string `yaml:"language,omitempty"`
	Shell       string `yaml:"shell,omitempty"`
	DataLibrary string `yaml:"data_library,omitempty"`

	Sections         []string `yaml:"sections,omitempty"`
	PlotTypes        []string `yaml:"plot_types,omitempty"`
	Acknowledgements []string `yaml:"acknowledgements,omitempty"`

	License  LicenseConfig  `yaml:"license,omitempty"`
	Docs     DocsConfig     `yaml:"docs,omitempty"`
	Badges   BadgesConfig   `yaml:"badges,omitempty"`
	Images   ImagesConfig   `yaml:"images,omitempty"`
	Table    TableConfig    `yaml:"table,omitempty"`
	Builder  BuilderConfig  `yaml:"builder,omitempty"`
	Install  InstallConfig  `yaml:"install,omitempty"`
	Notebook NotebookConfig `yaml:"notebook,omitempty"`
	Examples ExamplesConfig `yaml:"examples,omitempty"`

	// Checks maps a check name to its option overrides. Each checker decodes
	// its own options struct from the map, so unknown checks are rejected by
	// the schema rather than silently ignored here.
	Checks map[string]map[string]any `yaml:"checks,omitempty"`

	// Skip lists check names excluded from the battery.
	Skip []string `yaml:"skip,omitempty"`
}

// New returns a Profile with all hard-coded defaults populated.
func New() *Profile {
	return &Profile{
		Product:          DefaultProduct,
		Package:          DefaultPackage,
		Language:         DefaultLanguage,
		Shell:            DefaultShell,
		DataLibrary:      DefaultDataLibrary,
		Sections:         append([]string(nil), DefaultSections...),
		PlotTypes:        append([]string(nil), DefaultPlotTypes...),
		Acknowledgements: append([]string(nil), DefaultAcknowledgements...),
		License: LicenseConfig{
			Name:  DefaultLicenseName,
			Badge: DefaultLicenseBadge,
		},
		Docs: DocsConfig{
			Prefix:       DefaultDocsPrefix,
			LatestPrefix: DefaultDocsLatestPrefix,
		},
		Badges: BadgesConfig{
			Host:         DefaultBadgeHost,
			CratesPrefix: DefaultCratesBadgePrefix,
			DocsPrefix:   DefaultDocsBadgePrefix,
		},
		Images: ImagesConfig{
			Host: DefaultImageHost,
		},
		Table: TableConfig{
			Header:    DefaultTableHeader,
			Separator: DefaultTableSeparator,
		},
		Builder: BuilderConfig{
			Entry: DefaultBuilderEntry,
			Calls: append([]string(nil), DefaultBuilderCalls...),
		},
		Install: InstallConfig{
			AddCommand:        DefaultAddCommand,
			RunExampleCommand: DefaultRunExampleCommand,
		},
		Notebook: NotebookConfig{
			Keyword: DefaultNotebookKeyword,
			Tool:    DefaultNotebookTool,
			ToolURL: DefaultNotebookToolURL,
		},
		Examples: ExamplesConfig{
			Section: DefaultExamplesSection,
			Dir:     DefaultExamplesDir,
			RunFlag: DefaultExamplesRunFlag,
		},
	}
}

// Load finds .readmecheck.yaml by walking up from startDir (max 10 levels),
// validates it against the embedded schema, unmarshals it, and fills in
// missing fields with defaults. If no profile file is found, returns defaults
// with a nil error. Real I/O errors (e.g. permission denied) are returned to
// the caller.
func Load(startDir string) (*Profile, error) {
	data, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return New(), nil // no file found → return defaults
		}
		return nil, fmt.Errorf("loading %s: %w", ConfigFileName, err)
	}
	return parse(data)
}

// LoadFile loads a profile from an explicit path, bypassing the walk-up
// search. Used by the --profile flag.
func LoadFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading profile %s: %w", path, err)
	}
	return parse(data)
}

func parse(data []byte) (*Profile, error) {
	if schemaErrs := ValidateProfileBytes(data); len(schemaErrs) > 0 {
		return nil, fmt.Errorf("invalid profile:\n  %s", strings.Join(schemaErrs, "\n  "))
	}

	var fileProfile Profile
	if err := yaml.Unmarshal(data, &fileProfile); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ConfigFileName, err)
	}

	// Merge file values onto defaults.
	p := New()
	merge(p, &fileProfile)
	return p, nil
}

// findConfigFile walks up from dir looking for .readmecheck.yaml (max 10
// levels). Returns os.ErrNotExist if no profile file is found. Propagates
// real I/O errors (e.g. permission denied) instead of silently swallowing them.
func findConfigFile(dir string) ([]byte, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < 10; i++ {
		p := filepath.Join(dir, ConfigFileName)
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return nil, os.ErrNotExist
}

// merge overlays non-zero values from src onto dst.
func merge(dst, src *Profile) {
	if src.Product != "" {
		dst.Product = src.Product
	}
	if src.Package != "" {
		dst.Package = src.Package
	}
	if src.Language != "" {
		dst.Language = src.Language
	}
	if src.Shell != "" {
		dst.Shell = src.Shell
	}
	if src.DataLibrary != "" {
		dst.DataLibrary = src.DataLibrary
	}

	if len(src.Sections) > 0 {
		dst.Sections = src.Sections
	}
	if len(src.PlotTypes) > 0 {
		dst.PlotTypes = src.PlotTypes
	}
	if len(src.Acknowledgements) > 0 {
		dst.Acknowledgements = src.Acknowledgements
	}

	if src.License.Name != "" {
		dst.License.Name = src.License.Name
	}
	if src.License.Badge != "" {
		dst.License.Badge = src.License.Badge
	}

	if src.Docs.Prefix != "" {
		dst.Docs.Prefix = src.Docs.Prefix
	}
	if src.Docs.LatestPrefix != "" {
		dst.Docs.LatestPrefix = src.Docs.LatestPrefix
	}

	if src.Badges.Host != "" {
		dst.Badges.Host = src.Badges.Host
	}
	if src.Badges.CratesPrefix != "" {
		dst.Badges.CratesPrefix = src.Badges.CratesPrefix
	}
	if src.Badges.DocsPrefix != "" {
		dst.Badges.DocsPrefix = src.Badges.DocsPrefix
	}

	if src.Images.Host != "" {
		dst.Images.Host = src.Images.Host
	}

	if src.Table.Header != "" {
		dst.Table.Header = src.Table.Header
	}
	if src.Table.Separator != "" {
		dst.Table.Separator = src.Table.Separator
	}

	if src.Builder.Entry != "" {
		dst.Builder.Entry = src.Builder.Entry
	}
	if len(src.Builder.Calls) > 0 {
		dst.Builder.Calls = src.Builder.Calls
	}

	if src.Install.AddCommand != "" {
		dst.Install.AddCommand = src.Install.AddCommand
	}
	if src.Install.RunExampleCommand != "" {
		dst.Install.RunExampleCommand = src.Install.RunExampleCommand
	}

	if src.Notebook.Keyword != "" {
		dst.Notebook.Keyword = src.Notebook.Keyword
	}
	if src.Notebook.Tool != "" {
		dst.Notebook.Tool = src.Notebook.Tool
	}
	if src.Notebook.ToolURL != "" {
		dst.Notebook.ToolURL = src.Notebook.ToolURL
	}

	if src.Examples.Section != "" {
		dst.Examples.Section = src.Examples.Section
	}
	if src.Examples.Dir != "" {
		dst.Examples.Dir = src.Examples.Dir
	}
	if src.Examples.RunFlag != "" {
		dst.Examples.RunFlag = src.Examples.RunFlag
	}

	if src.Checks != nil {
		dst.Checks = src.Checks
	}
	if len(src.Skip) > 0 {
		dst.Skip = src.Skip
	}
}

// DecodeCheckOptions decodes the option map configured for the named check
// into out. Option keys are snake_case and match struct fields with the
// underscores stripped ("min_rows" sets MinRows). Fields absent from the map
// keep their current values, so callers pre-populate out with defaults.
// Returns nil when no options are configured.
func (p *Profile) DecodeCheckOptions(name string, out any) error {
	raw, ok := p.Checks[name]
	if !ok {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		ErrorUnused: true,
		MatchName: func(mapKey, fieldName string) bool {
			return strings.EqualFold(strings.ReplaceAll(mapKey, "_", ""), fieldName)
		},
	})
	if err != nil {
		return fmt.Errorf("decoding options for check %q: %w", name, err)
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("decoding options for check %q: %w", name, err)
	}
	return nil
}

// Skips reports whether the named check is excluded by this profile.
func (p *Profile) Skips(name string) bool {
	for _, s := range p.Skip {
		if s == name {
			return true
		}
	}
	return false
}
