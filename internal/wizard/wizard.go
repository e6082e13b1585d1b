// Package wizard implements the interactive profile scaffolding behind
// `readmecheck init`.
package wizard

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// ProfileSpec holds all fields collected during the interactive wizard.
type ProfileSpec struct {
	Product          string
	Package          string
	Language         string
	Shell            string
	DataLibrary      string
	LicenseName      string
	LicenseBadge     string
	Sections         []string
	PlotTypes        []string
	Acknowledgements []string
}

const profileTemplate = `# readmecheck profile, generated by readmecheck init.
# Every field is optional; anything left out falls back to a built-in default.

product: {{ .Product }}
package: {{ .Package }}
language: {{ .Language }}
shell: {{ .Shell }}
data_library: {{ .DataLibrary }}
{{- if .Sections }}

# Level-2 headings the README must carry.
sections:
{{- range .Sections }}
  - {{ . }}
{{- end }}
{{- end }}
{{- if .PlotTypes }}

# Plot type names the documentation list must cover.
plot_types:
{{- range .PlotTypes }}
  - {{ . }}
{{- end }}
{{- end }}
{{- if .Acknowledgements }}

# Names the acknowledgements section must credit.
acknowledgements:
{{- range .Acknowledgements }}
  - {{ . }}
{{- end }}
{{- end }}

license:
  name: {{ .LicenseName }}
  badge: {{ .LicenseBadge }}

# Documentation and install commands derive from the package name. Adjust
# these if your project publishes somewhere else.
docs:
  prefix: https://docs.rs/{{ .Package }}/
  latest_prefix: https://docs.rs/{{ .Package }}/latest/{{ .Package }}/
install:
  add_command: cargo add {{ .Package }}

# Per-check option overrides, for example:
# checks:
#   overview-table:
#     min_rows: 3
#
# Checks to leave out entirely:
# skip:
#   - notebook-section
`

// DefaultProfileSpec returns the spec the wizard starts from. `init
// --defaults` writes it untouched; the interactive form edits it field by
// field.
func DefaultProfileSpec() *ProfileSpec {
	name, badge := licenseParts("MIT")
	return &ProfileSpec{
		Product:      "Plotlars",
		Package:      "plotlars",
		Language:     "rust",
		Shell:        "bash",
		DataLibrary:  "polars",
		LicenseName:  name,
		LicenseBadge: badge,
		Sections:     []string{"Motivation", "Installation", "Features", "License", "Acknowledgements"},
		PlotTypes:    []string{"Scatter", "Line", "Bar", "Box", "Histogram", "Array2D"},
	}
}

// RunProfileWizard runs an interactive huh form to collect profile fields.
// If initialProduct is non-empty, it pre-populates the product field.
func RunProfileWizard(in io.Reader, out io.Writer, initialProduct string) (*ProfileSpec, error) {
	defaults := DefaultProfileSpec()
	var (
		product             = initialProduct
		pkg                 string
		language            = defaults.Language
		shell               = defaults.Shell
		dataLibrary         = defaults.DataLibrary
		licenseKey          = "MIT"
		sectionsRaw         = strings.Join(defaults.Sections, ", ")
		plotTypesRaw        = strings.Join(defaults.PlotTypes, ", ")
		acknowledgementsRaw string
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Product name").
				Description("The display name the README title must carry").
				Placeholder("Plotlars").
				Value(&product).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("product name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Package name").
				Description("The registry package the README documents").
				Placeholder("plotlars").
				Value(&pkg).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("package name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Code block language").
				Value(&language),
			huh.NewInput().
				Title("Shell block language").
				Value(&shell),
			huh.NewInput().
				Title("Data library").
				Description("The DataFrame library examples must import").
				Value(&dataLibrary),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("License").
				Options(
					huh.NewOption("MIT", "MIT"),
					huh.NewOption("Apache-2.0", "Apache-2.0"),
					huh.NewOption("BSD-3-Clause", "BSD-3-Clause"),
				).
				Value(&licenseKey),
			huh.NewInput().
				Title("Required sections").
				Description("Comma-separated level-2 headings").
				Value(&sectionsRaw),
			huh.NewInput().
				Title("Plot types").
				Description("Comma-separated names the docs list must cover").
				Value(&plotTypesRaw),
			huh.NewInput().
				Title("Acknowledgements").
				Description("Comma-separated names to credit (optional)").
				Placeholder("Polars, Plotly, Rust Community").
				Value(&acknowledgementsRaw),
		),
	).
		WithInput(in).
		WithOutput(out)

	// Use accessible mode for non-TTY input (e.g., tests, piped input).
	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	licenseName, licenseBadge := licenseParts(licenseKey)

	return &ProfileSpec{
		Product:          strings.TrimSpace(product),
		Package:          strings.TrimSpace(pkg),
		Language:         strings.TrimSpace(language),
		Shell:            strings.TrimSpace(shell),
		DataLibrary:      strings.TrimSpace(dataLibrary),
		LicenseName:      licenseName,
		LicenseBadge:     licenseBadge,
		Sections:         splitAndTrim(sectionsRaw),
		PlotTypes:        splitAndTrim(plotTypesRaw),
		Acknowledgements: splitAndTrim(acknowledgementsRaw),
	}, nil
}

// GenerateProfileYAML renders a commented .readmecheck.yaml from the given spec.
func GenerateProfileYAML(spec *ProfileSpec) (string, error) {
	tmpl, err := template.New("profile").Parse(profileTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, spec); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}
	return buf.String(), nil
}

// licenseParts maps a license key to the README phrase and shields.io badge
// fragment the checks look for. Dashes in badge text are doubled, per the
// shields.io static badge escaping rules.
func licenseParts(key string) (name, badge string) {
	switch key {
	case "Apache-2.0":
		return "Apache License 2.0", "license-Apache--2.0-blue"
	case "BSD-3-Clause":
		return "BSD 3-Clause License", "license-BSD--3--Clause-blue"
	default:
		return "MIT License", "license-MIT-blue"
	}
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
