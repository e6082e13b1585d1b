package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/readmecheck/readmecheck/internal/profile"
	"github.com/readmecheck/readmecheck/internal/wizard"
	"github.com/spf13/cobra"
)

func newInitCommand() *cobra.Command {
	var useDefaults bool
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a .readmecheck.yaml profile",
		Long: `Create a .readmecheck.yaml check profile for a project.

Runs a guided wizard that collects the product and package names, the code
block languages, the license and the required README sections, then writes
a commented profile next to the README.

Use --defaults to skip the wizard and write the stock profile. When a
directory is given, its name seeds the product and package fields.

If no directory is specified, the current directory is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return initCommandE(cmd, args, useDefaults, force)
		},
	}

	cmd.Flags().BoolVarP(&useDefaults, "defaults", "y", false, "Write the default profile without prompting")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing profile")

	return cmd
}

func initCommandE(cmd *cobra.Command, args []string, useDefaults, force bool) error {
	dir := "."
	initialProduct := ""
	if len(args) > 0 {
		dir = args[0]
		if abs, err := filepath.Abs(dir); err == nil {
			initialProduct = filepath.Base(abs)
		}
	}

	// Create the root directory if it doesn't exist
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	profilePath := filepath.Join(dir, profile.ConfigFileName)
	if _, err := os.Stat(profilePath); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", profilePath)
	}

	var spec *wizard.ProfileSpec
	if useDefaults {
		spec = wizard.DefaultProfileSpec()
		if initialProduct != "" {
			spec.Product = initialProduct
			spec.Package = strings.ToLower(initialProduct)
		}
	} else {
		var err error
		spec, err = wizard.RunProfileWizard(cmd.InOrStdin(), cmd.OutOrStdout(), initialProduct)
		if err != nil {
			return fmt.Errorf("wizard failed: %w", err)
		}
	}

	content, err := wizard.GenerateProfileYAML(spec)
	if err != nil {
		return fmt.Errorf("failed to generate profile: %w", err)
	}
	if err := os.WriteFile(profilePath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", profilePath, err)
	}

	// Print summary
	fmt.Fprintln(cmd.OutOrStdout(), "Initialized readmecheck profile:") //nolint:errcheck
	fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", profilePath)               //nolint:errcheck

	return nil
}
