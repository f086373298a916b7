package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KarimHamidou/gdbindgen/loader"
	"github.com/KarimHamidou/gdbindgen/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate [api.json]",
	Short: "Check an engine API manifest without generating",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	manifestPath, err := loader.ResolveManifestArgs(args)
	if err != nil {
		return err
	}

	if !quiet {
		fmt.Printf("Validating %s\n", manifestPath)
	}

	// Load and schema-validate the manifest
	m, err := loader.LoadManifest(manifestPath)
	if err != nil {
		return fmt.Errorf("loading manifest: %w", err)
	}

	if verbose {
		fmt.Printf("  Classes: %d\n", len(m.Classes))
		fmt.Printf("  Private classes: %d\n", len(m.Private))
	}

	// Run semantic validation
	result := validate.Validate(m)
	if !quiet {
		for _, w := range result.Warnings {
			fmt.Printf("  Warning: %s\n", w.Error())
		}
	}
	if !result.IsValid() {
		return fmt.Errorf("semantic validation failed:\n%s", result.Error())
	}

	if !quiet {
		fmt.Println("Validation passed.")
	}
	return nil
}
