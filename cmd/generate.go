package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KarimHamidou/gdbindgen/gen"
	"github.com/KarimHamidou/gdbindgen/loader"
	"github.com/KarimHamidou/gdbindgen/validate"
)

var (
	genOutput   string
	genPackage  string
	genRuntime  string
	genEditor   bool
	genAPITypes []string
	genDryRun   bool
	genClean    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [api.json]",
	Short: "Generate typed Go bindings from an engine API manifest",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "", "Output directory (overrides config)")
	generateCmd.Flags().StringVar(&genPackage, "package", "", "Go package name of the generated code (overrides config)")
	generateCmd.Flags().StringVar(&genRuntime, "runtime", "", "Import path of the runtime package (overrides config)")
	generateCmd.Flags().BoolVar(&genEditor, "editor", false, "Include editor-only methods")
	generateCmd.Flags().StringSliceVar(&genAPITypes, "api-type", nil, "API tiers to generate, e.g. core,tools (overrides config)")
	generateCmd.Flags().BoolVar(&genDryRun, "dry-run", false, "Show what would be generated without writing")
	generateCmd.Flags().BoolVar(&genClean, "clean", false, "Remove previously generated files first")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	manifestPath, err := loader.ResolveManifestArgs(args)
	if err != nil {
		return err
	}

	if !quiet {
		fmt.Printf("Generating from %s\n", manifestPath)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Apply CLI overrides
	if genOutput != "" {
		cfg.Output = genOutput
	}
	if genPackage != "" {
		cfg.Package = genPackage
	}
	if genRuntime != "" {
		cfg.Runtime = genRuntime
		cfg.Sys = strings.TrimSuffix(genRuntime, "/") + "/sys"
	}
	if genEditor {
		cfg.Editor = true
	}
	if len(genAPITypes) > 0 {
		cfg.APITypes = genAPITypes
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Load, schema-validate and normalize
	m, err := loader.LoadManifest(manifestPath)
	if err != nil {
		return fmt.Errorf("loading manifest: %w", err)
	}

	// Semantic validation
	result := validate.Validate(m)
	if !result.IsValid() {
		return fmt.Errorf("validation failed:\n%s", result.Error())
	}
	if verbose {
		for _, w := range result.Warnings {
			fmt.Printf("  Warning: %s\n", w.Error())
		}
	}

	ctx := gen.NewContext(m, cfg)
	if verbose {
		fmt.Printf("  Interned %d type references\n", ctx.Symbols.Len())
	}

	names := gen.All()
	if verbose {
		fmt.Printf("  Running generators: %s\n", strings.Join(names, ", "))
	}

	// Every generator runs before anything is written.
	files, err := gen.Run(ctx, names)
	if err != nil {
		return err
	}

	// Previous output is only removed once the new output exists.
	if genClean {
		if !quiet {
			fmt.Printf("Cleaning %s\n", cfg.Output)
		}
		if !genDryRun {
			if err := os.RemoveAll(cfg.Output); err != nil {
				return fmt.Errorf("cleaning %s: %w", cfg.Output, err)
			}
		}
	}

	var written int
	for _, f := range files {
		outPath := filepath.Join(cfg.Output, f.Path)

		if genDryRun {
			fmt.Printf("  Would write: %s\n", outPath)
			continue
		}

		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", outPath, err)
		}
		if err := os.WriteFile(outPath, f.Content, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}

		written++
		if verbose {
			fmt.Printf("  Wrote: %s\n", outPath)
		}
	}

	if !quiet {
		fmt.Printf("Generated %d files in %s\n", written, cfg.Output)
	}
	return nil
}
