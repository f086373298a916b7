package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/KarimHamidou/gdbindgen/config"
)

var (
	initPackage string
	initRuntime string
	initOutput  string
	initForce   bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter " + config.DefaultFile,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().StringVarP(&initPackage, "package", "p", "", "Go package name of the generated code")
	initCmd.Flags().StringVar(&initRuntime, "runtime", "", "Import path of the runtime package")
	initCmd.Flags().StringVarP(&initOutput, "output", "o", ".", "Directory to write the config into")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path, err := writeStarterConfig(initOutput, initPackage, initRuntime, initForce)
	if err != nil {
		return err
	}
	if !quiet {
		fmt.Printf("Created:\n")
		fmt.Printf("  %s\n", path)
		fmt.Printf("\nNext: gdbindgen generate -c %s api.json\n", path)
	}
	return nil
}

// writeStarterConfig writes the default config, with the given overrides, to
// dir and returns its path.
func writeStarterConfig(dir, pkg, runtime string, force bool) (string, error) {
	cfg := config.Default()
	if pkg != "" {
		cfg.Package = pkg
	}
	if runtime != "" {
		cfg.Runtime = runtime
		cfg.Sys = runtime + "/sys"
	}
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	path := filepath.Join(dir, config.DefaultFile)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("checking %s: %w", path, err)
		}
	}

	data, err := cfg.Marshal()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating %s: %w", dir, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing config: %w", err)
	}
	return path, nil
}
