package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KarimHamidou/gdbindgen/config"
)

var (
	verbose    bool
	quiet      bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "gdbindgen",
	Short: "Typed Go bindings generator for the engine API manifest",
	Long:  "gdbindgen reads the engine's api.json manifest and generates typed Go wrappers for every engine class.",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default ./"+config.DefaultFile+" if present)")
}

func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the config named by -c, or the default file when present.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if verbose && configPath != "" {
		fmt.Printf("  Config: %s\n", configPath)
	}
	return cfg, nil
}
