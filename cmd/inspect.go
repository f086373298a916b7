package cmd

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/KarimHamidou/gdbindgen/hierarchy"
	"github.com/KarimHamidou/gdbindgen/loader"
	"github.com/KarimHamidou/gdbindgen/model"
	"github.com/KarimHamidou/gdbindgen/resolver"
)

var (
	inspectClass string
	inspectDump  bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [api.json]",
	Short: "Summarize a normalized manifest as YAML",
	Long:  "Loads and normalizes a manifest and prints how every class and type reference is classified. Use --dump for the raw in-memory model.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&inspectClass, "class", "", "Only report this class")
	inspectCmd.Flags().BoolVar(&inspectDump, "dump", false, "Dump the normalized model instead of a summary")
	rootCmd.AddCommand(inspectCmd)
}

// classSummary is the per-class entry of the inspect report.
type classSummary struct {
	Name       string   `yaml:"name"`
	EngineName string   `yaml:"engine_name,omitempty"`
	Base       string   `yaml:"base,omitempty"`
	Ancestors  []string `yaml:"ancestors,omitempty"`
	APIType    string   `yaml:"api_type"`
	Module     string   `yaml:"module"`
	Lifetime   string   `yaml:"lifetime"`
	ThreadSafe *bool    `yaml:"thread_safe,omitempty"`
	Methods    int      `yaml:"methods"`
	Enums      []string `yaml:"enums,omitempty"`
}

// manifestSummary is the inspect report.
type manifestSummary struct {
	Classes []classSummary    `yaml:"classes"`
	Types   map[string]string `yaml:"types"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	manifestPath, err := loader.ResolveManifestArgs(args)
	if err != nil {
		return err
	}

	m, err := loader.LoadManifest(manifestPath)
	if err != nil {
		return fmt.Errorf("loading manifest: %w", err)
	}

	if inspectDump {
		cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
		if inspectClass != "" {
			c := m.Find(inspectClass)
			if c == nil {
				return fmt.Errorf("class %q not found", inspectClass)
			}
			cfg.Fdump(os.Stdout, c)
			return nil
		}
		cfg.Fdump(os.Stdout, m.Classes)
		return nil
	}

	summary, err := summarize(m, inspectClass)
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(summary)
	if err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}
	fmt.Print(string(out))
	return nil
}

// summarize builds the inspect report. A non-empty only restricts it to one class.
func summarize(m *model.Manifest, only string) (*manifestSummary, error) {
	h := hierarchy.New(m)
	symbols := resolver.NewSymbolTable(m)

	classes := m.Classes
	if only != "" {
		c := m.Find(only)
		if c == nil {
			return nil, fmt.Errorf("class %q not found", only)
		}
		classes = []*model.Class{c}
	}

	summary := &manifestSummary{Types: map[string]string{}}
	for _, c := range classes {
		s := classSummary{
			Name:    c.Name,
			Base:    c.BaseClass,
			APIType: c.APIType,
			Module:  resolver.ModuleName(c.Name),
			Methods: len(c.Methods),
		}
		if m.WasPrivate(c.Name) {
			s.EngineName = m.EngineName(c)
		}

		ancestors, err := h.Ancestors(c)
		if err != nil {
			return nil, err
		}
		for _, a := range ancestors {
			s.Ancestors = append(s.Ancestors, a.Name)
		}

		owns, err := h.OwnsLifetime(c)
		if err != nil {
			return nil, err
		}
		switch {
		case c.IsRefCounted():
			s.Lifetime = "ref_counted"
		case c.Singleton:
			s.Lifetime = "singleton"
			safe, err := h.IsSingletonThreadSafe(c)
			if err != nil {
				return nil, err
			}
			s.ThreadSafe = &safe
		case owns:
			s.Lifetime = "owned"
		default:
			s.Lifetime = "inherited"
		}

		for _, e := range c.Enums {
			s.Enums = append(s.Enums, e.Name)
		}
		summary.Classes = append(summary.Classes, s)

		if only != "" {
			for _, method := range c.Methods {
				summary.Types[method.ReturnType] = symbols.Resolve(method.ReturnType).String()
				for _, a := range method.Arguments {
					summary.Types[a.Type] = symbols.Resolve(a.Type).String()
				}
			}
		}
	}
	if only == "" {
		for _, name := range symbols.Names() {
			summary.Types[name] = symbols.Resolve(name).String()
		}
	}
	return summary, nil
}
