// Package config reads the optional gdbindgen.yaml project file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KarimHamidou/gdbindgen/resolver"
)

// DefaultFile is the config file name looked up when -c is not given.
const DefaultFile = "gdbindgen.yaml"

// Config controls what the generate command emits and where.
type Config struct {
	// Output is the directory generated files are written to.
	Output string `yaml:"output"`
	// Package is the Go package name of the generated bindings.
	Package string `yaml:"package"`
	// Generated, Runtime and Sys are the import paths referenced by generated code.
	Generated string `yaml:"generated"`
	Runtime   string `yaml:"runtime"`
	Sys       string `yaml:"sys"`
	// Editor keeps methods flagged as editor-only.
	Editor bool `yaml:"editor"`
	// APITypes lists the manifest api_type tiers to generate, e.g. core, tools.
	APITypes []string `yaml:"api_types"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Output:    "./generated",
		Package:   "generated",
		Generated: "github.com/KarimHamidou/gdnative/generated",
		Runtime:   "github.com/KarimHamidou/gdnative",
		Sys:       "github.com/KarimHamidou/gdnative/sys",
		APITypes:  []string{"core"},
	}
}

// Load reads the config at path. Keys missing from the file keep their
// defaults. A missing file at DefaultFile is not an error; a missing file at
// any other explicitly named path is.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultFile
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse decodes a config document over the defaults and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the config can drive a generation run.
func (c *Config) Validate() error {
	if !token.IsIdentifier(c.Package) {
		return fmt.Errorf("config: package %q is not a valid Go identifier", c.Package)
	}
	if c.Generated == "" || c.Runtime == "" || c.Sys == "" {
		return errors.New("config: generated, runtime, and sys import paths are required")
	}
	if len(c.APITypes) == 0 {
		return errors.New("config: api_types must name at least one tier")
	}
	return nil
}

// Packages returns the import paths generated code refers to.
func (c *Config) Packages() resolver.Packages {
	return resolver.Packages{Runtime: c.Runtime, Sys: c.Sys, Generated: c.Generated}
}

// IncludesAPIType reports whether classes of the given tier are generated.
func (c *Config) IncludesAPIType(apiType string) bool {
	for _, t := range c.APITypes {
		if t == apiType {
			return true
		}
	}
	return false
}

// Marshal renders the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return buf.Bytes(), nil
}
