package gen

import (
	"bytes"
	"fmt"
	"sort"
	"sync"

	"github.com/dave/jennifer/jen"
)

// OutputFile represents a single generated file.
type OutputFile struct {
	Path    string // Relative path within output directory
	Content []byte
}

// Generator is the interface all code generators implement.
// Each generator produces one slice of the bindings (class wrappers, raw-call
// adapters, the constructor registry, discriminant guards).
type Generator interface {
	// Name returns the generator name (e.g., "classes", "icalls").
	Name() string

	// Generate produces output files for the loaded manifest.
	Generate(ctx *Context) ([]*OutputFile, error)
}

var (
	registryMu sync.RWMutex
	registry   = map[string]func() Generator{}
)

// Register adds a generator factory to the registry.
// Typically called from init() in each generator's file.
func Register(name string, factory func() Generator) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("generator %q already registered", name))
	}
	registry[name] = factory
}

// Get returns a new instance of the named generator.
func Get(name string) (Generator, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	factory, ok := registry[name]
	if !ok {
		return nil, false
	}
	return factory(), true
}

// All returns the names of all registered generators, sorted.
func All() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run executes the named generators in order and collects their output.
// Nothing is returned unless every generator succeeds.
func Run(ctx *Context, names []string) ([]*OutputFile, error) {
	var files []*OutputFile
	for _, name := range names {
		g, ok := Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown generator %q", name)
		}
		out, err := g.Generate(ctx)
		if err != nil {
			return nil, fmt.Errorf("generator %s failed: %w", name, err)
		}
		files = append(files, out...)
	}
	return files, nil
}

// newFile starts a file in the generated package.
func newFile(ctx *Context) *jen.File {
	f := jen.NewFilePathName(ctx.Config.Generated, ctx.Config.Package)
	f.HeaderComment("Code generated by gdbindgen. DO NOT EDIT.")
	f.ImportName(ctx.Config.Runtime, "gdnative")
	f.ImportName(ctx.Config.Sys, "sys")
	return f
}

// render formats f into an OutputFile at path.
func render(f *jen.File, path string) (*OutputFile, error) {
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", path, err)
	}
	return &OutputFile{Path: path, Content: buf.Bytes()}, nil
}
