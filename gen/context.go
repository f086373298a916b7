package gen

import (
	"sort"

	"github.com/KarimHamidou/gdbindgen/config"
	"github.com/KarimHamidou/gdbindgen/hierarchy"
	"github.com/KarimHamidou/gdbindgen/model"
	"github.com/KarimHamidou/gdbindgen/resolver"
)

// Context holds everything a generator needs to produce output. It is built
// once per run and only read by generators.
type Context struct {
	Manifest  *model.Manifest
	Hierarchy *hierarchy.Resolver
	Symbols   *resolver.SymbolTable
	Config    *config.Config
}

// NewContext creates a new generation context over a normalized manifest.
func NewContext(m *model.Manifest, cfg *config.Config) *Context {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Context{
		Manifest:  m,
		Hierarchy: hierarchy.New(m),
		Symbols:   resolver.NewSymbolTable(m),
		Config:    cfg,
	}
}

// Packages returns the import paths generated code refers to.
func (ctx *Context) Packages() resolver.Packages {
	return ctx.Config.Packages()
}

// Classes returns the classes of the selected API tiers, sorted by name.
func (ctx *Context) Classes() []*model.Class {
	var classes []*model.Class
	for _, c := range ctx.Manifest.Classes {
		if ctx.includeClass(c) {
			classes = append(classes, c)
		}
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i].Name < classes[j].Name })
	return classes
}

// An empty api_type is treated as core.
func (ctx *Context) includeClass(c *model.Class) bool {
	apiType := c.APIType
	if apiType == "" {
		apiType = "core"
	}
	return ctx.Config.IncludesAPIType(apiType)
}

// Methods returns the methods of c that get a generated wrapper, in manifest
// order. Virtual methods are implemented by scripts, not called on the engine.
func (ctx *Context) Methods(c *model.Class) []*model.Method {
	var methods []*model.Method
	for i := range c.Methods {
		m := &c.Methods[i]
		if m.IsVirtual {
			continue
		}
		if m.IsEditor && !ctx.Config.Editor {
			continue
		}
		methods = append(methods, m)
	}
	return methods
}

// Tag resolves a manifest type string through the symbol table.
func (ctx *Context) Tag(raw string) resolver.Tag {
	if t, ok := ctx.Symbols.Lookup(raw); ok {
		return t
	}
	return ctx.Symbols.Resolve(raw)
}
