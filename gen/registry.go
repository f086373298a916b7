package gen

import (
	"fmt"
	"sort"

	"github.com/dave/jennifer/jen"

	"github.com/KarimHamidou/gdbindgen/model"
)

func init() {
	Register("registry", func() Generator { return &RegistryGenerator{} })
}

// RegistryGenerator emits registry.go, which maps engine class names to
// constructors and singleton getters.
type RegistryGenerator struct{}

func (g *RegistryGenerator) Name() string { return "registry" }

func (g *RegistryGenerator) Generate(ctx *Context) ([]*OutputFile, error) {
	root := ctx.Manifest.Find("Object")
	if root == nil || !ctx.includeClass(root) {
		return nil, fmt.Errorf("registry needs the root class Object")
	}

	var (
		ctors      = jen.Dict{}
		singletons = jen.Dict{}
		names      []string
	)
	ret := jen.Id("ObjectArg")
	for _, c := range ctx.Classes() {
		for _, name := range registeredNames(ctx.Manifest, c) {
			names = append(names, name)
			switch {
			case c.Singleton:
				singletons[jen.Lit(name)] = jen.Func().Params().Add(ret.Clone()).Block(jen.Return(jen.Id("Get" + c.Name).Call()))
			case c.Instantiable:
				ctors[jen.Lit(name)] = jen.Func().Params().Add(ret.Clone()).Block(jen.Return(jen.Id("New" + c.Name).Call()))
			}
		}
	}
	sort.Strings(names)

	f := newFile(ctx)
	factory := jen.Map(jen.String()).Func().Params().Add(ret.Clone())

	f.Var().Defs(
		jen.Id("constructors").Op("=").Add(factory.Clone()).Values(ctors),
		jen.Id("singletons").Op("=").Add(factory.Clone()).Values(singletons),
		jen.Id("classNames").Op("=").Index().String().ValuesFunc(func(g *jen.Group) {
			for _, n := range names {
				g.Lit(n)
			}
		}),
	)

	f.Comment("Construct creates an instance of the class the engine registers as name.")
	f.Func().Id("Construct").Params(jen.Id("name").String()).Params(ret.Clone(), jen.Bool()).Block(
		jen.List(jen.Id("ctor"), jen.Id("ok")).Op(":=").Id("constructors").Index(jen.Id("name")),
		jen.If(jen.Op("!").Id("ok")).Block(jen.Return(jen.Nil(), jen.False())),
		jen.Return(jen.Id("ctor").Call(), jen.True()),
	)

	f.Comment("Singleton returns the singleton the engine registers as name.")
	f.Func().Id("Singleton").Params(jen.Id("name").String()).Params(ret.Clone(), jen.Bool()).Block(
		jen.List(jen.Id("get"), jen.Id("ok")).Op(":=").Id("singletons").Index(jen.Id("name")),
		jen.If(jen.Op("!").Id("ok")).Block(jen.Return(jen.Nil(), jen.False())),
		jen.Return(jen.Id("get").Call(), jen.True()),
	)

	f.Comment("ClassNames returns the engine names of every generated class, sorted.")
	f.Func().Id("ClassNames").Params().Index().String().Block(
		jen.Return(jen.Append(jen.Index().String().Call(jen.Nil()), jen.Id("classNames").Op("..."))),
	)

	out, err := render(f, "registry.go")
	if err != nil {
		return nil, err
	}
	return []*OutputFile{out}, nil
}

// registeredNames returns the names a class is reachable under: its own and,
// for classes the manifest marked private, the underscored engine name.
func registeredNames(m *model.Manifest, c *model.Class) []string {
	if m.WasPrivate(c.Name) {
		return []string{c.Name, m.EngineName(c)}
	}
	return []string{c.Name}
}
