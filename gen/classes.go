package gen

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/KarimHamidou/gdbindgen/model"
	"github.com/KarimHamidou/gdbindgen/resolver"
)

func init() {
	Register("classes", func() Generator { return &ClassesGenerator{} })
}

// ClassesGenerator emits one file per engine class.
type ClassesGenerator struct{}

func (g *ClassesGenerator) Name() string { return "classes" }

func (g *ClassesGenerator) Generate(ctx *Context) ([]*OutputFile, error) {
	var files []*OutputFile
	for _, c := range ctx.Classes() {
		out, err := generateClass(ctx, c)
		if err != nil {
			return nil, fmt.Errorf("class %s: %w", c.Name, err)
		}
		files = append(files, out)
	}
	return files, nil
}

// classWriter emits the declarations of a single class into one file.
type classWriter struct {
	ctx       *Context
	pkgs      resolver.Packages
	f         *jen.File
	class     *model.Class
	ancestors []*model.Class

	// declared tracks package-level identifiers emitted into this file.
	declared map[string]bool
}

func generateClass(ctx *Context, c *model.Class) (*OutputFile, error) {
	ancestors, err := ctx.Hierarchy.Ancestors(c)
	if err != nil {
		return nil, err
	}
	for _, a := range ancestors {
		if !ctx.includeClass(a) {
			return nil, fmt.Errorf("base class %s has api_type %q, which is not generated", a.Name, a.APIType)
		}
	}

	w := &classWriter{
		ctx:       ctx,
		pkgs:      ctx.Packages(),
		f:         newFile(ctx),
		class:     c,
		ancestors: ancestors,
		declared:  map[string]bool{},
	}

	w.typeDecl()
	w.upcasts()
	w.fromSys()
	if err := w.lifetime(); err != nil {
		return nil, err
	}
	w.enums()
	w.constants()
	w.signals()
	w.methods()

	return render(w.f, FileName(resolver.ModuleName(c.Name)))
}

func (w *classWriter) root() bool {
	return len(w.ancestors) == 0
}

func (w *classWriter) engineName() string {
	return w.ctx.Manifest.EngineName(w.class)
}

func (w *classWriter) typeDecl() {
	c := w.class
	w.f.Commentf("%s wraps the engine class %s.", c.Name, c.Name)
	if w.ctx.Manifest.WasPrivate(c.Name) {
		w.f.Commentf("The engine registers it as %s.", w.engineName())
	}
	switch {
	case c.IsRefCounted():
		w.f.Comment("Instances are reference counted by the engine.")
	case c.Singleton:
		w.f.Commentf("It is a singleton; use Get%s to obtain it.", c.Name)
	}

	var field jen.Code
	if w.root() {
		field = jen.Id("ptr").Op("*").Qual(w.pkgs.Sys, "Object")
	} else {
		field = jen.Id(w.ancestors[0].Name)
	}
	w.f.Type().Id(c.Name).Struct(field)
	w.declared[c.Name] = true
}

func (w *classWriter) upcasts() {
	c := w.class
	self := jen.Id("o").Op("*").Id(c.Name)

	w.f.Commentf("%sArg is implemented by %s and every class that extends it.", c.Name, c.Name)
	w.f.Type().Id(c.Name+"Arg").Interface(
		jen.Id("As"+c.Name).Params().Op("*").Id(c.Name),
		jen.Id("sysObject").Params().Op("*").Qual(w.pkgs.Sys, "Object"),
	)
	w.declared[c.Name+"Arg"] = true

	w.f.Func().Params(self.Clone()).Id("As" + c.Name).Params().Op("*").Id(c.Name).Block(
		jen.Return(jen.Id("o")),
	)

	var inner jen.Code
	if w.root() {
		inner = jen.Id("o").Dot("ptr")
	} else {
		inner = jen.Id("o").Dot(w.ancestors[0].Name).Dot("sysObject").Call()
	}
	w.f.Func().Params(self.Clone()).Id("sysObject").Params().Op("*").Qual(w.pkgs.Sys, "Object").Block(
		jen.If(jen.Id("o").Op("==").Nil()).Block(jen.Return(jen.Nil())),
		jen.Return(inner),
	)
}

// literal returns the composite literal wrapping ptr, nesting the embedded
// bases down to the root.
func (w *classWriter) literal() *jen.Statement {
	chain := append([]*model.Class{w.class}, w.ancestors...)
	var lit jen.Code = jen.Id("ptr").Op(":").Id("ptr")
	for i := len(chain) - 1; i >= 1; i-- {
		lit = jen.Id(chain[i].Name).Op(":").Id(chain[i].Name).Values(lit)
	}
	return jen.Op("&").Id(w.class.Name).Values(lit)
}

// fromSys emits <Class>FromSys. Reference-counted wrappers take a reference
// of their own, which Release gives back.
func (w *classWriter) fromSys() {
	c := w.class
	name := c.Name + "FromSys"
	body := []jen.Code{
		jen.If(jen.Id("ptr").Op("==").Nil()).Block(jen.Return(jen.Nil())),
	}
	w.f.Commentf("%s wraps a raw engine object. It returns nil for a nil pointer.", name)
	if c.IsRefCounted() {
		w.f.Comment("The wrapper holds one engine reference; call Release when done with it.")
		body = append(body, jen.Qual(w.pkgs.Sys, "ObjectReference").Call(jen.Id("ptr")))
	}
	body = append(body, jen.Return(w.literal()))
	w.f.Func().Id(name).Params(jen.Id("ptr").Op("*").Qual(w.pkgs.Sys, "Object")).Op("*").Id(c.Name).Block(body...)
	w.declared[name] = true
}

// lifetime emits the constructor or singleton getter, Free for classes whose
// instances the caller owns, and Release for reference-counted lineage roots.
func (w *classWriter) lifetime() error {
	c := w.class
	switch {
	case c.Singleton:
		safe, err := w.ctx.Hierarchy.IsSingletonThreadSafe(c)
		if err != nil {
			return err
		}
		name := "Get" + c.Name
		w.f.Commentf("%s returns the %s singleton.", name, c.EngineSingletonName())
		if safe {
			w.f.Comment("It is safe for concurrent use.")
		} else {
			w.f.Comment("It is not thread-safe: use it from one thread at a time.")
		}
		w.f.Func().Id(name).Params().Op("*").Id(c.Name).Block(
			jen.Return(jen.Id(c.Name + "FromSys").Call(
				jen.Qual(w.pkgs.Sys, "GlobalSingleton").Call(jen.Lit(c.EngineSingletonName())),
			)),
		)
		w.declared[name] = true
	case c.Instantiable && c.IsRefCounted():
		name := "New" + c.Name
		w.f.Commentf("%s creates a new %s holding its first reference.", name, c.Name)
		w.f.Func().Id(name).Params().Op("*").Id(c.Name).Block(
			jen.Id("ptr").Op(":=").Qual(w.pkgs.Sys, "NewObject").Call(jen.Lit(w.engineName())),
			jen.Qual(w.pkgs.Sys, "ObjectInitRef").Call(jen.Id("ptr")),
			jen.Return(w.literal()),
		)
		w.declared[name] = true
	case c.Instantiable:
		name := "New" + c.Name
		w.f.Commentf("%s creates a new %s.", name, c.Name)
		w.f.Func().Id(name).Params().Op("*").Id(c.Name).Block(
			jen.Return(jen.Id(c.Name + "FromSys").Call(
				jen.Qual(w.pkgs.Sys, "NewObject").Call(jen.Lit(w.engineName())),
			)),
		)
		w.declared[name] = true
	}

	owns, err := w.ctx.Hierarchy.OwnsLifetime(c)
	if err != nil {
		return err
	}
	if owns && !w.hasMethod("Free") {
		w.f.Comment("Free destroys the engine object. The receiver must not be used afterwards.")
		w.f.Func().Params(jen.Id("o").Op("*").Id(c.Name)).Id("Free").Params().Block(
			jen.Qual(w.pkgs.Sys, "ObjectDestroy").Call(jen.Id("o").Dot("sysObject").Call()),
		)
	}

	refRoot, err := w.ctx.Hierarchy.IsRefCountRoot(c)
	if err != nil {
		return err
	}
	if refRoot && !w.hasMethod("Release") {
		w.f.Comment("Release drops the reference the receiver holds and destroys the object")
		w.f.Comment("when it was the last one. The receiver must not be used afterwards.")
		w.f.Func().Params(jen.Id("o").Op("*").Id(c.Name)).Id("Release").Params().Block(
			jen.Id("ptr").Op(":=").Id("o").Dot("sysObject").Call(),
			jen.If(jen.Id("ptr").Op("!=").Nil().Op("&&").Qual(w.pkgs.Sys, "ObjectUnreference").Call(jen.Id("ptr"))).Block(
				jen.Qual(w.pkgs.Sys, "ObjectDestroy").Call(jen.Id("ptr")),
			),
		)
	}
	return nil
}

func (w *classWriter) hasMethod(goName string) bool {
	for _, m := range w.ctx.Methods(w.class) {
		if MethodGoName(m) == goName {
			return true
		}
	}
	return false
}

func (w *classWriter) enums() {
	enums := slices.Clone(w.class.Enums)
	slices.SortFunc(enums, model.CompareEnums)

	for _, e := range enums {
		tag := w.ctx.Tag(resolver.EnumRef(w.class.Name, e.Name))
		typeName := tag.Path.GoName()

		w.f.Commentf("%s is the engine enum %s::%s.", typeName, w.class.Name, e.Name)
		w.f.Type().Id(typeName).Int64()
		w.declared[typeName] = true

		var defs []jen.Code
		for _, v := range e.SortedVariants() {
			name := typeName + GoName(v.Name)
			if w.declared[name] {
				continue
			}
			w.declared[name] = true
			defs = append(defs, jen.Id(name).Id(typeName).Op("=").Lit(int(v.Value)))
		}
		if len(defs) > 0 {
			w.f.Const().Defs(defs...)
		}
	}
}

// constants skips any constant whose name an enum variant already took; the
// manifest lists enum values among the class constants too.
func (w *classWriter) constants() {
	names := make([]string, 0, len(w.class.Constants))
	for name := range w.class.Constants {
		names = append(names, name)
	}
	sort.Strings(names)

	var defs []jen.Code
	for _, name := range names {
		goName := ConstName(w.class.Name, name)
		if w.declared[goName] {
			continue
		}
		w.declared[goName] = true
		defs = append(defs, jen.Id(goName).Op("=").Lit(int(w.class.Constants[name])))
	}
	if len(defs) == 0 {
		return
	}
	w.f.Commentf("Constants of %s.", w.class.Name)
	w.f.Const().Defs(defs...)
}

func (w *classWriter) signals() {
	sigs := slices.Clone(w.class.Signals)
	sort.Slice(sigs, func(i, j int) bool { return sigs[i].Name < sigs[j].Name })

	var defs []jen.Code
	for _, s := range sigs {
		goName := w.class.Name + "Signal" + GoName(s.Name)
		if w.declared[goName] {
			continue
		}
		w.declared[goName] = true
		def := jen.Id(goName).Op("=").Lit(s.Name)
		if len(s.Arguments) > 0 {
			args := make([]string, len(s.Arguments))
			for i, a := range s.Arguments {
				args[i] = a.Name + " " + a.Type
			}
			def = jen.Comment(fmt.Sprintf("Arguments: %s.", strings.Join(args, ", "))).Line().Add(def)
		}
		defs = append(defs, def)
	}
	if len(defs) == 0 {
		return
	}
	w.f.Commentf("Signals emitted by %s.", w.class.Name)
	w.f.Const().Defs(defs...)
}

func (w *classWriter) methods() {
	methods := w.ctx.Methods(w.class)
	if len(methods) == 0 {
		return
	}

	// Embedded base fields share the method namespace.
	taken := map[string]bool{}
	for _, a := range w.ancestors {
		taken[a.Name] = true
	}

	binds := make([]jen.Code, 0, len(methods))
	names := make([]string, len(methods))
	for i, m := range methods {
		name := MethodGoName(m)
		if taken[name] {
			name += "_"
		}
		taken[name] = true
		names[i] = name

		binds = append(binds, jen.Id(w.bindVar(name)).Op("=").Op("&").Id("methodBind").Values(jen.Dict{
			jen.Id("class"):  jen.Lit(w.engineName()),
			jen.Id("method"): jen.Lit(m.GetName().Original),
		}))
	}
	w.f.Var().Defs(binds...)

	for i, m := range methods {
		w.method(m, names[i])
	}
}

func (w *classWriter) bindVar(goName string) string {
	return "mb_" + w.class.Name + "_" + goName
}

func (w *classWriter) method(m *model.Method, goName string) {
	c := w.class
	rt := w.pkgs.Runtime

	w.methodDoc(m, goName)

	params := make([]jen.Code, 0, len(m.Arguments)+1)
	rawArgs := []jen.Code{
		jen.Id(w.bindVar(goName)).Dot("get").Call(),
		jen.Id("o").Dot("sysObject").Call(),
	}
	var fixed []jen.Code
	for _, a := range m.Arguments {
		tag := w.ctx.Tag(a.Type)
		id := ArgName(a.Name)
		params = append(params, jen.Id(id).Add(resolver.Representation(tag, resolver.Argument, w.pkgs)))
		fixed = append(fixed, resolver.ArgumentToRaw(tag, jen.Id(id), w.pkgs))
	}

	ret := w.ctx.Tag(m.ReturnType)
	var result *jen.Statement
	var body []jen.Code

	if m.HasVarargs {
		params = append(params, jen.Id("varargs").Op("...").Qual(rt, "ToVariant"))
		variants := make([]jen.Code, len(fixed))
		for i, arg := range fixed {
			variants[i] = jen.Qual(rt, "NewVariant").Call(arg)
		}
		body = append(body,
			jen.Id("args").Op(":=").Index().Qual(rt, "Variant").Values(variants...),
			jen.For(jen.Id("_").Op(",").Id("v").Op(":=").Range().Id("varargs")).Block(
				jen.Id("args").Op("=").Append(jen.Id("args"), jen.Id("v").Dot("ToVariant").Call()),
			),
		)
		call := jen.Id(varargsCall).Call(append(rawArgs, jen.Id("args"))...)
		if ret.Kind == resolver.KindVoid {
			result = jen.Null()
			body = append(body, call)
		} else {
			result = jen.Qual(rt, "Variant")
			body = append(body,
				jen.Id(resolver.ReturnVar).Op(":=").Add(call),
				jen.Return(jen.Qual(rt, "VariantFromSys").Call(jen.Id(resolver.ReturnVar))),
			)
		}
	} else {
		call := jen.Id(adapterName(w.ctx, m)).Call(append(rawArgs, fixed...)...)
		result = resolver.Representation(ret, resolver.Stored, w.pkgs)
		if ret.Kind == resolver.KindVoid {
			body = append(body, call)
		} else {
			body = append(body,
				jen.Id(resolver.ReturnVar).Op(":=").Add(call),
				jen.Return(resolver.Representation(ret, resolver.PostCall, w.pkgs)),
			)
		}
	}

	w.f.Func().Params(jen.Id("o").Op("*").Id(c.Name)).Id(goName).Params(params...).Add(result).Block(body...)
}

func (w *classWriter) methodDoc(m *model.Method, goName string) {
	c := w.class
	if p, ok := c.PropertyForAccessor(m.Name); ok {
		if c.IsGetter(m.Name) {
			w.f.Commentf("%s returns the %s property.", goName, p.Name)
		} else {
			w.f.Commentf("%s sets the %s property.", goName, p.Name)
		}
	} else {
		w.f.Commentf("%s calls %s.%s.", goName, w.engineName(), m.GetName().Original)
	}

	// Defaults only apply to the trailing arguments a caller may omit.
	var defaults []string
	for _, a := range m.Arguments[m.RequiredArgs():] {
		if a.HasDefaultValue {
			defaults = append(defaults, fmt.Sprintf("%s = %s", ArgName(a.Name), a.DefaultValue))
		}
	}
	if len(defaults) > 0 {
		w.f.Commentf("Engine defaults: %s.", strings.Join(defaults, ", "))
	}
	if m.IsEditor {
		w.f.Comment("Editor only.")
	}
}
