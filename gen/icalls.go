package gen

import (
	"sort"
	"strconv"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/KarimHamidou/gdbindgen/model"
	"github.com/KarimHamidou/gdbindgen/resolver"
)

// varargsCall is the single adapter every varargs method goes through.
const varargsCall = "icallVarargs"

func init() {
	Register("icalls", func() Generator { return &IcallsGenerator{} })
}

// IcallsGenerator emits icalls.go: one raw-call adapter per distinct raw
// signature, plus the helpers the class files share.
type IcallsGenerator struct{}

func (g *IcallsGenerator) Name() string { return "icalls" }

// rawSignature is the engine-facing shape of a method call. Methods with equal
// signatures share one adapter.
type rawSignature struct {
	Return resolver.Tag
	Args   []resolver.Tag
}

func rawSignatureOf(ctx *Context, m *model.Method) rawSignature {
	sig := rawSignature{Return: ctx.Tag(m.ReturnType)}
	for _, a := range m.Arguments {
		sig.Args = append(sig.Args, ctx.Tag(a.Type))
	}
	return sig
}

func (s rawSignature) parts() []string {
	parts := []string{resolver.Signature(s.Return)}
	for _, a := range s.Args {
		parts = append(parts, resolver.Signature(a))
	}
	return parts
}

func (s rawSignature) key() string {
	return strings.Join(s.parts(), ",")
}

// funcName returns the adapter name, e.g. icallVoidObjBool.
func (s rawSignature) funcName() string {
	var b strings.Builder
	b.WriteString("icall")
	for _, p := range s.parts() {
		b.WriteString(GoName(p))
	}
	return b.String()
}

// adapterName returns the raw-call adapter a wrapper for m calls.
func adapterName(ctx *Context, m *model.Method) string {
	if m.HasVarargs {
		return varargsCall
	}
	return rawSignatureOf(ctx, m).funcName()
}

// collectSignatures returns the distinct raw signatures of every generated
// fixed-arity method, sorted by key.
func collectSignatures(ctx *Context) []rawSignature {
	seen := map[string]rawSignature{}
	for _, c := range ctx.Classes() {
		for _, m := range ctx.Methods(c) {
			if m.HasVarargs {
				continue
			}
			sig := rawSignatureOf(ctx, m)
			seen[sig.key()] = sig
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	sigs := make([]rawSignature, len(keys))
	for i, k := range keys {
		sigs[i] = seen[k]
	}
	return sigs
}

func (g *IcallsGenerator) Generate(ctx *Context) ([]*OutputFile, error) {
	pkgs := ctx.Packages()
	f := newFile(ctx)

	emitMethodBind(f, pkgs)
	emitRawObject(f, pkgs)

	for _, sig := range collectSignatures(ctx) {
		emitIcall(f, pkgs, sig)
	}
	emitVarargsIcall(f, pkgs)

	out, err := render(f, "icalls.go")
	if err != nil {
		return nil, err
	}
	return []*OutputFile{out}, nil
}

func emitMethodBind(f *jen.File, pkgs resolver.Packages) {
	f.Comment("methodBind resolves an engine method on first use.")
	f.Type().Id("methodBind").Struct(
		jen.Id("class").String(),
		jen.Id("method").String(),
		jen.Id("once").Qual("sync", "Once"),
		jen.Id("ptr").Op("*").Qual(pkgs.Sys, "MethodBind"),
	)
	f.Line()
	f.Func().Params(jen.Id("b").Op("*").Id("methodBind")).Id("get").Params().Op("*").Qual(pkgs.Sys, "MethodBind").Block(
		jen.Id("b").Dot("once").Dot("Do").Call(jen.Func().Params().Block(
			jen.Id("b").Dot("ptr").Op("=").Qual(pkgs.Sys, "MethodBindGet").Call(jen.Id("b").Dot("class"), jen.Id("b").Dot("method")),
		)),
		jen.Return(jen.Id("b").Dot("ptr")),
	)
}

func emitRawObject(f *jen.File, pkgs resolver.Packages) {
	f.Comment("rawObject returns the engine pointer behind o, or nil.")
	f.Func().Id("rawObject").Params(
		jen.Id("o").Interface(jen.Id("sysObject").Params().Op("*").Qual(pkgs.Sys, "Object")),
	).Op("*").Qual(pkgs.Sys, "Object").Block(
		jen.If(jen.Id("o").Op("==").Nil()).Block(jen.Return(jen.Nil())),
		jen.Return(jen.Id("o").Dot("sysObject").Call()),
	)
}

// emitIcall writes one ptrcall adapter. Handles are passed by their engine
// pointer, objects by value, and everything else by address.
func emitIcall(f *jen.File, pkgs resolver.Packages, sig rawSignature) {
	params := []jen.Code{
		jen.Id("mb").Op("*").Qual(pkgs.Sys, "MethodBind"),
		jen.Id("obj").Op("*").Qual(pkgs.Sys, "Object"),
	}
	var argPtrs []jen.Code
	for i, a := range sig.Args {
		name := jen.Id(argID(i))
		params = append(params, jen.Id(argID(i)).Add(resolver.Representation(a, resolver.RawArgument, pkgs)))
		var ptr *jen.Statement
		switch {
		case a.Kind == resolver.KindObject:
			ptr = name
		case resolver.IsHandle(a.Kind):
			ptr = jen.Id(argID(i)).Dot("Sys").Call()
		default:
			ptr = jen.Op("&").Add(name)
		}
		argPtrs = append(argPtrs, jen.Qual("unsafe", "Pointer").Call(ptr))
	}

	var args jen.Code = jen.Nil()
	var body []jen.Code
	if len(argPtrs) > 0 {
		body = append(body, jen.Id("args").Op(":=").Index(jen.Op("...")).Qual("unsafe", "Pointer").Values(argPtrs...))
		args = jen.Id("args").Index(jen.Op(":"))
	}

	ptrcall := func(ret jen.Code) *jen.Statement {
		return jen.Qual(pkgs.Sys, "MethodBindPtrcall").Call(jen.Id("mb"), jen.Id("obj"), args, ret)
	}
	if sig.Return.Kind == resolver.KindVoid {
		body = append(body, ptrcall(jen.Nil()))
	} else {
		body = append(body,
			jen.Var().Id(resolver.ReturnVar).Add(resolver.Representation(sig.Return, resolver.RawReturn, pkgs)),
			ptrcall(jen.Qual("unsafe", "Pointer").Call(jen.Op("&").Id(resolver.ReturnVar))),
			jen.Return(jen.Id(resolver.ReturnVar)),
		)
	}

	f.Func().Id(sig.funcName()).Params(params...).Add(resolver.Representation(sig.Return, resolver.RawReturn, pkgs)).Block(body...)
}

func emitVarargsIcall(f *jen.File, pkgs resolver.Packages) {
	f.Comment(varargsCall + " calls a method through the engine's variant call path.")
	f.Func().Id(varargsCall).Params(
		jen.Id("mb").Op("*").Qual(pkgs.Sys, "MethodBind"),
		jen.Id("obj").Op("*").Qual(pkgs.Sys, "Object"),
		jen.Id("args").Index().Qual(pkgs.Runtime, "Variant"),
	).Qual(pkgs.Sys, "Variant").Block(
		jen.Id("raw").Op(":=").Make(jen.Index().Op("*").Qual(pkgs.Sys, "Variant"), jen.Len(jen.Id("args"))),
		jen.For(jen.Id("i").Op(":=").Range().Id("args")).Block(
			jen.Id("raw").Index(jen.Id("i")).Op("=").Id("args").Index(jen.Id("i")).Dot("Sys").Call(),
		),
		jen.Return(jen.Qual(pkgs.Sys, "MethodBindCall").Call(jen.Id("mb"), jen.Id("obj"), jen.Id("raw"))),
	)
}

func argID(i int) string {
	return "arg" + strconv.Itoa(i)
}
