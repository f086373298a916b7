package gen

import (
	"github.com/dave/jennifer/jen"

	"github.com/KarimHamidou/gdbindgen/resolver"
)

func init() {
	Register("discriminants", func() Generator { return &DiscriminantsGenerator{} })
}

// DiscriminantsGenerator emits discriminants.go: decoders for the closed
// engine enums and compile-time checks that the reinterpreted math types have
// the engine's size.
type DiscriminantsGenerator struct{}

func (g *DiscriminantsGenerator) Name() string { return "discriminants" }

func (g *DiscriminantsGenerator) Generate(ctx *Context) ([]*OutputFile, error) {
	pkgs := ctx.Packages()
	f := newFile(ctx)

	f.Comment("ErrUnrepresentableDiscriminant reports an enum value outside the range")
	f.Comment("these bindings were generated for, which means the engine version differs.")
	f.Var().Id("ErrUnrepresentableDiscriminant").Op("=").Qual("errors", "New").Call(jen.Lit("unrepresentable discriminant"))

	result := resolver.Discriminants[resolver.KindResult]
	f.Comment("decodeResult converts a raw engine error code. OK decodes to nil.")
	f.Func().Id(resolver.DecoderName(resolver.KindResult)).Params(jen.Id("raw").Int64()).Error().Block(
		jen.If(jen.Id("raw").Op("==").Lit(int(result.Min))).Block(jen.Return(jen.Nil())),
		jen.If(jen.Id("raw").Op("<").Lit(int(result.Min)).Op("||").Id("raw").Op(">").Lit(int(result.Max))).Block(
			jen.Return(jen.Qual("fmt", "Errorf").Call(jen.Lit("%w: Error value %d"), jen.Id("ErrUnrepresentableDiscriminant"), jen.Id("raw"))),
		),
		jen.Return(jen.Qual(pkgs.Runtime, "Error").Call(jen.Id("raw"))),
	)

	op := resolver.Discriminants[resolver.KindVariantOperator]
	f.Comment("decodeVariantOperator converts a raw operator. An unknown value panics")
	f.Comment("with an error wrapping ErrUnrepresentableDiscriminant.")
	f.Func().Id(resolver.DecoderName(resolver.KindVariantOperator)).Params(jen.Id("raw").Int64()).Qual(pkgs.Runtime, "VariantOperator").Block(
		jen.If(jen.Id("raw").Op("<").Lit(int(op.Min)).Op("||").Id("raw").Op(">").Lit(int(op.Max))).Block(
			jen.Panic(jen.Qual("fmt", "Errorf").Call(jen.Lit("%w: Variant::Operator value %d"), jen.Id("ErrUnrepresentableDiscriminant"), jen.Id("raw"))),
		),
		jen.Return(jen.Qual(pkgs.Runtime, "VariantOperator").Call(jen.Id("raw"))),
	)

	f.Comment("The math types are converted by reinterpreting memory, so their Go and")
	f.Comment("engine layouts must match. Each line fails to compile on a mismatch.")
	f.Var().Defs(layoutAsserts(pkgs)...)

	out, err := render(f, "discriminants.go")
	if err != nil {
		return nil, err
	}
	return []*OutputFile{out}, nil
}

// layoutAsserts indexes a one-element array with the size difference, which
// is a constant expression that only compiles when it is zero.
func layoutAsserts(pkgs resolver.Packages) []jen.Code {
	var kinds []resolver.Kind
	for _, k := range resolver.AllKinds() {
		if resolver.IsReinterpretable(k) {
			kinds = append(kinds, k)
		}
	}

	var asserts []jen.Code
	for _, k := range kinds {
		size, _ := resolver.SizeOf(k)
		goType := resolver.Representation(resolver.Tag{Kind: k}, resolver.Stored, pkgs)
		hostType := resolver.Representation(resolver.Tag{Kind: k}, resolver.RawReturn, pkgs)
		for _, typ := range []*jen.Statement{goType, hostType} {
			asserts = append(asserts, jen.Id("_").Op("=").Index(jen.Lit(1)).Struct().Values().Index(
				jen.Qual("unsafe", "Sizeof").Call(typ.Clone().Values()).Op("-").Lit(size),
			))
		}
	}
	return asserts
}
