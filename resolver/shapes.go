package resolver

import (
	"github.com/dave/jennifer/jen"
)

// Context selects which of a type's call-site shapes is wanted.
type Context int

const (
	// Stored is the type of a value held by user code.
	Stored Context = iota
	// Argument is the parameter type of a generated method.
	Argument
	// RawArgument is the parameter type of a raw engine call.
	RawArgument
	// RawReturn is the result type of a raw engine call.
	RawReturn
	// PostCall is the expression converting a raw result named ReturnVar into
	// its Stored shape.
	PostCall
)

var contextNames = [...]string{
	Stored:      "stored",
	Argument:    "argument",
	RawArgument: "raw_argument",
	RawReturn:   "raw_return",
	PostCall:    "post_call",
}

func (c Context) String() string {
	if c < 0 || int(c) >= len(contextNames) {
		return "unknown"
	}
	return contextNames[c]
}

// ReturnVar is the identifier a PostCall expression reads the raw result from.
const ReturnVar = "ret"

// Packages names the Go import paths generated code refers to.
type Packages struct {
	// Runtime holds the hand-written value types, e.g. gdnative.Vector3.
	Runtime string
	// Sys holds the engine's C-level types.
	Sys string
	// Generated is the package the bindings are emitted into.
	Generated string
}

// valueType is the runtime/sys naming of a kind that is neither a Go scalar
// nor a named tag.
type valueType struct {
	runtime string
	sys     string
}

var valueTypes = map[Kind]valueType{
	KindString:       {"String", "String"},
	KindVector2:      {"Vector2", "Vector2"},
	KindVector3:      {"Vector3", "Vector3"},
	KindQuat:         {"Quat", "Quat"},
	KindTransform:    {"Transform", "Transform"},
	KindTransform2D:  {"Transform2D", "Transform2D"},
	KindRect2:        {"Rect2", "Rect2"},
	KindPlane:        {"Plane", "Plane"},
	KindBasis:        {"Basis", "Basis"},
	KindColor:        {"Color", "Color"},
	KindNodePath:     {"NodePath", "NodePath"},
	KindVariant:      {"Variant", "Variant"},
	KindAabb:         {"Aabb", "Aabb"},
	KindRid:          {"Rid", "Rid"},
	KindVariantArray: {"VariantArray", "Array"},
	KindDictionary:   {"Dictionary", "Dictionary"},
	KindByteArray:    {"ByteArray", "PoolByteArray"},
	KindStringArray:  {"StringArray", "PoolStringArray"},
	KindVector2Array: {"Vector2Array", "PoolVector2Array"},
	KindVector3Array: {"Vector3Array", "PoolVector3Array"},
	KindColorArray:   {"ColorArray", "PoolColorArray"},
	KindInt32Array:   {"Int32Array", "PoolIntArray"},
	KindFloat32Array: {"Float32Array", "PoolRealArray"},
}

// runtimeEnums are the closed enums with hand-written runtime types.
var runtimeEnums = map[Kind]string{
	KindVector3Axis:     "Vector3Axis",
	KindVariantType:     "VariantType",
	KindVariantOperator: "VariantOperator",
}

// IsHandle reports whether values of kind k are engine-owned handles passed to
// raw calls by pointer rather than copied.
func IsHandle(k Kind) bool {
	_, ok := valueTypes[k]
	return ok && !IsReinterpretable(k)
}

// isEnumLike reports whether the raw form of k is a plain integer.
func isEnumLike(k Kind) bool {
	switch k {
	case KindEnum, KindResult, KindVector3Axis, KindVariantType, KindVariantOperator:
		return true
	}
	return false
}

// Representation renders the shape of t in context ctx. Void renders as an
// empty statement in every context.
func Representation(t Tag, ctx Context, pkgs Packages) *jen.Statement {
	if t.Kind == KindVoid {
		return jen.Null()
	}
	switch ctx {
	case Argument:
		return argument(t, pkgs)
	case RawArgument:
		return rawArgument(t, pkgs)
	case RawReturn:
		return rawReturn(t, pkgs)
	case PostCall:
		return postCall(t, pkgs)
	default:
		return stored(t, pkgs)
	}
}

func stored(t Tag, pkgs Packages) *jen.Statement {
	switch t.Kind {
	case KindF64:
		return jen.Float64()
	case KindI64:
		return jen.Int64()
	case KindBool:
		return jen.Bool()
	case KindResult:
		return jen.Error()
	case KindEnum:
		return enumType(t, pkgs)
	case KindObject:
		return jen.Op("*").Qual(pkgs.Generated, t.Path.Name)
	}
	if name, ok := runtimeEnums[t.Kind]; ok {
		return jen.Qual(pkgs.Runtime, name)
	}
	return jen.Qual(pkgs.Runtime, valueTypes[t.Kind].runtime)
}

func argument(t Tag, pkgs Packages) *jen.Statement {
	switch t.Kind {
	case KindVariant:
		return jen.Qual(pkgs.Runtime, "ToVariant")
	case KindString:
		return jen.Qual(pkgs.Runtime, "IntoString")
	case KindNodePath:
		return jen.Qual(pkgs.Runtime, "IntoNodePath")
	case KindResult:
		return jen.Qual(pkgs.Runtime, "Error")
	case KindObject:
		return jen.Qual(pkgs.Generated, t.Path.Name+"Arg")
	}
	return stored(t, pkgs)
}

func rawArgument(t Tag, pkgs Packages) *jen.Statement {
	if t.Kind == KindObject {
		return jen.Op("*").Qual(pkgs.Sys, "Object")
	}
	if isEnumLike(t.Kind) {
		return jen.Int64()
	}
	return stored(t, pkgs)
}

func rawReturn(t Tag, pkgs Packages) *jen.Statement {
	switch t.Kind {
	case KindF64:
		return jen.Qual(pkgs.Sys, "Double")
	case KindI64:
		return jen.Qual(pkgs.Sys, "Int")
	case KindBool:
		return jen.Qual(pkgs.Sys, "Bool")
	case KindObject:
		return jen.Op("*").Qual(pkgs.Sys, "Object")
	}
	if isEnumLike(t.Kind) {
		return jen.Int64()
	}
	return jen.Qual(pkgs.Sys, valueTypes[t.Kind].sys)
}

func postCall(t Tag, pkgs Packages) *jen.Statement {
	ret := jen.Id(ReturnVar)
	switch t.Kind {
	case KindF64:
		return jen.Float64().Call(ret)
	case KindI64:
		return jen.Int64().Call(ret)
	case KindBool:
		return jen.Bool().Call(ret)
	case KindResult, KindVariantOperator:
		return jen.Qual(pkgs.Generated, DecoderName(t.Kind)).Call(ret)
	case KindEnum:
		return enumType(t, pkgs).Call(ret)
	case KindObject:
		return jen.Qual(pkgs.Generated, t.Path.Name+"FromSys").Call(ret)
	}
	if name, ok := runtimeEnums[t.Kind]; ok {
		return jen.Qual(pkgs.Runtime, name).Call(ret)
	}
	name := valueTypes[t.Kind].runtime
	if IsReinterpretable(t.Kind) {
		return jen.Op("*").Parens(
			jen.Op("*").Qual(pkgs.Runtime, name),
		).Parens(jen.Qual("unsafe", "Pointer").Call(jen.Op("&").Add(ret)))
	}
	return jen.Qual(pkgs.Runtime, name+"FromSys").Call(ret)
}

func enumType(t Tag, pkgs Packages) *jen.Statement {
	if t.Path.Generated {
		return jen.Qual(pkgs.Generated, t.Path.GoName())
	}
	return jen.Qual(pkgs.Runtime, t.Path.GoName())
}

// ArgumentToRaw converts expr, a value in the Argument shape of t, into the
// RawArgument shape.
func ArgumentToRaw(t Tag, expr jen.Code, pkgs Packages) *jen.Statement {
	switch t.Kind {
	case KindObject:
		return jen.Qual(pkgs.Generated, "rawObject").Call(expr)
	case KindString:
		return jen.Add(expr).Dot("IntoString").Call()
	case KindNodePath:
		return jen.Add(expr).Dot("IntoNodePath").Call()
	case KindVariant:
		return jen.Add(expr).Dot("ToVariant").Call()
	}
	if isEnumLike(t.Kind) {
		return jen.Int64().Call(expr)
	}
	return jen.Add(expr)
}

// Signature returns a short stable name for t's raw shape, used to share one
// raw-call adapter between methods with the same raw signature.
func Signature(t Tag) string {
	switch {
	case t.Kind == KindObject:
		return "obj"
	case isEnumLike(t.Kind):
		return "i64"
	}
	return t.Kind.String()
}
