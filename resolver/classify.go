package resolver

import "strings"

const enumPrefix = "enum."

// builtinTypes maps every fixed manifest type name to its kind.
var builtinTypes = map[string]Kind{
	"void":             KindVoid,
	"String":           KindString,
	"float":            KindF64,
	"int":              KindI64,
	"bool":             KindBool,
	"Vector2":          KindVector2,
	"Vector3":          KindVector3,
	"Quat":             KindQuat,
	"Transform":        KindTransform,
	"Transform2D":      KindTransform2D,
	"Rect2":            KindRect2,
	"Plane":            KindPlane,
	"Basis":            KindBasis,
	"Color":            KindColor,
	"NodePath":         KindNodePath,
	"Variant":          KindVariant,
	"AABB":             KindAabb,
	"RID":              KindRid,
	"Array":            KindVariantArray,
	"Dictionary":       KindDictionary,
	"PoolByteArray":    KindByteArray,
	"PoolStringArray":  KindStringArray,
	"PoolVector2Array": KindVector2Array,
	"PoolVector3Array": KindVector3Array,
	"PoolColorArray":   KindColorArray,
	"PoolIntArray":     KindInt32Array,
	"PoolRealArray":    KindFloat32Array,
}

// fixedEnums have hand-written representations in the runtime and are matched
// before the generic enum rule.
var fixedEnums = map[string]Kind{
	"enum.Error":             KindResult,
	"enum.Variant::Type":     KindVariantType,
	"enum.Variant::Operator": KindVariantOperator,
	"enum.Vector3::Axis":     KindVector3Axis,
}

// Classify maps a manifest type string to its Tag. It is total: any string that
// is neither a builtin nor an enum reference is taken to name a class.
func Classify(raw string) Tag {
	return classify(raw, Classify)
}

// classify resolves raw, using lookup for the recursive owner classification of
// enum references.
func classify(raw string, lookup func(string) Tag) Tag {
	if k, ok := builtinTypes[raw]; ok {
		return Tag{Kind: k}
	}
	if k, ok := fixedEnums[raw]; ok {
		return Tag{Kind: k}
	}
	if strings.HasPrefix(raw, enumPrefix) {
		return classifyEnum(raw[len(enumPrefix):], lookup)
	}
	return ObjectTag(raw)
}

func classifyEnum(ref string, lookup func(string) Tag) Tag {
	owner, name, ok := strings.Cut(ref, "::")
	if !ok {
		// A free-standing enum has no owner to nest under.
		return Tag{Kind: KindEnum, Path: Path{Module: ModuleName(ref), Name: PascalCase(ref)}}
	}

	// Owners are named like their normalized class.
	owner = strings.TrimPrefix(owner, "_")
	path := Path{
		Module: ModuleName(owner),
		Owner:  owner,
		Name:   PascalCase(name),
	}
	if lookup(owner).Kind.IsNamed() {
		path.Generated = true
	}
	return Tag{Kind: KindEnum, Path: path}
}

// ObjectTag returns the tag for a reference to the class named name.
func ObjectTag(name string) Tag {
	return Tag{
		Kind: KindObject,
		Path: Path{Generated: true, Module: ModuleName(name), Name: name},
	}
}

// ModuleName case-folds a class or type name into its module name,
// e.g. "AnimationPlayer" becomes "animation_player" and "Physics2DServer"
// becomes "physics_2d_server".
func ModuleName(name string) string {
	return SnakeCase(name)
}

// EnumRef builds the manifest reference string for an enum declared on a class.
func EnumRef(owner, enum string) string {
	return enumPrefix + owner + "::" + enum
}
