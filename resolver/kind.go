package resolver

// Kind is the closed set of shapes a manifest type string can classify as.
type Kind int

const (
	KindVoid Kind = iota
	KindString
	KindF64
	KindI64
	KindBool
	KindVector2
	KindVector3
	KindVector3Axis
	KindQuat
	KindTransform
	KindTransform2D
	KindRect2
	KindPlane
	KindBasis
	KindColor
	KindNodePath
	KindVariant
	KindAabb
	KindRid
	KindVariantArray
	KindDictionary
	KindByteArray
	KindStringArray
	KindVector2Array
	KindVector3Array
	KindColorArray
	KindInt32Array
	KindFloat32Array
	KindResult
	KindVariantType
	KindVariantOperator
	KindEnum
	KindObject
)

var kindNames = [...]string{
	KindVoid:            "void",
	KindString:          "string",
	KindF64:             "f64",
	KindI64:             "i64",
	KindBool:            "bool",
	KindVector2:         "vector2",
	KindVector3:         "vector3",
	KindVector3Axis:     "vector3_axis",
	KindQuat:            "quat",
	KindTransform:       "transform",
	KindTransform2D:     "transform2d",
	KindRect2:           "rect2",
	KindPlane:           "plane",
	KindBasis:           "basis",
	KindColor:           "color",
	KindNodePath:        "node_path",
	KindVariant:         "variant",
	KindAabb:            "aabb",
	KindRid:             "rid",
	KindVariantArray:    "variant_array",
	KindDictionary:      "dictionary",
	KindByteArray:       "byte_array",
	KindStringArray:     "string_array",
	KindVector2Array:    "vector2_array",
	KindVector3Array:    "vector3_array",
	KindColorArray:      "color_array",
	KindInt32Array:      "int32_array",
	KindFloat32Array:    "float32_array",
	KindResult:          "result",
	KindVariantType:     "variant_type",
	KindVariantOperator: "variant_operator",
	KindEnum:            "enum",
	KindObject:          "object",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// AllKinds returns every Kind in declaration order.
func AllKinds() []Kind {
	kinds := make([]Kind, 0, len(kindNames))
	for k := range kindNames {
		kinds = append(kinds, Kind(k))
	}
	return kinds
}

// IsNamed reports whether tags of this kind carry a Path.
func (k Kind) IsNamed() bool {
	return k == KindEnum || k == KindObject
}
