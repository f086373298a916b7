package resolver

// Field is one scalar component of a plain-old-data struct.
type Field struct {
	Name string
	Type string
}

// fieldSizes are the byte sizes of the scalar field types used in layouts.
var fieldSizes = map[string]int{
	"float32": 4,
}

func floats(names ...string) []Field {
	fields := make([]Field, len(names))
	for i, n := range names {
		fields[i] = Field{Name: n, Type: "float32"}
	}
	return fields
}

// layouts describes the engine's C structs for the math types the bindings
// reinterpret rather than convert. The runtime's Go structs declare the same
// fields in the same order.
var layouts = map[Kind][]Field{
	KindVector2:     floats("x", "y"),
	KindVector3:     floats("x", "y", "z"),
	KindQuat:        floats("x", "y", "z", "w"),
	KindRect2:       floats("position.x", "position.y", "size.x", "size.y"),
	KindPlane:       floats("normal.x", "normal.y", "normal.z", "d"),
	KindColor:       floats("r", "g", "b", "a"),
	KindAabb:        floats("position.x", "position.y", "position.z", "size.x", "size.y", "size.z"),
	KindTransform2D: floats("elements[0].x", "elements[0].y", "elements[1].x", "elements[1].y", "elements[2].x", "elements[2].y"),
	KindBasis: floats(
		"elements[0].x", "elements[0].y", "elements[0].z",
		"elements[1].x", "elements[1].y", "elements[1].z",
		"elements[2].x", "elements[2].y", "elements[2].z",
	),
	KindTransform: floats(
		"basis.elements[0].x", "basis.elements[0].y", "basis.elements[0].z",
		"basis.elements[1].x", "basis.elements[1].y", "basis.elements[1].z",
		"basis.elements[2].x", "basis.elements[2].y", "basis.elements[2].z",
		"origin.x", "origin.y", "origin.z",
	),
}

// SizeOf returns the byte size of a reinterpretable kind.
func SizeOf(k Kind) (int, bool) {
	fields, ok := layouts[k]
	if !ok {
		return 0, false
	}
	size := 0
	for _, f := range fields {
		size += fieldSizes[f.Type]
	}
	return size, true
}

// IsReinterpretable reports whether a raw return of kind k is converted by
// reinterpreting its memory.
func IsReinterpretable(k Kind) bool {
	_, ok := layouts[k]
	return ok
}
