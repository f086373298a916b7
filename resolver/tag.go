package resolver

import "strings"

// GeneratedNamespace is the path segment under which manifest classes and
// their enums are generated.
const GeneratedNamespace = "generated"

// Path locates a named type. Objects use Name only; enums also record the
// type or class that owns them.
type Path struct {
	// Generated is true when the type lives in the generated bindings rather
	// than in the hand-written runtime.
	Generated bool
	// Module is the case-folded owner name, e.g. "node".
	Module string
	// Owner is the owning class or type as written in the manifest. Empty for objects.
	Owner string
	// Name is the type name, e.g. "Node" or "PauseMode".
	Name string
}

// Segments returns the path components, outermost first.
func (p Path) Segments() []string {
	var segs []string
	if p.Generated {
		segs = append(segs, GeneratedNamespace)
	}
	if p.Module != "" {
		segs = append(segs, p.Module)
	}
	return append(segs, p.Name)
}

func (p Path) String() string {
	return strings.Join(p.Segments(), "::")
}

// GoName returns the Go identifier of the type within its package.
func (p Path) GoName() string {
	return p.Owner + p.Name
}

// Tag is the classification of one manifest type string.
type Tag struct {
	Kind Kind
	Path Path
}

func (t Tag) String() string {
	if t.Kind.IsNamed() {
		return t.Kind.String() + "(" + t.Path.String() + ")"
	}
	return t.Kind.String()
}

// ClassName returns the manifest class an object tag refers to.
func (t Tag) ClassName() (string, bool) {
	if t.Kind != KindObject {
		return "", false
	}
	return t.Path.Name, true
}
