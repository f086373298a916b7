package model

import (
	"strings"
)

// RootRefCountedClass is the engine class every reference-counted class derives from.
const RootRefCountedClass = "Reference"

// ConstructorName is the method name the generated bindings reserve for constructors.
const ConstructorName = "new"

// Manifest is the in-memory form of the engine's api.json.
type Manifest struct {
	Classes []*Class

	// Private holds the names of classes that carried a leading underscore in the
	// manifest, stored without the underscore.
	Private map[string]bool

	index map[string]*Class
}

// Class describes one engine class.
type Class struct {
	Name          string           `json:"name"`
	BaseClass     string           `json:"base_class"`
	APIType       string           `json:"api_type"`
	Singleton     bool             `json:"singleton"`
	SingletonName string           `json:"singleton_name,omitempty"`
	IsReference   bool             `json:"is_reference"`
	Instantiable  bool             `json:"instanciable"`
	Properties    []Property       `json:"properties"`
	Methods       []Method         `json:"methods"`
	Signals       []Signal         `json:"signals,omitempty"`
	Enums         []Enum           `json:"enums"`
	Constants     map[string]int64 `json:"constants"`
}

// Property describes an engine property backed by getter/setter methods.
type Property struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Getter string `json:"getter"`
	Setter string `json:"setter"`
	Index  int64  `json:"index"`
}

// Method describes a bound engine method.
type Method struct {
	Name       string     `json:"name"`
	ReturnType string     `json:"return_type"`
	IsEditor   bool       `json:"is_editor"`
	IsNoScript bool       `json:"is_noscript"`
	IsConst    bool       `json:"is_const"`
	IsReverse  bool       `json:"is_reverse"`
	IsVirtual  bool       `json:"is_virtual"`
	HasVarargs bool       `json:"has_varargs"`
	Arguments  []Argument `json:"arguments"`
}

// Argument describes a single method argument. DefaultValue is kept verbatim.
type Argument struct {
	Name            string `json:"name"`
	Type            string `json:"type"`
	HasDefaultValue bool   `json:"has_default_value"`
	DefaultValue    string `json:"default_value"`
}

// Signal describes a signal a class can emit.
type Signal struct {
	Name      string           `json:"name"`
	Arguments []SignalArgument `json:"arguments"`
}

// SignalArgument is a named, typed signal parameter.
type SignalArgument struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// MethodName pairs the identifier used inside the bindings with the name the
// engine registers the method under.
type MethodName struct {
	Internal string
	Original string
}

// NewManifest wraps decoded classes and builds the lookup index.
func NewManifest(classes []*Class) *Manifest {
	m := &Manifest{
		Classes: classes,
		Private: map[string]bool{},
	}
	m.reindex()
	return m
}

func (m *Manifest) reindex() {
	m.index = make(map[string]*Class, len(m.Classes))
	for _, c := range m.Classes {
		if _, dup := m.index[c.Name]; !dup {
			m.index[c.Name] = c
		}
	}
}

// Find returns the class with the given name, or nil.
func (m *Manifest) Find(name string) *Class {
	if m.index == nil {
		m.reindex()
	}
	return m.index[name]
}

// WasPrivate reports whether the class was underscore-prefixed in the manifest.
func (m *Manifest) WasPrivate(name string) bool {
	return m.Private[name]
}

// EngineName returns the name the engine registers the class under, which keeps
// the leading underscore for private classes.
func (m *Manifest) EngineName(c *Class) string {
	if m.Private[c.Name] {
		return "_" + c.Name
	}
	return c.Name
}

// BaseClassName returns the base class name, or "" and false for root classes.
func (c *Class) BaseClassName() (string, bool) {
	if c.BaseClass == "" {
		return "", false
	}
	return c.BaseClass, true
}

// IsRefCounted reports whether instances are shared with engine-side reference counting.
func (c *Class) IsRefCounted() bool {
	return c.IsReference || c.Name == RootRefCountedClass
}

// IsPointerSafe reports whether the binding layer can hold the object address
// without tracking its lifetime itself.
func (c *Class) IsPointerSafe() bool {
	return c.IsRefCounted() || c.Singleton
}

// IsGetter reports whether some property uses name as its getter.
func (c *Class) IsGetter(name string) bool {
	for _, p := range c.Properties {
		if p.Getter == name {
			return true
		}
	}
	return false
}

// PropertyForAccessor returns the property whose getter or setter is name.
func (c *Class) PropertyForAccessor(name string) (*Property, bool) {
	for i := range c.Properties {
		p := &c.Properties[i]
		if p.Getter == name || p.Setter == name {
			return p, true
		}
	}
	return nil, false
}

// EngineSingletonName returns the name used to fetch the singleton instance.
func (c *Class) EngineSingletonName() string {
	if c.SingletonName != "" {
		return c.SingletonName
	}
	return c.Name
}

// GetName resolves the method's internal identifier. A method literally named
// "new" would collide with the generated constructor, so it is aliased to "_new"
// while the original name is kept for engine-side lookup.
func (m *Method) GetName() MethodName {
	if m.Name == ConstructorName {
		return MethodName{Internal: "_" + ConstructorName, Original: ConstructorName}
	}
	return MethodName{Internal: m.Name, Original: m.Name}
}

// RequiredArgs returns the number of leading arguments without a default value.
func (m *Method) RequiredArgs() int {
	n := 0
	for _, a := range m.Arguments {
		if a.HasDefaultValue {
			break
		}
		n++
	}
	return n
}

// CompareEnums orders enums lexicographically by name.
func CompareEnums(a, b Enum) int {
	return strings.Compare(a.Name, b.Name)
}
