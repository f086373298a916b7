package resolver

import (
	"sort"

	"github.com/KarimHamidou/gdbindgen/model"
)

// SymbolTable interns every distinct type string of a manifest once. Later
// lookups are plain map reads.
type SymbolTable struct {
	symbols map[string]Tag
}

// NewSymbolTable interns the class names, enum declarations, and every type
// reference of the normalized manifest m.
func NewSymbolTable(m *model.Manifest) *SymbolTable {
	s := &SymbolTable{symbols: map[string]Tag{}}
	for _, c := range m.Classes {
		s.Intern(c.Name)
		for _, e := range c.Enums {
			s.Intern(EnumRef(c.Name, e.Name))
		}
		for _, p := range c.Properties {
			s.Intern(p.Type)
		}
		for _, method := range c.Methods {
			s.Intern(method.ReturnType)
			for _, a := range method.Arguments {
				s.Intern(a.Type)
			}
		}
		for _, sig := range c.Signals {
			for _, a := range sig.Arguments {
				s.Intern(a.Type)
			}
		}
	}
	return s
}

// Intern classifies raw once and records the result.
func (s *SymbolTable) Intern(raw string) Tag {
	if t, ok := s.symbols[raw]; ok {
		return t
	}
	t := classify(raw, s.Intern)
	s.symbols[raw] = t
	return t
}

// Lookup returns the interned tag for raw without classifying.
func (s *SymbolTable) Lookup(raw string) (Tag, bool) {
	t, ok := s.symbols[raw]
	return t, ok
}

// Resolve returns the tag for raw, interning it on a miss.
func (s *SymbolTable) Resolve(raw string) Tag {
	return s.Intern(raw)
}

// Len returns the number of interned type strings.
func (s *SymbolTable) Len() int {
	return len(s.symbols)
}

// Names returns the interned type strings, sorted.
func (s *SymbolTable) Names() []string {
	names := make([]string, 0, len(s.symbols))
	for name := range s.symbols {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
