package model

import (
	"sort"
	"strings"
	"unicode"
)

// Enum describes a class-scoped enumeration. Values may repeat and need not be
// contiguous.
type Enum struct {
	Name   string           `json:"name"`
	Values map[string]int64 `json:"values"`
}

// EnumVariant is a single name/value pair of an Enum.
type EnumVariant struct {
	Name  string
	Value int64
}

// SortedVariants returns the variants ordered by value, then by name.
func (e *Enum) SortedVariants() []EnumVariant {
	out := make([]EnumVariant, 0, len(e.Values))
	for name, v := range e.Values {
		out = append(out, EnumVariant{Name: name, Value: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value < out[j].Value
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// CommonPrefix returns the longest run of underscore-terminated segments shared
// by every variant. It stops one segment early rather than leave a variant empty.
func (e *Enum) CommonPrefix() string {
	if len(e.Values) <= 1 {
		return ""
	}

	names := make([]string, 0, len(e.Values))
	for name := range e.Values {
		names = append(names, name)
	}
	sort.Strings(names)

	prefix := ""
	for {
		rest := names[0][len(prefix):]
		idx := strings.IndexByte(rest, '_')
		if idx <= 0 {
			return prefix
		}
		next := prefix + rest[:idx+1]
		for _, name := range names {
			if !strings.HasPrefix(name, next) || len(name) == len(next) {
				return prefix
			}
		}
		prefix = next
	}
}

// StripCommonPrefix removes CommonPrefix from every variant. A stripped name that
// starts with a digit gets a leading underscore so it stays a valid identifier.
// Enums with a single variant or without a shared prefix are left untouched.
func (e *Enum) StripCommonPrefix() {
	prefix := e.CommonPrefix()
	if prefix == "" {
		return
	}

	stripped := make(map[string]int64, len(e.Values))
	for name, v := range e.Values {
		n := name[len(prefix):]
		if unicode.IsDigit(rune(n[0])) {
			n = "_" + n
		}
		stripped[n] = v
	}
	e.Values = stripped
}
