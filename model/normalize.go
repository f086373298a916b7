package model

import "strings"

// Normalize runs the load-time passes over a freshly decoded manifest: leading
// underscore stripping, then enum prefix stripping. The manifest is not modified
// afterwards.
func Normalize(m *Manifest) {
	StripLeadingUnderscores(m)
	for _, c := range m.Classes {
		for i := range c.Enums {
			c.Enums[i].StripCommonPrefix()
		}
	}
	m.reindex()
}

// StripLeadingUnderscores removes the "internal" underscore marker from class
// names (recording them in m.Private) and from method return and argument type
// references, including the owner of enum references ("enum._OS::Mode").
// Method and argument identifiers are not touched.
func StripLeadingUnderscores(m *Manifest) {
	if m.Private == nil {
		m.Private = map[string]bool{}
	}
	for _, c := range m.Classes {
		if strings.HasPrefix(c.Name, "_") {
			c.Name = c.Name[1:]
			m.Private[c.Name] = true
		}
		for i := range c.Methods {
			method := &c.Methods[i]
			method.ReturnType = stripTypeUnderscore(method.ReturnType)
			for j := range method.Arguments {
				method.Arguments[j].Type = stripTypeUnderscore(method.Arguments[j].Type)
			}
		}
	}
	m.reindex()
}

func stripTypeUnderscore(t string) string {
	const enumPrivate = "enum._"
	if strings.HasPrefix(t, enumPrivate) {
		return "enum." + t[len(enumPrivate):]
	}
	return strings.TrimPrefix(t, "_")
}
