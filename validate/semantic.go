package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/KarimHamidou/gdbindgen/hierarchy"
	"github.com/KarimHamidou/gdbindgen/model"
)

// ValidationError represents a single semantic validation finding.
type ValidationError struct {
	Path    string // e.g., "classes[3].methods[1].name"
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationResult holds all validation errors and warnings. Warnings do not
// make a manifest invalid.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

func (r *ValidationResult) addError(path, message string) {
	r.Errors = append(r.Errors, ValidationError{Path: path, Message: message})
}

func (r *ValidationResult) addWarning(path, message string) {
	r.Warnings = append(r.Warnings, ValidationError{Path: path, Message: message})
}

func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

func (r *ValidationResult) Error() string {
	if r.IsValid() {
		return ""
	}
	var msgs []string
	for _, e := range r.Errors {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "\n")
}

// Validate performs semantic validation on a normalized manifest. Structural
// problems are caught earlier by the JSON Schema in the loader.
func Validate(m *model.Manifest) *ValidationResult {
	result := &ValidationResult{}
	h := hierarchy.New(m)

	seen := make(map[string]bool)
	for i, c := range m.Classes {
		classPath := fmt.Sprintf("classes[%d]", i)
		if c.Name == "" {
			result.addError(classPath+".name", "class name must not be empty")
			continue
		}
		if seen[c.Name] {
			result.addError(classPath+".name", fmt.Sprintf("duplicate class name %q", c.Name))
		}
		seen[c.Name] = true

		if _, err := h.Ancestors(c); err != nil {
			switch {
			case errors.Is(err, hierarchy.ErrDanglingBaseClass):
				// Only report the class that names the missing base directly.
				if _, berr := h.BaseClass(c); berr != nil {
					result.addError(classPath+".base_class", fmt.Sprintf("base class %q not found", c.BaseClass))
				}
			case errors.Is(err, hierarchy.ErrInheritanceCycle):
				result.addError(classPath+".base_class", fmt.Sprintf("class %q is part of an inheritance cycle", c.Name))
			default:
				result.addError(classPath+".base_class", err.Error())
			}
		}

		if c.SingletonName != "" && !c.Singleton {
			result.addError(classPath+".singleton_name", fmt.Sprintf("class %q has a singleton name but is not a singleton", c.Name))
		}

		validateMethods(result, classPath, c)
		validateEnums(result, classPath, c)
		validateProperties(result, classPath, c)
	}

	return result
}

func validateMethods(result *ValidationResult, classPath string, c *model.Class) {
	names := make(map[string]bool)
	for j, method := range c.Methods {
		methodPath := fmt.Sprintf("%s.methods[%d]", classPath, j)
		if method.Name == "" {
			result.addError(methodPath+".name", "method name must not be empty")
			continue
		}
		if names[method.Name] {
			result.addError(methodPath+".name", fmt.Sprintf("duplicate method %q in class %q", method.Name, c.Name))
		}
		names[method.Name] = true

		if method.ReturnType == "" {
			result.addError(methodPath+".return_type", fmt.Sprintf("method %q has no return type", method.Name))
		}

		argNames := make(map[string]bool)
		defaulted := false
		for k, arg := range method.Arguments {
			argPath := fmt.Sprintf("%s.arguments[%d]", methodPath, k)
			if arg.Type == "" {
				result.addError(argPath+".type", fmt.Sprintf("argument %q has no type", arg.Name))
			}
			if argNames[arg.Name] {
				result.addError(argPath+".name", fmt.Sprintf("duplicate argument %q in method %q", arg.Name, method.Name))
			}
			argNames[arg.Name] = true

			if arg.HasDefaultValue {
				defaulted = true
			} else if defaulted {
				result.addWarning(argPath, fmt.Sprintf("argument %q has no default but follows a defaulted argument; it will be required", arg.Name))
			}
		}
	}
}

func validateEnums(result *ValidationResult, classPath string, c *model.Class) {
	names := make(map[string]bool)
	for j, e := range c.Enums {
		enumPath := fmt.Sprintf("%s.enums[%d]", classPath, j)
		if names[e.Name] {
			result.addError(enumPath+".name", fmt.Sprintf("duplicate enum %q in class %q", e.Name, c.Name))
		}
		names[e.Name] = true

		for variant := range e.Values {
			if variant == "" {
				result.addError(enumPath+".values", fmt.Sprintf("enum %q has an empty variant name", e.Name))
			}
		}
	}
}

func validateProperties(result *ValidationResult, classPath string, c *model.Class) {
	methods := make(map[string]bool, len(c.Methods))
	for _, method := range c.Methods {
		methods[method.Name] = true
	}
	for j, p := range c.Properties {
		propPath := fmt.Sprintf("%s.properties[%d]", classPath, j)
		// Accessors are often inherited or script-only, so an unknown one is
		// only worth a warning.
		if p.Getter != "" && !methods[p.Getter] {
			result.addWarning(propPath+".getter", fmt.Sprintf("getter %q of property %q is not a method of %q", p.Getter, p.Name, c.Name))
		}
		if p.Setter != "" && !methods[p.Setter] {
			result.addWarning(propPath+".setter", fmt.Sprintf("setter %q of property %q is not a method of %q", p.Setter, p.Name, c.Name))
		}
	}
}
