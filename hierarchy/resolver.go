// Package hierarchy answers inheritance and lifetime questions over a loaded
// manifest.
package hierarchy

import (
	"errors"
	"fmt"

	"github.com/KarimHamidou/gdbindgen/model"
)

var (
	// ErrDanglingBaseClass is returned when a class names a base class that is
	// not part of the manifest.
	ErrDanglingBaseClass = errors.New("dangling base class")

	// ErrPreconditionViolated signals a query made on a class that does not
	// satisfy its documented precondition. It is a caller bug.
	ErrPreconditionViolated = errors.New("precondition violated")

	// ErrInheritanceCycle is returned when a base-class chain revisits a class.
	ErrInheritanceCycle = errors.New("inheritance cycle")
)

// threadUnsafeSingletons lists engine servers that must not be touched from
// more than one thread at a time.
var threadUnsafeSingletons = map[string]bool{
	"VisualServer":    true,
	"PhysicsServer":   true,
	"Physics3DServer": true,
	"Physics2DServer": true,
}

// Resolver walks the base-class relation of a manifest. It never modifies the
// manifest.
type Resolver struct {
	manifest *model.Manifest
}

// New returns a Resolver over m.
func New(m *model.Manifest) *Resolver {
	return &Resolver{manifest: m}
}

// Inherits reports whether ancestor appears anywhere on c's base-class chain.
// A class does not inherit from itself. A base class missing from the manifest
// ends the walk.
func (r *Resolver) Inherits(c *model.Class, ancestor string) bool {
	// The bound keeps a cyclic manifest from looping forever.
	for steps := 0; c != nil && steps <= len(r.manifest.Classes); steps++ {
		base, ok := c.BaseClassName()
		if !ok {
			return false
		}
		if base == ancestor {
			return true
		}
		c = r.manifest.Find(base)
	}
	return false
}

// BaseClass returns the parent of c, or nil for a root class.
func (r *Resolver) BaseClass(c *model.Class) (*model.Class, error) {
	name, ok := c.BaseClassName()
	if !ok {
		return nil, nil
	}
	base := r.manifest.Find(name)
	if base == nil {
		return nil, fmt.Errorf("%w: class %q extends %q", ErrDanglingBaseClass, c.Name, name)
	}
	return base, nil
}

// Ancestors returns the base-class chain of c, nearest first.
func (r *Resolver) Ancestors(c *model.Class) ([]*model.Class, error) {
	var chain []*model.Class
	seen := map[string]bool{c.Name: true}
	for cur := c; ; {
		base, err := r.BaseClass(cur)
		if err != nil {
			return nil, err
		}
		if base == nil {
			return chain, nil
		}
		if seen[base.Name] {
			return nil, fmt.Errorf("%w: through class %q", ErrInheritanceCycle, base.Name)
		}
		seen[base.Name] = true
		chain = append(chain, base)
		cur = base
	}
}

// IsSingletonThreadSafe reports whether the singleton c may be used from
// several threads. Calling it on a non-singleton returns ErrPreconditionViolated.
func (r *Resolver) IsSingletonThreadSafe(c *model.Class) (bool, error) {
	if !c.Singleton {
		return false, fmt.Errorf("%w: class %q is not a singleton", ErrPreconditionViolated, c.Name)
	}
	return !threadUnsafeSingletons[c.Name], nil
}

// IsRefCountRoot reports whether c is the topmost reference-counted class of
// its chain, the class that releases references for all its descendants.
func (r *Resolver) IsRefCountRoot(c *model.Class) (bool, error) {
	if !c.IsRefCounted() {
		return false, nil
	}
	base, err := r.BaseClass(c)
	if err != nil {
		return false, err
	}
	return base == nil || !base.IsRefCounted(), nil
}

// OwnsLifetime reports whether c is the topmost class of its chain whose
// instances the caller must free manually.
func (r *Resolver) OwnsLifetime(c *model.Class) (bool, error) {
	if c.IsPointerSafe() {
		return false, nil
	}
	base, err := r.BaseClass(c)
	if err != nil {
		return false, err
	}
	return base == nil || base.IsPointerSafe(), nil
}
