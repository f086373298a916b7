package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KarimHamidou/gdbindgen/model"
)

func chain() *model.Manifest {
	return model.NewManifest([]*model.Class{
		{Name: "Object"},
		{Name: "Node", BaseClass: "Object"},
		{Name: "Spatial", BaseClass: "Node"},
		{Name: "Reference", BaseClass: "Object"},
		{Name: "Resource", BaseClass: "Reference", IsReference: true},
		{Name: "Orphan", BaseClass: "Missing"},
		{Name: "VisualServer", BaseClass: "Object", Singleton: true},
		{Name: "Engine", BaseClass: "Object", Singleton: true},
	})
}

func TestInherits(t *testing.T) {
	m := chain()
	r := New(m)

	assert.True(t, r.Inherits(m.Find("Spatial"), "Node"))
	assert.True(t, r.Inherits(m.Find("Spatial"), "Object"), "inheritance is transitive")
	assert.False(t, r.Inherits(m.Find("Spatial"), "Spatial"), "a class does not inherit from itself")
	assert.False(t, r.Inherits(m.Find("Object"), "Object"))
	assert.False(t, r.Inherits(m.Find("Node"), "Reference"))
	assert.False(t, r.Inherits(m.Find("Orphan"), "Object"), "a missing base ends the walk")
	assert.True(t, r.Inherits(m.Find("Orphan"), "Missing"))
}

func TestInherits_CycleTerminates(t *testing.T) {
	m := model.NewManifest([]*model.Class{
		{Name: "A", BaseClass: "B"},
		{Name: "B", BaseClass: "A"},
	})
	r := New(m)
	assert.False(t, r.Inherits(m.Find("A"), "C"))
}

func TestBaseClass(t *testing.T) {
	m := chain()
	r := New(m)

	base, err := r.BaseClass(m.Find("Node"))
	require.NoError(t, err)
	require.NotNil(t, base)
	assert.Equal(t, "Object", base.Name)

	base, err = r.BaseClass(m.Find("Object"))
	require.NoError(t, err)
	assert.Nil(t, base)

	_, err = r.BaseClass(m.Find("Orphan"))
	require.ErrorIs(t, err, ErrDanglingBaseClass)
	assert.Contains(t, err.Error(), "Orphan")
	assert.Contains(t, err.Error(), "Missing")
}

func TestAncestors(t *testing.T) {
	m := chain()
	r := New(m)

	got, err := r.Ancestors(m.Find("Spatial"))
	require.NoError(t, err)
	var names []string
	for _, c := range got {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Node", "Object"}, names)

	_, err = r.Ancestors(m.Find("Orphan"))
	assert.ErrorIs(t, err, ErrDanglingBaseClass)
}

func TestIsSingletonThreadSafe(t *testing.T) {
	r := New(chain())

	for _, name := range []string{"VisualServer", "PhysicsServer", "Physics3DServer", "Physics2DServer"} {
		safe, err := r.IsSingletonThreadSafe(&model.Class{Name: name, Singleton: true})
		require.NoError(t, err)
		assert.False(t, safe, name)
	}

	safe, err := r.IsSingletonThreadSafe(&model.Class{Name: "Engine", Singleton: true})
	require.NoError(t, err)
	assert.True(t, safe)

	_, err = r.IsSingletonThreadSafe(&model.Class{Name: "Node"})
	assert.ErrorIs(t, err, ErrPreconditionViolated)
}

func TestOwnsLifetime(t *testing.T) {
	m := chain()
	r := New(m)

	tests := []struct {
		class string
		want  bool
	}{
		{"Object", true},
		{"Node", false},
		{"Resource", false},
		{"Engine", false},
	}
	for _, tt := range tests {
		got, err := r.OwnsLifetime(m.Find(tt.class))
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.class)
	}
}

func TestIsRefCountRoot(t *testing.T) {
	m := chain()
	r := New(m)

	tests := []struct {
		class string
		want  bool
	}{
		{"Reference", true},
		{"Resource", false},
		{"Object", false},
		{"Engine", false},
	}
	for _, tt := range tests {
		got, err := r.IsRefCountRoot(m.Find(tt.class))
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.class)
	}
}

func TestAncestors_Cycle(t *testing.T) {
	m := model.NewManifest([]*model.Class{
		{Name: "A", BaseClass: "B"},
		{Name: "B", BaseClass: "A"},
	})
	_, err := New(m).Ancestors(m.Find("A"))
	assert.ErrorIs(t, err, ErrInheritanceCycle)
}
