package validate

import (
	"strings"
	"testing"

	"github.com/KarimHamidou/gdbindgen/loader"
	"github.com/KarimHamidou/gdbindgen/model"
)

func minimalManifest() *model.Manifest {
	return model.NewManifest([]*model.Class{
		{Name: "Object"},
		{
			Name:      "Node",
			BaseClass: "Object",
			Methods: []model.Method{
				{Name: "get_name", ReturnType: "String"},
				{Name: "set_name", ReturnType: "void", Arguments: []model.Argument{{Name: "name", Type: "String"}}},
			},
			Properties: []model.Property{
				{Name: "name", Type: "String", Getter: "get_name", Setter: "set_name"},
			},
			Enums: []model.Enum{{Name: "PauseMode", Values: map[string]int64{"INHERIT": 0, "STOP": 1}}},
		},
	})
}

func TestValidate_ValidMinimal(t *testing.T) {
	result := Validate(minimalManifest())
	if !result.IsValid() {
		t.Errorf("expected valid, got errors:\n%s", result.Error())
	}
	if len(result.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
}

func TestValidate_Fixture(t *testing.T) {
	m, err := loader.LoadManifest("../testdata/api.json")
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	result := Validate(m)
	if !result.IsValid() {
		t.Errorf("expected valid, got errors:\n%s", result.Error())
	}
}

func TestValidate_DuplicateClass(t *testing.T) {
	m := minimalManifest()
	m.Classes = append(m.Classes, &model.Class{Name: "Node", BaseClass: "Object"})

	result := Validate(m)
	assertHasError(t, result, "classes[2].name", "duplicate class")
}

func TestValidate_DanglingBase(t *testing.T) {
	m := minimalManifest()
	m.Classes = append(m.Classes,
		&model.Class{Name: "Orphan", BaseClass: "Missing"},
		&model.Class{Name: "Child", BaseClass: "Orphan"},
	)
	m = model.NewManifest(m.Classes)

	result := Validate(m)
	assertHasError(t, result, "classes[2].base_class", `"Missing" not found`)
	for _, e := range result.Errors {
		if e.Path == "classes[3].base_class" {
			t.Errorf("descendant of a dangling class should not be reported: %s", e.Error())
		}
	}
}

func TestValidate_Cycle(t *testing.T) {
	m := model.NewManifest([]*model.Class{
		{Name: "A", BaseClass: "B"},
		{Name: "B", BaseClass: "A"},
	})
	result := Validate(m)
	assertHasError(t, result, "classes[0].base_class", "inheritance cycle")
	assertHasError(t, result, "classes[1].base_class", "inheritance cycle")
}

func TestValidate_DuplicateMethodAndEnum(t *testing.T) {
	m := minimalManifest()
	node := m.Find("Node")
	node.Methods = append(node.Methods, model.Method{Name: "get_name", ReturnType: "String"})
	node.Enums = append(node.Enums, model.Enum{Name: "PauseMode"})

	result := Validate(m)
	assertHasError(t, result, "classes[1].methods[2].name", "duplicate method")
	assertHasError(t, result, "classes[1].enums[1].name", "duplicate enum")
}

func TestValidate_MissingTypes(t *testing.T) {
	m := minimalManifest()
	node := m.Find("Node")
	node.Methods = append(node.Methods, model.Method{
		Name:      "broken",
		Arguments: []model.Argument{{Name: "a"}, {Name: "a", Type: "int"}},
	})

	result := Validate(m)
	assertHasError(t, result, "classes[1].methods[2].return_type", "no return type")
	assertHasError(t, result, "classes[1].methods[2].arguments[0].type", "no type")
	assertHasError(t, result, "classes[1].methods[2].arguments[1].name", "duplicate argument")
}

func TestValidate_SingletonName(t *testing.T) {
	m := minimalManifest()
	m.Find("Node").SingletonName = "Node"

	result := Validate(m)
	assertHasError(t, result, "classes[1].singleton_name", "not a singleton")
}

func TestValidate_Warnings(t *testing.T) {
	m := minimalManifest()
	node := m.Find("Node")
	node.Properties = append(node.Properties, model.Property{Name: "owner", Type: "Node", Getter: "get_owner"})
	node.Methods = append(node.Methods, model.Method{
		Name:       "move",
		ReturnType: "void",
		Arguments: []model.Argument{
			{Name: "a", Type: "int", HasDefaultValue: true, DefaultValue: "0"},
			{Name: "b", Type: "int"},
		},
	})

	result := Validate(m)
	if !result.IsValid() {
		t.Fatalf("warnings must not invalidate the manifest:\n%s", result.Error())
	}
	if len(result.Warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %v", result.Warnings)
	}
	if result.Warnings[0].Path != "classes[1].methods[2].arguments[1]" {
		t.Errorf("first warning path = %q", result.Warnings[0].Path)
	}
	if result.Warnings[1].Path != "classes[1].properties[1].getter" {
		t.Errorf("second warning path = %q", result.Warnings[1].Path)
	}
}

func assertHasError(t *testing.T, result *ValidationResult, path, substr string) {
	t.Helper()
	for _, e := range result.Errors {
		if e.Path == path && strings.Contains(e.Message, substr) {
			return
		}
	}
	t.Errorf("expected error at %s containing %q, got:\n%s", path, substr, result.Error())
}
