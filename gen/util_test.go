package gen

import (
	"testing"

	"github.com/KarimHamidou/gdbindgen/model"
)

func TestGoName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"get_node", "GetNode"},
		{"add_child", "AddChild"},
		{"free", "Free"},
	}
	for _, tt := range tests {
		got := GoName(tt.input)
		if got != tt.want {
			t.Errorf("GoName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestMethodGoName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"get_node", "GetNode"},
		{"new", "New_"},
	}
	for _, tt := range tests {
		got := MethodGoName(&model.Method{Name: tt.name})
		if got != tt.want {
			t.Errorf("MethodGoName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestArgName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"legible_unique_name", "legibleUniqueName"},
		{"type", "type_"},
		{"func", "func_"},
		{"ret", "ret_"},
		{"o", "o_"},
		{"", "arg"},
	}
	for _, tt := range tests {
		got := ArgName(tt.input)
		if got != tt.want {
			t.Errorf("ArgName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		module string
		want   string
	}{
		{"node", "node.go"},
		{"visual_server", "visual_server.go"},
		{"script_debugger_windows", "script_debugger_windows_class.go"},
		{"unit_test", "unit_test_class.go"},
	}
	for _, tt := range tests {
		got := FileName(tt.module)
		if got != tt.want {
			t.Errorf("FileName(%q) = %q, want %q", tt.module, got, tt.want)
		}
	}
}
