package gen

import (
	"strings"
	"testing"

	"github.com/KarimHamidou/gdbindgen/config"
	"github.com/KarimHamidou/gdbindgen/model"
)

func generateClasses(t *testing.T, cfg *config.Config) []*OutputFile {
	t.Helper()
	ctx := loadTestAPI(t, "api.json", cfg)
	files, err := (&ClassesGenerator{}).Generate(ctx)
	if err != nil {
		t.Fatalf("generation failed: %v", err)
	}
	return files
}

func TestClassesGenerator_Files(t *testing.T) {
	files := generateClasses(t, nil)

	expected := []string{
		"engine.go",
		"expression.go",
		"main_loop.go",
		"node.go",
		"object.go",
		"reference.go",
		"resource.go",
		"spatial.go",
		"visual_server.go",
	}
	if len(files) != len(expected) {
		t.Fatalf("expected %d files, got %d", len(expected), len(files))
	}
	for i, name := range expected {
		if files[i].Path != name {
			t.Errorf("file[%d]: expected %q, got %q", i, name, files[i].Path)
		}
	}
}

func TestClassesGenerator_RootClass(t *testing.T) {
	content := fileByPath(t, generateClasses(t, nil), "object.go")

	assertContains(t, content,
		"type Object struct {\n\tptr *sys.Object\n}",
		"type ObjectArg interface {",
		"func (o *Object) AsObject() *Object {",
		"func ObjectFromSys(ptr *sys.Object) *Object {",
		"return &Object{ptr: ptr}",
		"func NewObject() *Object {",
		`sys.NewObject("Object")`,
		"func (o *Object) Free() {",
		`ObjectSignalScriptChanged = "script_changed"`,
		"ObjectNotificationPostinitialize = 0",
		"type ObjectConnectFlags int64",
		"ObjectConnectFlagsDeferred ObjectConnectFlags = 1",
	)
	// Virtual methods are implemented by scripts.
	assertNotContains(t, content, "Notification(")
}

func TestClassesGenerator_Varargs(t *testing.T) {
	content := fileByPath(t, generateClasses(t, nil), "object.go")

	assertContains(t, content,
		"func (o *Object) Call(method gdnative.IntoString, varargs ...gdnative.ToVariant) gdnative.Variant {",
		"args := []gdnative.Variant{gdnative.NewVariant(method.IntoString())}",
		"args = append(args, v.ToVariant())",
		"ret := icallVarargs(mb_Object_Call.get(), o.sysObject(), args)",
		"return gdnative.VariantFromSys(ret)",
	)
}

func TestClassesGenerator_ResultReturn(t *testing.T) {
	content := fileByPath(t, generateClasses(t, nil), "object.go")

	assertContains(t, content,
		"func (o *Object) Connect(signal gdnative.IntoString, target ObjectArg, method gdnative.IntoString, binds gdnative.VariantArray, flags int64) error {",
		"rawObject(target)",
		"return decodeResult(ret)",
		"// Engine defaults: binds = [], flags = 0.",
	)
}

func TestClassesGenerator_Subclass(t *testing.T) {
	content := fileByPath(t, generateClasses(t, nil), "node.go")

	assertContains(t, content,
		"type Node struct {\n\tObject\n}",
		"return &Node{Object: Object{ptr: ptr}}",
		"return o.Object.sysObject()",
		"func (o *Node) GetNode(path gdnative.IntoNodePath) *Node {",
		"path.IntoNodePath()",
		"return NodeFromSys(ret)",
		"func (o *Node) AddChild(node NodeArg, legibleUniqueName bool) {",
		"rawObject(node), legibleUniqueName)",
		"// GetPauseMode returns the pause_mode property.",
		"func (o *Node) GetPauseMode() NodePauseMode {",
		"return NodePauseMode(ret)",
		"func (o *Node) SetPauseMode(mode NodePauseMode) {",
		"int64(mode)",
		"NodePauseModeInherit NodePauseMode = 0",
		"NodeNotificationEnterTree = 10",
		`NodeSignalReady`,
	)
	// Only the lineage root frees; Node inherits Free from Object.
	assertNotContains(t, content, "func (o *Node) Free()", "GetEditorDescription")

	deep := fileByPath(t, generateClasses(t, nil), "spatial.go")
	assertContains(t, deep,
		"return &Spatial{Node: Node{Object: Object{ptr: ptr}}}",
		"func (o *Spatial) GetTranslation() gdnative.Vector3 {",
		"return *(*gdnative.Vector3)(unsafe.Pointer(&ret))",
		"func (o *Spatial) Rotate(axis gdnative.Vector3, angle float64) {",
	)
}

func TestClassesGenerator_EditorMethods(t *testing.T) {
	cfg := config.Default()
	cfg.Editor = true
	content := fileByPath(t, generateClasses(t, cfg), "node.go")

	assertContains(t, content,
		"func (o *Node) GetEditorDescription() gdnative.String {",
		"// Editor only.",
	)
}

func TestClassesGenerator_Singletons(t *testing.T) {
	files := generateClasses(t, nil)

	engine := fileByPath(t, files, "engine.go")
	assertContains(t, engine,
		"func GetEngine() *Engine {",
		`sys.GlobalSingleton("Engine")`,
		"It is safe for concurrent use.",
		"The engine registers it as _Engine.",
		`class:  "_Engine"`,
		"func (o *Engine) GetMainLoop() *MainLoop {",
		"func (o *Engine) GetFramesDrawn() int64 {",
		"return int64(ret)",
	)
	assertNotContains(t, engine, "func NewEngine()", "Free()")

	vs := fileByPath(t, files, "visual_server.go")
	assertContains(t, vs,
		"func GetVisualServer() *VisualServer {",
		"It is not thread-safe",
		"VisualServerCubeMapSideBottom VisualServerCubeMapSide = 2",
		"// Engine defaults: swapBuffers = True, frameStep = 0.",
	)
}

func TestClassesGenerator_RefCounted(t *testing.T) {
	files := generateClasses(t, nil)

	resource := fileByPath(t, files, "resource.go")
	assertContains(t, resource,
		"Instances are reference counted by the engine.",
		"return &Resource{Reference: Reference{Object: Object{ptr: ptr}}}",
		"func (o *Resource) GetRid() gdnative.Rid {",
		"return gdnative.RidFromSys(ret)",
		"func (o *Resource) Duplicate(subresources bool) *Resource {",
		"// GetName returns the resource_name property.",
		"// SetName sets the resource_name property.",
	)
	assertNotContains(t, resource, "Free()", "func (o *Resource) Release()")

	newResource := "func NewResource() *Resource {\n" +
		"\tptr := sys.NewObject(\"Resource\")\n" +
		"\tsys.ObjectInitRef(ptr)\n"
	assertContains(t, resource,
		newResource,
		"\tsys.ObjectReference(ptr)\n\treturn &Resource{",
	)

	reference := fileByPath(t, files, "reference.go")
	assertContains(t, reference,
		"func (o *Reference) Release() {",
		"if ptr != nil && sys.ObjectUnreference(ptr) {",
		"sys.ObjectDestroy(ptr)",
		"func (o *Reference) Reference() bool {",
	)
	assertNotContains(t, reference, "func (o *Reference) Free()")

	// Objects without reference counting take no reference when wrapped.
	object := fileByPath(t, files, "object.go")
	assertNotContains(t, object, "ObjectReference", "Release()")
}

func TestClassesGenerator_BindVarsDoNotCollide(t *testing.T) {
	m := model.NewManifest([]*model.Class{
		{Name: "Object", Instantiable: true},
		{Name: "A", BaseClass: "Object", Methods: []model.Method{{Name: "b_c", ReturnType: "void"}}},
		{Name: "AB", BaseClass: "Object", Methods: []model.Method{{Name: "c", ReturnType: "void"}}},
	})
	files, err := (&ClassesGenerator{}).Generate(NewContext(m, nil))
	if err != nil {
		t.Fatalf("generation failed: %v", err)
	}
	assertContains(t, fileByPath(t, files, "a.go"), "mb_A_BC = &methodBind{")
	assertContains(t, fileByPath(t, files, "ab.go"), "mb_AB_C = &methodBind{")
}

func TestClassesGenerator_ConstructorAlias(t *testing.T) {
	content := fileByPath(t, generateClasses(t, nil), "expression.go")

	assertContains(t, content,
		"func NewExpression() *Expression {",
		"func (o *Expression) New_() gdnative.Variant {",
		`method: "new"`,
		"func (o *Expression) EvaluateOp(axis gdnative.Vector3Axis, values gdnative.Float32Array) gdnative.VariantOperator {",
		"int64(axis), values)",
		"return decodeVariantOperator(ret)",
	)
}

func TestClassesGenerator_APITypes(t *testing.T) {
	cfg := config.Default()
	cfg.APITypes = []string{"core", "tools"}
	content := fileByPath(t, generateClasses(t, cfg), "editor_plugin.go")
	assertContains(t, content, "type EditorPlugin struct {\n\tNode\n}")

	cfg = config.Default()
	cfg.APITypes = []string{"tools"}
	ctx := loadTestAPI(t, "api.json", cfg)
	_, err := (&ClassesGenerator{}).Generate(ctx)
	if err == nil || !strings.Contains(err.Error(), "not generated") {
		t.Errorf("expected an error for a base class outside the selected tiers, got %v", err)
	}
}

func TestClassesGenerator_DefaultsDocOnlyTrailing(t *testing.T) {
	m := model.NewManifest([]*model.Class{
		{Name: "Object", Instantiable: true},
		{Name: "Camera", BaseClass: "Object", Methods: []model.Method{{
			Name:       "look_at",
			ReturnType: "void",
			Arguments: []model.Argument{
				{Name: "smooth", Type: "bool", HasDefaultValue: true, DefaultValue: "False"},
				{Name: "target", Type: "Vector3"},
				{Name: "speed", Type: "float", HasDefaultValue: true, DefaultValue: "1"},
			},
		}}},
	})
	files, err := (&ClassesGenerator{}).Generate(NewContext(m, nil))
	if err != nil {
		t.Fatalf("generation failed: %v", err)
	}
	content := fileByPath(t, files, "camera.go")
	assertContains(t, content, "// Engine defaults: speed = 1.")
	assertNotContains(t, content, "smooth = False")
}

func TestClassesGenerator_AcronymsAndPrivateEnums(t *testing.T) {
	m := model.NewManifest([]*model.Class{
		{Name: "Object", Instantiable: true},
		{Name: "HTTPRequest", BaseClass: "Object", Instantiable: true},
		{
			Name: "_OS", BaseClass: "Object", Singleton: true,
			Enums: []model.Enum{{Name: "ScreenOrientation", Values: map[string]int64{
				"SCREEN_ORIENTATION_LANDSCAPE": 0, "SCREEN_ORIENTATION_PORTRAIT": 1,
			}}},
			Methods: []model.Method{{Name: "get_screen_orientation", ReturnType: "enum._OS::ScreenOrientation"}},
		},
	})
	model.Normalize(m)

	files, err := (&ClassesGenerator{}).Generate(NewContext(m, nil))
	if err != nil {
		t.Fatalf("generation failed: %v", err)
	}
	assertContains(t, fileByPath(t, files, "http_request.go"), "type HTTPRequest struct {")

	os := fileByPath(t, files, "os.go")
	assertContains(t, os,
		"type OSScreenOrientation int64",
		"func (o *OS) GetScreenOrientation() OSScreenOrientation {",
		"return OSScreenOrientation(ret)",
	)
	assertNotContains(t, os, "_OSScreenOrientation")
}
