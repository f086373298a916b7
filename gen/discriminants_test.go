package gen

import "testing"

func TestDiscriminantsGenerator(t *testing.T) {
	ctx := loadTestAPI(t, "minimal.json", nil)
	files, err := (&DiscriminantsGenerator{}).Generate(ctx)
	if err != nil {
		t.Fatalf("generation failed: %v", err)
	}
	content := fileByPath(t, files, "discriminants.go")

	assertContains(t, content,
		`ErrUnrepresentableDiscriminant = errors.New("unrepresentable discriminant")`,
		"func decodeResult(raw int64) error {",
		"if raw < 0 || raw > 48 {",
		"return gdnative.Error(raw)",
		"func decodeVariantOperator(raw int64) gdnative.VariantOperator {",
		"if raw < 0 || raw > 24 {",
		"panic(fmt.Errorf(",
		"unsafe.Sizeof(gdnative.Vector3{})",
		"unsafe.Sizeof(sys.Vector3{})",
		"unsafe.Sizeof(gdnative.Transform{})",
	)
}
