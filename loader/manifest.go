package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/KarimHamidou/gdbindgen/model"
)

// ErrMalformedManifest is returned when the manifest is not valid JSON or does
// not have the expected shape. Generation cannot continue past it.
var ErrMalformedManifest = errors.New("malformed manifest")

// LoadManifest reads, validates, decodes and normalizes an api.json file.
func LoadManifest(path string) (*model.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return Load(data)
}

// Load validates data against the manifest schema, decodes it, and runs the
// normalization passes.
func Load(data []byte) (*model.Manifest, error) {
	if err := ValidateSchema(data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedManifest, err)
	}
	m, err := LoadNoValidate(data)
	if err != nil {
		return nil, err
	}
	model.Normalize(m)
	return m, nil
}

// LoadNoValidate decodes without schema validation or normalization. Used by
// tests and tooling that want to inspect the raw manifest.
func LoadNoValidate(data []byte) (*model.Manifest, error) {
	var classes []*model.Class
	if err := json.Unmarshal(data, &classes); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedManifest, err)
	}
	return model.NewManifest(classes), nil
}
