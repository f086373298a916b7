package loader

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// schemaJSON describes the engine's api.json as emitted by
// `godot --gdnative-generate-json-api`. Unknown keys are tolerated since newer
// engine builds add fields the generator does not read.
var schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://gdbindgen.dev/schemas/api-manifest/v1",
  "title": "Engine API manifest",
  "type": "array",
  "items": { "$ref": "#/$defs/class" },
  "$defs": {
    "class": {
      "type": "object",
      "required": ["name", "base_class", "api_type", "singleton", "is_reference", "instanciable",
                   "properties", "methods", "enums", "constants"],
      "properties": {
        "name": { "type": "string", "minLength": 1 },
        "base_class": { "type": "string" },
        "api_type": { "type": "string" },
        "singleton": { "type": "boolean" },
        "singleton_name": { "type": "string" },
        "is_reference": { "type": "boolean" },
        "instanciable": { "type": "boolean" },
        "properties": { "type": "array", "items": { "$ref": "#/$defs/property" } },
        "methods": { "type": "array", "items": { "$ref": "#/$defs/method" } },
        "signals": { "type": "array", "items": { "$ref": "#/$defs/signal" } },
        "enums": { "type": "array", "items": { "$ref": "#/$defs/enum" } },
        "constants": { "type": "object", "additionalProperties": { "type": "integer" } }
      }
    },
    "property": {
      "type": "object",
      "required": ["name", "type", "getter", "setter", "index"],
      "properties": {
        "name": { "type": "string" },
        "type": { "type": "string" },
        "getter": { "type": "string" },
        "setter": { "type": "string" },
        "index": { "type": "integer" }
      }
    },
    "method": {
      "type": "object",
      "required": ["name", "return_type", "is_editor", "is_noscript", "is_const", "is_reverse",
                   "is_virtual", "has_varargs", "arguments"],
      "properties": {
        "name": { "type": "string", "minLength": 1 },
        "return_type": { "type": "string", "minLength": 1 },
        "is_editor": { "type": "boolean" },
        "is_noscript": { "type": "boolean" },
        "is_const": { "type": "boolean" },
        "is_reverse": { "type": "boolean" },
        "is_virtual": { "type": "boolean" },
        "has_varargs": { "type": "boolean" },
        "arguments": { "type": "array", "items": { "$ref": "#/$defs/argument" } }
      }
    },
    "argument": {
      "type": "object",
      "required": ["name", "type", "has_default_value", "default_value"],
      "properties": {
        "name": { "type": "string" },
        "type": { "type": "string", "minLength": 1 },
        "has_default_value": { "type": "boolean" },
        "default_value": { "type": "string" }
      }
    },
    "signal": {
      "type": "object",
      "required": ["name"],
      "properties": {
        "name": { "type": "string", "minLength": 1 },
        "arguments": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["name", "type"],
            "properties": {
              "name": { "type": "string" },
              "type": { "type": "string" }
            }
          }
        }
      }
    },
    "enum": {
      "type": "object",
      "required": ["name", "values"],
      "properties": {
        "name": { "type": "string", "minLength": 1 },
        "values": { "type": "object", "additionalProperties": { "type": "integer" } }
      }
    }
  }
}`

var compiledSchema *jsonschema.Schema

func init() {
	var schemaDoc interface{}
	if err := json.Unmarshal([]byte(schemaJSON), &schemaDoc); err != nil {
		panic(fmt.Sprintf("failed to decode schema JSON: %v", err))
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema.json", schemaDoc); err != nil {
		panic(fmt.Sprintf("failed to add schema resource: %v", err))
	}
	var err error
	compiledSchema, err = c.Compile("schema.json")
	if err != nil {
		panic(fmt.Sprintf("failed to compile schema: %v", err))
	}
}

// SchemaJSON returns the embedded manifest JSON Schema.
func SchemaJSON() string {
	return schemaJSON
}

// ValidateSchema checks raw manifest bytes against the manifest JSON Schema.
func ValidateSchema(data []byte) error {
	// UnmarshalJSON keeps numbers as json.Number so "integer" checks are exact.
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parsing JSON: %w", err)
	}
	if err := compiledSchema.Validate(doc); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}
