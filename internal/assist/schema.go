package assist

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const fieldsSchema = `{
  "type": "object",
  "properties": {
    "amount":        {"type": ["string", "number", "null"]},
    "currency":      {"type": ["string", "null"]},
    "email":         {"type": ["string", "null"]},
    "customerEmail": {"type": ["string", "null"]},
    "customerName":  {"type": ["string", "null"]},
    "name":          {"type": ["string", "null"]},
    "recipient":     {"type": ["string", "null"]},
    "dueDate":       {"type": ["string", "null"]},
    "dueDays":       {"type": ["string", "number", "null"]},
    "memo":          {"type": ["string", "null"]},
    "invoiceId":     {"type": ["string", "null"]},
    "status":        {"type": ["string", "null"]},
    "minAmount":     {"type": ["string", "number", "null"]},
    "maxAmount":     {"type": ["string", "number", "null"]},
    "linkType":      {"type": ["string", "null"]}
  }
}`

const classificationSchema = `{
  "type": "object",
  "required": ["action"],
  "properties": {
    "action":    {"type": "string", "minLength": 1},
    "extracted": {"type": ["object", "null"]}
  }
}`

var (
	fieldsValidator         = mustCompileSchema("fields.json", fieldsSchema)
	classificationValidator = mustCompileSchema("classification.json", classificationSchema)
)

func mustCompileSchema(name, doc string) *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, bytes.NewReader([]byte(doc))); err != nil {
		panic(fmt.Sprintf("add schema %s: %v", name, err))
	}
	schema, err := compiler.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("compile schema %s: %v", name, err))
	}
	return schema
}

// decodeModelJSON parses fenced or bare model output and checks it against schema.
func decodeModelJSON(raw string, schema *jsonschema.Schema) (map[string]any, error) {
	var v any
	if err := json.Unmarshal([]byte(StripCodeFences(raw)), &v); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return nil, fmt.Errorf("unexpected shape: %w", err)
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected a JSON object")
	}
	return obj, nil
}
