// Package schema validates flat YAML documents against a required/optional
// key set with scalar type constraints.
package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// ValueType constrains the value accepted for a document key.
type ValueType int

const (
	// TypeAny accepts any value, including null. Presence is still enforced
	// for required keys.
	TypeAny ValueType = iota
	TypeString
	TypeBool
)

func (t ValueType) jsonSchema() map[string]interface{} {
	switch t {
	case TypeString:
		return map[string]interface{}{"type": "string"}
	case TypeBool:
		return map[string]interface{}{"type": "boolean"}
	default:
		return map[string]interface{}{}
	}
}

// ValidateFile parses the YAML document at path and checks it against the
// given key sets: every required key must be present with a matching type,
// optional keys are type-checked when present, and any key outside
// required ∪ optional is rejected. The parsed mapping is returned on success.
// The scope label names the document in error messages.
func ValidateFile(path, scope string, required, optional map[string]ValueType) (map[string]interface{}, error) {
	raw, err := os.ReadFile(path) // #nosec G304 -- path is inside the submission under test
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", scope, err)
	}

	var doc map[string]interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%s is not valid YAML: %w", scope, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%s is empty", scope)
	}

	result, err := validate(doc, required, optional)
	if err != nil {
		return nil, fmt.Errorf("cannot validate %s: %w", scope, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, re := range result.Errors() {
			msgs = append(msgs, describeError(re))
		}
		sort.Strings(msgs)
		return nil, fmt.Errorf("invalid %s: %s", scope, strings.Join(msgs, "; "))
	}

	return doc, nil
}

// validate assembles a JSON Schema from the two key sets and applies it. The
// document is round-tripped through JSON for the schema engine.
func validate(doc map[string]interface{}, required, optional map[string]ValueType) (*gojsonschema.Result, error) {
	properties := make(map[string]interface{}, len(required)+len(optional))
	requiredKeys := make([]string, 0, len(required))
	for key, typ := range required {
		properties[key] = typ.jsonSchema()
		requiredKeys = append(requiredKeys, key)
	}
	for key, typ := range optional {
		properties[key] = typ.jsonSchema()
	}
	sort.Strings(requiredKeys)

	schemaDoc := map[string]interface{}{
		"type":                 "object",
		"properties":           properties,
		"additionalProperties": false,
	}
	// draft-04 forbids an empty required array
	if len(requiredKeys) > 0 {
		schemaDoc["required"] = requiredKeys
	}

	docJSON, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document to JSON: %w", err)
	}

	return gojsonschema.Validate(
		gojsonschema.NewGoLoader(schemaDoc),
		gojsonschema.NewBytesLoader(docJSON))
}

// describeError rewrites gojsonschema messages so they name the offending key.
func describeError(re gojsonschema.ResultError) string {
	switch re.Type() {
	case "required":
		if prop, ok := re.Details()["property"].(string); ok {
			return fmt.Sprintf("missing required entry %q", prop)
		}
	case "additional_property_not_allowed":
		if prop, ok := re.Details()["property"].(string); ok {
			return fmt.Sprintf("unexpected entry %q", prop)
		}
	case "invalid_type":
		return fmt.Sprintf("entry %q has the wrong type: %s", re.Field(), re.Description())
	}
	return fmt.Sprintf("entry %q: %s", re.Field(), re.Description())
}
