// Package openapi derives field specs from OpenAPI 3 component schemas, so
// record constructors can be generated straight from an API contract instead
// of hand-written declarations.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"
)

var errNoComponents = errors.New("openapi: document has no component schemas")

// FieldSpecs loads the document from src and converts the named component
// schema into ordered field specs for the generator.
//
// OpenAPI object properties carry no order, so the result is made
// deterministic instead: required properties first, then optional ones, each
// group alphabetical. Property types map to annotations (string -> [string],
// integer -> [int], number -> [double], boolean -> [bool], arrays of scalars
// -> [T[]]); everything else becomes an untyped field.
func FieldSpecs(ctx context.Context, src Source, schemaName string) ([]string, error) {
	if src == nil {
		return nil, errors.New("openapi: source is required")
	}
	raw, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("openapi: %s: document payload is empty", src.Describe())
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load %s: %w", src.Describe(), err)
	}
	if doc.Components == nil || len(doc.Components.Schemas) == 0 {
		return nil, fmt.Errorf("%w (%s)", errNoComponents, src.Describe())
	}

	ref, ok := doc.Components.Schemas[schemaName]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("openapi: schema %q not found in %s", schemaName, src.Describe())
	}
	schema := ref.Value
	if schema.Type != nil && !schema.Type.Is(openapi3.TypeObject) {
		return nil, fmt.Errorf("openapi: schema %q is not an object", schemaName)
	}

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if required[names[i]] != required[names[j]] {
			return required[names[i]]
		}
		return names[i] < names[j]
	})

	specs := make([]string, 0, len(names))
	for _, name := range names {
		var prop *openapi3.Schema
		if ref := schema.Properties[name]; ref != nil {
			prop = ref.Value
		}
		specs = append(specs, annotationFor(prop)+name)
	}
	return specs, nil
}

func annotationFor(schema *openapi3.Schema) string {
	if schema == nil || schema.Type == nil {
		return ""
	}
	switch {
	case schema.Type.Is(openapi3.TypeArray):
		if schema.Items == nil || schema.Items.Value == nil {
			return ""
		}
		if elem := scalarAnnotation(schema.Items.Value); elem != "" {
			return "[" + elem + "[]]"
		}
		return ""
	default:
		if scalar := scalarAnnotation(schema); scalar != "" {
			return "[" + scalar + "]"
		}
		return ""
	}
}

func scalarAnnotation(schema *openapi3.Schema) string {
	if schema == nil || schema.Type == nil {
		return ""
	}
	switch {
	case schema.Type.Is(openapi3.TypeString):
		return "string"
	case schema.Type.Is(openapi3.TypeInteger):
		return "int"
	case schema.Type.Is(openapi3.TypeNumber):
		return "double"
	case schema.Type.Is(openapi3.TypeBoolean):
		return "bool"
	default:
		return ""
	}
}
