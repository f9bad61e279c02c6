// Package codegen renders the standalone Go source form of a generated
// constructor: a struct type whose fields carry the declared annotations as
// Go types, plus a New<TypeName> function returning it. The source is what
// Generate hands back for inspection and what the interp scope evaluates.
package codegen

import (
	"embed"
	"fmt"
	"go/token"
	"unicode"
	"unicode/utf8"

	"github.com/flosch/pongo2/v6"

	"github.com/utopianit-base/recgen/pkg/fieldspec"
	"github.com/utopianit-base/recgen/pkg/model"
)

//go:embed templates/constructor.go.tpl
var templates embed.FS

const constructorTemplate = "templates/constructor.go.tpl"

// Renderer renders constructor source from descriptors using a pongo2
// template set loaded from the embedded templates.
type Renderer struct {
	tmpl *pongo2.Template
}

// NewRenderer constructs a Renderer with the embedded constructor template
// parsed and ready.
func NewRenderer() (*Renderer, error) {
	set := pongo2.NewSet("recgen", pongo2.NewFSLoader(templates))
	tmpl, err := set.FromFile(constructorTemplate)
	if err != nil {
		return nil, fmt.Errorf("codegen: load template %q: %w", constructorTemplate, err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render produces the generated constructor source for the descriptor.
// Field names that cannot be expressed as Go struct fields, or that collapse
// into the same struct field once exported ("code" next to "Code"), are
// rejected here rather than surfacing later as an evaluation failure.
func (r *Renderer) Render(descriptor model.Descriptor) (string, error) {
	fields := make([]map[string]any, len(descriptor.Fields))
	seen := make(map[string]string, len(descriptor.Fields))
	for i, field := range descriptor.Fields {
		goName := exportName(field.Name)
		if !token.IsIdentifier(goName) {
			return "", fmt.Errorf("codegen: field name %q is not expressible as a Go identifier", field.Name)
		}
		if prev, ok := seen[goName]; ok {
			return "", fmt.Errorf("codegen: field names %q and %q collide as struct field %s", prev, field.Name, goName)
		}
		seen[goName] = field.Name
		fields[i] = map[string]any{
			"name":   field.Name,
			"goName": goName,
			"goType": fieldspec.GoType(field.Type),
			"param":  paramName(field.Name, i),
		}
	}

	out, err := r.tmpl.Execute(pongo2.Context{
		"typeName": descriptor.TypeName,
		"ctorName": descriptor.ConstructorName(),
		"fields":   fields,
	})
	if err != nil {
		return "", fmt.Errorf("codegen: render %s: %w", descriptor.ConstructorName(), err)
	}
	return out, nil
}

// exportName upper-cases the first rune so the generated struct field is
// visible to reflection. The original spelling is preserved in the rec tag.
func exportName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// paramName derives a parameter name for the generated constructor. Names
// that collapse into keywords or invalid identifiers fall back to a
// positional name.
func paramName(name string, index int) string {
	r, size := utf8.DecodeRuneInString(name)
	candidate := name
	if r != utf8.RuneError {
		candidate = string(unicode.ToLower(r)) + name[size:]
	}
	if !token.IsIdentifier(candidate) || token.IsKeyword(candidate) || candidate == "any" {
		return fmt.Sprintf("arg%d", index)
	}
	return candidate
}
