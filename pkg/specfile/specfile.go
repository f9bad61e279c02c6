// Package specfile parses YAML documents describing batches of constructor
// generations, so a whole catalogue of record types can be declared in one
// file and fed to the generator.
package specfile

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/utopianit-base/recgen/pkg/generator"
)

// Document is the root of a spec file.
//
//	constructors:
//	  - type: Widget
//	    fields: ["[string]Code", "Name"]
//	    validate: true
type Document struct {
	Constructors []Entry `yaml:"constructors"`
}

// Entry declares a single constructor generation.
type Entry struct {
	Type     string   `yaml:"type"`
	Fields   []string `yaml:"fields"`
	Validate bool     `yaml:"validate"`
}

// Request converts the entry into a generator request.
func (e Entry) Request() generator.Request {
	return generator.Request{
		TypeName:   e.Type,
		FieldSpecs: e.Fields,
		Validate:   e.Validate,
	}
}

// Parse decodes and structurally checks a spec document. Full field-spec
// validation stays with the generator; Parse only rejects documents that
// cannot describe a generation at all.
func Parse(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("specfile: parse document: %w", err)
	}
	if len(doc.Constructors) == 0 {
		return Document{}, fmt.Errorf("specfile: document declares no constructors")
	}
	for i, entry := range doc.Constructors {
		if strings.TrimSpace(entry.Type) == "" {
			return Document{}, fmt.Errorf("specfile: constructor %d is missing a type name", i)
		}
	}
	return doc, nil
}

// Load reads and parses a spec file from disk.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("specfile: read %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return Document{}, fmt.Errorf("%w (file %s)", err, path)
	}
	return doc, nil
}
