// Package fieldspec validates and parses raw field declarations of the form
// "[<annotation>]<name>", e.g. "[string]AppCode", "[string[]]Links" or the
// bare "isEnabled". Parsed declarations feed the constructor generator.
package fieldspec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/utopianit-base/recgen/pkg/model"
)

var (
	// ErrInvalidTypeName rejects type names that are empty or contain
	// anything besides ASCII letters and digits.
	ErrInvalidTypeName = errors.New("fieldspec: type name must be non-empty and alphanumeric")
	// ErrInvalidFieldSpec rejects field declarations that contain a
	// forbidden character or repeat a field name.
	ErrInvalidFieldSpec = errors.New("fieldspec: invalid field spec")
)

// forbidden lists the characters rejected anywhere in the joined field-spec
// text. They have no place in a field declaration and keep hostile input out
// of the generated source.
const forbidden = `:$;\'/`

// CheckTypeName enforces the alphanumeric-only invariant on a type name.
func CheckTypeName(name string) error {
	if name == "" {
		return ErrInvalidTypeName
	}
	for _, r := range name {
		if !isAlphanumeric(r) {
			return fmt.Errorf("%w: %q", ErrInvalidTypeName, name)
		}
	}
	return nil
}

// CheckSpecs enforces the forbidden-character invariant across the joined
// field-spec text. A single violation rejects the whole list.
func CheckSpecs(specs []string) error {
	joined := strings.Join(specs, "")
	if strings.ContainsAny(joined, forbidden) {
		return fmt.Errorf("%w: forbidden character in %q", ErrInvalidFieldSpec, joined)
	}
	return nil
}

// Parse splits a single raw declaration into annotation and name. The two
// character token "]]" is tried before "]" so nested annotations like
// "[string[]]" keep their trailing brackets. A declaration without brackets
// is just a field name with no annotation.
func Parse(raw string) model.Field {
	if i := strings.Index(raw, "]]"); i >= 0 {
		return model.Field{Type: raw[:i+2], Name: raw[i+2:]}
	}
	if strings.Contains(raw, "[") {
		if i := strings.Index(raw, "]"); i >= 0 {
			return model.Field{Type: raw[:i+1], Name: raw[i+1:]}
		}
	}
	return model.Field{Name: raw}
}

// ParseAll validates the type name and field specs, then parses every
// declaration in order into a constructor descriptor. Duplicate field names
// are rejected: a record carries exactly one key per declared field, so a
// repeated name could never round-trip through the constructor. Validation
// failures leave no side effects.
func ParseAll(typeName string, specs []string) (model.Descriptor, error) {
	if err := CheckTypeName(typeName); err != nil {
		return model.Descriptor{}, err
	}
	if err := CheckSpecs(specs); err != nil {
		return model.Descriptor{}, err
	}
	fields := make([]model.Field, len(specs))
	seen := make(map[string]struct{}, len(specs))
	for i, spec := range specs {
		fields[i] = Parse(spec)
		name := fields[i].Name
		if _, dup := seen[name]; dup {
			return model.Descriptor{}, fmt.Errorf("%w: duplicate field name %q", ErrInvalidFieldSpec, name)
		}
		seen[name] = struct{}{}
	}
	return model.Descriptor{TypeName: typeName, Fields: fields}, nil
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
