package model

// ConstructorPrefix is prepended to a type name to form the deterministic
// name of a generated constructor, e.g. "Widget" -> "NewWidget".
const ConstructorPrefix = "New"

// Field describes one declared field of a record constructor. Type holds the
// raw annotation exactly as written in the field spec ("[string]",
// "[string[]]", ...) and is empty for untyped fields.
type Field struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// Descriptor is the validated, ordered description of a record constructor.
// Field order is significant: it is the constructor's positional-argument
// order and the key order of every record the constructor produces. Prefix
// overrides ConstructorPrefix when non-empty.
type Descriptor struct {
	TypeName string  `json:"typeName"`
	Fields   []Field `json:"fields"`
	Prefix   string  `json:"prefix,omitempty"`
}

// ConstructorName returns the deterministic operation name for the
// descriptor's type.
func (d Descriptor) ConstructorName() string {
	prefix := d.Prefix
	if prefix == "" {
		prefix = ConstructorPrefix
	}
	return prefix + d.TypeName
}

// FieldNames returns the declared field names in order.
func (d Descriptor) FieldNames() []string {
	names := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		names[i] = f.Name
	}
	return names
}
