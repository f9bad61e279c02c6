package fieldspec

import "strings"

// GoType maps a field annotation to the Go type enforced at argument-binding
// time and written into generated source. Unknown or empty annotations map to
// "any" so untyped fields accept every value.
func GoType(annotation string) string {
	inner := strings.TrimSuffix(strings.TrimPrefix(annotation, "["), "]")
	if inner == "" {
		return "any"
	}
	if elem, ok := strings.CutSuffix(inner, "[]"); ok {
		mapped := scalarGoType(elem)
		if mapped == "any" {
			return "[]any"
		}
		return "[]" + mapped
	}
	return scalarGoType(inner)
}

func scalarGoType(name string) string {
	switch strings.ToLower(name) {
	case "string":
		return "string"
	case "int", "int32":
		return "int"
	case "int64", "long":
		return "int64"
	case "bool", "boolean":
		return "bool"
	case "double", "float", "float64":
		return "float64"
	default:
		return "any"
	}
}
