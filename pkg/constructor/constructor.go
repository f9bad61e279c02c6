// Package constructor turns a validated descriptor into an invokable record
// constructor and provides the registry those constructors are installed
// into. The constructor interprets the descriptor directly; no generated
// text is evaluated on this path.
package constructor

import (
	"fmt"
	"reflect"

	"github.com/utopianit-base/recgen/pkg/fieldspec"
	"github.com/utopianit-base/recgen/pkg/model"
)

// Constructor builds ordered records from positional arguments, one argument
// per declared field in descriptor order.
type Constructor struct {
	name       string
	descriptor model.Descriptor
	source     string
	goTypes    []string
}

// New creates a constructor for the descriptor. The source text is kept for
// inspection via Source; it is not evaluated here.
func New(descriptor model.Descriptor, source string) *Constructor {
	goTypes := make([]string, len(descriptor.Fields))
	for i, field := range descriptor.Fields {
		goTypes[i] = fieldspec.GoType(field.Type)
	}
	return &Constructor{
		name:       descriptor.ConstructorName(),
		descriptor: descriptor,
		source:     source,
		goTypes:    goTypes,
	}
}

// Name returns the constructor's deterministic operation name.
func (c *Constructor) Name() string { return c.name }

// Descriptor returns the descriptor the constructor was built from.
func (c *Constructor) Descriptor() model.Descriptor { return c.descriptor }

// Source returns the generated source text associated with the constructor.
func (c *Constructor) Source() string { return c.source }

// NewRecord binds positional arguments to the declared fields and returns the
// assembled record. Arity and declared annotation types are enforced; fields
// without an annotation accept any value.
func (c *Constructor) NewRecord(args ...any) (*model.Record, error) {
	if len(args) != len(c.descriptor.Fields) {
		return nil, fmt.Errorf("constructor: %s expects %d arguments, got %d",
			c.name, len(c.descriptor.Fields), len(args))
	}
	record := model.NewRecord(len(args))
	for i, field := range c.descriptor.Fields {
		if err := checkArg(c.goTypes[i], args[i]); err != nil {
			return nil, fmt.Errorf("constructor: %s argument %d (%s): %w",
				c.name, i, field.Name, err)
		}
		record.Set(field.Name, args[i])
	}
	return record, nil
}

func checkArg(want string, value any) error {
	if want == "any" {
		return nil
	}
	if value == nil {
		return fmt.Errorf("nil value for %s field", want)
	}
	got := reflect.TypeOf(value)
	if want == "[]any" {
		if got.Kind() != reflect.Slice {
			return fmt.Errorf("want a slice, got %s", got)
		}
		return nil
	}
	if got.String() != want {
		return fmt.Errorf("want %s, got %s", want, got)
	}
	return nil
}
