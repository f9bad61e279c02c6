// Package interp evaluates generated constructor source in an embedded Go
// interpreter, making each constructor callable by its deterministic name
// for the remaining lifetime of the scope. This is the evaluated twin of the
// descriptor-interpreting constructors in pkg/constructor and backs the
// round-trip guarantee between returned source text and registered behavior.
package interp

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"github.com/utopianit-base/recgen/pkg/model"
)

// Scope owns a yaegi interpreter holding every constructor installed so far.
// Generated source only ever references the standard library, so the
// interpreter is loaded with stdlib symbols and nothing else.
type Scope struct {
	mu sync.Mutex
	i  *interp.Interpreter
}

// NewScope creates an empty evaluation scope.
func NewScope() (*Scope, error) {
	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("interp: load stdlib symbols: %w", err)
	}
	return &Scope{i: i}, nil
}

// Install evaluates generated constructor source and resolves the named
// operation inside the scope. Installing the same name again replaces the
// previous definition, matching the registry's overwrite semantics.
func (s *Scope) Install(ctx context.Context, source, name string) (*Invoker, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.i.Eval(source); err != nil {
		return nil, fmt.Errorf("interp: evaluate generated source for %s: %w", name, err)
	}
	return s.resolve(name)
}

// Lookup resolves a previously installed constructor by name.
func (s *Scope) Lookup(name string) (*Invoker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolve(name)
}

func (s *Scope) resolve(name string) (*Invoker, error) {
	v, err := s.i.Eval("main." + name)
	if err != nil {
		return nil, fmt.Errorf("interp: resolve %s: %w", name, err)
	}
	if v.Kind() != reflect.Func {
		return nil, fmt.Errorf("interp: %s is %s, not a function", name, v.Kind())
	}
	return &Invoker{name: name, fn: v}, nil
}

// Invoker wraps an installed constructor function.
type Invoker struct {
	name string
	fn   reflect.Value
}

// Name returns the constructor name the invoker resolves to.
func (inv *Invoker) Name() string { return inv.name }

// Call invokes the constructor with positional arguments and converts the
// returned struct into an ordered record, reading original field spellings
// from the rec struct tags the generator emits.
func (inv *Invoker) Call(args ...any) (*model.Record, error) {
	t := inv.fn.Type()
	if t.IsVariadic() || t.NumIn() != len(args) {
		return nil, fmt.Errorf("interp: %s expects %d arguments, got %d",
			inv.name, t.NumIn(), len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		paramType := t.In(i)
		if arg == nil {
			in[i] = reflect.Zero(paramType)
			continue
		}
		value := reflect.ValueOf(arg)
		if !value.Type().AssignableTo(paramType) {
			return nil, fmt.Errorf("interp: %s argument %d: %s is not assignable to %s",
				inv.name, i, value.Type(), paramType)
		}
		in[i] = value
	}

	out := inv.fn.Call(in)
	if len(out) != 1 {
		return nil, fmt.Errorf("interp: %s returned %d values, want 1", inv.name, len(out))
	}
	return structToRecord(out[0])
}

func structToRecord(v reflect.Value) (*model.Record, error) {
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("interp: constructor returned %s, want a struct", v.Kind())
	}

	t := v.Type()
	record := model.NewRecord(t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name := field.Name
		if tag, ok := field.Tag.Lookup("rec"); ok && tag != "" {
			name = tag
		}
		record.Set(name, v.Field(i).Interface())
	}
	return record, nil
}
