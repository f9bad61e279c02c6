// Package generator coordinates the full pipeline from raw field specs to a
// registered record constructor: validate, parse, render source, build the
// constructor, install it. It applies sensible defaults (fresh registry,
// embedded templates, silent reporter) while remaining open to dependency
// injection for advanced callers.
package generator

import (
	"context"
	"errors"
	"fmt"

	"github.com/utopianit-base/recgen/pkg/codegen"
	"github.com/utopianit-base/recgen/pkg/constructor"
	"github.com/utopianit-base/recgen/pkg/fieldspec"
	"github.com/utopianit-base/recgen/pkg/interp"
	"github.com/utopianit-base/recgen/pkg/model"
	"github.com/utopianit-base/recgen/pkg/report"
)

// Validation failures re-exported so callers can classify results without
// importing fieldspec.
var (
	ErrInvalidTypeName  = fieldspec.ErrInvalidTypeName
	ErrInvalidFieldSpec = fieldspec.ErrInvalidFieldSpec
	// ErrConstruction wraps internal failures while building or installing
	// the constructor. It never escapes as a panic.
	ErrConstruction = errors.New("generator: constructor could not be built")
)

// Option customises the generator configuration.
type Option func(*Generator)

// WithRegistry injects the registry constructors are installed into. Callers
// sharing one registry across generators get "callable by name" semantics
// through explicit lookup rather than implicit global state.
func WithRegistry(registry *constructor.Registry) Option {
	return func(g *Generator) {
		g.registry = registry
	}
}

// WithRenderer injects a custom source renderer.
func WithRenderer(renderer *codegen.Renderer) Option {
	return func(g *Generator) {
		g.renderer = renderer
	}
}

// WithScope injects an evaluation scope. When present, every generated
// source is also evaluated there, so the constructor is callable by name
// inside the scope for the rest of its lifetime. Without a scope the source
// is returned but never evaluated.
func WithScope(scope *interp.Scope) Option {
	return func(g *Generator) {
		g.scope = scope
	}
}

// WithReporter injects the diagnostics sink used when a request asks for
// validation output.
func WithReporter(reporter report.Reporter) Option {
	return func(g *Generator) {
		g.reporter = reporter
	}
}

// WithPrefix overrides the name prefix of generated constructors. The prefix
// must be alphanumeric; empty keeps model.ConstructorPrefix.
func WithPrefix(prefix string) Option {
	return func(g *Generator) {
		g.prefix = prefix
	}
}

// Generator owns the generation pipeline. Zero or more options configure it;
// missing dependencies are filled with built-in implementations.
type Generator struct {
	registry *constructor.Registry
	renderer *codegen.Renderer
	scope    *interp.Scope
	reporter report.Reporter
	prefix   string
	initErr  error
}

// New constructs a Generator applying any provided options.
func New(options ...Option) *Generator {
	g := &Generator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	g.applyDefaults()
	return g
}

func (g *Generator) applyDefaults() {
	if g.registry == nil {
		g.registry = constructor.NewRegistry()
	}
	if g.reporter == nil {
		g.reporter = report.Nop{}
	}
	if g.renderer == nil {
		renderer, err := codegen.NewRenderer()
		if err != nil {
			g.initErr = fmt.Errorf("%w: %v", ErrConstruction, err)
			return
		}
		g.renderer = renderer
	}
	if g.prefix != "" {
		if err := fieldspec.CheckTypeName(g.prefix); err != nil {
			g.initErr = fmt.Errorf("%w: constructor prefix %q must be alphanumeric", ErrConstruction, g.prefix)
		}
	}
}

// Registry exposes the registry the generator installs into.
func (g *Generator) Registry() *constructor.Registry {
	return g.registry
}

// Request describes one constructor generation.
type Request struct {
	// TypeName names the record type; alphanumeric only.
	TypeName string
	// FieldSpecs are the ordered raw field declarations.
	FieldSpecs []string
	// Validate turns on human-readable diagnostics. The returned error is
	// the authoritative success signal either way.
	Validate bool
}

// Result reports a successful generation.
type Result struct {
	// Name is the registered constructor name (prefix + type name).
	Name string
	// Source is the generated constructor source text, suitable for
	// inspection or independent evaluation.
	Source string
	// Descriptor is the parsed field layout behind the constructor.
	Descriptor model.Descriptor
}

// Generate runs the pipeline for one request. On success the constructor is
// registered under Result.Name (and installed into the evaluation scope when
// one is configured). Failures are reported once through the configured
// reporter when the request asks for validation, and always as the returned
// error; nothing is registered on failure.
func (g *Generator) Generate(ctx context.Context, req Request) (Result, error) {
	if g.initErr != nil {
		return Result{}, g.initErr
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	descriptor, err := fieldspec.ParseAll(req.TypeName, req.FieldSpecs)
	if err != nil {
		g.failuref(req, "rejected %q: %v", req.TypeName, err)
		return Result{}, err
	}
	descriptor.Prefix = g.prefix
	name := descriptor.ConstructorName()

	source, err := g.renderer.Render(descriptor)
	if err != nil {
		g.failuref(req, "could not build %s: %v", name, err)
		return Result{}, fmt.Errorf("%w: %v", ErrConstruction, err)
	}

	if g.scope != nil {
		if _, err := g.scope.Install(ctx, source, name); err != nil {
			g.failuref(req, "could not install %s: %v", name, err)
			return Result{}, fmt.Errorf("%w: %v", ErrConstruction, err)
		}
	}

	if err := g.registry.Register(constructor.New(descriptor, source)); err != nil {
		g.failuref(req, "could not register %s: %v", name, err)
		return Result{}, fmt.Errorf("%w: %v", ErrConstruction, err)
	}

	if req.Validate {
		g.reporter.Successf("registered %s (%d fields)", name, len(descriptor.Fields))
	}
	return Result{Name: name, Source: source, Descriptor: descriptor}, nil
}

func (g *Generator) failuref(req Request, format string, args ...any) {
	if req.Validate {
		g.reporter.Failuref(format, args...)
	}
}
