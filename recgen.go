// Package recgen generates record constructors at runtime from a type name
// and an ordered list of field declarations. It re-exports the generator
// pipeline so most callers only need this package; the pkg/... packages
// remain available for dependency injection.
package recgen

import (
	"github.com/utopianit-base/recgen/pkg/generator"
)

// Generator re-exports the pipeline orchestrator.
type Generator = generator.Generator

// Request re-exports the generation request.
type Request = generator.Request

// Result re-exports the generation result.
type Result = generator.Result

// Option re-exports generator configuration options.
type Option = generator.Option

// Failure classification re-exported for callers that branch on error kind.
var (
	ErrInvalidTypeName  = generator.ErrInvalidTypeName
	ErrInvalidFieldSpec = generator.ErrInvalidFieldSpec
	ErrConstruction     = generator.ErrConstruction
)

// New constructs a generator with the provided options.
func New(options ...Option) *Generator {
	return generator.New(options...)
}
