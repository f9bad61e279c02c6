package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/utopianit-base/recgen/pkg/fieldspec"
	"github.com/utopianit-base/recgen/pkg/generator"
	"github.com/utopianit-base/recgen/pkg/model"
)

// Collect walks the interactive flow and assembles a generation request.
// Field entry repeats until the user submits a blank line; declining the
// final confirmation returns ErrAborted. Requests collected interactively
// always carry Validate so the user sees the outcome.
func Collect(ctx context.Context, driver PromptDriver) (generator.Request, error) {
	typeName, err := driver.Input(ctx, InputConfig{
		Message:   "Record type name",
		Help:      "Alphanumeric only, e.g. Widget",
		Validator: validateTypeName,
	})
	if err != nil {
		return generator.Request{}, err
	}
	typeName = strings.TrimSpace(typeName)

	var specs []string
	for {
		spec, err := driver.Input(ctx, InputConfig{
			Message:   fmt.Sprintf("Field %d (blank to finish)", len(specs)+1),
			Help:      `Optionally annotated, e.g. "[string]Code" or "Name"`,
			Validator: validateFieldSpec,
		})
		if err != nil {
			return generator.Request{}, err
		}
		spec = strings.TrimSpace(spec)
		if spec == "" {
			break
		}
		specs = append(specs, spec)
	}

	name := model.ConstructorPrefix + typeName
	ok, err := driver.Confirm(ctx, ConfirmConfig{
		Message: fmt.Sprintf("Generate %s with %d field(s)?", name, len(specs)),
		Default: true,
	})
	if err != nil {
		return generator.Request{}, err
	}
	if !ok {
		return generator.Request{}, ErrAborted
	}

	return generator.Request{
		TypeName:   typeName,
		FieldSpecs: specs,
		Validate:   true,
	}, nil
}

func validateTypeName(value string) error {
	return fieldspec.CheckTypeName(strings.TrimSpace(value))
}

func validateFieldSpec(value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return fieldspec.CheckSpecs([]string{trimmed})
}
