package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/utopianit-base/recgen/pkg/generator"
	"github.com/utopianit-base/recgen/pkg/interp"
	"github.com/utopianit-base/recgen/pkg/openapi"
	"github.com/utopianit-base/recgen/pkg/report"
	"github.com/utopianit-base/recgen/pkg/specfile"
	"github.com/utopianit-base/recgen/pkg/tui"
)

func main() {
	typeName := flag.String("type", "", "record type name to generate a constructor for")
	fields := flag.String("fields", "", "comma-separated field specs, e.g. '[string]Code,Name'")
	specPath := flag.String("spec", "", "YAML spec file declaring constructors")
	source := flag.String("source", "", "OpenAPI document path or URL to derive field specs from")
	schema := flag.String("schema", "", "component schema name inside the OpenAPI document")
	interactive := flag.Bool("i", false, "collect the request interactively")
	output := flag.String("output", "", "write generated source to this file (stdout if empty)")
	evaluate := flag.Bool("eval", true, "evaluate generated source in an embedded interpreter")
	flag.Parse()

	ctx := context.Background()

	gen, err := newGenerator(*evaluate)
	if err != nil {
		log.Fatalf("Failed to initialise generator: %v", err)
	}

	requests, err := collectRequests(ctx, *typeName, *fields, *specPath, *source, *schema, *interactive)
	if err != nil {
		if errors.Is(err, tui.ErrAborted) {
			log.Fatal("Aborted")
		}
		log.Fatalf("Failed to assemble request: %v", err)
	}

	var sources []string
	for _, req := range requests {
		result, err := gen.Generate(ctx, req)
		if err != nil {
			log.Fatalf("Failed to generate %s: %v", req.TypeName, err)
		}
		sources = append(sources, result.Source)
	}

	combined := strings.Join(sources, "\n")
	if *output != "" {
		if err := os.WriteFile(*output, []byte(combined), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Generated source written to %s\n", *output)
	} else {
		fmt.Println(combined)
	}
}

func newGenerator(evaluate bool) (*generator.Generator, error) {
	options := []generator.Option{
		generator.WithReporter(report.NewConsole(os.Stderr)),
	}
	if evaluate {
		scope, err := interp.NewScope()
		if err != nil {
			return nil, err
		}
		options = append(options, generator.WithScope(scope))
	}
	return generator.New(options...), nil
}

func collectRequests(ctx context.Context, typeName, fields, specPath, source, schema string, interactive bool) ([]generator.Request, error) {
	switch {
	case interactive:
		req, err := tui.Collect(ctx, tui.NewSurveyDriver())
		if err != nil {
			return nil, err
		}
		return []generator.Request{req}, nil

	case specPath != "":
		doc, err := specfile.Load(specPath)
		if err != nil {
			return nil, err
		}
		requests := make([]generator.Request, len(doc.Constructors))
		for i, entry := range doc.Constructors {
			requests[i] = entry.Request()
		}
		return requests, nil

	case source != "":
		if schema == "" {
			return nil, errors.New("-schema is required with -source")
		}
		specs, err := openapi.FieldSpecs(ctx, parseSource(source), schema)
		if err != nil {
			return nil, err
		}
		return []generator.Request{{TypeName: schema, FieldSpecs: specs, Validate: true}}, nil

	case typeName != "":
		return []generator.Request{{
			TypeName:   typeName,
			FieldSpecs: splitFields(fields),
			Validate:   true,
		}}, nil

	default:
		return nil, errors.New("one of -type, -spec, -source or -i is required")
	}
}

func parseSource(raw string) openapi.Source {
	path := strings.TrimSpace(raw)
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return openapi.SourceFromURL(path)
	}
	return openapi.SourceFromFile(path)
}

func splitFields(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	specs := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			specs = append(specs, trimmed)
		}
	}
	return specs
}
