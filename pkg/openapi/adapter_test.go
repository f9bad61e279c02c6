package openapi_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/utopianit-base/recgen/pkg/openapi"
)

const sampleDocument = `
openapi: 3.0.3
info:
  title: inventory
  version: "1.0"
paths: {}
components:
  schemas:
    Widget:
      type: object
      required: [Code]
      properties:
        Code:
          type: string
        Name:
          type: string
        Count:
          type: integer
        Price:
          type: number
        Enabled:
          type: boolean
        Links:
          type: array
          items:
            type: string
        Meta:
          type: object
`

func TestFieldSpecs(t *testing.T) {
	specs, err := openapi.FieldSpecs(context.Background(), openapi.SourceFromBytes([]byte(sampleDocument)), "Widget")
	if err != nil {
		t.Fatalf("FieldSpecs: %v", err)
	}

	// Required properties first, then optional, each group alphabetical.
	want := []string{
		"[string]Code",
		"[int]Count",
		"[bool]Enabled",
		"[string[]]Links",
		"Meta",
		"[string]Name",
		"[double]Price",
	}
	if diff := cmp.Diff(want, specs); diff != "" {
		t.Fatalf("spec mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldSpecsUnknownSchema(t *testing.T) {
	_, err := openapi.FieldSpecs(context.Background(), openapi.SourceFromBytes([]byte(sampleDocument)), "Gadget")
	if err == nil {
		t.Fatal("FieldSpecs succeeded for a missing schema")
	}
}

func TestFieldSpecsEmptyDocument(t *testing.T) {
	if _, err := openapi.FieldSpecs(context.Background(), openapi.SourceFromBytes(nil), "Widget"); err == nil {
		t.Fatal("FieldSpecs succeeded on an empty payload")
	}
}

func TestFieldSpecsRequiresSource(t *testing.T) {
	if _, err := openapi.FieldSpecs(context.Background(), nil, "Widget"); err == nil {
		t.Fatal("FieldSpecs succeeded without a source")
	}
}
