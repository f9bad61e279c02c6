package specfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/utopianit-base/recgen/pkg/generator"
	"github.com/utopianit-base/recgen/pkg/specfile"
)

const sampleDocument = `
constructors:
  - type: Widget
    fields: ["[string]Code", "Name"]
    validate: true
  - type: Link
    fields: ["[string[]]Targets"]
`

func TestParse(t *testing.T) {
	doc, err := specfile.Parse([]byte(sampleDocument))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := specfile.Document{
		Constructors: []specfile.Entry{
			{Type: "Widget", Fields: []string{"[string]Code", "Name"}, Validate: true},
			{Type: "Link", Fields: []string{"[string[]]Targets"}},
		},
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}

	req := doc.Constructors[0].Request()
	wantReq := generator.Request{
		TypeName:   "Widget",
		FieldSpecs: []string{"[string]Code", "Name"},
		Validate:   true,
	}
	if diff := cmp.Diff(wantReq, req); diff != "" {
		t.Fatalf("request mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRejectsEmptyDocuments(t *testing.T) {
	cases := map[string]string{
		"no constructors":   "constructors: []",
		"missing type name": "constructors:\n  - fields: [Name]",
		"malformed yaml":    "constructors: [",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := specfile.Parse([]byte(doc)); err == nil {
				t.Fatal("Parse succeeded")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "constructors.yaml")
	if err := os.WriteFile(path, []byte(sampleDocument), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	doc, err := specfile.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(doc.Constructors) != 2 {
		t.Fatalf("Constructors = %d, want 2", len(doc.Constructors))
	}

	if _, err := specfile.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("Load on missing file succeeded")
	}
}
