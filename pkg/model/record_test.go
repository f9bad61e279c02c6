package model_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/utopianit-base/recgen/pkg/model"
)

func TestRecordOrder(t *testing.T) {
	record := model.NewRecord(3)
	record.Set("Code", "W1")
	record.Set("Name", "Gadget")
	record.Set("Count", 3)

	want := []string{"Code", "Name", "Count"}
	if diff := cmp.Diff(want, record.Keys()); diff != "" {
		t.Fatalf("key order mismatch (-want +got):\n%s", diff)
	}
	if record.Len() != 3 {
		t.Fatalf("Len = %d, want 3", record.Len())
	}
}

func TestRecordSetReplacesInPlace(t *testing.T) {
	record := model.NewRecord(2)
	record.Set("Code", "W1")
	record.Set("Name", "Gadget")
	record.Set("Code", "W2")

	if diff := cmp.Diff([]string{"Code", "Name"}, record.Keys()); diff != "" {
		t.Fatalf("replace moved the key (-want +got):\n%s", diff)
	}
	value, ok := record.Get("Code")
	if !ok || value != "W2" {
		t.Fatalf("Get(Code) = %v, %v; want W2, true", value, ok)
	}
}

func TestRecordMarshalJSONPreservesOrder(t *testing.T) {
	record := model.NewRecord(3)
	record.Set("Zeta", 1)
	record.Set("Alpha", 2)
	record.Set("Mid", 3)

	data, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"Zeta":1,"Alpha":2,"Mid":3}`
	if string(data) != want {
		t.Fatalf("marshal = %s, want %s", data, want)
	}
}

func TestRecordEqual(t *testing.T) {
	a := model.NewRecord(2)
	a.Set("Code", "W1")
	a.Set("Name", "Gadget")

	b := model.NewRecord(2)
	b.Set("Code", "W1")
	b.Set("Name", "Gadget")

	if !a.Equal(b) {
		t.Fatal("identical records reported unequal")
	}

	c := model.NewRecord(2)
	c.Set("Name", "Gadget")
	c.Set("Code", "W1")
	if a.Equal(c) {
		t.Fatal("records with different key order reported equal")
	}

	d := model.NewRecord(2)
	d.Set("Code", "W1")
	d.Set("Name", "Widget")
	if a.Equal(d) {
		t.Fatal("records with different values reported equal")
	}
}

func TestConstructorName(t *testing.T) {
	d := model.Descriptor{TypeName: "Widget"}
	if got := d.ConstructorName(); got != "NewWidget" {
		t.Fatalf("ConstructorName = %q, want NewWidget", got)
	}
	d.Prefix = "Make"
	if got := d.ConstructorName(); got != "MakeWidget" {
		t.Fatalf("ConstructorName with prefix = %q, want MakeWidget", got)
	}
}

func TestRecordString(t *testing.T) {
	record := model.NewRecord(2)
	record.Set("Code", "W1")
	record.Set("Count", 2)
	if got := record.String(); got != "{Code: W1, Count: 2}" {
		t.Fatalf("String = %q", got)
	}
}
