package tui_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/utopianit-base/recgen/pkg/generator"
	"github.com/utopianit-base/recgen/pkg/tui"
)

// scriptedDriver replays canned answers, applying validators the way the
// survey driver would.
type scriptedDriver struct {
	inputs   []string
	confirms []bool
	aborts   bool
}

func (d *scriptedDriver) Input(_ context.Context, cfg tui.InputConfig) (string, error) {
	if d.aborts {
		return "", tui.ErrAborted
	}
	if len(d.inputs) == 0 {
		return "", errors.New("scripted driver ran out of inputs")
	}
	answer := d.inputs[0]
	d.inputs = d.inputs[1:]
	if cfg.Validator != nil {
		if err := cfg.Validator(answer); err != nil {
			return "", err
		}
	}
	return answer, nil
}

func (d *scriptedDriver) Confirm(context.Context, tui.ConfirmConfig) (bool, error) {
	if len(d.confirms) == 0 {
		return false, errors.New("scripted driver ran out of confirmations")
	}
	answer := d.confirms[0]
	d.confirms = d.confirms[1:]
	return answer, nil
}

func (d *scriptedDriver) Info(context.Context, string) error { return nil }

func TestCollect(t *testing.T) {
	driver := &scriptedDriver{
		inputs:   []string{"Widget", "[string]Code", "Name", ""},
		confirms: []bool{true},
	}

	req, err := tui.Collect(context.Background(), driver)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	want := generator.Request{
		TypeName:   "Widget",
		FieldSpecs: []string{"[string]Code", "Name"},
		Validate:   true,
	}
	if diff := cmp.Diff(want, req); diff != "" {
		t.Fatalf("request mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectDeclinedConfirmation(t *testing.T) {
	driver := &scriptedDriver{
		inputs:   []string{"Widget", ""},
		confirms: []bool{false},
	}
	if _, err := tui.Collect(context.Background(), driver); !errors.Is(err, tui.ErrAborted) {
		t.Fatalf("Collect = %v, want ErrAborted", err)
	}
}

func TestCollectValidatesTypeName(t *testing.T) {
	driver := &scriptedDriver{inputs: []string{"Bad Name"}}
	if _, err := tui.Collect(context.Background(), driver); err == nil {
		t.Fatal("Collect accepted an invalid type name")
	}
}

func TestCollectPropagatesAbort(t *testing.T) {
	driver := &scriptedDriver{aborts: true}
	if _, err := tui.Collect(context.Background(), driver); !errors.Is(err, tui.ErrAborted) {
		t.Fatalf("Collect = %v, want ErrAborted", err)
	}
}
