package recgen_test

import (
	"context"
	"fmt"

	recgen "github.com/utopianit-base/recgen"
)

func Example() {
	gen := recgen.New()

	result, err := gen.Generate(context.Background(), recgen.Request{
		TypeName:   "Widget",
		FieldSpecs: []string{"[string]Code", "Name"},
	})
	if err != nil {
		fmt.Println("generate:", err)
		return
	}

	record, err := gen.Registry().Invoke(result.Name, "W1", "Gadget")
	if err != nil {
		fmt.Println("invoke:", err)
		return
	}

	fmt.Println(result.Name)
	fmt.Println(record)
	// Output:
	// NewWidget
	// {Code: W1, Name: Gadget}
}
