package dectab_test

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/aretw0/dectab"
	"github.com/aretw0/dectab/pkg/domain"
	"github.com/aretw0/dectab/pkg/recognizer"
)

const discountTable = `
  Discount

  ┌───┬──────────┬───────╥──────────┐
  │ U │ Customer │ Order ║ Discount │
  ╞═══╪══════════╪═══════╬══════════╡
  │ 1 │ "a"      │ <10   ║ 0.05     │
  ├───┼──────────┼───────╫──────────┤
  │ 2 │ "b"      │ >=10  ║ 0.10     │
  └───┴──────────┴───────╨──────────┘
`

// ExampleToolkit_Recognize decodes a table drawn with one rule per row.
func ExampleToolkit_Recognize() {
	tk := dectab.New()

	dt, err := tk.Recognize(context.Background(), discountTable)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(dt.InformationItemName)
	fmt.Println(dt.HitPolicy.Code(), dt.Orientation)
	for _, in := range dt.InputClauses {
		fmt.Println("input:", in.InputExpression)
	}
	fmt.Println("output:", dt.OutputLabel)
	for i, rule := range dt.Rules {
		fmt.Println(i+1, rule.InputEntries, rule.OutputEntries)
	}

	// Output:
	// Discount
	// U rule-as-row
	// input: Customer
	// input: Order
	// output: Discount
	// 1 ["a" <10] [0.05]
	// 2 ["b" >=10] [0.10]
}

// ExampleToolkit_Recognize_crossTable shows how unsupported layouts are reported.
func ExampleToolkit_Recognize_crossTable() {
	const crossTable = `
┌───────┬─────┬─────┐
│       │ a   │ b   │
├───────┼─────┼─────┤
│ Small │ 5   │ 6   │
├───────┼─────┼─────┤
│ Large │ 7   │ 8   │
└───────┴─────┴─────┘
`
	_, err := dectab.New().Recognize(context.Background(), crossTable)
	fmt.Println(err)
	fmt.Println(errors.Is(err, recognizer.ErrRecognizingCrossTabNotSupportedYet))

	// Output:
	// RecognizerError: recognizing cross tab decision tables is not supported yet
	// true
}

// ExampleWithLifecycleHooks observes every recognition.
func ExampleWithLifecycleHooks() {
	hooks := domain.LifecycleHooks{
		OnRecognized: func(_ context.Context, e *domain.RecognitionEvent) {
			fmt.Printf("recognized %s table with %d rules\n", e.Orientation, e.RuleCount)
		},
		OnRejected: func(_ context.Context, e *domain.RecognitionEvent) {
			fmt.Println("rejected:", e.Err)
		},
	}
	tk := dectab.New(dectab.WithLifecycleHooks(hooks))

	_, _ = tk.Recognize(context.Background(), discountTable)
	_, _ = tk.Recognize(context.Background(), "   ")

	// Output:
	// recognized rule-as-row table with 2 rules
	// rejected: input is empty
}
