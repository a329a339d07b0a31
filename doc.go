/*
Package dectab recognizes decision tables drawn as text with box-drawing characters.

A decision table is written the way it would appear in a DMN document: a hit policy in a
corner, rule numbers along one edge, and double lines separating the header from the rules and
the inputs from the outputs:

	Discount

	┌───┬──────────┬───────╥──────────┐
	│ U │ Customer │ Order ║ Discount │
	╞═══╪══════════╪═══════╬══════════╡
	│ 1 │ "a"      │ <10   ║ 0.05     │
	├───┼──────────┼───────╫──────────┤
	│ 2 │ "b"      │ >=10  ║ 0.10     │
	└───┴──────────┴───────╨──────────┘

Tables with one rule per row and tables with one rule per column are both supported.

# Usage

	tk := dectab.New(dectab.WithLogger(logger))
	table, err := tk.Recognize(ctx, text)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(table.HitPolicy, len(table.Rules))

# Architecture

  - pkg/recognizer: Canvas, Plane and Recognizer, the three recognition stages.
  - pkg/domain: hit policies, the DecisionTable model and lifecycle events.
  - pkg/ports and pkg/adapters: table storage (memory, Redis) and the HTTP and MCP front ends.
  - cmd/dectab: the command line interface.
*/
package dectab
