/*
Package recognizer turns a decision table drawn with box-drawing characters into its
structural components.

Recognition runs in three stages:

  - Canvas: the text is scanned into a closed rectangular grid and every character is
    classified as a thin border, a double border, cell body or cell text.
  - Plane: the grid is partitioned into rectangular regions (merged cells included) that are
    addressed by logical rows and columns.
  - Recognizer: the plane is queried for the hit policy, the rule numbers and the double lines
    that separate the header from the rules and the inputs from the outputs and annotations.

A horizontal table (one rule per row) has the hit policy in the top-left cell and the rule
numbers in the first column:

	┌───┬──────────┬───────╥──────────┐
	│ U │ Customer │ Order ║ Discount │
	╞═══╪══════════╪═══════╬══════════╡
	│ 1 │ "Retail" │  <10  ║   0.05   │
	├───┼──────────┼───────╫──────────┤
	│ 2 │ "Retail" │ >=10  ║   0.10   │
	└───┴──────────┴───────╨──────────┘

A vertical table (one rule per column) has the hit policy in the bottom-left cell and the rule
numbers in the last row. It is removed and the plane is pivoted before extraction, so both
orientations share one extraction routine.

Text inside cells is returned verbatim; no expression is parsed or evaluated here.
*/
package recognizer
