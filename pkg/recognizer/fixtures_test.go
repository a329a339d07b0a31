package recognizer

const horizontalDiscount = `
  Discount

  ┌───┬──────────┬───────╥──────────┐
  │ U │ Customer │ Order ║ Discount │
  ╞═══╪══════════╪═══════╬══════════╡
  │ 1 │ "a"      │ <10   ║ 0.05     │
  ├───┼──────────┼───────╫──────────┤
  │ 2 │ "b"      │ >=10  ║ 0.10     │
  └───┴──────────┴───────╨──────────┘
`

const verticalDiscount = `
  Discount

  ┌──────────╥──────┬──────┐
  │ Customer ║ "a"  │ "b"  │
  ├──────────╫──────┼──────┤
  │ Order    ║ <10  │ >=10 │
  ╞══════════╬══════╪══════╡
  │ Discount ║ 0.05 │ 0.10 │
  ├──────────╫──────┼──────┤
  │ U        ║  1   │  2   │
  └──────────╨──────┴──────┘
`

const horizontalFull = `
┌───┬──────────┬───────╥─────────────────────╥─────────────┐
│ C+│ Customer │ Order ║      Discount       ║ Description │
│   │          │       ╟──────────┬──────────╢             │
│   │          │       ║ Rate     │ Cap      ║             │
│   ├──────────┼───────╫──────────┼──────────╢             │
│   │ "a","b"  │ <10   ║ 0..1     │ 0..100   ║             │
╞═══╪══════════╪═══════╬══════════╪══════════╬═════════════╡
│ 1 │ "a"      │ <10   ║ 0.05     │ 10       ║ small       │
├───┼──────────┼───────╫──────────┼──────────╫─────────────┤
│ 2 │ "b"      │ >=10  ║ 0.10     │ 50       ║ large order │
│   │          │       ║          │          ║ over ten    │
└───┴──────────┴───────╨──────────┴──────────╨─────────────┘
`

const horizontalNoInputs = `
┌───╥──────────┐
│ F ║ Discount │
╞═══╬══════════╡
│ 1 ║ 0.05     │
├───╫──────────┤
│ 2 ║ 0.10     │
└───╨──────────┘
`

const horizontalNoOutputs = `
┌───┬──────────╖
│ U │ Customer ║
╞═══╪══════════╣
│ 1 │ "a"      ║
├───┼──────────╢
│ 2 │ "b"      ║
└───┴──────────╜
`

const horizontalRuleNumberGap = `
┌───┬──────────╥──────────┐
│ U │ Customer ║ Discount │
╞═══╪══════════╬══════════╡
│ 1 │ "a"      ║ 0.05     │
├───┼──────────╫──────────┤
│ 2 │ "b"      ║ 0.10     │
├───┼──────────╫──────────┤
│ 4 │ "c"      ║ 0.20     │
└───┴──────────╨──────────┘
`

const horizontalBottomLeftHitPolicy = `
┌───┬──────────╥──────────┐
│   │ Customer ║ Discount │
╞═══╪══════════╬══════════╡
│ 1 │ "a"      ║ 0.05     │
├───┼──────────╫──────────┤
│ 2 │ "b"      ║ 0.10     │
├───┼──────────╫──────────┤
│ U │ "c"      ║ 0.20     │
└───┴──────────╨──────────┘
`

const horizontalRaggedRow = `
┌───┬──────────╥──────────┐
│ U │ Customer ║ Discount │
╞═══╪══════════╬══════════╡
│ 1 │ "a"      ║ 0.05    │
└───┴──────────╨──────────┘
`

const crossTable = `
┌───────┬─────┬─────┐
│       │ a   │ b   │
├───────┼─────┼─────┤
│ Small │ 5   │ 6   │
├───────┼─────┼─────┤
│ Large │ 7   │ 8   │
└───────┴─────┴─────┘
`

const bothCornersHitPolicy = `
┌───┬──────────╥──────────┐
│ U │ Customer ║ Discount │
╞═══╪══════════╬══════════╡
│ 1 │ "a"      ║ 0.05     │
├───┼──────────╫──────────┤
│ F │ "b"      ║ 0.10     │
└───┴──────────╨──────────┘
`

const unknownHitPolicy = `
┌───┬──────────╥──────────┐
│ X │ Customer ║ Discount │
╞═══╪══════════╬══════════╡
│ 1 │ "a"      ║ 0.05     │
└───┴──────────╨──────────┘
`

const missingHitPolicy = `
┌───┬──────────╥──────────┐
│   │ Customer ║ Discount │
╞═══╪══════════╬══════════╡
│ 1 │ "a"      ║ 0.05     │
├───┼──────────╫──────────┤
│ 2 │ "b"      ║ 0.10     │
└───┴──────────╨──────────┘
`

const tooManyNameLines = `
Discount
Rebate
┌───┬──────────╥──────────┐
│ U │ Customer ║ Discount │
╞═══╪══════════╬══════════╡
│ 1 │ "a"      ║ 0.05     │
└───┴──────────╨──────────┘
`

const noHeaderLine = `
┌───┬──────────╥──────────┐
│ U │ Customer ║ Discount │
├───┼──────────╫──────────┤
│ 1 │ "a"      ║ 0.05     │
└───┴──────────╨──────────┘
`

const ruleCountMismatch = `
┌───┬──────────╥──────────┐
│ U │ Customer ║ Discount │
╞═══╪══════════╬══════════╡
│ 1 │ "a"      ║ 0.05     │
├───┼──────────╫──────────┤
│ x │ "b"      ║ 0.10     │
└───┴──────────╨──────────┘
`

const outputLabelWithValues = `
┌───┬──────────╥──────────┐
│ U │ Customer ║ Discount │
│   │          ╟──────────┤
│   │          ║ 0..1     │
╞═══╪══════════╬══════════╡
│ 1 │ "a"      ║ 0.05     │
├───┼──────────╫──────────┤
│ 2 │ "b"      ║ 0.10     │
└───┴──────────╨──────────┘
`

const outputComponents = `
┌───┬──────────╥──────┬─────┐
│ U │ Customer ║ Rate │ Cap │
╞═══╪══════════╬══════╪═════╡
│ 1 │ "a"      ║ 0.05 │ 10  │
├───┼──────────╫──────┼─────┤
│ 2 │ "b"      ║ 0.10 │ 50  │
└───┴──────────╨──────┴─────┘
`

const outputLabelWithComponents = `
┌───┬──────────╥────────────┐
│ U │ Customer ║  Discount  │
│   │          ╟──────┬─────┤
│   │          ║ Rate │ Cap │
╞═══╪══════════╬══════╪═════╡
│ 1 │ "a"      ║ 0.05 │ 10  │
├───┼──────────╫──────┼─────┤
│ 2 │ "b"      ║ 0.10 │ 50  │
└───┴──────────╨──────┴─────┘
`

const outputComponentsWithValues = `
┌───┬──────────╥──────┬──────┐
│ U │ Customer ║ Rate │ Cap  │
│   │          ╟──────┼──────┤
│   │          ║ 0..1 │ 0..9 │
╞═══╪══════════╬══════╪══════╡
│ 1 │ "a"      ║ 0.05 │ 9    │
├───┼──────────╫──────┼──────┤
│ 2 │ "b"      ║ 0.10 │ 5    │
└───┴──────────╨──────┴──────┘
`

const verticalWithAnnotations = `
┌──────────╥──────┬──────┐
│ Customer ║ "a"  │ "b"  │
╞══════════╬══════╪══════╡
│ Discount ║ 0.05 │ 0.10 │
╞══════════╬══════╪══════╡
│ Note     ║ x    │ y    │
├──────────╫──────┼──────┤
│ U        ║  1   │  2   │
└──────────╨──────┴──────┘
`

const verticalWithValues = `
┌──────────┬─────────╥──────┬──────┐
│ Customer │ "a","b" ║ "a"  │ "b"  │
├──────────┼─────────╫──────┼──────┤
│ Order    │ <10     ║ <10  │ >=10 │
╞══════════╪═════════╬══════╪══════╡
│ Discount │ 0..1    ║ 0.05 │ 0.10 │
├──────────┴─────────╫──────┼──────┤
│ U                  ║  1   │  2   │
└────────────────────╨──────┴──────┘
`

// The first input expression reads like the Any hit policy.
const verticalHitPolicyLikeInput = `
┌───╥──────┬──────┐
│ A ║ "a"  │ "b"  │
├───╫──────┼──────┤
│ B ║ <10  │ >=10 │
╞═══╬══════╪══════╡
│ D ║ 0.05 │ 0.10 │
├───╫──────┼──────┤
│ U ║  1   │  2   │
└───╨──────┴──────┘
`

const tooManyHeaderRows = `
┌───┬──────────╥──────────┐
│ U │ Customer ║ Discount │
│   ├──────────╫──────────┤
│   │ a        ║ b        │
│   ├──────────╫──────────┤
│   │ c        ║ d        │
│   ├──────────╫──────────┤
│   │ e        ║ f        │
╞═══╪══════════╬══════════╡
│ 1 │ "a"      ║ 0.05     │
└───┴──────────╨──────────┘
`

const inputExpressionNotSpanningTwoRows = `
┌───┬──────────╥──────────┐
│ U │ Customer ║ Discount │
│   ├──────────╢          │
│   │ Region   ║          │
│   ├──────────╢          │
│   │ "a","b"  ║          │
╞═══╪══════════╬══════════╡
│ 1 │ "a"      ║ 0.05     │
└───┴──────────╨──────────┘
`

const inputValuesInSomeColumns = `
┌───┬──────────┬───────╥──────────┐
│ U │ Customer │ Order ║ Discount │
│   ├──────────┤       ║          │
│   │ "a","b"  │       ║          │
╞═══╪══════════╪═══════╬══════════╡
│ 1 │ "a"      │ <10   ║ 0.05     │
└───┴──────────┴───────╨──────────┘
`

const horizontalWithoutRuleNumbers = `
┌───┬──────────╥──────────┐
│ U │ Customer ║ Discount │
╞═══╪══════════╬══════════╡
│   │ "a"      ║ 0.05     │
└───┴──────────╨──────────┘
`

const verticalWithoutRuleNumbers = `
┌──────────╥──────┬──────┐
│ Customer ║ "a"  │ "b"  │
├──────────╫──────┼──────┤
│ Order    ║ <10  │ >=10 │
╞══════════╬══════╪══════╡
│ Discount ║ 0.05 │ 0.10 │
├──────────╫──────┼──────┤
│ U        ║ one  │ two  │
└──────────╨──────┴──────┘
`

const verticalHitPolicyTopLeft = `
┌──────────╥──────┬──────┐
│ U        ║ "a"  │ "b"  │
├──────────╫──────┼──────┤
│ Order    ║ <10  │ >=10 │
╞══════════╬══════╪══════╡
│ Discount ║ 0.05 │ 0.10 │
├──────────╫──────┼──────┤
│ Rule     ║  1   │  2   │
└──────────╨──────┴──────┘
`

const outputLabelNotSpanningTwoRows = `
┌───┬──────────╥──────────┐
│ U │ Customer ║ Discount │
│   │          ╟──────────┤
│   │          ║ Rate     │
│   ├──────────╫──────────┤
│   │ "a","b"  ║ 0..1     │
╞═══╪══════════╬══════════╡
│ 1 │ "a"      ║ 0.05     │
└───┴──────────╨──────────┘
`

const outputHeaderSingleRegion = `
┌───┬──────────╥─────────────┐
│ U │ Customer ║ Discount    │
│   ├──────────╢             │
│   │ "a","b"  ║             │
╞═══╪══════════╬══════╤══════╡
│ 1 │ "a"      ║ 0.05 │ 10   │
└───┴──────────╨──────┴──────┘
`

const outputHeaderMixedRegions = `
┌───┬──────────╥──────┬──────┐
│ U │ Customer ║ Rate │ Cap  │
│   ├──────────╢      ├──────┤
│   │ "a","b"  ║      │ 0..9 │
╞═══╪══════════╬══════╪══════╡
│ 1 │ "a"      ║ 0.05 │ 9    │
└───┴──────────╨──────┴──────┘
`

const outputWithoutLabelRow = `
┌───┬──────────╥──────┬──────┐
│ U │ Customer ║ Rate │ Cap  │
│   │          ╟──────┼──────┤
│   │          ║ a    │ b    │
│   ├──────────╫──────┼──────┤
│   │ "a","b"  ║ 0..1 │ 0..9 │
╞═══╪══════════╬══════╪══════╡
│ 1 │ "a"      ║ 0.05 │ 9    │
└───┴──────────╨──────┴──────┘
`

const outputLabelWithMixedRegions = `
┌───┬──────────╥─────────────┐
│ U │ Customer ║ Discount    │
│   │          ╟──────┬──────┤
│   │          ║ Rate │ Cap  │
│   ├──────────╢      ├──────┤
│   │ "a","b"  ║      │ 0..9 │
╞═══╪══════════╬══════╪══════╡
│ 1 │ "a"      ║ 0.05 │ 9    │
└───┴──────────╨──────┴──────┘
`

const tooManyClauseSeparators = `
┌───┬──────────╥──────────╥──────╥──────┐
│ U │ Customer ║ Discount ║ Note ║ More │
╞═══╪══════════╬══════════╬══════╬══════╡
│ 1 │ "a"      ║ 0.05     ║ x    ║ y    │
└───┴──────────╨──────────╨──────╨──────┘
`

// A doubled border line leaves a logical row that no region covers.
const doubledBorderLine = `
┌───┬───┐
│ a │ b │
├───┤   │
├───┤   │
│ c │ d │
└───┴───┘
`

const bordersOnly = `
┌┬┐
├┼┤
└┴┘
`
