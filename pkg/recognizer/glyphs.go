package recognizer

// stroke is the weight of one arm of a box-drawing glyph.
type stroke uint8

const (
	none stroke = iota
	single
	double
)

// glyph lists the arms of a box-drawing character.
type glyph struct {
	up, down, left, right stroke
}

var glyphs = map[rune]glyph{
	'─': {left: single, right: single},
	'│': {up: single, down: single},
	'┌': {down: single, right: single},
	'┐': {down: single, left: single},
	'└': {up: single, right: single},
	'┘': {up: single, left: single},
	'├': {up: single, down: single, right: single},
	'┤': {up: single, down: single, left: single},
	'┬': {down: single, left: single, right: single},
	'┴': {up: single, left: single, right: single},
	'┼': {up: single, down: single, left: single, right: single},
	'═': {left: double, right: double},
	'║': {up: double, down: double},
	'╒': {down: single, right: double},
	'╓': {down: double, right: single},
	'╔': {down: double, right: double},
	'╕': {down: single, left: double},
	'╖': {down: double, left: single},
	'╗': {down: double, left: double},
	'╘': {up: single, right: double},
	'╙': {up: double, right: single},
	'╚': {up: double, right: double},
	'╛': {up: single, left: double},
	'╜': {up: double, left: single},
	'╝': {up: double, left: double},
	'╞': {up: single, down: single, right: double},
	'╟': {up: double, down: double, right: single},
	'╠': {up: double, down: double, right: double},
	'╡': {up: single, down: single, left: double},
	'╢': {up: double, down: double, left: single},
	'╣': {up: double, down: double, left: double},
	'╤': {down: single, left: double, right: double},
	'╥': {down: double, left: single, right: single},
	'╦': {down: double, left: double, right: double},
	'╧': {up: single, left: double, right: double},
	'╨': {up: double, left: single, right: single},
	'╩': {up: double, left: double, right: double},
	'╪': {up: single, down: single, left: double, right: double},
	'╫': {up: double, down: double, left: single, right: single},
	'╬': {up: double, down: double, left: double, right: double},
}

// Glyph sets reported in frame errors.
const (
	topLeftCorners     = "┌╒╓╔"
	topRightCorners    = "┐╕╖╗"
	bottomLeftCorners  = "└╘╙╚"
	bottomRightCorners = "┘╛╜╝"
	topEdge            = "─┬═╤╥╦"
	bottomEdge         = "─┴═╧╨╩"
	leftEdge           = "│├║╞╟╠"
	rightEdge          = "│┤║╡╢╣"
)

func isBorder(ch rune) bool {
	_, ok := glyphs[ch]
	return ok
}

func isThin(ch rune) bool {
	g, ok := glyphs[ch]
	return ok && g.up < double && g.down < double && g.left < double && g.right < double
}

// horizontal reports whether the glyph has a horizontal arm.
func (g glyph) horizontal() bool { return g.left != none || g.right != none }

// vertical reports whether the glyph has a vertical arm.
func (g glyph) vertical() bool { return g.up != none || g.down != none }

func (g glyph) horizontalDouble() bool { return g.left == double || g.right == double }

func (g glyph) verticalDouble() bool { return g.up == double || g.down == double }

// crossing reports whether all four arms are present.
func (g glyph) crossing() bool {
	return g.up != none && g.down != none && g.left != none && g.right != none
}
