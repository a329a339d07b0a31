package recognizer

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/aretw0/dectab/pkg/geometry"
	"golang.org/x/text/unicode/norm"
)

const tabWidth = 8

// CellKind classifies a single character of the canvas.
type CellKind int

const (
	// CellThin is a single-line box-drawing character.
	CellThin CellKind = iota
	// CellDouble is a box-drawing character with at least one double arm.
	CellDouble
	// CellBody is a space enclosed by borders.
	CellBody
	// CellText is any other character enclosed by borders.
	CellText
)

func (k CellKind) String() string {
	switch k {
	case CellThin:
		return "thin"
	case CellDouble:
		return "double"
	case CellBody:
		return "body"
	case CellText:
		return "text"
	default:
		return fmt.Sprintf("CellKind(%d)", int(k))
	}
}

// Layer selects one of the boolean layers derived from the canvas.
type Layer int

const (
	LayerText Layer = iota
	LayerThin
	LayerBody
	LayerGrid
)

func (l Layer) String() string {
	switch l {
	case LayerText:
		return "TEXT"
	case LayerThin:
		return "THIN"
	case LayerBody:
		return "BODY"
	case LayerGrid:
		return "GRID"
	default:
		return fmt.Sprintf("Layer(%d)", int(l))
	}
}

// Layers lists every layer in display order.
var Layers = []Layer{LayerText, LayerThin, LayerBody, LayerGrid}

// ParseLayer converts a layer name, case-insensitively, into a Layer.
func ParseLayer(name string) (Layer, error) {
	for _, l := range Layers {
		if strings.EqualFold(name, l.String()) {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown layer %q", name)
}

// Canvas is a rectangular character grid scanned from decision table text.
// It is immutable after Scan returns.
type Canvas struct {
	text                string
	informationItemName string
	content             [][]rune
	kinds               [][]CellKind
}

// Scan reads the text of a decision table drawn with box-drawing characters.
func Scan(text string) (*Canvas, error) {
	text = norm.NFC.String(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = expandTabs(line)
	}

	start, left := findTopLeftCorner(lines)
	if start < 0 {
		return nil, errExpectedCharactersNotFound(topLeftCorners)
	}

	c := &Canvas{text: text}

	for _, line := range lines[:start] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if c.informationItemName != "" {
			return nil, canvasErr(ErrCanvasTooManyTextLines, "%q and %q", c.informationItemName, trimmed)
		}
		c.informationItemName = trimmed
	}

	rows, err := collectRows(lines[start:], left)
	if err != nil {
		return nil, err
	}
	if err := checkWidths(rows); err != nil {
		return nil, err
	}
	if err := checkFrame(rows); err != nil {
		return nil, err
	}

	c.content = rows
	c.kinds = classify(rows)
	return c, nil
}

func expandTabs(line string) string {
	if !strings.ContainsRune(line, '\t') {
		return line
	}
	var b strings.Builder
	col := 0
	for _, ch := range line {
		if ch == '\t' {
			n := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(ch)
		col++
	}
	return b.String()
}

// findTopLeftCorner returns the line index and rune column of the first top-left corner.
func findTopLeftCorner(lines []string) (int, int) {
	for i, line := range lines {
		for j, ch := range []rune(line) {
			if strings.ContainsRune(topLeftCorners, ch) {
				return i, j
			}
		}
	}
	return -1, -1
}

// collectRows takes grid lines while the character in the left column is a border.
func collectRows(lines []string, left int) ([][]rune, error) {
	var rows [][]rune
	for i, line := range lines {
		runes := []rune(strings.TrimRightFunc(line, unicode.IsSpace))
		if len(runes) <= left || !isBorder(runes[left]) {
			break
		}
		for _, ch := range runes[:left] {
			if !unicode.IsSpace(ch) {
				return nil, canvasErr(ErrCanvasCharacterIsNotAllowed, "%q left of the table in row %d", ch, i)
			}
		}
		rows = append(rows, runes[left:])
	}
	return rows, nil
}

// checkWidths requires every row to end at the same column as the widest row.
// The error spans from the last character of the offending row to the expected right edge.
func checkWidths(rows [][]rune) error {
	width := 0
	for _, row := range rows {
		last := -1
		for j, ch := range row {
			if isBorder(ch) {
				last = j
			}
		}
		width = max(width, last+1)
	}
	for i, row := range rows {
		if len(row) != width {
			return errRectangleNotClosed(geometry.NewPoint(i, len(row)-1), geometry.NewPoint(i, width-1))
		}
	}
	return nil
}

func checkFrame(rows [][]rune) error {
	height := len(rows)
	if height < 3 {
		return errExpectedCharactersNotFound(bottomLeftCorners)
	}
	width := len(rows[0])
	if width < 3 {
		return errExpectedCharactersNotFound(topRightCorners)
	}

	top, bottom := rows[0], rows[height-1]
	corners := []struct {
		ch       rune
		expected string
	}{
		{top[width-1], topRightCorners},
		{bottom[0], bottomLeftCorners},
		{bottom[width-1], bottomRightCorners},
	}
	for _, corner := range corners {
		if !strings.ContainsRune(corner.expected, corner.ch) {
			return errExpectedCharactersNotFound(corner.expected)
		}
	}

	for j := 1; j < width-1; j++ {
		if !strings.ContainsRune(topEdge, top[j]) {
			return errCharacterIsNotAllowed(top[j], topEdge)
		}
		if !strings.ContainsRune(bottomEdge, bottom[j]) {
			return errCharacterIsNotAllowed(bottom[j], bottomEdge)
		}
	}
	for i := 1; i < height-1; i++ {
		if ch := rows[i][0]; !strings.ContainsRune(leftEdge, ch) {
			return errCharacterIsNotAllowed(ch, leftEdge)
		}
		if ch := rows[i][width-1]; !strings.ContainsRune(rightEdge, ch) {
			return errCharacterIsNotAllowed(ch, rightEdge)
		}
	}
	return nil
}

func classify(rows [][]rune) [][]CellKind {
	kinds := make([][]CellKind, len(rows))
	for i, row := range rows {
		kinds[i] = make([]CellKind, len(row))
		for j, ch := range row {
			switch {
			case isThin(ch):
				kinds[i][j] = CellThin
			case isBorder(ch):
				kinds[i][j] = CellDouble
			case unicode.IsSpace(ch):
				kinds[i][j] = CellBody
			default:
				kinds[i][j] = CellText
			}
		}
	}
	return kinds
}

// Text returns the normalized source text.
func (c *Canvas) Text() string { return c.text }

// InformationItemName returns the line found above the table, or "" when absent.
func (c *Canvas) InformationItemName() string { return c.informationItemName }

// Width returns the number of characters in each row.
func (c *Canvas) Width() int { return len(c.content[0]) }

// Height returns the number of rows.
func (c *Canvas) Height() int { return len(c.content) }

// Bounds returns the rectangle covering the whole canvas.
func (c *Canvas) Bounds() geometry.Rect {
	return geometry.NewRect(0, 0, c.Height(), c.Width())
}

// At returns the character at the given point.
func (c *Canvas) At(p geometry.Point) rune {
	return c.content[p.Row][p.Column]
}

// Kind returns the classification of the character at the given point.
func (c *Canvas) Kind(p geometry.Point) CellKind {
	return c.kinds[p.Row][p.Column]
}

// IsBorder reports whether the character at the given point is part of a border.
func (c *Canvas) IsBorder(p geometry.Point) bool {
	k := c.Kind(p)
	return k == CellThin || k == CellDouble
}

func (c *Canvas) glyph(row, column int) glyph {
	return glyphs[c.content[row][column]]
}

// Row returns the characters of a row as a string.
func (c *Canvas) Row(row int) string {
	return string(c.content[row])
}

// Layer returns a boolean mask of the canvas for the given layer.
func (c *Canvas) Layer(layer Layer) [][]bool {
	mask := make([][]bool, len(c.kinds))
	for i, row := range c.kinds {
		mask[i] = make([]bool, len(row))
		for j, k := range row {
			switch layer {
			case LayerText:
				mask[i][j] = k == CellText
			case LayerThin:
				mask[i][j] = k == CellThin
			case LayerBody:
				mask[i][j] = k == CellBody || k == CellText
			case LayerGrid:
				mask[i][j] = k == CellThin || k == CellDouble
			}
		}
	}
	return mask
}

// DisplayTextLayer writes the characters enclosed in cells.
func (c *Canvas) DisplayTextLayer(w io.Writer) { c.displayLayer(w, LayerText) }

// DisplayThinLayer writes the single-line borders.
func (c *Canvas) DisplayThinLayer(w io.Writer) { c.displayLayer(w, LayerThin) }

// DisplayBodyLayer writes the interior of cells, spaces shown as blocks.
func (c *Canvas) DisplayBodyLayer(w io.Writer) { c.displayLayer(w, LayerBody) }

// DisplayGridLayer writes every border character.
func (c *Canvas) DisplayGridLayer(w io.Writer) { c.displayLayer(w, LayerGrid) }

// DisplayLayer writes the given layer with a title line.
func (c *Canvas) DisplayLayer(w io.Writer, layer Layer) { c.displayLayer(w, layer) }

func (c *Canvas) displayLayer(w io.Writer, layer Layer) {
	mask := c.Layer(layer)
	fmt.Fprintf(w, "%s LAYER\n", layer)
	for i, row := range c.content {
		var b strings.Builder
		for j, ch := range row {
			switch {
			case !mask[i][j]:
				b.WriteRune(' ')
			case ch == ' ':
				b.WriteRune('▒')
			default:
				b.WriteRune(ch)
			}
		}
		fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	}
}

// Plane extracts the regions enclosed by borders.
func (c *Canvas) Plane() (*Plane, error) {
	return newPlane(c)
}
