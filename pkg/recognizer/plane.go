package recognizer

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/aretw0/dectab/pkg/geometry"
)

// Region is one logical, possibly merged, cell of a decision table.
type Region struct {
	// Rect covers the enclosed characters in canvas coordinates.
	Rect geometry.Rect
	// Text is the trimmed content of the region, lines joined with a space.
	Text string
}

// boundary is a border line between two logical rows or columns.
type boundary struct {
	pos    int  // row or column of the line in the canvas
	double bool // true when any part of the line is drawn with double strokes
}

// Plane is a logical grid of regions derived from a canvas.
//
// Logical rows and columns are defined by the distinct edges of all regions, so a merged
// region occupies several logical cells. RemoveFirstColumn, RemoveLastRow and Pivot change
// the logical grid in place; all other methods are read-only.
type Plane struct {
	canvas   *Canvas
	regions  []Region
	cells    [][]int // logical row -> logical column -> region index
	rowLines []boundary
	colLines []boundary
	pivoted  bool

	horzCrossing *geometry.Point
	vertCrossing *geometry.Point
}

func newPlane(c *Canvas) (*Plane, error) {
	regions, owner, err := extractRegions(c)
	if err != nil {
		return nil, err
	}
	if len(regions) == 0 {
		return nil, planeErr(ErrPlaneIsEmpty, "no regions enclosed by borders")
	}

	rowSet := make(map[int]struct{})
	colSet := make(map[int]struct{})
	for _, r := range regions {
		rowSet[r.Rect.Top-1] = struct{}{}
		rowSet[r.Rect.Bottom] = struct{}{}
		colSet[r.Rect.Left-1] = struct{}{}
		colSet[r.Rect.Right] = struct{}{}
	}
	rowPos := sortedKeys(rowSet)
	colPos := sortedKeys(colSet)

	p := &Plane{canvas: c, regions: regions}
	p.cells = make([][]int, len(rowPos)-1)
	for i := range p.cells {
		p.cells[i] = make([]int, len(colPos)-1)
		for j := range p.cells[i] {
			cell := geometry.NewRect(rowPos[i]+1, colPos[j]+1, rowPos[i+1], colPos[j+1])
			origin := cell.TopLeft()
			idx := owner[origin.Row][origin.Column]
			if idx < 0 {
				return nil, errRegionNotFound(cell)
			}
			p.cells[i][j] = idx
		}
	}

	for _, y := range rowPos {
		p.rowLines = append(p.rowLines, boundary{pos: y, double: c.horizontalLineIsDouble(y)})
	}
	for _, x := range colPos {
		p.colLines = append(p.colLines, boundary{pos: x, double: c.verticalLineIsDouble(x)})
	}

	p.horzCrossing = p.findHorizontalDoubleCrossing()
	p.vertCrossing = p.findVerticalDoubleCrossing()
	return p, nil
}

func sortedKeys(set map[int]struct{}) []int {
	keys := make([]int, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// extractRegions finds every rectangle enclosed by borders.
// The returned owner matrix maps each canvas point to its region index, -1 for borders.
func extractRegions(c *Canvas) ([]Region, [][]int, error) {
	const unvisited = -2
	height, width := c.Height(), c.Width()

	owner := make([][]int, height)
	for i := range owner {
		owner[i] = make([]int, width)
		for j := range owner[i] {
			if c.IsBorder(geometry.NewPoint(i, j)) {
				owner[i][j] = -1
			} else {
				owner[i][j] = unvisited
			}
		}
	}

	var regions []Region
	for top := 1; top < height-1; top++ {
		for left := 1; left < width-1; left++ {
			if owner[top][left] != unvisited {
				continue
			}

			right := left
			for right < width && owner[top][right] != -1 {
				right++
			}
			bottom := top
			for bottom < height && owner[bottom][left] != -1 {
				bottom++
			}
			rect := geometry.NewRect(top, left, bottom, right)

			for i := top; i < bottom; i++ {
				for j := left; j < right; j++ {
					if owner[i][j] != unvisited {
						return nil, nil, planeErr(ErrPlaneCellIsNotRegion, "area at %s is not rectangular", rect)
					}
				}
			}
			for j := left - 1; j <= right; j++ {
				if owner[top-1][j] != -1 || owner[bottom][j] != -1 {
					return nil, nil, planeErr(ErrPlaneCellIsNotRegion, "area at %s is not closed horizontally", rect)
				}
			}
			for i := top; i < bottom; i++ {
				if owner[i][left-1] != -1 || owner[i][right] != -1 {
					return nil, nil, planeErr(ErrPlaneCellIsNotRegion, "area at %s is not closed vertically", rect)
				}
			}

			idx := len(regions)
			var lines []string
			for i := top; i < bottom; i++ {
				if line := strings.TrimSpace(string(c.content[i][left:right])); line != "" {
					lines = append(lines, line)
				}
				for j := left; j < right; j++ {
					owner[i][j] = idx
				}
			}
			regions = append(regions, Region{Rect: rect, Text: strings.Join(lines, " ")})
		}
	}
	return regions, owner, nil
}

func (c *Canvas) horizontalLineIsDouble(row int) bool {
	for j := range c.content[row] {
		if g, ok := glyphs[c.content[row][j]]; ok && g.horizontal() && g.horizontalDouble() {
			return true
		}
	}
	return false
}

func (c *Canvas) verticalLineIsDouble(column int) bool {
	for i := range c.content {
		if g, ok := glyphs[c.content[i][column]]; ok && g.vertical() && g.verticalDouble() {
			return true
		}
	}
	return false
}

// findHorizontalDoubleCrossing looks at the bottom-right corner of the top-left region.
// It is a crossing when a double horizontal line runs from the left frame to that corner.
func (p *Plane) findHorizontalDoubleCrossing() *geometry.Point {
	c := p.canvas
	corner := p.regions[p.cells[0][0]].Rect.BottomRight()
	y, x := corner.Row, corner.Column
	if y >= c.Height()-1 || x >= c.Width()-1 {
		return nil
	}
	if c.glyph(y, 0).right != double {
		return nil
	}
	for j := 1; j < x; j++ {
		if !c.glyph(y, j).horizontalDouble() {
			return nil
		}
	}
	g := c.glyph(y, x)
	if !g.crossing() || !g.horizontalDouble() {
		return nil
	}
	pt := geometry.NewPoint(y, x)
	return &pt
}

// findVerticalDoubleCrossing looks at the top-right corner of the bottom-left region.
// It is a crossing when a double vertical line runs from that corner to the bottom frame.
func (p *Plane) findVerticalDoubleCrossing() *geometry.Point {
	c := p.canvas
	r := p.regions[p.cells[len(p.cells)-1][0]].Rect
	y, x := r.Top-1, r.Right
	if y <= 0 || x >= c.Width()-1 {
		return nil
	}
	if c.glyph(c.Height()-1, x).up != double {
		return nil
	}
	for i := y + 1; i < c.Height()-1; i++ {
		if !c.glyph(i, x).verticalDouble() {
			return nil
		}
	}
	g := c.glyph(y, x)
	if !g.crossing() || !g.verticalDouble() {
		return nil
	}
	pt := geometry.NewPoint(y, x)
	return &pt
}

// Canvas returns the canvas the plane was built from.
func (p *Plane) Canvas() *Canvas { return p.canvas }

// Rows returns the number of logical rows.
func (p *Plane) Rows() int { return len(p.cells) }

// Columns returns the number of logical columns.
func (p *Plane) Columns() int {
	if len(p.cells) == 0 {
		return 0
	}
	return len(p.cells[0])
}

// Regions returns the regions in the order they were found.
func (p *Plane) Regions() []Region {
	out := make([]Region, len(p.regions))
	copy(out, p.regions)
	return out
}

// Pivoted reports whether Pivot has been applied.
func (p *Plane) Pivoted() bool { return p.pivoted }

// HorizontalDoubleCrossing returns the canvas point where the double line under the
// top-left region crosses the vertical line on its right.
func (p *Plane) HorizontalDoubleCrossing() (geometry.Point, bool) {
	if p.horzCrossing == nil {
		return geometry.Point{}, false
	}
	return *p.horzCrossing, true
}

// VerticalDoubleCrossing returns the canvas point where the double line right of the
// bottom-left region crosses the horizontal line above it.
func (p *Plane) VerticalDoubleCrossing() (geometry.Point, bool) {
	if p.vertCrossing == nil {
		return geometry.Point{}, false
	}
	return *p.vertCrossing, true
}

func (p *Plane) checkCell(row, col int) error {
	if row < 0 || row >= p.Rows() {
		return planeErr(ErrPlaneRowIsOutOfRange, "row %d, rows %d", row, p.Rows())
	}
	if col < 0 || col >= p.Columns() {
		return planeErr(ErrPlaneColumnIsOutOfRange, "column %d, columns %d", col, p.Columns())
	}
	return nil
}

// RegionText returns the text of the region covering the logical cell.
func (p *Plane) RegionText(row, col int) (string, error) {
	if err := p.checkCell(row, col); err != nil {
		return "", err
	}
	return p.regions[p.cells[row][col]].Text, nil
}

// span returns the logical rectangle occupied by a region.
func (p *Plane) span(idx int) geometry.Rect {
	r := geometry.NewRect(-1, -1, -1, -1)
	for i, row := range p.cells {
		for j, v := range row {
			if v != idx {
				continue
			}
			if r.Top < 0 {
				r = geometry.NewRect(i, j, i+1, j+1)
				continue
			}
			r = r.Union(geometry.NewRect(i, j, i+1, j+1))
		}
	}
	return r
}

func (p *Plane) inBounds(rect geometry.Rect) bool {
	return rect.IsValid() && rect.Bottom <= p.Rows() && rect.Right <= p.Columns()
}

// EqualRegionsInColumns reports whether every column of rect is covered by a single region.
func (p *Plane) EqualRegionsInColumns(rect geometry.Rect) bool {
	if !p.inBounds(rect) {
		return false
	}
	for j := rect.Left; j < rect.Right; j++ {
		for i := rect.Top + 1; i < rect.Bottom; i++ {
			if p.cells[i][j] != p.cells[rect.Top][j] {
				return false
			}
		}
	}
	return true
}

// UniqueRegionsInColumns reports whether every row of rect holds a different region
// than the other rows, column by column.
func (p *Plane) UniqueRegionsInColumns(rect geometry.Rect) bool {
	if !p.inBounds(rect) {
		return false
	}
	for j := rect.Left; j < rect.Right; j++ {
		seen := make(map[int]struct{}, rect.Height())
		for i := rect.Top; i < rect.Bottom; i++ {
			if _, dup := seen[p.cells[i][j]]; dup {
				return false
			}
			seen[p.cells[i][j]] = struct{}{}
		}
	}
	return true
}

// EqualRegions reports whether the whole rect is covered by a single region.
func (p *Plane) EqualRegions(rect geometry.Rect) bool {
	if !p.inBounds(rect) || rect.IsEmpty() {
		return false
	}
	first := p.cells[rect.Top][rect.Left]
	for i := rect.Top; i < rect.Bottom; i++ {
		for j := rect.Left; j < rect.Right; j++ {
			if p.cells[i][j] != first {
				return false
			}
		}
	}
	return true
}

// RemoveFirstColumn drops logical column 0.
func (p *Plane) RemoveFirstColumn() {
	if p.Columns() == 0 {
		return
	}
	for i := range p.cells {
		p.cells[i] = p.cells[i][1:]
	}
	p.colLines = p.colLines[1:]
}

// RemoveLastRow drops the last logical row.
func (p *Plane) RemoveLastRow() {
	if p.Rows() == 0 {
		return
	}
	p.cells = p.cells[:len(p.cells)-1]
	p.rowLines = p.rowLines[:len(p.rowLines)-1]
}

// Pivot transposes logical rows and columns.
func (p *Plane) Pivot() {
	rows, cols := p.Rows(), p.Columns()
	cells := make([][]int, cols)
	for j := range cells {
		cells[j] = make([]int, rows)
		for i := range rows {
			cells[j][i] = p.cells[i][j]
		}
	}
	p.cells = cells
	p.rowLines, p.colLines = p.colLines, p.rowLines
	p.pivoted = !p.pivoted
}

// String renders the logical grid, one line per logical row.
func (p *Plane) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "PLANE %d x %d\n", p.Rows(), p.Columns())
	tw := tabwriter.NewWriter(&b, 0, 0, 1, ' ', tabwriter.Debug)
	for _, row := range p.cells {
		for _, idx := range row {
			text := p.regions[idx].Text
			if text == "" {
				text = "."
			}
			fmt.Fprintf(tw, " %s\t", text)
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
	return b.String()
}
