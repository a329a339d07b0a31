package geometry

import "fmt"

// Point is a grid coordinate.
type Point struct {
	Row    int
	Column int
}

// NewPoint creates a point from a row and a column.
func NewPoint(row, column int) Point {
	return Point{Row: row, Column: column}
}

// Less reports whether p precedes other in row-major order.
func (p Point) Less(other Point) bool {
	if p.Row != other.Row {
		return p.Row < other.Row
	}
	return p.Column < other.Column
}

// Add returns the point shifted by the given offsets.
func (p Point) Add(rows, columns int) Point {
	return Point{Row: p.Row + rows, Column: p.Column + columns}
}

// Transpose swaps the row and the column.
func (p Point) Transpose() Point {
	return Point{Row: p.Column, Column: p.Row}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Column)
}
