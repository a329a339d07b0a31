package recognizer

import (
	"testing"

	"github.com/aretw0/dectab/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPlane(t *testing.T, text string) *Plane {
	t.Helper()
	c, err := Scan(text)
	require.NoError(t, err)
	p, err := c.Plane()
	require.NoError(t, err)
	return p
}

func TestPlane_LogicalGrid(t *testing.T) {
	p := mustPlane(t, horizontalDiscount)

	assert.Equal(t, 3, p.Rows())
	assert.Equal(t, 4, p.Columns())
	assert.Len(t, p.Regions(), 12)

	cases := []struct {
		row, col int
		want     string
	}{
		{0, 0, "U"},
		{0, 1, "Customer"},
		{0, 3, "Discount"},
		{1, 1, `"a"`},
		{2, 2, ">=10"},
		{2, 3, "0.10"},
	}
	for _, tc := range cases {
		text, err := p.RegionText(tc.row, tc.col)
		require.NoError(t, err)
		assert.Equal(t, tc.want, text)
	}
}

func TestPlane_RegionTextOutOfRange(t *testing.T) {
	p := mustPlane(t, horizontalDiscount)

	_, err := p.RegionText(3, 0)
	assert.ErrorIs(t, err, ErrPlaneRowIsOutOfRange)

	_, err = p.RegionText(0, -1)
	assert.ErrorIs(t, err, ErrPlaneColumnIsOutOfRange)

	var planeErr *PlaneError
	assert.ErrorAs(t, err, &planeErr)
}

func TestPlane_MergedRegions(t *testing.T) {
	p := mustPlane(t, horizontalFull)

	assert.Equal(t, 5, p.Rows())
	assert.Equal(t, 6, p.Columns())

	// Discount spans the Rate and Cap columns.
	assert.True(t, p.EqualRegions(geometry.NewRect(0, 3, 1, 5)))
	assert.False(t, p.EqualRegions(geometry.NewRect(1, 3, 2, 5)))
	assert.False(t, p.EqualRegions(geometry.NewRect(0, 3, 0, 5)), "empty rect")

	// Customer and Order span the first two header rows, values follow.
	assert.True(t, p.EqualRegionsInColumns(geometry.NewRect(0, 1, 2, 3)))
	assert.False(t, p.EqualRegionsInColumns(geometry.NewRect(0, 1, 3, 3)))
	assert.True(t, p.UniqueRegionsInColumns(geometry.NewRect(1, 1, 3, 3)))
	assert.False(t, p.UniqueRegionsInColumns(geometry.NewRect(0, 1, 3, 3)))
	assert.False(t, p.EqualRegionsInColumns(geometry.NewRect(0, 0, 9, 1)), "out of bounds")

	text, err := p.RegionText(4, 5)
	require.NoError(t, err)
	assert.Equal(t, "large order over ten", text)

	text, err = p.RegionText(2, 0)
	require.NoError(t, err)
	assert.Equal(t, "C+", text)
}

func TestPlane_DoubleCrossings(t *testing.T) {
	t.Run("horizontal", func(t *testing.T) {
		p := mustPlane(t, horizontalDiscount)
		pt, ok := p.HorizontalDoubleCrossing()
		require.True(t, ok)
		assert.Equal(t, geometry.NewPoint(2, 4), pt)
		_, ok = p.VerticalDoubleCrossing()
		assert.False(t, ok)
	})

	t.Run("vertical", func(t *testing.T) {
		p := mustPlane(t, verticalDiscount)
		pt, ok := p.VerticalDoubleCrossing()
		require.True(t, ok)
		assert.Equal(t, geometry.NewPoint(6, 11), pt)
		_, ok = p.HorizontalDoubleCrossing()
		assert.False(t, ok)
	})

	t.Run("both without inputs", func(t *testing.T) {
		p := mustPlane(t, horizontalNoInputs)
		_, ok := p.HorizontalDoubleCrossing()
		assert.True(t, ok)
		_, ok = p.VerticalDoubleCrossing()
		assert.True(t, ok)
	})

	t.Run("none", func(t *testing.T) {
		p := mustPlane(t, crossTable)
		_, ok := p.HorizontalDoubleCrossing()
		assert.False(t, ok)
		_, ok = p.VerticalDoubleCrossing()
		assert.False(t, ok)
	})
}

func TestPlane_PivotVerticalTable(t *testing.T) {
	p := mustPlane(t, verticalDiscount)
	require.Equal(t, 4, p.Rows())
	require.Equal(t, 3, p.Columns())

	p.RemoveLastRow()
	p.Pivot()
	assert.True(t, p.Pivoted())
	assert.Equal(t, 3, p.Rows())
	assert.Equal(t, 3, p.Columns())

	rows, err := p.RowTexts(geometry.NewRect(0, 0, 3, 3))
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Customer", "Order", "Discount"},
		{`"a"`, "<10", "0.05"},
		{`"b"`, ">=10", "0.10"},
	}, rows)

	p.Pivot()
	assert.False(t, p.Pivoted())
	text, err := p.RegionText(0, 1)
	require.NoError(t, err)
	assert.Equal(t, `"a"`, text)
}

func TestPlane_Sections(t *testing.T) {
	p := mustPlane(t, horizontalFull)
	p.RemoveFirstColumn()

	rect, err := p.HorzInputClauseRect()
	require.NoError(t, err)
	assert.Equal(t, geometry.NewRect(0, 0, 3, 2), rect)

	rect, err = p.HorzInputEntriesRect()
	require.NoError(t, err)
	assert.Equal(t, geometry.NewRect(3, 0, 5, 2), rect)

	rect, err = p.HorzOutputClauseRect()
	require.NoError(t, err)
	assert.Equal(t, geometry.NewRect(0, 2, 3, 4), rect)

	rect, err = p.HorzOutputEntriesRect()
	require.NoError(t, err)
	assert.Equal(t, geometry.NewRect(3, 2, 5, 4), rect)

	rect, err = p.HorzAnnotationClausesRect()
	require.NoError(t, err)
	assert.Equal(t, geometry.NewRect(0, 4, 3, 5), rect)

	rect, err = p.HorzAnnotationEntriesRect()
	require.NoError(t, err)
	assert.Equal(t, geometry.NewRect(3, 4, 5, 5), rect)
}

func TestPlane_SectionsWithoutHeaderLine(t *testing.T) {
	p := mustPlane(t, noHeaderLine)
	_, err := p.HorzInputClauseRect()
	assert.ErrorIs(t, err, ErrPlaneNoMainDoubleCrossing)
}

func TestPlane_PlacementRecognition(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		hitPolicy   string
		ruleNumbers string
	}{
		{"horizontal", horizontalDiscount, "TopLeft(U)", "LeftBelow(2)"},
		{"vertical", verticalDiscount, "BottomLeft(U)", "RightAfter(2)"},
		{"collect sum", horizontalFull, "TopLeft(C+)", "LeftBelow(2)"},
		{"cross table", crossTable, "NotPresent", "NotPresent"},
		{"missing hit policy", missingHitPolicy, "NotPresent", "LeftBelow(2)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustPlane(t, tt.text)

			hp, err := p.RecognizeHitPolicyPlacement()
			require.NoError(t, err)
			assert.Equal(t, tt.hitPolicy, hp.String())

			rn, err := p.RecognizeRuleNumbersPlacement()
			require.NoError(t, err)
			assert.Equal(t, tt.ruleNumbers, rn.String())
		})
	}
}

func TestPlane_InvalidRuleNumber(t *testing.T) {
	p := mustPlane(t, horizontalRuleNumberGap)
	_, err := p.RecognizeRuleNumbersPlacement()
	require.ErrorIs(t, err, ErrPlaneInvalidRuleNumber)

	var planeErr *PlaneError
	require.ErrorAs(t, err, &planeErr)
	assert.Equal(t, "4", planeErr.Detail)
}

func TestPlane_CellIsNotRegion(t *testing.T) {
	text := "┌───┬───┐\n" +
		"│   │   │\n" +
		"│   └───┤\n" +
		"│       │\n" +
		"└───────┘"
	c, err := Scan(text)
	require.NoError(t, err)

	_, err = c.Plane()
	assert.ErrorIs(t, err, ErrPlaneCellIsNotRegion)
}

func TestPlane_String(t *testing.T) {
	p := mustPlane(t, horizontalNoInputs)
	out := p.String()
	assert.Contains(t, out, "PLANE 3 x 2")
	assert.Contains(t, out, "Discount")
	assert.Contains(t, out, "0.10")
}

func TestPlane_RegionNotFound(t *testing.T) {
	c, err := Scan(doubledBorderLine)
	require.NoError(t, err)

	_, err = c.Plane()
	require.ErrorIs(t, err, ErrCanvasRegionNotFound)
	var canvasErr *CanvasError
	assert.ErrorAs(t, err, &canvasErr)
}

func TestPlane_Empty(t *testing.T) {
	c, err := Scan(bordersOnly)
	require.NoError(t, err)

	_, err = c.Plane()
	require.ErrorIs(t, err, ErrPlaneIsEmpty)
	var planeErr *PlaneError
	assert.ErrorAs(t, err, &planeErr)
}
