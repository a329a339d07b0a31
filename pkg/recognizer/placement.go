package recognizer

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/aretw0/dectab/pkg/domain"
	"github.com/aretw0/dectab/pkg/geometry"
)

// PlacementKind tells where a piece of table metadata was found.
type PlacementKind int

const (
	NotPresent PlacementKind = iota
	TopLeft
	BottomLeft
	LeftBelow
	RightAfter
)

func (k PlacementKind) String() string {
	switch k {
	case NotPresent:
		return "NotPresent"
	case TopLeft:
		return "TopLeft"
	case BottomLeft:
		return "BottomLeft"
	case LeftBelow:
		return "LeftBelow"
	case RightAfter:
		return "RightAfter"
	default:
		return fmt.Sprintf("PlacementKind(%d)", int(k))
	}
}

// HitPolicyPlacement is NotPresent, TopLeft or BottomLeft with the decoded hit policy.
type HitPolicyPlacement struct {
	Kind      PlacementKind
	HitPolicy domain.HitPolicy
}

func (p HitPolicyPlacement) String() string {
	if p.Kind == NotPresent {
		return p.Kind.String()
	}
	return fmt.Sprintf("%s(%s)", p.Kind, p.HitPolicy.Code())
}

// RuleNumbersPlacement is NotPresent, LeftBelow or RightAfter with the number of rules.
type RuleNumbersPlacement struct {
	Kind  PlacementKind
	Count int
}

func (p RuleNumbersPlacement) String() string {
	if p.Kind == NotPresent {
		return p.Kind.String()
	}
	return fmt.Sprintf("%s(%d)", p.Kind, p.Count)
}

// hitPolicyCandidate reports whether a corner text looks like a hit policy code.
func hitPolicyCandidate(text string) bool {
	n := utf8.RuneCountInString(text)
	if n < 1 || n > 2 {
		return false
	}
	for _, ch := range text {
		if !unicode.IsDigit(ch) {
			return true
		}
	}
	return false
}

// RecognizeHitPolicyPlacement inspects the top-left and bottom-left regions.
// Both corners holding a hit policy is an error, except in a plane whose only main
// double crossing is vertical, where the bottom-left corner wins.
func (p *Plane) RecognizeHitPolicyPlacement() (HitPolicyPlacement, error) {
	if p.Rows() == 0 || p.Columns() == 0 {
		return HitPolicyPlacement{}, planeErr(ErrPlaneIsEmpty, "no cells")
	}
	topIdx := p.cells[0][0]
	bottomIdx := p.cells[p.Rows()-1][0]
	topText := p.regions[topIdx].Text
	bottomText := p.regions[bottomIdx].Text

	topHP, topErr := domain.ParseHitPolicy(topText)
	topValid := hitPolicyCandidate(topText) && topErr == nil
	bottomValid := false
	var bottomHP domain.HitPolicy
	if bottomIdx != topIdx {
		var bottomErr error
		bottomHP, bottomErr = domain.ParseHitPolicy(bottomText)
		bottomValid = hitPolicyCandidate(bottomText) && bottomErr == nil
	}

	switch {
	case topValid && bottomValid && p.vertCrossing != nil && p.horzCrossing == nil:
		// One rule per column: the top-left region is the first input expression.
		return HitPolicyPlacement{Kind: BottomLeft, HitPolicy: bottomHP}, nil
	case topValid && bottomValid:
		return HitPolicyPlacement{}, recognizerErr(ErrInvalidHitPolicyPlacement,
			"hit policy found in both top-left %q and bottom-left %q corners", topText, bottomText)
	case topValid:
		return HitPolicyPlacement{Kind: TopLeft, HitPolicy: topHP}, nil
	case bottomValid:
		return HitPolicyPlacement{Kind: BottomLeft, HitPolicy: bottomHP}, nil
	case hitPolicyCandidate(topText):
		return HitPolicyPlacement{}, recognizerErr(ErrInvalidHitPolicyPlacement, "unrecognized hit policy %q", topText)
	case bottomIdx != topIdx && hitPolicyCandidate(bottomText):
		return HitPolicyPlacement{}, recognizerErr(ErrInvalidHitPolicyPlacement, "unrecognized hit policy %q", bottomText)
	default:
		return HitPolicyPlacement{Kind: NotPresent}, nil
	}
}

// RecognizeRuleNumbersPlacement looks for the sequence 1, 2, 3... either in the first
// column below the top-left region or in the last row after the bottom-left region.
// The sequence ends at the first cell that is not a number.
func (p *Plane) RecognizeRuleNumbersPlacement() (RuleNumbersPlacement, error) {
	if p.Rows() == 0 || p.Columns() == 0 {
		return RuleNumbersPlacement{}, planeErr(ErrPlaneIsEmpty, "no cells")
	}

	top := p.span(p.cells[0][0])
	var below []int
	for i := top.Bottom; i < p.Rows(); i++ {
		below = append(below, p.cells[i][0])
	}
	count, err := p.countRuleNumbers(below)
	if err != nil {
		return RuleNumbersPlacement{}, err
	}
	if count > 0 {
		return RuleNumbersPlacement{Kind: LeftBelow, Count: count}, nil
	}

	last := p.Rows() - 1
	bottom := p.span(p.cells[last][0])
	var after []int
	for j := bottom.Right; j < p.Columns(); j++ {
		after = append(after, p.cells[last][j])
	}
	count, err = p.countRuleNumbers(after)
	if err != nil {
		return RuleNumbersPlacement{}, err
	}
	if count > 0 {
		return RuleNumbersPlacement{Kind: RightAfter, Count: count}, nil
	}
	return RuleNumbersPlacement{Kind: NotPresent}, nil
}

// countRuleNumbers walks the distinct regions of a line of cells.
// A sequence only starts with 1; a later number out of sequence is an error.
func (p *Plane) countRuleNumbers(cells []int) (int, error) {
	count := 0
	prev := -1
	for _, idx := range cells {
		if idx == prev {
			continue
		}
		prev = idx
		n, err := strconv.Atoi(p.regions[idx].Text)
		if err != nil {
			break
		}
		if count == 0 && n != 1 {
			break
		}
		if n != count+1 {
			return 0, errInvalidRuleNumber(n)
		}
		count++
	}
	return count, nil
}

// sections splits the logical columns of a horizontal table into inputs, outputs and
// annotations, and returns the number of header rows.
//
// Column groups are separated by double vertical lines. A double line on the left edge
// means there are no inputs; a double line on the right edge after the inputs means there
// are no outputs.
func (p *Plane) sections() (header, inputEnd, outputEnd int, err error) {
	for i := 1; i < p.Rows(); i++ {
		if p.rowLines[i].double {
			header = i
			break
		}
	}
	if header == 0 {
		return 0, 0, 0, planeErr(ErrPlaneNoMainDoubleCrossing, "no double line below the header")
	}

	cols := p.Columns()
	var seps []int
	for j := 0; j <= cols; j++ {
		if p.colLines[j].double {
			seps = append(seps, j)
		}
	}

	switch {
	case len(seps) == 0:
		return header, 0, cols, nil
	case seps[0] == 0:
		inputEnd = 0
	default:
		inputEnd = seps[0]
	}
	seps = seps[1:]
	if n := len(seps); n > 0 && seps[n-1] == cols {
		seps = seps[:n-1]
	}

	switch len(seps) {
	case 0:
		outputEnd = cols
	case 1:
		outputEnd = seps[0]
	default:
		return 0, 0, 0, planeErr(ErrPlaneInvalidOutputClause, "%d double lines between clauses", len(seps)+1)
	}
	return header, inputEnd, outputEnd, nil
}

// HorzInputClauseRect returns the logical rectangle of the input clause headers.
func (p *Plane) HorzInputClauseRect() (geometry.Rect, error) {
	header, inputEnd, _, err := p.sections()
	if err != nil {
		return geometry.Rect{}, err
	}
	return geometry.NewRect(0, 0, header, inputEnd), nil
}

// HorzInputEntriesRect returns the logical rectangle of the input entries.
func (p *Plane) HorzInputEntriesRect() (geometry.Rect, error) {
	header, inputEnd, _, err := p.sections()
	if err != nil {
		return geometry.Rect{}, err
	}
	return geometry.NewRect(header, 0, p.Rows(), inputEnd), nil
}

// HorzOutputClauseRect returns the logical rectangle of the output clause headers.
func (p *Plane) HorzOutputClauseRect() (geometry.Rect, error) {
	header, inputEnd, outputEnd, err := p.sections()
	if err != nil {
		return geometry.Rect{}, err
	}
	if outputEnd < inputEnd {
		return geometry.Rect{}, planeErr(ErrPlaneInvalidOutputClause, "outputs end at %d before inputs at %d", outputEnd, inputEnd)
	}
	return geometry.NewRect(0, inputEnd, header, outputEnd), nil
}

// HorzOutputEntriesRect returns the logical rectangle of the output entries.
func (p *Plane) HorzOutputEntriesRect() (geometry.Rect, error) {
	header, inputEnd, outputEnd, err := p.sections()
	if err != nil {
		return geometry.Rect{}, err
	}
	if outputEnd < inputEnd {
		return geometry.Rect{}, planeErr(ErrPlaneInvalidOutputClause, "outputs end at %d before inputs at %d", outputEnd, inputEnd)
	}
	return geometry.NewRect(header, inputEnd, p.Rows(), outputEnd), nil
}

// HorzAnnotationClausesRect returns the logical rectangle of the annotation headers.
// Its width is zero when the table has no annotations.
func (p *Plane) HorzAnnotationClausesRect() (geometry.Rect, error) {
	header, _, outputEnd, err := p.sections()
	if err != nil {
		return geometry.Rect{}, err
	}
	return geometry.NewRect(0, outputEnd, header, p.Columns()), nil
}

// HorzAnnotationEntriesRect returns the logical rectangle of the annotation entries.
func (p *Plane) HorzAnnotationEntriesRect() (geometry.Rect, error) {
	header, _, outputEnd, err := p.sections()
	if err != nil {
		return geometry.Rect{}, err
	}
	return geometry.NewRect(header, outputEnd, p.Rows(), p.Columns()), nil
}

// RowTexts returns the region texts of each logical row of rect.
func (p *Plane) RowTexts(rect geometry.Rect) ([][]string, error) {
	rows := make([][]string, 0, rect.Height())
	for i := rect.Top; i < rect.Bottom; i++ {
		row := make([]string, 0, rect.Width())
		for j := rect.Left; j < rect.Right; j++ {
			text, err := p.RegionText(i, j)
			if err != nil {
				return nil, err
			}
			row = append(row, text)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
