package recognizer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/dectab/pkg/domain"
	"github.com/aretw0/dectab/pkg/geometry"
)

// Recognizer holds every component of a decision table recognized from text.
// It is fully populated by Recognize and read-only afterwards.
type Recognizer struct {
	Canvas *Canvas
	Plane  *Plane

	InformationItemName  string
	HitPolicyPlacement   HitPolicyPlacement
	HitPolicy            domain.HitPolicy
	RuleNumbersPlacement RuleNumbersPlacement
	Orientation          domain.DecisionTableOrientation

	InputClauseCount int
	InputExpressions []string
	// InputValues is nil when the table has no allowed values row for inputs.
	InputValues  []string
	InputEntries [][]string

	OutputClauseCount int
	// OutputLabel is empty when the table has no output label.
	OutputLabel      string
	OutputComponents []string
	// OutputValues is nil when the table has no allowed values row for outputs.
	OutputValues  []string
	OutputEntries [][]string

	AnnotationClauseCount int
	Annotations           []string
	AnnotationEntries     [][]string

	RuleCount int
}

// Recognize scans the text and decodes the decision table drawn in it.
func Recognize(text string) (*Recognizer, error) {
	canvas, err := Scan(text)
	if err != nil {
		return nil, err
	}
	plane, err := canvas.Plane()
	if err != nil {
		return nil, err
	}

	r := &Recognizer{
		Canvas:              canvas,
		Plane:               plane,
		InformationItemName: canvas.InformationItemName(),
	}
	if err := r.recognizeOrientation(); err != nil {
		return nil, err
	}

	switch r.Orientation {
	case domain.OrientationRuleAsRow:
		plane.RemoveFirstColumn()
	case domain.OrientationRuleAsColumn:
		plane.RemoveLastRow()
		plane.Pivot()
	case domain.OrientationCrossTable:
		return nil, recognizerErr(ErrRecognizingCrossTabNotSupportedYet, "")
	}

	if err := r.recognizeHorizontalTable(); err != nil {
		return nil, err
	}
	if traceEnabled {
		r.Trace(os.Stdout)
	}
	return r, nil
}

func (r *Recognizer) recognizeOrientation() error {
	hitPolicy, err := r.Plane.RecognizeHitPolicyPlacement()
	if err != nil {
		return err
	}
	ruleNumbers, err := r.Plane.RecognizeRuleNumbersPlacement()
	if err != nil {
		return err
	}
	r.HitPolicyPlacement = hitPolicy
	r.RuleNumbersPlacement = ruleNumbers

	_, horizontal := r.Plane.HorizontalDoubleCrossing()
	_, vertical := r.Plane.VerticalDoubleCrossing()

	switch {
	case horizontal && (!vertical || hitPolicy.Kind != BottomLeft):
		if err := expectRuleAsRow(hitPolicy, ruleNumbers); err != nil {
			return err
		}
		r.Orientation = domain.OrientationRuleAsRow
	case vertical:
		if err := expectRuleAsColumn(hitPolicy, ruleNumbers); err != nil {
			return err
		}
		r.Orientation = domain.OrientationRuleAsColumn
	default:
		switch hitPolicy.Kind {
		case TopLeft:
			if ruleNumbers.Kind != LeftBelow {
				return recognizerErr(ErrExpectedLeftBelowRuleNumbersPlacement, "found %s", ruleNumbers)
			}
			r.Orientation = domain.OrientationRuleAsRow
		case BottomLeft:
			if ruleNumbers.Kind != RightAfter {
				return recognizerErr(ErrExpectedRightAfterRuleNumbersPlacement, "found %s", ruleNumbers)
			}
			r.Orientation = domain.OrientationRuleAsColumn
		default:
			switch ruleNumbers.Kind {
			case LeftBelow:
				return recognizerErr(ErrExpectedTopLeftHitPolicyPlacement, "found %s", hitPolicy)
			case RightAfter:
				return recognizerErr(ErrExpectedBottomLeftHitPolicyPlacement, "found %s", hitPolicy)
			}
			r.Orientation = domain.OrientationCrossTable
		}
	}

	r.HitPolicy = hitPolicy.HitPolicy
	r.RuleCount = ruleNumbers.Count
	return nil
}

func expectRuleAsRow(hitPolicy HitPolicyPlacement, ruleNumbers RuleNumbersPlacement) error {
	if hitPolicy.Kind != TopLeft {
		return recognizerErr(ErrExpectedTopLeftHitPolicyPlacement, "found %s", hitPolicy)
	}
	if ruleNumbers.Kind != LeftBelow {
		return recognizerErr(ErrExpectedLeftBelowRuleNumbersPlacement, "found %s", ruleNumbers)
	}
	return nil
}

func expectRuleAsColumn(hitPolicy HitPolicyPlacement, ruleNumbers RuleNumbersPlacement) error {
	if hitPolicy.Kind != BottomLeft {
		return recognizerErr(ErrExpectedBottomLeftHitPolicyPlacement, "found %s", hitPolicy)
	}
	if ruleNumbers.Kind != RightAfter {
		return recognizerErr(ErrExpectedRightAfterRuleNumbersPlacement, "found %s", ruleNumbers)
	}
	return nil
}

// recognizeHorizontalTable extracts clauses and entries from a plane laid out with one
// rule per row and the rule numbers column already removed.
func (r *Recognizer) recognizeHorizontalTable() error {
	if err := r.recognizeInputs(); err != nil {
		return err
	}
	if err := r.recognizeOutputs(); err != nil {
		return err
	}
	return r.recognizeAnnotations()
}

func (r *Recognizer) recognizeInputs() error {
	p := r.Plane
	rect, err := p.HorzInputClauseRect()
	if err != nil {
		return err
	}
	r.InputClauseCount = rect.Width()

	if rect.Width() > 0 {
		hasValues := false
		switch rect.Height() {
		case 1:
		case 2:
			if hasValues, err = r.valuesPresent(rect); err != nil {
				return err
			}
		case 3:
			top := geometry.NewRect(rect.Top, rect.Left, rect.Top+2, rect.Right)
			if !p.EqualRegionsInColumns(top) {
				return recognizerErr(ErrInvalidInputExpressions, "input expressions must span the first two header rows")
			}
			if hasValues, err = r.valuesPresent(rect); err != nil {
				return err
			}
		default:
			return recognizerErr(ErrTooManyRowsInInputClause, "%d rows", rect.Height())
		}

		if r.InputExpressions, err = r.rowText(rect.Top, rect); err != nil {
			return err
		}
		if hasValues {
			if r.InputValues, err = r.rowText(rect.Bottom-1, rect); err != nil {
				return err
			}
		}
	}

	entries, err := p.HorzInputEntriesRect()
	if err != nil {
		return err
	}
	if err := r.checkRuleCount(entries); err != nil {
		return err
	}
	r.InputEntries, err = p.RowTexts(entries)
	return err
}

// valuesPresent tells whether the last header row holds allowed values.
// Either every column has its own values region, or none does.
func (r *Recognizer) valuesPresent(rect geometry.Rect) (bool, error) {
	p := r.Plane
	if p.EqualRegionsInColumns(rect) {
		return false, nil
	}
	last := geometry.NewRect(rect.Bottom-2, rect.Left, rect.Bottom, rect.Right)
	if p.UniqueRegionsInColumns(last) {
		return true, nil
	}
	return false, recognizerErr(ErrInvalidInputExpressions, "allowed values must be present in every column or in none")
}

func (r *Recognizer) recognizeOutputs() error {
	p := r.Plane
	rect, err := p.HorzOutputClauseRect()
	if err != nil {
		return err
	}
	width, height := rect.Width(), rect.Height()
	if width == 0 {
		return recognizerErr(ErrNoOutputClause, "")
	}
	r.OutputClauseCount = width

	if height > 3 {
		return recognizerErr(ErrTooManyRowsInInputClause, "%d rows in output clause", height)
	}

	row := func(i int) geometry.Rect {
		return geometry.NewRect(i, rect.Left, i+1, rect.Right)
	}
	rows := func(from, to int) geometry.Rect {
		return geometry.NewRect(from, rect.Left, to, rect.Right)
	}

	labelRows := 0
	componentRows := 0
	hasValues := false

	switch {
	case width == 1:
		// A single output: a label, optionally followed by its allowed values.
		labelRows = 1
		switch height {
		case 2:
			hasValues = !p.EqualRegions(rect)
		case 3:
			if !p.EqualRegions(rows(0, 2)) {
				return planeErr(ErrPlaneInvalidOutputClause, "output label must span the first two header rows")
			}
			hasValues = !p.EqualRegions(rect)
		}
	case height == 1:
		componentRows = 1
	case height == 2:
		switch {
		case p.EqualRegions(rect):
			return planeErr(ErrPlaneInvalidOutputClause, "output header is a single region")
		case p.EqualRegions(row(0)):
			labelRows, componentRows = 1, 1
		case p.EqualRegionsInColumns(rect):
			componentRows = 1
		case p.UniqueRegionsInColumns(rect):
			componentRows, hasValues = 1, true
		default:
			return planeErr(ErrPlaneInvalidOutputClause, "mixed component and value regions")
		}
	case height == 3:
		if !p.EqualRegions(row(0)) {
			return planeErr(ErrPlaneInvalidOutputClause, "first header row must hold the output label")
		}
		labelRows = 1
		rest := rows(1, 3)
		switch {
		case p.EqualRegionsInColumns(rest):
			componentRows = 1
		case p.UniqueRegionsInColumns(rest):
			componentRows, hasValues = 1, true
		default:
			return planeErr(ErrPlaneInvalidOutputClause, "mixed component and value regions")
		}
	}

	if labelRows > 0 {
		if r.OutputLabel, err = p.RegionText(rect.Top, rect.Left); err != nil {
			return err
		}
	}
	if componentRows > 0 {
		if r.OutputComponents, err = r.rowText(rect.Top+labelRows, rect); err != nil {
			return err
		}
	}
	if hasValues {
		if r.OutputValues, err = r.rowText(rect.Bottom-1, rect); err != nil {
			return err
		}
	}

	entries, err := p.HorzOutputEntriesRect()
	if err != nil {
		return err
	}
	if err := r.checkRuleCount(entries); err != nil {
		return err
	}
	r.OutputEntries, err = p.RowTexts(entries)
	return err
}

func (r *Recognizer) recognizeAnnotations() error {
	p := r.Plane
	rect, err := p.HorzAnnotationClausesRect()
	if err != nil {
		return err
	}
	r.AnnotationClauseCount = rect.Width()
	if rect.Width() == 0 {
		return nil
	}
	if r.Annotations, err = r.rowText(rect.Top, rect); err != nil {
		return err
	}

	entries, err := p.HorzAnnotationEntriesRect()
	if err != nil {
		return err
	}
	r.AnnotationEntries, err = p.RowTexts(entries)
	return err
}

func (r *Recognizer) rowText(row int, rect geometry.Rect) ([]string, error) {
	texts, err := r.Plane.RowTexts(geometry.NewRect(row, rect.Left, row+1, rect.Right))
	if err != nil {
		return nil, err
	}
	return texts[0], nil
}

func (r *Recognizer) checkRuleCount(entries geometry.Rect) error {
	if entries.Height() != r.RuleCount {
		return recognizerErr(ErrRuleCountMismatch, "rule numbers count %d, entry rows %d", r.RuleCount, entries.Height())
	}
	return nil
}

// Trace writes the recognized components for diagnostics.
func (r *Recognizer) Trace(w io.Writer) {
	fmt.Fprintln(w, "RECOGNIZER")
	fmt.Fprintf(w, "  information item name: %q\n", r.InformationItemName)
	fmt.Fprintf(w, "  hit policy placement: %s\n", r.HitPolicyPlacement)
	fmt.Fprintf(w, "  hit policy: %s\n", r.HitPolicy)
	fmt.Fprintf(w, "  rule numbers placement: %s\n", r.RuleNumbersPlacement)
	fmt.Fprintf(w, "  orientation: %s\n", r.Orientation)
	fmt.Fprintf(w, "  input clauses: %d\n", r.InputClauseCount)
	fmt.Fprintf(w, "    expressions: %s\n", quoteAll(r.InputExpressions))
	fmt.Fprintf(w, "    values: %s\n", quoteAll(r.InputValues))
	fmt.Fprintf(w, "  output clauses: %d\n", r.OutputClauseCount)
	fmt.Fprintf(w, "    label: %q\n", r.OutputLabel)
	fmt.Fprintf(w, "    components: %s\n", quoteAll(r.OutputComponents))
	fmt.Fprintf(w, "    values: %s\n", quoteAll(r.OutputValues))
	fmt.Fprintf(w, "  annotation clauses: %d\n", r.AnnotationClauseCount)
	fmt.Fprintf(w, "    annotations: %s\n", quoteAll(r.Annotations))
	fmt.Fprintf(w, "  rules: %d\n", r.RuleCount)
	for i := 0; i < r.RuleCount; i++ {
		fmt.Fprintf(w, "    %d: %s | %s | %s\n", i+1,
			quoteAll(entryRow(r.InputEntries, i)),
			quoteAll(entryRow(r.OutputEntries, i)),
			quoteAll(entryRow(r.AnnotationEntries, i)))
	}
	fmt.Fprint(w, r.Plane)
}

func entryRow(entries [][]string, i int) []string {
	if i < len(entries) {
		return entries[i]
	}
	return nil
}

func quoteAll(texts []string) string {
	quoted := make([]string, len(texts))
	for i, t := range texts {
		quoted[i] = fmt.Sprintf("%q", t)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
