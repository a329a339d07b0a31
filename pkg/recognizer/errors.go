package recognizer

import (
	"errors"
	"fmt"

	"github.com/aretw0/dectab/pkg/geometry"
)

// Canvas errors.
var (
	ErrCanvasRectangleNotClosed         = errors.New("rectangle is not closed")
	ErrCanvasCharacterIsNotAllowed      = errors.New("character is not allowed")
	ErrCanvasExpectedCharactersNotFound = errors.New("expected characters not found")
	ErrCanvasRegionNotFound             = errors.New("region not found")
	ErrCanvasTooManyTextLines           = errors.New("more than one text line above the table")
)

// Plane errors.
var (
	ErrPlaneIsEmpty              = errors.New("plane is empty")
	ErrPlaneRowIsOutOfRange      = errors.New("row is out of range")
	ErrPlaneColumnIsOutOfRange   = errors.New("column is out of range")
	ErrPlaneNoMainDoubleCrossing = errors.New("main double crossing not found")
	ErrPlaneInvalidOutputClause  = errors.New("invalid output clause")
	ErrPlaneInvalidRuleNumber    = errors.New("invalid rule number")
	ErrPlaneCellIsNotRegion      = errors.New("cell is not a region")
)

// Recognizer errors.
var (
	ErrExpectedLeftBelowRuleNumbersPlacement  = errors.New("expected rule numbers placed left below")
	ErrExpectedRightAfterRuleNumbersPlacement = errors.New("expected rule numbers placed right after")
	ErrExpectedTopLeftHitPolicyPlacement      = errors.New("expected hit policy placed top left")
	ErrExpectedBottomLeftHitPolicyPlacement   = errors.New("expected hit policy placed bottom left")
	ErrInvalidHitPolicyPlacement              = errors.New("invalid hit policy placement")
	ErrRecognizingCrossTabNotSupportedYet     = errors.New("recognizing cross tab decision tables is not supported yet")
	ErrTooManyRowsInInputClause               = errors.New("too many rows in input clause")
	ErrNoOutputClause                         = errors.New("no output clause")
	ErrInvalidInputExpressions                = errors.New("invalid input expressions")
	ErrRuleCountMismatch                      = errors.New("rule count does not match the number of rules")
)

// CanvasError is returned when the text cannot be scanned into a closed grid.
type CanvasError struct {
	Err    error
	Detail string
}

func (e *CanvasError) Error() string {
	return formatError("CanvasError", e.Err, e.Detail)
}

func (e *CanvasError) Unwrap() error { return e.Err }

// PlaneError is returned when the grid cannot be turned into regions or queried.
type PlaneError struct {
	Err    error
	Detail string
}

func (e *PlaneError) Error() string {
	return formatError("PlaneError", e.Err, e.Detail)
}

func (e *PlaneError) Unwrap() error { return e.Err }

// RecognizerError is returned when the regions do not form a valid decision table.
type RecognizerError struct {
	Err    error
	Detail string
}

func (e *RecognizerError) Error() string {
	return formatError("RecognizerError", e.Err, e.Detail)
}

func (e *RecognizerError) Unwrap() error { return e.Err }

func formatError(kind string, err error, detail string) string {
	if detail == "" {
		return fmt.Sprintf("%s: %v", kind, err)
	}
	return fmt.Sprintf("%s: %v: %s", kind, err, detail)
}

func canvasErr(err error, format string, args ...any) error {
	return &CanvasError{Err: err, Detail: fmt.Sprintf(format, args...)}
}

func planeErr(err error, format string, args ...any) error {
	return &PlaneError{Err: err, Detail: fmt.Sprintf(format, args...)}
}

func recognizerErr(err error, format string, args ...any) error {
	return &RecognizerError{Err: err, Detail: fmt.Sprintf(format, args...)}
}

func errRectangleNotClosed(start, end geometry.Point) error {
	return canvasErr(ErrCanvasRectangleNotClosed, "from %s to %s", start, end)
}

func errCharacterIsNotAllowed(ch rune, allowed string) error {
	return canvasErr(ErrCanvasCharacterIsNotAllowed, "%q, allowed: %s", ch, allowed)
}

func errExpectedCharactersNotFound(expected string) error {
	return canvasErr(ErrCanvasExpectedCharactersNotFound, "expected one of: %s", expected)
}

func errRegionNotFound(rect geometry.Rect) error {
	return canvasErr(ErrCanvasRegionNotFound, "%s", rect)
}

func errInvalidRuleNumber(n int) error {
	return planeErr(ErrPlaneInvalidRuleNumber, "%d", n)
}
