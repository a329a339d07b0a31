package ports

import (
	"context"

	"github.com/aretw0/dectab/pkg/domain"
	"github.com/aretw0/dectab/pkg/recognizer"
)

// TableRecognizer is what the front ends need from the toolkit.
// It is implemented by *dectab.Toolkit.
type TableRecognizer interface {
	// Recognize decodes the decision table drawn in text.
	Recognize(ctx context.Context, text string) (*domain.DecisionTable, error)

	// Scan returns the canvas of text without recognizing the table.
	Scan(ctx context.Context, text string) (*recognizer.Canvas, error)
}
