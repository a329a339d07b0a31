package dectab

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/dectab/internal/logging"
	"github.com/aretw0/dectab/pkg/domain"
	"github.com/aretw0/dectab/pkg/recognizer"
)

// Toolkit is the high-level entry point for the dectab library.
// It wraps the recognizer with input sanitization, logging and lifecycle hooks.
// A Toolkit is immutable after New and safe for concurrent use.
type Toolkit struct {
	hooks        domain.LifecycleHooks
	logger       *slog.Logger
	maxInputSize int
}

// Option defines a functional option for configuring the Toolkit.
type Option func(*Toolkit)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(t *Toolkit) {
		t.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the toolkit.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Toolkit) {
		t.logger = logger
	}
}

// WithMaxInputSize limits the size in bytes of the text accepted by Recognize and Scan.
// Zero or a negative value keeps the default (see DefaultMaxInputSize).
func WithMaxInputSize(size int) Option {
	return func(t *Toolkit) {
		t.maxInputSize = size
	}
}

// New initializes a Toolkit.
func New(opts ...Option) *Toolkit {
	t := &Toolkit{}
	for _, opt := range opts {
		opt(t)
	}
	if t.logger == nil {
		t.logger = logging.NewNop()
	}
	if t.maxInputSize <= 0 {
		t.maxInputSize = getMaxInputSize()
	}
	return t
}

// MaxInputSize returns the effective input size limit in bytes.
func (t *Toolkit) MaxInputSize() int {
	return t.maxInputSize
}

// Recognize decodes the decision table drawn in text.
func (t *Toolkit) Recognize(ctx context.Context, text string) (*domain.DecisionTable, error) {
	r, err := t.Recognizer(ctx, text)
	if err != nil {
		return nil, err
	}
	return r.DecisionTable(), nil
}

// Recognizer runs the recognition and returns every intermediate component.
func (t *Toolkit) Recognizer(ctx context.Context, text string) (*recognizer.Recognizer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()

	clean, err := SanitizeInput(text, t.maxInputSize)
	if err != nil {
		t.reject(ctx, start, len(text), err)
		return nil, err
	}

	r, err := recognizer.Recognize(clean)
	if err != nil {
		t.reject(ctx, start, len(text), err)
		return nil, err
	}

	evt := &domain.RecognitionEvent{
		EventBase:   domain.EventBase{Timestamp: time.Now(), Type: domain.EventRecognized},
		Orientation: r.Orientation,
		RuleCount:   r.RuleCount,
		InputSize:   len(text),
		Duration:    time.Since(start),
	}
	t.logger.Debug("decision table recognized",
		"name", r.InformationItemName,
		"orientation", r.Orientation,
		"hit_policy", r.HitPolicy.Code(),
		"rules", r.RuleCount,
		"duration", evt.Duration)
	if t.hooks.OnRecognized != nil {
		t.hooks.OnRecognized(ctx, evt)
	}
	return r, nil
}

// Scan sanitizes text and returns its canvas without recognizing the table.
func (t *Toolkit) Scan(ctx context.Context, text string) (*recognizer.Canvas, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	clean, err := SanitizeInput(text, t.maxInputSize)
	if err != nil {
		return nil, err
	}
	c, err := recognizer.Scan(clean)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	return c, nil
}

func (t *Toolkit) reject(ctx context.Context, start time.Time, size int, err error) {
	evt := &domain.RecognitionEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventRejected},
		InputSize: size,
		Duration:  time.Since(start),
		Err:       err,
	}
	t.logger.Warn("decision table rejected", "error", err, "size", size)
	if t.hooks.OnRejected != nil {
		t.hooks.OnRejected(ctx, evt)
	}
}
