package dectab_test

import (
	"context"
	"strings"
	"testing"

	"github.com/aretw0/dectab"
	"github.com/aretw0/dectab/pkg/domain"
	"github.com/aretw0/dectab/pkg/recognizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const discount = `
  Discount

  ┌───┬──────────┬───────╥──────────┐
  │ U │ Customer │ Order ║ Discount │
  ╞═══╪══════════╪═══════╬══════════╡
  │ 1 │ "a"      │ <10   ║ 0.05     │
  ├───┼──────────┼───────╫──────────┤
  │ 2 │ "b"      │ >=10  ║ 0.10     │
  └───┴──────────┴───────╨──────────┘
`

func TestToolkit_Recognize(t *testing.T) {
	var recognized []*domain.RecognitionEvent
	tk := dectab.New(dectab.WithLifecycleHooks(domain.LifecycleHooks{
		OnRecognized: func(_ context.Context, evt *domain.RecognitionEvent) {
			recognized = append(recognized, evt)
		},
	}))

	table, err := tk.Recognize(context.Background(), discount)
	require.NoError(t, err)

	assert.Equal(t, "Discount", table.InformationItemName)
	assert.Equal(t, domain.HitPolicyUnique, table.HitPolicy)
	assert.Equal(t, domain.OrientationRuleAsRow, table.Orientation)
	require.Len(t, table.InputClauses, 2)
	assert.Equal(t, "Order", table.InputClauses[1].InputExpression)
	require.Len(t, table.Rules, 2)
	assert.Equal(t, []string{"0.10"}, table.Rules[1].OutputEntries)

	require.Len(t, recognized, 1)
	assert.Equal(t, domain.EventRecognized, recognized[0].Type)
	assert.Equal(t, 2, recognized[0].RuleCount)
	assert.Equal(t, len(discount), recognized[0].InputSize)
}

func TestToolkit_RecognizeRejected(t *testing.T) {
	var rejected []*domain.RecognitionEvent
	tk := dectab.New(dectab.WithLifecycleHooks(domain.LifecycleHooks{
		OnRejected: func(_ context.Context, evt *domain.RecognitionEvent) {
			rejected = append(rejected, evt)
		},
	}))

	broken := strings.Replace(discount, "║ 0.05     │", "║ 0.05    │", 1)
	_, err := tk.Recognize(context.Background(), broken)
	require.ErrorIs(t, err, recognizer.ErrCanvasRectangleNotClosed)

	require.Len(t, rejected, 1)
	assert.Equal(t, domain.EventRejected, rejected[0].Type)
	assert.ErrorIs(t, rejected[0].Err, recognizer.ErrCanvasRectangleNotClosed)
}

func TestToolkit_MaxInputSize(t *testing.T) {
	tk := dectab.New(dectab.WithMaxInputSize(16))
	assert.Equal(t, 16, tk.MaxInputSize())

	_, err := tk.Recognize(context.Background(), discount)
	assert.ErrorIs(t, err, dectab.ErrInputTooLarge)
}

func TestToolkit_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dectab.New().Recognize(ctx, discount)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestToolkit_Scan(t *testing.T) {
	tk := dectab.New()

	c, err := tk.Scan(context.Background(), discount)
	require.NoError(t, err)
	assert.Equal(t, "Discount", c.InformationItemName())
	assert.Equal(t, 7, c.Height())

	_, err = tk.Scan(context.Background(), "no table here")
	assert.ErrorIs(t, err, recognizer.ErrCanvasExpectedCharactersNotFound)
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, strings.TrimSpace(dectab.Version))
}
