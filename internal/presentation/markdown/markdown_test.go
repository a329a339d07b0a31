package markdown_test

import (
	"strings"
	"testing"

	"github.com/aretw0/dectab/internal/presentation/markdown"
	"github.com/aretw0/dectab/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name     string
		table    *domain.DecisionTable
		contains []string
		excludes []string
	}{
		{
			name: "single output",
			table: &domain.DecisionTable{
				InformationItemName: "Discount",
				HitPolicy:           domain.HitPolicyUnique,
				Orientation:         domain.OrientationRuleAsRow,
				OutputLabel:         "Discount",
				InputClauses:        []domain.InputClause{{InputExpression: "Customer"}, {InputExpression: "Order"}},
				OutputClauses:       []domain.OutputClause{{}},
				Rules: []domain.Rule{
					{InputEntries: []string{`"a"`, "<10"}, OutputEntries: []string{"0.05"}},
					{InputEntries: []string{`"b"`, ">=10"}, OutputEntries: []string{"0.10"}},
				},
			},
			contains: []string{
				"### Discount\n",
				"Hit policy: **U**, rule-as-row\n",
				"| # | Customer | Order | Discount |\n",
				"| --- | --- | --- | --- |\n",
				"| 2 | \"b\" | >=10 | 0.10 |\n",
			},
			excludes: []string{"Allowed values"},
		},
		{
			name: "compound output with aggregation and annotations",
			table: &domain.DecisionTable{
				HitPolicy:     domain.HitPolicyCollectSum,
				Aggregation:   domain.AggregatorSum,
				Orientation:   domain.OrientationRuleAsColumn,
				OutputLabel:   "Discount",
				InputClauses:  []domain.InputClause{{InputExpression: "Customer", AllowedValues: `"a","b"`}},
				OutputClauses: []domain.OutputClause{{Name: "Rate", AllowedValues: "0..1"}, {Name: "Cap"}},
				Annotations:   []string{"Description"},
				Rules: []domain.Rule{
					{InputEntries: []string{`"a"`}, OutputEntries: []string{"0.05", "10"}, AnnotationEntries: []string{"a|b"}},
				},
			},
			contains: []string{
				"Hit policy: **C+** (SUM), rule-as-column\n",
				"| # | Customer | Discount.Rate | Discount.Cap | Description |\n",
				`| 1 | "a" | 0.05 | 10 | a\|b |`,
				"- Customer: `\"a\",\"b\"`",
				"- Discount.Rate: `0..1`",
			},
			excludes: []string{"###"},
		},
		{
			name: "no inputs and no label",
			table: &domain.DecisionTable{
				HitPolicy:     domain.HitPolicyFirst,
				Orientation:   domain.OrientationRuleAsRow,
				OutputClauses: []domain.OutputClause{{}},
				Rules:         []domain.Rule{{InputEntries: []string{}, OutputEntries: []string{"x"}}},
			},
			contains: []string{"| # | Output |\n", "| 1 | x |\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := markdown.Generate(tt.table)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tt.excludes {
				assert.False(t, strings.Contains(out, unwanted), "unexpected %q in\n%s", unwanted, out)
			}
		})
	}
}
