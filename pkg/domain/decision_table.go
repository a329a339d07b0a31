package domain

import (
	"fmt"
	"slices"
	"time"
)

// InputClause describes one input column of a decision table.
type InputClause struct {
	InputExpression string `json:"input_expression" yaml:"input_expression"`
	AllowedValues   string `json:"allowed_values,omitempty" yaml:"allowed_values,omitempty"`
}

// OutputClause describes one output column of a decision table.
// Name is empty for a single, unnamed output.
type OutputClause struct {
	Name          string `json:"name,omitempty" yaml:"name,omitempty"`
	AllowedValues string `json:"allowed_values,omitempty" yaml:"allowed_values,omitempty"`
}

// Rule is a single row (or column) of entries.
type Rule struct {
	InputEntries      []string `json:"input_entries" yaml:"input_entries"`
	OutputEntries     []string `json:"output_entries" yaml:"output_entries"`
	AnnotationEntries []string `json:"annotation_entries,omitempty" yaml:"annotation_entries,omitempty"`
}

// DecisionTable is the structural model of a recognized decision table.
// Entry texts are kept verbatim; they are interpreted by an expression evaluator.
type DecisionTable struct {
	InformationItemName string                   `json:"information_item_name,omitempty" yaml:"information_item_name,omitempty"`
	HitPolicy           HitPolicy                `json:"hit_policy" yaml:"hit_policy"`
	Aggregation         BuiltinAggregator        `json:"aggregation,omitempty" yaml:"aggregation,omitempty"`
	Orientation         DecisionTableOrientation `json:"orientation" yaml:"orientation"`
	OutputLabel         string                   `json:"output_label,omitempty" yaml:"output_label,omitempty"`
	InputClauses        []InputClause            `json:"input_clauses" yaml:"input_clauses"`
	OutputClauses       []OutputClause           `json:"output_clauses" yaml:"output_clauses"`
	Annotations         []string                 `json:"annotations,omitempty" yaml:"annotations,omitempty"`
	Rules               []Rule                   `json:"rules" yaml:"rules"`
}

// Validate checks that every rule matches the declared clauses.
func (dt *DecisionTable) Validate() error {
	if len(dt.OutputClauses) == 0 {
		return fmt.Errorf("%w: no output clauses", ErrInvalidTable)
	}
	for i, rule := range dt.Rules {
		if len(rule.InputEntries) != len(dt.InputClauses) {
			return fmt.Errorf("%w: rule %d has %d input entries, expected %d",
				ErrInvalidTable, i+1, len(rule.InputEntries), len(dt.InputClauses))
		}
		if len(rule.OutputEntries) != len(dt.OutputClauses) {
			return fmt.Errorf("%w: rule %d has %d output entries, expected %d",
				ErrInvalidTable, i+1, len(rule.OutputEntries), len(dt.OutputClauses))
		}
		if len(rule.AnnotationEntries) != len(dt.Annotations) {
			return fmt.Errorf("%w: rule %d has %d annotation entries, expected %d",
				ErrInvalidTable, i+1, len(rule.AnnotationEntries), len(dt.Annotations))
		}
	}
	return nil
}

// StoredTable is a recognized decision table kept together with its source text.
type StoredTable struct {
	ID        string         `json:"id" yaml:"id"`
	Source    string         `json:"source" yaml:"source"`
	Table     *DecisionTable `json:"table" yaml:"table"`
	CreatedAt time.Time      `json:"created_at" yaml:"created_at"`
}

// Clone returns a deep copy of the table.
func (dt *DecisionTable) Clone() *DecisionTable {
	if dt == nil {
		return nil
	}
	out := *dt
	out.InputClauses = slices.Clone(dt.InputClauses)
	out.OutputClauses = slices.Clone(dt.OutputClauses)
	out.Annotations = slices.Clone(dt.Annotations)
	if dt.Rules != nil {
		out.Rules = make([]Rule, len(dt.Rules))
		for i, r := range dt.Rules {
			out.Rules[i] = Rule{
				InputEntries:      slices.Clone(r.InputEntries),
				OutputEntries:     slices.Clone(r.OutputEntries),
				AnnotationEntries: slices.Clone(r.AnnotationEntries),
			}
		}
	}
	return &out
}

// Clone returns a deep copy of the stored table.
func (st *StoredTable) Clone() *StoredTable {
	if st == nil {
		return nil
	}
	out := *st
	out.Table = st.Table.Clone()
	return &out
}

// Validate checks the fields required to persist the table.
func (st *StoredTable) Validate() error {
	if st == nil || st.Table == nil {
		return fmt.Errorf("%w: table is required", ErrInvalidTable)
	}
	if st.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidTable)
	}
	return nil
}
