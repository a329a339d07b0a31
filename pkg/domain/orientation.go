package domain

// DecisionTableOrientation tells how the rules of a decision table are laid out.
type DecisionTableOrientation string

const (
	// OrientationRuleAsRow is a horizontal table: one rule per row.
	OrientationRuleAsRow DecisionTableOrientation = "rule-as-row"
	// OrientationRuleAsColumn is a vertical table: one rule per column.
	OrientationRuleAsColumn DecisionTableOrientation = "rule-as-column"
	// OrientationCrossTable is a two-dimensional cross tabulation.
	OrientationCrossTable DecisionTableOrientation = "cross-table"
)
