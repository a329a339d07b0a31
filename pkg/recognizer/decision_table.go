package recognizer

import "github.com/aretw0/dectab/pkg/domain"

// DecisionTable assembles the recognized components into a domain.DecisionTable.
func (r *Recognizer) DecisionTable() *domain.DecisionTable {
	dt := &domain.DecisionTable{
		InformationItemName: r.InformationItemName,
		HitPolicy:           r.HitPolicy,
		Orientation:         r.Orientation,
		OutputLabel:         r.OutputLabel,
		InputClauses:        make([]domain.InputClause, r.InputClauseCount),
		OutputClauses:       make([]domain.OutputClause, r.OutputClauseCount),
		Rules:               make([]domain.Rule, r.RuleCount),
	}
	if agg, ok := r.HitPolicy.Aggregator(); ok {
		dt.Aggregation = agg
	}

	for i := range dt.InputClauses {
		dt.InputClauses[i].InputExpression = r.InputExpressions[i]
		if r.InputValues != nil {
			dt.InputClauses[i].AllowedValues = r.InputValues[i]
		}
	}
	for i := range dt.OutputClauses {
		if r.OutputComponents != nil {
			dt.OutputClauses[i].Name = r.OutputComponents[i]
		}
		if r.OutputValues != nil {
			dt.OutputClauses[i].AllowedValues = r.OutputValues[i]
		}
	}
	if r.AnnotationClauseCount > 0 {
		dt.Annotations = append([]string(nil), r.Annotations...)
	}

	for i := range dt.Rules {
		rule := &dt.Rules[i]
		rule.InputEntries = cloneRow(r.InputEntries, i)
		rule.OutputEntries = cloneRow(r.OutputEntries, i)
		if r.AnnotationClauseCount > 0 {
			rule.AnnotationEntries = cloneRow(r.AnnotationEntries, i)
		}
	}
	return dt
}

func cloneRow(rows [][]string, i int) []string {
	if i >= len(rows) {
		return []string{}
	}
	return append([]string{}, rows[i]...)
}
