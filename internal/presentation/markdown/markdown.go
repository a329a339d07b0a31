// Package markdown renders recognized decision tables as Markdown.
package markdown

import (
	"fmt"
	"strings"

	"github.com/aretw0/dectab/pkg/domain"
)

// Generate produces a Markdown document for the decision table: an optional
// heading with the information item name, a summary line, and a pipe table
// with one row per rule. Allowed values, when present, follow the table.
func Generate(dt *domain.DecisionTable) string {
	var sb strings.Builder

	if dt.InformationItemName != "" {
		fmt.Fprintf(&sb, "### %s\n\n", escape(dt.InformationItemName))
	}

	fmt.Fprintf(&sb, "Hit policy: **%s**", escape(dt.HitPolicy.Code()))
	if dt.Aggregation != "" {
		fmt.Fprintf(&sb, " (%s)", dt.Aggregation)
	}
	fmt.Fprintf(&sb, ", %s\n\n", dt.Orientation)

	headers := []string{"#"}
	for _, in := range dt.InputClauses {
		headers = append(headers, in.InputExpression)
	}
	for _, out := range dt.OutputClauses {
		headers = append(headers, outputHeader(dt.OutputLabel, out.Name))
	}
	headers = append(headers, dt.Annotations...)

	writeRow(&sb, headers)
	seps := make([]string, len(headers))
	for i := range seps {
		seps[i] = "---"
	}
	writeRow(&sb, seps)

	for i, rule := range dt.Rules {
		cells := make([]string, 0, len(headers))
		cells = append(cells, fmt.Sprint(i+1))
		cells = append(cells, rule.InputEntries...)
		cells = append(cells, rule.OutputEntries...)
		cells = append(cells, rule.AnnotationEntries...)
		writeRow(&sb, cells)
	}

	var allowed []string
	for _, in := range dt.InputClauses {
		if in.AllowedValues != "" {
			allowed = append(allowed, fmt.Sprintf("- %s: `%s`", escape(in.InputExpression), in.AllowedValues))
		}
	}
	for _, out := range dt.OutputClauses {
		if out.AllowedValues != "" {
			allowed = append(allowed, fmt.Sprintf("- %s: `%s`", escape(outputHeader(dt.OutputLabel, out.Name)), out.AllowedValues))
		}
	}
	if len(allowed) > 0 {
		sb.WriteString("\nAllowed values:\n\n")
		sb.WriteString(strings.Join(allowed, "\n"))
		sb.WriteString("\n")
	}

	return sb.String()
}

func outputHeader(label, name string) string {
	switch {
	case name == "" && label == "":
		return "Output"
	case name == "":
		return label
	case label == "":
		return name
	default:
		return label + "." + name
	}
}

func writeRow(sb *strings.Builder, cells []string) {
	sb.WriteString("|")
	for _, c := range cells {
		sb.WriteString(" ")
		sb.WriteString(escape(c))
		sb.WriteString(" |")
	}
	sb.WriteString("\n")
}

func escape(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", "<br>")
}
