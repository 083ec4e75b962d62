package survey

import (
	"fmt"
	"strconv"

	"qualreport/internal/qsf"
)

// The export and the definition file index matrix sub-elements differently:
// export columns use sequential 1-based positions, definitions use opaque
// internal identifiers. Label resolution tries the position as a literal
// identifier first, then as a 1-based index into the definition's ordering
// list, and synthesizes a placeholder when both miss.

// ResolveChoiceLabel resolves a row/item position against the definition's
// choice labels. The "Row {n}" placeholder signals an unresolved label.
func ResolveChoiceLabel(def *qsf.QuestionDefinition, position string) string {
	if def != nil {
		if label, ok := resolve(def.Choices, def.ChoiceOrder, position); ok {
			return label
		}
	}
	return fmt.Sprintf("Row %s", position)
}

// ResolveAnswerLabel resolves a column position against the definition's
// answer labels, with a "Column {n}" placeholder.
func ResolveAnswerLabel(def *qsf.QuestionDefinition, position string) string {
	if def != nil {
		if label, ok := resolve(def.Answers, def.AnswerOrder, position); ok {
			return label
		}
	}
	return fmt.Sprintf("Column %s", position)
}

func resolve(labels map[string]string, order []string, position string) (string, bool) {
	if label, ok := labels[position]; ok {
		return label, true
	}
	if idx, err := strconv.Atoi(position); err == nil {
		idx-- // positions are 1-based
		if idx >= 0 && idx < len(order) {
			if label, ok := labels[order[idx]]; ok {
				return label, true
			}
		}
	}
	return "", false
}

// IsPlaceholderLabel reports whether the label is a synthesized fallback
// rather than a resolved one.
func IsPlaceholderLabel(label, position string) bool {
	return label == fmt.Sprintf("Row %s", position) ||
		label == fmt.Sprintf("Column %s", position) ||
		label == fmt.Sprintf("Item %s", position)
}
