package render

import (
	"fmt"
	"html"
	"regexp"
	"sort"
	"strings"

	"qualreport/internal/classify"
	"qualreport/internal/csvio"
	"qualreport/internal/qsf"
	"qualreport/internal/survey"
)

// HasResponse reports whether any of the question's columns holds a value in
// the respondent's row.
func HasResponse(q *survey.Question, t *csvio.Table, row int) bool {
	for _, col := range q.Columns {
		if !classify.IsEmpty(t.Value(row, col)) {
			return true
		}
	}
	return false
}

// RenderResponse renders one respondent's answer to one question, selecting
// the fragment shape from the question structure. Every path has a fallback;
// malformed structures degrade to the empty indicator, never an error.
func (r *Renderer) RenderResponse(q *survey.Question, t *csvio.Table, row int) string {
	switch {
	case q.Shape == survey.ShapeMatrix:
		return r.renderMatrix(q, t, row)
	case q.Shape == survey.ShapeForm || q.InternalType == qsf.TypeForm:
		return r.renderForm(q, t, row)
	case q.Shape == survey.ShapeGrouped || q.Shape == survey.ShapeChoice:
		return r.renderGrouped(q, t, row)
	case len(q.Columns) > 1:
		return r.renderGrouped(q, t, row)
	default:
		return r.renderSingle(q, t, row)
	}
}

func (r *Renderer) renderSingle(q *survey.Question, t *csvio.Table, row int) string {
	if len(q.Columns) == 0 {
		return FormatEmpty()
	}
	value := t.Value(row, q.Columns[0])
	if classify.IsEmpty(value) {
		return FormatEmpty()
	}
	return r.FormatValue(value, q.Text, q.Columns[0])
}

func (r *Renderer) renderMatrix(q *survey.Question, t *csvio.Table, row int) string {
	hasCells := false
	for _, info := range q.Rows {
		if info.Cells != nil {
			hasCells = true
			break
		}
	}
	// Text-entry matrices bind one column per row and read better grouped
	if !hasCells {
		return r.renderGrouped(q, t, row)
	}

	hasData := false
	for _, info := range q.Rows {
		for _, cell := range info.Cells {
			if !classify.IsEmpty(t.Value(row, cell.ColumnID)) {
				hasData = true
				break
			}
		}
		if hasData {
			break
		}
	}
	if !hasData {
		return FormatEmpty()
	}

	var b strings.Builder
	b.WriteString("<table class='matrix-table'><thead><tr><th></th>")
	for _, colKey := range q.ColOrder {
		label := q.ColHeaders[colKey]
		if label == "" {
			label = "Col " + colKey
		}
		fmt.Fprintf(&b, "<th>%s</th>", html.EscapeString(label))
	}
	b.WriteString("</tr></thead><tbody>")

	for _, rowKey := range survey.SortedRowKeys(q.Rows) {
		info := q.Rows[rowKey]
		if info.Cells == nil {
			continue
		}

		fmt.Fprintf(&b, "<tr><th class='row-header'>%s</th>", html.EscapeString(info.Label))
		for _, colKey := range q.ColOrder {
			cell, ok := info.Cells[colKey]
			if !ok {
				b.WriteString("<td class='empty-cell'>—</td>")
				continue
			}
			value := t.Value(row, cell.ColumnID)
			if classify.IsEmpty(value) {
				b.WriteString("<td class='empty-cell'>—</td>")
			} else {
				fmt.Fprintf(&b, "<td>%s</td>", r.FormatValue(value, q.Text, cell.ColumnID))
			}
		}
		b.WriteString("</tr>")
	}

	b.WriteString("</tbody></table>")
	return b.String()
}

// item is one collected (label, value) pair of a form or grouped response.
type item struct {
	label      string
	value      string
	colID      string
	selections map[string]struct{}
	isCategory bool
}

var formColumnSub = regexp.MustCompile(`^Q\d+_(\d+)`)

// renderForm renders labeled form fields as key-value pairs. Form fields hold
// unique data entry, so value analysis is skipped.
func (r *Renderer) renderForm(q *survey.Question, t *csvio.Table, row int) string {
	var items []item

	if len(q.Rows) == 0 && len(q.Columns) > 0 {
		// No resolved rows: derive field labels from the column identifiers
		for _, colID := range q.Columns {
			value := t.Value(row, colID)
			if classify.IsEmpty(value) {
				continue
			}
			label := colID
			if m := formColumnSub.FindStringSubmatch(colID); m != nil {
				label = survey.ResolveChoiceLabel(q.Def, m[1])
			}
			items = append(items, item{label: label, value: strings.TrimSpace(value), colID: colID})
		}
	} else {
		for _, rowKey := range survey.SortedRowKeys(q.Rows) {
			info := q.Rows[rowKey]
			value := t.Value(row, info.ColumnID)
			if classify.IsEmpty(value) {
				continue
			}
			items = append(items, item{label: info.Label, value: strings.TrimSpace(value), colID: info.ColumnID})
		}
	}

	if len(items) == 0 {
		return FormatEmpty()
	}
	return r.dataTable(items, q.Text)
}

// renderGrouped picks the display for a set of sub-columns: a data table for
// numeric or unique entries, a checkmark grid for repeated categorical
// selections.
func (r *Renderer) renderGrouped(q *survey.Question, t *csvio.Table, row int) string {
	if len(q.Rows) == 0 && len(q.Columns) > 0 {
		var bound []item
		for _, colID := range q.Columns {
			if v := t.Value(row, colID); !classify.IsEmpty(v) {
				bound = append(bound, item{value: strings.TrimSpace(v), colID: colID})
			}
		}
		if len(bound) == 0 {
			return FormatEmpty()
		}
		if len(bound) == 1 {
			return r.FormatValue(bound[0].value, q.Text, bound[0].colID)
		}
		var b strings.Builder
		b.WriteString("<ul class='vertical-list'>")
		for _, it := range bound {
			fmt.Fprintf(&b, "<li>%s</li>", r.FormatValue(it.value, q.Text, it.colID))
		}
		b.WriteString("</ul>")
		return b.String()
	}

	var items []item
	var allValues []string
	for _, rowKey := range survey.SortedRowKeys(q.Rows) {
		info := q.Rows[rowKey]
		value := t.Value(row, info.ColumnID)
		if classify.IsEmpty(value) {
			continue
		}
		v := strings.TrimSpace(value)
		allValues = append(allValues, v)
		items = append(items, item{label: info.Label, value: v, colID: info.ColumnID})
	}
	if len(items) == 0 {
		return FormatEmpty()
	}

	if r.classifier.ValuesAreNumericData(allValues) || r.classifier.ValuesAreUniqueData(allValues) {
		return r.dataTable(items, q.Text)
	}

	// Collect the categorical selection vocabulary across the rows
	allSelections := make(map[string]struct{})
	multiselect := true
	for i := range items {
		v := items[i].value
		switch {
		case strings.Contains(v, ",") && !classify.IsCoordinate(v):
			parts := splitSelections(v)
			if r.allShortCategorical(parts) {
				items[i].selections = toSet(parts)
				items[i].isCategory = true
				for _, p := range parts {
					allSelections[p] = struct{}{}
				}
			} else {
				multiselect = false
			}
		case len(v) <= r.cfg.ShortValueMaxLength && !classify.IsNumericValue(v):
			items[i].selections = map[string]struct{}{v: {}}
			items[i].isCategory = true
			allSelections[v] = struct{}{}
		default:
			multiselect = false
		}
	}

	allCategorical := true
	for _, it := range items {
		if !it.isCategory {
			allCategorical = false
			break
		}
	}

	ratio := float64(len(allSelections)) / float64(len(items))
	if len(allSelections) >= r.cfg.CheckmarkMinTokens &&
		len(allSelections) <= r.cfg.CheckmarkMaxTokens &&
		ratio <= r.cfg.CheckmarkTokenRowRatioMax &&
		multiselect && allCategorical {
		return checkmarkTable(items, allSelections)
	}
	return r.dataTable(items, q.Text)
}

func (r *Renderer) allShortCategorical(parts []string) bool {
	for _, p := range parts {
		if len(p) > r.cfg.ShortValueMaxLength || classify.IsNumericValue(p) {
			return false
		}
	}
	return true
}

func splitSelections(v string) []string {
	var parts []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

func toSet(parts []string) map[string]struct{} {
	s := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		s[p] = struct{}{}
	}
	return s
}

func (r *Renderer) dataTable(items []item, questionText string) string {
	var b strings.Builder
	b.WriteString("<table class='data-table'><tbody>")
	for _, it := range items {
		fmt.Fprintf(&b, "<tr><th class='data-label'>%s</th><td class='data-value'>%s</td></tr>",
			html.EscapeString(it.label), r.FormatValue(it.value, questionText, it.colID))
	}
	b.WriteString("</tbody></table>")
	return b.String()
}

func checkmarkTable(items []item, allSelections map[string]struct{}) string {
	colOrder := make([]string, 0, len(allSelections))
	for s := range allSelections {
		colOrder = append(colOrder, s)
	}
	sort.Strings(colOrder)

	var b strings.Builder
	b.WriteString("<table class='grouped-table'><thead><tr><th></th>")
	for _, col := range colOrder {
		fmt.Fprintf(&b, "<th>%s</th>", html.EscapeString(col))
	}
	b.WriteString("</tr></thead><tbody>")

	for _, it := range items {
		fmt.Fprintf(&b, "<tr><th class='row-header'>%s</th>", html.EscapeString(it.label))
		for _, col := range colOrder {
			if _, sel := it.selections[col]; sel {
				b.WriteString("<td class='cell-yes'>✓</td>")
			} else {
				b.WriteString("<td class='cell-no'>—</td>")
			}
		}
		b.WriteString("</tr>")
	}

	b.WriteString("</tbody></table>")
	return b.String()
}
