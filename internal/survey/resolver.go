package survey

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"qualreport/internal/classify"
	"qualreport/internal/csvio"
	"qualreport/internal/logging"
	"qualreport/internal/qsf"
	"qualreport/internal/textnorm"
)

// Export column identifiers follow a naming grammar: a base question number,
// up to two numeric sub-indices, and an optional free-text marker. The loose
// pattern catches identifiers with non-numeric suffixes, and the unassisted
// prefix pattern tolerates trailing junk the strict one rejects.
var (
	columnStrict = regexp.MustCompile(`^Q(\d+)(?:_(\d+))?(?:_(\d+))?(_TEXT)?$`)
	columnLoose  = regexp.MustCompile(`^Q(\d+)(?:_(.+))?$`)
	columnPrefix = regexp.MustCompile(`^Q(\d+)(?:_(\d+))?(?:_(\d+))?(_TEXT)?`)
)

type columnRef struct {
	base   string
	sub1   string
	sub2   string
	isText bool
}

// parseColumnRef parses a column identifier against the naming grammar.
// strict controls whether the whole identifier must match; the unassisted
// path accepts a matching prefix, mirroring how partial exports name columns.
func parseColumnRef(id string, strict bool) (columnRef, bool) {
	pattern := columnStrict
	if !strict {
		pattern = columnPrefix
	}

	m := pattern.FindStringSubmatch(id)
	if m == nil {
		if !strict {
			return columnRef{}, false
		}
		m = columnLoose.FindStringSubmatch(id)
		if m == nil {
			return columnRef{}, false
		}
		ref := columnRef{base: "Q" + m[1], sub1: m[2]}
		if ref.sub1 == "TEXT" {
			ref.sub1 = ""
			ref.isText = true
		}
		return ref, true
	}

	return columnRef{
		base:   "Q" + m[1],
		sub1:   m[2],
		sub2:   m[3],
		isText: m[4] != "",
	}, true
}

// skipColumn filters out session metadata, timing columns and columns outside
// the question namespace.
func skipColumn(id string) bool {
	return csvio.IsMetadataColumn(id) || classify.IsTimingColumn(id) || !strings.HasPrefix(id, "Q")
}

// Resolve builds one Question per base question from the export's header
// columns. With definitions present, the definition's internal type selects
// each question's shape and labels; without them, shape and labels are
// inferred from column identifiers and header text alone.
func Resolve(table *csvio.Table, defs qsf.Definitions) map[string]*Question {
	if len(defs) > 0 {
		return resolveWithDefinitions(table, defs)
	}
	return resolveFromHeaders(table)
}

func resolveWithDefinitions(table *csvio.Table, defs qsf.Definitions) map[string]*Question {
	log := logging.Get(logging.CategoryStructure)
	questions := make(map[string]*Question)

	for _, colID := range table.ColumnIDs {
		if skipColumn(colID) {
			continue
		}
		ref, ok := parseColumnRef(colID, true)
		if !ok {
			continue
		}
		// Standalone free-text elaborations of a grouped choice duplicate
		// the choice column and are not separately renderable.
		if ref.isText && ref.sub1 != "" {
			continue
		}

		def := defs[ref.base]

		q := questions[ref.base]
		if q == nil {
			q = &Question{
				ID:         ref.base,
				Shape:      ShapeSingle,
				Rows:       make(map[string]*Row),
				ColHeaders: make(map[string]string),
				Def:        def,
			}
			if def != nil {
				q.Text = def.Text
				q.InternalType = def.InternalType
			} else {
				q.InternalType = qsf.TypeUnknown
			}
			if q.Text == "" {
				q.Text = textnorm.CleanHeader(table.Headers[colID])
			}
			questions[ref.base] = q
		}

		q.Columns = append(q.Columns, colID)

		switch {
		case q.InternalType.IsMatrix():
			q.Shape = ShapeMatrix
			if ref.sub1 != "" && ref.sub2 != "" {
				q.bindMatrixCell(ref, colID, ResolveChoiceLabel(def, ref.sub1), ResolveAnswerLabel(def, ref.sub2))
			} else if ref.sub1 != "" {
				// Text-entry matrix: one column per row
				q.bindRow(ref.sub1, colID, ResolveChoiceLabel(def, ref.sub1))
			}

		case q.InternalType == qsf.TypeForm:
			q.Shape = ShapeForm
			if ref.sub1 != "" {
				q.bindRow(ref.sub1, colID, ResolveChoiceLabel(def, ref.sub1))
			}

		case q.InternalType.IsChoice():
			if ref.sub1 != "" {
				q.Shape = ShapeChoice
				q.bindRow(ref.sub1, colID, ResolveChoiceLabel(def, ref.sub1))
			}

		default:
			// No usable type: infer shape from the column pattern, and fall
			// back to header text when the definition labels are missing.
			if ref.sub1 != "" && ref.sub2 != "" {
				q.Shape = ShapeMatrix
				rowLabel := ResolveChoiceLabel(def, ref.sub1)
				colLabel := ResolveAnswerLabel(def, ref.sub2)
				if IsPlaceholderLabel(rowLabel, ref.sub1) || IsPlaceholderLabel(colLabel, ref.sub2) {
					_, rowCSV, colCSV := textnorm.SplitHeader(table.Headers[colID])
					if IsPlaceholderLabel(rowLabel, ref.sub1) && rowCSV != "" {
						rowLabel = rowCSV
					}
					if IsPlaceholderLabel(colLabel, ref.sub2) && colCSV != "" {
						colLabel = colCSV
					}
				}
				q.bindMatrixCell(ref, colID, rowLabel, colLabel)
			} else if ref.sub1 != "" {
				q.Shape = ShapeGrouped
				label := ResolveChoiceLabel(def, ref.sub1)
				if IsPlaceholderLabel(label, ref.sub1) {
					if _, rowCSV, _ := textnorm.SplitHeader(table.Headers[colID]); rowCSV != "" {
						label = rowCSV
					}
				}
				q.bindRow(ref.sub1, colID, label)
			}
		}
	}

	log.Info("resolved %d questions using definitions", len(questions))
	return questions
}

func resolveFromHeaders(table *csvio.Table) map[string]*Question {
	log := logging.Get(logging.CategoryStructure)
	questions := make(map[string]*Question)

	for _, colID := range table.ColumnIDs {
		if skipColumn(colID) {
			continue
		}
		ref, ok := parseColumnRef(colID, false)
		if !ok {
			continue
		}
		if ref.isText && ref.sub1 != "" {
			continue
		}

		baseText, rowLabel, colLabel := textnorm.SplitHeader(table.Headers[colID])

		q := questions[ref.base]
		if q == nil {
			q = &Question{
				ID:           ref.base,
				Shape:        ShapeSingle,
				InternalType: qsf.TypeUnknown,
				Rows:         make(map[string]*Row),
				ColHeaders:   make(map[string]string),
			}
			questions[ref.base] = q
		}

		// Headers are sometimes partially blank; keep the longest question
		// text seen across the question's columns.
		if len(baseText) > len(q.Text) {
			q.Text = baseText
		}

		q.Columns = append(q.Columns, colID)

		if ref.sub1 != "" && ref.sub2 != "" {
			q.Shape = ShapeMatrix
			if rowLabel == "" {
				rowLabel = "Row " + ref.sub1
			}
			if colLabel == "" {
				colLabel = "Column " + ref.sub2
			}
			q.bindMatrixCell(ref, colID, rowLabel, colLabel)
			// Later columns may carry the label an earlier blank header lacked
			if rowLabel != "Row "+ref.sub1 {
				q.Rows[ref.sub1].Label = rowLabel
			}
			if colLabel != "Column "+ref.sub2 {
				q.ColHeaders[ref.sub2] = colLabel
			}
		} else if ref.sub1 != "" {
			q.Shape = ShapeGrouped
			label := rowLabel
			if label == "" {
				label = "Item " + ref.sub1
			}
			q.bindRow(ref.sub1, colID, label)
		}
	}

	log.Info("resolved %d questions from headers alone", len(questions))
	return questions
}

// bindMatrixCell records a (row, column) cell binding, registering the row
// and the column header on first sight.
func (q *Question) bindMatrixCell(ref columnRef, colID, rowLabel, colLabel string) {
	row := q.Rows[ref.sub1]
	if row == nil {
		row = &Row{Label: rowLabel, Cells: make(map[string]Cell)}
		q.Rows[ref.sub1] = row
	}
	if row.Cells == nil {
		row.Cells = make(map[string]Cell)
	}
	row.Cells[ref.sub2] = Cell{ColumnID: colID, ColLabel: colLabel}

	if _, seen := q.ColHeaders[ref.sub2]; !seen {
		q.ColHeaders[ref.sub2] = colLabel
		q.ColOrder = append(q.ColOrder, ref.sub2)
	}
}

// bindRow records a directly bound row; first binding wins.
func (q *Question) bindRow(sub, colID, label string) {
	if _, seen := q.Rows[sub]; seen {
		return
	}
	q.Rows[sub] = &Row{ColumnID: colID, Label: label}
}

// Ordered returns the questions sorted by base question number.
func Ordered(questions map[string]*Question) []*Question {
	out := make([]*Question, 0, len(questions))
	for _, q := range questions {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool {
		return questionNumber(out[i].ID) < questionNumber(out[j].ID)
	})
	return out
}

func questionNumber(id string) int {
	n, _ := strconv.Atoi(strings.TrimPrefix(id, "Q"))
	return n
}
