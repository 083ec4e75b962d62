// Package survey resolves the question structures of a response export:
// which columns belong to which question, what shape the question takes, and
// what its rows and columns are called.
package survey

import "qualreport/internal/qsf"

// Shape is how a question's columns arrange into a renderable structure.
type Shape string

const (
	ShapeSingle  Shape = "single"  // one column, one value
	ShapeMatrix  Shape = "matrix"  // rows x columns grid
	ShapeGrouped Shape = "grouped" // several sub-columns, no column axis
	ShapeChoice  Shape = "choice"  // one column per choice (multi-select export)
	ShapeForm    Shape = "form"    // labeled form fields
)

// Cell is one bound matrix cell: the export column holding the value for a
// (row, column) pair.
type Cell struct {
	ColumnID string
	ColLabel string
}

// Row is one row (or grouped/form item) of a question. Matrix rows carry
// cells keyed by column sub-index; grouped and form rows bind one column
// directly.
type Row struct {
	ColumnID string
	Label    string
	Cells    map[string]Cell
}

// Question is the resolved structure of one base question. Built once per
// report run; rows and columns accumulate as export columns are scanned in
// header order, then the structure is read-only.
type Question struct {
	ID           string
	Text         string
	Shape        Shape
	InternalType qsf.InternalType
	Columns      []string // every bound column, in header order
	Rows         map[string]*Row
	ColHeaders   map[string]string
	ColOrder     []string
	Def          *qsf.QuestionDefinition // nil without a definition file
}
