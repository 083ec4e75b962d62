// Package qsf parses survey-definition (QSF) documents into a normalized
// per-question metadata table: resolved internal type, ordered choice labels
// and ordered answer labels, keyed by the question's stable export tag.
package qsf

// InternalType is the resolved display type of a question.
type InternalType string

const (
	TypeMatrixText   InternalType = "matrix_text"   // Matrix of free-text cells
	TypeMatrixLikert InternalType = "matrix_likert" // Matrix, one answer per row
	TypeMatrixMulti  InternalType = "matrix_multi"  // Matrix, multiple answers per row
	TypeForm         InternalType = "form"          // Multi-field form
	TypeSingleText   InternalType = "single_text"   // Single line text entry
	TypeMultiText    InternalType = "multi_text"    // Multi-line text entry
	TypeEssay        InternalType = "essay"         // Essay box
	TypeSingleChoice InternalType = "single_choice" // Single-select
	TypeMultiChoice  InternalType = "multi_choice"  // Multi-select
	TypeDisplay      InternalType = "display"       // Informational block, no answer
	TypeUnknown      InternalType = "unknown"       // Unmapped triple
)

// IsMatrix reports whether the type renders as a row/column grid.
func (t InternalType) IsMatrix() bool {
	return t == TypeMatrixText || t == TypeMatrixLikert || t == TypeMatrixMulti
}

// IsChoice reports whether the type is a selection question.
func (t InternalType) IsChoice() bool {
	return t == TypeSingleChoice || t == TypeMultiChoice
}

// QuestionDefinition is the normalized metadata for one survey question.
// Immutable once parsed.
type QuestionDefinition struct {
	QID       string // Internal question identifier (e.g. QID12)
	ExportTag string // Stable export tag (e.g. Q3)
	Text      string // Normalized question text

	// Raw type descriptor triple from the definition file.
	QType       string
	Selector    string
	SubSelector string

	// InternalType resolved from the triple via the type map.
	InternalType InternalType

	// Choices are row labels for matrix questions and options for selection
	// questions, keyed by internal choice identifier. ChoiceOrder preserves
	// the explicit ordering when present, else dictionary key order.
	Choices     map[string]string
	ChoiceOrder []string

	// Answers are column labels for matrix questions, keyed by internal
	// answer identifier, with AnswerOrder analogous to ChoiceOrder.
	Answers     map[string]string
	AnswerOrder []string

	// RecodeValues maps choice identifiers to recoded export values.
	RecodeValues map[string]string
}

// Definitions maps export tags to question definitions.
type Definitions map[string]*QuestionDefinition
