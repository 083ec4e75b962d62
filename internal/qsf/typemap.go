package qsf

// typeKey is the (QuestionType, Selector, SubSelector) triple carried by a
// definition element. An empty SubSelector stands for "none".
type typeKey struct {
	qtype       string
	selector    string
	subSelector string
}

// typeMap resolves definition triples to internal display types. Kept as an
// explicit table so the full mapping is auditable in one place; unmapped
// triples resolve to TypeUnknown, never an error.
var typeMap = map[typeKey]InternalType{
	// Matrix questions: rows x columns grid format
	{"Matrix", "TE", "Long"}:              TypeMatrixText,
	{"Matrix", "TE", "Short"}:             TypeMatrixText,
	{"Matrix", "TE", ""}:                  TypeMatrixText,
	{"Matrix", "Likert", "SingleAnswer"}:  TypeMatrixLikert,
	{"Matrix", "Likert", "MultipleAnswer"}: TypeMatrixMulti,
	{"Matrix", "Likert", ""}:              TypeMatrixLikert,
	{"Matrix", "Profile", ""}:             TypeMatrixLikert,
	{"Matrix", "Bipolar", ""}:             TypeMatrixLikert,
	{"Matrix", "MaxDiff", ""}:             TypeMatrixLikert,

	// Text entry questions
	{"TE", "FORM", ""}: TypeForm,       // Multi-field form
	{"TE", "SL", ""}:   TypeSingleText, // Single line
	{"TE", "ML", ""}:   TypeMultiText,  // Multi-line
	{"TE", "ESTB", ""}: TypeEssay,      // Essay box
	{"TE", "", ""}:     TypeSingleText,

	// Multiple choice questions
	{"MC", "SAVR", "TX"}: TypeSingleChoice, // Single answer vertical
	{"MC", "SAVR", ""}:   TypeSingleChoice,
	{"MC", "SAHR", ""}:   TypeSingleChoice, // Single answer horizontal
	{"MC", "SACOL", ""}:  TypeSingleChoice, // Single answer column
	{"MC", "MAVR", "TX"}: TypeMultiChoice,  // Multiple answer vertical
	{"MC", "MAVR", ""}:   TypeMultiChoice,
	{"MC", "MAHR", ""}:   TypeMultiChoice, // Multiple answer horizontal
	{"MC", "MACOL", ""}:  TypeMultiChoice, // Multiple answer column
	{"MC", "DL", ""}:     TypeSingleChoice, // Dropdown list
	{"MC", "RB", ""}:     TypeSingleChoice, // Radio button
	{"MC", "NPS", ""}:    TypeSingleChoice, // Net Promoter Score

	// Display blocks: informational, not real questions
	{"DB", "TB", ""}:  TypeDisplay, // Text block
	{"DB", "GRB", ""}: TypeDisplay, // Graphic block

	// Slider questions: continuous scale input
	{"Slider", "HBAR", ""}:    TypeSingleText,
	{"Slider", "HSLIDER", ""}: TypeSingleText,

	// Side by Side: complex multi-column format
	{"SBS", "", ""}: TypeMatrixText,
}

// resolveType looks up the internal type for a triple: exact match first,
// then with the sub-selector cleared, else TypeUnknown.
func resolveType(qtype, selector, subSelector string) InternalType {
	if t, ok := typeMap[typeKey{qtype, selector, subSelector}]; ok {
		return t
	}
	if t, ok := typeMap[typeKey{qtype, selector, ""}]; ok {
		return t
	}
	return TypeUnknown
}
