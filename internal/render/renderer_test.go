package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qualreport/internal/config"
	"qualreport/internal/csvio"
	"qualreport/internal/qsf"
	"qualreport/internal/survey"
)

func newRenderer() *Renderer {
	return New(config.DefaultConfig().Heuristics)
}

func TestFormatValue(t *testing.T) {
	r := newRenderer()

	cases := []struct {
		name   string
		value  string
		column string
		want   string
	}{
		{"empty", "", "Q1", "<span class='no-response'>No response</span>"},
		{"text escapes markup", "a <b> c", "Q1", "a &lt;b&gt; c"},
		{"code", "3", "Q1", "<span class='code-value'>[Code: 3]</span>"},
		{"code list", "1, 2,3", "Q1", "<span class='code-value'>[Selections: 1, 2, 3]</span>"},
		{"url", "www.example.edu", "Q1",
			"<a href='https://www.example.edu' target='_blank' class='url-link'>www.example.edu</a>"},
		{"coordinate", "120,45", "Q1", "<span class='coordinate'>📍 X: 120, Y: 45</span>"},
		{"click count", "4", "Q1_Click Count", "<span class='timing'>🖱️ Clicks: 4</span>"},
		{"short timing", "3.25", "Q1_Page Submit", "<span class='timing'>⏱️ Page time: 3.2s</span>"},
		{"long timing", "95", "Q1_First Click", "<span class='timing'>⏱️ First click: 1m 35s</span>"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.FormatValue(tc.value, "", tc.column))
		})
	}
}

func TestFormatValue_Structured(t *testing.T) {
	r := newRenderer()

	got := r.FormatValue("School > Department", "", "Q1")
	assert.Contains(t, got, "drill-level'>School</span>")
	assert.Contains(t, got, "drill-arrow")

	got = r.FormatValue("Anatomy; Physiology; Histology", "", "Q1")
	assert.Contains(t, got, "<ul class='vertical-list'>")
	assert.Contains(t, got, "<li>Physiology</li>")

	got = r.FormatValue(`{"a":1}`, "", "Q1")
	assert.True(t, strings.HasPrefix(got, "<pre class='json-data'>"))
	assert.Contains(t, got, "&#34;a&#34;: 1")

	long := strings.Repeat("word ", 50) + "\n" + strings.Repeat("more ", 50)
	got = r.FormatValue(long, "", "Q1")
	assert.Contains(t, got, "<div class='long-text'>")
	assert.Contains(t, got, "<p>")

	got = r.FormatValue("https://x.edu/a/report.pdf", "", "Q1")
	assert.Contains(t, got, "📎")
	assert.Contains(t, got, ">report.pdf</a>")
}

func singleQuestion() *survey.Question {
	return &survey.Question{
		ID:      "Q1",
		Text:    "Describe your program",
		Shape:   survey.ShapeSingle,
		Columns: []string{"Q1"},
		Rows:    map[string]*survey.Row{},
	}
}

func TestRenderSingle(t *testing.T) {
	r := newRenderer()
	table, err := csvio.Read([]byte("Q1\nh\nIt went well\n\n"))
	require.NoError(t, err)

	q := singleQuestion()
	assert.Equal(t, "It went well", r.RenderResponse(q, table, 0))
	assert.Equal(t, FormatEmpty(), r.RenderResponse(q, table, 1))
	assert.True(t, HasResponse(q, table, 0))
	assert.False(t, HasResponse(q, table, 1))
}

func matrixQuestion() *survey.Question {
	return &survey.Question{
		ID:    "Q2",
		Text:  "Rate the following",
		Shape: survey.ShapeMatrix,
		Columns: []string{
			"Q2_1_1", "Q2_1_2", "Q2_2_1", "Q2_2_2",
		},
		Rows: map[string]*survey.Row{
			"1": {Label: "Curriculum", Cells: map[string]survey.Cell{
				"1": {ColumnID: "Q2_1_1", ColLabel: "Agree"},
				"2": {ColumnID: "Q2_1_2", ColLabel: "Disagree"},
			}},
			"2": {Label: "Facilities", Cells: map[string]survey.Cell{
				"1": {ColumnID: "Q2_2_1", ColLabel: "Agree"},
				"2": {ColumnID: "Q2_2_2", ColLabel: "Disagree"},
			}},
		},
		ColHeaders: map[string]string{"1": "Agree", "2": "Disagree"},
		ColOrder:   []string{"1", "2"},
	}
}

func TestRenderMatrix(t *testing.T) {
	r := newRenderer()
	table, err := csvio.Read([]byte(
		"Q2_1_1,Q2_1_2,Q2_2_1,Q2_2_2\nh,h,h,h\nYes,,,"+
			"Somewhat\n,,,\n"))
	require.NoError(t, err)

	got := r.RenderResponse(matrixQuestion(), table, 0)
	assert.Contains(t, got, "<table class='matrix-table'>")
	assert.Contains(t, got, "<th>Agree</th><th>Disagree</th>")
	assert.Contains(t, got, "row-header'>Curriculum</th>")
	assert.Contains(t, got, "<td>Yes</td>")
	assert.Contains(t, got, "empty-cell'>—</td>")

	// Rows come out in sorted order
	assert.Less(t, strings.Index(got, "Curriculum"), strings.Index(got, "Facilities"))
}

func TestRenderMatrix_AllEmpty(t *testing.T) {
	r := newRenderer()
	table, err := csvio.Read([]byte("Q2_1_1,Q2_1_2,Q2_2_1,Q2_2_2\nh,h,h,h\n,,,\n"))
	require.NoError(t, err)

	assert.Equal(t, FormatEmpty(), r.RenderResponse(matrixQuestion(), table, 0))
}

func TestRenderMatrix_NoCellsFallsBackToGrouped(t *testing.T) {
	r := newRenderer()
	table, err := csvio.Read([]byte("Q2_1,Q2_2\nh,h\n1200,3400\n"))
	require.NoError(t, err)

	q := &survey.Question{
		ID:      "Q2",
		Text:    "Enrollment numbers",
		Shape:   survey.ShapeMatrix,
		Columns: []string{"Q2_1", "Q2_2"},
		Rows: map[string]*survey.Row{
			"1": {ColumnID: "Q2_1", Label: "Fall"},
			"2": {ColumnID: "Q2_2", Label: "Spring"},
		},
	}
	got := r.RenderResponse(q, table, 0)
	assert.Contains(t, got, "<table class='data-table'>")
	assert.Contains(t, got, "data-label'>Fall</th>")
}

func TestRenderForm(t *testing.T) {
	r := newRenderer()
	table, err := csvio.Read([]byte("Q3_1,Q3_2\nh,h\nAda Lovelace,ada@x.edu\n,\n"))
	require.NoError(t, err)

	q := &survey.Question{
		ID:      "Q3",
		Text:    "Contact details",
		Shape:   survey.ShapeForm,
		Columns: []string{"Q3_1", "Q3_2"},
		Rows: map[string]*survey.Row{
			"1": {ColumnID: "Q3_1", Label: "Name"},
			"2": {ColumnID: "Q3_2", Label: "Email"},
		},
	}

	got := r.RenderResponse(q, table, 0)
	assert.Contains(t, got, "data-label'>Name</th>")
	assert.Contains(t, got, "Ada Lovelace")
	assert.Equal(t, FormatEmpty(), r.RenderResponse(q, table, 1))
}

func TestRenderForm_DerivesLabelsFromColumns(t *testing.T) {
	r := newRenderer()
	table, err := csvio.Read([]byte("Q3_1,Q3_2\nh,h\nAda,ada@x.edu\n"))
	require.NoError(t, err)

	q := &survey.Question{
		ID:      "Q3",
		Shape:   survey.ShapeForm,
		Columns: []string{"Q3_1", "Q3_2"},
		Rows:    map[string]*survey.Row{},
		Def: &qsf.QuestionDefinition{
			Choices:     map[string]string{"1": "Name", "2": "Email"},
			ChoiceOrder: []string{"1", "2"},
		},
	}

	got := r.RenderResponse(q, table, 0)
	assert.Contains(t, got, "data-label'>Name</th>")
	assert.Contains(t, got, "data-label'>Email</th>")
}

func groupedQuestion(cols ...string) *survey.Question {
	q := &survey.Question{
		ID:    "Q5",
		Text:  "Current status of each program",
		Shape: survey.ShapeGrouped,
		Rows:  map[string]*survey.Row{},
	}
	for i, c := range cols {
		key := string(rune('1' + i))
		q.Columns = append(q.Columns, c)
		q.Rows[key] = &survey.Row{ColumnID: c, Label: "Program " + key}
	}
	return q
}

func TestRenderGrouped_CheckmarkTable(t *testing.T) {
	r := newRenderer()
	table, err := csvio.Read([]byte(
		"Q5_1,Q5_2,Q5_3,Q5_4\nh,h,h,h\nActive,On hold,Active,Active\n"))
	require.NoError(t, err)

	got := r.RenderResponse(groupedQuestion("Q5_1", "Q5_2", "Q5_3", "Q5_4"), table, 0)
	assert.Contains(t, got, "<table class='grouped-table'>")
	assert.Contains(t, got, "<th>Active</th><th>On hold</th>")
	assert.Contains(t, got, "cell-yes'>✓</td>")
	assert.Contains(t, got, "cell-no'>—</td>")
}

func TestRenderGrouped_TooManyTokensFallsBackToDataTable(t *testing.T) {
	r := newRenderer()
	// 12 distinct short tokens across the rows is past the checkmark bound.
	table, err := csvio.Read([]byte(
		"Q5_1,Q5_2,Q5_3,Q5_4,Q5_5,Q5_6\nh,h,h,h,h,h\n" +
			`"Red,Blue,Gold,Teal","Lime,Rose,Cyan,Plum","Jade,Rust,Sand,Mint",` +
			`"Red,Blue,Gold,Teal","Lime,Rose,Cyan,Plum","Jade,Rust,Sand,Mint"` + "\n"))
	require.NoError(t, err)

	got := r.RenderResponse(
		groupedQuestion("Q5_1", "Q5_2", "Q5_3", "Q5_4", "Q5_5", "Q5_6"), table, 0)
	assert.Contains(t, got, "<table class='data-table'>")
	assert.NotContains(t, got, "grouped-table")
}

func TestRenderGrouped_NumericDataTable(t *testing.T) {
	r := newRenderer()
	table, err := csvio.Read([]byte("Q5_1,Q5_2\nh,h\n1250,340\n"))
	require.NoError(t, err)

	got := r.RenderResponse(groupedQuestion("Q5_1", "Q5_2"), table, 0)
	assert.Contains(t, got, "<table class='data-table'>")
	assert.NotContains(t, got, "grouped-table")
}

func TestRenderGrouped_UniqueDataTable(t *testing.T) {
	r := newRenderer()
	table, err := csvio.Read([]byte(
		"Q5_1,Q5_2,Q5_3\nh,h,h\nada@x.edu,bob@y.edu,cy@z.edu\n"))
	require.NoError(t, err)

	got := r.RenderResponse(groupedQuestion("Q5_1", "Q5_2", "Q5_3"), table, 0)
	assert.Contains(t, got, "<table class='data-table'>")
}

func TestRenderGrouped_Empty(t *testing.T) {
	r := newRenderer()
	table, err := csvio.Read([]byte("Q5_1,Q5_2\nh,h\n,\n"))
	require.NoError(t, err)

	assert.Equal(t, FormatEmpty(), r.RenderResponse(groupedQuestion("Q5_1", "Q5_2"), table, 0))
}

func TestRenderGrouped_NoRowsSingleValue(t *testing.T) {
	r := newRenderer()
	table, err := csvio.Read([]byte("Q5_1,Q5_2\nh,h\nonly answer,\n"))
	require.NoError(t, err)

	q := &survey.Question{
		ID: "Q5", Shape: survey.ShapeGrouped,
		Columns: []string{"Q5_1", "Q5_2"},
		Rows:    map[string]*survey.Row{},
	}
	assert.Equal(t, "only answer", r.RenderResponse(q, table, 0))
}
