package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"qualreport/internal/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const testDefinition = `{
  "SurveyElements": [
    {
      "Element": "SQ",
      "PrimaryAttribute": "QID1",
      "Payload": {
        "QuestionType": "TE",
        "Selector": "SL",
        "QuestionText": "Describe your program",
        "DataExportTag": "Q1"
      }
    },
    {
      "Element": "SQ",
      "PrimaryAttribute": "QID2",
      "Payload": {
        "QuestionType": "Matrix",
        "Selector": "Likert",
        "SubSelector": "SingleAnswer",
        "QuestionText": "Rate the following",
        "DataExportTag": "Q2",
        "Choices": {"11": {"Display": "Curriculum"}, "12": {"Display": "Facilities"}},
        "ChoiceOrder": [11, 12],
        "Answers": {"1": {"Display": "Agree"}, "2": {"Display": "Disagree"}},
        "AnswerOrder": [1, 2]
      }
    },
    {
      "Element": "SQ",
      "PrimaryAttribute": "QID3",
      "Payload": {
        "QuestionType": "TE",
        "Selector": "SL",
        "QuestionText": "Anything else?",
        "DataExportTag": "Q3"
      }
    }
  ]
}`

const testExport = `ResponseId,RecipientFirstName,RecipientLastName,Q1,Q2_1_1,Q2_1_2,Q2_2_1,Q2_2_2,Q3
Response ID,First,Last,Describe your program,Rate - Curriculum - Agree,Rate - Curriculum - Disagree,Rate - Facilities - Agree,Rate - Facilities - Disagree,Anything else?
"{""ImportId"":""_recordId""}",,,,,,,,
R_1,Ada,Lovelace,Going well,Yes,,,Somewhat,
R_2,,,,,,,,
`

func writeRun(t *testing.T, withDefs, debug bool) (Stats, string) {
	t.Helper()
	dir := t.TempDir()

	input := filepath.Join(dir, "export.csv")
	require.NoError(t, os.WriteFile(input, []byte(testExport), 0o644))

	opts := Options{
		InputPath:  input,
		OutputPath: filepath.Join(dir, "report.html"),
		Debug:      debug,
	}
	if withDefs {
		opts.DefinitionPath = filepath.Join(dir, "survey.qsf")
		require.NoError(t, os.WriteFile(opts.DefinitionPath, []byte(testDefinition), 0o644))
	}

	stats, err := Run(config.DefaultConfig(), opts)
	require.NoError(t, err)

	out, err := os.ReadFile(opts.OutputPath)
	require.NoError(t, err)
	return stats, string(out)
}

func TestRun_WithDefinitions(t *testing.T) {
	stats, doc := writeRun(t, true, false)

	assert.Equal(t, 2, stats.Respondents)
	assert.Equal(t, 3, stats.Questions)
	assert.True(t, stats.UsedDefs)

	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))
	assert.Contains(t, doc, "<style>")

	// Q1 single response
	assert.Contains(t, doc, "Describe your program")
	assert.Contains(t, doc, "Going well")
	assert.Contains(t, doc, "Ada Lovelace")
	assert.Contains(t, doc, "Response: R_1")

	// Q2 matrix with definition labels
	assert.Contains(t, doc, "Rate the following")
	assert.Contains(t, doc, "<th>Agree</th><th>Disagree</th>")
	assert.Contains(t, doc, "row-header'>Curriculum</th>")
	assert.Contains(t, doc, "<td>Yes</td>")

	// Question cards come out in numeric order
	assert.Less(t, strings.Index(doc, ">Q1</div>"), strings.Index(doc, ">Q2</div>"))

	// No debug block by default
	assert.NotContains(t, doc, "debug-info")
	assert.NotContains(t, doc, "question-meta")
}

func TestRun_Unassisted(t *testing.T) {
	stats, doc := writeRun(t, false, false)

	assert.Equal(t, 2, stats.Respondents)
	assert.Equal(t, 3, stats.Questions)
	assert.False(t, stats.UsedDefs)

	// Labels derived from header text instead of definitions
	assert.Contains(t, doc, "row-header'>Curriculum</th>")
	assert.Contains(t, doc, "<th>Agree</th>")
}

func TestRun_DebugBlocks(t *testing.T) {
	_, doc := writeRun(t, true, true)

	assert.Contains(t, doc, "debug-info")
	assert.Contains(t, doc, "definition metadata")
	assert.Contains(t, doc, "question-meta")
	assert.Contains(t, doc, "shape: matrix")
}

func TestRun_EmptyRespondentGetsNoResponseRows(t *testing.T) {
	_, doc := writeRun(t, true, false)

	// R_2 answered nothing, so it never appears as a respondent row.
	assert.NotContains(t, doc, "Response: R_2")
}

func TestRun_UnansweredQuestionGetsNoResponsesCard(t *testing.T) {
	_, doc := writeRun(t, true, false)

	// Nobody answered Q3: its card carries the placeholder, not an empty grid.
	assert.Equal(t, 1, strings.Count(doc, `<div class="no-responses">No responses</div>`))
	card := doc[strings.Index(doc, ">Q3</div>"):]
	assert.Contains(t, card, "no-responses")
	assert.NotContains(t, card, "matrix-table")
}

func TestRun_MissingInput(t *testing.T) {
	_, err := Run(config.DefaultConfig(), Options{
		InputPath:  filepath.Join(t.TempDir(), "nope.csv"),
		OutputPath: filepath.Join(t.TempDir(), "out.html"),
	})
	assert.Error(t, err)
}

func TestRun_BadDefinitionFileIsFatal(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "export.csv")
	require.NoError(t, os.WriteFile(input, []byte(testExport), 0o644))

	defPath := filepath.Join(dir, "broken.qsf")
	require.NoError(t, os.WriteFile(defPath, []byte("{not json"), 0o644))

	_, err := Run(config.DefaultConfig(), Options{
		InputPath:      input,
		OutputPath:     filepath.Join(dir, "out.html"),
		DefinitionPath: defPath,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.qsf")
}

func TestStylesheetInjectsPalette(t *testing.T) {
	pal := config.DefaultConfig().Palette
	css := Stylesheet(pal)

	assert.Contains(t, css, pal.Primary)
	assert.Contains(t, css, pal.Success)
	assert.NotContains(t, css, "{primary}")
	assert.NotContains(t, css, "{border}")
}
