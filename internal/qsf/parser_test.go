package qsf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDefinition = `{
  "SurveyElements": [
    {"Element": "BL", "PrimaryAttribute": "Survey Blocks", "Payload": [{"Type": "Default"}]},
    {
      "Element": "SQ",
      "PrimaryAttribute": "QID1",
      "Payload": {
        "QuestionType": "MC",
        "Selector": "SAVR",
        "SubSelector": "TX",
        "QuestionText": "<p>What is your <b>role</b>?</p>",
        "DataExportTag": "Q1",
        "Choices": {
          "1": {"Display": "Dean"},
          "2": {"Display": "Faculty"},
          "3": {"Text": "Staff"}
        },
        "ChoiceOrder": [1, 2, 3]
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
        "Choices": {
          "35": {"Display": "Curriculum"},
          "36": {"Display": "Facilities"}
        },
        "ChoiceOrder": ["35", "36"],
        "Answers": {
          "1": {"Display": "Agree"},
          "2": {"Display": "Disagree"}
        },
        "AnswerOrder": [1, 2]
      }
    },
    {
      "Element": "SQ",
      "PrimaryAttribute": "QID3",
      "Payload": {
        "QuestionType": "TE",
        "Selector": "FORM",
        "QuestionText": "Contact details",
        "DataExportTag": "Q3",
        "Choices": {
          "1": {"Display": "Name"},
          "2": {"Display": "Email"}
        }
      }
    },
    {
      "Element": "SQ",
      "PrimaryAttribute": "QID4",
      "Payload": {
        "QuestionType": "Timing",
        "Selector": "PageTimer",
        "QuestionText": "Timing",
        "DataExportTag": "Q4"
      }
    },
    {
      "Element": "SQ",
      "PrimaryAttribute": "QID5",
      "Payload": {
        "QuestionType": "TE",
        "Selector": "SL",
        "QuestionText": "Hidden scratch question",
        "DataExportTag": ""
      }
    }
  ]
}`

func TestParse(t *testing.T) {
	defs, err := Parse([]byte(sampleDefinition))
	require.NoError(t, err)
	require.Len(t, defs, 4, "element without export tag must be skipped")

	q1 := defs["Q1"]
	require.NotNil(t, q1)
	assert.Equal(t, "QID1", q1.QID)
	assert.Equal(t, TypeSingleChoice, q1.InternalType)
	assert.Equal(t, "What is your role ?", q1.Text)
	assert.Equal(t, []string{"1", "2", "3"}, q1.ChoiceOrder)
	assert.Equal(t, "Dean", q1.Choices["1"])
	assert.Equal(t, "Staff", q1.Choices["3"], "Text is the fallback when Display is absent")

	q2 := defs["Q2"]
	require.NotNil(t, q2)
	assert.Equal(t, TypeMatrixLikert, q2.InternalType)
	assert.Equal(t, "Curriculum", q2.Choices["35"])
	assert.Equal(t, []string{"1", "2"}, q2.AnswerOrder, "numeric order entries normalize to strings")
	assert.Equal(t, "Agree", q2.Answers["1"])

	q3 := defs["Q3"]
	require.NotNil(t, q3)
	assert.Equal(t, TypeForm, q3.InternalType)
	assert.Equal(t, []string{"1", "2"}, q3.ChoiceOrder, "document key order is kept without an explicit order list")
}

func TestParse_UnknownTripleNeverFails(t *testing.T) {
	defs, err := Parse([]byte(sampleDefinition))
	require.NoError(t, err)
	assert.Equal(t, TypeUnknown, defs["Q4"].InternalType)
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := Parse([]byte("{not json"))
	assert.Error(t, err)
}

func TestParse_ColumnLabelsFeedAnswers(t *testing.T) {
	doc := `{"SurveyElements": [{
	  "Element": "SQ",
	  "PrimaryAttribute": "QID9",
	  "Payload": {
	    "QuestionType": "Matrix",
	    "Selector": "TE",
	    "SubSelector": "Short",
	    "QuestionText": "Enrollment by year",
	    "DataExportTag": "Q9",
	    "Choices": {"1": {"Display": "First year"}},
	    "ColumnLabels": {"1": {"Display": "Fall"}, "2": {"Display": "Spring"}}
	  }
	}]}`
	defs, err := Parse([]byte(doc))
	require.NoError(t, err)
	q := defs["Q9"]
	require.NotNil(t, q)
	assert.Equal(t, "Fall", q.Answers["1"])
	assert.Equal(t, []string{"1", "2"}, q.AnswerOrder)
}

func TestParse_ScalarChoiceAndPlaceholder(t *testing.T) {
	doc := `{"SurveyElements": [{
	  "Element": "SQ",
	  "PrimaryAttribute": "QID7",
	  "Payload": {
	    "QuestionType": "MC",
	    "Selector": "MAVR",
	    "QuestionText": "Pick some",
	    "DataExportTag": "Q7",
	    "Choices": {"1": "Plain label", "2": {}}
	  }
	}]}`
	defs, err := Parse([]byte(doc))
	require.NoError(t, err)
	q := defs["Q7"]
	require.NotNil(t, q)
	assert.Equal(t, TypeMultiChoice, q.InternalType)
	assert.Equal(t, "Plain label", q.Choices["1"])
	assert.Equal(t, "Choice 2", q.Choices["2"], "entry without Display or Text synthesizes a placeholder")
}

func TestResolveType_Fallback(t *testing.T) {
	assert.Equal(t, TypeMatrixLikert, resolveType("Matrix", "Likert", "WeirdNewSub"))
	assert.Equal(t, TypeSingleText, resolveType("TE", "SL", "Whatever"))
	assert.Equal(t, TypeUnknown, resolveType("HeatMap", "Region", ""))
	assert.Equal(t, TypeMatrixText, resolveType("SBS", "", ""))
}
