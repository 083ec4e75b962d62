package qsf

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"qualreport/internal/logging"
	"qualreport/internal/textnorm"
)

// surveyDocument is the top-level definition file shape.
type surveyDocument struct {
	SurveyElements []surveyElement `json:"SurveyElements"`
}

// surveyElement carries its payload raw: only survey-question ("SQ") elements
// have the question payload shape, other element kinds store arbitrary JSON.
type surveyElement struct {
	Element          string          `json:"Element"`
	PrimaryAttribute string          `json:"PrimaryAttribute"`
	Payload          json.RawMessage `json:"Payload"`
}

type questionPayload struct {
	QuestionType  string                `json:"QuestionType"`
	Selector      string                `json:"Selector"`
	SubSelector   string                `json:"SubSelector"`
	QuestionText  string                `json:"QuestionText"`
	DataExportTag flexString            `json:"DataExportTag"`
	Choices       labelMap              `json:"Choices"`
	ChoiceOrder   idList                `json:"ChoiceOrder"`
	Answers       labelMap              `json:"Answers"`
	AnswerOrder   idList                `json:"AnswerOrder"`
	ColumnLabels  labelMap              `json:"ColumnLabels"`
	RecodeValues  map[string]flexString `json:"RecodeValues"`
}

// ParseFile parses a survey-definition file into the definitions table.
func ParseFile(path string) (Definitions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file: %w", err)
	}
	return Parse(data)
}

// Parse parses a survey-definition document. One QuestionDefinition is
// produced per survey-question element carrying a non-empty export tag;
// elements without one are internal/hidden and silently skipped.
func Parse(data []byte) (Definitions, error) {
	log := logging.Get(logging.CategoryDefinition)

	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	var doc surveyDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse definition JSON: %w", err)
	}

	defs := make(Definitions)
	for _, element := range doc.SurveyElements {
		if element.Element != "SQ" {
			continue
		}

		var payload questionPayload
		if err := json.Unmarshal(element.Payload, &payload); err != nil {
			log.Warn("skipping question element %s: unexpected payload: %v", element.PrimaryAttribute, err)
			continue
		}

		exportTag := payload.DataExportTag.String()
		if exportTag == "" {
			continue
		}

		def := &QuestionDefinition{
			QID:          element.PrimaryAttribute,
			ExportTag:    exportTag,
			Text:         textnorm.Normalize(payload.QuestionText),
			QType:        payload.QuestionType,
			Selector:     payload.Selector,
			SubSelector:  payload.SubSelector,
			InternalType: resolveType(payload.QuestionType, payload.Selector, payload.SubSelector),
		}

		def.Choices, def.ChoiceOrder = collectLabels(payload.Choices, payload.ChoiceOrder, "Choice")
		def.Answers, def.AnswerOrder = collectLabels(payload.Answers, payload.AnswerOrder, "Answer")

		// Some matrix variants carry column labels instead of answers.
		if len(def.Answers) == 0 && len(payload.ColumnLabels.keys) > 0 {
			def.Answers, def.AnswerOrder = collectLabels(payload.ColumnLabels, nil, "Column")
		}

		if len(payload.RecodeValues) > 0 {
			def.RecodeValues = make(map[string]string, len(payload.RecodeValues))
			for id, v := range payload.RecodeValues {
				def.RecodeValues[id] = v.String()
			}
		}

		defs[exportTag] = def
		log.Debug("parsed %s (%s): type=%s choices=%d answers=%d",
			exportTag, def.QID, def.InternalType, len(def.Choices), len(def.Answers))
	}

	log.Info("parsed %d questions from definition file", len(defs))
	return defs, nil
}

// collectLabels builds the id->label map and its ordering. The explicit order
// list wins when present; otherwise labels keep document key order. Labels
// prefer the display string, then the plain text field, then a synthesized
// "{kind} {id}" placeholder.
func collectLabels(raw labelMap, order idList, kind string) (map[string]string, []string) {
	labels := make(map[string]string)

	if len(order) > 0 {
		for _, id := range order {
			if entry, ok := raw.entries[id]; ok {
				labels[id] = textnorm.Normalize(entry.displayOr(fmt.Sprintf("%s %s", kind, id)))
			}
		}
	}

	if len(labels) == 0 {
		for _, id := range raw.keys {
			labels[id] = textnorm.Normalize(raw.entries[id].displayOr(fmt.Sprintf("%s %s", kind, id)))
		}
	}

	if len(labels) == 0 {
		return labels, nil
	}

	if len(order) > 0 {
		out := make([]string, len(order))
		copy(out, order)
		return labels, out
	}

	keys := make([]string, 0, len(labels))
	for _, id := range raw.keys {
		if _, ok := labels[id]; ok {
			keys = append(keys, id)
		}
	}
	return labels, keys
}
