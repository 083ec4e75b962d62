package report

import (
	"fmt"
	"html"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"qualreport/internal/config"
	"qualreport/internal/csvio"
	"qualreport/internal/render"
	"qualreport/internal/survey"
)

// buildParams carries everything the document builder needs for one run.
type buildParams struct {
	questions map[string]*survey.Question
	table     *csvio.Table
	renderer  *render.Renderer
	palette   config.PaletteConfig
	debug     bool
	hasDefs   bool
	now       time.Time
}

// buildHTML assembles the complete self-contained report document: header,
// summary counts, and one card per question with every respondent's rendered
// answer.
func buildHTML(p buildParams) string {
	respondents := p.table.Respondents()
	ordered := survey.Ordered(p.questions)

	shapeCounts := make(map[survey.Shape]int)
	for _, q := range ordered {
		shapeCounts[q.Shape]++
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Survey Report</title>
    <style>%s</style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>📋 Survey Report</h1>
            <div class="meta">Generated on %s</div>
%s        </div>
`, Stylesheet(p.palette), p.now.Format("January 02, 2006 at 03:04 PM"), debugBlock(p, shapeCounts, len(respondents)))

	fmt.Fprintf(&b, `
        <div class="summary">
            <div class="summary-item">
                <div class="summary-value">%d</div>
                <div class="summary-label">Respondents</div>
            </div>
            <div class="summary-item">
                <div class="summary-value">%d</div>
                <div class="summary-label">Questions</div>
            </div>
            <div class="summary-item">
                <div class="summary-value">%d</div>
                <div class="summary-label">Matrix Questions</div>
            </div>
        </div>
`, len(respondents), len(ordered), shapeCounts[survey.ShapeMatrix])

	for _, q := range ordered {
		writeQuestionCard(&b, q, p, respondents)
	}

	b.WriteString(`
    </div>
</body>
</html>
`)
	return b.String()
}

func debugBlock(p buildParams, shapeCounts map[survey.Shape]int, respondents int) string {
	if !p.debug {
		return ""
	}

	shapes := make([]string, 0, len(shapeCounts))
	for shape := range shapeCounts {
		shapes = append(shapes, string(shape))
	}
	sort.Strings(shapes)
	pairs := make([]string, 0, len(shapes))
	for _, shape := range shapes {
		pairs = append(pairs, fmt.Sprintf("%s: %d", shape, shapeCounts[survey.Shape(shape)]))
	}

	source := "header inference"
	if p.hasDefs {
		source = "✓ definition metadata"
	}

	return fmt.Sprintf(`            <div class="debug-info">
                <strong>🔧 Debug:</strong>
                Run: %s |
                Questions: %d (%s) |
                Respondents: %d |
                Source: %s
            </div>
`, uuid.NewString(), len(p.questions), strings.Join(pairs, ", "), respondents, source)
}

func writeQuestionCard(b *strings.Builder, q *survey.Question, p buildParams, respondents []csvio.Respondent) {
	var answered []csvio.Respondent
	for _, resp := range respondents {
		if render.HasResponse(q, p.table, resp.Index) {
			answered = append(answered, resp)
		}
	}

	meta := ""
	if p.debug {
		meta = fmt.Sprintf(
			"<div class='question-meta'>shape: %s | internal: %s | cols: %d | responses: %d</div>",
			q.Shape, q.InternalType, len(q.Columns), len(answered))
	}

	fmt.Fprintf(b, `
        <div class="question-card">
            <div class="question-header">
                <div class="question-number">%s</div>
                %s
                <div class="question-text">%s</div>
            </div>
            <div class="responses-list">
`, html.EscapeString(q.ID), meta, html.EscapeString(q.Text))

	if len(answered) == 0 {
		b.WriteString(`<div class="no-responses">No responses</div>`)
	} else {
		singleClass := ""
		if len(answered) == 1 {
			singleClass = " single-response"
		}
		for _, resp := range answered {
			fmt.Fprintf(b, `
                <div class="respondent-row%s">
                    <div class="respondent-name">%s</div>
                    <div class="respondent-answer">%s</div>
                </div>
`, singleClass, respondentHeader(resp), p.renderer.RenderResponse(q, p.table, resp.Index))
		}
	}

	b.WriteString(`
            </div>
        </div>
`)
}

// respondentHeader renders the name line of a response, with the response id
// as monospace metadata when known.
func respondentHeader(resp csvio.Respondent) string {
	h := fmt.Sprintf("<span class='respondent-name-main'>%s</span>", html.EscapeString(resp.Name))
	if resp.ID != "" {
		h += fmt.Sprintf("<span class='respondent-meta'>Response: %s</span>", html.EscapeString(resp.ID))
	}
	return h
}
