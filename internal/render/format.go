// Package render turns classified response values and resolved question
// structures into HTML fragments for the report body.
package render

import (
	"encoding/json"
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"

	"qualreport/internal/classify"
	"qualreport/internal/config"
)

// Renderer formats values and responses. It owns the value classifier so tag
// selection and formatting stay in lockstep.
type Renderer struct {
	cfg        config.HeuristicsConfig
	classifier *classify.Classifier
}

// New returns a Renderer over the given heuristic thresholds.
func New(cfg config.HeuristicsConfig) *Renderer {
	return &Renderer{cfg: cfg, classifier: classify.New(cfg)}
}

var coordinatePair = regexp.MustCompile(`(\d+\.?\d*)\s*[,:]\s*(\d+\.?\d*)`)

// FormatValue classifies the value and renders it with the matching
// formatter. Formatters escape their input, so the result is safe to embed.
func (r *Renderer) FormatValue(value, questionText, columnID string) string {
	switch r.classifier.Classify(value, questionText, columnID) {
	case classify.TagEmpty:
		return FormatEmpty()
	case classify.TagTiming:
		return formatTiming(value, columnID)
	case classify.TagURL:
		return formatURL(value)
	case classify.TagFile:
		return formatFile(value)
	case classify.TagCoordinate:
		return formatCoordinate(value)
	case classify.TagJSON:
		return formatJSON(value)
	case classify.TagHierarchical:
		return formatHierarchical(value)
	case classify.TagPipeList:
		return formatList(value, "|")
	case classify.TagSemicolonList:
		return formatList(value, ";")
	case classify.TagCommaList:
		return formatList(value, ",")
	case classify.TagLongText:
		return formatLongText(value)
	case classify.TagCode:
		return formatCode(value)
	default:
		return formatText(value)
	}
}

// FormatEmpty renders the no-response indicator.
func FormatEmpty() string {
	return "<span class='no-response'>No response</span>"
}

func formatText(value string) string {
	return strings.ReplaceAll(html.EscapeString(strings.TrimSpace(value)), "\n", "<br>")
}

// formatCode marks internal selection codes so the reader knows the export
// held a code, not display text.
func formatCode(value string) string {
	v := strings.TrimSpace(value)
	if strings.Contains(v, ",") {
		parts := strings.Split(v, ",")
		for i, p := range parts {
			parts[i] = strings.TrimSpace(p)
		}
		return fmt.Sprintf("<span class='code-value'>[Selections: %s]</span>", strings.Join(parts, ", "))
	}
	return fmt.Sprintf("<span class='code-value'>[Code: %s]</span>", v)
}

func formatURL(value string) string {
	v := strings.TrimSpace(value)
	href := v
	if !strings.HasPrefix(v, "http://") && !strings.HasPrefix(v, "https://") {
		href = "https://" + v
	}
	return fmt.Sprintf("<a href='%s' target='_blank' class='url-link'>%s</a>",
		html.EscapeString(href), html.EscapeString(v))
}

func formatFile(value string) string {
	v := strings.TrimSpace(value)
	if classify.IsURL(v) {
		parts := strings.Split(v, "/")
		filename := parts[len(parts)-1]
		return fmt.Sprintf("<span class='file-upload'>📎 <a href='%s' target='_blank'>%s</a></span>",
			html.EscapeString(v), html.EscapeString(filename))
	}
	return fmt.Sprintf("<span class='file-upload'>📎 %s</span>", html.EscapeString(v))
}

func formatCoordinate(value string) string {
	v := strings.TrimSpace(value)
	if m := coordinatePair.FindStringSubmatch(v); m != nil {
		return fmt.Sprintf("<span class='coordinate'>📍 X: %s, Y: %s</span>", m[1], m[2])
	}
	return fmt.Sprintf("<span class='coordinate'>📍 %s</span>", html.EscapeString(v))
}

// formatTiming renders page/click timing metadata with a friendly label and
// duration.
func formatTiming(value, columnID string) string {
	v := strings.TrimSpace(value)

	var label string
	switch {
	case strings.Contains(columnID, "Page Submit") || strings.Contains(columnID, "PageSubmit"):
		label = "Page time"
	case strings.Contains(columnID, "First Click") || strings.Contains(columnID, "FirstClick"):
		label = "First click"
	case strings.Contains(columnID, "Last Click") || strings.Contains(columnID, "LastClick"):
		label = "Last click"
	case strings.Contains(columnID, "Click Count") || strings.Contains(columnID, "ClickCount"):
		return fmt.Sprintf("<span class='timing'>🖱️ Clicks: %s</span>", html.EscapeString(v))
	default:
		label = "Time"
	}

	seconds, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Sprintf("<span class='timing'>⏱️ %s: %s</span>", label, html.EscapeString(v))
	}
	if seconds >= 60 {
		return fmt.Sprintf("<span class='timing'>⏱️ %s: %dm %ds</span>",
			label, int(seconds)/60, int(seconds)%60)
	}
	return fmt.Sprintf("<span class='timing'>⏱️ %s: %.1fs</span>", label, seconds)
}

func formatJSON(value string) string {
	v := strings.TrimSpace(value)
	var data any
	if err := json.Unmarshal([]byte(v), &data); err == nil {
		if pretty, err := json.MarshalIndent(data, "", "  "); err == nil {
			return fmt.Sprintf("<pre class='json-data'>%s</pre>", html.EscapeString(string(pretty)))
		}
	}
	return fmt.Sprintf("<pre class='json-data'>%s</pre>", html.EscapeString(v))
}

func formatHierarchical(value string) string {
	v := strings.TrimSpace(value)

	parts := []string{v}
	for _, sep := range []string{" >> ", " → ", " > "} {
		if strings.Contains(v, sep) {
			parts = strings.Split(v, sep)
			break
		}
	}

	var b strings.Builder
	b.WriteString("<div class='drill-down'>")
	for i, part := range parts {
		if i > 0 {
			b.WriteString("<span class='drill-arrow'>›</span>")
		}
		fmt.Fprintf(&b, "<span class='drill-level'>%s</span>", html.EscapeString(strings.TrimSpace(part)))
	}
	b.WriteString("</div>")
	return b.String()
}

func formatList(value, separator string) string {
	var parts []string
	for _, p := range strings.Split(value, separator) {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return FormatEmpty()
	}

	var b strings.Builder
	b.WriteString("<ul class='vertical-list'>")
	for _, p := range parts {
		fmt.Fprintf(&b, "<li>%s</li>", html.EscapeString(p))
	}
	b.WriteString("</ul>")
	return b.String()
}

func formatLongText(value string) string {
	v := strings.TrimSpace(value)

	var paragraphs []string
	for _, p := range strings.Split(v, "\n") {
		if p = strings.TrimSpace(p); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}

	if len(paragraphs) > 1 {
		var b strings.Builder
		b.WriteString("<div class='long-text'>")
		for _, p := range paragraphs {
			fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(p))
		}
		b.WriteString("</div>")
		return b.String()
	}
	return fmt.Sprintf("<div class='long-text'>%s</div>", html.EscapeString(v))
}
