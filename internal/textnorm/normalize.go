// Package textnorm cleans question and label text coming from survey
// definitions and export headers: entity decoding, markup stripping,
// boilerplate removal and whitespace normalization.
package textnorm

import (
	"html"
	"regexp"
	"strings"

	xhtml "golang.org/x/net/html"
)

// Boilerplate phrases that clutter question text: administrative notices,
// due-date reminders, carry-over notices. Matched case-insensitively and
// replaced with a space.
var boilerplatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\s*See Email Titled\s*"[^"]*"[^.]*\.?\s*`),
	regexp.MustCompile(`(?i)\s*See Email Titled[^.]*\.?\s*`),
	regexp.MustCompile(`(?i)\s*This data is rolled over from last year\.?\s*`),
	regexp.MustCompile(`(?i)\s*This question is used in the Rankings calculation\.?\s*`),
	regexp.MustCompile(`(?i)\s*RESPONSE NEEDED\s*`),
	regexp.MustCompile(`(?i)\s*ACTION NEEDED\s*`),
	regexp.MustCompile(`(?i)\s*DUE \d{1,2}/\d{1,2}[^.]*\.?\s*`),
	regexp.MustCompile(`(?i)\s*for PDF of Results from Last Year\.?\s*`),
	regexp.MustCompile(`(?i)\s*-\s*U\.S\. News Best Medical Schools Survey\s*`),
	regexp.MustCompile(`(?i)\s*U\.S\. News Best Medical Schools Survey\s*`),
	regexp.MustCompile(`(?i)\s*Click to write the question text\s*`),
	regexp.MustCompile(`(?i)\s*Please answer the following\.?\s*`),
}

var (
	whitespaceRe   = regexp.MustCompile(`\s+`)
	leadingDashRe  = regexp.MustCompile(`^\s*-\s*`)
	trailingDashRe = regexp.MustCompile(`\s*-\s*$`)
	doubleDashRe   = regexp.MustCompile(`\s*-\s*-\s*`)
	blankLinesRe   = regexp.MustCompile(`\n{2,}`)
	tabsRe         = regexp.MustCompile(`\t+`)
	dateRangeRe    = regexp.MustCompile(`(\d{4})\s*-\s*(\d{4})`)
	headerSplitRe  = regexp.MustCompile(`\s+-\s+`)
)

// Normalize decodes markup entities, strips tags, removes boilerplate phrases
// and collapses whitespace. Normalizing already-normalized text is a no-op.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	// Entities first, so encoded tags get stripped too.
	text = html.UnescapeString(text)
	text = stripTags(text)

	for _, pat := range boilerplatePatterns {
		text = pat.ReplaceAllString(text, " ")
	}

	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

// stripTags removes markup tags, keeping text content separated by spaces.
// Plain text without tags passes through untouched apart from entity decoding.
func stripTags(text string) string {
	if !strings.Contains(text, "<") {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	tok := xhtml.NewTokenizer(strings.NewReader(text))
	for {
		tt := tok.Next()
		if tt == xhtml.ErrorToken {
			return b.String()
		}
		if tt == xhtml.TextToken {
			b.WriteString(tok.Token().Data)
			b.WriteByte(' ')
		}
	}
}

// CleanHeader removes boilerplate and formatting artifacts from a CSV header
// cell: stray leading/trailing/doubled hyphens, blank lines and tab runs.
func CleanHeader(text string) string {
	if text == "" {
		return ""
	}

	for _, pat := range boilerplatePatterns {
		text = pat.ReplaceAllString(text, " ")
	}

	text = leadingDashRe.ReplaceAllString(text, "")
	text = trailingDashRe.ReplaceAllString(text, "")
	text = doubleDashRe.ReplaceAllString(text, " ")
	text = blankLinesRe.ReplaceAllString(text, " ")
	text = tabsRe.ReplaceAllString(text, " ")

	return strings.TrimSpace(strings.Join(strings.Fields(text), " "))
}

// SplitHeader extracts (question text, row label, column label) from a matrix
// column header of the form "Question Text - Row Label - Column Label".
// Embedded four-digit year ranges like "2024 - 2025" are protected from the
// split. Missing segments come back empty.
func SplitHeader(text string) (question, rowLabel, colLabel string) {
	cleaned := CleanHeader(text)
	if cleaned == "" {
		return "", "", ""
	}

	const marker = "\x00DATERANGE\x00"
	protected := dateRangeRe.ReplaceAllString(cleaned, "$1"+marker+"$2")

	parts := headerSplitRe.Split(protected, -1)
	for i, p := range parts {
		parts[i] = strings.ReplaceAll(p, marker, " - ")
	}

	switch {
	case len(parts) >= 3:
		return strings.Join(parts[:len(parts)-2], " - "), parts[len(parts)-2], parts[len(parts)-1]
	case len(parts) == 2:
		return parts[0], parts[1], ""
	default:
		return cleaned, "", ""
	}
}
