// Package classify assigns a semantic type tag to raw response values. The
// tag drives which formatter renders the value; classification itself is a
// pure function of (value, question text, column identifier).
package classify

import (
	"regexp"
	"strconv"
	"strings"

	"qualreport/internal/config"
)

// Tag is a value's semantic category.
type Tag string

const (
	TagEmpty         Tag = "empty"
	TagTiming        Tag = "timing"
	TagURL           Tag = "url"
	TagFile          Tag = "file"
	TagCoordinate    Tag = "coordinate"
	TagJSON          Tag = "json"
	TagHierarchical  Tag = "hierarchical"
	TagPipeList      Tag = "pipe_list"
	TagSemicolonList Tag = "semicolon_list"
	TagCommaList     Tag = "comma_list"
	TagLongText      Tag = "long_text"
	TagCode          Tag = "code"
	TagText          Tag = "text"
)

// timingSuffixes mark the page/click timing columns the export system appends
// automatically; both spaced and compact spellings occur in the wild.
var timingSuffixes = []string{
	"_Page Submit", "_First Click", "_Last Click", "_Click Count",
	"_PageSubmit", "_FirstClick", "_LastClick", "_ClickCount",
}

var urlPrefixes = []string{"http://", "https://", "www.", "ftp://"}

var fileExtensions = []string{
	".pdf", ".doc", ".docx", ".xls", ".xlsx", ".jpg", ".jpeg",
	".png", ".gif", ".mp3", ".mp4", ".zip", ".csv", ".txt",
}

// numericQuestionKeywords mark questions whose small-integer answers are real
// data rather than internal selection codes.
var numericQuestionKeywords = []string{
	"number", "count", "total", "how many", "percent", "%",
	"year", "age", "score", "gpa", "mcat", "credits", "hours",
	"fee", "tuition", "salary", "amount", "$", "usd", "dollar",
	"phone", "zip", "code", "id", "size", "rate", "ratio",
	"enrollment", "residents", "men", "women", "graduates",
	"indebtedness", "funds", "faculty", "research", "nih",
	"rank", "rating", "scale", "slider", "nps",
}

var coordinatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\d+\.?\d*\s*,\s*\d+\.?\d*$`),
	regexp.MustCompile(`(?i)^\(\d+\.?\d*\s*,\s*\d+\.?\d*\)$`),
	regexp.MustCompile(`(?i)^\d+\.?\d*\s*:\s*\d+\.?\d*$`),
	regexp.MustCompile(`(?i)^x:\s*\d+\.?\d*\s*,?\s*y:\s*\d+\.?\d*$`),
}

// Classifier tags values using tunable heuristic thresholds.
type Classifier struct {
	cfg config.HeuristicsConfig
}

// New returns a Classifier using the given thresholds.
func New(cfg config.HeuristicsConfig) *Classifier {
	return &Classifier{cfg: cfg}
}

// rule is one predicate in the decision list. Rules are evaluated in order
// and the first match wins, so precedence lives in the slice, not in nested
// conditionals.
type rule struct {
	tag   Tag
	match func(c *Classifier, value, questionText, columnID string) bool
}

// rules is the ordered decision list. Structural patterns (coordinate, JSON,
// hierarchical, delimited lists) come before the generic long-text and
// numeric-code heuristics: a long delimited list is a list, not prose, and a
// numeric list is a code, not a comma list (the list predicates exclude
// all-digit parts themselves). file precedes url so a linked document keeps
// its file tag.
var rules = []rule{
	{TagEmpty, func(c *Classifier, v, q, col string) bool { return IsEmpty(v) }},
	{TagTiming, func(c *Classifier, v, q, col string) bool { return IsTimingColumn(col) }},
	{TagFile, func(c *Classifier, v, q, col string) bool { return IsFilePath(v) }},
	{TagURL, func(c *Classifier, v, q, col string) bool { return IsURL(v) }},
	{TagCoordinate, func(c *Classifier, v, q, col string) bool { return IsCoordinate(v) }},
	{TagJSON, func(c *Classifier, v, q, col string) bool { return IsJSON(v) }},
	{TagHierarchical, func(c *Classifier, v, q, col string) bool { return IsHierarchical(v) }},
	{TagPipeList, func(c *Classifier, v, q, col string) bool { return c.isMultiValue(v, "|") }},
	{TagSemicolonList, func(c *Classifier, v, q, col string) bool { return c.isMultiValue(v, ";") }},
	{TagCommaList, func(c *Classifier, v, q, col string) bool { return c.isMultiValue(v, ",") }},
	{TagLongText, func(c *Classifier, v, q, col string) bool {
		return len(strings.TrimSpace(v)) > c.cfg.LongTextThreshold
	}},
	{TagCode, func(c *Classifier, v, q, col string) bool { return c.IsNumericCode(v, q) }},
	{TagText, func(c *Classifier, v, q, col string) bool { return true }},
}

// Classify returns the value's tag. It is total: every value gets exactly one
// tag, and TagEmpty is returned iff the value is blank after trimming.
func (c *Classifier) Classify(value, questionText, columnID string) Tag {
	for _, r := range rules {
		if r.match(c, value, questionText, columnID) {
			return r.tag
		}
	}
	return TagText
}

// IsEmpty reports whether the value is blank after whitespace trimming.
func IsEmpty(value string) bool {
	return strings.TrimSpace(value) == ""
}

// IsTimingColumn reports whether the column identifier carries one of the
// timing-metadata suffixes.
func IsTimingColumn(columnID string) bool {
	for _, suffix := range timingSuffixes {
		if strings.Contains(columnID, suffix) {
			return true
		}
	}
	return false
}

// IsURL reports whether the value starts with a known URL prefix.
func IsURL(value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	for _, p := range urlPrefixes {
		if strings.HasPrefix(v, p) {
			return true
		}
	}
	return false
}

// IsFilePath reports whether the value ends in a known file extension.
func IsFilePath(value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	for _, ext := range fileExtensions {
		if strings.HasSuffix(v, ext) {
			return true
		}
	}
	return false
}

// IsCoordinate reports whether the value matches a numeric-pair pattern such
// as heat map click data.
func IsCoordinate(value string) bool {
	v := strings.TrimSpace(value)
	for _, p := range coordinatePatterns {
		if p.MatchString(v) {
			return true
		}
	}
	return false
}

// IsJSON reports whether the value is brace- or bracket-delimited at both
// ends. Content is not validated; embedded structures render verbatim.
func IsJSON(value string) bool {
	v := strings.TrimSpace(value)
	return (strings.HasPrefix(v, "{") && strings.HasSuffix(v, "}")) ||
		(strings.HasPrefix(v, "[") && strings.HasSuffix(v, "]"))
}

// IsHierarchical reports whether the value contains a breadcrumb separator.
func IsHierarchical(value string) bool {
	return strings.Contains(value, " > ") ||
		strings.Contains(value, " >> ") ||
		strings.Contains(value, " → ")
}

// IsNumericValue reports whether the value parses as a number after removing
// common formatting characters (thousands commas, currency, percent).
func IsNumericValue(value string) bool {
	v := strings.TrimSpace(value)
	if v == "" {
		return false
	}
	cleaned := strings.NewReplacer(",", "", "$", "", "%", "").Replace(v)
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return false
	}
	_, err := strconv.ParseFloat(cleaned, 64)
	return err == nil
}

// IsNumericCode reports whether the value looks like an internal selection
// code instead of real numeric data. Questions that ask for a number keep
// their numeric values; detection is a heuristic over the export system's
// coding conventions and can misjudge small ratings when the question text
// lacks a recognized numeric keyword.
func (c *Classifier) IsNumericCode(value, questionText string) bool {
	v := strings.TrimSpace(value)
	if v == "" {
		return false
	}

	if containsAny(questionText, numericQuestionKeywords) {
		return false
	}

	// Comma-separated small numbers are multi-select codes
	if strings.Contains(v, ",") {
		parts := strings.Split(v, ",")
		allCodes := true
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if !isAllDigits(p) || len(p) > 3 {
				allCodes = false
				break
			}
		}
		if allCodes {
			return true
		}
	}

	if isAllDigits(v) {
		n, err := strconv.Atoi(v)
		if err != nil {
			return false
		}
		if n >= 1 && n <= c.cfg.NumericCodeMax {
			return true
		}
		// Non-round numbers in the recode range are codes
		if n >= c.cfg.NumericCodeRangeMin && n <= c.cfg.NumericCodeRangeMax && n%100 != 0 {
			return true
		}
	}

	return false
}

// isMultiValue reports whether the value splits on the separator into a
// genuine list: at least two parts longer than two characters, modest average
// part length, and neither an all-digit code list nor a coordinate.
func (c *Classifier) isMultiValue(value, separator string) bool {
	if !strings.Contains(value, separator) {
		return false
	}

	parts := strings.Split(value, separator)

	allCodes := true
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if !isAllDigits(p) || len(p) > 3 {
			allCodes = false
			break
		}
	}
	if allCodes {
		return false
	}

	if IsCoordinate(value) {
		return false
	}

	var textParts []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); len(p) > 2 {
			textParts = append(textParts, p)
		}
	}
	if len(textParts) < 2 {
		return false
	}

	total := 0
	for _, p := range textParts {
		total += len(p)
	}
	return float64(total)/float64(len(textParts)) <= float64(c.cfg.MultiValueAvgLengthMax)
}

func containsAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
