package classify

import (
	"regexp"
	"strings"
)

var datePattern = regexp.MustCompile(`^\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4}$`)

// ValuesAreNumericData reports whether a column's values are numeric data
// points rather than categorical selections. Numeric columns render as data
// tables instead of checkmark grids.
func (c *Classifier) ValuesAreNumericData(values []string) bool {
	var nonEmpty []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			nonEmpty = append(nonEmpty, v)
		}
	}
	if len(nonEmpty) == 0 {
		return false
	}

	numeric := 0
	for _, v := range nonEmpty {
		if IsNumericValue(v) {
			numeric++
		}
	}
	ratio := float64(numeric) / float64(len(nonEmpty))

	if ratio >= 0.7 {
		return true
	}

	// Many distinct values with a moderate numeric ratio also reads as data
	unique := make(map[string]struct{}, len(nonEmpty))
	for _, v := range nonEmpty {
		unique[v] = struct{}{}
	}
	return len(unique) > 5 && ratio >= 0.5
}

// ValuesAreUniqueData reports whether a column's values are distinct data
// entries (names, emails, dates) rather than repeated categorical selections.
func (c *Classifier) ValuesAreUniqueData(values []string) bool {
	var nonEmpty []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			nonEmpty = append(nonEmpty, v)
		}
	}
	if len(nonEmpty) == 0 {
		return false
	}

	unique := make(map[string]struct{}, len(nonEmpty))
	for _, v := range nonEmpty {
		unique[v] = struct{}{}
	}
	if float64(len(unique))/float64(len(nonEmpty)) > c.cfg.UniqueRatioMax {
		return true
	}

	// Variable lengths across many distinct values suggests data
	if len(unique) > 5 {
		lengths := make(map[int]struct{})
		for v := range unique {
			lengths[len(v)] = struct{}{}
		}
		if len(lengths) > 3 {
			return true
		}
	}

	patterned := 0
	for _, v := range nonEmpty {
		switch {
		case strings.Contains(v, "@") && strings.Contains(v, "."):
			patterned++
		case datePattern.MatchString(v):
			patterned++
		case len(strings.Fields(v)) >= 2 && len(v) > 10:
			patterned++
		}
	}
	return patterned > 0 && float64(patterned) >= float64(len(nonEmpty))*0.3
}
