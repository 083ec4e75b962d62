package survey

import (
	"sort"
	"strconv"
	"strings"
)

// SortedRowKeys orders row keys numerically first (1, 2, 10), then
// alphabetically case-insensitive, so rows display in the order a reader
// expects rather than lexicographic string order.
func SortedRowKeys(rows map[string]*Row) []string {
	keys := make([]string, 0, len(rows))
	for k := range rows {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return rowKeyLess(keys[i], keys[j])
	})
	return keys
}

func rowKeyLess(a, b string) bool {
	aNum := allDigits(a)
	bNum := allDigits(b)
	switch {
	case aNum && bNum:
		an, _ := strconv.Atoi(a)
		bn, _ := strconv.Atoi(b)
		return an < bn
	case aNum:
		return true
	case bNum:
		return false
	default:
		return strings.ToLower(a) < strings.ToLower(b)
	}
}

// allDigits reports whether the key is an unsigned run of digits. Signed
// tokens like "+3" sort with the alphabetic keys.
func allDigits(s string) bool {
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
