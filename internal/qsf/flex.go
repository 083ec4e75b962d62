package qsf

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Definition files are loosely typed: identifiers appear as numbers or
// strings, label entries as bare strings or {Display, Text} objects, and some
// scalar fields hold numbers. The flex types below absorb those variations so
// the parser proper deals only in strings.

// flexString unmarshals a JSON string, number or boolean into its string form.
// null and empty values become "".
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" || string(data) == "false" {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexString(n.String())
		return nil
	}
	return fmt.Errorf("unsupported scalar %s", string(data))
}

func (f flexString) String() string { return strings.TrimSpace(string(f)) }

// idList unmarshals an ordering list whose members may be numbers or strings,
// normalizing every identifier to its string form.
type idList []string

func (l *idList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*l = nil
		return nil
	}
	var raw []flexString
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make([]string, 0, len(raw))
	for _, id := range raw {
		out = append(out, id.String())
	}
	*l = out
	return nil
}

// labelEntry is one choice/answer entry: either a bare string or an object
// with Display (preferred) and Text (fallback) fields.
type labelEntry struct {
	scalar  string
	display string
	text    string
	isObj   bool
}

func (e *labelEntry) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var obj struct {
			Display flexString `json:"Display"`
			Text    flexString `json:"Text"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		e.isObj = true
		e.display = obj.Display.String()
		e.text = obj.Text.String()
		return nil
	}
	var s flexString
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	e.scalar = s.String()
	return nil
}

// displayOr returns the entry's best label, else the given fallback.
func (e labelEntry) displayOr(fallback string) string {
	if e.isObj {
		if e.display != "" {
			return e.display
		}
		if e.text != "" {
			return e.text
		}
		return fallback
	}
	if e.scalar != "" {
		return e.scalar
	}
	return fallback
}

// labelMap is an id->labelEntry object that records document key order, since
// definitions without an explicit ordering list rely on it.
type labelMap struct {
	keys    []string
	entries map[string]labelEntry
}

func (m *labelMap) UnmarshalJSON(data []byte) error {
	m.keys = nil
	m.entries = make(map[string]labelEntry)

	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	// Some exports serialize an empty label set as [].
	if data[0] == '[' {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key := fmt.Sprintf("%v", keyTok)

		var entry labelEntry
		if err := dec.Decode(&entry); err != nil {
			return err
		}

		if _, seen := m.entries[key]; !seen {
			m.keys = append(m.keys, key)
		}
		m.entries[key] = entry
	}
	return nil
}
