package csvio

import (
	"fmt"
	"strings"
)

// Respondent is one response row with its resolved identity.
type Respondent struct {
	Index int    // zero-based row index in the table
	Name  string // resolved display name
	ID    string // ResponseId, may be empty
	Email string // RecipientEmail, may be empty
}

// RespondentInfo resolves the identity for a response row. Display name
// priority: recipient name, email, external reference, response id; rows with
// none of those become "Anonymous #N" using the one-based row number.
func (t *Table) RespondentInfo(row int) Respondent {
	first := strings.TrimSpace(t.Value(row, "RecipientFirstName"))
	last := strings.TrimSpace(t.Value(row, "RecipientLastName"))
	email := strings.TrimSpace(t.Value(row, "RecipientEmail"))
	extRef := strings.TrimSpace(t.Value(row, "ExternalReference"))
	id := strings.TrimSpace(t.Value(row, "ResponseId"))

	var name string
	switch {
	case first != "":
		name = strings.TrimSpace(first + " " + last)
	case email != "":
		name = email
	case extRef != "":
		name = extRef
	case id != "":
		name = id
	default:
		name = fmt.Sprintf("Anonymous #%d", row+1)
	}

	return Respondent{Index: row, Name: name, ID: id, Email: email}
}

// DisplayName resolves just the display name for a response row.
func (t *Table) DisplayName(row int) string {
	return t.RespondentInfo(row).Name
}

// Respondents resolves identities for every response row.
func (t *Table) Respondents() []Respondent {
	out := make([]Respondent, len(t.Rows))
	for i := range t.Rows {
		out[i] = t.RespondentInfo(i)
	}
	return out
}
