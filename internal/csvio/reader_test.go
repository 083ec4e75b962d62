package csvio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleExport = "\xef\xbb\xbf" + `ResponseId,RecipientFirstName,RecipientLastName,RecipientEmail,ExternalReference,Q1,Q2_1
Response ID,First Name,Last Name,Email,External Reference,What is your role?,Rate - Curriculum
"{""ImportId"":""_recordId""}","{""ImportId"":""firstName""}","{""ImportId"":""lastName""}","{""ImportId"":""email""}","{""ImportId"":""externalDataReference""}","{""ImportId"":""QID1""}","{""ImportId"":""QID2_1""}"
R_1,Ada,Lovelace,ada@example.edu,,Dean,Agree
R_2,,,bob@example.edu,,Faculty,Disagree
R_3,,,,EXT-9,Staff,
R_4,,,,,,Agree
R_5
`

func TestRead(t *testing.T) {
	table, err := Read([]byte(sampleExport))
	require.NoError(t, err)

	assert.Equal(t, 7, len(table.ColumnIDs), "byte order mark must not pollute the first column id")
	assert.Equal(t, "ResponseId", table.ColumnIDs[0])
	assert.Len(t, table.Rows, 5, "the import metadata row is not a respondent")
	assert.Equal(t, "What is your role?", table.Headers["Q1"])

	assert.Equal(t, "Dean", table.Value(0, "Q1"))
	assert.Equal(t, "", table.Value(4, "Q2_1"), "short rows are padded, not out of range")
	assert.Equal(t, []string{"Dean", "Faculty", "Staff", "", ""}, table.Column("Q1"))
	assert.Nil(t, table.Column("Q99"))
	assert.True(t, table.HasColumn("Q2_1"))
	assert.False(t, table.HasColumn("Q2_2"))
}

func TestRead_NoMetadataRow(t *testing.T) {
	data := "Q1\nQuestion one\nanswer a\nanswer b\n"
	table, err := Read([]byte(data))
	require.NoError(t, err)
	assert.Len(t, table.Rows, 2)
	assert.Equal(t, "answer a", table.Value(0, "Q1"))
}

func TestRead_HeadersOnly(t *testing.T) {
	table, err := Read([]byte("Q1\nQuestion one\n"))
	require.NoError(t, err)
	assert.Empty(t, table.Rows)

	_, err = Read([]byte("Q1\n"))
	assert.Error(t, err)
}

func TestDisplayName(t *testing.T) {
	table, err := Read([]byte(sampleExport))
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", table.DisplayName(0))
	assert.Equal(t, "bob@example.edu", table.DisplayName(1))
	assert.Equal(t, "EXT-9", table.DisplayName(2))
	assert.Equal(t, "R_4", table.DisplayName(3))
	assert.Equal(t, "R_5", table.DisplayName(4))
}

func TestDisplayName_Anonymous(t *testing.T) {
	table, err := Read([]byte("Q1\nQuestion one\nhello\n"))
	require.NoError(t, err)
	assert.Equal(t, "Anonymous #1", table.DisplayName(0))

	names := table.Respondents()
	require.Len(t, names, 1)
	assert.Equal(t, "Anonymous #1", names[0].Name)
}

func TestIsMetadataColumn(t *testing.T) {
	assert.True(t, IsMetadataColumn("ResponseId"))
	assert.True(t, IsMetadataColumn("Duration (in seconds)"))
	assert.True(t, IsMetadataColumn("Q_BallotBoxStuffing"))
	assert.False(t, IsMetadataColumn("Q1"))
	assert.False(t, IsMetadataColumn("Q1_TEXT"))
}
