package batch

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hadi16/rexnfa/internal/rexerr"
)

func TestDecodeWellFormed(t *testing.T) {
	doc := `[{"regex":"ab*","strings":["a","ab","abb"]},{"regex":"[a-c]+","strings":["abc"]}]`
	records, err := Decode([]byte(doc))
	require.Nil(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "ab*", records[0].Regex)
	assert.Equal(t, []string{"a", "ab", "abb"}, records[0].Strings)
	assert.Equal(t, "[a-c]+", records[1].Regex)
}

func TestDecodeRejectsNonArray(t *testing.T) {
	_, err := Decode([]byte(`{"regex":"a","strings":[]}`))
	require.NotNil(t, err)
	assert.Equal(t, rexerr.BatchFormat, err.Kind)
}

func TestDecodeRejectsMissingField(t *testing.T) {
	_, err := Decode([]byte(`[{"strings":["a"]}]`))
	require.NotNil(t, err)
	assert.Equal(t, rexerr.BatchFormat, err.Kind)

	_, err = Decode([]byte(`[{"regex":"a"}]`))
	require.NotNil(t, err)
	assert.Equal(t, rexerr.BatchFormat, err.Kind)
}

func TestDecodeRejectsNonStringCandidate(t *testing.T) {
	_, err := Decode([]byte(`[{"regex":"a","strings":[1,2]}]`))
	require.NotNil(t, err)
	assert.Equal(t, rexerr.BatchFormat, err.Kind)
}

func TestRunPerRecordErrorDoesNotAbortBatch(t *testing.T) {
	records := []Record{
		{Regex: "a(b", Strings: []string{"ab"}},
		{Regex: "ab*", Strings: []string{"a", "ab", "abb"}},
	}
	results, ordered := Run(records)
	require.Len(t, results, 2)

	assert.NotEmpty(t, results[0].Error)
	assert.Nil(t, results[0].Strings)
	assert.Error(t, ordered[0].Err)

	assert.Empty(t, results[1].Error)
	assert.Equal(t, map[string]bool{"a": true, "ab": true, "abb": true}, results[1].Strings)
	require.Len(t, ordered[1].Entries, 3)
	assert.Equal(t, OrderedEntry{Candidate: "a", Accepted: true}, ordered[1].Entries[0])
}

func TestRunPreservesDuplicateOrder(t *testing.T) {
	records := []Record{
		{Regex: "ab*", Strings: []string{"a", "a", "xyz", "a"}},
	}
	results, ordered := Run(records)

	// the map form collapses duplicates
	assert.Len(t, results[0].Strings, 2)

	// the ordered form keeps every occurrence, in position
	require.Len(t, ordered[0].Entries, 4)
	assert.Equal(t, "a", ordered[0].Entries[0].Candidate)
	assert.Equal(t, "a", ordered[0].Entries[1].Candidate)
	assert.Equal(t, "xyz", ordered[0].Entries[2].Candidate)
	assert.Equal(t, "a", ordered[0].Entries[3].Candidate)
	assert.True(t, ordered[0].Entries[3].Accepted)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	records, err := Decode([]byte(`[{"regex":"a+","strings":["a","aa","b"]}]`))
	require.Nil(t, err)

	results, _ := Run(records)
	encoded, encErr := Encode(results)
	require.NoError(t, encErr)

	var roundTripped []Result
	require.NoError(t, json.Unmarshal(encoded, &roundTripped))
	require.Len(t, roundTripped, 1)
	assert.Equal(t, results[0].Regex, roundTripped[0].Regex)
	assert.Equal(t, results[0].Strings, roundTripped[0].Strings)
}
