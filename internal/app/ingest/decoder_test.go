package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evtxview/internal/app/errors"
)

func Test_Decoder_Decode(t *testing.T) {
	decoder := NewDecoder()

	tests := []struct {
		name     string
		doc      string
		eventID  uint32
		user     string
		recordID uint64
		provider string
		level    int
	}{
		{
			name:    "plain number",
			doc:     `{"System":{"EventID":4624}}`,
			eventID: 4624,
		},
		{
			name:     "event wrapper with attributes",
			doc:      `{"Event":{"System":{"EventID":4625,"EventRecordID":77,"Level":4,"Provider":{"#attributes":{"Name":"Microsoft-Windows-Security-Auditing"}},"Security":{"#attributes":{"UserID":"S-1-5-18"}}}}}`,
			eventID:  4625,
			user:     "S-1-5-18",
			recordID: 77,
			provider: "Microsoft-Windows-Security-Auditing",
			level:    4,
		},
		{
			name:    "event id text object",
			doc:     `{"System":{"EventID":{"#attributes":{"Qualifiers":16384},"#text":7036}}}`,
			eventID: 7036,
		},
		{
			name:    "event id value object",
			doc:     `{"System":{"EventID":{"Value":"1102"}}}`,
			eventID: 1102,
		},
		{
			name:    "numeric string",
			doc:     `{"System":{"EventID":" 42 ","Security":{"UserID":"S-1-5-21-1"}}}`,
			eventID: 42,
			user:    "S-1-5-21-1",
		},
		{
			name:    "empty user is absent",
			doc:     `{"System":{"EventID":1,"Security":{"#attributes":{"UserID":""}}}}`,
			eventID: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := decoder.Decode([]byte(tt.doc), "Security.jsonl")
			require.NoError(t, err)

			assert.Equal(t, tt.eventID, r.EventID)
			assert.Equal(t, tt.user, r.User)
			assert.Equal(t, tt.recordID, r.RecordID)
			assert.Equal(t, tt.provider, r.Provider)
			assert.Equal(t, tt.level, r.Level)
			assert.Equal(t, "Security.jsonl", r.Origin)
			assert.JSONEq(t, tt.doc, string(r.Payload))
		})
	}
}

func Test_Decoder_Fields(t *testing.T) {
	doc := `{"Event":{"System":{"EventID":4688,"Computer":"DC01","Channel":"Security",` +
		`"TimeCreated":{"#attributes":{"SystemTime":"2024-03-01T10:20:30.123456Z"}}},"EventData":{"NewProcessName":"cmd.exe"}}}`

	r, err := NewDecoder().Decode([]byte(doc), "a.jsonl")
	require.NoError(t, err)

	assert.Equal(t, "DC01", r.Computer)
	assert.Equal(t, "Security", r.Channel)
	assert.True(t, time.Date(2024, 3, 1, 10, 20, 30, 123456000, time.UTC).Equal(r.Timestamp))
}

func Test_Decoder_PayloadIsCopied(t *testing.T) {
	buf := []byte(`{"System":{"EventID":5}}`)

	r, err := NewDecoder().Decode(buf, "a.jsonl")
	require.NoError(t, err)

	buf[0] = 'x'
	assert.Equal(t, byte('{'), r.Payload[0])
}

func Test_Decoder_Malformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "not json", doc: `{"System":`},
		{name: "array", doc: `[1,2]`},
		{name: "no system", doc: `{"EventID":1}`},
		{name: "no event id", doc: `{"System":{"Computer":"DC01"}}`},
		{name: "negative event id", doc: `{"System":{"EventID":-1}}`},
		{name: "event id too large", doc: `{"System":{"EventID":4294967296}}`},
		{name: "event id not numeric", doc: `{"System":{"EventID":"logon"}}`},
	}

	decoder := NewDecoder()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decoder.Decode([]byte(tt.doc), "a.jsonl")
			assert.ErrorIs(t, err, errors.ErrMalformedRecord)
		})
	}
}
