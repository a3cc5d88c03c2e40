package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Store_Append(t *testing.T) {
	s := NewStore()
	assert.Equal(t, 0, s.Len())

	for i, id := range []uint32{1, 2, 1, 3, 2} {
		idx := s.Append(Record{EventID: id})
		assert.Equal(t, i, idx)
	}

	assert.Equal(t, 5, s.Len())
}

func Test_Store_Get(t *testing.T) {
	s := NewStore()
	s.Append(Record{EventID: 4624, User: "S-1-5-18"})
	s.Append(Record{EventID: 4625})

	tests := []struct {
		name    string
		index   int
		eventID uint32
		found   bool
	}{
		{name: "first", index: 0, eventID: 4624, found: true},
		{name: "last", index: 1, eventID: 4625, found: true},
		{name: "negative", index: -1},
		{name: "past end", index: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := s.Get(tt.index)
			if !tt.found {
				assert.Nil(t, r)
				return
			}

			require.NotNil(t, r)
			assert.Equal(t, tt.eventID, r.EventID)
		})
	}
}

func Test_Store_IndicesStable(t *testing.T) {
	s := NewStore()
	first := s.Append(Record{EventID: 7, Origin: "a.jsonl"})

	for i := 0; i < 1000; i++ {
		s.Append(Record{EventID: uint32(i)})
	}

	r := s.Get(first)
	require.NotNil(t, r)
	assert.Equal(t, uint32(7), r.EventID)
	assert.Equal(t, "a.jsonl", r.Origin)
}

func Test_Record_HasUser(t *testing.T) {
	assert.True(t, (&Record{User: "S-1-5-18"}).HasUser())
	assert.False(t, (&Record{}).HasUser())
}

func Test_Record_OriginName(t *testing.T) {
	assert.Equal(t, "Security.jsonl", (&Record{Origin: "/var/logs/Security.jsonl"}).OriginName())
	assert.Equal(t, "", (&Record{}).OriginName())
}
