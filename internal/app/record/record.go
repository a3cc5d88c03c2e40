package record

import (
	"path/filepath"
	"time"
)

// Record is one parsed event log entry. It is never modified after being appended to a Store.
type Record struct {
	EventID   uint32
	User      string // empty when the event carries no user
	RecordID  uint64
	Timestamp time.Time
	Computer  string
	Channel   string
	Provider  string
	Level     int
	Payload   []byte // raw JSON document the record was decoded from
	Origin    string // source file path
}

// HasUser reports whether the event carries a user
func (r *Record) HasUser() bool {
	return r.User != ""
}

// OriginName returns the base name of the source file
func (r *Record) OriginName() string {
	if r.Origin == "" {
		return ""
	}

	return filepath.Base(r.Origin)
}
