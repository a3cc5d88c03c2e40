package ingest

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/valyala/fastjson"

	"evtxview/internal/app/errors"
	"evtxview/internal/app/record"
)

// Decoder turns one JSON event document into a Record. It is safe for concurrent use.
type Decoder struct {
	parsers fastjson.ParserPool
}

// NewDecoder creates a decoder
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode parses doc, which may be wrapped in an "Event" object. Documents that are not
// objects or carry no usable System.EventID are malformed.
func (d *Decoder) Decode(doc []byte, origin string) (record.Record, error) {
	p := d.parsers.Get()
	defer d.parsers.Put(p)

	v, err := p.ParseBytes(doc)
	if err != nil {
		return record.Record{}, fmt.Errorf("%w: %v", errors.ErrMalformedRecord, err)
	}

	if v.Type() != fastjson.TypeObject {
		return record.Record{}, fmt.Errorf("%w: expected object, got %s", errors.ErrMalformedRecord, v.Type())
	}

	if event := v.Get("Event"); event != nil && event.Type() == fastjson.TypeObject {
		v = event
	}

	system := v.Get("System")
	if system == nil || system.Type() != fastjson.TypeObject {
		return record.Record{}, fmt.Errorf("%w: missing System", errors.ErrMalformedRecord)
	}

	eventID, ok := number(system.Get("EventID"))
	if !ok || eventID > uint64(^uint32(0)) {
		return record.Record{}, fmt.Errorf("%w: missing or invalid System.EventID", errors.ErrMalformedRecord)
	}

	r := record.Record{
		EventID:  uint32(eventID),
		User:     firstString(system, []string{"Security", "#attributes", "UserID"}, []string{"Security", "UserID"}),
		Computer: string(system.GetStringBytes("Computer")),
		Channel:  string(system.GetStringBytes("Channel")),
		Provider: firstString(system, []string{"Provider", "#attributes", "Name"}, []string{"Provider", "Name"}),
		Payload:  bytes.Clone(doc),
		Origin:   origin,
	}

	if id, ok := number(system.Get("EventRecordID")); ok {
		r.RecordID = id
	}

	if level, ok := number(system.Get("Level")); ok {
		r.Level = int(level)
	}

	created := firstString(system, []string{"TimeCreated", "#attributes", "SystemTime"}, []string{"TimeCreated", "SystemTime"})
	if created != "" {
		if ts, err := time.Parse(time.RFC3339Nano, created); err == nil {
			r.Timestamp = ts
		}
	}

	return r, nil
}

// number reads an unsigned integer stored as a JSON number, a numeric string, or an
// object carrying it under "#text" or "Value"
func number(v *fastjson.Value) (uint64, bool) {
	if v == nil {
		return 0, false
	}

	switch v.Type() {
	case fastjson.TypeNumber:
		n, err := v.Uint64()
		return n, err == nil
	case fastjson.TypeString:
		n, err := strconv.ParseUint(string(bytes.TrimSpace(v.GetStringBytes())), 10, 64)
		return n, err == nil
	case fastjson.TypeObject:
		if n, ok := number(v.Get("#text")); ok {
			return n, true
		}

		return number(v.Get("Value"))
	default:
		return 0, false
	}
}

func firstString(v *fastjson.Value, paths ...[]string) string {
	for _, path := range paths {
		if s := v.GetStringBytes(path...); len(s) > 0 {
			return string(s)
		}
	}

	return ""
}
