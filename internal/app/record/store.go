package record

// Store holds every ingested record in arrival order. Indices are stable: records are
// only ever appended, never reordered or removed.
//
// A Store has a single writer (the ingestion bridge) and is read from the same tick, so
// it carries no locking.
type Store struct {
	records []Record
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{}
}

// Append adds a record and returns its index
func (s *Store) Append(r Record) int {
	s.records = append(s.records, r)

	return len(s.records) - 1
}

// Get returns the record at index, or nil when the index was never assigned
func (s *Store) Get(index int) *Record {
	if index < 0 || index >= len(s.records) {
		return nil
	}

	return &s.records[index]
}

// Len returns the number of stored records
func (s *Store) Len() int {
	return len(s.records)
}
