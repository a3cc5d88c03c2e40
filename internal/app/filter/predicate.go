package filter

import (
	"sort"
	"strconv"

	"evtxview/internal/app/record"
)

// Category identifies a filterable record field
type Category int

// Filterable categories
const (
	EventID Category = iota
	User

	categoryCount
)

// Categories lists every filterable category in display order
var Categories = []Category{EventID, User}

// String returns the category name
func (c Category) String() string {
	switch c {
	case EventID:
		return "event id"
	case User:
		return "user"
	default:
		return "unknown"
	}
}

// ValueOf extracts the category's value from a record
func (c Category) ValueOf(r *record.Record) Value {
	switch c {
	case EventID:
		return EventIDValue(r.EventID)
	case User:
		if !r.HasUser() {
			return Absent
		}

		return Text(r.User)
	default:
		return Absent
	}
}

// Value is a filterable field value. The zero-text Absent value stands for a missing
// field and never equals any concrete value.
type Value struct {
	Text   string
	Absent bool
}

// Absent matches records that do not carry the field
var Absent = Value{Absent: true}

// Text creates a concrete value
func Text(s string) Value {
	return Value{Text: s}
}

// EventIDValue creates the value for a numeric event id
func EventIDValue(id uint32) Value {
	return Value{Text: strconv.FormatUint(uint64(id), 10)}
}

// String returns a display form of the value
func (v Value) String() string {
	if v.Absent {
		return "<none>"
	}

	return v.Text
}

type valueSet map[Value]struct{}

// PredicateSet holds an include and an exclude set per category. A value is never in
// both sets of the same category.
type PredicateSet struct {
	include [categoryCount]valueSet
	exclude [categoryCount]valueSet
}

// NewPredicateSet creates an empty predicate set, which passes every record
func NewPredicateSet() *PredicateSet {
	p := &PredicateSet{}
	for _, c := range Categories {
		p.include[c] = make(valueSet)
		p.exclude[c] = make(valueSet)
	}

	return p
}

// Include lifts an exclusion of v in c when there is one. Otherwise v is added to the
// include set of c. Returns whether the set changed.
func (p *PredicateSet) Include(c Category, v Value) bool {
	if !valid(c) {
		return false
	}

	if _, excluded := p.exclude[c][v]; excluded {
		delete(p.exclude[c], v)
		return true
	}

	if _, included := p.include[c][v]; included {
		return false
	}

	p.include[c][v] = struct{}{}

	return true
}

// Exclude adds v to the exclude set of c and drops it from the include set.
// Returns whether the set changed.
func (p *PredicateSet) Exclude(c Category, v Value) bool {
	if !valid(c) {
		return false
	}

	_, included := p.include[c][v]
	_, excluded := p.exclude[c][v]

	delete(p.include[c], v)
	p.exclude[c][v] = struct{}{}

	return included || !excluded
}

// Reset clears every set. Returns whether anything was cleared.
func (p *PredicateSet) Reset() bool {
	if p.Empty() {
		return false
	}

	for _, c := range Categories {
		p.include[c] = make(valueSet)
		p.exclude[c] = make(valueSet)
	}

	return true
}

// Empty reports whether no restriction is active
func (p *PredicateSet) Empty() bool {
	for _, c := range Categories {
		if len(p.include[c]) > 0 || len(p.exclude[c]) > 0 {
			return false
		}
	}

	return true
}

// IsIncluded reports whether v is in the include set of c
func (p *PredicateSet) IsIncluded(c Category, v Value) bool {
	if !valid(c) {
		return false
	}

	_, ok := p.include[c][v]

	return ok
}

// IsExcluded reports whether v is in the exclude set of c
func (p *PredicateSet) IsExcluded(c Category, v Value) bool {
	if !valid(c) {
		return false
	}

	_, ok := p.exclude[c][v]

	return ok
}

// Included returns the include set of c, sorted
func (p *PredicateSet) Included(c Category) []Value {
	if !valid(c) {
		return nil
	}

	return sorted(p.include[c])
}

// Excluded returns the exclude set of c, sorted
func (p *PredicateSet) Excluded(c Category) []Value {
	if !valid(c) {
		return nil
	}

	return sorted(p.exclude[c])
}

// Match reports whether r passes: for every category the include set is empty or holds
// the record's value, and the exclude set does not hold it
func (p *PredicateSet) Match(r *record.Record) bool {
	for _, c := range Categories {
		v := c.ValueOf(r)

		if len(p.include[c]) > 0 {
			if _, ok := p.include[c][v]; !ok {
				return false
			}
		}

		if _, ok := p.exclude[c][v]; ok {
			return false
		}
	}

	return true
}

func valid(c Category) bool {
	return c >= 0 && c < categoryCount
}

func sorted(set valueSet) []Value {
	values := make([]Value, 0, len(set))
	for v := range set {
		values = append(values, v)
	}

	sort.Slice(values, func(i, j int) bool {
		if values[i].Absent != values[j].Absent {
			return values[i].Absent
		}

		return values[i].Text < values[j].Text
	})

	return values
}
