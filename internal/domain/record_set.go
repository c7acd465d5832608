package domain

import (
	"iter"
	"slices"
)

// RecordSet is an immutable, ordered collection of launch records.
// The zero value is an empty set. A RecordSet is safe for concurrent reads.
type RecordSet struct {
	records []LaunchRecord
}

// NewRecordSet copies records so later changes to the argument are not observed.
// Indexes are reassigned to match the position in the set.
func NewRecordSet(records []LaunchRecord) RecordSet {
	cp := slices.Clone(records)
	for i := range cp {
		cp[i].Index = i
	}
	return RecordSet{records: cp}
}

func (s RecordSet) Len() int { return len(s.records) }

// All yields records in their original order.
func (s RecordSet) All() iter.Seq[LaunchRecord] {
	return func(yield func(LaunchRecord) bool) {
		for _, r := range s.records {
			if !yield(r) {
				return
			}
		}
	}
}

// Records returns a copy of the underlying records.
func (s RecordSet) Records() []LaunchRecord {
	return slices.Clone(s.records)
}

// Payloads returns the payload masses in record order.
func (s RecordSet) Payloads() []float64 {
	out := make([]float64, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r.PayloadMassKg)
	}
	return out
}
