// Package collision detects 64-bit name hash collisions among schema
// descriptor names.
package collision

import (
	"github.com/arloliu/sbekit/errs"
)

// Tracker records which descriptor name produced each hash. Name lookups
// dispatch on the hash alone, so two distinct names with the same hash
// cannot coexist in one registry; re-registering the exact same name is a
// separate condition callers usually also reject.
type Tracker struct {
	names map[uint64]string
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{names: make(map[uint64]string)}
}

// Track records name under hash. It returns errs.ErrDuplicateTemplate when
// the same name was tracked before and errs.ErrHashCollision when a
// different name already owns the hash.
func (t *Tracker) Track(name string, hash uint64) error {
	if existing, ok := t.names[hash]; ok {
		if existing == name {
			return errs.ErrDuplicateTemplate
		}
		return errs.ErrHashCollision
	}
	t.names[hash] = name

	return nil
}

// Len returns the number of tracked names.
func (t *Tracker) Len() int {
	return len(t.names)
}
