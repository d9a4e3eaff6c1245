package acl

import (
	"encoding/json"

	"github.com/ivan-rueda-duarte/winsec/pkg/windows/sid"
)

// List is an ordered discretionary ACL. Order is significant: Windows
// evaluates entries front to back, so position 0 has the highest
// precedence.
//
// A List exclusively owns its entries. Entries passed in are copied, and
// Entries returns a fresh copy, so no caller ever aliases the internal
// sequence. Instances are not safe for concurrent use; the caller must
// ensure exclusive access during Allow, Deny and Reassign.
type List struct {
	entries []Entry
}

// NewList constructs a list from the given entries, copied element-wise
// in order. No entries yield an empty list.
func NewList(entries ...Entry) *List {
	l := new(List)
	if len(entries) > 0 {
		l.entries = make([]Entry, len(entries))
		copy(l.entries, entries)
	}

	return l
}

// Len returns the number of entries.
func (l *List) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the entry sequence in list order. The copy is
// detached: later mutations of the list are not visible through it and
// vice versa. Each call starts a fresh traversal.
func (l *List) Entries() []Entry {
	res := make([]Entry, len(l.entries))
	copy(res, l.entries)

	return res
}

// Allow appends an allowing entry for subject with the given mask and
// flags. Duplicates are legal and kept in order.
func (l *List) Allow(subject string, mask, flags uint32) {
	l.entries = append(l.entries, NewEntry(subject, mask, flags, Allow))
}

// Deny appends a denying entry for subject with the given mask and flags.
func (l *List) Deny(subject string, mask, flags uint32) {
	l.entries = append(l.entries, NewEntry(subject, mask, flags, Deny))
}

// Reassign rebinds every non-inherited entry of oldSubject to newSubject,
// keeping the relative order of all entries. Inherited entries are left
// untouched even when their subject matches: they come from a parent
// container and must not be locally overridden.
//
// When oldSubject is the local system SID and at least one entry was
// actually rewritten, a compensating entry granting SYSTEM FullControl is
// prepended at position 0, so the operating system keeps first-precedence
// access to the object after its own entries were migrated away. Note the
// comparison is against the old subject, never the new one.
//
// Reassigning a subject with no matching entries is a no-op. Returns the
// list itself for chaining.
func (l *List) Reassign(oldSubject, newSubject string) *List {
	next := make([]Entry, 0, len(l.entries)+1)

	var rewritten int

	for _, e := range l.entries {
		if e.Subject == oldSubject && !e.IsInherited() {
			e.Subject = newSubject
			rewritten++
		}

		next = append(next, e)
	}

	if sid.IsLocalSystem(oldSubject) && rewritten > 0 {
		next = append([]Entry{NewEntry(sid.LocalSystem, FullControl, 0, Allow)}, next...)
	}

	l.entries = next

	return l
}

// MarshalJSON encodes the list as a JSON array of entries.
func (l *List) MarshalJSON() ([]byte, error) {
	if l.entries == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(l.entries)
}

// UnmarshalJSON decodes a JSON array of entries, replacing the current
// contents.
func (l *List) UnmarshalJSON(data []byte) error {
	var es []Entry
	if err := json.Unmarshal(data, &es); err != nil {
		return err
	}

	l.entries = es

	return nil
}
