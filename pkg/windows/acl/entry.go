// Package acl implements the discretionary access control list model of
// Windows security descriptors: an ordered sequence of access control
// entries, each granting or denying a subject a bitmask of rights.
//
// The package is a pure in-memory value library. It never talks to the
// operating system; producing entries for a real object and committing
// them back is the caller's concern.
package acl

import (
	"encoding/json"
	"fmt"
)

// ACE flag bits, matching the AceFlags field of ACE_HEADER.
const (
	FlagObjectInherit      uint32 = 0x1
	FlagContainerInherit   uint32 = 0x2
	FlagNoPropagateInherit uint32 = 0x4
	FlagInheritOnly        uint32 = 0x8
	FlagInherited          uint32 = 0x10
)

// Kind is the action of an access control entry.
type Kind uint8

const (
	// Allow grants the rights in the entry mask. Zero value, so entries
	// constructed without an explicit kind are allowing.
	Allow Kind = iota

	// Deny revokes the rights in the entry mask.
	Deny
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Allow:
		return "allow"
	case Deny:
		return "deny"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// MarshalJSON encodes the kind as its string form.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes the kind from its string form. Unknown strings
// are an error.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	switch s {
	case "allow":
		*k = Allow
	case "deny":
		*k = Deny
	default:
		return fmt.Errorf("unknown ACE kind %q", s)
	}

	return nil
}

// Entry is a single access control entry: one allow or deny rule binding
// a subject to a rights mask, tagged with inheritance flags.
//
// Entry is a plain value type. Copy it by assignment; two entries are the
// same rule iff they are Equal.
type Entry struct {
	Subject string `json:"subject"`
	Mask    uint32 `json:"mask"`
	Flags   uint32 `json:"flags"`
	Kind    Kind   `json:"kind"`
}

// NewEntry constructs an entry. Subject format and mask range are not
// validated: any values are accepted as given.
func NewEntry(subject string, mask, flags uint32, kind Kind) Entry {
	return Entry{
		Subject: subject,
		Mask:    mask,
		Flags:   flags,
		Kind:    kind,
	}
}

// IsInherited checks whether the entry was propagated from a parent
// container rather than set directly on the object.
func (e Entry) IsInherited() bool {
	return e.Flags&FlagInherited == FlagInherited
}

// IsInheritOnly checks whether the entry applies to children of the
// object only, not the object itself.
func (e Entry) IsInheritOnly() bool {
	return e.Flags&FlagInheritOnly == FlagInheritOnly
}

// Equal compares two entries structurally: subject, mask, flags and kind
// must all match.
func (e Entry) Equal(e2 Entry) bool {
	return e == e2
}
