// Package sid provides the well-known Windows security identifiers used
// across the module. SIDs are treated as opaque strings everywhere; this
// package only supplies vocabulary and display names, it performs no
// validation and no account lookups.
package sid

// Well-known SID string constants.
const (
	// LocalSystem is the identity of the operating system itself. ACL
	// reassignment treats it specially, see acl.List.Reassign.
	LocalSystem = "S-1-5-18"

	Everyone       = "S-1-1-0"
	CreatorOwner   = "S-1-3-0"
	CreatorGroup   = "S-1-3-1"
	NTAuthority    = "S-1-5"
	LocalService   = "S-1-5-19"
	NetworkService = "S-1-5-20"
	Administrators = "S-1-5-32-544"
	Users          = "S-1-5-32-545"
	Guests         = "S-1-5-32-546"
	PowerUsers     = "S-1-5-32-547"
)

var wellKnownNames = map[string]string{
	LocalSystem:    "SYSTEM",
	Everyone:       "Everyone",
	CreatorOwner:   "CREATOR OWNER",
	CreatorGroup:   "CREATOR GROUP",
	LocalService:   "LOCAL SERVICE",
	NetworkService: "NETWORK SERVICE",
	Administrators: "Administrators",
	Users:          "Users",
	Guests:         "Guests",
	PowerUsers:     "Power Users",
}

// Name returns the display name of a well-known SID or an empty string if
// the SID is not a well-known one.
func Name(s string) string {
	return wellKnownNames[s]
}

// IsLocalSystem checks whether s is the local system SID.
func IsLocalSystem(s string) bool {
	return s == LocalSystem
}
