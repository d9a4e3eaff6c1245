package migration

import (
	"fmt"

	"github.com/ivan-rueda-duarte/winsec/pkg/windows/acl"
	"gopkg.in/yaml.v3"
)

// Rule is a single SID translation of a migration.
type Rule struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Mapping is an ordered set of SID translations. Order matters: rules are
// applied to each list front to back, so a later rule observes the
// rewrites of an earlier one.
type Mapping []Rule

// ParseMapping decodes a YAML document of the form
//
//	- from: S-1-5-21-1-2-3-1001
//	  to: S-1-5-21-9-8-7-1001
//	- from: S-1-5-21-1-2-3-1002
//	  to: S-1-5-21-9-8-7-1002
//
// Rule contents are not validated, matching the ACL model: unknown or
// malformed SID strings simply match nothing.
func ParseMapping(data []byte) (Mapping, error) {
	var m Mapping
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode SID mapping: %w", err)
	}

	return m, nil
}

// Apply reassigns every rule of the mapping on the list, in order, and
// reports the number of entries that changed subject.
func (m Mapping) Apply(l *acl.List) int {
	var rewritten int

	for _, r := range m {
		for _, e := range l.Entries() {
			if e.Subject == r.From && !e.IsInherited() {
				rewritten++
			}
		}

		l.Reassign(r.From, r.To)
	}

	return rewritten
}
