package acl

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/flynn-archive/go-shlex"
	"github.com/ivan-rueda-duarte/winsec/cmd/winsec-cli/internal/common"
	"github.com/ivan-rueda-duarte/winsec/cmd/winsec-cli/internal/commonflags"
	winacl "github.com/ivan-rueda-duarte/winsec/pkg/windows/acl"
	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an ACL from the text representation",
	Long: `Create an ACL from the text representation.

Rule consist of these blocks: <action> <subject> <mask> [<flag>,...]

Action is 'allow' or 'deny'.

Subject is the SID string of the principal the rule applies to. It is
taken as given, without validation.

Mask is the rights bitmask as a decimal or '0x' prefixed hex number, or
one of the named masks: 'full', 'standard-all', 'specific-all', 'delete',
'read-control', 'write-dac', 'write-owner', 'synchronize',
'generic-read', 'generic-write', 'generic-execute', 'generic-all'.

Flags is an optional comma-separated list of inheritance bits:
'oi' (object inherit), 'ci' (container inherit), 'np' (no propagate),
'io' (inherit only), 'inherited'.

When both '--rule' and '--file' arguments are used, '--rule' entries
will be placed higher in the resulting ACL.`,
	Example: `winsec-cli acl create -r 'allow S-1-5-32-544 full ci,oi' -r 'deny S-1-1-0 0x10000' --out dacl.json
winsec-cli acl create -f rules.txt`,
	Run: createACL,
}

func init() {
	ff := createCmd.Flags()
	ff.StringArrayP("rule", "r", nil, "ACL entry to append")
	ff.StringP("file", "f", "", "Read ACL entries from a text file, one rule per line")
	ff.StringP(commonflags.OutFlag, commonflags.OutFlagShorthand, "", commonflags.OutFlagUsage)

	_ = cobra.MarkFlagFilename(ff, "file")
	_ = cobra.MarkFlagFilename(ff, commonflags.OutFlag)
}

func createACL(cmd *cobra.Command, _ []string) {
	rules, _ := cmd.Flags().GetStringArray("rule")
	fileArg, _ := cmd.Flags().GetString("file")
	outArg, _ := cmd.Flags().GetString(commonflags.OutFlag)

	rulesFile, err := getRulesFromFile(fileArg)
	common.ExitOnErr(cmd, "can't read rules from file: %w", err)

	rules = append(rules, rulesFile...)
	if len(rules) == 0 {
		common.ExitOnErr(cmd, "", errors.New("no ACL rules has been provided"))
	}

	l := winacl.NewList()

	for _, ruleStr := range rules {
		r, err := shlex.Split(ruleStr)
		common.ExitOnErr(cmd, fmt.Sprintf("can't parse rule '%s': %%w", ruleStr), err)

		err = appendRule(l, r)
		common.ExitOnErr(cmd, fmt.Sprintf("can't create ACL entry from rule '%s': %%w", ruleStr), err)
	}

	common.ExitOnErr(cmd, "", common.WriteACL(cmd, l, outArg))
}

func getRulesFromFile(filename string) ([]string, error) {
	if len(filename) == 0 {
		return nil, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	return strings.Split(strings.TrimSpace(string(data)), "\n"), nil
}

// appendRule parses an ACL entry from the following form:
// <action> <subject> <mask> [<flag>,...]
//
// Examples:
// allow S-1-5-32-544 full ci,oi
func appendRule(l *winacl.List, args []string) error {
	if len(args) < 3 {
		return errors.New("at least 3 arguments must be provided")
	}

	mask, err := parseMask(args[2])
	if err != nil {
		return err
	}

	var flags uint32
	if len(args) > 3 {
		flags, err = parseFlags(args[3])
		if err != nil {
			return err
		}
	}

	switch strings.ToLower(args[0]) {
	case "allow":
		l.Allow(args[1], mask, flags)
	case "deny":
		l.Deny(args[1], mask, flags)
	default:
		return errors.New("invalid action (expected 'allow' or 'deny')")
	}

	return nil
}

var namedMasks = map[string]uint32{
	"full":            winacl.FullControl,
	"standard-all":    winacl.StandardRightsAll,
	"specific-all":    winacl.SpecificRightsAll,
	"delete":          winacl.RightDelete,
	"read-control":    winacl.RightReadControl,
	"write-dac":       winacl.RightWriteDAC,
	"write-owner":     winacl.RightWriteOwner,
	"synchronize":     winacl.RightSynchronize,
	"generic-read":    winacl.GenericRead,
	"generic-write":   winacl.GenericWrite,
	"generic-execute": winacl.GenericExecute,
	"generic-all":     winacl.GenericAll,
}

func parseMask(s string) (uint32, error) {
	if mask, ok := namedMasks[strings.ToLower(s)]; ok {
		return mask, nil
	}

	mask, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid mask %q: %w", s, err)
	}

	return uint32(mask), nil
}

func parseFlags(s string) (uint32, error) {
	var flags uint32

	for _, f := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(f)) {
		case "oi":
			flags |= winacl.FlagObjectInherit
		case "ci":
			flags |= winacl.FlagContainerInherit
		case "np":
			flags |= winacl.FlagNoPropagateInherit
		case "io":
			flags |= winacl.FlagInheritOnly
		case "inherited":
			flags |= winacl.FlagInherited
		default:
			return 0, fmt.Errorf("invalid flag %q", f)
		}
	}

	return flags, nil
}
