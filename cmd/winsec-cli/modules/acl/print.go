package acl

import (
	"fmt"
	"strings"

	"github.com/ivan-rueda-duarte/winsec/cmd/winsec-cli/internal/common"
	"github.com/ivan-rueda-duarte/winsec/cmd/winsec-cli/internal/commonflags"
	winacl "github.com/ivan-rueda-duarte/winsec/pkg/windows/acl"
	"github.com/ivan-rueda-duarte/winsec/pkg/windows/sid"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var printCmd = &cobra.Command{
	Use:     "print",
	Short:   "Pretty print an ACL from its JSON representation",
	Example: `winsec-cli acl print -f dacl.json`,
	Long: `Pretty print an ACL from its JSON representation.

Entries are shown in evaluation order: position 0 has the highest
precedence. Well-known SIDs are annotated with their account names.`,
	Run: printACL,
}

func init() {
	commonflags.Init(printCmd)
	_ = printCmd.MarkFlagRequired(commonflags.FileFlag)
}

func printACL(cmd *cobra.Command, _ []string) {
	fileArg, _ := cmd.Flags().GetString(commonflags.FileFlag)

	l, err := common.ReadACL(fileArg)
	common.ExitOnErr(cmd, "unable to read ACL: %w", err)

	prettyPrintTableACL(cmd, l)
}

func prettyPrintTableACL(cmd *cobra.Command, l *winacl.List) {
	out := tablewriter.NewWriter(cmd.OutOrStdout())
	out.SetHeader([]string{"#", "Kind", "Subject", "Mask", "Flags"})
	out.SetAlignment(tablewriter.ALIGN_CENTER)
	out.SetRowLine(true)

	out.SetAutoWrapText(false)

	for i, e := range l.Entries() {
		out.Append([]string{
			fmt.Sprintf("%d", i),
			e.Kind.String(),
			subjectToString(e.Subject),
			fmt.Sprintf("0x%08X", e.Mask),
			flagsToString(e.Flags),
		})
	}

	out.Render()
}

func subjectToString(s string) string {
	if name := sid.Name(s); name != "" {
		return s + " (" + name + ")"
	}

	return s
}

func flagsToString(flags uint32) string {
	var parts []string

	for _, f := range []struct {
		bit  uint32
		name string
	}{
		{winacl.FlagObjectInherit, "OI"},
		{winacl.FlagContainerInherit, "CI"},
		{winacl.FlagNoPropagateInherit, "NP"},
		{winacl.FlagInheritOnly, "IO"},
		{winacl.FlagInherited, "INHERITED"},
	} {
		if flags&f.bit != 0 {
			parts = append(parts, f.name)
		}
	}

	if len(parts) == 0 {
		return "-"
	}

	return strings.Join(parts, ",")
}
