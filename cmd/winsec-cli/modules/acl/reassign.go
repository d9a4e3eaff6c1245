package acl

import (
	"errors"
	"os"

	"github.com/ivan-rueda-duarte/winsec/cmd/winsec-cli/internal/common"
	"github.com/ivan-rueda-duarte/winsec/cmd/winsec-cli/internal/commonflags"
	"github.com/ivan-rueda-duarte/winsec/pkg/services/migration"
	"github.com/spf13/cobra"
)

var reassignCmd = &cobra.Command{
	Use:   "reassign",
	Short: "Reassign ACL entries from one SID to another",
	Long: `Reassign ACL entries from one SID to another.

Every non-inherited entry of the old SID is rebound to the new one;
inherited entries are kept as they are. Reassigning entries away from
the SYSTEM SID prepends a compensating full-control entry for SYSTEM.

Translations come either from a single '--from'/'--to' pair or from a
YAML mapping file ('--map') listing 'from'/'to' pairs applied in order.`,
	Example: `winsec-cli acl reassign -f dacl.json --from S-1-5-21-1-2-3-1001 --to S-1-5-21-9-8-7-1001 -o dacl.json
winsec-cli acl reassign -f dacl.json --map mapping.yaml`,
	Run: reassignACL,
}

func init() {
	ff := reassignCmd.Flags()
	ff.String("from", "", "SID whose entries are rebound")
	ff.String("to", "", "SID the entries are rebound to")
	ff.String("map", "", "Path to a YAML SID mapping file")
	commonflags.Init(reassignCmd)

	_ = reassignCmd.MarkFlagRequired(commonflags.FileFlag)
	_ = cobra.MarkFlagFilename(ff, "map")

	reassignCmd.MarkFlagsRequiredTogether("from", "to")
	reassignCmd.MarkFlagsMutuallyExclusive("from", "map")
}

func reassignACL(cmd *cobra.Command, _ []string) {
	fileArg, _ := cmd.Flags().GetString(commonflags.FileFlag)
	outArg, _ := cmd.Flags().GetString(commonflags.OutFlag)
	fromArg, _ := cmd.Flags().GetString("from")
	toArg, _ := cmd.Flags().GetString("to")
	mapArg, _ := cmd.Flags().GetString("map")

	m, err := readMapping(fromArg, toArg, mapArg)
	common.ExitOnErr(cmd, "", err)

	l, err := common.ReadACL(fileArg)
	common.ExitOnErr(cmd, "unable to read ACL: %w", err)

	rewritten := m.Apply(l)
	common.PrintVerbose("Rebound %d entries", rewritten)

	common.ExitOnErr(cmd, "", common.WriteACL(cmd, l, outArg))
}

func readMapping(from, to, mapPath string) (migration.Mapping, error) {
	if mapPath != "" {
		data, err := os.ReadFile(mapPath)
		if err != nil {
			return nil, err
		}

		return migration.ParseMapping(data)
	}

	if from == "" {
		return nil, errors.New("either '--from'/'--to' or '--map' must be provided")
	}

	return migration.Mapping{{From: from, To: to}}, nil
}
