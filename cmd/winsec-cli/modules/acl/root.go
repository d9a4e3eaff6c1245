package acl

import (
	"github.com/spf13/cobra"
)

// Cmd represents the acl command.
var Cmd = &cobra.Command{
	Use:   "acl",
	Short: "Operations with discretionary Access Control Lists",
}

func init() {
	Cmd.AddCommand(createCmd)
	Cmd.AddCommand(printCmd)
	Cmd.AddCommand(reassignCmd)
}
