package common

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// ExitOnErr prints error and exits with code 1 if err is not nil. The
// error is wrapped into errFmt when the format is not empty.
func ExitOnErr(cmd *cobra.Command, errFmt string, err error) {
	if err == nil {
		return
	}

	if errFmt != "" {
		err = fmt.Errorf(errFmt, err)
	}

	cmd.PrintErrln(err)
	os.Exit(1)
}
