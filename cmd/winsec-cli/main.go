package main

import (
	cmd "github.com/ivan-rueda-duarte/winsec/cmd/winsec-cli/modules"
)

func main() {
	cmd.Execute()
}
