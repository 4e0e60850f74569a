package main

import (
	"os"

	"github.com/flagcell/flagcell/cmd"
)

func main() {
	if err := cmd.CmdFlagcell.Execute(); err != nil {
		os.Exit(1)
	}
}
