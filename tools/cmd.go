package tools

import "github.com/spf13/cobra"

var toolReplay = Replay{}
var CmdReplay = &cobra.Command{
	GroupID: "tools",
	Use:     "replay SCRIPT",
	Short:   "Replay a scripted scenario against a cell",
	Long: `Replay a YAML scenario against a fresh cell.
Each step prints its result; a step with "expect" fails the run on mismatch.`,
	Args:    cobra.ExactArgs(1),
	Example: `  flagcell replay scenario.yml`,
	Run:     toolReplay.run,
}
