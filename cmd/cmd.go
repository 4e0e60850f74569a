package cmd

import (
	"os"

	"github.com/flagcell/flagcell/std/log"
	"github.com/flagcell/flagcell/std/utils"
	"github.com/flagcell/flagcell/tools"
	"github.com/spf13/cobra"
)

const banner = `
   __ _                        _ _
  / _| | __ _  __ _  ___ ___| | |
 | |_| |/ _  |/ _  |/ __/ _ \ | |
 |  _| | (_| | (_| | (_|  __/ | |
 |_| |_|\__,_|\__, |\___\___|_|_|
              |___/

Disable-able shared cell toolkit
`

var CmdFlagcell = &cobra.Command{
	Use:               "flagcell",
	Short:             "Disable-able shared cell toolkit",
	Long:              banner[1:],
	Version:           utils.Version,
	PersistentPreRunE: setupLog,
}

var logLevel string
var logJson bool

func init() {
	cobra.EnableCommandSorting = false
	CmdFlagcell.Root().CompletionOptions.HiddenDefaultCmd = true
	CmdFlagcell.PersistentFlags().BoolP("help", "h", false, "Print usage")
	CmdFlagcell.PersistentFlags().Lookup("help").Hidden = true
	CmdFlagcell.PersistentFlags().StringVar(&logLevel, "log-level", "INFO", "Log level (TRACE, DEBUG, INFO, WARN, ERROR)")
	CmdFlagcell.PersistentFlags().BoolVar(&logJson, "log-json", false, "Write logs as JSON")

	CmdFlagcell.AddGroup(&cobra.Group{ID: "tools", Title: "Debug Tools"})
	CmdFlagcell.AddCommand(tools.CmdReplay)
}

// setupLog configures the default logger from the persistent flags.
func setupLog(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	if logJson {
		log.SetDefault(log.NewJson(os.Stderr))
	}
	log.Default().SetLevel(level)
	return nil
}
