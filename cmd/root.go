// Package cmd contains the gridmate CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "gridmate",
	Short: "Spreadsheet assistant panels in the terminal",
	Long: `gridmate hosts the two assistant panels of a spreadsheet
application in the terminal: a chat sidebar and an agent mode workspace
view showing the agent's narrated thoughts, actions, and execution
steps.

Run 'gridmate onboard' once to create the config file, then
'gridmate run' to start the panels.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
