package cmd

import (
	"fmt"

	"github.com/omghumre/ui-generator-agent/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the version of the UI generator agent`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("UI Generator Agent v%s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
