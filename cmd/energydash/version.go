package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"energydash/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "energydash "+version.GetFullVersionInfo())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
