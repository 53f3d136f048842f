package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of cite",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "cite %s\n", color.New(color.FgGreen, color.Bold).Sprint(version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
