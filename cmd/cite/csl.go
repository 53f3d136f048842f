// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/citation-engine/internal/csl"
)

var cslCmd = &cobra.Command{
	Use:   "csl [files...]",
	Short: "Convert records to CSL-YAML",
	Long: `Csl loads records from the given files and prints them as a CSL-YAML
list for Pandoc and reference managers.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig().Format
		flag, _ := cmd.Flags().GetString("style")

		recs, invalid, err := loadRecords(args, loadOptions{
			DefaultStyle: cfg.Style,
			Override:     styleOverride(flag),
		}, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		if err := csl.Write(recs, cmd.OutOrStdout()); err != nil {
			return err
		}
		return invalidError(invalid)
	},
}

func init() {
	rootCmd.AddCommand(cslCmd)
}
