// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/citation-engine/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export [files...]",
	Short: "Write formatted citations to an XLSX workbook",
	Long: `Export loads records from the given files, formats them, and writes a
spreadsheet with one row per record: style, document type, author, title,
year and the formatted citation.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		flag, _ := cmd.Flags().GetString("style")
		out, _ := cmd.Flags().GetString("out")

		recs, invalid, err := loadRecords(args, loadOptions{
			DefaultStyle: cfg.Format.Style,
			Override:     styleOverride(flag),
		}, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		if err := export.WriteXLSX(out, cfg.Export.Sheet, recs); err != nil {
			return err
		}
		logger.Info("Exported bibliography", zap.String("path", out), zap.Int("records", len(recs)))
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d citation(s) to %s\n", len(recs), out)
		return invalidError(invalid)
	},
}

func init() {
	exportCmd.Flags().String("out", "bibliography.xlsx", "path of the XLSX file to write")
	exportCmd.Flags().String("sheet", export.DefaultSheet, "worksheet name")

	_ = viper.BindPFlag("export.sheet", exportCmd.Flags().Lookup("sheet"))

	rootCmd.AddCommand(exportCmd)
}
