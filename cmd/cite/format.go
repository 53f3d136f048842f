// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/citation-engine/internal/csl"
	"github.com/pdiddy/citation-engine/internal/format"
	"github.com/pdiddy/citation-engine/pkg/types"
)

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

var formatCmd = &cobra.Command{
	Use:   "format [files...]",
	Short: "Format records as citation strings",
	Long: `Format loads records from the given files and prints one citation per
line. Records without a style use the configured default (MLA unless set);
--style replaces the style of every record.

With --output csl the records are printed as CSL-YAML instead. With --copy
the citations are also placed on the system clipboard.`,
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

		switch cfg.Output {
		case types.OutputCSL:
			if err := csl.Write(recs, cmd.OutOrStdout()); err != nil {
				return err
			}
		case types.OutputText, "":
			text := writeCitations(cmd.OutOrStdout(), recs)
			if cfg.Copy && text != "" {
				copyText(cmd.ErrOrStderr(), text)
			}
		default:
			return fmt.Errorf("unknown output format %q (want %q or %q)", cfg.Output, types.OutputText, types.OutputCSL)
		}
		return invalidError(invalid)
	},
}

// writeCitations prints one citation per line and returns the text written.
func writeCitations(w io.Writer, recs []types.Record) string {
	var b strings.Builder
	for _, rec := range recs {
		b.WriteString(format.Format(rec))
		b.WriteString("\n")
	}
	fmt.Fprint(w, b.String())
	return b.String()
}

// copyText places text on the clipboard. Failure is reported, not returned.
func copyText(stderr io.Writer, text string) {
	if err := copyToClipboard(strings.TrimRight(text, "\n")); err != nil {
		logger.Debug("Clipboard copy failed", zap.Error(err))
		warnColor.Fprintln(stderr, "warning: could not copy citation to clipboard")
		return
	}
	fmt.Fprintln(stderr, "Copied to clipboard.")
}

func init() {
	formatCmd.Flags().StringP("output", "o", "text", "output format: text or csl")
	formatCmd.Flags().Bool("copy", false, "copy the citations to the clipboard")

	_ = viper.BindPFlag("output", formatCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("copy", formatCmd.Flags().Lookup("copy"))

	rootCmd.AddCommand(formatCmd)
}
