// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/pdiddy/citation-engine/internal/format"
	"github.com/pdiddy/citation-engine/internal/record"
	"github.com/pdiddy/citation-engine/pkg/types"
)

// loadOptions controls how records are prepared for formatting.
type loadOptions struct {
	// DefaultStyle applies to records that name no style.
	DefaultStyle types.Style

	// Override, when set, replaces the style of every record.
	Override types.Style
}

// loadRecords reads every file in paths, applies styles, and validates the
// records. Invalid records are reported on stderr and left out; the returned
// count tells the caller how many were dropped.
func loadRecords(paths []string, opts loadOptions, stderr io.Writer) ([]types.Record, int, error) {
	var (
		recs    []types.Record
		invalid int
	)
	for _, path := range paths {
		loaded, err := record.Load(path)
		if err != nil {
			return nil, 0, err
		}
		logger.Debug("Loaded records", zap.String("path", path), zap.Int("count", len(loaded)))

		for i, rec := range loaded {
			rec = applyStyle(rec, opts)
			if err := record.Validate(rec); err != nil {
				invalid++
				logger.Debug("Skipping invalid record",
					zap.String("path", path),
					zap.Int("index", i),
					zap.Error(err))
				warnColor.Fprintf(stderr, "%s record %d: ", path, i+1)
				fmt.Fprintln(stderr, err)
				continue
			}
			if !format.Supported(rec.Style) {
				logger.Warn("Unsupported citation style",
					zap.String("path", path),
					zap.Int("index", i),
					zap.String("style", string(rec.Style)))
			}
			recs = append(recs, rec)
		}
	}
	return recs, invalid, nil
}

// applyStyle sets the record's style from the override or, when the record
// names none, from the default.
func applyStyle(rec types.Record, opts loadOptions) types.Record {
	switch {
	case opts.Override != "":
		rec.Style = opts.Override
	case rec.Style == "":
		rec.Style = opts.DefaultStyle
	}
	return rec
}

// styleOverride reads the --style flag. An unrecognized name is kept as
// given so the formatter reports it as unsupported.
func styleOverride(flag string) types.Style {
	if flag == "" {
		return ""
	}
	style, ok := types.ParseStyle(flag)
	if !ok {
		logger.Warn("Unknown citation style", zap.String("style", flag))
	}
	return style
}

// invalidError reports how many records were skipped.
func invalidError(n int) error {
	if n == 0 {
		return nil
	}
	return fmt.Errorf("%d invalid record(s) skipped", n)
}
