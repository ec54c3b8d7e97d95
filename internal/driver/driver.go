// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package driver runs one disemvowel pass: validate the argument list, read
// the input file, strip vowels and write the output file.
//
// Run never exits the process. Every failure comes back as an error that
// Message and ExitCode translate at the command-line boundary.
package driver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pdiddy/disemvowel/internal/disemvowel"
	"github.com/pdiddy/disemvowel/internal/fileio"
	"github.com/pdiddy/disemvowel/internal/logging"
)

// Driver wires the file adapter to the vowel filter.
type Driver struct {
	files  *fileio.Adapter
	logger *slog.Logger
}

// New returns a Driver that performs I/O through files. A nil logger
// discards all output.
func New(files *fileio.Adapter, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Driver{files: files, logger: logger}
}

// Run takes the positional arguments, without the program name, and
// disemvowels args[0] into args[1]. Argument errors are detected before any
// file is touched; a read failure leaves the output path untouched.
func (d *Driver) Run(ctx context.Context, args []string) error {
	if err := CheckArgs(args); err != nil {
		return err
	}
	inPath, outPath := args[0], args[1]

	text, err := d.files.ReadText(inPath)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("before filtering %s: %w", inPath, err)
	}

	filtered := disemvowel.Filter(text)
	d.logger.Debug("filtered text",
		"input", inPath,
		"removed", disemvowel.Count(text),
		"kept_bytes", len(filtered),
	)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("before writing %s: %w", outPath, err)
	}
	if err := d.files.WriteText(outPath, filtered); err != nil {
		return err
	}

	d.logger.Info("disemvowelled file", "input", inPath, "output", outPath)
	return nil
}
