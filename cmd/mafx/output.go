// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mafx/internal/config"
	"github.com/katalvlaran/mafx/matrix"
)

// load reads a text-format matrix file.
func (a *app) load(path string) (*matrix.Dense, error) {
	m, err := matrix.LoadFile(path)
	if err != nil {
		a.log.Error().Err(err).Str("file", path).Msg("load failed")
		return nil, err
	}
	a.log.Debug().Str("file", path).Int("rows", m.Rows()).Int("cols", m.Cols()).Msg("loaded")

	return m, nil
}

// trace logs one operation at debug level, or at error level when it failed.
func (a *app) trace(op string, m matrix.Matrix, start time.Time, err error) {
	if err != nil {
		a.log.Error().Err(err).Str("op", op).Msg("operation failed")
		return
	}
	a.log.Debug().Str("op", op).Int("rows", m.Rows()).Int("cols", m.Cols()).
		Dur("elapsed", time.Since(start)).Msg("done")
}

// render formats m in the given output format.
func (a *app) render(m matrix.Matrix, format string) string {
	if format == config.FormatLaTeX {
		return matrix.FormatLaTeX(m) + "\n"
	}

	return matrix.FormatTextPrecision(m, a.cfg.Precision)
}

// emit writes m in the configured format to --output when set, otherwise
// to the command's stdout.
func (a *app) emit(cmd *cobra.Command, m matrix.Matrix) error {
	return a.emitAs(cmd, m, a.cfg.Format)
}

func (a *app) emitAs(cmd *cobra.Command, m matrix.Matrix, format string) error {
	if a.output == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), a.render(m, format))
		return err
	}
	if format == config.FormatText && a.cfg.Precision < 0 {
		return matrix.SaveFile(a.output, m)
	}

	return os.WriteFile(a.output, []byte(a.render(m, format)), 0o644)
}

// emitScalar prints v the way the text matrix format prints an entry.
func (a *app) emitScalar(cmd *cobra.Command, v float64) error {
	var s string
	switch {
	case v == 0:
		s = "0"
	case v == math.Trunc(v) && math.Abs(v) < 1<<53:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		s = strconv.FormatFloat(v, 'g', a.cfg.Precision, 64)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), s)

	return err
}
