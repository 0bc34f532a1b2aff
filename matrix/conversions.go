// SPDX-License-Identifier: MIT
// Package matrix - text, LaTeX and file serialization.
//
// Text format:
//   - one row per line, values separated by whitespace, every row (including
//     the last) terminated by "\n" on output;
//   - integral values print without a decimal point, everything else uses the
//     shortest representation that parses back to the same float64.
//
// LaTeX format (write-only):
//
//	\begin{bmatrix}
//	1 & 2\\
//	3 & 4\\
//	\end{bmatrix}
//
// File helpers read/write whole files; filesystem errors are returned as-is
// so callers can match them with errors.Is(err, fs.ErrNotExist) and friends.

package matrix

import (
	"encoding"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

const (
	opParseText = "ParseText"
	opSaveFile  = "SaveFile"

	textValueSep = " "
	textRowEnd   = "\n"

	latexBegin  = "\\begin{bmatrix}\n"
	latexEnd    = "\\end{bmatrix}"
	latexColSep = " & "
	latexRowEnd = "\\\\\n"

	// maxExactInt is 2^53: every integer below it is exactly representable.
	maxExactInt = 1 << 53

	// filePerm is the mode used by SaveFile for new files.
	filePerm = 0o644
)

var (
	_ encoding.TextMarshaler   = (*Dense)(nil)
	_ encoding.TextUnmarshaler = (*Dense)(nil)
)

// ParseText reads the text matrix format.
//
// Implementation:
//   - Stage 1: split on "\n"; strip "\r"; skip blank lines (so a trailing
//     newline is harmless).
//   - Stage 2: split each line on whitespace and parse every token as float64.
//   - Stage 3: build via NewFromRows (rectangularity check).
//
// Errors:
//   - ErrParse (bad token; wraps the strconv error and, for NaN/Inf, ErrNaNInf),
//   - ErrInvalidDimensions (no rows), ErrDimensionMismatch (ragged rows).
//
// Complexity: O(len(s)).
func ParseText(s string) (*Dense, error) {
	lines := strings.Split(s, textRowEnd)
	rows := make([][]float64, 0, len(lines))

	var (
		ln, col int
		line    string
		fields  []string
		v       float64
		err     error
	)
	for ln, line = range lines {
		fields = strings.Fields(strings.TrimSuffix(line, "\r"))
		if len(fields) == 0 {
			continue
		}
		row := make([]float64, len(fields))
		for col = range fields {
			v, err = strconv.ParseFloat(fields[col], 64)
			if err != nil {
				return nil, matrixErrorf(opParseText,
					fmt.Errorf("%w: line %d, column %d: %w", ErrParse, ln+1, col+1, err))
			}
			if isNonFinite(v) {
				return nil, matrixErrorf(opParseText,
					fmt.Errorf("%w: line %d, column %d: %w", ErrParse, ln+1, col+1, ErrNaNInf))
			}
			row[col] = v
		}
		rows = append(rows, row)
	}

	m, err := NewFromRows(rows)
	if err != nil {
		return nil, matrixErrorf(opParseText, err)
	}

	return m, nil
}

// FormatText renders m in the text matrix format with shortest round-trip values.
// A nil matrix renders as the empty string.
func FormatText(m Matrix) string {
	return FormatTextPrecision(m, -1)
}

// FormatTextPrecision is FormatText with at most digits significant digits
// per non-integral value; digits < 0 selects the shortest round-trip form.
// Integral values always print in full.
func FormatTextPrecision(m Matrix, digits int) string {
	return render(m, "", textValueSep, textRowEnd, "", digits)
}

// FormatLaTeX renders m as a bmatrix environment.
func FormatLaTeX(m Matrix) string {
	return render(m, latexBegin, latexColSep, latexRowEnd, latexEnd, -1)
}

// render walks m row-major and joins formatted values.
func render(m Matrix, open, sep, rowEnd, closing string, digits int) string {
	d := denseOrNil(m)
	if d == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(open)
	var i, j int
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			if j > 0 {
				b.WriteString(sep)
			}
			b.WriteString(formatValue(d.data[i*d.c+j], digits))
		}
		b.WriteString(rowEnd)
	}
	b.WriteString(closing)

	return b.String()
}

// formatValue prints integral values as integers ("-0" becomes "0") and
// everything else with 'g' formatting.
func formatValue(v float64, digits int) string {
	if v == 0 {
		return "0"
	}
	if v == math.Trunc(v) && math.Abs(v) < maxExactInt {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	return strconv.FormatFloat(v, 'g', digits, 64)
}

// LoadFile reads path and parses it with ParseText.
// Filesystem errors are returned unmodified.
func LoadFile(path string) (*Dense, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseText(string(data))
}

// SaveFile writes FormatText(m) to path, creating or truncating it.
// Filesystem errors are returned unmodified.
//
// Errors: ErrNilMatrix, or the *fs.PathError from the write.
func SaveFile(path string, m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opSaveFile, err)
	}

	return os.WriteFile(path, []byte(FormatText(m)), filePerm)
}

// MarshalText implements encoding.TextMarshaler using the text matrix format.
func (m *Dense) MarshalText() ([]byte, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	return []byte(FormatText(m)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler; the receiver takes the
// parsed shape and values.
func (m *Dense) UnmarshalText(text []byte) error {
	if m == nil {
		return ErrNilMatrix
	}
	parsed, err := ParseText(string(text))
	if err != nil {
		return err
	}
	*m = *parsed

	return nil
}
