// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mafx/internal/config"
	"github.com/katalvlaran/mafx/matrix"
	"github.com/katalvlaran/mafx/matrix/ops"
)

type (
	unaryOp  func(a *app, m *matrix.Dense) (matrix.Matrix, error)
	binaryOp func(x, y matrix.Matrix) (matrix.Matrix, error)
)

func rrefOp(_ *app, m *matrix.Dense) (matrix.Matrix, error)      { return matrix.RREF(m) }
func transposeOp(_ *app, m *matrix.Dense) (matrix.Matrix, error) { return matrix.Transpose(m) }

func addOp(x, y matrix.Matrix) (matrix.Matrix, error) { return matrix.Add(x, y) }
func subOp(x, y matrix.Matrix) (matrix.Matrix, error) { return matrix.Sub(x, y) }
func mulOp(x, y matrix.Matrix) (matrix.Matrix, error) {
	return matrix.Multiply(matrix.Mat(x), matrix.Mat(y))
}
func divOp(x, y matrix.Matrix) (matrix.Matrix, error) {
	return matrix.Divide(matrix.Mat(x), matrix.Mat(y))
}

func (a *app) unaryMatrixCmd(use, short string, op unaryOp) *cobra.Command {
	return &cobra.Command{
		Use:   use + " FILE",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			start := time.Now()
			res, err := op(a, m)
			a.trace(use, m, start, err)
			if err != nil {
				return err
			}

			return a.emit(cmd, res)
		},
	}
}

func (a *app) binaryCmd(use, short string, op binaryOp) *cobra.Command {
	return &cobra.Command{
		Use:   use + " A B",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.load(args[0])
			if err != nil {
				return err
			}
			y, err := a.load(args[1])
			if err != nil {
				return err
			}
			start := time.Now()
			res, err := op(x, y)
			a.trace(use, x, start, err)
			if err != nil {
				return err
			}

			return a.emit(cmd, res)
		},
	}
}

func (a *app) detCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "det FILE",
		Short: "Determinant (cofactor expansion, or LU with --lu)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			start := time.Now()
			var d float64
			if a.lu {
				d, err = ops.Determinant(m)
			} else {
				d, err = matrix.Determinant(m)
			}
			a.trace("det", m, start, err)
			if err != nil {
				return err
			}

			return a.emitScalar(cmd, d)
		},
	}
	cmd.Flags().BoolVar(&a.lu, "lu", false, "use LU decomposition with partial pivoting")

	return cmd
}

func (a *app) invCmd() *cobra.Command {
	cmd := a.unaryMatrixCmd("inv", "Inverse (adjugate, or LU with --lu)", func(a *app, m *matrix.Dense) (matrix.Matrix, error) {
		if a.lu {
			return ops.Inverse(m)
		}
		return matrix.Inverse(m)
	})
	cmd.Flags().BoolVar(&a.lu, "lu", false, "use LU decomposition with partial pivoting")

	return cmd
}

func (a *app) rankCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rank FILE",
		Short: "Rank (pivot count of the reduced row echelon form)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			start := time.Now()
			r, err := matrix.Rank(m, matrix.WithEpsilon(a.cfg.Epsilon))
			a.trace("rank", m, start, err)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), r)

			return err
		},
	}
}

func (a *app) traceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trace FILE",
		Short: "Sum of the main diagonal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			start := time.Now()
			tr, err := matrix.Trace(m)
			a.trace("trace", m, start, err)
			if err != nil {
				return err
			}

			return a.emitScalar(cmd, tr)
		},
	}
}

// propsView is the printed form of matrix.Report.
type propsView struct {
	Rows            int      `yaml:"rows"`
	Cols            int      `yaml:"cols"`
	Square          bool     `yaml:"square"`
	Symmetric       bool     `yaml:"symmetric"`
	SkewSymmetric   bool     `yaml:"skew_symmetric"`
	Diagonal        bool     `yaml:"diagonal"`
	Scalar          bool     `yaml:"scalar"`
	UpperTriangular bool     `yaml:"upper_triangular"`
	LowerTriangular bool     `yaml:"lower_triangular"`
	Orthogonal      bool     `yaml:"orthogonal"`
	Nilpotent       bool     `yaml:"nilpotent"`
	Nilpotency      *int     `yaml:"nilpotency_index,omitempty"`
	Rank            int      `yaml:"rank"`
	Trace           *float64 `yaml:"trace,omitempty"`
	Determinant     *float64 `yaml:"determinant,omitempty"`
}

func newPropsView(r matrix.Report) propsView {
	v := propsView{
		Rows: r.Rows, Cols: r.Cols, Square: r.Square, Symmetric: r.Symmetric,
		SkewSymmetric: r.SkewSymmetric, Diagonal: r.Diagonal, Scalar: r.Scalar,
		UpperTriangular: r.UpperTriangular, LowerTriangular: r.LowerTriangular,
		Orthogonal: r.Orthogonal, Nilpotent: r.Nilpotent, Rank: r.Rank,
	}
	if r.Square {
		v.Trace, v.Determinant = &r.Trace, &r.Determinant
	}
	if r.Nilpotent {
		v.Nilpotency = &r.Nilpotency
	}

	return v
}

func (a *app) propsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "props FILE",
		Short: "Structural properties report (YAML)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			start := time.Now()
			rep, err := matrix.Properties(m, matrix.WithEpsilon(a.cfg.Epsilon))
			a.trace("props", m, start, err)
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(newPropsView(rep))
			if err != nil {
				return fmt.Errorf("encode properties: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)

			return err
		},
	}
}

func (a *app) latexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "latex FILE",
		Short: "Render a matrix file as a LaTeX bmatrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			a.trace("latex", m, time.Now(), nil)

			return a.emitAs(cmd, m, config.FormatLaTeX)
		},
	}
}

func (a *app) powCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pow FILE N",
		Short: "Non-negative integer power by repeated multiplication",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("exponent %q: %w", args[1], err)
			}
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			start := time.Now()
			res, err := matrix.Pow(m, n)
			a.trace("pow", m, start, err)
			if err != nil {
				return err
			}

			return a.emit(cmd, res)
		},
	}
}

func (a *app) scaleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scale FILE K",
		Short: "Multiply every entry by the scalar K",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("scalar %q: %w", args[1], err)
			}
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			res, err := matrix.Multiply(matrix.Scalar(k), matrix.Mat(m))
			if err != nil {
				return err
			}

			return a.emit(cmd, res)
		},
	}
}

func (a *app) randomCmd() *cobra.Command {
	def := config.Default()
	cmd := &cobra.Command{
		Use:   "random ROWS COLS",
		Short: "Matrix of uniform random integers in [random-min, random-max]",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, cols, err := parseShape(args[0], args[1])
			if err != nil {
				return err
			}
			seed := a.cfg.RandomSeed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			a.log.Debug().Int64("seed", seed).Msg("random")
			m, err := matrix.NewRandomInRange(rows, cols, a.cfg.RandomMin, a.cfg.RandomMax, rand.New(rand.NewSource(seed)))
			if err != nil {
				return err
			}

			return a.emit(cmd, m)
		},
	}
	cmd.Flags().Int64(config.FlagName(config.KeyRandomSeed), def.RandomSeed, "RNG seed (0 = clock)")
	cmd.Flags().Int(config.FlagName(config.KeyRandomMin), def.RandomMin, "smallest value")
	cmd.Flags().Int(config.FlagName(config.KeyRandomMax), def.RandomMax, "largest value")

	return cmd
}

func (a *app) identityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "identity N",
		Short: "N×N identity matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("size %q: %w", args[0], err)
			}
			m, err := matrix.NewIdentity(n)
			if err != nil {
				return err
			}

			return a.emit(cmd, m)
		},
	}
}

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := a.cfg.YAML()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if a.cfgUsed != "" {
				if _, err = fmt.Fprintf(w, "# file: %s\n", a.cfgUsed); err != nil {
					return err
				}
			}
			_, err = w.Write(out)

			return err
		},
	})

	return cmd
}

func parseShape(rs, cs string) (int, int, error) {
	rows, err := strconv.Atoi(rs)
	if err != nil {
		return 0, 0, fmt.Errorf("rows %q: %w", rs, err)
	}
	cols, err := strconv.Atoi(cs)
	if err != nil {
		return 0, 0, fmt.Errorf("cols %q: %w", cs, err)
	}

	return rows, cols, nil
}
