// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/simplealgebra/numeric"
	"github.com/katalvlaran/simplealgebra/parallel"
	"github.com/katalvlaran/simplealgebra/ring"
)

const (
	sideLeft  = "left"
	sideRight = "right"
)

type invertResult struct {
	File string      `yaml:"file"`
	Rows [][]float64 `yaml:"rows,flow"`
}

type detResult struct {
	File        string  `yaml:"file"`
	Determinant float64 `yaml:"determinant"`
}

type traceResult struct {
	Trace float64 `yaml:"trace"`
}

// inverter selects the inverse variant for --side and --reverse.
func inverter(side string, reverse bool) (ring.MutatorFunc[*floatSquare], error) {
	switch {
	case side == sideLeft && !reverse:
		return (*floatSquare).InvertLeft, nil
	case side == sideLeft:
		return (*floatSquare).InvertLeftRevCoeff, nil
	case side == sideRight && !reverse:
		return (*floatSquare).InvertRight, nil
	case side == sideRight:
		return (*floatSquare).InvertRightRevCoeff, nil
	default:
		return nil, fmt.Errorf("unknown side %q (want %s or %s)", side, sideLeft, sideRight)
	}
}

func readSquares(paths []string) ([]*floatSquare, error) {
	out := make([]*floatSquare, len(paths))
	for i, p := range paths {
		doc, err := readDoc[matrixDoc](p)
		if err != nil {
			return nil, err
		}
		if out[i], err = doc.square(); err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}

	return out, nil
}

func (a *app) invertCmd() *cobra.Command {
	var (
		side    string
		reverse bool
	)
	cmd := &cobra.Command{
		Use:   "invert FILE...",
		Short: "Invert square matrices by Gauss-Jordan elimination",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := inverter(side, reverse)
			if err != nil {
				return err
			}
			squares, err := readSquares(args)
			if err != nil {
				return err
			}
			a.log.Info("inverting", zap.Int("matrices", len(squares)), zap.String("side", side), zap.Bool("reverse", reverse))

			inverses, err := parallel.Mutate[*floatSquare](cmd.Context(), inv, squares, a.batchOptions()...)
			if err != nil {
				return err
			}
			results := make([]invertResult, len(inverses))
			for i, m := range inverses {
				doc, err := squareDoc(m, a.cfg.ZeroTolerance)
				if err != nil {
					return err
				}
				results[i] = invertResult{File: args[i], Rows: doc.Rows}
			}

			return a.emit(results)
		},
	}
	cmd.Flags().StringVar(&side, "side", sideLeft, "Inverse side: left or right")
	cmd.Flags().BoolVar(&reverse, "reverse", false, "Use reversed coefficient multiplication")

	return cmd
}

func (a *app) detCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "det FILE...",
		Short: "Compute determinants by cofactor expansion",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			squares, err := readSquares(args)
			if err != nil {
				return err
			}
			dets, err := parallel.Map(cmd.Context(), ring.Factory[numeric.Float](numeric.FloatFactory{}), squares,
				func(_ context.Context, _ ring.Factory[numeric.Float], m *floatSquare) (float64, error) {
					return float64(m.Determinant()), nil
				}, a.batchOptions()...)
			if err != nil {
				return err
			}
			results := make([]detResult, len(dets))
			for i, d := range dets {
				results[i] = detResult{File: args[i], Determinant: clean(d, a.cfg.ZeroTolerance)}
			}

			return a.emit(results)
		},
	}
}

func (a *app) traceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trace FILE",
		Short: "Trace a rank-two tensor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDoc[tensorDoc](args[0])
			if err != nil {
				return err
			}
			t, err := doc.tensor()
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			tr, err := t.RankTwoTrace()
			if err != nil {
				return err
			}

			return a.emit(traceResult{Trace: clean(float64(tr.GetVal(nil)), a.cfg.ZeroTolerance)})
		},
	}
}

func (a *app) contractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contract FILE",
		Short: "Multiply two tensors, summing repeated upper/lower slot names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDoc[contractDoc](args[0])
			if err != nil {
				return err
			}
			left, err := doc.Left.tensor()
			if err != nil {
				return fmt.Errorf("%s: left: %w", args[0], err)
			}
			right, err := doc.Right.tensor()
			if err != nil {
				return fmt.Errorf("%s: right: %w", args[0], err)
			}
			product := left.Mult(right)
			a.log.Debug("contracted",
				zap.Strings("contravariant", product.Contravariant()),
				zap.Strings("covariant", product.Covariant()),
				zap.Int("entries", product.Len()))

			return a.emit(tensorDocOf(product, a.cfg.ZeroTolerance))
		},
	}
}
