// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/detmath/literal"
)

const hashLong = `Print Hash, HashCode and HashWide of a value.

Every NaN is read as the canonical NaN (0x7fc00000), so a value printed with
a different NaN payload hashes differently here than where it came from.`

func (a *app) hashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash LITERAL",
		Short: "Print Hash, HashCode and HashWide of a value",
		Long:  hashLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.parse(args[0])
			if err != nil {
				return err
			}
			wide, err := literal.HashWide(v)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Hash      0x%08x\n", v.Hash())
			fmt.Fprintf(out, "HashCode  %d\n", v.HashCode())
			fmt.Fprintf(out, "HashWide  %v\n", wide)
			return nil
		},
	}
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show LITERAL",
		Short: "Render a value as a grid, one row per matrix row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.parse(args[0])
			if err != nil {
				return err
			}
			grid, err := renderGrid(v)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), grid)
			return nil
		},
	}
}

func (a *app) transposeCmd() *cobra.Command {
	return a.unaryCmd("transpose", "Print the transpose of a matrix", literal.Transpose)
}

func (a *app) fastInverseCmd() *cobra.Command {
	return a.unaryCmd("fastinverse", "Print the rigid-transform inverse of a Float3x4", literal.FastInverse)
}

// unaryCmd builds a command that prints op applied to its literal argument.
func (a *app) unaryCmd(name, short string, op func(literal.Value) (literal.Value, error)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " LITERAL",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.parse(args[0])
			if err != nil {
				return err
			}
			r, err := op(v)
			if err != nil {
				return err
			}
			a.log.Debug(name, zap.String("in", typeName(v)), zap.String("out", typeName(r)))
			fmt.Fprintln(cmd.OutOrStdout(), r)
			return nil
		},
	}
}

func (a *app) detCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "det LITERAL",
		Short: "Print the determinant of a 2×2 or 3×3 Float or Int matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.parse(args[0])
			if err != nil {
				return err
			}
			d, err := literal.Determinant(v)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), d)
			return nil
		},
	}
}

func (a *app) inverseCmd() *cobra.Command {
	var guard bool
	cmd := &cobra.Command{
		Use:   "inverse LITERAL",
		Short: "Print the inverse of a 2×2 or 3×3 Float or Int matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.parse(args[0])
			if err != nil {
				return err
			}
			inv, err := literal.Inverse(v, literal.WithSingularGuard(guard))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), inv)
			return nil
		},
	}
	cmd.Flags().BoolVar(&guard, "guard", false, "fail on singular Float matrices instead of printing non-finite elements")

	return cmd
}

// typeName returns the linalg type name of v, e.g. "Float3x3".
func typeName(v literal.Value) string {
	name, _, _ := strings.Cut(v.String(), "(")
	return name
}
