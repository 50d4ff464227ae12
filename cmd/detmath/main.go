// SPDX-License-Identifier: MIT

// Command detmath inspects linalg values written in their String form. It is
// meant for lockstep desync hunts: paste a value from two machines' logs and
// compare hashes, or compare digest fingerprints of the arithmetic itself.
//
// Usage:
//
//	detmath hash 'Float2x2(1f, 0f,  0f, 1f)'
//	detmath show 'Int2x3(1, 2, 3,  4, 5, 6)'
//	detmath inverse --guard 'Float3x3(2f, 0f, 0f,  0f, 4f, 0f,  0f, 0f, 8f)'
//	detmath digest --count 100000 --seed 42
//
// Global flags fall back to DETMATH_VERBOSE and DETMATH_STRICT_SUFFIX.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/detmath/literal"
)

// envPrefix prefixes the environment fallback of every flag.
const envPrefix = "DETMATH_"

// app carries the state shared by the subcommands.
type app struct {
	verbose      bool
	strictSuffix bool
	log          *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}
	cmd := &cobra.Command{
		Use:          "detmath",
		Short:        "Inspect deterministic vector and matrix values",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := bindEnv(cmd.Flags()); err != nil {
				return err
			}
			log, err := newLogger(a.verbose)
			if err != nil {
				return err
			}
			a.log = log
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.log.Sync() },
	}
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging to stderr")
	cmd.PersistentFlags().BoolVar(&a.strictSuffix, "strict-suffix", false, "require the f suffix on Float elements")

	cmd.AddCommand(
		a.hashCmd(),
		a.showCmd(),
		a.transposeCmd(),
		a.detCmd(),
		a.inverseCmd(),
		a.fastInverseCmd(),
		a.digestCmd(),
	)

	return cmd
}

// parse reads the literal argument with the global parsing options.
func (a *app) parse(s string) (literal.Value, error) {
	v, err := literal.Parse(s, literal.WithStrictSuffix(a.strictSuffix))
	if err != nil {
		a.log.Debug("parse failed", zap.String("input", s), zap.Error(err))
		return nil, err
	}
	a.log.Debug("parsed", zap.String("type", typeName(v)), zap.Uint32("hash", v.Hash()))

	return v, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}

	return zap.NewDevelopment()
}
