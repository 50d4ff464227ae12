// SPDX-License-Identifier: MIT

// Command detmathgen writes the generated sources of linalg and literal.
//
// Usage:
//
//	detmathgen --root .            # rewrite the *_gen.go files
//	detmathgen --root . --check    # report drift, exit 1 if any
//
// Or via go:generate (see linalg/doc.go):
//
//	//go:generate go run ../cmd/detmathgen --root ..
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/detmath/internal/gen"
)

// errDrift makes the command exit non-zero after the diffs are printed.
var errDrift = errors.New("generated files are out of date")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		root    string
		check   bool
		verbose bool
	)
	cmd := &cobra.Command{
		Use:          "detmathgen",
		Short:        "Generate the linalg type family, swizzles, hash tables and literal dispatch",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := newLogger(verbose)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			gen.SetLogger(log)

			files, err := gen.New().Files()
			if err != nil {
				return err
			}
			if !check {
				return gen.Write(root, files)
			}

			drift, err := gen.Drift(root, files)
			if err != nil {
				return err
			}
			for _, name := range gen.Names(files) {
				if diff, ok := drift[name]; ok {
					fmt.Fprintf(cmd.OutOrStdout(), "--- %s (-disk +generated)\n%s\n", name, diff)
				}
			}
			if len(drift) > 0 {
				log.Error("drift", zap.Int("files", len(drift)))
				return errDrift
			}
			log.Info("up to date", zap.Int("files", len(files)))

			return nil
		},
	}
	cmd.Flags().StringVar(&root, "root", ".", "module root directory")
	cmd.Flags().BoolVar(&check, "check", false, "compare instead of writing; exit 1 on drift")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every file")

	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true

	return cfg.Build()
}
