// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/MichaelTJones/pcg"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/detmath/linalg"
	"github.com/katalvlaran/detmath/sfloat"
)

const (
	defaultDigestCount = 10000
	defaultDigestSeed  = 0x6465746D617468

	// digestStream selects the PCG sequence; fixed so that only --seed varies.
	digestStream = 0xda3e39cb94b95bdb

	// digestPrime is the FNV-1a 32-bit prime.
	digestPrime = 0x01000193
)

func (a *app) digestCmd() *cobra.Command {
	var (
		count int
		seed  uint64
	)
	cmd := &cobra.Command{
		Use:   "digest",
		Short: "Fingerprint the Float arithmetic and hashing of this machine",
		Long: "digest draws --count pseudo-random Float4x4 pairs from a PCG stream, " +
			"combines each pair with Add, Mul and Div, and folds the HashWide of every " +
			"result into one UInt4. Machines that agree on the printed value agree on " +
			"every operation involved.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count <= 0 {
				return fmt.Errorf("--count must be > 0, got %d", count)
			}
			acc := digest(count, seed)
			a.log.Debug("digest", zap.Int("count", count), zap.Uint64("seed", seed), zap.Stringer("acc", acc))
			fmt.Fprintf(cmd.OutOrStdout(), "%v 0x%08x\n", acc, acc.Hash())
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", defaultDigestCount, "number of matrix pairs")
	cmd.Flags().Uint64Var(&seed, "seed", defaultDigestSeed, "PCG seed")

	return cmd
}

// digest folds count rounds of Float4x4 arithmetic into a UInt4.
func digest(count int, seed uint64) linalg.UInt4 {
	r := pcg.NewPCG32()
	r.Seed(seed, digestStream)

	var acc linalg.UInt4
	for range count {
		m, n := randFloat4x4(r), randFloat4x4(r)
		for _, x := range []linalg.Float4x4{m.Add(n), m.Mul(n), m.Div(n)} {
			acc = acc.MulScalar(digestPrime).Xor(x.HashWide())
		}
	}

	return acc
}

// randFloat4x4 draws every element from the full bit range, so the stream
// covers subnormals, infinities and NaN payloads as well as normal values.
func randFloat4x4(r *pcg.PCG32) linalg.Float4x4 {
	var m linalg.Float4x4
	for c := range m {
		for row := range m[c] {
			m[c][row] = sfloat.FromBits(r.Random())
		}
	}

	return m
}
