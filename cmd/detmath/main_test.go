// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/detmath/linalg"
	"github.com/katalvlaran/detmath/literal"
)

// run executes the root command with args and returns what it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestHash(t *testing.T) {
	t.Parallel()

	out, err := run(t, "hash", "Int3(1, -2, 3)")
	require.NoError(t, err)
	wide := linalg.NewInt3(1, -2, 3).HashWide()
	require.Equal(t, "Hash      0x8aa13739\nHashCode  -1969146055\nHashWide  "+wide.String()+"\n", out)
}

func TestUnaryCommands(t *testing.T) {
	t.Parallel()

	cases := []struct {
		args []string
		want string
	}{
		{[]string{"transpose", "Int2x3(1, 2, 3,  4, 5, 6)"}, "Int3x2(1, 4,  2, 5,  3, 6)\n"},
		{[]string{"det", "Float2x2(1f, 2f,  3f, 4f)"}, "-2\n"},
		{[]string{"det", "Int3x3(2, 0, 0,  0, 3, 0,  0, 0, 4)"}, "24\n"},
		{[]string{"inverse", "Float2x2(2f, 0f,  0f, 2f)"}, "Float2x2(0.5f, -0f,  -0f, 0.5f)\n"},
		{[]string{"inverse", "Int2x2(1, 1,  0, 1)"}, "Int2x2(1, -1,  0, 1)\n"},
		{[]string{"fastinverse", "Float3x4(1f, 0f, 0f, 5f,  0f, 1f, 0f, 6f,  0f, 0f, 1f, 7f)"},
			"Float3x4(1f, 0f, 0f, -5f,  0f, 1f, 0f, -6f,  0f, 0f, 1f, -7f)\n"},
	}
	for _, tc := range cases {
		out, err := run(t, tc.args...)
		require.NoError(t, err, tc.args)
		require.Equal(t, tc.want, out, tc.args)
	}
}

func TestErrors(t *testing.T) {
	t.Parallel()

	_, err := run(t, "inverse", "--guard", "Float2x2(1f, 2f,  2f, 4f)")
	require.ErrorIs(t, err, literal.ErrSingular)

	_, err = run(t, "transpose", "Int3(1, 2, 3)")
	require.ErrorIs(t, err, literal.ErrUnsupported)

	_, err = run(t, "--strict-suffix", "det", "Float2x2(1, 0,  0, 1)")
	require.ErrorIs(t, err, literal.ErrMissingSuffix)

	_, err = run(t, "det", "Int2(1")
	require.ErrorIs(t, err, literal.ErrSyntax)

	_, err = run(t, "hash")
	require.Error(t, err)

	_, err = run(t, "digest", "--count", "0")
	require.Error(t, err)
}

func TestStrictSuffixFromEnv(t *testing.T) {
	t.Setenv("DETMATH_STRICT_SUFFIX", "true")

	_, err := run(t, "det", "Float2x2(1, 0,  0, 1)")
	require.ErrorIs(t, err, literal.ErrMissingSuffix)

	out, err := run(t, "--strict-suffix=false", "det", "Float2x2(1, 0,  0, 1)")
	require.NoError(t, err)
	require.Equal(t, "1\n", out)
}

func TestBadEnv(t *testing.T) {
	t.Setenv("DETMATH_STRICT_SUFFIX", "maybe")

	_, err := run(t, "det", "Float2x2(1f, 0f,  0f, 1f)")
	require.ErrorContains(t, err, "DETMATH_STRICT_SUFFIX")
}

func TestShow(t *testing.T) {
	t.Parallel()

	out, err := run(t, "show", "Int2x3(1, 2, 3,  4, 5, 6)")
	require.NoError(t, err)
	for _, s := range []string{"Int2x3", "c0", "c2", "r0", "r1", "1", "6"} {
		require.Contains(t, out, s)
	}

	out, err = run(t, "show", "Float3(0.5f, -1f, NaNf)")
	require.NoError(t, err)
	for _, s := range []string{"Float3", "X", "Z", "0.5f", "-1f", "NaNf"} {
		require.Contains(t, out, s)
	}
	require.NotContains(t, out, "W")
}

func TestDigest(t *testing.T) {
	t.Parallel()

	a, err := run(t, "digest", "--count", "64", "--seed", "1")
	require.NoError(t, err)
	b, err := run(t, "digest", "--count", "64", "--seed", "1")
	require.NoError(t, err)
	c, err := run(t, "digest", "--count", "64", "--seed", "2")
	require.NoError(t, err)

	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
	require.Regexp(t, `^UInt4\(\d+, \d+, \d+, \d+\) 0x[0-9a-f]{8}\n$`, a)
	require.Equal(t, digest(64, 1), digest(64, 1))
}
