// SPDX-License-Identifier: MIT
package gen_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/imports"

	"github.com/katalvlaran/detmath/internal/gen"
)

// moduleRoot is the repository root relative to this package.
const moduleRoot = "../.."

var wantFiles = []string{
	"linalg/bool_mat_gen.go",
	"linalg/bool_vec_gen.go",
	"linalg/float_mat_gen.go",
	"linalg/float_vec_gen.go",
	"linalg/hash_gen.go",
	"linalg/int_mat_gen.go",
	"linalg/int_vec_gen.go",
	"linalg/swizzle_gen.go",
	"linalg/uint_mat_gen.go",
	"linalg/uint_vec_gen.go",
	"literal/dispatch_gen.go",
}

func TestFiles_Set(t *testing.T) {
	t.Parallel()

	files, err := gen.New().Files()
	require.NoError(t, err)
	require.Equal(t, wantFiles, gen.Names(files))
	for name, src := range files {
		require.True(t, strings.HasPrefix(string(src), gen.DefaultHeader), name)
		require.True(t, strings.HasSuffix(string(src), "}\n"), name)
	}
}

// TestFiles_MatchCommittedTree keeps the committed sources in sync with the
// generator. Both sides go through the same formatter so that only content
// differences are reported.
func TestFiles_MatchCommittedTree(t *testing.T) {
	t.Parallel()

	files, err := gen.New().Files()
	require.NoError(t, err)
	for _, name := range gen.Names(files) {
		disk, err := os.ReadFile(filepath.Join(moduleRoot, filepath.FromSlash(name)))
		require.NoError(t, err, name)
		disk, err = imports.Process(name, disk, &imports.Options{Comments: true, TabIndent: true, TabWidth: 8, FormatOnly: true})
		require.NoError(t, err, name)
		if diff := cmp.Diff(string(disk), string(files[name])); diff != "" {
			t.Errorf("%s is stale; run go generate ./linalg (-disk +generated):\n%s", name, diff)
		}
	}
}

func TestFiles_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := gen.New().Files()
	require.NoError(t, err)
	b, err := gen.New().Files()
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(a, b))
}

func TestFiles_Seed(t *testing.T) {
	t.Parallel()

	base, err := gen.New().Files()
	require.NoError(t, err)
	other, err := gen.New(gen.WithSeed(1)).Files()
	require.NoError(t, err)
	for _, name := range wantFiles {
		if name == "linalg/hash_gen.go" {
			require.NotEqual(t, base[name], other[name])
			continue
		}
		require.Equal(t, base[name], other[name], name)
	}
}

func TestFiles_ModulePath(t *testing.T) {
	t.Parallel()

	files, err := gen.New(gen.WithModulePath("example.com/fork")).Files()
	require.NoError(t, err)
	require.Contains(t, string(files["linalg/float_vec_gen.go"]), `"example.com/fork/sfloat"`)
	require.Contains(t, string(files["literal/dispatch_gen.go"]), `import "example.com/fork/linalg"`)
	require.NotContains(t, string(files["linalg/int_vec_gen.go"]), "sfloat")
}

func TestFiles_Header(t *testing.T) {
	t.Parallel()

	header := "// Code generated by test. DO NOT EDIT.\n\n"
	files, err := gen.New(gen.WithHeader(header)).Files()
	require.NoError(t, err)
	for name, src := range files {
		require.True(t, strings.HasPrefix(string(src), header+"package "), name)
	}
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { gen.WithModulePath("") })
	require.Panics(t, func() { gen.WithHeader("// hello\n\n") })
	require.Panics(t, func() { gen.WithHeader("// Code generated by x. DO NOT EDIT.\n") })
	require.NotPanics(t, func() { gen.WithHeader(gen.DefaultHeader) })
}

func TestWriteAndDrift(t *testing.T) {
	t.Parallel()

	files, err := gen.New().Files()
	require.NoError(t, err)
	root := t.TempDir()

	drift, err := gen.Drift(root, files)
	require.NoError(t, err)
	require.Len(t, drift, len(files))

	require.NoError(t, gen.Write(root, files))
	drift, err = gen.Drift(root, files)
	require.NoError(t, err)
	require.Empty(t, drift)

	stale := filepath.Join(root, "linalg", "hash_gen.go")
	require.NoError(t, os.WriteFile(stale, []byte("package linalg\n"), 0o644))
	drift, err = gen.Drift(root, files)
	require.NoError(t, err)
	require.Len(t, drift, 1)
	require.NotEmpty(t, drift["linalg/hash_gen.go"])
}

func TestTypes(t *testing.T) {
	t.Parallel()

	types := gen.Types()
	require.Len(t, types, 48)
	require.Equal(t, "Bool2", types[0].Name())
	require.Equal(t, "Bool2x2", types[3].Name())
	require.Equal(t, "Int2", types[12].Name())
	require.Equal(t, "Float4x4", types[47].Name())

	seen := make(map[string]bool)
	for _, ty := range types {
		require.False(t, seen[ty.Name()], ty.Name())
		seen[ty.Name()] = true
		if ty.IsMatrix() {
			require.Equal(t, ty.Rows*ty.Cols, ty.Size())
		} else {
			require.Equal(t, ty.Rows, ty.Size())
		}
	}
}

func TestFiles_ExportedFuncsDocumented(t *testing.T) {
	t.Parallel()

	files, err := gen.New().Files()
	require.NoError(t, err)
	for _, name := range gen.Names(files) {
		f, err := parser.ParseFile(token.NewFileSet(), name, files[name], parser.ParseComments)
		require.NoError(t, err, name)
		for _, decl := range f.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || !fn.Name.IsExported() {
				continue
			}
			require.NotNil(t, fn.Doc, "%s: %s has no doc comment", name, fn.Name.Name)
		}
	}
}
