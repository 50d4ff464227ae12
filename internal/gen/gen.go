// SPDX-License-Identifier: MIT

package gen

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"golang.org/x/tools/imports"
)

// Generator renders the generated part of the module.
type Generator struct {
	opts Options
}

// New returns a Generator configured by opts.
func New(opts ...Option) *Generator {
	return &Generator{opts: gatherOptions(opts...)}
}

// Files renders every generated file, keyed by slash-separated path relative
// to the module root, and formats each one with goimports rules.
func (g *Generator) Files() (map[string][]byte, error) {
	raw := map[string][]byte{
		"linalg/swizzle_gen.go":   g.swizzleFile(),
		"linalg/hash_gen.go":      g.hashFile(),
		"literal/dispatch_gen.go": g.dispatchFile(),
	}
	for _, d := range Domains {
		prefix := "linalg/" + strings.ToLower(d.Name)
		raw[prefix+"_vec_gen.go"] = g.vectorFile(d)
		raw[prefix+"_mat_gen.go"] = g.matrixFile(d)
	}

	out := make(map[string][]byte, len(raw))
	for _, name := range Names(raw) {
		src, err := imports.Process(name, raw[name], &imports.Options{
			Comments:   true,
			TabIndent:  true,
			TabWidth:   8,
			FormatOnly: true,
		})
		if err != nil {
			return nil, fmt.Errorf("gen: format %s: %w", name, err)
		}
		out[name] = src
		Logger().Debug("rendered", zap.String("file", name), zap.Int("bytes", len(src)))
	}

	return out, nil
}

// Names returns the keys of files in sorted order.
func Names(files map[string][]byte) []string {
	return slices.Sorted(maps.Keys(files))
}

// Write stores files below root, creating directories as needed.
func Write(root string, files map[string][]byte) error {
	for _, name := range Names(files) {
		dst := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return fmt.Errorf("gen: %w", err)
		}
		if err := os.WriteFile(dst, files[name], 0o644); err != nil {
			return fmt.Errorf("gen: %w", err)
		}
		Logger().Info("wrote", zap.String("file", name), zap.Int("bytes", len(files[name])))
	}

	return nil
}

// Drift compares files with their copies below root and returns a line diff
// for every file that differs or is missing. An empty map means the tree is
// up to date.
func Drift(root string, files map[string][]byte) (map[string]string, error) {
	out := make(map[string]string)
	for _, name := range Names(files) {
		disk, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(name)))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("gen: %w", err)
		}
		if diff := cmp.Diff(lines(disk), lines(files[name])); diff != "" {
			out[name] = diff
			Logger().Warn("drift", zap.String("file", name))
		}
	}

	return out, nil
}

func lines(b []byte) []string {
	if len(b) == 0 {
		return nil
	}

	return strings.SplitAfter(string(b), "\n")
}

// newFile starts a file of package pkg with the configured header.
func (g *Generator) newFile(pkg string, paths ...string) *file {
	f := &file{}
	f.prelude(g.opts.header, pkg, paths...)

	return f
}

// pkgPath returns the import path of a package of this module.
func (g *Generator) pkgPath(name string) string { return path.Join(g.opts.modulePath, name) }
