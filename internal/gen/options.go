// SPDX-License-Identifier: MIT

package gen

import "regexp"

const (
	// DefaultModulePath is the import path prefix of the generated packages.
	DefaultModulePath = "github.com/katalvlaran/detmath"

	// DefaultHeader opens every generated file. The second line is the
	// standard marker recognised by go vet and code review tools.
	DefaultHeader = "// SPDX-License-Identifier: MIT\n// Code generated by detmathgen. DO NOT EDIT.\n\n"
)

const (
	panicModulePathEmpty = "gen: WithModulePath: path must be non-empty"
	panicHeaderInvalid   = "gen: WithHeader: header must contain a \"// Code generated ... DO NOT EDIT.\" line and end with a blank line"
)

var generatedMarker = regexp.MustCompile(`(?m)^// Code generated .* DO NOT EDIT\.$`)

// Option mutates Options.
type Option func(*Options)

// Options stores the effective generator configuration.
type Options struct {
	seed       uint64 // DefaultSeed
	modulePath string // DefaultModulePath
	header     string // DefaultHeader
}

// WithSeed overrides the hash constant seed. Any seed other than DefaultSeed
// produces tables that do not match the committed linalg hashes; it exists
// for tests of the derivation itself.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithModulePath sets the module path used in generated imports.
// Panics if path is empty.
func WithModulePath(path string) Option {
	if path == "" {
		panic(panicModulePathEmpty)
	}

	return func(o *Options) { o.modulePath = path }
}

// WithHeader replaces the leading comment block of every file.
// Panics unless header carries the generated-code marker and ends in "\n\n".
func WithHeader(header string) Option {
	if !generatedMarker.MatchString(header) || len(header) < 2 || header[len(header)-2:] != "\n\n" {
		panic(panicHeaderInvalid)
	}

	return func(o *Options) { o.header = header }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		seed:       DefaultSeed,
		modulePath: DefaultModulePath,
		header:     DefaultHeader,
	}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
