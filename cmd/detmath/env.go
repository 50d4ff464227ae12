// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
)

// bindEnv sets every flag the command line left unset from its environment
// variable: --strict-suffix reads DETMATH_STRICT_SUFFIX.
func bindEnv(flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed {
			return
		}
		name := envPrefix + strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
		val, ok := os.LookupEnv(name)
		if !ok {
			return
		}
		if setErr := flags.Set(f.Name, val); setErr != nil {
			err = fmt.Errorf("%s=%q: %w", name, val, setErr)
		}
	})

	return err
}
