// SPDX-License-Identifier: MIT

package gen

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var nopLogger = zap.NewNop()

// current holds the logger installed by SetLogger; nil means none.
var current atomic.Pointer[zap.Logger]

// Logger returns the logger Files and Drift report through. Until SetLogger
// installs one it is a no-op logger.
func Logger() *zap.Logger {
	if l := current.Load(); l != nil {
		return l
	}

	return nopLogger
}

// SetLogger replaces the generator's logger; nil restores the no-op logger.
// It is safe to call concurrently with generation.
func SetLogger(l *zap.Logger) { current.Store(l) }
