// Package xlog holds the module-wide zerolog logger. It is silent until a
// caller installs a real logger through rop.SetLogger.
package xlog

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

var current atomic.Pointer[zerolog.Logger]

func init() {
	nop := zerolog.Nop()
	current.Store(&nop)
}

// Set replaces the logger used by every package of the module.
func Set(l zerolog.Logger) {
	current.Store(&l)
}

// Get returns the active logger.
func Get() *zerolog.Logger {
	return current.Load()
}

// Component returns the active logger tagged with a component name.
func Component(name string) zerolog.Logger {
	return current.Load().With().Str("component", name).Logger()
}

func Debug(component, msg string) {
	l := Component(component)
	l.Debug().Msg(msg)
}

func Error(component string, err error, msg string) {
	l := Component(component)
	l.Error().Err(err).Msg(msg)
}
