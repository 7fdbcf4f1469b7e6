package fixed

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

var loggerPtr atomic.Pointer[zerolog.Logger]

func init() {
	l := zerolog.Nop()
	loggerPtr.Store(&l)
}

// SetLogger sets the logger used by fixed and the packages built on it.
// Nothing is logged by default. Arithmetic never logs, only configuration events do.
// SetLogger is safe for concurrent use.
func SetLogger(l zerolog.Logger) {
	loggerPtr.Store(&l)
}

// Logger returns the current logger.
func Logger() *zerolog.Logger {
	return loggerPtr.Load()
}
