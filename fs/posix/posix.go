//go:build unix

package posix

import (
	"log/slog"

	"github.com/jmgilman/go/native/fs/core"
	"github.com/jmgilman/go/native/fs/oserr"
	"github.com/jmgilman/go/native/internal/logging"
)

// Files is the POSIX implementation of core.Files.
// It holds no mutable state and is safe for concurrent use.
type Files struct {
	logger *slog.Logger
}

// Option configures a Files.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger sets the logger that receives one debug record per system
// call. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// New creates a POSIX files facade.
func New(opts ...Option) *Files {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = logging.Discard()
	}
	return &Files{logger: cfg.logger}
}

// Type returns FSTypeLocal.
func (f *Files) Type() core.FSType {
	return core.FSTypeLocal
}

// logCall records a system call and passes err through.
func (f *Files) logCall(call, path string, err error) error {
	logging.LogCall(f.logger, call, path, oserr.Errno(err))
	return err
}

// Compile-time interface check.
var _ core.Files = (*Files)(nil)
