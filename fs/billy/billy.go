package billy

import (
	"log/slog"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/jmgilman/go/native/fs/core"
	"github.com/jmgilman/go/native/fs/oserr"
	"github.com/jmgilman/go/native/internal/logging"
)

// Files implements core.Files over a billy.Filesystem.
// It keeps access to the underlying filesystem for go-git integration.
type Files struct {
	bfs    billy.Filesystem
	typ    core.FSType
	logger *slog.Logger
}

// Option configures filesystem creation.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger sets the logger that receives one debug record per backend
// call. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// New wraps an arbitrary billy.Filesystem. typ is reported by Type.
func New(bfs billy.Filesystem, typ core.FSType, opts ...Option) *Files {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = logging.Discard()
	}
	return &Files{bfs: bfs, typ: typ, logger: cfg.logger}
}

// NewLocal creates a go-billy-backed local filesystem bound to root.
// Relative paths resolve against root and paths may not escape it.
// SetMode is supported.
func NewLocal(root string, opts ...Option) *Files {
	bfs := &boundChange{Filesystem: osfs.New(root, osfs.WithBoundOS())}
	return New(bfs, core.FSTypeLocal, opts...)
}

// NewMemory creates a go-billy-backed in-memory filesystem.
// The filesystem is initially empty. memfs keeps no permission bits that
// can be changed, so SetMode fails with ENOSYS.
func NewMemory(opts ...Option) *Files {
	return New(memfs.New(), core.FSTypeMemory, opts...)
}

// Unwrap returns the underlying billy.Filesystem for go-git integration.
// This allows passing the filesystem to go-git APIs that require billy.Filesystem.
func (f *Files) Unwrap() billy.Filesystem {
	return f.bfs
}

// Type returns the filesystem type given at construction.
func (f *Files) Type() core.FSType {
	return f.typ
}

// normalize converts paths to use forward slashes consistently.
// This is a simplified path normalization since billy handles security.
func normalize(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

func (f *Files) logCall(call, path string, err error) error {
	logging.LogCall(f.logger, call, path, oserr.Errno(err))
	return err
}

// Compile-time interface check.
var _ core.Files = (*Files)(nil)
