//go:build unix

package cli

import (
	"log/slog"

	"github.com/jmgilman/go/native"
	"github.com/jmgilman/go/native/fs/core"
	"github.com/jmgilman/go/native/fs/posix"
)

func registerFiles(r *native.Registry, logger *slog.Logger) {
	native.Register(r, func() (core.Files, error) {
		return posix.New(posix.WithLogger(logger)), nil
	})
}
