//go:build unix

package native

import (
	"github.com/jmgilman/go/native/fs/core"
	"github.com/jmgilman/go/native/fs/posix"
)

func registerDefaults(r *Registry) {
	Register(r, func() (core.Files, error) {
		return posix.New(), nil
	})
}
