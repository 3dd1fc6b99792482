//go:build !unix

package cli

import (
	"log/slog"

	"github.com/jmgilman/go/native"
)

// registerFiles leaves the registry empty; commands fail as unsupported.
func registerFiles(*native.Registry, *slog.Logger) {}
