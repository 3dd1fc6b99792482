// Package native provides process-wide access to the platform's native
// file facades.
//
// Facades are capability interfaces, such as core.Files, registered with a
// Registry under their interface type. The first Get for a type builds the
// instance through its factory; every later Get returns the same instance.
//
//	files, err := native.Files()
//	if err != nil {
//	    return err
//	}
//	st, err := files.Stat("/etc/hosts")
//
// Default returns a registry with the current platform's factories
// installed. Tests that need isolation should build their own with
// NewRegistry.
package native
