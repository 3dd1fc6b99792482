//go:build !unix

package native

// registerDefaults installs nothing; Files fails with CodeUnsupported.
func registerDefaults(*Registry) {}
