// Package fstest provides a conformance test suite for validating
// implementations of core.Files.
//
// The suite exercises the observable contract of the facade: the typed
// results of Stat, StatTarget and GetMode, the effect of SetMode and
// Symlink, and the exact diagnostic text and error codes of every failure.
// Each sub-suite gets a fresh fixture so that tests never observe each
// other's entries.
//
// Example usage:
//
//	func TestMyFiles(t *testing.T) {
//	    fstest.TestFiles(t, func(t *testing.T) fstest.Fixture {
//	        return fstest.LocalFixture(t, myfiles.New())
//	    })
//	}
package fstest

import (
	"testing"
)

// FSTestConfig configures the test suite to match backend capabilities.
type FSTestConfig struct {
	// SetModeUnsupported indicates SetMode always fails on this backend
	// (for example a billy filesystem without billy.Change). Tests that
	// depend on changing permission bits are skipped; a test asserting the
	// failure runs instead.
	SetModeUnsupported bool

	// SkipTests lists specific test names to skip.
	// Format: "Group/SubTest" (e.g., "Unicode/DirectoryListing").
	SkipTests []string
}

// POSIXTestConfig returns configuration for backends with full POSIX
// semantics.
func POSIXTestConfig() FSTestConfig {
	return FSTestConfig{}
}

// NewFixture returns a fresh, empty fixture. It is called once per
// sub-suite.
type NewFixture func(t *testing.T) Fixture

// TestFiles runs all conformance tests with POSIXTestConfig.
func TestFiles(t *testing.T, newFixture NewFixture) {
	TestFilesWithConfig(t, newFixture, POSIXTestConfig())
}

// TestFilesWithConfig runs all conformance tests with behavior
// configuration.
func TestFilesWithConfig(t *testing.T, newFixture NewFixture, config FSTestConfig) {
	t.Run("Stat", func(t *testing.T) {
		if config.shouldSkip("Stat") {
			t.Skip("Skipped by provider configuration")
		}
		TestStatWithConfig(t, newFixture(t), config)
	})

	t.Run("Mode", func(t *testing.T) {
		if config.shouldSkip("Mode") {
			t.Skip("Skipped by provider configuration")
		}
		TestModeWithConfig(t, newFixture(t), config)
	})

	t.Run("Symlink", func(t *testing.T) {
		if config.shouldSkip("Symlink") {
			t.Skip("Skipped by provider configuration")
		}
		TestSymlinkWithConfig(t, newFixture(t), config)
	})

	t.Run("Unicode", func(t *testing.T) {
		if config.shouldSkip("Unicode") {
			t.Skip("Skipped by provider configuration")
		}
		TestUnicodeWithConfig(t, newFixture(t), config)
	})
}

func (c FSTestConfig) shouldSkip(testName string) bool {
	for _, skip := range c.SkipTests {
		if skip == testName {
			return true
		}
	}
	return false
}

// run runs a named subtest unless it is listed in SkipTests.
func (c FSTestConfig) run(t *testing.T, group, name string, fn func(t *testing.T)) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if c.shouldSkip(group + "/" + name) {
			t.Skip("Skipped by provider configuration")
		}
		fn(t)
	})
}
