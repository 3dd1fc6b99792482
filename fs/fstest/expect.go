package fstest

import (
	"strings"
	"testing"

	"github.com/jmgilman/go/native/errors"
	"github.com/jmgilman/go/native/fs/pathcodec"
)

// message builds the expected diagnostic for a failed facade call.
func message(action, noun, prep, path, clause string) string {
	return "Could not " + action + " " + noun + " " + prep + " " + pathcodec.Display(path) + ": " + clause + "."
}

// expectError checks that err is a platform error with the given code and
// exact message.
func expectError(t *testing.T, label string, err error, code errors.ErrorCode, want string) {
	t.Helper()
	if err == nil {
		t.Errorf("%s: got nil error, want %s", label, code)
		return
	}
	if got := errors.GetCode(err); got != code {
		t.Errorf("%s: got code %s, want %s", label, got, code)
	}
	if got := err.Error(); got != want {
		t.Errorf("%s: got message %q, want %q", label, got, want)
	}
}

// expectErrorContains is expectError for messages whose errno part differs
// between platforms.
func expectErrorContains(t *testing.T, label string, err error, code errors.ErrorCode, parts ...string) {
	t.Helper()
	if err == nil {
		t.Errorf("%s: got nil error, want %s", label, code)
		return
	}
	if got := errors.GetCode(err); got != code {
		t.Errorf("%s: got code %s, want %s", label, got, code)
	}
	for _, part := range parts {
		if !strings.Contains(err.Error(), part) {
			t.Errorf("%s: message %q does not contain %q", label, err.Error(), part)
		}
	}
}
