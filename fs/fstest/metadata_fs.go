package fstest

import (
	"testing"

	"github.com/jmgilman/go/native/errors"
	"github.com/jmgilman/go/native/fs/core"
)

// TestStat tests Stat and StatTarget.
// Uses POSIXTestConfig() by default.
func TestStat(t *testing.T, fx Fixture) {
	TestStatWithConfig(t, fx, POSIXTestConfig())
}

// TestStatWithConfig tests Stat and StatTarget with behavior configuration.
func TestStatWithConfig(t *testing.T, fx Fixture, config FSTestConfig) {
	config.run(t, "Stat", "MissingPath", func(t *testing.T) {
		testStatMissing(t, fx)
	})
	config.run(t, "Stat", "RegularFile", func(t *testing.T) {
		testStatRegularFile(t, fx)
	})
	config.run(t, "Stat", "Directory", func(t *testing.T) {
		testStatDirectory(t, fx)
	})
	config.run(t, "Stat", "SymlinkNotFollowed", func(t *testing.T) {
		testStatSymlink(t, fx)
	})
	config.run(t, "Stat", "DanglingSymlink", func(t *testing.T) {
		testStatDangling(t, fx)
	})
	config.run(t, "Stat", "InvalidPath", func(t *testing.T) {
		testStatInvalidPath(t, fx)
	})
}

// testStatMissing tests that a missing path is a result, not an error.
func testStatMissing(t *testing.T, fx Fixture) {
	for _, p := range []string{fx.Path("does-not-exist"), fx.Path("no/such/dir/file"), ""} {
		st, err := fx.Files.Stat(p)
		if err != nil {
			t.Errorf("Stat(%q): got error %v, want nil", p, err)
			continue
		}
		if st.Type != core.FileTypeMissing {
			t.Errorf("Stat(%q): Type = %s, want missing", p, st.Type)
		}
		if st.Mode != 0 {
			t.Errorf("Stat(%q): Mode = %s, want 0000", p, st.Mode)
		}
		if st.Exists() {
			t.Errorf("Stat(%q): Exists() = true, want false", p)
		}
	}
}

func testStatRegularFile(t *testing.T, fx Fixture) {
	data := []byte("stat test content")
	p := fx.mustWriteFile(t, "stat-file.txt", data)

	st, err := fx.Files.Stat(p)
	if err != nil {
		t.Fatalf("Stat(stat-file.txt): got error %v, want nil", err)
	}
	if st.Type != core.FileTypeFile {
		t.Errorf("Stat(stat-file.txt): Type = %s, want file", st.Type)
	}
	if st.Mode == 0 {
		t.Errorf("Stat(stat-file.txt): Mode = 0000, want non-zero")
	}
	if st.Size != int64(len(data)) {
		t.Errorf("Stat(stat-file.txt): Size = %d, want %d", st.Size, len(data))
	}
}

func testStatDirectory(t *testing.T, fx Fixture) {
	p := fx.mustMkdir(t, "stat-dir")

	st, err := fx.Files.Stat(p)
	if err != nil {
		t.Fatalf("Stat(stat-dir): got error %v, want nil", err)
	}
	if st.Type != core.FileTypeDirectory {
		t.Errorf("Stat(stat-dir): Type = %s, want directory", st.Type)
	}
	if st.Mode == 0 {
		t.Errorf("Stat(stat-dir): Mode = 0000, want non-zero")
	}
}

// testStatSymlink tests that Stat reports the link itself and StatTarget
// the entry it points to.
func testStatSymlink(t *testing.T, fx Fixture) {
	fx.mustWriteFile(t, "stat-target.txt", []byte("target"))
	link := fx.mustSymlink(t, "stat-link", "stat-target.txt")

	st, err := fx.Files.Stat(link)
	if err != nil {
		t.Fatalf("Stat(stat-link): got error %v, want nil", err)
	}
	if st.Type != core.FileTypeSymlink {
		t.Errorf("Stat(stat-link): Type = %s, want symlink", st.Type)
	}

	st, err = fx.Files.StatTarget(link)
	if err != nil {
		t.Fatalf("StatTarget(stat-link): got error %v, want nil", err)
	}
	if st.Type != core.FileTypeFile {
		t.Errorf("StatTarget(stat-link): Type = %s, want file", st.Type)
	}
}

func testStatDangling(t *testing.T, fx Fixture) {
	link := fx.mustSymlink(t, "dangling-link", "nowhere")

	st, err := fx.Files.Stat(link)
	if err != nil {
		t.Fatalf("Stat(dangling-link): got error %v, want nil", err)
	}
	if st.Type != core.FileTypeSymlink {
		t.Errorf("Stat(dangling-link): Type = %s, want symlink", st.Type)
	}

	st, err = fx.Files.StatTarget(link)
	if err != nil {
		t.Fatalf("StatTarget(dangling-link): got error %v, want nil", err)
	}
	if st.Type != core.FileTypeMissing {
		t.Errorf("StatTarget(dangling-link): Type = %s, want missing", st.Type)
	}
}

// testStatInvalidPath tests that a path containing NUL fails without
// reaching the backend.
func testStatInvalidPath(t *testing.T, fx Fixture) {
	p := fx.Path("bad\x00name")
	_, err := fx.Files.Stat(p)
	expectErrorContains(t, "Stat(bad\\x00name)", err, errors.CodeOSFailure,
		"Could not get file details for ", "could not lstat file (EINVAL errno 22)")
}

// TestMode tests GetMode and SetMode.
// Uses POSIXTestConfig() by default.
func TestMode(t *testing.T, fx Fixture) {
	TestModeWithConfig(t, fx, POSIXTestConfig())
}

// TestModeWithConfig tests GetMode and SetMode with behavior configuration.
func TestModeWithConfig(t *testing.T, fx Fixture, config FSTestConfig) {
	config.run(t, "Mode", "GetModeMissing", func(t *testing.T) {
		testGetModeMissing(t, fx)
	})
	config.run(t, "Mode", "GetModeFollowsSymlink", func(t *testing.T) {
		testGetModeFollowsSymlink(t, fx)
	})
	config.run(t, "Mode", "SetModeMissing", func(t *testing.T) {
		testSetModeMissing(t, fx)
	})

	if config.SetModeUnsupported {
		config.run(t, "Mode", "SetModeUnsupported", func(t *testing.T) {
			testSetModeUnsupported(t, fx)
		})
		return
	}

	config.run(t, "Mode", "SetAndGet", func(t *testing.T) {
		testSetAndGetMode(t, fx)
	})
	config.run(t, "Mode", "SpecialBits", func(t *testing.T) {
		testSetModeSpecialBits(t, fx)
	})
}

func testGetModeMissing(t *testing.T, fx Fixture) {
	p := fx.Path("missing-mode.txt")

	_, err := fx.Files.GetMode(p)
	expectError(t, "GetMode(missing-mode.txt)", err, errors.CodeNotFound,
		message("get", "UNIX mode", "on", p, "file does not exist"))
	if !errors.Is(err, core.ErrNotExist) {
		t.Errorf("GetMode(missing-mode.txt): errors.Is(err, core.ErrNotExist) = false, want true")
	}
}

func testGetModeFollowsSymlink(t *testing.T, fx Fixture) {
	target := fx.mustWriteFile(t, "mode-target.txt", []byte("x"))
	link := fx.mustSymlink(t, "mode-link", "mode-target.txt")

	want, err := fx.Files.GetMode(target)
	if err != nil {
		t.Fatalf("GetMode(mode-target.txt): got error %v, want nil", err)
	}
	got, err := fx.Files.GetMode(link)
	if err != nil {
		t.Fatalf("GetMode(mode-link): got error %v, want nil", err)
	}
	if got != want {
		t.Errorf("GetMode(mode-link): got %s, want %s", got, want)
	}
}

// testSetModeMissing tests that a missing path is an OS failure for the
// mutating call, not NOT_FOUND.
func testSetModeMissing(t *testing.T, fx Fixture) {
	p := fx.Path("missing-chmod.txt")

	err := fx.Files.SetMode(p, 0o740)
	if err == nil {
		t.Fatalf("SetMode(missing-chmod.txt): got nil error, want error")
	}
	if errors.GetCode(err) == errors.CodeNotFound {
		t.Errorf("SetMode(missing-chmod.txt): got code NOT_FOUND, want an OS failure")
	}
	if !errors.Is(err, core.ErrNotExist) {
		t.Errorf("SetMode(missing-chmod.txt): errors.Is(err, core.ErrNotExist) = false, want true")
	}
}

func testSetModeUnsupported(t *testing.T, fx Fixture) {
	p := fx.mustWriteFile(t, "chmod-unsupported.txt", []byte("x"))

	err := fx.Files.SetMode(p, 0o740)
	expectErrorContains(t, "SetMode(chmod-unsupported.txt)", err, errors.CodeOSFailure,
		"Could not set UNIX mode on ", "could not chmod file (")
}

func testSetAndGetMode(t *testing.T, fx Fixture) {
	p := fx.mustWriteFile(t, "chmod.txt", []byte("x"))

	for _, mode := range []core.PermissionBits{0o740, 0o660, 0o600, 0o755} {
		if err := fx.Files.SetMode(p, mode); err != nil {
			t.Errorf("SetMode(chmod.txt, %s): got error %v, want nil", mode, err)
			continue
		}

		got, err := fx.Files.GetMode(p)
		if err != nil {
			t.Errorf("GetMode(chmod.txt): got error %v, want nil", err)
		} else if got != mode {
			t.Errorf("GetMode(chmod.txt) after SetMode(%s): got %s", mode, got)
		}

		st, err := fx.Files.Stat(p)
		if err != nil {
			t.Errorf("Stat(chmod.txt): got error %v, want nil", err)
		} else if st.Mode != mode {
			t.Errorf("Stat(chmod.txt).Mode after SetMode(%s): got %s", mode, st.Mode)
		}
	}
}

func testSetModeSpecialBits(t *testing.T, fx Fixture) {
	p := fx.mustMkdir(t, "sticky-dir")

	want := core.ModeSticky | 0o755
	if err := fx.Files.SetMode(p, want); err != nil {
		t.Fatalf("SetMode(sticky-dir, %s): got error %v, want nil", want, err)
	}
	got, err := fx.Files.GetMode(p)
	if err != nil {
		t.Fatalf("GetMode(sticky-dir): got error %v, want nil", err)
	}
	if got != want {
		t.Errorf("GetMode(sticky-dir): got %s, want %s", got, want)
	}
}
