package fstest

import (
	"testing"

	"github.com/jmgilman/go/native/errors"
	"github.com/jmgilman/go/native/fs/core"
)

// TestSymlink tests symlink operations (Symlink, ReadLink).
// Uses POSIXTestConfig() by default.
func TestSymlink(t *testing.T, fx Fixture) {
	TestSymlinkWithConfig(t, fx, POSIXTestConfig())
}

// TestSymlinkWithConfig tests symlink operations with behavior configuration.
func TestSymlinkWithConfig(t *testing.T, fx Fixture, config FSTestConfig) {
	config.run(t, "Symlink", "CreateAndRead", func(t *testing.T) {
		testSymlinkCreateAndRead(t, fx)
	})
	config.run(t, "Symlink", "TargetStoredVerbatim", func(t *testing.T) {
		testSymlinkVerbatim(t, fx)
	})
	config.run(t, "Symlink", "ToDirectory", func(t *testing.T) {
		testSymlinkDirectory(t, fx)
	})
	config.run(t, "Symlink", "AlreadyExists", func(t *testing.T) {
		testSymlinkExists(t, fx)
	})
	config.run(t, "Symlink", "MissingParent", func(t *testing.T) {
		testSymlinkMissingParent(t, fx)
	})
	config.run(t, "Symlink", "ParentNotADirectory", func(t *testing.T) {
		testSymlinkParentNotDir(t, fx)
	})
	config.run(t, "Symlink", "ReadLinkMissing", func(t *testing.T) {
		testReadLinkMissing(t, fx)
	})
	config.run(t, "Symlink", "ReadLinkNotALink", func(t *testing.T) {
		testReadLinkNotALink(t, fx)
	})
}

func testSymlinkCreateAndRead(t *testing.T, fx Fixture) {
	fx.mustWriteFile(t, "target", []byte("target file content"))
	link := fx.Path("link")

	if err := fx.Files.Symlink(link, "target"); err != nil {
		t.Fatalf("Symlink(link, target): got error %v, want nil", err)
	}

	target, err := fx.Files.ReadLink(link)
	if err != nil {
		t.Fatalf("ReadLink(link): got error %v, want nil", err)
	}
	if target != "target" {
		t.Errorf("ReadLink(link): got %q, want %q", target, "target")
	}

	st, err := fx.Files.Stat(link)
	if err != nil {
		t.Fatalf("Stat(link): got error %v, want nil", err)
	}
	if st.Type != core.FileTypeSymlink {
		t.Errorf("Stat(link): Type = %s, want symlink", st.Type)
	}
}

// testSymlinkVerbatim tests that targets are neither resolved nor
// validated.
func testSymlinkVerbatim(t *testing.T, fx Fixture) {
	targets := map[string]string{
		"rel-link":    "../elsewhere/file.txt",
		"dot-link":    "./a/../b",
		"abs-link":    "/definitely/not/here",
		"spaces-link": "name with spaces",
	}
	for name, target := range targets {
		link := fx.Path(name)
		if err := fx.Files.Symlink(link, target); err != nil {
			t.Errorf("Symlink(%s, %s): got error %v, want nil", name, target, err)
			continue
		}
		got, err := fx.Files.ReadLink(link)
		if err != nil {
			t.Errorf("ReadLink(%s): got error %v, want nil", name, err)
			continue
		}
		if got != target {
			t.Errorf("ReadLink(%s): got %q, want %q", name, got, target)
		}
	}
}

func testSymlinkDirectory(t *testing.T, fx Fixture) {
	fx.mustMkdir(t, "target-dir")
	fx.mustWriteFile(t, "target-dir/file.txt", []byte("dir content"))
	link := fx.mustSymlink(t, "link-dir", "target-dir")

	st, err := fx.Files.StatTarget(link)
	if err != nil {
		t.Fatalf("StatTarget(link-dir): got error %v, want nil", err)
	}
	if st.Type != core.FileTypeDirectory {
		t.Errorf("StatTarget(link-dir): Type = %s, want directory", st.Type)
	}

	st, err = fx.Files.StatTarget(fx.Path("link-dir/file.txt"))
	if err != nil {
		t.Fatalf("StatTarget(link-dir/file.txt): got error %v, want nil", err)
	}
	if st.Type != core.FileTypeFile {
		t.Errorf("StatTarget(link-dir/file.txt): Type = %s, want file", st.Type)
	}
}

func testSymlinkExists(t *testing.T, fx Fixture) {
	p := fx.mustWriteFile(t, "occupied", []byte("x"))

	err := fx.Files.Symlink(p, "anything")
	expectError(t, "Symlink(occupied, anything)", err, errors.CodeAlreadyExists,
		message("create", "symlink", "for", p, "could not symlink file (EEXIST errno 17)"))
	if !errors.Is(err, core.ErrExist) {
		t.Errorf("Symlink(occupied, anything): errors.Is(err, core.ErrExist) = false, want true")
	}
}

// testSymlinkMissingParent tests that missing parent directories are not
// created on the caller's behalf.
func testSymlinkMissingParent(t *testing.T, fx Fixture) {
	link := fx.Path("no/such/link")

	err := fx.Files.Symlink(link, "target")
	expectError(t, "Symlink(no/such/link, target)", err, errors.CodeOSFailure,
		message("create", "symlink", "for", link, "could not symlink file (ENOENT errno 2)"))

	st, err := fx.Files.Stat(fx.Path("no"))
	if err != nil {
		t.Fatalf("Stat(no): got error %v, want nil", err)
	}
	if st.Exists() {
		t.Errorf("Stat(no): Type = %s, want missing", st.Type)
	}
}

func testSymlinkParentNotDir(t *testing.T, fx Fixture) {
	fx.mustWriteFile(t, "parent.txt", []byte("x"))
	link := fx.Path("parent.txt/link")

	err := fx.Files.Symlink(link, "target")
	expectError(t, "Symlink(parent.txt/link, target)", err, errors.CodeOSFailure,
		message("create", "symlink", "for", link, "could not symlink file (ENOTDIR errno 20)"))
}

func testReadLinkMissing(t *testing.T, fx Fixture) {
	p := fx.Path("missing-link")

	_, err := fx.Files.ReadLink(p)
	expectError(t, "ReadLink(missing-link)", err, errors.CodeNotFound,
		message("read", "symlink", "for", p, "could not lstat file (ENOENT errno 2)"))
	if !errors.Is(err, core.ErrNotExist) {
		t.Errorf("ReadLink(missing-link): errors.Is(err, core.ErrNotExist) = false, want true")
	}
}

func testReadLinkNotALink(t *testing.T, fx Fixture) {
	p := fx.mustWriteFile(t, "plain.txt", []byte("not a link"))

	_, err := fx.Files.ReadLink(p)
	expectError(t, "ReadLink(plain.txt)", err, errors.CodeNotALink,
		message("read", "symlink", "for", p, "could not readlink file (EINVAL errno 22)"))
}
