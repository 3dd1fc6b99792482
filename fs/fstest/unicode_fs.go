package fstest

import (
	"testing"

	"github.com/jmgilman/go/native/fs/core"
	"github.com/jmgilman/go/native/fs/pathcodec"
)

// unicodeCases pairs link names with target names. Several fall outside
// the Basic Multilingual Plane.
var unicodeCases = []struct {
	link   string
	target string
}{
	{link: "lien-été", target: "cible-été.txt"},
	{link: "リンク", target: "ターゲット"},
	{link: "link-\U0001F600", target: "target-\U0001F4A9.txt"},
	{link: "\U00010348\U00010349", target: "\U0001D11E-clef"},
}

// TestUnicode tests that link names and targets survive encoding and
// decoding, including code points outside the BMP.
// Uses POSIXTestConfig() by default.
func TestUnicode(t *testing.T, fx Fixture) {
	TestUnicodeWithConfig(t, fx, POSIXTestConfig())
}

// TestUnicodeWithConfig tests Unicode names with behavior configuration.
func TestUnicodeWithConfig(t *testing.T, fx Fixture, config FSTestConfig) {
	fx.mustMkdir(t, "unicode")
	for _, tc := range unicodeCases {
		fx.mustWriteFile(t, "unicode/"+tc.target, []byte(tc.target))
		fx.mustSymlink(t, "unicode/"+tc.link, tc.target)
	}

	config.run(t, "Unicode", "ReadLink", func(t *testing.T) {
		for _, tc := range unicodeCases {
			got, err := fx.Files.ReadLink(fx.Path("unicode/" + tc.link))
			if err != nil {
				t.Errorf("ReadLink(%s): got error %v, want nil", tc.link, err)
				continue
			}
			if got != tc.target {
				t.Errorf("ReadLink(%s): got %q, want %q", tc.link, got, tc.target)
			}
		}
	})

	config.run(t, "Unicode", "DirectoryListing", func(t *testing.T) {
		names, err := fx.ReadDir("unicode")
		if err != nil {
			t.Fatalf("ReadDir(unicode): got error %v, want nil", err)
		}
		for _, tc := range unicodeCases {
			if !containsName(names, tc.link) {
				t.Errorf("ReadDir(unicode): %q not listed in %q", tc.link, names)
			}
			if !containsName(names, tc.target) {
				t.Errorf("ReadDir(unicode): %q not listed in %q", tc.target, names)
			}
		}
	})

	config.run(t, "Unicode", "Resolution", func(t *testing.T) {
		for _, tc := range unicodeCases {
			st, err := fx.Files.StatTarget(fx.Path("unicode/" + tc.link))
			if err != nil {
				t.Errorf("StatTarget(%s): got error %v, want nil", tc.link, err)
				continue
			}
			if st.Type != core.FileTypeFile {
				t.Errorf("StatTarget(%s): Type = %s, want file", tc.link, st.Type)
			}
			if st.Size != int64(len(tc.target)) {
				t.Errorf("StatTarget(%s): Size = %d, want %d", tc.link, st.Size, len(tc.target))
			}
		}
	})
}

func containsName(names []string, want string) bool {
	for _, name := range names {
		if pathcodec.SameName(name, want) {
			return true
		}
	}
	return false
}
