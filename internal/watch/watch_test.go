package watch

import "testing"

func TestIsManifest(t *testing.T) {
	manifests := []string{
		"go.mod",
		"/some/dir/Cargo.toml",
		"package.json",
		"app.csproj",
		"lib.cabal",
		"pom.xml",
		"requirements.txt",
	}
	for _, path := range manifests {
		if !isManifest(path) {
			t.Errorf("isManifest(%q) should be true", path)
		}
	}

	others := []string{
		"main.go",
		"README.md",
		"/some/dir/notes.txt",
		"csproj",
		"go.sum",
	}
	for _, path := range others {
		if isManifest(path) {
			t.Errorf("isManifest(%q) should be false", path)
		}
	}
}
