package pip

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDirSizeSumsRegularFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.py"), 100)
	writeFile(t, filepath.Join(root, "sub", "b.py"), 250)
	writeFile(t, filepath.Join(root, "sub", "deep", "c.dat"), 50)

	got, err := DirSize(root)
	if err != nil {
		t.Fatalf("DirSize: %v", err)
	}
	if got != 400 {
		t.Errorf("DirSize = %d, want 400", got)
	}
}

func TestDirSizeSkipsSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "real.py"), 64)
	if err := os.Symlink(filepath.Join(root, "real.py"), filepath.Join(root, "link.py")); err != nil {
		t.Fatal(err)
	}

	got, err := DirSize(root)
	if err != nil {
		t.Fatalf("DirSize: %v", err)
	}
	if got != 64 {
		t.Errorf("DirSize = %d, want 64 (symlink must not double-count)", got)
	}
}

func TestDirSizeMissingRoot(t *testing.T) {
	if _, err := DirSize(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}

func TestDirSizeSingleFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "solo.py")
	writeFile(t, path, 33)

	got, err := DirSize(path)
	if err != nil {
		t.Fatalf("DirSize: %v", err)
	}
	if got != 33 {
		t.Errorf("DirSize = %d, want 33", got)
	}
}

func TestLocateDirExact(t *testing.T) {
	loc := t.TempDir()
	if err := os.Mkdir(filepath.Join(loc, "alpha"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, ok := LocateDir(loc, "alpha")
	if !ok || got != filepath.Join(loc, "alpha") {
		t.Fatalf("LocateDir = %q, %v", got, ok)
	}
}

func TestLocateDirHyphenUnderscore(t *testing.T) {
	loc := t.TempDir()
	if err := os.Mkdir(filepath.Join(loc, "my_package"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, ok := LocateDir(loc, "my-package")
	if !ok || got != filepath.Join(loc, "my_package") {
		t.Fatalf("LocateDir = %q, %v", got, ok)
	}
}

func TestLocateDirCaseInsensitive(t *testing.T) {
	loc := t.TempDir()
	if err := os.Mkdir(filepath.Join(loc, "SQLAlchemy"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, ok := LocateDir(loc, "sqlalchemy")
	if !ok || got != filepath.Join(loc, "SQLAlchemy") {
		t.Fatalf("LocateDir = %q, %v", got, ok)
	}
}

func TestLocateDirSingleModule(t *testing.T) {
	loc := t.TempDir()
	writeFile(t, filepath.Join(loc, "six.py"), 10)

	got, ok := LocateDir(loc, "six")
	if !ok || got != filepath.Join(loc, "six.py") {
		t.Fatalf("LocateDir = %q, %v", got, ok)
	}
}

func TestLocateDirMissing(t *testing.T) {
	if _, ok := LocateDir(t.TempDir(), "ghost"); ok {
		t.Fatal("expected LocateDir to fail for a missing package")
	}
}
