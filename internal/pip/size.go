package pip

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// DirSize sums the sizes of regular files under root. Symbolic links are
// skipped so a linked tree is never counted twice. Top-level entries are
// walked concurrently since site-packages trees can hold tens of
// thousands of small files.
func DirSize(root string) (int64, error) {
	fi, err := os.Lstat(root)
	if err != nil {
		return 0, err
	}
	if !fi.IsDir() {
		if fi.Mode().IsRegular() {
			return fi.Size(), nil
		}
		return 0, nil
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return 0, err
	}

	var total atomic.Int64
	var g errgroup.Group
	g.SetLimit(8)

	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())
		if entry.Type()&fs.ModeSymlink != 0 {
			continue
		}
		if !entry.IsDir() {
			if info, err := entry.Info(); err == nil && info.Mode().IsRegular() {
				total.Add(info.Size())
			}
			continue
		}

		g.Go(func() error {
			return filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if d.Type()&fs.ModeSymlink != 0 {
					return nil
				}
				if info, err := d.Info(); err == nil && info.Mode().IsRegular() {
					total.Add(info.Size())
				}
				return nil
			})
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	return total.Load(), nil
}

// LocateDir resolves the on-disk path for a distribution under its
// reported install location. Distribution names and import directories
// disagree on hyphen/underscore and casing, so exact candidates are
// tried first and a normalized case-insensitive scan second. A bare
// single-module install resolves to its .py file.
func LocateDir(location, name string) (string, bool) {
	if location == "" || name == "" {
		return "", false
	}

	candidates := []string{
		name,
		strings.ReplaceAll(name, "-", "_"),
		strings.ReplaceAll(name, "_", "-"),
	}
	for _, c := range candidates {
		path := filepath.Join(location, c)
		if fi, err := os.Stat(path); err == nil && fi.IsDir() {
			return path, true
		}
	}
	for _, c := range candidates {
		path := filepath.Join(location, c+".py")
		if fi, err := os.Stat(path); err == nil && fi.Mode().IsRegular() {
			return path, true
		}
	}

	entries, err := os.ReadDir(location)
	if err != nil {
		return "", false
	}
	want := normalizeName(name)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if normalizeName(entry.Name()) == want {
			return filepath.Join(location, entry.Name()), true
		}
	}
	return "", false
}

// normalizeName folds case and treats hyphens and underscores as equal,
// mirroring how package indexes compare distribution names.
func normalizeName(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "-", "_"))
}
