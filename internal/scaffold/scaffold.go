// Package scaffold creates the project directory tree and writes the
// fixed template set. All filesystem access goes through billy so the
// same code runs against the real disk (osfs) and in-memory test
// filesystems (memfs).
package scaffold

import (
	"fmt"
	"os"

	"github.com/go-git/go-billy/v6"
	"github.com/go-git/go-billy/v6/util"
)

// RootExists reports whether the layout's root directory is already
// present on the filesystem.
func RootExists(fs billy.Filesystem, layout Layout) (bool, error) {
	_, err := fs.Stat(layout.Root)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat %s: %w", layout.Root, err)
}

// Remove recursively deletes the layout's root directory.
// This is the single destructive operation in the whole procedure and
// must only run after an explicit operator confirmation.
func Remove(fs billy.Filesystem, layout Layout) error {
	if err := util.RemoveAll(fs, layout.Root); err != nil {
		return fmt.Errorf("failed to remove %s: %w", layout.Root, err)
	}
	return nil
}

// CreateTree creates the root directory and every subdirectory.
func CreateTree(fs billy.Filesystem, layout Layout) error {
	if err := fs.MkdirAll(layout.Root, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", layout.Root, err)
	}
	for _, dir := range layout.Dirs {
		path := fs.Join(layout.Root, dir)
		if err := fs.MkdirAll(path, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
	}
	return nil
}

// WriteFiles writes every template file, overwriting whatever is there.
// Returns the number of files written.
func WriteFiles(fs billy.Filesystem, layout Layout) (int, error) {
	for _, file := range layout.Files {
		path := fs.Join(layout.Root, file.Path)
		if err := util.WriteFile(fs, path, []byte(file.Content), 0644); err != nil {
			return 0, fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	return len(layout.Files), nil
}
