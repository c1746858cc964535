package utils

import (
	"io/fs"
	"os"
	"path/filepath"
)

func IsSymlink(fi os.FileInfo) bool {
	return fi.Mode()&fs.ModeSymlink == fs.ModeSymlink
}

func readSymbolicLinkUntilRealPath(path string) (string, error) {
	finalPath, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", err
	}

	return finalPath, nil
}

// ResolveRealPath returns the absolute path of an existing file with every
// symbolic link evaluated.
func ResolveRealPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return readSymbolicLinkUntilRealPath(absPath)
}
