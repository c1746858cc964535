package loader

import (
	"github.com/BaizeAI/volume-loader/internal/pkg/docker"
)

// VolumeChecker queries the container runtime's volume inventory.
type VolumeChecker interface {
	VolumeExists(name string) (bool, error)
}

// Confirmer asks the operator about an existing volume. A true result means
// the operator wants to abort, not that the overwrite was approved.
type Confirmer interface {
	Confirm() bool
}

// Executor runs a container invocation and waits for it to exit.
type Executor interface {
	Execute(cmd docker.Command) error
}

// Archive is a resolved archive path.
type Archive struct {
	// Path is the absolute path with symbolic links evaluated.
	Path string
	// Extension is the lower-cased file name extension without the dot.
	Extension string
	// Dir is the directory holding the archive.
	Dir string
	// Base is the file name of the archive.
	Base string
}
