package loader

import (
	"github.com/kanisterio/errkit"
)

var (
	ErrUnresolvablePath = errkit.NewSentinelErr("archive path cannot be resolved")
	ErrMissingExtension = errkit.NewSentinelErr("archive file name has no extension")
	ErrMissingParent    = errkit.NewSentinelErr("archive path has no parent directory")
	ErrVolumeQuery      = errkit.NewSentinelErr("failed to query volume")
)
