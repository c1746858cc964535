package loader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kanisterio/errkit"
	"github.com/sirupsen/logrus"

	"github.com/BaizeAI/volume-loader/internal/pkg/constants"
	"github.com/BaizeAI/volume-loader/internal/pkg/docker"
	"github.com/BaizeAI/volume-loader/internal/pkg/prompt"
	"github.com/BaizeAI/volume-loader/pkg/log"
	"github.com/BaizeAI/volume-loader/pkg/utils"
)

// Loader restores an archive into a named volume by extracting it from an
// ephemeral container.
type Loader struct {
	volumeName  string
	archivePath string
	interactive bool

	image        string
	dockerBinary string

	checker   VolumeChecker
	confirmer Confirmer
	executor  Executor
	resolve   func(path string) (string, error)
}

type Option func(*Loader)

func WithVolumeChecker(checker VolumeChecker) Option {
	return func(l *Loader) {
		l.checker = checker
	}
}

func WithConfirmer(confirmer Confirmer) Option {
	return func(l *Loader) {
		l.confirmer = confirmer
	}
}

func WithExecutor(executor Executor) Option {
	return func(l *Loader) {
		l.executor = executor
	}
}

// WithImage sets the image the extraction container runs.
func WithImage(image string) Option {
	return func(l *Loader) {
		if image != "" {
			l.image = image
		}
	}
}

// WithDockerBinary sets the binary that starts the extraction container.
func WithDockerBinary(binary string) Option {
	return func(l *Loader) {
		if binary != "" {
			l.dockerBinary = binary
		}
	}
}

// WithPathResolver replaces the canonicalization of the archive path.
func WithPathResolver(resolve func(path string) (string, error)) Option {
	return func(l *Loader) {
		l.resolve = resolve
	}
}

// New returns a Loader. Inputs are not validated until Load is called.
// Collaborators not set through opts talk to the docker CLI and the terminal.
func New(volumeName string, archivePath string, interactive bool, opts ...Option) *Loader {
	l := &Loader{
		volumeName:   volumeName,
		archivePath:  archivePath,
		interactive:  interactive,
		image:        constants.DefaultImage,
		dockerBinary: constants.DefaultDockerBinary,
		resolve:      utils.ResolveRealPath,
	}
	for _, opt := range opts {
		opt(l)
	}

	if l.checker == nil || l.executor == nil {
		client := docker.NewClient(l.dockerBinary)
		if l.checker == nil {
			l.checker = client
		}
		if l.executor == nil {
			l.executor = client
		}
	}
	if l.confirmer == nil && interactive {
		l.confirmer = prompt.NewTerminalConfirmer()
	}

	return l
}

// Load restores the archive into the volume. It returns false without an
// error when the operator aborts, when the archive format is not supported,
// or when the extraction fails. An error is returned only when the volume
// inventory cannot be queried or the archive path cannot be resolved.
//
// When the volume already exists and the loader is not interactive, the
// archive is extracted into it without asking.
func (l *Loader) Load() (bool, error) {
	logger := log.WithFields(logrus.Fields{
		"volume":  l.volumeName,
		"archive": l.archivePath,
	})

	exists, err := l.checker.VolumeExists(l.volumeName)
	if err != nil {
		return false, errkit.Wrap(ErrVolumeQuery, err.Error(), "volume", l.volumeName)
	}
	if exists {
		logger.Infof("Requested docker volume `%s` already exists.", l.volumeName)
		if l.interactive && l.confirmer.Confirm() {
			logger.Info("Abort, current operation has been cancelled.")
			return false, nil
		}
	}

	logger.Info("Continuing with loading of archive")

	archive, err := l.resolveArchive()
	if err != nil {
		return false, err
	}

	logger = logger.WithFields(logrus.Fields{
		"extension": archive.Extension,
		"directory": archive.Dir,
	})

	decompress, ok := ExtractCommand(archive.Extension)
	if !ok {
		logger.Infof("Abort, current file extension `%s` is not supported.", archive.Extension)
		return false, nil
	}

	err = l.executor.Execute(l.extractionCommand(archive, decompress))
	if err != nil {
		logger.WithError(err).Error("failed to extract archive into volume")
		return false, nil
	}

	return true, nil
}

// extractionCommand mounts the volume and the archive directory into an
// ephemeral container and unpacks the archive from inside the volume.
func (l *Loader) extractionCommand(archive Archive, decompress string) docker.Command {
	script := fmt.Sprintf("cd %s && %s %s/%s --strip %d",
		constants.VolumeMountPath,
		decompress,
		constants.ArchiveMountPath,
		archive.Base,
		constants.StripComponents,
	)

	return docker.NewCommand(l.dockerBinary,
		"run",
		"--rm",
		"--volume", l.volumeName+":"+constants.VolumeMountPath,
		"-v", archive.Dir+":"+constants.ArchiveMountPath,
		l.image,
		"sh", "-c", script,
	)
}

func (l *Loader) resolveArchive() (Archive, error) {
	realPath, err := l.resolve(l.archivePath)
	if err != nil {
		return Archive{}, errkit.Wrap(ErrUnresolvablePath, err.Error(), "path", l.archivePath)
	}

	dir := filepath.Dir(realPath)
	if dir == realPath {
		return Archive{}, errkit.Wrap(ErrMissingParent, "expected a parent path", "path", realPath)
	}

	base := filepath.Base(realPath)
	ext := fileExtension(base)
	if ext == "" {
		return Archive{}, errkit.Wrap(ErrMissingExtension, "expected a file name with an extension", "path", realPath)
	}

	return Archive{
		Path:      realPath,
		Extension: ext,
		Dir:       dir,
		Base:      base,
	}, nil
}

// fileExtension returns the lower-cased text after the last dot of base.
// Names whose only dot is the leading one have no extension.
func fileExtension(base string) string {
	idx := strings.LastIndexByte(base, '.')
	if idx <= 0 {
		return ""
	}

	return strings.ToLower(base[idx+1:])
}
