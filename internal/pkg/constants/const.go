package constants

const (
	// VolumeMountPath is where the target volume is mounted inside the
	// extraction container.
	VolumeMountPath string = "/mybackup"
	// ArchiveMountPath is where the directory holding the archive is mounted
	// inside the extraction container.
	ArchiveMountPath string = "/backup"

	DefaultImage        string = "alpine"
	DefaultDockerBinary string = "docker"

	// StripComponents is passed as --strip to every extraction command.
	StripComponents = 1
)

const (
	ConfigEnvPrefix = "VOLUME_LOADER"
)
