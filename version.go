package silver

// Version and BuildDate identify a build of the silver toolchain. Release
// builds override them with -ldflags "-X".
var (
	Version   = "0.1.0-dev"
	BuildDate = "unknown"
)
