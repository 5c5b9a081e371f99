package cv

// Version information for the Cole-Vishkin emulator.
const (
	// Version is the current version of the emulator.
	Version = "0.1.0"

	// VersionMajor is the major version number.
	VersionMajor = 0

	// VersionMinor is the minor version number.
	VersionMinor = 1

	// VersionPatch is the patch version number.
	VersionPatch = 0
)

// Info provides build-time information about the emulator.
type Info struct {
	// Version is the version string.
	Version string

	// Algorithm names the recoloring scheme implemented.
	Algorithm string
}

// GetInfo returns information about the emulator.
//
// Example:
//
//	info := cv.GetInfo()
//	fmt.Printf("cvemu %s (%s)\n", info.Version, info.Algorithm)
func GetInfo() Info {
	return Info{
		Version:   Version,
		Algorithm: "Cole-Vishkin chunked recoloring",
	}
}
