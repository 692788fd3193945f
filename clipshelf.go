package clipshelf

import "fmt"

// These constants represent the current version of the service.
const (
	VersionMajor = 0
	VersionMinor = 1
	VersionPatch = 0
	VersionMeta  = "dev"
)

func StringVersion() string {
	v := fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)

	if VersionMeta != "" {
		v += "-" + VersionMeta
	}

	return v
}
