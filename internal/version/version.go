// Package version derives the SDK version and User-Agent from build metadata.
package version

import (
	"runtime/debug"
	"sync"
)

const (
	modulePath = "github.com/moip/moip-sdk-go"
	product    = "MoipGoSDK"
	homepage   = "https://github.com/moip/moip-sdk-go/"

	// Unknown is reported when build metadata carries no version.
	Unknown = "UnknownVersion"
)

// Version is the SDK version read once from the binary's build info.
var Version = sync.OnceValue(func() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Unknown
	}

	return FromBuildInfo(info)
})

// FromBuildInfo returns the version of this module recorded in info. The
// SDK is the main module when built from its own repository and a
// dependency otherwise.
func FromBuildInfo(info *debug.BuildInfo) string {
	if info == nil {
		return Unknown
	}

	if info.Main.Path == modulePath && usable(info.Main.Version) {
		return info.Main.Version
	}

	for _, dep := range info.Deps {
		if dep.Path != modulePath {
			continue
		}

		if dep.Replace != nil && usable(dep.Replace.Version) {
			return dep.Replace.Version
		}

		if usable(dep.Version) {
			return dep.Version
		}
	}

	return Unknown
}

func usable(v string) bool {
	return v != "" && v != "(devel)"
}

// UserAgent formats the User-Agent header for a version.
func UserAgent(v string) string {
	if v == "" {
		v = Unknown
	}

	return product + "/" + v + " (+" + homepage + ")"
}

// DefaultUserAgent is the User-Agent sent when none is configured.
func DefaultUserAgent() string {
	return UserAgent(Version())
}
