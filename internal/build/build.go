// Package build holds build-time information.
package build

// Version is the nh release.
// It defaults to "dev" and is set with -ldflags "-X go.trai.ch/nh/internal/build.Version=...".
var Version = "dev"
