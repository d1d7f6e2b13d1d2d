package domain

import "go.trai.ch/zerr"

// Kind distinguishes the two shapes a package definition can take on disk.
type Kind int

const (
	// KindStandaloneFile is a single .nix file.
	KindStandaloneFile Kind = iota
	// KindFlakeProject is a directory holding a flake.nix and its lock file.
	KindFlakeProject
)

// String returns the short name of the kind.
func (k Kind) String() string {
	switch k {
	case KindStandaloneFile:
		return "file"
	case KindFlakeProject:
		return "flake"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "file":
		*k = KindStandaloneFile
	case "flake":
		*k = KindFlakeProject
	default:
		return zerr.With(zerr.New("unknown package kind"), "kind", string(text))
	}
	return nil
}

// PackageUnit is one classified package definition.
// It is a value type; the classifier is the only producer.
type PackageUnit struct {
	// Path is the canonical absolute path. A directory for flakes, a file otherwise.
	Path string `json:"path"`

	// Kind is decided once at classification time.
	Kind Kind `json:"kind"`

	// UsesPlatformFetch is set when a standalone file mentions fetchFromGitHub.
	// Flakes are never inspected, so it is always false for them.
	UsesPlatformFetch bool `json:"usesPlatformFetch"`
}

// NewStandaloneFile creates a unit for a single definition file.
func NewStandaloneFile(path string, usesPlatformFetch bool) PackageUnit {
	return PackageUnit{Path: path, Kind: KindStandaloneFile, UsesPlatformFetch: usesPlatformFetch}
}

// NewFlakeProject creates a unit for an initialized flake directory.
func NewFlakeProject(dir string) PackageUnit {
	return PackageUnit{Path: dir, Kind: KindFlakeProject}
}

// IsFlake reports whether the unit is a flake project.
func (u PackageUnit) IsFlake() bool {
	return u.Kind == KindFlakeProject
}

// String returns the unit's path.
func (u PackageUnit) String() string {
	return u.Path
}
