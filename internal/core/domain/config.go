package domain

// Default configuration values.
const (
	DefaultNixBinary  = "nix"
	DefaultProjectRef = "nixpkgs"
)

// Config holds the user settings read from nh.yaml.
type Config struct {
	// Flake is the project reference used for metadata lookups.
	Flake string

	// Ignore lists extra glob patterns skipped while walking directories.
	Ignore []string
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{Flake: DefaultProjectRef}
}
