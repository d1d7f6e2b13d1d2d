package config

// File represents the structure of the nh.yaml configuration file.
type File struct {
	// Flake is the project reference used for metadata lookups.
	Flake string `yaml:"flake"`

	// Ignore lists glob patterns of entries skipped while walking directories.
	Ignore []string `yaml:"ignore"`
}
