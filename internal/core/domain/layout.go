package domain

// Filesystem layout recognized by the classifier.
const (
	// NixExtension is the extension of package definition files.
	NixExtension = ".nix"

	// FlakeFile marks a directory as a flake project.
	FlakeFile = "flake.nix"

	// FlakeLockFile marks a flake project as initialized.
	FlakeLockFile = "flake.lock"

	// DefaultFile is the implicit package definition of a plain directory.
	DefaultFile = "default.nix"

	// PlatformFetchMarker flags a definition that fetches its source from GitHub.
	PlatformFetchMarker = "fetchFromGitHub"
)
