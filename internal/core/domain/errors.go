package domain

import "go.trai.ch/zerr"

var (
	// ErrNotFound is returned when a path does not exist or is not a recognized package definition.
	ErrNotFound = zerr.New("package definition not found")

	// ErrFlakeNotInitialized is returned for a flake project without a flake.lock.
	ErrFlakeNotInitialized = zerr.New("flake without lock file")

	// ErrNotUpdatable is returned when an update is requested for a unit that cannot be updated.
	ErrNotUpdatable = zerr.New("package definition is not updatable")

	// ErrNoPackagesSpecified is returned when a metadata lookup is requested without package names.
	ErrNoPackagesSpecified = zerr.New("no packages specified")

	// ErrConfigInvalid is returned when the configuration file cannot be used.
	ErrConfigInvalid = zerr.New("invalid configuration")
)
