package nix

import (
	"context"
	"fmt"
	"io"

	"go.trai.ch/nh/internal/core/domain"
	"go.trai.ch/nh/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Updater = (*Updater)(nil)

// Updater implements ports.Updater by running `nix flake update` on flake projects.
type Updater struct {
	binary   string
	executor ports.Executor
	out      io.Writer
}

// NewUpdater creates a new Updater. Commands are echoed to out before they run.
func NewUpdater(binary string, executor ports.Executor, out io.Writer) *Updater {
	return &Updater{
		binary:   binary,
		executor: executor,
		out:      out,
	}
}

// Update refreshes the lock file of a flake project.
// Standalone files have nothing to lock and fail with domain.ErrNotUpdatable.
func (u *Updater) Update(ctx context.Context, unit domain.PackageUnit, dryRun bool) error {
	if !unit.IsFlake() {
		err := zerr.Wrap(domain.ErrNotUpdatable, "cannot update standalone file")
		return zerr.With(err, "path", unit.Path)
	}

	cmd := updateCommand(u.binary, unit.Path)
	_, _ = fmt.Fprintln(u.out, cmd.String())
	if dryRun {
		return nil
	}

	if err := u.executor.Execute(ctx, cmd); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to update flake"), "path", unit.Path)
	}
	return nil
}

func updateCommand(binary, dir string) domain.Command {
	return domain.Command{
		Args: []string{binary, "flake", "update", "--flake", dir},
		Dir:  dir,
	}
}
