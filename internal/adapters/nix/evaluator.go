// Package nix implements the metadata and update adapters on top of the nix CLI.
package nix

import (
	"context"
	"fmt"
	"os/exec"

	"go.trai.ch/nh/internal/core/domain"
	"go.trai.ch/nh/internal/core/ports"
)

var _ ports.Evaluator = (*Evaluator)(nil)

// Evaluator implements ports.Evaluator by running `nix eval --raw`.
type Evaluator struct {
	binary    string
	logger    ports.Logger
	telemetry ports.Telemetry
}

// NewEvaluator creates a new Evaluator that invokes binary.
func NewEvaluator(binary string, logger ports.Logger, telemetry ports.Telemetry) *Evaluator {
	return &Evaluator{
		binary:    binary,
		logger:    logger,
		telemetry: telemetry,
	}
}

// Eval returns the raw value of query.
// Lookups are best effort: any failure, including a missing binary, yields "".
func (e *Evaluator) Eval(ctx context.Context, query string) string {
	vertex := e.telemetry.Record("nix eval " + query)

	//nolint:gosec // query is passed as a single argument, never through a shell
	cmd := exec.CommandContext(ctx, e.binary, "eval", "--raw", query)
	cmd.Stderr = vertex.Stderr()

	output, err := cmd.Output()
	if err != nil {
		vertex.Log(domain.LogLevelDebug, err.Error())
		vertex.Complete(err)
		e.logger.Debug(fmt.Sprintf("nix eval %s: %v", query, err))
		return ""
	}
	vertex.Complete(nil)
	return string(output)
}
