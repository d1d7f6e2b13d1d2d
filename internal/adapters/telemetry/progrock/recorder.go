// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"fmt"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/nh/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements the ports.Telemetry interface using the vito/progrock library.
// On Close, the output of every failed vertex is replayed to the logger at debug level.
type Recorder struct {
	journal *journal
	rec     *progrock.Recorder
	logger  ports.Logger

	closeOnce sync.Once
	closeErr  error
}

// New creates a new Recorder that reports failures to logger.
func New(logger ports.Logger) *Recorder {
	j := newJournal()
	return &Recorder{
		journal: j,
		rec:     progrock.NewRecorder(j),
		logger:  logger,
	}
}

// Record starts recording a new vertex named after the work it tracks.
func (r *Recorder) Record(name string) ports.Vertex {
	return &Vertex{vertex: r.rec.Vertex(digest.FromString(name), name)}
}

// Close replays failures to the logger and closes the recording session.
// Later calls are no-ops.
func (r *Recorder) Close() error {
	r.closeOnce.Do(func() {
		for _, f := range r.journal.failures() {
			r.logger.Debug(fmt.Sprintf("%s failed: %s", f.name, f.err))
			for _, line := range f.output {
				r.logger.Debug(fmt.Sprintf("%s: %s", f.name, line))
			}
		}
		r.closeErr = r.journal.Close()
	})
	return r.closeErr
}
