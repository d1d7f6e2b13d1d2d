package ports

import (
	"io"

	"go.trai.ch/nh/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the external work performed by a command.
type Telemetry interface {
	// Record starts a new vertex.
	Record(name string) Vertex

	// Close flushes the recording session.
	Close() error
}

// Vertex is one recorded unit of work.
type Vertex interface {
	// Stdout returns a writer for the vertex's standard output.
	Stdout() io.Writer

	// Stderr returns a writer for the vertex's error output.
	Stderr() io.Writer

	// Log records a message at the given level.
	Log(level domain.LogLevel, msg string)

	// Complete marks the vertex as finished, failed when err is non-nil.
	Complete(err error)
}
