package progrock

import (
	"bytes"
	"strings"
	"sync"

	"github.com/vito/progrock"
)

var _ progrock.Writer = (*journal)(nil)

// journal is a progrock.Writer that keeps the final state and output of every vertex.
type journal struct {
	mu       sync.Mutex
	order    []string
	vertices map[string]*entry
}

type entry struct {
	name   string
	failed bool
	err    string
	output bytes.Buffer
}

// failure is a vertex that completed with an error.
type failure struct {
	name   string
	err    string
	output []string
}

// newJournal creates an empty journal.
func newJournal() *journal {
	return &journal{vertices: make(map[string]*entry)}
}

// WriteStatus folds a status update into the journal.
func (j *journal) WriteStatus(update *progrock.StatusUpdate) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	for _, v := range update.Vertexes {
		e := j.lookup(v.Id)
		e.name = v.Name
		if v.Completed != nil && v.Error != nil {
			e.failed = true
			e.err = *v.Error
		}
	}
	for _, l := range update.Logs {
		_, _ = j.lookup(l.Vertex).output.Write(l.Data)
	}
	return nil
}

// Close implements progrock.Writer.
func (j *journal) Close() error {
	return nil
}

// failures returns the failed vertices in the order they were first seen.
func (j *journal) failures() []failure {
	j.mu.Lock()
	defer j.mu.Unlock()

	var failures []failure
	for _, id := range j.order {
		e := j.vertices[id]
		if !e.failed {
			continue
		}
		f := failure{name: e.name, err: e.err}
		if out := strings.TrimRight(e.output.String(), "\n"); out != "" {
			f.output = strings.Split(out, "\n")
		}
		failures = append(failures, f)
	}
	return failures
}

func (j *journal) lookup(id string) *entry {
	e, ok := j.vertices[id]
	if !ok {
		e = &entry{}
		j.vertices[id] = e
		j.order = append(j.order, id)
	}
	return e
}
