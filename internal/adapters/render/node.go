package render

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
)

const (
	TextNodeID graft.ID = "adapter.render.text"
	JSONNodeID graft.ID = "adapter.render.json"
)

func init() {
	graft.Register(graft.Node[*Text]{
		ID:        TextNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Text, error) {
			return NewText(os.Stdout), nil
		},
	})

	graft.Register(graft.Node[*JSON]{
		ID:        JSONNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*JSON, error) {
			return NewJSON(os.Stdout), nil
		},
	})
}
