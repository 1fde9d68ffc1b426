package progrock

import (
	"fmt"

	"github.com/vito/progrock"
	"go.trai.ch/bincache/internal/core/domain"
	"go.trai.ch/bincache/internal/core/ports"
)

var _ ports.Vertex = (*Vertex)(nil)

// Vertex implements ports.Vertex wrapping *progrock.VertexRecorder.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Log records a message associated with this vertex.
func (v *Vertex) Log(level domain.LogLevel, msg string) {
	_, _ = fmt.Fprintf(v.vertex.Stdout(), "[%s] %s\n", level.String(), msg)
}

// Complete marks the vertex as finished (successfully or with an error).
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}

// Cached marks the stage as one that left every verdict unchanged.
func (v *Vertex) Cached() {
	v.vertex.Cached()
}
