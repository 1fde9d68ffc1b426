package ports

import (
	"context"

	"go.trai.ch/bincache/internal/core/domain"
)

// Telemetry records the progress of validation stages.
//
//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Telemetry interface {
	// Record starts a new vertex for a unit of work.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents a single recorded unit of work.
type Vertex interface {
	// Log records a message associated with the vertex.
	Log(level domain.LogLevel, msg string)
	// Cached marks the vertex as having changed nothing.
	Cached()
	// Complete marks the vertex as finished, successfully when err is nil.
	Complete(err error)
}
