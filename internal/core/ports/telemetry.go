package ports

import (
	"context"
	"io"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry is the entry point for recording units of work.
type Telemetry interface {
	// Record starts a vertex for a named unit of work.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes any buffered output.
	Close() error
}

// Vertex represents a single unit of work.
type Vertex interface {
	// Stdout returns the writer for regular output.
	Stdout() io.Writer
	// Stderr returns the writer for diagnostic output.
	Stderr() io.Writer
	// Complete marks the vertex as finished, recording err if non-nil.
	Complete(err error)
	// Cached marks the vertex as satisfied without doing work.
	Cached()
}

type vertexKey struct{}

// ContextWithVertex returns a context carrying the vertex.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexKey{}, v)
}

// VertexFromContext returns the vertex carried by ctx, or nil when the
// context has none.
func VertexFromContext(ctx context.Context) Vertex {
	v, _ := ctx.Value(vertexKey{}).(Vertex)
	return v
}
