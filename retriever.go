package pager

import "context"

// Retriever performs bounded fetches for a Pager. Retrieve must only return
// entities strictly beyond the request anchor in the request direction, an
// empty batch signals that there are no further entities
type Retriever[T Entity] interface {
	Retrieve(ctx context.Context, req Request) (batch []T, err error)
}

// RetrieverFunc is a func which satisfies the Retriever interface
type RetrieverFunc[T Entity] func(ctx context.Context, req Request) (batch []T, err error)

// Retrieve will call the underlying func
func (fn RetrieverFunc[T]) Retrieve(ctx context.Context, req Request) (batch []T, err error) {
	return fn(ctx, req)
}
