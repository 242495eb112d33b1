package pager

import "context"

// Iterator will return an iterator which yields the cached entities before
// retrieving further pages
func (p *Pager[T]) Iterator(ctx context.Context) *Iterator[T] {
	return newIterator(ctx, p, p.Cached())
}

// RemainingIterator will return an iterator which only yields newly retrieved entities
func (p *Pager[T]) RemainingIterator(ctx context.Context) *Iterator[T] {
	return newIterator[T](ctx, p, nil)
}

func newIterator[T Entity](ctx context.Context, p *Pager[T], buf []T) *Iterator[T] {
	var i Iterator[T]
	i.ctx = ctx
	i.p = p
	i.buf = buf
	return &i
}

// Iterator is used to iterate through the entities of a Pager, one entity at a time
type Iterator[T Entity] struct {
	ctx context.Context
	p   *Pager[T]

	buf []T
	idx int

	done bool
}

// Next will return the next entity, retrieving the next page once the buffered entities have been consumed
// Note: Will return ErrEndOfEntries once the walk is exhausted
func (i *Iterator[T]) Next() (entity T, err error) {
	for i.idx >= len(i.buf) {
		if i.done {
			err = ErrEndOfEntries
			return
		}

		var batch []T
		switch batch, err = i.p.Retrieve(i.ctx); err {
		case nil:
			i.buf = batch
			i.idx = 0
		case ErrEndOfEntries:
			i.done = true
		default:
			return
		}
	}

	entity = i.buf[i.idx]
	i.idx++
	return
}

// ForEach will iterate through each of the cached entities, then each newly retrieved entity
func (p *Pager[T]) ForEach(ctx context.Context, fn ForEachFn[T]) (err error) {
	return forEach(p.Iterator(ctx), fn)
}

// ForEachRemaining will iterate through each newly retrieved entity
func (p *Pager[T]) ForEachRemaining(ctx context.Context, fn ForEachFn[T]) (err error) {
	return forEach(p.RemainingIterator(ctx), fn)
}

func forEach[T Entity](i *Iterator[T], fn ForEachFn[T]) (err error) {
	var entity T
	for {
		if entity, err = i.Next(); err != nil {
			break
		}

		if err = fn(entity); err != nil {
			break
		}
	}

	switch err {
	case Break, ErrEndOfEntries:
		return nil

	default:
		return
	}
}
