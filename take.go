package pager

import "context"

// Take will return up to amount entities, starting with the cached entities
func (p *Pager[T]) Take(ctx context.Context, amount int) (entities []T, err error) {
	return take(p.Iterator(ctx), amount)
}

// TakeRemaining will retrieve up to amount new entities
func (p *Pager[T]) TakeRemaining(ctx context.Context, amount int) (entities []T, err error) {
	return take(p.RemainingIterator(ctx), amount)
}

// TakeWhile will retrieve new entities until an entity does not match the predicate
// Note: The first non-matching entity is consumed but not returned
func (p *Pager[T]) TakeWhile(ctx context.Context, fn PredicateFn[T]) (entities []T, err error) {
	err = forEach(p.RemainingIterator(ctx), func(entity T) (err error) {
		if !fn(entity) {
			return Break
		}

		entities = append(entities, entity)
		return
	})

	return
}

// TakeUntil will retrieve new entities until an entity matches the predicate
// Note: The first matching entity is consumed but not returned
func (p *Pager[T]) TakeUntil(ctx context.Context, fn PredicateFn[T]) (entities []T, err error) {
	return p.TakeWhile(ctx, func(entity T) bool {
		return !fn(entity)
	})
}

func take[T Entity](i *Iterator[T], amount int) (entities []T, err error) {
	if amount <= 0 {
		return
	}

	// Amounts are caller provided, capacity is bounded by a single page
	capacity := amount
	if limit := i.p.Limit(); capacity > limit {
		capacity = limit
	}

	entities = make([]T, 0, capacity)
	err = forEach(i, func(entity T) (err error) {
		entities = append(entities, entity)
		if len(entities) == amount {
			return Break
		}

		return
	})

	return
}
