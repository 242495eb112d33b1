package pager

import "github.com/mojura/pager/snowflake"

func newCursor[T Entity](anchor snowflake.ID) (c cursor[T]) {
	c.anchor = anchor
	return
}

// cursor holds the iteration anchor and the last consumed entity
type cursor[T Entity] struct {
	anchor snowflake.ID

	last    T
	hasLast bool
}

// validateSkip will ensure the cursor can be moved to the provided anchor.
// With an empty cache every anchor is allowed, otherwise the anchor cannot
// move back against the walk direction
func (c *cursor[T]) validateSkip(anchor snowflake.ID, d Direction, cacheEmpty bool) (err error) {
	if cacheEmpty {
		// Nothing has been cached, no ordering claim can be violated
		return
	}

	if d.isBeyond(c.anchor, anchor) {
		// The current anchor is already past the requested anchor
		return ErrInvalidSkip
	}

	return
}

// skipTo will set the anchor, the last entity is invalidated when the anchor changes
func (c *cursor[T]) skipTo(anchor snowflake.ID) {
	if c.anchor != anchor {
		c.clearLast()
	}

	c.anchor = anchor
}

// advance will move the anchor to the provided boundary entity
func (c *cursor[T]) advance(boundary T) {
	c.anchor = boundary.GetID()
	c.last = boundary
	c.hasLast = true
}

func (c *cursor[T]) getLast() (last T, err error) {
	if !c.hasLast {
		err = ErrNoSuchElement
		return
	}

	last = c.last
	return
}

func (c *cursor[T]) clearLast() {
	var zero T
	c.last = zero
	c.hasLast = false
}
