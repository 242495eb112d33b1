package pager

import (
	"context"
	"fmt"
	"time"

	"github.com/gdbu/atoms"
	"github.com/gdbu/scribe"
	"github.com/hatchify/errors"

	"github.com/mojura/pager/checkpoint"
	"github.com/mojura/pager/snowflake"
)

const (
	// ErrInvalidSkip is returned when SkipTo would move the anchor back over already cached entities
	ErrInvalidSkip = errors.Error("cannot skip to the provided ID, it is behind the current anchor")
	// ErrNoSuchElement is returned when no entity has been consumed since creation or the last skip
	ErrNoSuchElement = errors.Error("no such element")
	// ErrRetrieveInProgress is returned when a pager is used while a retrieval is outstanding
	ErrRetrieveInProgress = errors.Error("retrieval already in progress")
	// ErrInvalidLimit is returned when a page size is outside of the configured bounds
	ErrInvalidLimit = errors.Error("invalid limit, outside of the minimum and maximum limits")
	// ErrInvalidDirection is returned when an unsupported direction is provided
	ErrInvalidDirection = errors.Error("invalid direction")
	// ErrDirectionLocked is returned when changing direction while entities are cached
	ErrDirectionLocked = errors.Error("cannot change direction, entities have already been cached")
	// ErrInvalidBatch is returned when a retriever returns entities which are not beyond the anchor
	ErrInvalidBatch = errors.Error("invalid batch, boundary entity is not beyond the current anchor")
	// ErrNilRetriever is returned when a pager is created without a retriever
	ErrNilRetriever = errors.Error("invalid retriever, cannot be nil")

	// ErrEndOfEntries is returned when a retrieval yields no further entities
	// Note: This is the normal end of a walk rather than a failure
	ErrEndOfEntries = errors.Error("end of entries")
	// Break is a non-error which will cause a ForEach loop to break early
	Break = errors.Error("break!")
)

// New will return a new instance of Pager
func New[T Entity](opts Opts, r Retriever[T]) (pp *Pager[T], err error) {
	if err = opts.Validate(); err != nil {
		return
	}

	if r == nil {
		err = ErrNilRetriever
		return
	}

	var p Pager[T]
	p.out = scribe.New(opts.Name)
	p.opts = opts
	p.r = r
	p.m = opts.Metrics
	p.cur = newCursor[T](opts.Anchor)
	p.limit = opts.Limit
	p.direction = opts.Direction
	pp = &p
	return
}

// Pager walks a remote collection of snowflake identified entities through
// a sequence of bounded retrievals.
//
// A Pager is not safe for concurrent use, callers must serialize access.
// Overlapping Retrieve calls fail with ErrRetrieveInProgress. SkipTo and
// SetDirection return ErrRetrieveInProgress when a retrieval has already
// started, this check is best-effort and does not synchronize the cursor
type Pager[T Entity] struct {
	out *scribe.Scribe
	m   *Metrics

	opts Opts
	r    Retriever[T]

	cur    cursor[T]
	cached []T

	limit     int
	direction Direction

	// Retrieving state
	retrieving atoms.Bool
}

// SkipTo will set the anchor for successive retrievals. The anchor is
// exclusive, the entity with the provided ID will not be retrieved.
// Use snowflake.Zero to start from the most recent entity.
//
// When entities have been cached, the anchor cannot be moved back against
// the walk direction (newer than the current anchor when walking Older)
// Note: SkipTo must not be called concurrently with a retrieval, see Pager
func (p *Pager[T]) SkipTo(id snowflake.ID) (out *Pager[T], err error) {
	if p.retrieving.Get() {
		err = ErrRetrieveInProgress
		return
	}

	if err = p.cur.validateSkip(id, p.direction, p.IsEmpty()); err != nil {
		p.m.observeRejectedSkip()
		p.out.Warningf("cannot skip to %s while walking %s from %s", id, p.direction, p.cur.anchor)
		return
	}

	p.cur.skipTo(id)
	return p, nil
}

// LastKey will return the current iteration anchor
func (p *Pager[T]) LastKey() (anchor snowflake.ID) {
	return p.cur.anchor
}

// Last will return the most recently consumed entity
// Note: Will return ErrNoSuchElement if nothing has been retrieved since creation or the last anchor change
func (p *Pager[T]) Last() (last T, err error) {
	return p.cur.getLast()
}

// First will return the first cached entity
// Note: Will return ErrNoSuchElement if the cache is empty
func (p *Pager[T]) First() (first T, err error) {
	if p.IsEmpty() {
		err = ErrNoSuchElement
		return
	}

	first = p.cached[0]
	return
}

// Retrieve will retrieve the next page of entities and advance the anchor to
// the boundary entity of the page.
// Note: Will return ErrEndOfEntries when no further entities exist
func (p *Pager[T]) Retrieve(ctx context.Context) (batch []T, err error) {
	if !p.retrieving.Set(true) {
		return nil, ErrRetrieveInProgress
	}
	defer p.retrieving.Set(false)

	if err = isDone(ctx); err != nil {
		return
	}

	req := p.request()
	if batch, err = p.r.Retrieve(ctx, req); err != nil {
		p.m.observeFailure()
		p.out.Errorf("error retrieving entities %s than %s: %v", req.Direction, req.Anchor, err)
		return nil, fmt.Errorf("error retrieving entities %s than %s: %w", req.Direction, req.Anchor, err)
	}

	// A cancelled retrieval must leave the cursor as it was, even if the retriever returned a batch
	if err = isDone(ctx); err != nil {
		return nil, err
	}

	if len(batch) == 0 {
		p.m.observeExhaustion()
		p.out.Notificationf("reached the end of entries %s than %s", req.Direction, req.Anchor)
		return nil, ErrEndOfEntries
	}

	var boundary T
	if boundary, err = p.getBoundary(req.Anchor, batch); err != nil {
		p.m.observeFailure()
		p.out.Errorf("error retrieving entities %s than %s: %v", req.Direction, req.Anchor, err)
		return nil, err
	}

	p.cur.advance(boundary)
	if p.IsCacheEnabled() {
		p.cached = append(p.cached, batch...)
	}

	p.m.observeBatch(len(batch))
	return
}

// SetLimit will set the page size for successive retrievals
func (p *Pager[T]) SetLimit(limit int) (err error) {
	if err = p.opts.validateLimit(limit); err != nil {
		return
	}

	p.limit = limit
	return
}

// Limit will return the current page size
func (p *Pager[T]) Limit() (limit int) {
	return p.limit
}

// SetDirection will set the walk direction
// Note: The direction can only be changed while the cache is empty
func (p *Pager[T]) SetDirection(d Direction) (err error) {
	if err = d.Validate(); err != nil {
		return
	}

	if d == p.direction {
		return
	}

	if p.retrieving.Get() {
		return ErrRetrieveInProgress
	}

	if !p.IsEmpty() {
		return ErrDirectionLocked
	}

	p.direction = d
	return
}

// Direction will return the current walk direction
func (p *Pager[T]) Direction() (d Direction) {
	return p.direction
}

// Cached will return a copy of the cached entities in the order they were retrieved
func (p *Pager[T]) Cached() (cached []T) {
	cached = make([]T, len(p.cached))
	copy(cached, p.cached)
	return
}

// CacheSize will return the number of cached entities
func (p *Pager[T]) CacheSize() (n int) {
	return len(p.cached)
}

// IsEmpty will return whether or not the cache is empty
func (p *Pager[T]) IsEmpty() (empty bool) {
	return len(p.cached) == 0
}

// IsCacheEnabled will return whether or not retrieved entities are cached
func (p *Pager[T]) IsCacheEnabled() (enabled bool) {
	return !p.opts.DisableCache
}

// Checkpoint will return the resumable position of the pager
func (p *Pager[T]) Checkpoint() (c checkpoint.Checkpoint) {
	c.Anchor = p.cur.anchor
	c.Direction = uint8(p.direction)
	c.UpdatedAt = time.Now().Unix()
	return
}

// Resume will set the direction and anchor from a checkpoint
func (p *Pager[T]) Resume(c checkpoint.Checkpoint) (err error) {
	if err = p.SetDirection(Direction(c.Direction)); err != nil {
		return
	}

	_, err = p.SkipTo(c.Anchor)
	return
}

func (p *Pager[T]) request() (req Request) {
	req.Anchor = p.cur.anchor
	req.Limit = p.limit
	req.Direction = p.direction
	return
}

// getBoundary will return the entity furthest along the walk
func (p *Pager[T]) getBoundary(anchor snowflake.ID, batch []T) (boundary T, err error) {
	boundary = batch[0]
	for _, entity := range batch[1:] {
		if p.direction.isBeyond(entity.GetID(), boundary.GetID()) {
			boundary = entity
		}
	}

	if anchor.IsZero() {
		// Zero anchors are unbounded
		return
	}

	if !p.direction.isBeyond(boundary.GetID(), anchor) {
		err = ErrInvalidBatch
		return
	}

	return
}
