package pager

import (
	"context"
	"sort"
	"sync"

	"github.com/mojura/pager/snowflake"
)

func newTestEntity(id snowflake.ID, value string) *testEntity {
	var t testEntity
	t.ID = id
	t.Value = value
	return &t
}

type testEntity struct {
	Entry

	Value string `json:"value"`
}

func makeTestEntities(ids ...snowflake.ID) (entities []*testEntity) {
	entities = make([]*testEntity, 0, len(ids))
	for _, id := range ids {
		entities = append(entities, newTestEntity(id, id.String()))
	}

	return
}

func makeSequentialEntities(start snowflake.ID, n int) (entities []*testEntity) {
	entities = make([]*testEntity, 0, n)
	for i := 0; i < n; i++ {
		id := start + snowflake.ID(i)*1000
		entities = append(entities, newTestEntity(id, id.String()))
	}

	return
}

func newTestRetriever(entities ...*testEntity) *testRetriever {
	var r testRetriever
	r.entities = append(r.entities, entities...)
	sort.Slice(r.entities, func(i, j int) bool {
		return snowflake.Compare(r.entities[i].ID, r.entities[j].ID) < 0
	})

	return &r
}

// testRetriever serves entities from an ordered set the way a remote paginated endpoint would
type testRetriever struct {
	mux sync.Mutex

	entities []*testEntity
	requests []Request

	// Optional behavior
	err     error
	entered chan struct{}
	release chan struct{}
}

func (r *testRetriever) Retrieve(ctx context.Context, req Request) (batch []*testEntity, err error) {
	r.mux.Lock()
	r.requests = append(r.requests, req)
	r.mux.Unlock()

	if r.entered != nil {
		r.entered <- struct{}{}
	}

	if r.release != nil {
		select {
		case <-r.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if r.err != nil {
		return nil, r.err
	}

	if req.Direction == Newer {
		return r.newer(req), nil
	}

	return r.older(req), nil
}

func (r *testRetriever) older(req Request) (batch []*testEntity) {
	for i := len(r.entities) - 1; i >= 0 && len(batch) < req.Limit; i-- {
		e := r.entities[i]
		if req.Anchor.IsZero() || e.ID.Before(req.Anchor) {
			batch = append(batch, e)
		}
	}

	return
}

func (r *testRetriever) newer(req Request) (batch []*testEntity) {
	for i := 0; i < len(r.entities) && len(batch) < req.Limit; i++ {
		e := r.entities[i]
		if e.ID.After(req.Anchor) {
			batch = append(batch, e)
		}
	}

	return
}

func (r *testRetriever) getRequests() (requests []Request) {
	r.mux.Lock()
	defer r.mux.Unlock()
	requests = append(requests, r.requests...)
	return
}

func newTestPager(r Retriever[*testEntity], fns ...func(*Opts)) (p *Pager[*testEntity], err error) {
	opts := MakeOpts("test")
	for _, fn := range fns {
		fn(&opts)
	}

	return New(opts, r)
}

func withLimit(limit int) func(*Opts) {
	return func(o *Opts) {
		o.Limit = limit
	}
}

func withDirection(d Direction) func(*Opts) {
	return func(o *Opts) {
		o.Direction = d
	}
}

func withoutCache() func(*Opts) {
	return func(o *Opts) {
		o.DisableCache = true
	}
}
