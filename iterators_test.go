package pager

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/gdbu/stringset"

	"github.com/mojura/pager/filters"
	"github.com/mojura/pager/snowflake"
)

func TestPager_ForEach(t *testing.T) {
	for _, d := range []Direction{Older, Newer} {
		entities := makeSequentialEntities(1000, 25)
		r := newTestRetriever(entities...)
		p, err := newTestPager(r, withLimit(10), withDirection(d))
		if err != nil {
			t.Fatal(err)
		}

		var (
			count    int
			previous snowflake.ID
		)

		ss := stringset.New()
		fn := func(e *testEntity) (err error) {
			key := e.ID.String()
			if ss.Has(key) {
				return fmt.Errorf("entity %s was provided more than once", key)
			}

			if count > 0 && !d.isBeyond(e.ID, previous) {
				return fmt.Errorf("entity %s was provided out of order, previous was %s", key, previous)
			}

			ss.Set(key)
			previous = e.ID
			count++
			return
		}

		if err = p.ForEach(context.Background(), fn); err != nil {
			t.Fatal(err)
		}

		if count != len(entities) {
			t.Fatalf("invalid number of entities, expected %d and received %d", len(entities), count)
		}

		for _, e := range entities {
			if !ss.Has(e.ID.String()) {
				t.Fatalf("expected ID of %s was not found", e.ID)
			}
		}

		// 3 pages and a final empty retrieval
		if n := len(r.getRequests()); n != 4 {
			t.Fatalf("invalid number of requests, expected %d and received %d", 4, n)
		}
	}
}

func TestPager_ForEach_cached(t *testing.T) {
	r := newTestRetriever(makeSequentialEntities(1000, 6)...)
	p, err := newTestPager(r, withLimit(4))
	if err != nil {
		t.Fatal(err)
	}

	if _, err = p.Retrieve(context.Background()); err != nil {
		t.Fatal(err)
	}

	var all []*testEntity
	if err = p.ForEach(context.Background(), func(e *testEntity) (err error) {
		all = append(all, e)
		return
	}); err != nil {
		t.Fatal(err)
	}

	if err = compareIDs([]snowflake.ID{6000, 5000, 4000, 3000, 2000, 1000}, all); err != nil {
		t.Fatal(err)
	}
}

func TestPager_ForEachRemaining(t *testing.T) {
	r := newTestRetriever(makeSequentialEntities(1000, 6)...)
	p, err := newTestPager(r, withLimit(4))
	if err != nil {
		t.Fatal(err)
	}

	if _, err = p.Retrieve(context.Background()); err != nil {
		t.Fatal(err)
	}

	var remaining []*testEntity
	if err = p.ForEachRemaining(context.Background(), func(e *testEntity) (err error) {
		remaining = append(remaining, e)
		return
	}); err != nil {
		t.Fatal(err)
	}

	if err = compareIDs([]snowflake.ID{2000, 1000}, remaining); err != nil {
		t.Fatal(err)
	}
}

func TestPager_ForEach_break(t *testing.T) {
	r := newTestRetriever(makeSequentialEntities(1000, 10)...)
	p, err := newTestPager(r, withLimit(3))
	if err != nil {
		t.Fatal(err)
	}

	var count int
	if err = p.ForEach(context.Background(), func(e *testEntity) (err error) {
		if count++; count == 4 {
			return Break
		}

		return
	}); err != nil {
		t.Fatal(err)
	}

	if count != 4 {
		t.Fatalf("invalid count, expected %d and received %d", 4, count)
	}

	// Second page was retrieved to reach the fourth entity
	if anchor := p.LastKey(); anchor != 5000 {
		t.Fatalf("invalid anchor, expected %d and received %d", 5000, anchor)
	}
}

func TestPager_ForEach_error(t *testing.T) {
	errCallback := fmt.Errorf("callback error")
	r := newTestRetriever(makeSequentialEntities(1000, 10)...)
	p, err := newTestPager(r, withLimit(3))
	if err != nil {
		t.Fatal(err)
	}

	if err = p.ForEach(context.Background(), func(e *testEntity) (err error) {
		return errCallback
	}); err != errCallback {
		t.Fatalf("invalid error, expected <%v> and received <%v>", errCallback, err)
	}
}

func TestIterator_Next(t *testing.T) {
	r := newTestRetriever(makeSequentialEntities(1000, 5)...)
	p, err := newTestPager(r, withLimit(2), withDirection(Newer))
	if err != nil {
		t.Fatal(err)
	}

	iter := p.Iterator(context.Background())
	for _, expected := range []snowflake.ID{1000, 2000, 3000, 4000, 5000} {
		var e *testEntity
		if e, err = iter.Next(); err != nil {
			t.Fatal(err)
		}

		if e.ID != expected {
			t.Fatalf("invalid ID, expected %d and received %d", expected, e.ID)
		}
	}

	for i := 0; i < 2; i++ {
		if _, err = iter.Next(); err != ErrEndOfEntries {
			t.Fatalf("invalid error, expected <%v> and received <%v>", ErrEndOfEntries, err)
		}
	}

	// Exhaustion is only requested once per iterator
	if n := len(r.getRequests()); n != 4 {
		t.Fatalf("invalid number of requests, expected %d and received %d", 4, n)
	}
}

func TestIterator_Next_skip(t *testing.T) {
	r := newTestRetriever(makeSequentialEntities(1000, 10)...)
	p, err := newTestPager(r, withLimit(2), withoutCache())
	if err != nil {
		t.Fatal(err)
	}

	iter := p.RemainingIterator(context.Background())
	if _, err = iter.Next(); err != nil {
		t.Fatal(err)
	}

	if _, err = iter.Next(); err != nil {
		t.Fatal(err)
	}

	// Repositioning is observed by the next retrieval
	if _, err = p.SkipTo(3500); err != nil {
		t.Fatal(err)
	}

	var e *testEntity
	if e, err = iter.Next(); err != nil {
		t.Fatal(err)
	}

	if e.ID != 3000 {
		t.Fatalf("invalid ID, expected %d and received %d", 3000, e.ID)
	}
}

func TestPager_Take(t *testing.T) {
	type testcase struct {
		cachedPages int
		amount      int
		remaining   bool

		expectedIDs []snowflake.ID
	}

	tcs := []testcase{
		{amount: 3, expectedIDs: []snowflake.ID{6000, 5000, 4000}},
		{amount: 0, expectedIDs: []snowflake.ID{}},
		{amount: 10, expectedIDs: []snowflake.ID{6000, 5000, 4000, 3000, 2000, 1000}},
		{cachedPages: 1, amount: 3, expectedIDs: []snowflake.ID{6000, 5000, 4000}},
		{cachedPages: 1, amount: 3, remaining: true, expectedIDs: []snowflake.ID{4000, 3000, 2000}},
		{cachedPages: 3, amount: 2, remaining: true, expectedIDs: []snowflake.ID{}},
		{amount: math.MaxInt, expectedIDs: []snowflake.ID{6000, 5000, 4000, 3000, 2000, 1000}},
		{cachedPages: 1, amount: math.MaxInt, remaining: true, expectedIDs: []snowflake.ID{4000, 3000, 2000, 1000}},
	}

	for i, tc := range tcs {
		r := newTestRetriever(makeSequentialEntities(1000, 6)...)
		p, err := newTestPager(r, withLimit(2))
		if err != nil {
			t.Fatal(err)
		}

		for j := 0; j < tc.cachedPages; j++ {
			if _, err = p.Retrieve(context.Background()); err != nil {
				t.Fatal(err)
			}
		}

		var entities []*testEntity
		if tc.remaining {
			entities, err = p.TakeRemaining(context.Background(), tc.amount)
		} else {
			entities, err = p.Take(context.Background(), tc.amount)
		}

		if err != nil {
			t.Fatal(err)
		}

		if err = compareIDs(tc.expectedIDs, entities); err != nil {
			t.Fatalf("%v (test case #%d)", err, i)
		}
	}
}

func TestPager_TakeWhile_TakeUntil(t *testing.T) {
	type testcase struct {
		direction Direction
		until     bool
		fn        PredicateFn[*testEntity]

		expectedIDs []snowflake.ID
	}

	tcs := []testcase{
		{
			direction:   Older,
			fn:          filters.After[*testEntity](3000),
			expectedIDs: []snowflake.ID{8000, 7000, 6000, 5000, 4000},
		},
		{
			direction:   Older,
			until:       true,
			fn:          filters.BeforeOrEqualTo[*testEntity](5000),
			expectedIDs: []snowflake.ID{8000, 7000, 6000},
		},
		{
			direction:   Newer,
			fn:          filters.Between[*testEntity](0, 4500),
			expectedIDs: []snowflake.ID{1000, 2000, 3000, 4000},
		},
		{
			direction:   Newer,
			until:       true,
			fn:          filters.Match[*testEntity](1000),
			expectedIDs: []snowflake.ID{},
		},
		{
			direction:   Newer,
			until:       true,
			fn:          filters.Match[*testEntity](99999),
			expectedIDs: []snowflake.ID{1000, 2000, 3000, 4000, 5000, 6000, 7000, 8000},
		},
	}

	for i, tc := range tcs {
		r := newTestRetriever(makeSequentialEntities(1000, 8)...)
		p, err := newTestPager(r, withLimit(3), withDirection(tc.direction))
		if err != nil {
			t.Fatal(err)
		}

		var entities []*testEntity
		if tc.until {
			entities, err = p.TakeUntil(context.Background(), tc.fn)
		} else {
			entities, err = p.TakeWhile(context.Background(), tc.fn)
		}

		if err != nil {
			t.Fatal(err)
		}

		if err = compareIDs(tc.expectedIDs, entities); err != nil {
			t.Fatalf("%v (test case #%d)", err, i)
		}
	}
}
