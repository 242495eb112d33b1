// Package pager provides cursor-anchored pagination over remote collections of
// snowflake identified entities.
//
// A Pager keeps an anchor (the exclusive boundary of the next retrieval) and
// walks the collection through a Retriever, one bounded page at a time:
//
//	p, err := pager.New(pager.MakeOpts("history"), retriever)
//	if err != nil {
//		return err
//	}
//
//	// Start with messages older than two weeks
//	if _, err = p.SkipTo(snowflake.FromTime(time.Now().Add(-14 * 24 * time.Hour))); err != nil {
//		return err
//	}
//
//	err = p.ForEach(ctx, func(m *Message) error {
//		if m.Content == "" {
//			return pager.Break
//		}
//
//		fmt.Println(m.Content)
//		return nil
//	})
//
// After every non-empty page the anchor moves to the boundary entity of the
// page (the oldest entity when walking Older). Once entities are cached the
// anchor can only move further along the walk, SkipTo rejects anchors which
// would re-visit entities that were already passed.
package pager
