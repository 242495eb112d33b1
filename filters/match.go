package filters

import "github.com/mojura/pager/snowflake"

// Match creates a predicate which matches entities with any of the provided IDs
func Match[T Entity](ids ...snowflake.ID) func(T) bool {
	set := make(map[snowflake.ID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return func(entity T) (ok bool) {
		_, ok = set[entity.GetID()]
		return
	}
}
