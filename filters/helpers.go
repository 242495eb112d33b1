package filters

import (
	"time"

	"github.com/mojura/pager/snowflake"
)

// Before is an alias func for an older than comparison
func Before[T Entity](id snowflake.ID) func(T) bool {
	return Comparison[T](id, func(cmp int) bool {
		return cmp < 0
	})
}

// BeforeOrEqualTo is an alias func for an older than or equal to comparison
func BeforeOrEqualTo[T Entity](id snowflake.ID) func(T) bool {
	return Comparison[T](id, func(cmp int) bool {
		return cmp <= 0
	})
}

// After is an alias func for a newer than comparison
func After[T Entity](id snowflake.ID) func(T) bool {
	return Comparison[T](id, func(cmp int) bool {
		return cmp > 0
	})
}

// AfterOrEqualTo is an alias func for a newer than or equal to comparison
func AfterOrEqualTo[T Entity](id snowflake.ID) func(T) bool {
	return Comparison[T](id, func(cmp int) bool {
		return cmp >= 0
	})
}

// Between matches entities with IDs strictly between start and end
func Between[T Entity](start, end snowflake.ID) func(T) bool {
	return And(After[T](start), Before[T](end))
}

// CreatedBefore matches entities created before the provided time
func CreatedBefore[T Entity](t time.Time) func(T) bool {
	return Before[T](snowflake.FromTime(t))
}

// CreatedAfter matches entities created at or after the provided time
func CreatedAfter[T Entity](t time.Time) func(T) bool {
	return AfterOrEqualTo[T](snowflake.FromTime(t))
}

// Not inverts a predicate
func Not[T Entity](fn func(T) bool) func(T) bool {
	return func(entity T) bool {
		return !fn(entity)
	}
}

// And matches entities which match every predicate
func And[T Entity](fns ...func(T) bool) func(T) bool {
	return func(entity T) bool {
		for _, fn := range fns {
			if !fn(entity) {
				return false
			}
		}

		return true
	}
}
