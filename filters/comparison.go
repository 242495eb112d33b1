package filters

import "github.com/mojura/pager/snowflake"

// Entity represents an entity with a snowflake ID
type Entity interface {
	GetID() snowflake.ID
}

// Comparison creates a predicate which compares entity IDs against a target ID
func Comparison[T Entity](target snowflake.ID, fn ComparisonFn) func(T) bool {
	return func(entity T) bool {
		return fn(snowflake.Compare(entity.GetID(), target))
	}
}

// ComparisonFn is called with the result of snowflake.Compare(entityID, target)
type ComparisonFn func(cmp int) (ok bool)
