package pager

// ForEachFn is called during iteration
type ForEachFn[T Entity] func(entity T) error

// PredicateFn is called to match entities during Take calls
type PredicateFn[T Entity] func(entity T) bool
