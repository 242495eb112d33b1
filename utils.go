package pager

import "context"

func isDone(ctx context.Context) (err error) {
	select {
	case <-ctx.Done():
		err = ctx.Err()
	default:
	}

	return
}
