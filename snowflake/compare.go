package snowflake

// Compare will compare two IDs by their unsigned value. The result will be
// -1 when a is older than b, 1 when a is newer than b and 0 when they are equal
// Note: Every anchor comparison goes through Compare
func Compare(a, b ID) int {
	switch {
	case uint64(a) < uint64(b):
		return -1
	case uint64(a) > uint64(b):
		return 1

	default:
		return 0
	}
}

// Min will return the oldest of the provided IDs
func Min(a, b ID) ID {
	if Compare(a, b) <= 0 {
		return a
	}

	return b
}

// Max will return the newest of the provided IDs
func Max(a, b ID) ID {
	if Compare(a, b) >= 0 {
		return a
	}

	return b
}
