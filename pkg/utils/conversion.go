package utils

import "strconv"

// StringToUint64 parses a numeric URL parameter, returning 0 on failure so
// lookups with a bad ID just miss.
func StringToUint64(str string) uint64 {
	val, err := strconv.ParseUint(str, 10, 64)
	if err != nil {
		return 0
	}
	return val
}
