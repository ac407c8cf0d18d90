package utils

import "slices"

// IsIota returns whether values is exactly [0, 1, ..., len(values)-1].
func IsIota(values []int) bool {
	for ii, v := range values {
		if v != ii {
			return false
		}
	}
	return true
}

// IsSortedUnique returns whether values are strictly increasing.
func IsSortedUnique(values []int) bool {
	for ii := 1; ii < len(values); ii++ {
		if values[ii] <= values[ii-1] {
			return false
		}
	}
	return true
}

// HasDuplicates returns whether any value appears more than once.
func HasDuplicates(values []int) bool {
	seen := MakeSet[int](len(values))
	for _, v := range values {
		if seen.Has(v) {
			return true
		}
		seen.Insert(v)
	}
	return false
}

// AllInRange returns whether all values are in [0, limit).
func AllInRange(values []int, limit int) bool {
	return !slices.ContainsFunc(values, func(v int) bool { return v < 0 || v >= limit })
}
