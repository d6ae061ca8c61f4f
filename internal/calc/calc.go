// Package calc provides the numeric helpers shared by preset scoring and
// colour interpolation: range mapping, closeness, and rank normalisation.
package calc

import "sort"

// Clamp limits x to the range [lower, upper].
func Clamp(x, lower, upper float64) float64 {
	if x < lower {
		return lower
	}
	if x > upper {
		return upper
	}
	return x
}

// MapNumber re-maps x from the source range [a, b] to the target range
// [c, d], clamping the result to the target range.
func MapNumber(x, a, b, c, d float64) float64 {
	if b == a {
		return Clamp(c, c, d)
	}
	result := (x-a)/(b-a)*(d-c) + c
	if c > d {
		return Clamp(result, d, c)
	}
	return Clamp(result, c, d)
}

// Interpolate linearly interpolates between x1 and x2 at position t.
func Interpolate(x1, x2, t float64) float64 {
	return x1 + t*(x2-x1)
}

// Closeness returns a statistic for how close x and y are, assuming both are
// in [0, 1]. The result is 1 when they are equal and 0 when they are as far
// apart as possible.
func Closeness(x, y float64) float64 {
	return Clamp(1-(x-y)*(x-y), 0, 1)
}

// NormalizedRanks assigns each value a rank in [0, 1] by sorting on key.
// A single value ranks 0.5. With reverse set, the ordering is inverted.
// Keys are assumed distinct; equal keys keep their input order.
func NormalizedRanks[T comparable](values []T, key func(T) float64, reverse bool) map[T]float64 {
	ranks := make(map[T]float64, len(values))
	if len(values) == 0 {
		return ranks
	}
	if len(values) == 1 {
		ranks[values[0]] = 0.5
		return ranks
	}
	sorted := make([]T, len(values))
	copy(sorted, values)
	sort.SliceStable(sorted, func(i, j int) bool {
		if reverse {
			return key(sorted[i]) > key(sorted[j])
		}
		return key(sorted[i]) < key(sorted[j])
	})
	n := float64(len(sorted) - 1)
	for i, v := range sorted {
		ranks[v] = float64(i) / n
	}
	return ranks
}

// BimodalNormalizedRanks is like NormalizedRanks but assumes a bimodal
// distribution split at middle: values with key ≤ middle receive ranks in
// [0, 0.5) and values above receive ranks in (0.5, 1]. The seam between the
// two lobes is widened by the average rank gap of both sides so the lobes do
// not touch at 0.5.
func BimodalNormalizedRanks[T comparable](values []T, middle float64, key func(T) float64, reverse bool) map[T]float64 {
	var left, right []T
	for _, v := range values {
		if key(v) <= middle {
			left = append(left, v)
		} else {
			right = append(right, v)
		}
	}
	if reverse {
		left, right = right, left
	}
	leftGap := 0.0
	if len(left) > 1 {
		leftGap = 0.5 / float64(len(left)-1)
	}
	rightGap := 0.0
	if len(right) > 1 {
		rightGap = 0.5 / float64(len(right)-1)
	}
	halfGap := (leftGap + rightGap) / 4
	ranks := make(map[T]float64, len(values))
	for v, rank := range NormalizedRanks(left, key, reverse) {
		ranks[v] = MapNumber(rank, 0, 1, 0, 0.5-halfGap)
	}
	for v, rank := range NormalizedRanks(right, key, reverse) {
		ranks[v] = MapNumber(rank, 0, 1, 0.5+halfGap, 1)
	}
	return ranks
}
