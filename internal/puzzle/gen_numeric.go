package puzzle

import "math/rand/v2"

func buildSubsetSum(cfg Config, r *rand.Rand) (*Instance, error) {
	n := sizeIn(cfg, r)
	values := make([]int, n)
	for i := range values {
		values[i] = cfg.MinValue + r.IntN(cfg.MaxValue-cfg.MinValue+1)
	}
	// a random non-empty pick fixes the target, so a solution exists by
	// construction (the pick may well be every item)
	chosen := mask(1 + r.IntN(1<<n-1))
	target := 0
	for _, i := range chosen.indexes() {
		target += values[i]
	}
	return &Instance{Kind: SubsetSum, Values: values, Target: target}, nil
}

// buildPartition splits the item indexes into two non-empty groups,
// draws random magnitudes for the first and derives the second so both
// groups sum equally. Solvability needs no search.
func buildPartition(cfg Config, r *rand.Rand) (*Instance, error) {
	n := sizeIn(cfg, r)
	if n < 2 {
		return nil, AssertionError{"partition needs at least 2 items"}
	}
	perm := r.Perm(n)
	cut := 1 + r.IntN(n-1)
	groupA, groupB := perm[:cut], perm[cut:]

	values := make([]int, n)
	sumA := 0
	for try := 0; ; try++ {
		if try == 32 {
			return nil, AssertionError{"could not draw a splittable magnitude set"}
		}
		sumA = 0
		for _, i := range groupA {
			values[i] = cfg.MinValue + r.IntN(cfg.MaxValue-cfg.MinValue+1)
			sumA += values[i]
		}
		if sumA >= len(groupB) {
			break
		}
	}

	remaining := sumA
	for j, i := range groupB {
		left := len(groupB) - 1 - j
		if left == 0 {
			values[i] = remaining
		} else {
			// keep at least 1 in reserve for every item after this one
			values[i] = 1 + r.IntN(remaining-left)
			remaining -= values[i]
		}
	}

	return &Instance{Kind: Partition, Values: values, Target: sumA}, nil
}
