package feasibility

// ShapeProbabilityGTE gives P(a random 13-card hand has >= n cards in one
// suit), derived from Hypergeometric(N=52, K=13, n=13). Used by the
// dispersion check to flag tight seats eligible for shape-help
// pre-allocation.
var ShapeProbabilityGTE = map[int]float64{
	0:  1.000,
	1:  0.987,
	2:  0.920,
	3:  0.710,
	4:  0.430,
	5:  0.189,
	6:  0.063,
	7:  0.021,
	8:  0.005,
	9:  0.001,
	10: 0.0002,
	11: 0.00002,
	12: 0.000001,
	13: 0.00000003,
}

// ShapeProbabilityThreshold: suits whose required minimum count has
// ShapeProbabilityGTE at or below this value are "tight" and eligible for
// shape-help pre-allocation.
const ShapeProbabilityThreshold = 0.19

// PreAllocateFraction is the fraction of a tight suit's minimum that gets
// reserved ahead of the shuffled deal.
const PreAllocateFraction = 0.75

// IsTight reports whether a suit minimum of minCards is tight enough to
// warrant pre-allocation help.
func IsTight(minCards int) bool {
	p, ok := ShapeProbabilityGTE[minCards]
	if !ok {
		return minCards > 13
	}
	return p <= ShapeProbabilityThreshold
}
