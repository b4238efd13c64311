package quality

// Weights returns the coverage weights of the manual and automated averages.
// Both are zero when totalCount is zero; otherwise they sum to one.
func Weights(manualCount, totalCount int) (manualWeight, autoWeight float64) {
	if totalCount <= 0 {
		return 0, 0
	}
	manualWeight = float64(manualCount) / float64(totalCount)
	autoWeight = float64(totalCount-manualCount) / float64(totalCount)
	return manualWeight, autoWeight
}

// Combine blends a manual and an automated average by review coverage.
//
// When only one side is present it is returned as is. When both are present
// the result leans toward the automated average at low coverage and converges
// to the manual average as every translation gets reviewed. A group with no
// translations has no combined value.
func Combine(manualAvg, automatedAvg *float64, manualCount, totalCount int) *float64 {
	switch {
	case manualAvg == nil && automatedAvg == nil:
		return nil
	case manualAvg == nil:
		v := *automatedAvg
		return &v
	case automatedAvg == nil:
		v := *manualAvg
		return &v
	case totalCount <= 0:
		return nil
	}

	manualWeight, autoWeight := Weights(manualCount, totalCount)
	v := *manualAvg*manualWeight + *automatedAvg*autoWeight
	return &v
}
