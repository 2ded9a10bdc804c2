package optimizer

// Scored is implemented by any entity exposing a credit weight and an
// optional score. Which field holds the score is up to the implementation:
// completed courses report their achieved score, planned courses their
// cached optimized target.
type Scored interface {
	CreditValue() float64
	ScoreValue() (float64, bool)
}

// WeightedAverage computes the total credit and credit-weighted average
// score over the given entities. Entities with a non-positive credit or no
// score are skipped entirely. A zero credit total yields (0, 0.0), meaning
// "no data" rather than an average of zero.
func WeightedAverage[T Scored](entities []T) (totalCredit, average float64) {
	var weightedSum float64
	for _, entity := range entities {
		credit := entity.CreditValue()
		score, ok := entity.ScoreValue()
		if credit <= 0 || !ok {
			continue
		}
		totalCredit += credit
		weightedSum += credit * score
	}
	if totalCredit <= 0 {
		return 0, 0.0
	}
	return totalCredit, weightedSum / totalCredit
}
