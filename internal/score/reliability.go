package score

import "github.com/verifysense/verifysense/internal/model"

// Tier point values for the reliability average. Unset or unrecognized tiers
// score as low.
const (
	tierHighPoints   = 80.0
	tierMediumPoints = 50.0
	tierLowPoints    = 30.0

	reliabilityNeutral = 50.0
)

// AggregateReliability reduces a set of evidence items to a source-reliability
// average and a cross-source-consistency score, both in [0,100].
//
// The average is the mean of per-item tier points (neutral 50 when there is no
// evidence). Consistency counts independent high-tier sources rather than raw
// volume: three or more confirmations from trusted domains is as good as it
// gets.
func AggregateReliability(evidence []model.EvidenceItem) (avg, consistency float64) {
	if len(evidence) == 0 {
		return reliabilityNeutral, reliabilityNeutral
	}

	sum := 0.0
	highCount := 0
	for _, item := range evidence {
		switch item.Reliability {
		case model.TierHigh:
			sum += tierHighPoints
			highCount++
		case model.TierMedium:
			sum += tierMediumPoints
		default:
			sum += tierLowPoints
		}
	}
	avg = sum / float64(len(evidence))

	switch {
	case highCount >= 3:
		consistency = 80
	case highCount == 2:
		consistency = 70
	case highCount == 1:
		consistency = 60
	default:
		consistency = 50
	}

	return avg, consistency
}
