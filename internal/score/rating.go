package score

import (
	"strings"

	"github.com/verifysense/verifysense/internal/model"
)

// Claim-match anchors. Absence of any fact-check is neutral; presence of one
// is itself a moderately strong signal before the verdict text is read.
const (
	claimMatchNeutral = 50.0
	claimMatchBase    = 80.0
)

// ratingRule maps verdict keywords to a claim-match score. Rules are evaluated
// top to bottom per fact-check; the first keyword found in the rating text
// wins for that check. Note the ordering quirk this preserves: "Mostly False"
// contains "false" and therefore resolves to 20, not 30.
type ratingRule struct {
	keywords []string
	score    float64
}

var ratingRules = []ratingRule{
	{[]string{"false", "pants on fire"}, 20},
	{[]string{"mostly false", "misleading"}, 30},
	{[]string{"half true", "mixture", "mixed"}, 50},
	{[]string{"mostly true"}, 70},
	{[]string{"true"}, 90},
}

// NormalizeRatings reduces free-text fact-check verdicts to a claim-match
// score in [0,100]. With no fact-checks it returns the neutral 50. Otherwise
// it starts from the base of 80 and lets each check's verdict overwrite the
// running score in supply order, so when checks disagree the last one that
// matches any keyword wins.
func NormalizeRatings(factChecks []model.FactCheckResult) float64 {
	if len(factChecks) == 0 {
		return claimMatchNeutral
	}

	score := claimMatchBase
	for _, check := range factChecks {
		if s, ok := matchRating(check.Rating); ok {
			score = s
		}
	}
	return score
}

// matchRating scans the rule table for the first keyword present in the
// rating text. Unrecognized verdicts contribute nothing.
func matchRating(rating string) (float64, bool) {
	lower := strings.ToLower(rating)
	for _, rule := range ratingRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.score, true
			}
		}
	}
	return 0, false
}
