package present

import (
	"fmt"
	"math"
)

// Tier is the qualitative band a score falls into.
type Tier string

const (
	TierHigh     Tier = "high"
	TierStandard Tier = "standard"

	TierGood   Tier = "good"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

const (
	badgeHighThreshold = 0.70
	barGoodThreshold   = 0.75
	barMediumThreshold = 0.50
)

// FormatScore renders a [0,1] score as a whole percentage. Halves round away
// from zero, so 0.005 is "1%" and 0.004 is "0%".
func FormatScore(score float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(score*100)))
}

// BadgeTier classifies the general score shown in a card badge.
func BadgeTier(score float64) Tier {
	if score > badgeHighThreshold {
		return TierHigh
	}
	return TierStandard
}

// BarTier classifies a score shown as a bar.
func BarTier(score float64) Tier {
	switch {
	case score > barGoodThreshold:
		return TierGood
	case score > barMediumThreshold:
		return TierMedium
	default:
		return TierLow
	}
}
