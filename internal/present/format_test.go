package present

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatScore(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0.756, "76%"},
		{0.004, "0%"},
		{0.005, "1%"},
		{0.125, "13%"},
		{0.82, "82%"},
		{0.7, "70%"},
		{0.995, "100%"},
		{1, "100%"},
		{0, "0%"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatScore(tt.score), "score %v", tt.score)
	}
}

func TestBadgeTier(t *testing.T) {
	assert.Equal(t, TierHigh, BadgeTier(0.82))
	assert.Equal(t, TierHigh, BadgeTier(0.701))
	assert.Equal(t, TierStandard, BadgeTier(0.70))
	assert.Equal(t, TierStandard, BadgeTier(0.1))
}

func TestBarTier(t *testing.T) {
	tests := []struct {
		score float64
		want  Tier
	}{
		{0.9, TierGood},
		{0.76, TierGood},
		{0.75, TierMedium},
		{0.7, TierMedium},
		{0.51, TierMedium},
		{0.5, TierLow},
		{0, TierLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BarTier(tt.score), "score %v", tt.score)
	}
}
