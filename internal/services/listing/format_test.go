package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skytracker/skytracker/internal/model"
)

func TestFormatCoins(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "0"},
		{500, "500"},
		{999, "999"},
		{1000, "1.0k"},
		{1500, "1.5k"},
		{999_999, "1000.0k"},
		{1_000_000, "1.0m"},
		{2_500_000, "2.5m"},
		{1_234_567_890, "1234.6m"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatCoins(tc.amount), "amount %d", tc.amount)
	}
}

func TestRarityColors(t *testing.T) {
	assert.Equal(t, "text-gray-500", DefaultRarityColors.ColorFor(model.TierCommon))
	assert.Equal(t, "text-orange-500", DefaultRarityColors.ColorFor(model.TierMythic))
	assert.Equal(t, DefaultTierColor, DefaultRarityColors.ColorFor("SPECIAL"))
	assert.Equal(t, DefaultTierColor, DefaultRarityColors.ColorFor(""))
}
