package listing

import "github.com/skytracker/skytracker/internal/model"

// RarityColors maps a tier to the CSS class used for the item name
type RarityColors map[model.Tier]string

// DefaultTierColor is used for tiers missing from the table
const DefaultTierColor = "text-black"

// DefaultRarityColors is the standard rarity palette
var DefaultRarityColors = RarityColors{
	model.TierCommon:    "text-gray-500",
	model.TierUncommon:  "text-green-500",
	model.TierRare:      "text-blue-500",
	model.TierEpic:      "text-purple-500",
	model.TierLegendary: "text-yellow-500",
	model.TierMythic:    "text-orange-500",
}

// ColorFor returns the class for tier
func (c RarityColors) ColorFor(tier model.Tier) string {
	if color, ok := c[tier]; ok {
		return color
	}
	return DefaultTierColor
}
