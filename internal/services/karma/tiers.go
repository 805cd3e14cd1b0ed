package karma

// Trust tiers, derived solely from the current karma point total.
const (
	TierBronze = "bronze"
	TierSilver = "silver"
	TierGold   = "gold"
)

// Tier thresholds, inclusive lower bounds: 100 points is silver, 500 is gold.
const (
	SilverThreshold = 100
	GoldThreshold   = 500
)

// TierFor maps a point total to its trust tier.
func TierFor(points int) string {
	switch {
	case points >= GoldThreshold:
		return TierGold
	case points >= SilverThreshold:
		return TierSilver
	default:
		return TierBronze
	}
}

// NextTier returns the tier above the given one, or "" for gold.
func NextTier(tier string) string {
	switch tier {
	case TierBronze:
		return TierSilver
	case TierSilver:
		return TierGold
	default:
		return ""
	}
}

// TierProgress returns how far (0-100) the point total has advanced from its
// tier's lower bound toward the next threshold. Gold is always 100.
func TierProgress(points int) int {
	if points < 0 {
		points = 0
	}

	switch {
	case points >= GoldThreshold:
		return 100
	case points >= SilverThreshold:
		return (points - SilverThreshold) * 100 / (GoldThreshold - SilverThreshold)
	default:
		return points * 100 / SilverThreshold
	}
}
