package advisor

import "fmt"

// Tier is a qualitative rating for a financial-health metric.
// Tiers are ordered: a greater Tier is a better rating.
type Tier int

const (
	TierPoor Tier = iota
	TierNeedsImprovement
	TierFair
	TierGood
	TierVeryGood
)

func (t Tier) String() string {
	switch t {
	case TierPoor:
		return "poor"
	case TierNeedsImprovement:
		return "needs improvement"
	case TierFair:
		return "fair"
	case TierGood:
		return "good"
	case TierVeryGood:
		return "very good"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// ParseTier converts a tier label back into a Tier.
func ParseTier(s string) (Tier, error) {
	for t := TierPoor; t <= TierVeryGood; t++ {
		if t.String() == s {
			return t, nil
		}
	}
	return TierPoor, fmt.Errorf("unknown tier %q", s)
}
