package advisor

import "testing"

func TestTier_Order(t *testing.T) {
	if !(TierPoor < TierNeedsImprovement && TierNeedsImprovement < TierFair &&
		TierFair < TierGood && TierGood < TierVeryGood) {
		t.Fatal("tiers must order from poor to very good")
	}
}

func TestParseTier(t *testing.T) {
	for tier := TierPoor; tier <= TierVeryGood; tier++ {
		got, err := ParseTier(tier.String())
		if err != nil {
			t.Errorf("ParseTier(%q) error = %v", tier.String(), err)
			continue
		}
		if got != tier {
			t.Errorf("ParseTier(%q) = %v, want %v", tier.String(), got, tier)
		}
	}
	if _, err := ParseTier("excellent"); err == nil {
		t.Error("ParseTier() on an unknown label should fail")
	}
}
