package advisor

// The rating engine maps each metric to a tier through a fixed monotonic
// threshold table. Boundaries are inclusive toward the better tier: an
// expense ratio of exactly 80 rates "good", a savings rate of exactly 30
// rates "very good".

// RateExpenseRatio rates spending as a percentage of income. Lower is better.
func RateExpenseRatio(r Percent) Tier {
	switch {
	case r <= 70:
		return TierVeryGood
	case r <= 80:
		return TierGood
	case r <= 90:
		return TierFair
	case r <= 100:
		return TierNeedsImprovement
	default:
		return TierPoor
	}
}

// RateSavingsRate rates (investment + surplus) as a percentage of income.
func RateSavingsRate(r Percent) Tier {
	switch {
	case r >= 30:
		return TierVeryGood
	case r >= 20:
		return TierGood
	case r >= 10:
		return TierFair
	case r >= 5:
		return TierNeedsImprovement
	default:
		return TierPoor
	}
}

// RateEmergencyFund rates how many months of expenses the liquid assets
// cover. This table bottoms out at "needs improvement".
func RateEmergencyFund(months float64) Tier {
	switch {
	case months >= 6:
		return TierVeryGood
	case months >= 3:
		return TierGood
	case months >= 1:
		return TierFair
	default:
		return TierNeedsImprovement
	}
}

// Pass/fail cutoffs of the four checks behind the overall score.
const (
	passExpenseRatio    = 80
	passSavingsRate     = 20
	passEmergencyMonths = 3
	passDebtRatio       = 40
)

// OverallTier scores the fraction of passing checks among the four
// pass/fail cutoffs and maps it onto the tier scale. With four binary
// checks the result ranges from "needs improvement" to "very good".
func OverallTier(m Metrics) Tier {
	passed := 0
	if m.ExpenseRatio <= passExpenseRatio {
		passed++
	}
	if m.SavingsRate >= passSavingsRate {
		passed++
	}
	if m.EmergencyMonths >= passEmergencyMonths {
		passed++
	}
	if m.DebtRatio <= passDebtRatio {
		passed++
	}
	switch score := float64(passed) / 4; {
	case score >= 0.8:
		return TierVeryGood
	case score >= 0.6:
		return TierGood
	case score >= 0.4:
		return TierFair
	default:
		return TierNeedsImprovement
	}
}

// Ratings bundles the tier of every rated metric for one report run.
type Ratings struct {
	Expense   Tier
	Savings   Tier
	Emergency Tier
	Overall   Tier
}

// Rate rates all metrics at once.
func Rate(m Metrics) Ratings {
	return Ratings{
		Expense:   RateExpenseRatio(m.ExpenseRatio),
		Savings:   RateSavingsRate(m.SavingsRate),
		Emergency: RateEmergencyFund(m.EmergencyMonths),
		Overall:   OverallTier(m),
	}
}
