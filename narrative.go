package advisor

import (
	"fmt"
	"strings"
)

// Fallback phrases used when no rule of a list fires.
const (
	NoStrengthsFound = "no notable strengths identified"
	MaintainStatus   = "maintain current status"
)

// NoGoalsMessage replaces the whole goals plan when the goal list is empty.
const NoGoalsMessage = "No financial goals have been set."

// stableIncomeFloor is the monthly income above which income counts as a
// strength.
var stableIncomeFloor = KRW(4_000_000)

// Narrative rules are evaluated in a fixed order; the order decides the
// textual order of the joined output, so it must not change.

// Strengths lists the client's financial strengths, joined with ", ".
func Strengths(c CashflowSummary, m Metrics) string {
	var found []string
	if c.Income.GreaterThan(stableIncomeFloor) {
		found = append(found, "stable income level")
	}
	if m.SavingsRate >= 20 {
		found = append(found, "high savings rate")
	}
	if m.DebtRatio <= 20 {
		found = append(found, "low debt ratio")
	}
	if c.Income.IsPositive() && m.ExpenseRatio <= 80 {
		found = append(found, "sound expense management")
	}
	if len(found) == 0 {
		return NoStrengthsFound
	}
	return strings.Join(found, ", ")
}

// Improvements lists the areas needing improvement, joined with ", ".
func Improvements(m Metrics) string {
	var found []string
	if m.ExpenseRatio > 80 {
		found = append(found, "reduce the expense ratio")
	}
	if m.SavingsRate < 20 {
		found = append(found, "raise the savings rate")
	}
	if m.EmergencyMonths < 3 {
		found = append(found, "build up the emergency fund")
	}
	if m.DebtRatio > 40 {
		found = append(found, "manage down the debt load")
	}
	if len(found) == 0 {
		return MaintainStatus
	}
	return strings.Join(found, ", ")
}

// Recommendations lists concrete target figures for the failing metrics,
// joined with "; ".
func Recommendations(c CashflowSummary, m Metrics) string {
	var found []string
	if m.SavingsRate < 20 {
		found = append(found, fmt.Sprintf("raise the savings rate to 20%% (%s per month)", c.Income.Scale(0.2)))
	}
	if m.EmergencyMonths < 3 {
		found = append(found, fmt.Sprintf("grow the emergency fund to %s", c.Expense.Scale(3)))
	}
	if c.Income.IsPositive() && m.ExpenseRatio > 80 {
		found = append(found, fmt.Sprintf("keep monthly spending under %s", c.Income.Scale(0.8)))
	}
	if len(found) == 0 {
		return MaintainStatus
	}
	return strings.Join(found, "; ")
}

// Conclusion frames the verdict in one of three mutually exclusive bands.
func Conclusion(m Metrics) string {
	switch {
	case m.SavingsRate >= 20 && m.EmergencyMonths >= 3:
		return "A stable financial base is in place; the focus can move to funding the selected goals."
	case m.SavingsRate >= 10:
		return "Basic financial health is in place, but a higher savings rate and a larger emergency fund are recommended."
	default:
		return "Strengthening the financial base comes first: disciplined spending and a regular savings habit."
	}
}
