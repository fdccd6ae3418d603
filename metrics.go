package advisor

// Metrics are the financial-health indicators derived from a profile.
// They are computed once per report run and never stored.
type Metrics struct {
	ExpenseRatio    Percent // spending as a percentage of income
	SavingsRate     Percent // (investment + surplus) as a percentage of income
	DebtRatio       Percent // liabilities as a percentage of total assets
	EmergencyMonths float64 // liquid assets over monthly expense
}

// LiquidAssets sums the amounts found under the freely-withdrawable and
// cash-equivalent categories. Absent categories contribute zero.
func LiquidAssets(b BalanceSheet) Money {
	return b.Category(CategoryFreeDeposits).Total().
		Add(b.Category(CategoryCashEquivalents).Total())
}

// ComputeMetrics derives the financial-health metrics from the cash-flow
// averages and the balance sheet. A zero denominator yields a zero metric,
// never a division fault.
func ComputeMetrics(c CashflowSummary, b BalanceSheet) Metrics {
	var m Metrics

	income := c.Income.AsFloat()
	expense := c.Expense.AsFloat()
	if income > 0 {
		m.ExpenseRatio = Percent(expense / income * 100)
		m.SavingsRate = Percent((c.Investment.AsFloat() + c.Surplus.AsFloat()) / income * 100)
	}
	if assets := b.TotalAssets.AsFloat(); assets > 0 {
		m.DebtRatio = Percent(b.TotalLiabilities.AsFloat() / assets * 100)
	}
	if expense > 0 {
		m.EmergencyMonths = LiquidAssets(b).AsFloat() / expense
	}
	return m
}
