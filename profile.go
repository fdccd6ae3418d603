package advisor

import "sort"

// ClientProfile is the in-memory form of a client's financial profile.
// It is a read-only input: report generation never mutates it.
type ClientProfile struct {
	Identity Identity
	Cashflow CashflowSummary
	Balance  BalanceSheet
	History  []MonthRecord
}

// Identity carries the client's basic information.
type Identity struct {
	Name        string
	Age         int
	Occupation  string
	Gender      string
	CreditScore int
}

// CashflowSummary holds the recent three-month averages of the client's
// cash flow, already aggregated by the upstream bookkeeping.
type CashflowSummary struct {
	BaseMonth  string // month the averages were computed for, e.g. "2025-05"
	Income     Money
	Expense    Money
	Investment Money
	Surplus    Money
}

// BalanceSheet holds the client's asset and liability totals, with assets
// broken down by category. Category order is the profile's own order.
type BalanceSheet struct {
	TotalAssets      Money
	TotalLiabilities Money
	NetAssets        Money
	Assets           []AssetCategory
}

// AssetCategory groups labeled amounts under a category name.
type AssetCategory struct {
	Name  string
	Items []LabeledAmount
}

// LabeledAmount is a single named amount within a category breakdown.
type LabeledAmount struct {
	Label  string
	Amount Money
}

// Category labels whose items count as liquid assets.
const (
	CategoryFreeDeposits    = "freely-withdrawable deposits"
	CategoryCashEquivalents = "cash-equivalents"
)

// Category returns the named asset category. A missing category is an
// empty one, never an error.
func (b BalanceSheet) Category(name string) AssetCategory {
	for _, c := range b.Assets {
		if c.Name == name {
			return c
		}
	}
	return AssetCategory{Name: name}
}

// Total sums the amounts of the category items.
func (c AssetCategory) Total() Money {
	total := KRW(0)
	for _, it := range c.Items {
		total = total.Add(it.Amount)
	}
	return total
}

// MonthRecord is one month of the cash-flow history. Expense entries keep
// the insertion order of the source record.
type MonthRecord struct {
	Month        string
	TotalExpense Money
	Expenses     []LabeledAmount
}

// TopExpenses returns the n largest expense entries by descending amount.
// Ties keep their original order in the record.
func (m MonthRecord) TopExpenses(n int) []LabeledAmount {
	sorted := make([]LabeledAmount, len(m.Expenses))
	copy(sorted, m.Expenses)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount.GreaterThan(sorted[j].Amount)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// RecentMonths returns the last n entries of the cash-flow history, oldest
// first, in the history's own order.
func (p ClientProfile) RecentMonths(n int) []MonthRecord {
	if len(p.History) <= n {
		return p.History
	}
	return p.History[len(p.History)-n:]
}

// Necessity tells whether a goal is required or optional.
type Necessity string

const (
	NecessityRequired Necessity = "required"
	NecessityOptional Necessity = "optional"
)

// Goal is a financial goal selected by the client. The goal list is
// ordered by the caller-assigned priority and never reordered here.
type Goal struct {
	Name      string
	Years     int
	Target    Money
	Priority  int
	Necessity Necessity
}

// MonthlyInvestment is the flat monthly amount needed to reach the target,
// without compounding. A horizon below one year counts as one year.
func (g Goal) MonthlyInvestment() Money {
	years := g.Years
	if years < 1 {
		years = 1
	}
	return g.Target.DivBy(years * 12)
}

// Allocation is the externally supplied target-date style allocation:
// one weight vector per year, one entry per asset name. Weights are used
// as provided, they are not renormalized.
type Allocation struct {
	AssetNames    []string
	YearlyWeights [][]float64
}
