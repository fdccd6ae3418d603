package renderer

import "github.com/sonpb/advisor"

// Household is the view of the household analysis report.
type Household struct {
	AsOf string `json:"asOf"`

	Name        string `json:"name"`
	Age         int    `json:"age"`
	Occupation  string `json:"occupation"`
	Gender      string `json:"gender"`
	CreditScore int    `json:"creditScore"`

	TotalAssets      advisor.Money   `json:"totalAssets"`
	TotalLiabilities advisor.Money   `json:"totalLiabilities"`
	NetAssets        advisor.Money   `json:"netAssets"`
	DebtRatio        advisor.Percent `json:"debtRatio"`

	BaseMonth  string        `json:"baseMonth,omitempty"`
	Income     advisor.Money `json:"income"`
	Expense    advisor.Money `json:"expense"`
	Investment advisor.Money `json:"investment"`
	Surplus    advisor.Money `json:"surplus"`

	ExpenseRatio    advisor.Percent `json:"expenseRatio"`
	ExpenseTier     string          `json:"expenseTier"`
	SavingsRate     advisor.Percent `json:"savingsRate"`
	SavingsTier     string          `json:"savingsTier"`
	LiquidAssets    advisor.Money   `json:"liquidAssets"`
	EmergencyMonths float64         `json:"emergencyMonths"`
	EmergencyTier   string          `json:"emergencyTier"`

	Months []MonthBreakdown `json:"months,omitempty"`

	Strengths       string `json:"strengths"`
	Improvements    string `json:"improvements"`
	Recommendations string `json:"recommendations"`
	Overall         string `json:"overall"`
	Conclusion      string `json:"conclusion"`
}

// MonthBreakdown lists one month's total spending and its largest entries.
type MonthBreakdown struct {
	Month string        `json:"month"`
	Total advisor.Money `json:"total"`
	Top   []ExpenseLine `json:"top,omitempty"`
}

// ExpenseLine is a single category line in a month breakdown.
type ExpenseLine struct {
	Category string        `json:"category"`
	Amount   advisor.Money `json:"amount"`
}

// topExpenseCount caps the per-month breakdown to the largest entries.
const topExpenseCount = 5

// recentMonthCount is how far back the spending pattern section looks.
const recentMonthCount = 3

// NewHousehold derives the household analysis view from a profile.
func NewHousehold(p *advisor.ClientProfile) *Household {
	metrics := advisor.ComputeMetrics(p.Cashflow, p.Balance)
	ratings := advisor.Rate(metrics)

	name := p.Identity.Name
	if name == "" {
		name = "The client"
	}

	h := &Household{
		AsOf: Now().Format("2006-01-02"),

		Name:        name,
		Age:         p.Identity.Age,
		Occupation:  p.Identity.Occupation,
		Gender:      p.Identity.Gender,
		CreditScore: p.Identity.CreditScore,

		TotalAssets:      p.Balance.TotalAssets,
		TotalLiabilities: p.Balance.TotalLiabilities,
		NetAssets:        p.Balance.NetAssets,
		DebtRatio:        metrics.DebtRatio,

		BaseMonth:  p.Cashflow.BaseMonth,
		Income:     p.Cashflow.Income,
		Expense:    p.Cashflow.Expense,
		Investment: p.Cashflow.Investment,
		Surplus:    p.Cashflow.Surplus,

		ExpenseRatio:    metrics.ExpenseRatio,
		ExpenseTier:     ratings.Expense.String(),
		SavingsRate:     metrics.SavingsRate,
		SavingsTier:     ratings.Savings.String(),
		LiquidAssets:    advisor.LiquidAssets(p.Balance),
		EmergencyMonths: metrics.EmergencyMonths,
		EmergencyTier:   ratings.Emergency.String(),

		Strengths:       advisor.Strengths(p.Cashflow, metrics),
		Improvements:    advisor.Improvements(metrics),
		Recommendations: advisor.Recommendations(p.Cashflow, metrics),
		Overall:         ratings.Overall.String(),
		Conclusion:      advisor.Conclusion(metrics),
	}

	for _, month := range p.RecentMonths(recentMonthCount) {
		breakdown := MonthBreakdown{Month: month.Month, Total: month.TotalExpense}
		for _, entry := range month.TopExpenses(topExpenseCount) {
			breakdown.Top = append(breakdown.Top, ExpenseLine{Category: entry.Label, Amount: entry.Amount})
		}
		h.Months = append(h.Months, breakdown)
	}

	return h
}
