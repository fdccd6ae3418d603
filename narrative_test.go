package advisor

import "testing"

func TestStrengths(t *testing.T) {
	testCases := []struct {
		name string
		c    CashflowSummary
		m    Metrics
		want string
	}{
		{
			name: "all rules fire in rule order",
			c:    CashflowSummary{Income: KRW(4_751_009)},
			m:    Metrics{SavingsRate: 33.9, DebtRatio: 15.9, ExpenseRatio: 66.1},
			want: "stable income level, high savings rate, low debt ratio, sound expense management",
		},
		{
			name: "income at the floor does not count",
			c:    CashflowSummary{Income: KRW(4_000_000)},
			m:    Metrics{SavingsRate: 25, DebtRatio: 50, ExpenseRatio: 95},
			want: "high savings rate",
		},
		{
			name: "zero income suppresses expense management",
			c:    CashflowSummary{Income: KRW(0)},
			m:    Metrics{SavingsRate: 5, DebtRatio: 10, ExpenseRatio: 0},
			want: "low debt ratio",
		},
		{
			name: "no rule fires",
			c:    CashflowSummary{Income: KRW(2_000_000)},
			m:    Metrics{SavingsRate: 5, DebtRatio: 60, ExpenseRatio: 95},
			want: NoStrengthsFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Strengths(tc.c, tc.m); got != tc.want {
				t.Errorf("Strengths() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestImprovements(t *testing.T) {
	testCases := []struct {
		name string
		m    Metrics
		want string
	}{
		{
			name: "all rules fire in rule order",
			m:    Metrics{ExpenseRatio: 95, SavingsRate: 10, EmergencyMonths: 1, DebtRatio: 50},
			want: "reduce the expense ratio, raise the savings rate, build up the emergency fund, manage down the debt load",
		},
		{
			name: "boundaries do not fire",
			m:    Metrics{ExpenseRatio: 80, SavingsRate: 20, EmergencyMonths: 3, DebtRatio: 40},
			want: MaintainStatus,
		},
		{
			name: "single rule",
			m:    Metrics{ExpenseRatio: 66, SavingsRate: 34, EmergencyMonths: 0.49, DebtRatio: 16},
			want: "build up the emergency fund",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Improvements(tc.m); got != tc.want {
				t.Errorf("Improvements() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRecommendations(t *testing.T) {
	c := CashflowSummary{Income: KRW(4_751_009), Expense: KRW(3_138_115)}

	testCases := []struct {
		name string
		m    Metrics
		want string
	}{
		{
			name: "all targets with derived figures",
			m:    Metrics{SavingsRate: 10, EmergencyMonths: 1, ExpenseRatio: 95},
			want: "raise the savings rate to 20% (₩950,202 per month); " +
				"grow the emergency fund to ₩9,414,345; " +
				"keep monthly spending under ₩3,800,807",
		},
		{
			name: "only the emergency fund",
			m:    Metrics{SavingsRate: 34, EmergencyMonths: 0.49, ExpenseRatio: 66},
			want: "grow the emergency fund to ₩9,414,345",
		},
		{
			name: "nothing to recommend",
			m:    Metrics{SavingsRate: 34, EmergencyMonths: 4, ExpenseRatio: 66},
			want: MaintainStatus,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Recommendations(c, tc.m); got != tc.want {
				t.Errorf("Recommendations() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRecommendations_ZeroIncome(t *testing.T) {
	// With no income the spending-cap recommendation makes no sense and is
	// suppressed even though the expense ratio reads zero anyway.
	c := CashflowSummary{Income: KRW(0), Expense: KRW(500_000)}
	m := Metrics{SavingsRate: 0, EmergencyMonths: 0, ExpenseRatio: 0}
	want := "raise the savings rate to 20% (₩0 per month); grow the emergency fund to ₩1,500,000"
	if got := Recommendations(c, m); got != want {
		t.Errorf("Recommendations() = %q, want %q", got, want)
	}
}

func TestConclusion(t *testing.T) {
	testCases := []struct {
		name string
		m    Metrics
		want string
	}{
		{
			name: "stable base",
			m:    Metrics{SavingsRate: 20, EmergencyMonths: 3},
			want: "A stable financial base is in place; the focus can move to funding the selected goals.",
		},
		{
			name: "high savings but thin emergency fund falls to the middle band",
			m:    Metrics{SavingsRate: 34, EmergencyMonths: 0.49},
			want: "Basic financial health is in place, but a higher savings rate and a larger emergency fund are recommended.",
		},
		{
			name: "savings at ten",
			m:    Metrics{SavingsRate: 10, EmergencyMonths: 12},
			want: "Basic financial health is in place, but a higher savings rate and a larger emergency fund are recommended.",
		},
		{
			name: "weak base",
			m:    Metrics{SavingsRate: 9.9, EmergencyMonths: 12},
			want: "Strengthening the financial base comes first: disciplined spending and a regular savings habit.",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Conclusion(tc.m); got != tc.want {
				t.Errorf("Conclusion() = %q, want %q", got, tc.want)
			}
		})
	}
}
