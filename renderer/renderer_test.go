package renderer

import (
	"strings"
	"testing"

	"github.com/sonpb/advisor"
)

// sampleProfile mirrors the documented example profile.
func sampleProfile() *advisor.ClientProfile {
	return &advisor.ClientProfile{
		Identity: advisor.Identity{Name: "Kim Jiwon", Age: 31, Occupation: "office worker", Gender: "F", CreditScore: 910},
		Cashflow: advisor.CashflowSummary{
			BaseMonth:  "2025-05",
			Income:     advisor.KRW(4_751_009),
			Expense:    advisor.KRW(3_138_115),
			Investment: advisor.KRW(800_000),
			Surplus:    advisor.KRW(812_893),
		},
		Balance: advisor.BalanceSheet{
			TotalAssets:      advisor.KRW(125_550_152),
			TotalLiabilities: advisor.KRW(20_000_000),
			NetAssets:        advisor.KRW(105_550_152),
			Assets: []advisor.AssetCategory{
				{Name: advisor.CategoryFreeDeposits, Items: []advisor.LabeledAmount{
					{Label: "checking account", Amount: advisor.KRW(1_250_152)},
				}},
				{Name: advisor.CategoryCashEquivalents, Items: []advisor.LabeledAmount{
					{Label: "money market fund", Amount: advisor.KRW(300_000)},
				}},
			},
		},
		History: []advisor.MonthRecord{
			{Month: "2025-03", TotalExpense: advisor.KRW(2_900_000), Expenses: []advisor.LabeledAmount{
				{Label: "rent", Amount: advisor.KRW(900_000)},
				{Label: "groceries", Amount: advisor.KRW(500_000)},
			}},
			{Month: "2025-04", TotalExpense: advisor.KRW(3_100_000)},
			{Month: "2025-05", TotalExpense: advisor.KRW(3_400_000), Expenses: []advisor.LabeledAmount{
				{Label: "travel", Amount: advisor.KRW(1_200_000)},
				{Label: "rent", Amount: advisor.KRW(900_000)},
			}},
		},
	}
}

func sampleGoals() []advisor.Goal {
	return []advisor.Goal{
		{Name: "wedding fund", Years: 3, Target: advisor.KRW(36_000_000), Priority: 1, Necessity: advisor.NecessityRequired},
		{Name: "housing deposit", Years: 5, Target: advisor.KRW(50_000_000), Priority: 2, Necessity: advisor.NecessityOptional},
	}
}

func sampleAllocation() advisor.Allocation {
	return advisor.Allocation{
		AssetNames:    []string{"KOSPI 200 Index", "S&P 500 Index", "KTB 10Y Bond", "GLD Trust"},
		YearlyWeights: [][]float64{{0.35, 0.30, 0.25, 0.10}},
	}
}

// wantInOrder asserts every needle appears in the document, each one after
// the previous.
func wantInOrder(t *testing.T, doc string, needles ...string) {
	t.Helper()
	at := 0
	for _, needle := range needles {
		i := strings.Index(doc[at:], needle)
		if i < 0 {
			t.Fatalf("missing or out of order: %q\nin:\n%s", needle, doc)
		}
		at += i + len(needle)
	}
}

func TestRenderHousehold(t *testing.T) {
	t.Setenv("SPB_TESTING_NOW", "2025-06-01 09:00:00")

	doc := RenderHousehold(NewHousehold(sampleProfile()))

	wantInOrder(t, doc,
		"# Household Analysis and Financial Assessment",
		"*As of 2025-06-01*",
		"## Client",
		"**Name**: Kim Jiwon",
		"**Credit score**: 910",
		"## Assets and Liabilities",
		"**Total assets**: ₩125,550,152",
		"**Debt ratio**: 15.9%",
		"## Cash Flow (3-month average, through 2025-05)",
		"**Average income**: ₩4,751,009",
		"## Financial Health Ratings",
		"| Expense ratio | 66.1% | very good |",
		"| Savings rate | 33.9% | very good |",
		"| Emergency fund | 0.5 months | needs improvement |",
		"Liquid assets on hand: ₩1,550,152",
		"## Recent Spending Pattern",
		"**2025-03 spending**: ₩2,900,000",
		"- rent: ₩900,000",
		"**2025-04 spending**: ₩3,100,000",
		"**2025-05 spending**: ₩3,400,000",
		"- travel: ₩1,200,000",
		"## Overall Assessment",
		"### Strengths",
		"stable income level, high savings rate, low debt ratio, sound expense management",
		"### Areas to Improve",
		"build up the emergency fund",
		"### Recommended Actions",
		"grow the emergency fund to ₩9,414,345",
		"## Conclusion",
		"**Kim Jiwon's financial standing is overall at a good level.",
	)
}

func TestRenderHousehold_AnonymousProfile(t *testing.T) {
	t.Setenv("SPB_TESTING_NOW", "2025-06-01 09:00:00")

	p := sampleProfile()
	p.Identity.Name = ""
	p.History = nil
	doc := RenderHousehold(NewHousehold(p))

	if !strings.Contains(doc, "**Name**: The client") {
		t.Errorf("missing name fallback in:\n%s", doc)
	}
	if strings.Contains(doc, "## Recent Spending Pattern") {
		t.Errorf("spending section should be skipped without history:\n%s", doc)
	}
}

func TestRenderPlan(t *testing.T) {
	t.Setenv("SPB_TESTING_NOW", "2025-06-01 09:00:00")

	doc := RenderPlan(NewPlan(sampleGoals(), sampleAllocation()))

	wantInOrder(t, doc,
		"# Financial Goals and Asset Allocation Plan",
		"*As of 2025-06-01*",
		"## Selected Goals",
		"**Goal 1: wedding fund**",
		"- Target: ₩36,000,000",
		"- Necessity: required",
		"**Goal 2: housing deposit**",
		"### Goals at a Glance",
		"| wedding fund | 3 | ₩36,000,000 | 1 | required |",
		"| housing deposit | 5 | ₩50,000,000 | 2 | optional |",
		"## Asset Allocation",
		"| KOSPI 200 Index | 35.0% | domestic equity | 6-8% |",
		"| S&P 500 Index | 30.0% | international equity | 7-9% |",
		"| KTB 10Y Bond | 25.0% | stable asset | 3-5% |",
		"| GLD Trust | 10.0% | commodity | 4-6% |",
		"## Execution by Horizon",
		"## Monthly Investment Plan",
		"**wedding fund**",
		"- Monthly investment: ₩1,000,000",
		"**housing deposit**",
		"- Monthly investment: ₩833,333",
		"**Total monthly investment**: ₩1,833,333",
		"**Total yearly investment**: ₩21,999,996",
		"## Rebalancing and Monitoring",
	)
}

func TestRenderPlan_NoGoals(t *testing.T) {
	if got := RenderPlan(NewPlan(nil, sampleAllocation())); got != advisor.NoGoalsMessage {
		t.Errorf("RenderPlan() without goals = %q, want %q", got, advisor.NoGoalsMessage)
	}
}

func TestRenderPlan_NoAllocation(t *testing.T) {
	t.Setenv("SPB_TESTING_NOW", "2025-06-01 09:00:00")

	doc := RenderPlan(NewPlan(sampleGoals(), advisor.Allocation{}))
	if !strings.Contains(doc, "No allocation inputs were provided.") {
		t.Errorf("missing allocation fallback in:\n%s", doc)
	}
}

func TestRenderDigest(t *testing.T) {
	t.Setenv("SPB_TESTING_NOW", "2025-06-01 09:30:00")

	doc := RenderDigest(NewDigest(sampleProfile(), sampleGoals(), sampleAllocation()))

	wantInOrder(t, doc,
		"# Advisory Digest",
		"*Generated 2025-06-01 09:30*",
		"## Household",
		"**Name**: Kim Jiwon",
		"**Total assets**: ₩125,550,152",
		"**Net assets**: ₩105,550,152",
		"## Selected Goals",
		"**Goal 1**: wedding fund",
		"**Goal 2**: housing deposit",
		"## Asset Allocation",
		"**Main asset classes**: KOSPI 200 Index, S&P 500 Index, KTB 10Y Bond",
	)
}
