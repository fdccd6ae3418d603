package advisor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClassifyAsset(t *testing.T) {
	testCases := []struct {
		name string
		want AssetClass
	}{
		{"KTB 10Y Bond", ClassStableAsset},
		{"KOSPI 200 Index", ClassDomesticEquity},
		{"KOSDAQ 150 Index", ClassDomesticEquity},
		{"S&P 500 Index", ClassInternationalEquity},
		{"NASDAQ 100", ClassInternationalEquity},
		{"Nikkei 225", ClassInternationalEquity},
		{"GLD Trust", ClassCommodity},
		{"Savings Insurance", ClassOther},
		{"", ClassOther},
		// The rule list is ordered, first match wins.
		{"KOSPI Bond Index", ClassStableAsset},
	}
	for _, tc := range testCases {
		if got := ClassifyAsset(tc.name); got != tc.want {
			t.Errorf("ClassifyAsset(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestAssetClass_ExpectedReturn(t *testing.T) {
	testCases := []struct {
		class AssetClass
		want  string
	}{
		{ClassStableAsset, "3-5%"},
		{ClassDomesticEquity, "6-8%"},
		{ClassInternationalEquity, "7-9%"},
		{ClassCommodity, "4-6%"},
		{ClassOther, "5-7%"},
	}
	for _, tc := range testCases {
		if got := tc.class.ExpectedReturn(); got != tc.want {
			t.Errorf("%v.ExpectedReturn() = %q, want %q", tc.class, got, tc.want)
		}
	}
}

func TestAllocation_Table(t *testing.T) {
	a := Allocation{
		AssetNames: []string{"KOSPI 200 Index", "S&P 500 Index", "KTB 10Y Bond", "GLD Trust", "Nikkei 225"},
		YearlyWeights: [][]float64{
			{0.35, 0.30, 0.24, 0.01, 0.10}, // first year drives the table
			{0.20, 0.20, 0.50, 0.05, 0.05},
		},
	}

	want := []AllocationRow{
		{Asset: "KOSPI 200 Index", Weight: Percent(0.35 * 100), Class: ClassDomesticEquity, ExpectedReturn: "6-8%"},
		{Asset: "S&P 500 Index", Weight: Percent(0.30 * 100), Class: ClassInternationalEquity, ExpectedReturn: "7-9%"},
		{Asset: "KTB 10Y Bond", Weight: Percent(0.24 * 100), Class: ClassStableAsset, ExpectedReturn: "3-5%"},
		// GLD Trust is excluded: a first-year weight of 1% is noise.
		{Asset: "Nikkei 225", Weight: Percent(0.10 * 100), Class: ClassInternationalEquity, ExpectedReturn: "7-9%"},
	}
	got := a.Table()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Table() mismatch (-want +got):\n%s", diff)
	}
}

func TestAllocation_Table_Degenerate(t *testing.T) {
	t.Run("empty allocation", func(t *testing.T) {
		if got := (Allocation{}).Table(); got != nil {
			t.Errorf("Table() = %v, want nil", got)
		}
	})
	t.Run("names without weights", func(t *testing.T) {
		a := Allocation{AssetNames: []string{"KOSPI 200 Index"}}
		if got := a.Table(); got != nil {
			t.Errorf("Table() = %v, want nil", got)
		}
	})
	t.Run("short weight vector pads with zero", func(t *testing.T) {
		a := Allocation{
			AssetNames:    []string{"KOSPI 200 Index", "S&P 500 Index"},
			YearlyWeights: [][]float64{{0.6}},
		}
		got := a.Table()
		if len(got) != 1 || got[0].Asset != "KOSPI 200 Index" {
			t.Errorf("Table() = %v, want only the weighted asset", got)
		}
	})
}
