package advisor

import "strings"

// AssetClass is the fixed classification of an asset-allocation entry.
type AssetClass int

const (
	ClassStableAsset AssetClass = iota
	ClassDomesticEquity
	ClassInternationalEquity
	ClassCommodity
	ClassOther
)

func (c AssetClass) String() string {
	switch c {
	case ClassStableAsset:
		return "stable asset"
	case ClassDomesticEquity:
		return "domestic equity"
	case ClassInternationalEquity:
		return "international equity"
	case ClassCommodity:
		return "commodity"
	default:
		return "other"
	}
}

// ExpectedReturn is the fixed annual return range quoted per class.
func (c AssetClass) ExpectedReturn() string {
	switch c {
	case ClassStableAsset:
		return "3-5%"
	case ClassDomesticEquity:
		return "6-8%"
	case ClassInternationalEquity:
		return "7-9%"
	case ClassCommodity:
		return "4-6%"
	default:
		return "5-7%"
	}
}

// classificationRules map a name keyword to a class. The list is evaluated
// top-down and the first match wins, so an asset name holding several
// keywords classifies deterministically.
var classificationRules = []struct {
	keyword string
	class   AssetClass
}{
	{"Bond", ClassStableAsset},
	{"KOSPI", ClassDomesticEquity},
	{"KOSDAQ", ClassDomesticEquity},
	{"S&P", ClassInternationalEquity},
	{"NASDAQ", ClassInternationalEquity},
	{"Nikkei", ClassInternationalEquity},
	{"GLD", ClassCommodity},
}

// ClassifyAsset classifies an asset by substring match against the rule
// table. Unmatched names classify as other.
func ClassifyAsset(name string) AssetClass {
	for _, rule := range classificationRules {
		if strings.Contains(name, rule.keyword) {
			return rule.class
		}
	}
	return ClassOther
}

// AllocationRow is one line of the rendered allocation table.
type AllocationRow struct {
	Asset          string
	Weight         Percent
	Class          AssetClass
	ExpectedReturn string
}

// Table builds the allocation table from the first-year weights. Assets
// whose first-year weight is at or below 1% are left out regardless of
// position. Missing inputs produce an empty table, not an error.
func (a Allocation) Table() []AllocationRow {
	if len(a.AssetNames) == 0 || len(a.YearlyWeights) == 0 {
		return nil
	}
	firstYear := a.YearlyWeights[0]

	var rows []AllocationRow
	for i, name := range a.AssetNames {
		var weight float64
		if i < len(firstYear) {
			weight = firstYear[i]
		}
		if weight <= 0.01 {
			continue
		}
		class := ClassifyAsset(name)
		rows = append(rows, AllocationRow{
			Asset:          name,
			Weight:         Percent(weight * 100),
			Class:          class,
			ExpectedReturn: class.ExpectedReturn(),
		})
	}
	return rows
}
