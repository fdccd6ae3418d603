package advisor

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/PaesslerAG/jsonpath"
)

// Decoding is lenient by design: a document that is not valid JSON is an
// error, but any missing or mistyped field inside a valid document falls
// back to its zero value. Collections that must keep their insertion order
// (asset categories, history months, expense entries) are JSON arrays.

// jget evaluates a jsonpath expression, reporting absence instead of an error.
func jget(doc any, path string) (any, bool) {
	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, false
	}
	return jval, true
}

// jstring extracts a string field, or "" when absent.
func jstring(doc any, path string) string {
	jval, ok := jget(doc, path)
	if !ok {
		return ""
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	s, _ := jval.(string)
	return s
}

// jint extracts an integer field, or 0 when absent.
func jint(doc any, path string) int {
	jval, ok := jget(doc, path)
	if !ok {
		return 0
	}
	f, _ := jval.(float64)
	return int(f)
}

// jamount extracts an amount field through the lenient normalizer.
func jamount(doc any, path string) Money {
	jval, ok := jget(doc, path)
	if !ok {
		return KRW(0)
	}
	return ParseAmount(jval)
}

// jlist extracts an array field, or nil when absent.
func jlist(doc any, path string) []any {
	jval, ok := jget(doc, path)
	if !ok {
		return nil
	}
	l, _ := jval.([]any)
	return l
}

// DecodeProfile decodes a client profile document.
func DecodeProfile(r io.Reader) (*ClientProfile, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("could not decode profile document: %w", err)
	}

	p := &ClientProfile{
		Identity: Identity{
			Name:        jstring(doc, "$.client.name"),
			Age:         jint(doc, "$.client.age"),
			Occupation:  jstring(doc, "$.client.occupation"),
			Gender:      jstring(doc, "$.client.gender"),
			CreditScore: jint(doc, "$.client.creditScore"),
		},
		Cashflow: CashflowSummary{
			BaseMonth:  jstring(doc, "$.cashflow.baseMonth"),
			Income:     jamount(doc, "$.cashflow.averageIncome"),
			Expense:    jamount(doc, "$.cashflow.averageExpense"),
			Investment: jamount(doc, "$.cashflow.averageInvestment"),
			Surplus:    jamount(doc, "$.cashflow.averageSurplus"),
		},
		Balance: BalanceSheet{
			TotalAssets:      jamount(doc, "$.balance.totalAssets"),
			TotalLiabilities: jamount(doc, "$.balance.totalLiabilities"),
			NetAssets:        jamount(doc, "$.balance.netAssets"),
		},
	}

	for _, jcat := range jlist(doc, "$.balance.assets") {
		cat := AssetCategory{Name: jstring(jcat, "$.category")}
		for _, jitem := range jlist(jcat, "$.items") {
			cat.Items = append(cat.Items, LabeledAmount{
				Label:  jstring(jitem, "$.label"),
				Amount: jamount(jitem, "$.amount"),
			})
		}
		p.Balance.Assets = append(p.Balance.Assets, cat)
	}

	for _, jmonth := range jlist(doc, "$.history") {
		rec := MonthRecord{
			Month:        jstring(jmonth, "$.month"),
			TotalExpense: jamount(jmonth, "$.totalExpense"),
		}
		for _, jexp := range jlist(jmonth, "$.expenses") {
			rec.Expenses = append(rec.Expenses, LabeledAmount{
				Label:  jstring(jexp, "$.category"),
				Amount: jamount(jexp, "$.amount"),
			})
		}
		p.History = append(p.History, rec)
	}

	return p, nil
}

// DecodeGoals decodes a goal list document, a JSON array ordered by the
// caller-assigned priority. The order is kept as-is.
func DecodeGoals(r io.Reader) ([]Goal, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("could not decode goals document: %w", err)
	}
	items, _ := doc.([]any)

	var goals []Goal
	for _, jgoal := range items {
		goals = append(goals, Goal{
			Name:      jstring(jgoal, "$.name"),
			Years:     jint(jgoal, "$.years"),
			Target:    jamount(jgoal, "$.target"),
			Priority:  jint(jgoal, "$.priority"),
			Necessity: parseNecessity(jstring(jgoal, "$.necessity")),
		})
	}
	return goals, nil
}

func parseNecessity(s string) Necessity {
	if s == string(NecessityRequired) {
		return NecessityRequired
	}
	return NecessityOptional
}

// DecodeAllocation decodes an allocation document holding the asset names
// and the per-year weight vectors. Missing parts yield an empty allocation.
func DecodeAllocation(r io.Reader) (Allocation, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Allocation{}, fmt.Errorf("could not decode allocation document: %w", err)
	}

	var a Allocation
	for _, jname := range jlist(doc, "$.assetNames") {
		name, _ := jname.(string)
		a.AssetNames = append(a.AssetNames, name)
	}
	for _, jyear := range jlist(doc, "$.yearlyWeights") {
		year, _ := jyear.([]any)
		weights := make([]float64, 0, len(year))
		for _, jweight := range year {
			weight, _ := jweight.(float64)
			weights = append(weights, weight)
		}
		a.YearlyWeights = append(a.YearlyWeights, weights)
	}
	return a, nil
}

// LoadProfile loads a client profile from a file.
func LoadProfile(path string) (*ClientProfile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open profile file %q: %w", path, err)
	}
	defer f.Close()
	p, err := DecodeProfile(f)
	if err != nil {
		return nil, fmt.Errorf("could not read profile file %q: %w", path, err)
	}
	return p, nil
}

// LoadGoals loads a goal list from a file.
func LoadGoals(path string) ([]Goal, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open goals file %q: %w", path, err)
	}
	defer f.Close()
	goals, err := DecodeGoals(f)
	if err != nil {
		return nil, fmt.Errorf("could not read goals file %q: %w", path, err)
	}
	return goals, nil
}

// LoadAllocation loads an allocation from a file.
func LoadAllocation(path string) (Allocation, error) {
	f, err := os.Open(path)
	if err != nil {
		return Allocation{}, fmt.Errorf("could not open allocation file %q: %w", path, err)
	}
	defer f.Close()
	a, err := DecodeAllocation(f)
	if err != nil {
		return Allocation{}, fmt.Errorf("could not read allocation file %q: %w", path, err)
	}
	return a, nil
}
