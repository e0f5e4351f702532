package valueobject

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CategoryKey identifies a budget or expense line by category and subcategory.
// Both parts are compared after trimming surrounding whitespace.
type CategoryKey struct {
	Category    string
	Subcategory string
}

// NewCategoryKey builds a trimmed key.
func NewCategoryKey(category, subcategory string) CategoryKey {
	return CategoryKey{
		Category:    strings.TrimSpace(category),
		Subcategory: strings.TrimSpace(subcategory),
	}
}

// BudgetLine is one category allocation of a budget plan.
// A nil Percentage marks a fixed-amount line.
type BudgetLine struct {
	Category     string
	Subcategory  string
	Percentage   *decimal.Decimal
	BudgetAmount decimal.Decimal
}

// ExpenseLine is the part of an expense the comparison needs.
type ExpenseLine struct {
	Date        time.Time
	Category    string
	Subcategory string
	TotalAmount decimal.Decimal
}

// CategorySum is the total spent on one category in a period.
type CategorySum struct {
	Category    string
	Subcategory string
	Total       decimal.Decimal
	Count       int
}

// ComparisonLine is the actual-vs-budget result for one category.
type ComparisonLine struct {
	Category     string
	Subcategory  string
	Percentage   *decimal.Decimal
	BudgetAmount decimal.Decimal
	ActualAmount decimal.Decimal
	Variance     decimal.Decimal // budget - actual; negative means over budget
	Unbudgeted   bool            // spending on a category the plan does not list
}

// IsOverBudget reports whether actual spending exceeds the budget.
func (l ComparisonLine) IsOverBudget() bool {
	return l.Variance.IsNegative()
}

// ComparisonTotals sums a comparison.
type ComparisonTotals struct {
	BudgetAmount decimal.Decimal
	ActualAmount decimal.Decimal
	Variance     decimal.Decimal
}

// SumByCategory groups the expenses inside the period by category key.
// Results are ordered by category then subcategory.
func SumByCategory(expenses []ExpenseLine, period Period) []CategorySum {
	index := make(map[CategoryKey]int)
	sums := make([]CategorySum, 0)

	for _, e := range expenses {
		if !period.Contains(e.Date) {
			continue
		}
		key := NewCategoryKey(e.Category, e.Subcategory)
		i, ok := index[key]
		if !ok {
			i = len(sums)
			index[key] = i
			sums = append(sums, CategorySum{
				Category:    key.Category,
				Subcategory: key.Subcategory,
				Total:       decimal.Zero,
			})
		}
		sums[i].Total = sums[i].Total.Add(e.TotalAmount)
		sums[i].Count++
	}

	sort.Slice(sums, func(a, b int) bool {
		if sums[a].Category != sums[b].Category {
			return sums[a].Category < sums[b].Category
		}
		return sums[a].Subcategory < sums[b].Subcategory
	})
	return sums
}

// CompareBudget joins period spending against the plan's lines.
// Plan lines come first in plan order; lines repeating a key are merged into
// the first. Spending on keys missing from the plan is appended as zero-budget
// lines flagged Unbudgeted. The stored budget amount is authoritative.
func CompareBudget(plan []BudgetLine, expenses []ExpenseLine, period Period) []ComparisonLine {
	return CompareSums(plan, SumByCategory(expenses, period))
}

// CompareSums is CompareBudget over already aggregated spending.
func CompareSums(plan []BudgetLine, sums []CategorySum) []ComparisonLine {
	actual := make(map[CategoryKey]decimal.Decimal, len(sums))
	for _, s := range sums {
		key := NewCategoryKey(s.Category, s.Subcategory)
		actual[key] = actual[key].Add(s.Total)
	}

	lines := make([]ComparisonLine, 0, len(plan)+len(sums))
	planned := make(map[CategoryKey]int, len(plan))

	for _, b := range plan {
		key := NewCategoryKey(b.Category, b.Subcategory)
		if i, ok := planned[key]; ok {
			lines[i].BudgetAmount = lines[i].BudgetAmount.Add(b.BudgetAmount)
			lines[i].Variance = lines[i].BudgetAmount.Sub(lines[i].ActualAmount)
			continue
		}
		spent := actual[key]
		planned[key] = len(lines)
		lines = append(lines, ComparisonLine{
			Category:     key.Category,
			Subcategory:  key.Subcategory,
			Percentage:   b.Percentage,
			BudgetAmount: b.BudgetAmount,
			ActualAmount: spent,
			Variance:     b.BudgetAmount.Sub(spent),
		})
	}

	for _, s := range sums {
		key := NewCategoryKey(s.Category, s.Subcategory)
		if _, ok := planned[key]; ok {
			continue
		}
		planned[key] = len(lines)
		spent := actual[key]
		lines = append(lines, ComparisonLine{
			Category:     key.Category,
			Subcategory:  key.Subcategory,
			BudgetAmount: decimal.Zero,
			ActualAmount: spent,
			Variance:     spent.Neg(),
			Unbudgeted:   true,
		})
	}

	return lines
}

// SummarizeComparison totals the budget, actual and variance columns.
func SummarizeComparison(lines []ComparisonLine) ComparisonTotals {
	totals := ComparisonTotals{}
	for _, l := range lines {
		totals.BudgetAmount = totals.BudgetAmount.Add(l.BudgetAmount)
		totals.ActualAmount = totals.ActualAmount.Add(l.ActualAmount)
	}
	totals.Variance = totals.BudgetAmount.Sub(totals.ActualAmount)
	return totals
}
