package dashboard

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// Summary holds the month totals shown at the top of the dashboard.
type Summary struct {
	Month           Month           `json:"month"`
	TotalIncome     decimal.Decimal `json:"totalIncome"`
	TotalExpense    decimal.Decimal `json:"totalExpense"`
	NetBalance      decimal.Decimal `json:"netBalance"`
	TotalActiveDebt decimal.Decimal `json:"totalActiveDebt"`
}

// BarPoint is one bucket of the expense trend series.
type BarPoint struct {
	Date   time.Time       `json:"date"`
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// PieSlice is the expense total of one category.
type PieSlice struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// ExpenseAnalysis holds the trend series and the category breakdown.
type ExpenseAnalysis struct {
	Period  Period     `json:"period"`
	BarData []BarPoint `json:"barData"`
	PieData []PieSlice `json:"pieData"`
}

// TransactionKind tags an entry of the recent transactions view.
type TransactionKind string

const (
	KindIncome  TransactionKind = "income"
	KindExpense TransactionKind = "expense"
)

// RecentTransaction is an income or expense flattened for the activity feed.
// Category holds the income type for incomes and the resolved category name for expenses.
type RecentTransaction struct {
	ID          uuid.UUID       `json:"id"`
	Kind        TransactionKind `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ComputeSummary totals incomes and expenses dated in month.
// Active debt is not period scoped and covers every debt.
func ComputeSummary(incomes []*entity.Income, expenses []*entity.Expense, debts []*entity.Debt, month Month) Summary {
	totalIncome := decimal.Zero
	for _, in := range incomes {
		if month.Contains(in.Date) {
			totalIncome = totalIncome.Add(in.Amount)
		}
	}

	totalExpense := decimal.Zero
	for _, ex := range expenses {
		if month.Contains(ex.Date) {
			totalExpense = totalExpense.Add(ex.Amount)
		}
	}

	return Summary{
		Month:           month,
		TotalIncome:     totalIncome,
		TotalExpense:    totalExpense,
		NetBalance:      totalIncome.Sub(totalExpense),
		TotalActiveDebt: entity.TotalActiveDebt(debts),
	}
}

// ComputeExpenseAnalysis buckets expenses by period for the trend series and groups
// them by category name for the breakdown.
// Only the trend series honours window; empty buckets are omitted.
func ComputeExpenseAnalysis(expenses []*entity.Expense, categories []*entity.Category, period Period, window DateRange) ExpenseAnalysis {
	index := entity.NewCategoryIndex(categories)

	buckets := make(map[time.Time]decimal.Decimal)
	byCategory := make(map[string]decimal.Decimal)

	for _, ex := range expenses {
		name := index.NameOf(ex.CategoryID)
		byCategory[name] = byCategory[name].Add(ex.Amount)

		if !window.Contains(ex.Date) {
			continue
		}
		start := PeriodStart(ex.Date, period)
		buckets[start] = buckets[start].Add(ex.Amount)
	}

	barData := make([]BarPoint, 0, len(buckets))
	for start, amount := range buckets {
		barData = append(barData, BarPoint{
			Date:   start,
			Label:  PeriodLabel(start, period),
			Amount: amount,
		})
	}
	sort.Slice(barData, func(i, j int) bool {
		return barData[i].Date.Before(barData[j].Date)
	})

	pieData := make([]PieSlice, 0, len(byCategory))
	for name, value := range byCategory {
		pieData = append(pieData, PieSlice{Name: name, Value: value})
	}
	sort.Slice(pieData, func(i, j int) bool {
		if c := pieData[i].Value.Cmp(pieData[j].Value); c != 0 {
			return c > 0
		}
		return pieData[i].Name < pieData[j].Name
	})

	return ExpenseAnalysis{
		Period:  period,
		BarData: barData,
		PieData: pieData,
	}
}

// RecentTransactions merges incomes and expenses newest first and keeps the first limit entries.
// Entries on the same date list incomes before expenses, then the most recently created first.
func RecentTransactions(incomes []*entity.Income, expenses []*entity.Expense, categories entity.CategoryIndex, limit int) []RecentTransaction {
	if limit <= 0 {
		return []RecentTransaction{}
	}

	merged := make([]RecentTransaction, 0, len(incomes)+len(expenses))
	for _, in := range incomes {
		merged = append(merged, RecentTransaction{
			ID:          in.ID,
			Kind:        KindIncome,
			Amount:      in.Amount,
			Description: in.Source,
			Category:    string(in.Type),
			Date:        in.Date,
			CreatedAt:   in.CreatedAt,
		})
	}
	for _, ex := range expenses {
		merged = append(merged, RecentTransaction{
			ID:          ex.ID,
			Kind:        KindExpense,
			Amount:      ex.Amount,
			Description: ex.Description,
			Category:    categories.NameOf(ex.CategoryID),
			Date:        ex.Date,
			CreatedAt:   ex.CreatedAt,
		})
	}

	sort.SliceStable(merged, func(i, j int) bool {
		a, b := merged[i], merged[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		if a.Kind != b.Kind {
			return a.Kind == KindIncome
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return strings.Compare(a.ID.String(), b.ID.String()) < 0
	})

	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}
