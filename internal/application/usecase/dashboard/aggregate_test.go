package dashboard

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(s string) time.Time {
	t, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func expense(amount, date string, categoryID *uuid.UUID) *entity.Expense {
	return entity.NewExpense(dec(amount), "expense on "+date, categoryID, day(date))
}

func income(amount, date string) *entity.Income {
	return entity.NewIncome(dec(amount), "salary", entity.IncomeTypeFixedMonthly, day(date))
}

func TestComputeSummary_Empty(t *testing.T) {
	summary := ComputeSummary(nil, nil, nil, Month{Year: 2024, Month: time.March})

	assert.True(t, summary.TotalIncome.IsZero())
	assert.True(t, summary.TotalExpense.IsZero())
	assert.True(t, summary.NetBalance.IsZero())
	assert.True(t, summary.TotalActiveDebt.IsZero())
}

func TestComputeSummary_ScopesIncomeAndExpenseToMonth(t *testing.T) {
	incomes := []*entity.Income{
		income("5000", "2024-03-01"),
		income("250.25", "2024-03-31"),
		income("9999", "2024-02-29"),
	}
	expenses := []*entity.Expense{
		expense("0.10", "2024-03-05", nil),
		expense("0.20", "2024-03-06", nil),
		expense("100", "2024-04-01", nil),
	}
	debt := entity.NewDebt("Card", dec("1000"), nil)
	require.NoError(t, debt.ApplyPayment(dec("300")))
	settled := entity.NewDebt("Phone", dec("50"), nil)
	require.NoError(t, settled.ApplyPayment(dec("50")))

	summary := ComputeSummary(incomes, expenses, []*entity.Debt{debt, settled}, Month{Year: 2024, Month: time.March})

	assert.Equal(t, "5250.25", summary.TotalIncome.String())
	assert.Equal(t, "0.3", summary.TotalExpense.String())
	assert.Equal(t, "5249.95", summary.NetBalance.String())
	assert.Equal(t, "700", summary.TotalActiveDebt.String())
}

func TestComputeExpenseAnalysis_DailyIsSparse(t *testing.T) {
	expenses := []*entity.Expense{
		expense("5", "2024-01-03", nil),
		expense("10", "2024-01-01", nil),
	}

	analysis := ComputeExpenseAnalysis(expenses, nil, PeriodDaily, DateRange{})

	require.Len(t, analysis.BarData, 2)
	assert.Equal(t, "2024-01-01", analysis.BarData[0].Date.Format(entity.DateLayout))
	assert.Equal(t, "10", analysis.BarData[0].Amount.String())
	assert.Equal(t, "2024-01-03", analysis.BarData[1].Date.Format(entity.DateLayout))
	assert.Equal(t, "5", analysis.BarData[1].Amount.String())
	assert.Equal(t, "Jan 1", analysis.BarData[0].Label)
}

func TestComputeExpenseAnalysis_Buckets(t *testing.T) {
	expenses := []*entity.Expense{
		expense("1", "2023-12-31", nil), // Sunday, ISO week 52 of 2023
		expense("2", "2024-01-01", nil), // Monday, ISO week 1 of 2024
		expense("3", "2024-01-07", nil), // Sunday, same week
		expense("4", "2024-01-31", nil),
		expense("5", "2024-02-01", nil),
	}

	tests := []struct {
		name   string
		period Period
		keys   []string
		sums   []string
		labels []string
	}{
		{
			name:   "weekly",
			period: PeriodWeekly,
			keys:   []string{"2023-12-25", "2024-01-01", "2024-01-29"},
			sums:   []string{"1", "5", "9"},
			labels: []string{"W52 2023", "W01 2024", "W05 2024"},
		},
		{
			name:   "monthly",
			period: PeriodMonthly,
			keys:   []string{"2023-12-01", "2024-01-01", "2024-02-01"},
			sums:   []string{"1", "9", "5"},
			labels: []string{"Dec 2023", "Jan 2024", "Feb 2024"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := ComputeExpenseAnalysis(expenses, nil, tt.period, DateRange{})

			require.Len(t, analysis.BarData, len(tt.keys))
			for i, point := range analysis.BarData {
				assert.Equal(t, tt.keys[i], point.Date.Format(entity.DateLayout))
				assert.Equal(t, tt.sums[i], point.Amount.String())
				assert.Equal(t, tt.labels[i], point.Label)
			}
		})
	}
}

func TestComputeExpenseAnalysis_PieIgnoresDatesAndResolvesNames(t *testing.T) {
	food := entity.NewCategory("Food")
	transport := entity.NewCategory("Transport")
	deleted := uuid.New()

	expenses := []*entity.Expense{
		expense("40", "2024-01-01", &food.ID),
		expense("60", "2023-06-15", &food.ID),
		expense("20", "2024-03-05", &transport.ID),
		expense("7.5", "2024-03-05", &deleted),
		expense("2.5", "2024-03-06", nil),
	}
	start := day("2024-03-01")

	analysis := ComputeExpenseAnalysis(expenses, []*entity.Category{food, transport}, PeriodDaily, DateRange{Start: &start})

	require.Len(t, analysis.PieData, 3)
	assert.Equal(t, "Food", analysis.PieData[0].Name)
	assert.Equal(t, "100", analysis.PieData[0].Value.String())
	assert.Equal(t, "Transport", analysis.PieData[1].Name)
	assert.Equal(t, "20", analysis.PieData[1].Value.String())
	assert.Equal(t, entity.UnknownCategoryName, analysis.PieData[2].Name)
	assert.Equal(t, "10", analysis.PieData[2].Value.String())

	require.Len(t, analysis.BarData, 2, "trend series honours the window")
	assert.Equal(t, "2024-03-05", analysis.BarData[0].Date.Format(entity.DateLayout))
	assert.Equal(t, "27.5", analysis.BarData[0].Amount.String())
}

func TestComputeExpenseAnalysis_NoExpenses(t *testing.T) {
	analysis := ComputeExpenseAnalysis(nil, nil, PeriodMonthly, DateRange{})

	assert.NotNil(t, analysis.BarData)
	assert.Empty(t, analysis.BarData)
	assert.NotNil(t, analysis.PieData)
	assert.Empty(t, analysis.PieData)
}

func TestComputeExpenseAnalysis_AvoidsFloatDrift(t *testing.T) {
	var expenses []*entity.Expense
	for i := 0; i < 10; i++ {
		expenses = append(expenses, expense("0.10", "2024-05-01", nil))
	}

	analysis := ComputeExpenseAnalysis(expenses, nil, PeriodMonthly, DateRange{})

	require.Len(t, analysis.BarData, 1)
	assert.True(t, analysis.BarData[0].Amount.Equal(dec("1")))
}

func TestRecentTransactions(t *testing.T) {
	food := entity.NewCategory("Food")
	dangling := uuid.New()

	salary := income("3000", "2024-03-05")
	bonus := income("500", "2024-03-01")
	groceries := expense("80", "2024-03-05", &food.ID)
	taxi := expense("15", "2024-03-07", &dangling)
	old := expense("1", "2023-01-01", nil)

	result := RecentTransactions(
		[]*entity.Income{bonus, salary},
		[]*entity.Expense{old, groceries, taxi},
		entity.NewCategoryIndex([]*entity.Category{food}),
		4,
	)

	require.Len(t, result, 4)
	assert.Equal(t, taxi.ID, result[0].ID)
	assert.Equal(t, KindExpense, result[0].Kind)
	assert.Equal(t, entity.UnknownCategoryName, result[0].Category)

	assert.Equal(t, salary.ID, result[1].ID, "incomes precede expenses on the same date")
	assert.Equal(t, string(entity.IncomeTypeFixedMonthly), result[1].Category)
	assert.Equal(t, "salary", result[1].Description)

	assert.Equal(t, groceries.ID, result[2].ID)
	assert.Equal(t, "Food", result[2].Category)

	assert.Equal(t, bonus.ID, result[3].ID)
}

func TestRecentTransactions_SameDateSameKindIsDeterministic(t *testing.T) {
	first := expense("1", "2024-03-05", nil)
	second := expense("2", "2024-03-05", nil)
	second.CreatedAt = first.CreatedAt.Add(time.Second)

	a := RecentTransactions(nil, []*entity.Expense{first, second}, nil, 10)
	b := RecentTransactions(nil, []*entity.Expense{second, first}, nil, 10)

	require.Len(t, a, 2)
	assert.Equal(t, second.ID, a[0].ID)
	assert.Equal(t, a, b)
}

func TestRecentTransactions_NonPositiveLimit(t *testing.T) {
	result := RecentTransactions([]*entity.Income{income("1", "2024-01-01")}, nil, nil, 0)

	assert.NotNil(t, result)
	assert.Empty(t, result)
}
