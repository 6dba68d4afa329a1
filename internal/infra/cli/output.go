package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/budget-tracker/backend/internal/integration/entrypoint/dto"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// table writes a header row followed by rows, tab aligned.
func (a *app) table(header []string, rows [][]string) error {
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	for i, h := range header {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, headerStyle.Render(h))
	}
	fmt.Fprintln(w)

	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(w, "\t")
			}
			fmt.Fprint(w, cell)
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

func amount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func (a *app) printSummary(s dto.SummaryResponse) error {
	if a.jsonOutput() {
		return a.printJSON(s)
	}
	return a.table(
		[]string{"Month", "Income", "Expense", "Net", "Active debt"},
		[][]string{{s.Month, amount(s.TotalIncome), amount(s.TotalExpense), amount(s.NetBalance), amount(s.TotalActiveDebt)}},
	)
}

func (a *app) printAnalysis(r dto.ExpenseAnalysisResponse) error {
	if a.jsonOutput() {
		return a.printJSON(r)
	}

	bars := make([][]string, len(r.BarData))
	for i, b := range r.BarData {
		bars[i] = []string{b.Date, b.Label, amount(b.Amount)}
	}
	if err := a.table([]string{"Start", "Bucket (" + r.Period + ")", "Amount"}, bars); err != nil {
		return err
	}
	fmt.Fprintln(a.out)

	slices := make([][]string, len(r.PieData))
	for i, p := range r.PieData {
		slices[i] = []string{p.Name, amount(p.Value)}
	}
	return a.table([]string{"Category", "Total"}, slices)
}

func (a *app) printDebts(debts []dto.DebtResponse) error {
	if a.jsonOutput() {
		return a.printJSON(debts)
	}

	rows := make([][]string, len(debts))
	for i, d := range debts {
		due := "-"
		if d.DueDate != nil {
			due = *d.DueDate
		}
		rows[i] = []string{
			d.ID,
			d.Name,
			amount(d.TotalAmount),
			amount(d.PaidAmount),
			amount(d.RemainingAmount),
			amount(d.PercentPaid) + "%",
			due,
			d.Status,
		}
	}
	return a.table([]string{"ID", "Name", "Total", "Paid", "Remaining", "Paid %", "Due", "Status"}, rows)
}
