package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/budget-tracker/backend/internal/application/usecase/dashboard"
	"github.com/budget-tracker/backend/internal/application/usecase/debt"
	"github.com/budget-tracker/backend/internal/infra/db"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/budget-tracker/backend/internal/integration/persistence"
)

func (a *app) migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := a.databaseConfig()
			slog.Info("Starting database migration", "driver", cfg.Driver)

			database, err := a.openStore()
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			defer func() { _ = database.Close() }()

			slog.Info("Database migrations completed successfully")
			return nil
		},
	}
}

func (a *app) summaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print month totals and the outstanding active debt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := dashboard.GetSummaryInput{}
			if raw, _ := cmd.Flags().GetString("month"); raw != "" {
				month, err := dashboard.ParseMonth(raw)
				if err != nil {
					return err
				}
				input.Month = &month
			}

			database, err := a.openStore()
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			dashboardCache, closeCache := a.dashboardCache()
			defer closeCache()

			uc := dashboard.NewGetSummaryUseCase(a.recordLoader(database), dashboardCache, utcNow)
			output, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			return a.printSummary(dto.ToSummaryResponse(output.Summary))
		},
	}
	cmd.Flags().String("month", "", "month to summarize as YYYY-MM (default: current month)")
	return cmd
}

func (a *app) analysisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analysis",
		Short: "Print the expense trend and category breakdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, _ := cmd.Flags().GetString("period")
			period, err := dashboard.ParsePeriod(raw)
			if err != nil {
				return err
			}

			database, err := a.openStore()
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			dashboardCache, closeCache := a.dashboardCache()
			defer closeCache()

			uc := dashboard.NewGetExpenseAnalysisUseCase(a.recordLoader(database), dashboardCache)
			output, err := uc.Execute(cmd.Context(), dashboard.GetExpenseAnalysisInput{Period: period})
			if err != nil {
				return err
			}

			return a.printAnalysis(dto.ToExpenseAnalysisResponse(output.Analysis))
		},
	}
	cmd.Flags().String("period", string(dashboard.DefaultPeriod), "bucket size (daily, weekly, monthly)")
	return cmd
}

func (a *app) debtsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "debts",
		Short: "List debts with their remaining balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			database, err := a.openStore()
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			debts, err := debt.NewListDebtsUseCase(persistence.NewDebtRepository(database.DB())).Execute(cmd.Context())
			if err != nil {
				return err
			}

			return a.printDebts(dto.ToDebtListResponse(debts))
		},
	}
}

func (a *app) payCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pay <debt-id> <amount>",
		Short: "Apply a payment to a debt",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			debtID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid debt id %q: %w", args[0], err)
			}
			amount, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}

			database, err := a.openStore()
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			output, err := debt.NewPayDebtUseCase(persistence.NewDebtRepository(database.DB())).Execute(cmd.Context(), debt.PayDebtInput{
				DebtID: debtID,
				Amount: amount,
			})
			if err != nil {
				return err
			}

			dashboardCache, closeCache := a.dashboardCache()
			defer closeCache()
			if err := dashboardCache.Invalidate(cmd.Context()); err != nil {
				slog.Warn("Failed to invalidate dashboard cache", "error", err)
			}

			return a.printDebts([]dto.DebtResponse{dto.ToDebtResponse(output.Debt)})
		},
	}
}

func (a *app) recordLoader(database *db.Database) *dashboard.RecordLoader {
	gdb := database.DB()
	return dashboard.NewRecordLoader(
		persistence.NewCategoryRepository(gdb),
		persistence.NewIncomeRepository(gdb),
		persistence.NewExpenseRepository(gdb),
		persistence.NewDebtRepository(gdb),
	)
}

func utcNow() time.Time {
	return time.Now().UTC()
}
