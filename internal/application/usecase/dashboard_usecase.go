package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/opwolken/facturatie-api/internal/application/dto"
	"github.com/opwolken/facturatie-api/internal/domain/entity"
	"github.com/opwolken/facturatie-api/internal/domain/finance"
	"github.com/opwolken/facturatie-api/internal/domain/repository"
)

// DashboardUseCase composes the yearly dashboard and the financial report
// from full owner snapshots. All arithmetic lives in the finance package;
// this layer only resolves the period and maps entities to DTOs.
type DashboardUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	expenseRepo  repository.ExpenseRepository
	settingsRepo repository.SettingsRepository
	taxFactor    float64
}

// NewDashboardUseCase builds the use case. A zero taxFactor falls back to
// finance.DefaultTaxFactor.
func NewDashboardUseCase(
	invoiceRepo repository.InvoiceRepository,
	expenseRepo repository.ExpenseRepository,
	settingsRepo repository.SettingsRepository,
	taxFactor float64,
) *DashboardUseCase {
	if taxFactor == 0 {
		taxFactor = finance.DefaultTaxFactor
	}
	return &DashboardUseCase{
		invoiceRepo:  invoiceRepo,
		expenseRepo:  expenseRepo,
		settingsRepo: settingsRepo,
		taxFactor:    taxFactor,
	}
}

// snapshot is one owner's full dataset plus their saved preferences.
type snapshot struct {
	invoices []entity.Invoice
	expenses []entity.Expense
	settings *entity.CompanySettings
}

// load fetches invoices, expenses and settings in parallel.
func (uc *DashboardUseCase) load(ctx context.Context, ownerID string) (snapshot, error) {
	type invoicesResult struct {
		invoices []entity.Invoice
		err      error
	}
	type expensesResult struct {
		expenses []entity.Expense
		err      error
	}
	type settingsResult struct {
		settings *entity.CompanySettings
		err      error
	}

	invCh := make(chan invoicesResult, 1)
	expCh := make(chan expensesResult, 1)
	setCh := make(chan settingsResult, 1)

	go func() {
		invoices, err := uc.invoiceRepo.ListByOwner(ctx, ownerID)
		invCh <- invoicesResult{invoices, err}
	}()
	go func() {
		expenses, err := uc.expenseRepo.ListByOwner(ctx, ownerID)
		expCh <- expensesResult{expenses, err}
	}()
	go func() {
		settings, err := uc.settingsRepo.Get(ctx, ownerID)
		setCh <- settingsResult{settings, err}
	}()

	inv := <-invCh
	exp := <-expCh
	set := <-setCh

	if inv.err != nil {
		return snapshot{}, fmt.Errorf("dashboard: facturen laden: %w", inv.err)
	}
	if exp.err != nil {
		return snapshot{}, fmt.Errorf("dashboard: uitgaven laden: %w", exp.err)
	}
	if set.err != nil {
		return snapshot{}, fmt.Errorf("dashboard: instellingen laden: %w", set.err)
	}
	return snapshot{invoices: inv.invoices, expenses: exp.expenses, settings: set.settings}, nil
}

// GetDashboard builds the overview for one year. Year resolution: explicit
// query param, then the saved dashboard preference, then the current year.
func (uc *DashboardUseCase) GetDashboard(ctx context.Context, ownerID string, jaarParam *int) (*dto.DashboardResponse, error) {
	snap, err := uc.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	jaar := resolveYear(jaarParam, snap.settings)
	invoices := finance.InvoicesInYear(snap.invoices, jaar)
	expenses := finance.ExpensesInYear(snap.expenses, jaar)
	summary := finance.Summarize(invoices, expenses)

	recenteFacturen := make([]dto.InvoiceResponse, 0, len(summary.RecenteFacturen))
	for i := range summary.RecenteFacturen {
		recenteFacturen = append(recenteFacturen, *toInvoiceResponse(&summary.RecenteFacturen[i]))
	}
	recenteUitgaven := make([]dto.ExpenseResponse, 0, len(summary.RecenteUitgaven))
	for i := range summary.RecenteUitgaven {
		recenteUitgaven = append(recenteUitgaven, *toExpenseResponse(&summary.RecenteUitgaven[i]))
	}

	return &dto.DashboardResponse{
		Jaar:             jaar,
		BeschikbareJaren: finance.AvailableYears(snap.invoices, snap.expenses),
		TotaalOmzet:      summary.TotaalOmzet,
		TotaalBetaald:    summary.TotaalBetaald,
		TotaalOpenstaand: summary.TotaalOpenstaand,
		TotaalUitgaven:   summary.TotaalUitgaven,
		Winst:            summary.Winst,
		AantalFacturen:   summary.AantalFacturen,
		AantalKlanten:    summary.AantalKlanten,
		Maandoverzicht:   summary.Maandoverzicht,
		Categorieen:      summary.Categorieen,
		StatusVerdeling:  summary.StatusVerdeling,
		RecenteFacturen:  recenteFacturen,
		RecenteUitgaven:  recenteUitgaven,
	}, nil
}

// GetFinancial builds the fiscal report: profit & loss and the income-tax
// estimate for the year, plus the VAT return for one quarter. The quarter
// resolves like the year: param, saved preference, then the current quarter.
func (uc *DashboardUseCase) GetFinancial(ctx context.Context, ownerID string, jaarParam, kwartaalParam *int) (*dto.FinancialResponse, error) {
	snap, err := uc.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	jaar := resolveYear(jaarParam, snap.settings)
	kwartaal := resolveQuarter(kwartaalParam, snap.settings)

	return &dto.FinancialResponse{
		Jaar:               jaar,
		Kwartaal:           kwartaal,
		WinstVerlies:       finance.ComputeProfitLoss(snap.invoices, snap.expenses, jaar),
		BTW:                finance.ComputeVATReturn(snap.invoices, snap.expenses, jaar, kwartaal),
		Inkomstenbelasting: finance.ComputeIncomeTax(snap.invoices, snap.expenses, jaar, uc.taxFactor),
	}, nil
}

func resolveYear(param *int, settings *entity.CompanySettings) int {
	if param != nil {
		return *param
	}
	if settings != nil && settings.DashboardJaar != nil {
		return *settings.DashboardJaar
	}
	return time.Now().UTC().Year()
}

func resolveQuarter(param *int, settings *entity.CompanySettings) int {
	if param != nil {
		return *param
	}
	if settings != nil && settings.DashboardKwartaal != nil {
		return *settings.DashboardKwartaal
	}
	return finance.QuarterOfMonth(int(time.Now().UTC().Month()))
}
