package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/diillson/aws-cost-dashboard-go/internal/application/view"
	"github.com/diillson/aws-cost-dashboard-go/internal/domain/entity"
	"github.com/diillson/aws-cost-dashboard-go/internal/domain/repository"
	"github.com/diillson/aws-cost-dashboard-go/internal/shared/types"
)

// DashboardUseCase handles the main dashboard functionality.
type DashboardUseCase struct {
	billingRepo repository.BillingRepository
	exportRepo  repository.ExportRepository
	console     types.ConsoleInterface
}

// NewDashboardUseCase creates a new dashboard use case.
func NewDashboardUseCase(
	billingRepo repository.BillingRepository,
	exportRepo repository.ExportRepository,
	console types.ConsoleInterface,
) *DashboardUseCase {
	return &DashboardUseCase{
		billingRepo: billingRepo,
		exportRepo:  exportRepo,
		console:     console,
	}
}

// LoadDashboard fetches the six dashboard resources concurrently and waits for
// all of them. The first failure cancels the remaining fetches and no partial
// dashboard is returned, nor one with a missing or unknown status or severity.
func LoadDashboard(ctx context.Context, repo repository.BillingRepository) (entity.Dashboard, error) {
	var data entity.Dashboard
	g, ctx := errgroup.WithContext(ctx)

	// Cada goroutine escreve apenas no seu próprio campo.
	g.Go(func() error {
		accounts, err := repo.GetAccounts(ctx)
		if err != nil {
			return fmt.Errorf("accounts: %w", err)
		}
		data.Accounts = accounts
		return nil
	})
	g.Go(func() error {
		overview, err := repo.GetCostOverview(ctx)
		if err != nil {
			return fmt.Errorf("cost overview: %w", err)
		}
		data.CostOverview = overview
		return nil
	})
	g.Go(func() error {
		services, err := repo.GetServiceBreakdown(ctx)
		if err != nil {
			return fmt.Errorf("service breakdown: %w", err)
		}
		data.ServiceBreakdown = services
		return nil
	})
	g.Go(func() error {
		trends, err := repo.GetCostTrends(ctx)
		if err != nil {
			return fmt.Errorf("cost trends: %w", err)
		}
		data.CostTrends = trends
		return nil
	})
	g.Go(func() error {
		alerts, err := repo.GetBudgetAlerts(ctx)
		if err != nil {
			return fmt.Errorf("budget alerts: %w", err)
		}
		data.BudgetAlerts = alerts
		return nil
	})
	g.Go(func() error {
		regions, err := repo.GetRegionalCosts(ctx)
		if err != nil {
			return fmt.Errorf("regional costs: %w", err)
		}
		data.RegionalCosts = regions
		return nil
	})

	if err := g.Wait(); err != nil {
		return entity.Dashboard{}, err
	}
	if err := data.Validate(); err != nil {
		return entity.Dashboard{}, err
	}
	return data, nil
}

// LoadDashboard loads a complete dashboard from the configured repository.
func (uc *DashboardUseCase) LoadDashboard(ctx context.Context) (entity.Dashboard, error) {
	return LoadDashboard(ctx, uc.billingRepo)
}

// RunDashboard executa a funcionalidade principal do dashboard: carrega tudo,
// renderiza uma única vez ou exibe somente a tela de erro.
func (uc *DashboardUseCase) RunDashboard(ctx context.Context, args *types.CLIArgs) error {
	status := uc.console.Status(view.LoadingMessage)
	data, err := uc.LoadDashboard(ctx)
	status.Stop()

	if err != nil {
		log.WithError(err).Error("Error fetching dashboard data")
		uc.console.DisplayError(view.ErrorMessage)
		return fmt.Errorf("%w: %v", types.ErrDashboardUnavailable, err)
	}

	uc.RenderPage(view.NewPage(data))

	if args != nil && args.ReportName != "" {
		uc.exportReports(data, args)
	}

	return nil
}

// RenderPage lays the formatted widgets out in dashboard order.
func (uc *DashboardUseCase) RenderPage(page view.Page) {
	uc.console.Header(view.Title, view.Subtitle)

	uc.console.Section(view.SectionOverview)
	uc.console.DisplayOverview(page.Overview)

	uc.console.Section(view.SectionAccounts)
	uc.console.DisplayAccountCards(page.Accounts)

	uc.console.Section(view.SectionAlerts)
	uc.console.Println(uc.createAlertsTable(page.Alerts).Render())

	uc.console.Section(view.SectionTrends)
	uc.console.DisplayTrendChart(page.Trends)

	uc.console.Section(view.SectionServices)
	uc.console.Println(uc.createServicesTable(page.Services).Render())

	uc.console.Section(view.SectionRegions)
	uc.console.DisplayRegionBars(page.Regions)
}

// createAlertsTable cria a tabela de alertas, uma linha por alerta.
func (uc *DashboardUseCase) createAlertsTable(alerts []view.AlertRow) types.TableInterface {
	table := uc.console.CreateTable()
	table.AddColumn("Severity")
	table.AddColumn("Alert")
	table.AddColumn("Raised")

	for _, a := range alerts {
		table.AddRow(severityLabel(a), a.Title, a.When)
	}
	return table
}

// createServicesTable cria a tabela de custo por serviço, uma linha por serviço.
func (uc *DashboardUseCase) createServicesTable(services []view.ServiceRow) types.TableInterface {
	table := uc.console.CreateTable()
	table.AddColumn("")
	table.AddColumn("Service")
	table.AddColumn("Cost")
	table.AddColumn("Share")
	table.AddColumn("Change")

	for _, s := range services {
		table.AddRow(s.Icon, s.Service, s.Cost, s.Share, changeLabel(s))
	}
	return table
}

func severityLabel(a view.AlertRow) string {
	label := strings.ToUpper(string(a.Severity))
	switch a.Variant {
	case view.VariantDestructive:
		return pterm.FgRed.Sprint("● " + label)
	case view.VariantWarning:
		return pterm.FgYellow.Sprint("● " + label)
	default:
		return pterm.FgLightBlue.Sprint("● " + label)
	}
}

func changeLabel(s view.ServiceRow) string {
	switch s.Direction {
	case view.Up:
		return pterm.FgLightRed.Sprint("▲ " + s.Change)
	case view.Down:
		return pterm.FgGreen.Sprint("▼ " + s.Change)
	default:
		return pterm.FgGray.Sprint(s.Change)
	}
}

// exportReports exporta o snapshot carregado nos formatos solicitados.
func (uc *DashboardUseCase) exportReports(data entity.Dashboard, args *types.CLIArgs) {
	for _, reportType := range args.ReportType {
		switch strings.ToLower(strings.TrimSpace(reportType)) {
		case "csv":
			paths, err := uc.exportRepo.ExportToCSV(data, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export dashboard to CSV: %s", err)
				continue
			}
			for _, p := range paths {
				uc.console.LogSuccess("Successfully exported dashboard to CSV: %s", p)
			}
		case "json":
			jsonPath, err := uc.exportRepo.ExportToJSON(data, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export dashboard to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported dashboard to JSON: %s", jsonPath)
			}
		case "pdf":
			pdfPath, err := uc.exportRepo.ExportToPDF(data, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export dashboard to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported dashboard to PDF: %s", pdfPath)
			}
		default:
			uc.console.LogWarning("Unsupported report type '%s' (use csv, json or pdf)", reportType)
		}
	}
}
