package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/diillson/aws-cost-dashboard-go/internal/application/view"
	"github.com/diillson/aws-cost-dashboard-go/internal/domain/entity"
	"github.com/diillson/aws-cost-dashboard-go/internal/domain/repository"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct {
	now func() time.Time
}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{now: time.Now}
}

// csvTable é um arquivo CSV do pacote exportado.
type csvTable struct {
	suffix  string
	headers []string
	rows    [][]string
}

// ExportToCSV gera um pacote de arquivos CSV, um para cada widget do dashboard.
func (r *ExportRepositoryImpl) ExportToCSV(data entity.Dashboard, filename, outputDir string) ([]string, error) {
	var generatedFiles []string

	for _, table := range csvTables(data) {
		path, err := r.writeCSV(table, filename+"_"+table.suffix, outputDir)
		if err != nil {
			return generatedFiles, err
		}
		generatedFiles = append(generatedFiles, path)
	}

	return generatedFiles, nil
}

func csvTables(data entity.Dashboard) []csvTable {
	money := func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }
	pct := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

	o := data.CostOverview
	overview := csvTable{
		suffix:  "overview",
		headers: []string{"Metric", "Value"},
		rows: [][]string{
			{"Total Monthly Spend", money(o.TotalMonthlySpend)},
			{"Total Budget", money(o.TotalBudget)},
			{"Percent Of Budget", pct(o.PercentOfBudget)},
			{"Previous Month Spend", money(o.PreviousMonthSpend)},
			{"Change Percent", pct(o.ChangePercent)},
			{"Forecasted Month End", money(o.ForecastedMonthEnd)},
			{"Savings Opportunities", money(o.SavingsOpportunities)},
		},
	}

	accounts := csvTable{
		suffix:  "accounts",
		headers: []string{"ID", "Name", "Account Number", "Monthly Budget", "Current Spend", "Usage %", "Status"},
	}
	for _, a := range view.AccountCards(data.Accounts) {
		src := findAccount(data.Accounts, a.ID)
		accounts.rows = append(accounts.rows, []string{
			a.ID, a.Name, a.AccountNumber,
			money(src.MonthlyBudget), money(src.CurrentSpend),
			strconv.FormatFloat(a.UsagePercent, 'f', 1, 64), string(a.Status),
		})
	}

	services := csvTable{
		suffix:  "services",
		headers: []string{"Service", "Cost", "Percentage", "Change"},
	}
	for _, s := range data.ServiceBreakdown {
		services.rows = append(services.rows, []string{s.Service, money(s.Cost), pct(s.Percentage), pct(s.Change)})
	}

	trends := csvTable{
		suffix:  "trends",
		headers: []string{"Date", "Total", "EC2", "S3", "RDS", "Lambda", "Others"},
	}
	for _, p := range data.CostTrends {
		trends.rows = append(trends.rows, []string{
			p.Date.String(), money(p.Total), money(p.EC2), money(p.S3),
			money(p.RDS), money(p.Lambda), money(p.Others),
		})
	}

	alerts := csvTable{
		suffix:  "alerts",
		headers: []string{"ID", "Account", "Severity", "Message", "Threshold", "Current", "Timestamp"},
	}
	for _, a := range data.BudgetAlerts {
		alerts.rows = append(alerts.rows, []string{
			a.ID, a.Account, string(a.Severity), a.Message,
			pct(a.Threshold), pct(a.Current), a.Timestamp.UTC().Format(time.RFC3339),
		})
	}

	regions := csvTable{
		suffix:  "regions",
		headers: []string{"Region", "Name", "Cost", "Percentage"},
	}
	for _, rc := range data.RegionalCosts {
		regions.rows = append(regions.rows, []string{rc.Region, rc.Name, money(rc.Cost), pct(rc.Percentage)})
	}

	return []csvTable{overview, accounts, services, trends, alerts, regions}
}

func findAccount(accounts []entity.Account, id string) entity.Account {
	for _, a := range accounts {
		if a.ID == id {
			return a
		}
	}
	return entity.Account{}
}

func (r *ExportRepositoryImpl) writeCSV(table csvTable, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(table.headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}
	if err := writer.WriteAll(table.rows); err != nil {
		return "", fmt.Errorf("error writing CSV rows: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// ExportToJSON grava o snapshot completo em um único arquivo JSON.
func (r *ExportRepositoryImpl) ExportToJSON(data entity.Dashboard, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// ExportToPDF gera um relatório em PDF com uma seção por widget.
func (r *ExportRepositoryImpl) ExportToPDF(data entity.Dashboard, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	page := view.NewPage(data)

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	generated := r.now().Format("2006-01-02")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, tr("Generated by AWS Cost Dashboard | "+generated), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	drawSection := func(title string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)
	}

	drawTable := func(widths []float64, headers []string, rows [][]string) {
		pdf.SetFont("Arial", "B", 9)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		for i, h := range headers {
			pdf.CellFormat(widths[i], 7, tr(h), "B", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 9)
		for _, row := range rows {
			for i, cell := range row {
				pdf.CellFormat(widths[i], 6, tr(cell), "", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(8)
	}

	pdf.AddPage()

	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("  "+view.Title), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr("  "+view.Subtitle), "", 1, "L", true, 0, "")
	pdf.Ln(10)

	o := page.Overview
	drawSection(view.SectionOverview)
	drawTable([]float64{60, 130}, []string{"Metric", "Value"}, [][]string{
		{"Total Monthly Spend", o.TotalSpend + "  (" + o.Change + " from last month)"},
		{"Budget Usage", o.BudgetPercent + " of " + o.Budget + ", " + o.BudgetRemaining + " remaining"},
		{"Forecasted Month End", o.Forecast},
		{"Savings Opportunities", o.Savings},
	})

	var rows [][]string
	for _, a := range page.Accounts {
		rows = append(rows, []string{a.Name, a.AccountNumber, a.Spend, a.Budget, a.Usage, string(a.Status)})
	}
	drawSection(view.SectionAccounts)
	drawTable([]float64{45, 35, 28, 28, 22, 32}, []string{"Account", "Number", "Spend", "Budget", "Usage", "Status"}, rows)

	rows = nil
	for _, a := range page.Alerts {
		rows = append(rows, []string{string(a.Severity), a.Title, a.When})
	}
	drawSection(view.SectionAlerts)
	drawTable([]float64{20, 130, 40}, []string{"Severity", "Alert", "Raised"}, rows)

	rows = nil
	for i, label := range page.Trends.Labels {
		rows = append(rows, []string{label, view.Currency(page.Trends.Series[0].Values[i]), page.Trends.Changes[i]})
	}
	drawSection(view.SectionTrends)
	drawTable([]float64{40, 50, 50}, []string{"Month", "Total", "MoM Change"}, rows)

	rows = nil
	for _, s := range page.Services {
		rows = append(rows, []string{s.Service, s.Cost, s.Share, s.Change})
	}
	drawSection(view.SectionServices)
	drawTable([]float64{70, 40, 40, 40}, []string{"Service", "Cost", "Share", "Change"}, rows)

	rows = nil
	for _, b := range page.Regions {
		rows = append(rows, []string{b.Name, b.Region, b.Cost, b.Share})
	}
	drawSection(view.SectionRegions)
	drawTable([]float64{60, 40, 40, 50}, []string{"Region", "Code", "Cost", "Share"}, rows)

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func (r *ExportRepositoryImpl) generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := r.now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
