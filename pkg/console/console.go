package console

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/diillson/aws-cost-dashboard-go/internal/application/view"
	"github.com/diillson/aws-cost-dashboard-go/internal/shared/types"
	"github.com/pterm/pterm"
)

const barWidth = 40

// Console é uma implementação do ConsoleInterface.
type Console struct {
	out io.Writer
}

// NewConsole cria um novo Console que escreve no stdout.
func NewConsole() *Console {
	return &Console{out: os.Stdout}
}

// NewConsoleWithWriter cria um Console que escreve em w.
func NewConsoleWithWriter(w io.Writer) *Console {
	return &Console{out: w}
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Fprint(c.out, a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Fprintf(c.out, format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Fprintln(c.out, a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.WithWriter(c.out).Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.WithWriter(c.out).Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.WithWriter(c.out).Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.WithWriter(c.out).Printfln(format, a...)
}

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.WithWriter(c.out).WithRemoveWhenDone(true).Start(message)
	return &statusHandle{spinner: spinner}
}

// Cores predefinidas para uso consistente
var (
	BoldRed    = color.New(color.FgRed, color.Bold).SprintFunc()
	BrightBlue = color.New(color.FgBlue, color.Bold).SprintFunc()
)

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		h.spinner.Stop()
	}
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// Header exibe o título do dashboard.
func (c *Console) Header(title, subtitle string) {
	fmt.Fprintln(c.out, BoldRed(title))
	fmt.Fprintln(c.out, BrightBlue(subtitle))
}

// Section exibe o título de uma seção.
func (c *Console) Section(title string) {
	pterm.DefaultSection.WithWriter(c.out).Println(title)
}

// DisplayOverview exibe os quatro cartões de resumo lado a lado.
func (c *Console) DisplayOverview(o view.Overview) {
	arrow := "▼"
	changeColor := pterm.FgGreen
	if o.ChangeDirection == view.Up {
		arrow = "▲"
		changeColor = pterm.FgLightRed
	}

	spend := fmt.Sprintf("%s\n%s\n%s",
		pterm.Bold.Sprint(o.TotalSpend),
		changeColor.Sprintf("%s %s", arrow, o.Change),
		pterm.FgGray.Sprint("from last month"))

	usage := fmt.Sprintf("%s %s\n%s\n%s",
		pterm.Bold.Sprint(o.Budget),
		badge(o.BudgetVariant, o.BudgetPercent),
		pterm.FgGray.Sprintf("%s remaining", o.BudgetRemaining),
		progressBar(o.BudgetBar, variantColor(o.BudgetVariant), 20))

	forecast := fmt.Sprintf("%s\n%s",
		pterm.Bold.Sprint(o.Forecast),
		pterm.FgGray.Sprint("Based on current trends"))

	savings := fmt.Sprintf("%s %s\n%s",
		pterm.FgLightBlue.Sprint(pterm.Bold.Sprint(o.Savings)),
		badge(view.VariantInfo, "Available"),
		pterm.FgGray.Sprint("Potential monthly savings"))

	panels := pterm.Panels{{
		{Data: card("Total Monthly Spend", spend)},
		{Data: card("Budget Usage", usage)},
		{Data: card("Forecasted Month End", forecast)},
		{Data: card("Savings Opportunities", savings)},
	}}

	rendered, _ := pterm.DefaultPanel.WithPanels(panels).WithPadding(2).Srender()
	fmt.Fprintln(c.out, rendered)
}

// DisplayAccountCards exibe um cartão por conta, três por linha.
func (c *Console) DisplayAccountCards(cards []view.AccountCard) {
	if len(cards) == 0 {
		pterm.Warning.WithWriter(c.out).Println("No accounts found")
		return
	}

	var panels pterm.Panels
	var row []pterm.Panel
	for _, ac := range cards {
		body := fmt.Sprintf("%s\n%s / %s  %s\n%s\nSpent: %s   Remaining: %s",
			pterm.FgGray.Sprintf("Account: %s", ac.AccountNumber),
			ac.Spend, ac.Budget, pterm.Bold.Sprint(ac.Usage),
			progressBar(ac.BarPercent, variantColor(ac.Variant), 30),
			ac.Spend, ac.Remaining)

		title := fmt.Sprintf("%s %s", ac.Name, badge(ac.Variant, string(ac.Status)))
		row = append(row, pterm.Panel{Data: card(title, body)})
		if len(row) == 3 {
			panels = append(panels, row)
			row = nil
		}
	}
	if len(row) > 0 {
		panels = append(panels, row)
	}

	rendered, _ := pterm.DefaultPanel.WithPanels(panels).WithPadding(2).Srender()
	fmt.Fprintln(c.out, rendered)
}

// DisplayTrendChart exibe a tendência de custo em barras, mês a mês.
func (c *Console) DisplayTrendChart(chart view.TrendChart) {
	if len(chart.Labels) == 0 || chart.Max == 0 {
		pterm.Warning.WithWriter(c.out).Println("No trend data available")
		return
	}

	tableData := pterm.TableData{{"Month", "Total", "", "MoM Change"}}
	total := chart.Series[0]
	for i, label := range chart.Labels {
		value := total.Values[i]
		bar := hexColor(total.Color).Sprint(strings.Repeat("█", barLength(value/chart.Max*100, barWidth)))

		change := chart.Changes[i]
		switch {
		case strings.HasPrefix(change, "+") || strings.HasPrefix(change, ">+"):
			change = pterm.FgRed.Sprint(change)
		case strings.HasPrefix(change, "-") || strings.HasPrefix(change, ">-"):
			change = pterm.FgGreen.Sprint(change)
		case change != "":
			change = pterm.FgYellow.Sprint(change)
		}

		tableData = append(tableData, []string{label, view.Currency(value), bar, change})
	}

	table, _ := pterm.DefaultTable.WithHasHeader().WithData(tableData).Srender()

	// Legenda das séries e valor do último mês de cada uma
	legend := make([]string, 0, len(chart.Series))
	last := len(chart.Labels) - 1
	for _, s := range chart.Series {
		legend = append(legend, hexColor(s.Color).Sprintf("● %s %s", s.Name, view.CompactCurrency(s.Values[last])))
	}

	axis := pterm.FgGray.Sprintf("Scale: %s", strings.Join(chart.Ticks, " · "))
	panel := pterm.DefaultBox.
		WithTitle("AWS Cost Trend Analysis").
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).
		Sprint(table + "\n" + strings.Join(legend, "  ") + "\n" + axis)

	fmt.Fprintln(c.out, "\n"+panel)
}

// DisplayRegionBars exibe o gráfico de barras horizontal por região.
func (c *Console) DisplayRegionBars(bars []view.RegionBar) {
	if len(bars) == 0 {
		pterm.Warning.WithWriter(c.out).Println("No regional data available")
		return
	}

	tableData := pterm.TableData{{"Region", "", "Cost", "Share"}}
	for _, b := range bars {
		tableData = append(tableData, []string{
			fmt.Sprintf("%s\n%s", b.Name, pterm.FgGray.Sprint(b.Region)),
			hexColor(b.Color).Sprint(strings.Repeat("█", barLength(b.Width, barWidth))),
			b.Cost,
			b.Share,
		})
	}

	rendered, _ := pterm.DefaultTable.WithHasHeader().WithData(tableData).Srender()
	fmt.Fprintln(c.out, rendered)
}

// DisplayError exibe a tela de erro no lugar do dashboard.
func (c *Console) DisplayError(message string) {
	box := pterm.DefaultBox.
		WithBoxStyle(pterm.NewStyle(pterm.FgRed)).
		Sprint(pterm.FgLightRed.Sprintf("⚠  %s", message))
	fmt.Fprintln(c.out, box)
}

func card(title, body string) string {
	return pterm.DefaultBox.
		WithTitle(title).
		WithBoxStyle(pterm.NewStyle(pterm.FgDarkGray)).
		Sprint(body)
}

func badge(v view.Variant, text string) string {
	return variantColor(v).Sprintf("[%s]", text)
}

func variantColor(v view.Variant) pterm.Color {
	switch v {
	case view.VariantDestructive:
		return pterm.FgRed
	case view.VariantWarning:
		return pterm.FgYellow
	case view.VariantInfo:
		return pterm.FgLightBlue
	default:
		return pterm.FgGreen
	}
}

// barLength converts a percentage into a cell count within 0..width.
func barLength(percent float64, width int) int {
	filled := int(percent / 100 * float64(width))
	if filled > width {
		return width
	}
	if filled < 0 {
		return 0
	}
	return filled
}

func progressBar(percent float64, c pterm.Color, width int) string {
	filled := barLength(percent, width)
	return c.Sprint(strings.Repeat("█", filled)) + pterm.FgDarkGray.Sprint(strings.Repeat("░", width-filled))
}

// hexColor converts "#rrggbb" to a pterm RGB printer.
func hexColor(hex string) pterm.RGB {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return pterm.NewRGB(255, 255, 255)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return pterm.NewRGB(255, 255, 255)
	}
	return pterm.NewRGB(uint8(v>>16), uint8(v>>8), uint8(v))
}
