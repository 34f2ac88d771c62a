package types

import "github.com/diillson/aws-cost-dashboard-go/internal/application/view"

// ConsoleInterface define a interface para saída no console.
type ConsoleInterface interface {
	Print(a ...interface{})
	Printf(format string, a ...interface{})
	Println(a ...interface{})

	LogInfo(format string, a ...interface{})
	LogWarning(format string, a ...interface{})
	LogError(format string, a ...interface{})
	LogSuccess(format string, a ...interface{})

	Status(message string) StatusHandle
	CreateTable() TableInterface

	Header(title, subtitle string)
	Section(title string)
	DisplayOverview(overview view.Overview)
	DisplayAccountCards(cards []view.AccountCard)
	DisplayTrendChart(chart view.TrendChart)
	DisplayRegionBars(bars []view.RegionBar)
	DisplayError(message string)
}

// StatusHandle é uma interface para atualizar uma mensagem de status.
type StatusHandle interface {
	Update(message string)
	Stop()
}

// TableInterface define a interface para criar e manipular tabelas.
type TableInterface interface {
	AddColumn(name string, options ...interface{})
	AddRow(cells ...interface{})
	Render() string
}
