package httpapi

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/diillson/aws-cost-dashboard-go/internal/application/usecase"
	"github.com/diillson/aws-cost-dashboard-go/internal/application/view"
)

//go:embed templates/dashboard.html
var templatesFS embed.FS

var dashboardTemplate = template.Must(
	template.New("dashboard.html").
		Funcs(template.FuncMap{
			"num":   formatNum,
			"arrow": arrow,
			"trend": trendClass,
		}).
		ParseFS(templatesFS, "templates/dashboard.html"),
)

// Chart geometry, in SVG user units.
const (
	chartWidth  = 720.0
	chartHeight = 260.0
	chartLeft   = 56.0
	chartBottom = 28.0
	chartTop    = 12.0
	chartRight  = 16.0
)

type pageData struct {
	Title    string
	Subtitle string
	Error    string
	Sections map[string]string
	Page     view.Page
	Chart    trendSVG
}

type trendSVG struct {
	Width, Height float64
	Lines         []trendLine
	Ticks         []trendTick
	Labels        []trendLabel
}

type trendLine struct {
	Name   string
	Color  string
	Points string
	Last   string
}

type trendTick struct {
	Label string
	Y     float64
}

type trendLabel struct {
	Text string
	X    float64
}

// frontend serves the prebuilt bundle from STATIC_DIR when one is configured,
// otherwise the embedded dashboard page.
func (s *Server) frontend() http.HandlerFunc {
	if s.config.StaticDir != "" {
		return spaHandler(s.config.StaticDir)
	}
	return s.dashboardPage
}

// spaHandler serves files from dir and falls back to index.html for any path
// that is not a regular file.
func spaHandler(dir string) http.HandlerFunc {
	files := http.FileServer(http.Dir(dir))
	index := filepath.Join(dir, "index.html")

	return func(w http.ResponseWriter, r *http.Request) {
		name := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+r.URL.Path)))
		if info, err := os.Stat(name); err == nil && !info.IsDir() {
			files.ServeHTTP(w, r)
			return
		}
		http.ServeFile(w, r, index)
	}
}

// dashboardPage loads the six resources and renders the whole page once, or
// only the error view when any of them fails.
func (s *Server) dashboardPage(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Title:    view.Title,
		Subtitle: view.Subtitle,
		Sections: map[string]string{
			"Overview": view.SectionOverview,
			"Accounts": view.SectionAccounts,
			"Alerts":   view.SectionAlerts,
			"Trends":   view.SectionTrends,
			"Services": view.SectionServices,
			"Regions":  view.SectionRegions,
		},
	}
	status := http.StatusOK

	dashboard, err := usecase.LoadDashboard(r.Context(), s.repo)
	if err != nil {
		log.WithError(err).Error("Error fetching dashboard data")
		data.Error = view.ErrorMessage
		status = http.StatusInternalServerError
	} else {
		data.Page = view.NewPage(dashboard)
		data.Chart = newTrendSVG(data.Page.Trends)
	}

	var buf bytes.Buffer
	if err := dashboardTemplate.Execute(&buf, data); err != nil {
		log.WithError(err).Error("Failed to render dashboard page")
		http.Error(w, view.ErrorMessage, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func newTrendSVG(chart view.TrendChart) trendSVG {
	svg := trendSVG{Width: chartWidth, Height: chartHeight}
	if len(chart.Labels) == 0 || chart.Max == 0 {
		return svg
	}

	plotW := chartWidth - chartLeft - chartRight
	plotH := chartHeight - chartTop - chartBottom
	x := func(i int) float64 {
		if len(chart.Labels) == 1 {
			return chartLeft + plotW/2
		}
		return chartLeft + plotW*float64(i)/float64(len(chart.Labels)-1)
	}
	y := func(v float64) float64 {
		return chartTop + plotH - plotH*v/chart.Max
	}

	for i, label := range chart.Labels {
		svg.Labels = append(svg.Labels, trendLabel{Text: label, X: x(i)})
	}
	for i, tick := range chart.Ticks {
		v := chart.Max * float64(i) / float64(len(chart.Ticks)-1)
		svg.Ticks = append(svg.Ticks, trendTick{Label: tick, Y: y(v)})
	}
	for _, series := range chart.Series {
		points := make([]string, 0, len(series.Values))
		for i, v := range series.Values {
			points = append(points, formatNum(x(i))+","+formatNum(y(v)))
		}
		line := trendLine{Name: series.Name, Color: series.Color, Points: strings.Join(points, " ")}
		if n := len(series.Values); n > 0 {
			line.Last = view.Currency(series.Values[n-1])
		}
		svg.Lines = append(svg.Lines, line)
	}
	return svg
}

func formatNum(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

func arrow(d view.Direction) string {
	switch d {
	case view.Up:
		return "▲"
	case view.Down:
		return "▼"
	default:
		return "•"
	}
}

// trendClass colours cost increases red and decreases green.
func trendClass(d view.Direction) string {
	switch d {
	case view.Up:
		return "up"
	case view.Down:
		return "down"
	default:
		return "flat"
	}
}
