package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/diillson/aws-cost-dashboard-go/internal/adapter/driven/fixtures"
	"github.com/diillson/aws-cost-dashboard-go/internal/application/view"
	"github.com/diillson/aws-cost-dashboard-go/internal/domain/entity"
	"github.com/diillson/aws-cost-dashboard-go/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo wraps the fixtures and can fail or block a single resource.
type fakeRepo struct {
	data    entity.Dashboard
	failOn  string
	blockOn string

	mu      sync.Mutex
	blocked error
}

var errBoom = errors.New("connection refused")

func newFakeRepo() *fakeRepo {
	return &fakeRepo{data: fixtures.Dashboard()}
}

func (r *fakeRepo) check(ctx context.Context, name string) error {
	if r.failOn == name {
		return errBoom
	}
	if r.blockOn == name {
		select {
		case <-ctx.Done():
			r.mu.Lock()
			r.blocked = ctx.Err()
			r.mu.Unlock()
			return ctx.Err()
		case <-time.After(5 * time.Second):
			return fmt.Errorf("%s was not cancelled", name)
		}
	}
	return nil
}

func (r *fakeRepo) GetAccounts(ctx context.Context) ([]entity.Account, error) {
	return r.data.Accounts, r.check(ctx, "accounts")
}

func (r *fakeRepo) GetAccount(ctx context.Context, id string) (entity.Account, error) {
	return entity.Account{}, types.ErrAccountNotFound
}

func (r *fakeRepo) GetCostOverview(ctx context.Context) (entity.CostOverview, error) {
	return r.data.CostOverview, r.check(ctx, "overview")
}

func (r *fakeRepo) GetServiceBreakdown(ctx context.Context) ([]entity.ServiceCost, error) {
	return r.data.ServiceBreakdown, r.check(ctx, "services")
}

func (r *fakeRepo) GetCostTrends(ctx context.Context) ([]entity.CostTrendPoint, error) {
	return r.data.CostTrends, r.check(ctx, "trends")
}

func (r *fakeRepo) GetBudgetAlerts(ctx context.Context) ([]entity.BudgetAlert, error) {
	return r.data.BudgetAlerts, r.check(ctx, "alerts")
}

func (r *fakeRepo) GetRegionalCosts(ctx context.Context) ([]entity.RegionalCost, error) {
	return r.data.RegionalCosts, r.check(ctx, "regions")
}

type fakeTable struct {
	columns []string
	rows    [][]interface{}
}

func (t *fakeTable) AddColumn(name string, options ...interface{}) { t.columns = append(t.columns, name) }
func (t *fakeTable) AddRow(cells ...interface{})                   { t.rows = append(t.rows, cells) }
func (t *fakeTable) Render() string                                { return "" }

type fakeStatus struct{ stopped bool }

func (s *fakeStatus) Update(string) {}
func (s *fakeStatus) Stop()         { s.stopped = true }

// fakeConsole records what the use case asked it to render.
type fakeConsole struct {
	status   *fakeStatus
	tables   []*fakeTable
	sections []string
	overview int
	accounts []view.AccountCard
	trend    *view.TrendChart
	regions  []view.RegionBar
	errors   []string
	success  []string
	failures []string
	warnings []string
}

func (c *fakeConsole) Print(a ...interface{})                 {}
func (c *fakeConsole) Printf(format string, a ...interface{}) {}
func (c *fakeConsole) Println(a ...interface{})               {}
func (c *fakeConsole) LogInfo(format string, a ...interface{}) {}
func (c *fakeConsole) LogWarning(format string, a ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogError(format string, a ...interface{}) {
	c.failures = append(c.failures, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogSuccess(format string, a ...interface{}) {
	c.success = append(c.success, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) Status(message string) types.StatusHandle {
	c.status = &fakeStatus{}
	return c.status
}
func (c *fakeConsole) CreateTable() types.TableInterface {
	t := &fakeTable{}
	c.tables = append(c.tables, t)
	return t
}
func (c *fakeConsole) Header(title, subtitle string)        {}
func (c *fakeConsole) Section(title string)                 { c.sections = append(c.sections, title) }
func (c *fakeConsole) DisplayOverview(o view.Overview)      { c.overview++ }
func (c *fakeConsole) DisplayAccountCards(cards []view.AccountCard) { c.accounts = cards }
func (c *fakeConsole) DisplayTrendChart(chart view.TrendChart)    { c.trend = &chart }
func (c *fakeConsole) DisplayRegionBars(bars []view.RegionBar)     { c.regions = bars }
func (c *fakeConsole) DisplayError(message string)                 { c.errors = append(c.errors, message) }

type fakeExporter struct {
	calls []string
	fail  bool
}

func (e *fakeExporter) ExportToCSV(data entity.Dashboard, filename, dir string) ([]string, error) {
	e.calls = append(e.calls, "csv")
	if e.fail {
		return nil, errBoom
	}
	return []string{dir + "/" + filename + "_accounts.csv", dir + "/" + filename + "_services.csv"}, nil
}

func (e *fakeExporter) ExportToJSON(data entity.Dashboard, filename, dir string) (string, error) {
	e.calls = append(e.calls, "json")
	return dir + "/" + filename + ".json", nil
}

func (e *fakeExporter) ExportToPDF(data entity.Dashboard, filename, dir string) (string, error) {
	e.calls = append(e.calls, "pdf")
	return dir + "/" + filename + ".pdf", nil
}

func TestLoadDashboardSuccess(t *testing.T) {
	repo := newFakeRepo()

	data, err := LoadDashboard(context.Background(), repo)
	require.NoError(t, err)

	assert.Equal(t, fixtures.Dashboard(), data)
}

func TestLoadDashboardAnyFailureFailsWhole(t *testing.T) {
	for _, name := range []string{"accounts", "overview", "services", "trends", "alerts", "regions"} {
		t.Run(name, func(t *testing.T) {
			repo := newFakeRepo()
			repo.failOn = name

			data, err := LoadDashboard(context.Background(), repo)
			require.Error(t, err)
			assert.ErrorIs(t, err, errBoom)
			assert.Equal(t, entity.Dashboard{}, data, "no partial data")
		})
	}
}

func TestLoadDashboardCancelsPendingFetches(t *testing.T) {
	repo := newFakeRepo()
	repo.failOn = "accounts"
	repo.blockOn = "regions"

	_, err := LoadDashboard(context.Background(), repo)
	assert.ErrorIs(t, err, errBoom)

	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.ErrorIs(t, repo.blocked, context.Canceled)
}

func TestRunDashboardRendersEveryWidget(t *testing.T) {
	console := &fakeConsole{}
	uc := NewDashboardUseCase(newFakeRepo(), &fakeExporter{}, console)

	err := uc.RunDashboard(context.Background(), &types.CLIArgs{})
	require.NoError(t, err)

	assert.True(t, console.status.stopped)
	assert.Empty(t, console.errors)
	assert.Equal(t, 1, console.overview)
	assert.Len(t, console.accounts, 5, "one card per account")
	assert.Len(t, console.regions, 6, "one bar per region")
	require.NotNil(t, console.trend)
	assert.Len(t, console.trend.Labels, 7)

	require.Len(t, console.tables, 2)
	assert.Len(t, console.tables[0].rows, 4, "one row per alert")
	assert.Len(t, console.tables[1].rows, 13, "one row per service")

	assert.Equal(t, []string{
		view.SectionOverview,
		view.SectionAccounts,
		view.SectionAlerts,
		view.SectionTrends,
		view.SectionServices,
		view.SectionRegions,
	}, console.sections)
}

func TestRunDashboardShowsOnlyErrorView(t *testing.T) {
	repo := newFakeRepo()
	repo.failOn = "trends"
	console := &fakeConsole{}
	uc := NewDashboardUseCase(repo, &fakeExporter{}, console)

	err := uc.RunDashboard(context.Background(), &types.CLIArgs{ReportName: "report", ReportType: []string{"json"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrDashboardUnavailable)

	assert.Equal(t, []string{view.ErrorMessage}, console.errors)
	assert.Zero(t, console.overview)
	assert.Nil(t, console.accounts)
	assert.Nil(t, console.regions)
	assert.Nil(t, console.trend)
	assert.Empty(t, console.tables)
	assert.Empty(t, console.sections)
	assert.Empty(t, console.success, "nothing is exported")
}

func TestRunDashboardExportsReports(t *testing.T) {
	console := &fakeConsole{}
	exporter := &fakeExporter{}
	uc := NewDashboardUseCase(newFakeRepo(), exporter, console)

	err := uc.RunDashboard(context.Background(), &types.CLIArgs{
		ReportName: "billing",
		ReportType: []string{"csv", "JSON", "pdf", "xml"},
		Dir:        "/tmp/out",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"csv", "json", "pdf"}, exporter.calls)
	assert.Len(t, console.success, 4)
	require.Len(t, console.warnings, 1)
	assert.Contains(t, console.warnings[0], "xml")
}

func TestRunDashboardExportFailureIsReported(t *testing.T) {
	console := &fakeConsole{}
	uc := NewDashboardUseCase(newFakeRepo(), &fakeExporter{fail: true}, console)

	err := uc.RunDashboard(context.Background(), &types.CLIArgs{ReportName: "billing", ReportType: []string{"csv"}})
	require.NoError(t, err)

	require.Len(t, console.failures, 1)
	assert.Contains(t, console.failures[0], "CSV")
}

func TestLoadDashboardRejectsMissingEnumValues(t *testing.T) {
	repo := newFakeRepo()
	repo.data.Accounts[2].Status = ""

	data, err := LoadDashboard(context.Background(), repo)
	assert.ErrorIs(t, err, entity.ErrInvalidStatus)
	assert.Equal(t, entity.Dashboard{}, data)

	repo = newFakeRepo()
	repo.data.BudgetAlerts[1].Severity = ""

	_, err = LoadDashboard(context.Background(), repo)
	assert.ErrorIs(t, err, entity.ErrInvalidSeverity)
}
