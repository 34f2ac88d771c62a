package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	log "github.com/sirupsen/logrus"

	"github.com/diillson/aws-cost-dashboard-go/internal/adapter/driven/apiclient"
	"github.com/diillson/aws-cost-dashboard-go/internal/adapter/driven/fixtures"
	"github.com/diillson/aws-cost-dashboard-go/internal/adapter/driving/httpapi"
	"github.com/diillson/aws-cost-dashboard-go/internal/application/usecase"
	"github.com/diillson/aws-cost-dashboard-go/internal/shared/types"
	"github.com/diillson/aws-cost-dashboard-go/pkg/version"
)

func (app *CLIApp) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the billing data HTTP API",
		Long: `Start the AWS Cost Dashboard HTTP API.

The server exposes read-only JSON endpoints under /api and a liveness probe
at /health. With APP_ENV=production it also serves the dashboard frontend.

Environment variables:
  PORT          - HTTP port (default: 3001)
  APP_ENV       - "production" enables frontend serving
  STATIC_DIR    - Prebuilt frontend bundle (default: built-in dashboard page)
  CORS_ORIGINS  - Comma-separated CORS origins (default: *)
  LOG_LEVEL     - Logging level (debug/info/warn/error)`,
		RunE: app.runServe,
	}

	cmd.Flags().StringP("port", "p", "", "HTTP server port")
	cmd.Flags().StringP("env", "e", "", "Environment: development or production")
	cmd.Flags().String("static-dir", "", "Directory with a prebuilt frontend bundle")
	cmd.Flags().StringSlice("cors-origins", nil, "Allowed CORS origins (comma-separated)")
	return cmd
}

func (app *CLIApp) runServe(cmd *cobra.Command, args []string) error {
	cfg, err := app.loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	serveArgs := parseServeArgs(cmd)
	applyServeArgs(cfg, serveArgs)
	if err := cfg.ValidatePort(); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"port":        cfg.Port,
		"environment": cfg.Environment,
		"static_dir":  cfg.StaticDir,
	}).Info("Server configuration loaded")

	return app.startServer(cfg)
}

func parseServeArgs(cmd *cobra.Command) *types.ServeArgs {
	configFile, _ := cmd.Flags().GetString("config-file")
	logLevel, _ := cmd.Flags().GetString("log-level")
	port, _ := cmd.Flags().GetString("port")
	env, _ := cmd.Flags().GetString("env")
	staticDir, _ := cmd.Flags().GetString("static-dir")
	origins, _ := cmd.Flags().GetStringSlice("cors-origins")

	return &types.ServeArgs{
		ConfigFile:  configFile,
		Port:        port,
		Environment: env,
		StaticDir:   staticDir,
		CORSOrigins: origins,
		LogLevel:    logLevel,
	}
}

// applyServeArgs sobrepõe à configuração as flags informadas.
func applyServeArgs(cfg *types.Config, args *types.ServeArgs) {
	if args.Port != "" {
		cfg.Port = args.Port
	}
	if args.Environment != "" {
		cfg.Environment = args.Environment
	}
	if args.StaticDir != "" {
		cfg.StaticDir = args.StaticDir
	}
	if len(args.CORSOrigins) > 0 {
		cfg.CORSOrigins = args.CORSOrigins
	}
	if args.LogLevel != "" {
		cfg.LogLevel = args.LogLevel
	}
}

func (app *CLIApp) listenAndServe(cfg *types.Config) error {
	repo, err := fixtures.NewBillingRepository()
	if err != nil {
		return err
	}
	return httpapi.New(cfg, repo).Start(cfg.Port)
}

func (app *CLIApp) newDashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Render the cost dashboard in the terminal",
		Long: `Fetch every dashboard resource from a running API concurrently and render
the dashboard once. If any request fails only the error view is shown.

Environment variables:
  DASHBOARD_API_URL  - API base URL (default: http://localhost:3001)
  DASHBOARD_TIMEOUT  - Request timeout in seconds (default: 10)`,
		RunE: app.runDashboard,
	}

	cmd.Flags().StringP("api-url", "u", "", "Base URL of the dashboard API")
	cmd.Flags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	cmd.Flags().StringSliceP("report-type", "y", []string{"csv"}, "Specify report types: csv, json, pdf")
	cmd.Flags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	cmd.Flags().IntP("timeout", "t", 0, "Request timeout in seconds")
	return cmd
}

// parseDashboardArgs parses command-line arguments into a CLIArgs struct.
func parseDashboardArgs(cmd *cobra.Command) (*types.CLIArgs, error) {
	configFile, _ := cmd.Flags().GetString("config-file")
	apiURL, _ := cmd.Flags().GetString("api-url")
	reportName, _ := cmd.Flags().GetString("report-name")
	reportType, _ := cmd.Flags().GetStringSlice("report-type")
	dir, _ := cmd.Flags().GetString("dir")
	timeout, _ := cmd.Flags().GetInt("timeout")

	// Set default directory to current working directory if not specified
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = cwd
	} else {
		// Convert to absolute path
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	if timeout < 0 {
		return nil, fmt.Errorf("invalid timeout %d: must be positive", timeout)
	}

	return &types.CLIArgs{
		ConfigFile: configFile,
		APIURL:     apiURL,
		ReportName: reportName,
		ReportType: reportType,
		Dir:        dir,
		Timeout:    timeout,
	}, nil
}

// newClient monta o cliente da API: flag > ambiente > arquivo > padrão.
func newClient(cfg *types.Config, args *types.CLIArgs) (*apiclient.Client, error) {
	apiURL := cfg.APIURL
	if args.APIURL != "" {
		apiURL = args.APIURL
	}
	timeout := cfg.RequestTimeout
	if args.Timeout > 0 {
		timeout = args.Timeout
	}
	return apiclient.New(apiURL, time.Duration(timeout)*time.Second)
}

// runDashboard é o ponto de entrada do comando dashboard.
func (app *CLIApp) runDashboard(cmd *cobra.Command, args []string) error {
	// Exibe o banner de boas-vindas
	displayWelcomeBanner(cmd.OutOrStdout())

	// Verifica a versão mais recente disponível
	go version.CheckLatestVersion(app.version)

	cliArgs, err := parseDashboardArgs(cmd)
	if err != nil {
		return err
	}

	cfg, err := app.loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	client, err := newClient(cfg, cliArgs)
	if err != nil {
		return err
	}

	dashboardUseCase := usecase.NewDashboardUseCase(client, app.exportRepo, app.console)
	return dashboardUseCase.RunDashboard(cmd.Context(), cliArgs)
}

func (app *CLIApp) newHealthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check that the dashboard API is up",
		RunE:  app.runHealth,
	}
	cmd.Flags().StringP("api-url", "u", "", "Base URL of the dashboard API")
	return cmd
}

func (app *CLIApp) runHealth(cmd *cobra.Command, args []string) error {
	cfg, err := app.loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	apiURL, _ := cmd.Flags().GetString("api-url")
	client, err := newClient(cfg, &types.CLIArgs{APIURL: apiURL})
	if err != nil {
		return err
	}

	health, err := client.Health(cmd.Context())
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}

	app.console.LogSuccess("API %s (%s)", health.Status, health.Timestamp)
	return nil
}

func (app *CLIApp) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "AWS Cost Dashboard version: %s\n", version.FormatVersion())
		},
	}
}
