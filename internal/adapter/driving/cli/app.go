package cli

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	log "github.com/sirupsen/logrus"

	"github.com/diillson/aws-cost-dashboard-go/internal/domain/repository"
	"github.com/diillson/aws-cost-dashboard-go/internal/shared/types"
	"github.com/diillson/aws-cost-dashboard-go/pkg/version"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd    *cobra.Command
	configRepo repository.ConfigRepository
	exportRepo repository.ExportRepository
	console    types.ConsoleInterface
	version    string

	// startServer é substituível nos testes.
	startServer func(cfg *types.Config) error
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(
	versionStr string,
	configRepo repository.ConfigRepository,
	exportRepo repository.ExportRepository,
	console types.ConsoleInterface,
) *CLIApp {
	app := &CLIApp{
		configRepo: configRepo,
		exportRepo: exportRepo,
		console:    console,
		version:    versionStr,
	}
	app.startServer = app.listenAndServe

	// Obtem a versão formatada
	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:           "aws-cost-dashboard",
		Short:         "AWS Cost Dashboard: billing API and terminal dashboard",
		Version:       formattedVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, _ := cmd.Flags().GetString("log-level")
			return setupLogging(level, cmd.ErrOrStderr())
		},
	}

	rootCmd.SetVersionTemplate(`{{printf "AWS Cost Dashboard version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("log-level", "l", "", "Log level: debug, info, warn, error (default from LOG_LEVEL or info)")

	rootCmd.AddCommand(app.newServeCmd())
	rootCmd.AddCommand(app.newDashboardCmd())
	rootCmd.AddCommand(app.newHealthCmd())
	rootCmd.AddCommand(app.newVersionCmd())

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// SetArgs overrides os.Args, for tests.
func (app *CLIApp) SetArgs(args []string) {
	app.rootCmd.SetArgs(args)
}

// SetOutput redirects cobra's own output, for tests.
func (app *CLIApp) SetOutput(w io.Writer) {
	app.rootCmd.SetOut(w)
	app.rootCmd.SetErr(w)
}

// loadConfig carrega padrão, arquivo e ambiente; as flags são aplicadas por cada comando.
func (app *CLIApp) loadConfig(cmd *cobra.Command) (*types.Config, error) {
	configFile, _ := cmd.Flags().GetString("config-file")

	cfg, err := app.configRepo.Load(configFile)
	if err != nil {
		return nil, err
	}

	if level, _ := cmd.Flags().GetString("log-level"); level == "" && cfg.LogLevel != "" {
		if err := setupLogging(cfg.LogLevel, cmd.ErrOrStderr()); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// setupLogging configura o logrus; um nível vazio usa LOG_LEVEL ou info.
func setupLogging(level string, out io.Writer) error {
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	if level == "" {
		level = "info"
	}

	parsed, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return err
	}

	log.SetOutput(out)
	log.SetLevel(parsed)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	return nil
}
