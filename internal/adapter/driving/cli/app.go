package cli

import (
	"context"
	"path/filepath"

	"github.com/diillson/kafka-cost-report-go/pkg/version"

	"github.com/diillson/kafka-cost-report-go/internal/application/usecase"
	"github.com/diillson/kafka-cost-report-go/internal/shared/types"
	"github.com/spf13/cobra"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd       *cobra.Command
	reportUseCase *usecase.ReportUseCase
	version       string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	// Obtem a versão formatada
	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "kafka-cost-report <directory_path> <file_pattern>",
		Short:   "Kafka Cost Report CLI",
		Long:    "Aggregates cost records from Kafka topic export files, checks ID uniqueness and prints totals per cost unit.",
		Version: formattedVersion, // Use a versão formatada
		Args:    cobra.MaximumNArgs(2),
		RunE:    app.runCommand,
	}

	// Personaliza a template para incluir mais informações de versão
	rootCmd.SetVersionTemplate(`{{printf "Kafka Cost Report version: %s\n" .Version}}`)

	// Adiciona flags de linha de comando
	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("currency", "u", "", "Currency label printed next to amounts (default: CHF)")
	rootCmd.PersistentFlags().StringSliceP("locales", "l", nil, "Locale fallback chain for amount formatting (default: de-CH,en-US)")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", nil, "Specify report types: csv, json, pdf")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs(positional []string) (*types.CLIArgs, error) {
	configFile, _ := app.rootCmd.Flags().GetString("config-file")
	currency, _ := app.rootCmd.Flags().GetString("currency")
	locales, _ := app.rootCmd.Flags().GetStringSlice("locales")
	reportName, _ := app.rootCmd.Flags().GetString("report-name")
	reportType, _ := app.rootCmd.Flags().GetStringSlice("report-type")
	dir, _ := app.rootCmd.Flags().GetString("dir")

	args := &types.CLIArgs{
		ConfigFile: configFile,
		Currency:   currency,
		Locales:    locales,
		ReportName: reportName,
		ReportType: reportType,
		Dir:        dir,
	}

	// Argumentos posicionais: diretório de busca e padrão do nome do arquivo.
	// Podem vir do arquivo de configuração quando omitidos.
	if len(positional) > 0 {
		absDir, err := filepath.Abs(positional[0])
		if err != nil {
			return nil, err
		}
		args.Directory = absDir
	}
	if len(positional) > 1 {
		args.Pattern = positional[1]
	}

	return args, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	// Exibe o banner de boas-vindas
	displayWelcomeBanner(app.version)

	// Verifica a versão mais recente disponível
	go version.CheckLatestVersion(app.version)

	// Analisa os argumentos da linha de comando
	cliArgs, err := app.parseArgs(args)
	if err != nil {
		return err
	}

	// Executa o relatório
	ctx := context.Background()
	return app.reportUseCase.RunReport(ctx, cliArgs)
}

// SetReportUseCase sets the report use case for the CLI app.
func (app *CLIApp) SetReportUseCase(useCase *usecase.ReportUseCase) {
	app.reportUseCase = useCase
}
