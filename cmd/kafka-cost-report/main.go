package main

import (
	"fmt"
	"os"

	"github.com/diillson/kafka-cost-report-go/internal/adapter/driven/config"
	"github.com/diillson/kafka-cost-report-go/internal/adapter/driven/export"
	"github.com/diillson/kafka-cost-report-go/internal/adapter/driven/kafkaexport"
	"github.com/diillson/kafka-cost-report-go/internal/adapter/driving/cli"
	"github.com/diillson/kafka-cost-report-go/internal/application/usecase"
	"github.com/diillson/kafka-cost-report-go/pkg/console"
	"github.com/diillson/kafka-cost-report-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	fileRepo := kafkaexport.NewFileRepository()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	reportUseCase := usecase.NewReportUseCase(
		fileRepo,
		exportRepo,
		configRepo,
		consoleImpl,
	)

	// Define o caso de uso no aplicativo CLI
	app.SetReportUseCase(reportUseCase)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
