package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/pterm/pterm"

	"github.com/diillson/kafka-cost-report-go/internal/domain/entity"
	"github.com/diillson/kafka-cost-report-go/internal/domain/repository"
	"github.com/diillson/kafka-cost-report-go/internal/shared/types"
	"github.com/diillson/kafka-cost-report-go/pkg/currency"
)

// maxDuplicatesShown limita quantos grupos duplicados são detalhados no terminal.
const maxDuplicatesShown = 5

// ReportUseCase handles the cost report pipeline: discover, extract,
// aggregate, render and export.
type ReportUseCase struct {
	fileRepo   repository.ExportFileRepository
	exportRepo repository.ExportRepository
	configRepo repository.ConfigRepository
	console    types.ConsoleInterface
}

// NewReportUseCase creates a new report use case.
func NewReportUseCase(
	fileRepo repository.ExportFileRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *ReportUseCase {
	return &ReportUseCase{
		fileRepo:   fileRepo,
		exportRepo: exportRepo,
		configRepo: configRepo,
		console:    console,
	}
}

// RunReport executa a funcionalidade principal do relatório de custos.
func (uc *ReportUseCase) RunReport(ctx context.Context, args *types.CLIArgs) error {
	// Mescla o arquivo de configuração, se especificado
	if args.ConfigFile != "" {
		cfg, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return err
		}
		mergeConfig(args, cfg)
		uc.console.LogInfo("Loaded configuration from %s", args.ConfigFile)
	}

	if args.Directory == "" || args.Pattern == "" {
		return fmt.Errorf("missing arguments: a directory path and a file pattern are required")
	}
	if args.Currency == "" {
		args.Currency = "CHF"
	}

	// Etapa 1: Descoberta dos arquivos
	status := uc.console.Status(fmt.Sprintf("Searching for files matching '%s' in '%s'...", args.Pattern, args.Directory))

	files, err := uc.fileRepo.DiscoverFiles(args.Directory, args.Pattern)
	status.Stop()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: pattern '%s' in %s", types.ErrNoFilesFound, args.Pattern, args.Directory)
	}

	uc.console.Printf("\nFound %d files to process:\n", len(files))
	for _, f := range files {
		uc.console.Printf("- %s\n", f)
	}

	// Etapa 2: Extração das linhas de custo, arquivo por arquivo.
	// Falhas por arquivo viram diagnóstico + lista vazia; a execução continua.
	allRows, fileResults := uc.extractAllFiles(args.Directory, files)

	uc.console.Printf("\nTotal cost items processed across all files: %d\n", len(allRows))
	if len(allRows) == 0 {
		return types.ErrNoItemsFound
	}

	// Etapa 3: Agregação
	report := Aggregate(allRows)
	report.Directory = args.Directory
	report.Pattern = args.Pattern
	report.Files = fileResults
	report.Currency = args.Currency

	// Etapa 4: Formatação e exibição
	formatter := currency.NewFormatter(args.Locales, uc.console.LogWarning)
	uc.renderFileTable(fileResults)
	uc.renderReport(report, formatter)

	// Etapa 5: Exportação dos relatórios
	uc.exportReports(report, args, formatter)

	return nil
}

// extractAllFiles processa cada arquivo descoberto e concatena as linhas.
func (uc *ReportUseCase) extractAllFiles(dir string, files []string) ([]entity.CostRecord, []entity.FileResult) {
	allRows := []entity.CostRecord{}
	fileResults := []entity.FileResult{}

	progress := uc.console.ProgressWithTotal(len(files))
	for _, f := range files {
		uc.console.Printf("\nProcessing: %s...\n", f)

		rows, warnings, err := uc.fileRepo.ExtractRecords(filepath.Join(dir, f))
		for _, w := range warnings {
			uc.console.LogWarning("%s", w)
		}

		result := entity.FileResult{File: f, ItemCount: len(rows)}
		if err != nil {
			uc.console.LogError("Error processing %s: %s", f, err)
			result.Error = err.Error()
		}

		allRows = append(allRows, rows...)
		fileResults = append(fileResults, result)

		uc.console.Printf("  -> Found %d cost items.\n", len(rows))
		progress.Increment()
	}
	progress.Stop()

	return allRows, fileResults
}

// renderFileTable exibe a tabela com o resultado por arquivo.
func (uc *ReportUseCase) renderFileTable(fileResults []entity.FileResult) {
	table := uc.console.CreateTable()
	table.AddColumn("File")
	table.AddColumn("Cost Items")
	table.AddColumn("Status")

	for _, result := range fileResults {
		status := pterm.FgGreen.Sprint("ok")
		if result.Error != "" {
			status = pterm.FgRed.Sprint(result.Error)
		}
		table.AddRow(
			pterm.FgMagenta.Sprintf("%s", result.File),
			fmt.Sprintf("%d", result.ItemCount),
			status,
		)
	}

	uc.console.Print(table.Render())
}

// renderReport imprime as seções do relatório no formato fixo do terminal.
func (uc *ReportUseCase) renderReport(report *entity.AggregateReport, formatter *currency.Formatter) {
	// Verificação de unicidade dos IDs
	uc.console.Printf("\n=== ID UNIQUENESS CHECK ===\n")
	if report.HasDuplicates() {
		uc.console.LogError("Found duplicate IDs!")
		uc.console.Printf("  - Total items: %d\n", report.TotalItems)
		uc.console.Printf("  - Total unique IDs: %d\n", report.UniqueIDs)
		uc.console.Printf("  - Number of duplicate IDs: %d\n", len(report.Duplicates))
		for i, dup := range report.Duplicates {
			if i >= maxDuplicatesShown {
				uc.console.Printf("  ... and %d more.\n", len(report.Duplicates)-maxDuplicatesShown)
				break
			}
			uc.console.Printf("  - ID '%s' appears %d times.\n", dup.ID, dup.Count)
		}
	} else {
		uc.console.LogSuccess("All IDs are unique.")
		uc.console.Printf("  - Total items processed: %d\n", report.TotalItems)
	}

	// Total geral
	uc.console.Printf("\n=== GRAND TOTAL COST ACROSS ALL FILES ===\n")
	uc.console.Printf("Total Cost: %s %s\n", report.Currency, formatter.Format(report.GrandTotal))

	// Breakdown por cost unit
	uc.console.Printf("\n=== BREAKDOWN BY COST UNIT ===\n")
	for _, unit := range report.UnitTotals {
		uc.console.Printf("\nCost Unit: %s (%d items)\n", unit.Unit, unit.ItemCount)
		uc.console.Printf("  Total Cost: %s %s\n", report.Currency, formatter.Format(unit.TotalCost))
	}

	// Distribuição visual por cost unit
	unitCosts := make([]types.UnitCost, len(report.UnitTotals))
	for i, unit := range report.UnitTotals {
		unitCosts[i] = types.UnitCost{Unit: unit.Unit, Cost: unit.TotalCost}
	}
	uc.console.DisplayUnitBars(unitCosts)
}

// exportReports grava o relatório nos formatos solicitados. Falhas de
// exportação são registradas e nunca derrubam a execução.
func (uc *ReportUseCase) exportReports(report *entity.AggregateReport, args *types.CLIArgs, formatter *currency.Formatter) {
	if args.ReportName == "" || len(args.ReportType) == 0 {
		return
	}

	for _, reportType := range args.ReportType {
		switch reportType {
		case "csv":
			csvPath, err := uc.exportRepo.ExportToCSV(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to CSV: %s", csvPath)
			}
		case "json":
			jsonPath, err := uc.exportRepo.ExportToJSON(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", jsonPath)
			}
		case "pdf":
			pdfPath, err := uc.exportRepo.ExportToPDF(report, args.ReportName, args.Dir, formatter.Format)
			if err != nil {
				uc.console.LogError("Failed to export to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to PDF: %s", pdfPath)
			}
		default:
			uc.console.LogWarning("Unknown report type '%s' (expected csv, json or pdf)", reportType)
		}
	}
}

// mergeConfig aplica valores do arquivo de configuração aos argumentos
// que não foram informados explicitamente na linha de comando.
func mergeConfig(args *types.CLIArgs, cfg *types.Config) {
	if args.Directory == "" {
		args.Directory = cfg.Directory
	}
	if args.Pattern == "" {
		args.Pattern = cfg.Pattern
	}
	if args.Currency == "" {
		args.Currency = cfg.Currency
	}
	if len(args.Locales) == 0 {
		args.Locales = cfg.Locales
	}
	if args.ReportName == "" {
		args.ReportName = cfg.ReportName
	}
	if len(args.ReportType) == 0 {
		args.ReportType = cfg.ReportType
	}
	if args.Dir == "" {
		args.Dir = cfg.Dir
	}
}
