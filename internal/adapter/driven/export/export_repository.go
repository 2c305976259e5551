package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"github.com/diillson/kafka-cost-report-go/internal/domain/entity"
	"github.com/diillson/kafka-cost-report-go/internal/domain/repository"
	"github.com/jung-kurt/gofpdf"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// ExportToCSV grava o relatório agregado como CSV: uma linha por cost unit,
// seguida de uma linha TOTAL.
func (r *ExportRepositoryImpl) ExportToCSV(report *entity.AggregateReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{"Cost Unit", "Items", fmt.Sprintf("Total Cost (%s)", report.Currency)}
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, unit := range report.UnitTotals {
		record := []string{
			cleanRichTags(unit.Unit),
			strconv.Itoa(unit.ItemCount),
			fmt.Sprintf("%.2f", unit.TotalCost),
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	total := []string{"TOTAL", strconv.Itoa(report.TotalItems), fmt.Sprintf("%.2f", report.GrandTotal)}
	if err := writer.Write(total); err != nil {
		return "", fmt.Errorf("error writing CSV total: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// ExportToJSON grava o relatório agregado completo como JSON indentado.
func (r *ExportRepositoryImpl) ExportToJSON(report *entity.AggregateReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
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
	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// ExportToPDF grava o relatório agregado como PDF. formatAmount aplica a
// mesma formatação de moeda usada no terminal.
func (r *ExportRepositoryImpl) ExportToPDF(report *entity.AggregateReport, filename, outputDir string, formatAmount func(float64) string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	drawSectionTitle := func(title string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)
	}

	pdf.AddPage()

	// Cabeçalho
	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("  Kafka Cost Report"), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Directory: %s | Pattern: %s", report.Directory, report.Pattern)), "", 1, "L", true, 0, "")
	pdf.Ln(10)

	// Resumo
	drawSectionTitle("Summary")
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.MultiCell(190, 5, tr(fmt.Sprintf(
		"Files processed: %d\nTotal cost items: %d\nUnique IDs: %d of %d checked\nDuplicate IDs: %d",
		len(report.Files), report.TotalItems, report.UniqueIDs, report.CheckedIDs, len(report.Duplicates))), "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 12, tr(fmt.Sprintf("Total Cost: %s %s", report.Currency, formatAmount(report.GrandTotal))), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	// Duplicados, quando existirem
	if report.HasDuplicates() {
		drawSectionTitle("Duplicate IDs")
		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(192, 0, 0)
		dupText := ""
		for _, dup := range report.Duplicates {
			dupText += fmt.Sprintf("ID '%s' appears %d times\n", dup.ID, dup.Count)
		}
		pdf.MultiCell(190, 5, tr(dupText), "", "L", false)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.Ln(6)
	}

	// Breakdown por cost unit
	drawSectionTitle("Breakdown by Cost Unit")
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(80, 7, tr("Cost Unit"), "B", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, tr("Items"), "B", 0, "R", false, 0, "")
	pdf.CellFormat(80, 7, tr(fmt.Sprintf("Total Cost (%s)", report.Currency)), "B", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, unit := range report.UnitTotals {
		pdf.CellFormat(80, 6, tr(cleanRichTags(unit.Unit)), "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, tr(strconv.Itoa(unit.ItemCount)), "", 0, "R", false, 0, "")
		pdf.CellFormat(80, 6, tr(formatAmount(unit.TotalCost)), "", 1, "R", false, 0, "")
	}

	// Rodapé
	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	footerText := fmt.Sprintf("Generated by Kafka Cost Report (Go) | %s", time.Now().Format("2006-01-02"))
	pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func generateFilename(base, dir, ext string) (string, error) {
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
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

// Regex para limpar formatação pterm (rich tags) e sequências ANSI de cor/estilo.
var richTagRegex = regexp.MustCompile(`\[/?([a-zA-Z]+|#[0-9a-fA-F]{6})\]`)
var ansiRegex = regexp.MustCompile(`\x1B\[[0-9;]*[A-Za-z]`)

// cleanRichTags remove tags de formatação do pterm e sequências ANSI.
func cleanRichTags(text string) string {
	text = richTagRegex.ReplaceAllString(text, "")
	text = ansiRegex.ReplaceAllString(text, "")
	return text
}
