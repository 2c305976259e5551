package repository

import (
	"github.com/diillson/kafka-cost-report-go/internal/domain/entity"
)

// ExportRepository defines the driven port for writing report files.
type ExportRepository interface {
	ExportToCSV(report *entity.AggregateReport, filename string, outputDir string) (string, error)
	ExportToJSON(report *entity.AggregateReport, filename string, outputDir string) (string, error)
	ExportToPDF(report *entity.AggregateReport, filename string, outputDir string, formatAmount func(float64) string) (string, error)
}
