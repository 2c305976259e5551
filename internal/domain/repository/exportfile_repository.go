package repository

import (
	"github.com/diillson/kafka-cost-report-go/internal/domain/entity"
)

// ExportFileRepository defines the driven port for locating Kafka export
// files and extracting cost rows from them.
type ExportFileRepository interface {
	// DiscoverFiles returns the filenames in dir whose name contains pattern
	// (case-insensitive), sorted lexicographically. The scan is non-recursive.
	DiscoverFiles(dir string, pattern string) ([]string, error)

	// ExtractRecords decodes one export file into its cost rows. Warnings
	// (shape mismatch, empty data) are returned for the caller to log; a
	// non-nil error is always a *types.ExtractError and comes with an empty
	// row set.
	ExtractRecords(path string) ([]entity.CostRecord, []string, error)
}
