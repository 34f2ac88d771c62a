package repository

import (
	"github.com/diillson/aws-cost-dashboard-go/internal/domain/entity"
)

// ExportRepository writes a dashboard snapshot to report files.
type ExportRepository interface {
	// ExportToCSV writes one CSV file per widget and returns their paths.
	ExportToCSV(data entity.Dashboard, filename string, outputDir string) ([]string, error)
	ExportToJSON(data entity.Dashboard, filename string, outputDir string) (string, error)
	ExportToPDF(data entity.Dashboard, filename string, outputDir string) (string, error)
}
