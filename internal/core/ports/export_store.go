package ports

import "go.trai.ch/screener/internal/core/domain"

// ExportStore persists downloaded export documents.
//
//go:generate mockgen -source=export_store.go -destination=mocks/mock_export_store.go -package=mocks
type ExportStore interface {
	// Save writes the file and returns the path it was written to.
	Save(file *domain.ExportFile) (string, error)
}
