package domain

import "strconv"

// ExportFormat is the document format of a candidate export.
type ExportFormat string

// Export formats.
const (
	ExportCSV   ExportFormat = "csv"
	ExportExcel ExportFormat = "excel"
)

// Extension returns the file extension used for the format.
func (f ExportFormat) Extension() string {
	if f == ExportExcel {
		return "xlsx"
	}
	return "csv"
}

// ExportOptions narrows a candidate export.
type ExportOptions struct {
	Format   ExportFormat
	Category Category
	MinScore *int
}

// ExportFile is a downloaded export document.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// DefaultExportFilename names an export when the server sends no filename.
func DefaultExportFilename(jobID int64, format ExportFormat) string {
	return "candidates-job-" + strconv.FormatInt(jobID, 10) + "." + format.Extension()
}
