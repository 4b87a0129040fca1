package app

import (
	"context"

	"go.trai.ch/screener/internal/core/domain"
	"go.trai.ch/zerr"
)

// Export downloads the candidates of a job and saves the document in the
// export directory. It returns the written path.
func (a *App) Export(ctx context.Context, jobID int64, opts domain.ExportOptions) (string, error) {
	file, err := a.api.Export(ctx, jobID, opts)
	if err != nil {
		return "", err
	}

	path, err := a.exports.Save(file)
	if err != nil {
		return "", zerr.With(err, "job_id", jobID)
	}
	a.logger.Info("export saved", "path", path, "bytes", len(file.Data))
	return path, nil
}
