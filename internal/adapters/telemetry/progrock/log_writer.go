package progrock

import (
	"github.com/vito/progrock"
	"go.trai.ch/screener/internal/core/ports"
)

// LogWriter is a progrock.Writer that reports completed vertices to a logger
// at debug level.
type LogWriter struct {
	logger ports.Logger
}

var _ progrock.Writer = (*LogWriter)(nil)

// NewLogWriter creates a LogWriter.
func NewLogWriter(logger ports.Logger) *LogWriter {
	return &LogWriter{logger: logger}
}

// WriteStatus implements progrock.Writer.
func (w *LogWriter) WriteStatus(update *progrock.StatusUpdate) error {
	for _, v := range update.Vertexes {
		if v.Completed == nil {
			continue
		}
		args := []any{"cached", v.Cached}
		if v.Started != nil {
			args = append(args, "duration", v.Completed.AsTime().Sub(v.Started.AsTime()).String())
		}
		if v.Error != nil {
			args = append(args, "error", *v.Error)
		}
		w.logger.Debug(v.Name, args...)
	}
	return nil
}

// Close implements progrock.Writer.
func (w *LogWriter) Close() error {
	return nil
}
