package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Imported 4 objects (12ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks reports document activity at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnCommit(objects, undoDepth int) {
	h.logger.Debug("commit", "objects", objects, "undo", undoDepth)
}

func (h *logHooks) OnUndo(undoDepth, redoDepth int) {
	h.logger.Debug("undo", "undo", undoDepth, "redo", redoDepth)
}

func (h *logHooks) OnRedo(undoDepth, redoDepth int) {
	h.logger.Debug("redo", "undo", undoDepth, "redo", redoDepth)
}

func (h *logHooks) OnLoad(format string, objects int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("load failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("loaded", "format", format, "objects", objects, "took", d.Round(time.Microsecond))
}

func (h *logHooks) OnSave(format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("save failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("saved", "format", format, "bytes", size, "took", d.Round(time.Microsecond))
}

func (h *logHooks) OnImport(chosen, added int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("import failed", "chosen", chosen, "err", err)
		return
	}
	h.logger.Debug("imported", "chosen", chosen, "added", added, "took", d.Round(time.Microsecond))
}
