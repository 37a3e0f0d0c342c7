// Package telemetry provides a single structured logger for the engine
// façade. It wraps go.uber.org/zap rather than the standard library's log
// package, matching the ambient logging stack used across the retrieval
// pack's service-shaped repos. Nothing on the hot move-generation path
// calls into this package — only the façade's new-game, move, and
// game-over events do (SPEC_FULL.md §2, A1).
package telemetry

import "go.uber.org/zap"

// Logger wraps a *zap.Logger scoped to the engine façade.
type Logger struct {
	z *zap.Logger
}

// New builds a production-configured logger. Errors constructing the
// underlying zap logger are exceedingly rare (broken encoder config) and
// are not something a caller can meaningfully recover from, so New falls
// back to zap's no-op logger rather than returning an error the embedding
// service would have no good way to handle.
func New() *Logger {
	z, err := zap.NewProduction()
	if err != nil {
		z = zap.NewNop()
	}
	return &Logger{z: z}
}

// NewNop returns a logger that discards everything, for tests.
func NewNop() *Logger {
	return &Logger{z: zap.NewNop()}
}

func (l *Logger) GameCreated(positionString string) {
	l.z.Info("game created", zap.String("position", positionString))
}

func (l *Logger) MoveExecuted(from, to string, result string) {
	l.z.Info("move executed",
		zap.String("from", from),
		zap.String("to", to),
		zap.String("result", result),
	)
}

func (l *Logger) MoveRejected(from, to string, reason error) {
	l.z.Warn("move rejected",
		zap.String("from", from),
		zap.String("to", to),
		zap.Error(reason),
	)
}

func (l *Logger) GameOver(result string, reason string) {
	l.z.Info("game over", zap.String("result", result), zap.String("reason", reason))
}

// Sync flushes any buffered log entries. Callers should defer this once at
// process shutdown.
func (l *Logger) Sync() error {
	return l.z.Sync()
}
