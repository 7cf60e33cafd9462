package notify

import (
	"sync"

	"go.uber.org/zap"
)

// Notifier is the engine's toast equivalent. Every mutating operation
// reports its outcome through one of these.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Logger adapts a zap logger into a Notifier. Used headless (server-side
// jobs, CLIs) where no UI is attached.
type Logger struct {
	Log *zap.Logger
}

func (l *Logger) Success(message string) {
	l.Log.Info("operation succeeded", zap.String("message", message))
}

func (l *Logger) Error(message string) {
	l.Log.Warn("operation failed", zap.String("message", message))
}

// Recorder captures notifications for assertions in tests.
type Recorder struct {
	mu        sync.Mutex
	Successes []string
	Errors    []string
}

func (r *Recorder) Success(message string) {
	r.mu.Lock()
	r.Successes = append(r.Successes, message)
	r.mu.Unlock()
}

func (r *Recorder) Error(message string) {
	r.mu.Lock()
	r.Errors = append(r.Errors, message)
	r.mu.Unlock()
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	r.Successes = nil
	r.Errors = nil
	r.mu.Unlock()
}
