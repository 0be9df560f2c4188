// Package notify holds the notification sinks a cart store can report to.
package notify

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/nikolayk812/rocketcart/internal/domain"
	"github.com/nikolayk812/rocketcart/internal/port"
)

// Log writes notifications to a structured logger.
type Log struct {
	logger *slog.Logger
}

func NewLog(logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.Default()
	}

	return &Log{logger: logger}
}

func (l *Log) Notify(ctx context.Context, n domain.Notification) {
	l.logger.ErrorContext(ctx, n.Message,
		"notification_id", n.ID,
		"kind", n.Kind)
}

// Recorder keeps every notification in memory. A UI can poll it with Drain.
type Recorder struct {
	mu            sync.Mutex
	notifications []domain.Notification
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Notify(_ context.Context, n domain.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notifications = append(r.notifications, n)
}

// All returns the recorded notifications oldest first.
func (r *Recorder) All() []domain.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.notifications)
}

// Drain returns the recorded notifications and forgets them.
func (r *Recorder) Drain() []domain.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	drained := r.notifications
	r.notifications = nil

	return drained
}

// Channel forwards notifications to a buffered channel and drops them when
// the buffer is full. The buffer holds at least one notification.
type Channel struct {
	ch     chan domain.Notification
	logger *slog.Logger
}

func NewChannel(size int, logger *slog.Logger) *Channel {
	if logger == nil {
		logger = slog.Default()
	}

	// unbuffered would drop everything unless a reader is already waiting
	size = max(size, 1)

	return &Channel{
		ch:     make(chan domain.Notification, size),
		logger: logger,
	}
}

func (c *Channel) Notify(ctx context.Context, n domain.Notification) {
	select {
	case c.ch <- n:
	default:
		c.logger.WarnContext(ctx, "notification dropped", "notification_id", n.ID)
	}
}

func (c *Channel) C() <-chan domain.Notification {
	return c.ch
}

// Multi fans a notification out to every sink in order.
type Multi []port.Notifier

func (m Multi) Notify(ctx context.Context, n domain.Notification) {
	for _, sink := range m {
		sink.Notify(ctx, n)
	}
}
