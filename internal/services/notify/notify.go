// Package notify displays user-facing notifications.
package notify

//go:generate mockgen -package=mocks -destination=mocks/mock_notifier.go github.com/KirkDiggler/hydroquest/internal/services/notify Notifier

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// Notification is a titled message shown to the player
type Notification struct {
	Title   string
	Message string
}

// Notifier displays notifications
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// LogNotifier writes notifications to the log
type LogNotifier struct {
	logger logrus.FieldLogger
}

// NewLogNotifier creates a notifier writing through logger, the standard logger when nil
func NewLogNotifier(logger logrus.FieldLogger) *LogNotifier {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogNotifier{logger: logger}
}

// Notify logs the notification at info level
func (n *LogNotifier) Notify(_ context.Context, notification Notification) error {
	n.logger.WithField("title", notification.Title).Info(notification.Message)
	return nil
}

// WriterNotifier prints notifications to a terminal
type WriterNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterNotifier creates a notifier printing to w
func NewWriterNotifier(w io.Writer) (*WriterNotifier, error) {
	if w == nil {
		return nil, errors.New("writer cannot be nil")
	}
	return &WriterNotifier{w: w}, nil
}

// Notify prints the notification as "[title] message"
func (n *WriterNotifier) Notify(_ context.Context, notification Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, err := fmt.Fprintf(n.w, "[%s] %s\n", notification.Title, notification.Message); err != nil {
		return fmt.Errorf("failed to write notification: %w", err)
	}
	return nil
}

// Multi fans a notification out to every notifier
type Multi []Notifier

// Notify delivers to every notifier and joins their errors
func (m Multi) Notify(ctx context.Context, notification Notification) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, notification); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
