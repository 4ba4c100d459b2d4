package notify

import (
	"context"
	"log/slog"
)

// LogNotifier implements port.Notifier by writing notifications to the
// structured log. It stands in until a delivery channel is wired.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With(slog.String("component", "notifier"))}
}

func (n *LogNotifier) NotifyTeam(ctx context.Context, subject string, data map[string]any) error {
	attrs := make([]any, 0, len(data)+1)
	attrs = append(attrs, slog.String("subject", subject))
	for k, v := range data {
		attrs = append(attrs, slog.Any(k, v))
	}
	n.logger.InfoContext(ctx, "team notification", attrs...)
	return nil
}

func (n *LogNotifier) NotifyOrganizer(ctx context.Context, organizerID int64, subject, message string) error {
	n.logger.InfoContext(ctx, "organizer notification",
		slog.Int64("organizer_id", organizerID),
		slog.String("subject", subject),
		slog.String("message", message))
	return nil
}
