package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storefront-console/internal/models"
)

const (
	// RedactedValue masks customer identity values in logs
	RedactedValue = "***REDACTED***"
)

// ConsoleLogger provides structured logging for console actions
type ConsoleLogger struct {
	logger *slog.Logger
}

func NewConsoleLogger(logger *slog.Logger) ConsoleLoggerInterface {
	return &ConsoleLogger{
		logger: logger,
	}
}

// LogLookupStarted records which criteria fields were set, not their values
func (cl *ConsoleLogger) LogLookupStarted(ctx context.Context, criteria models.SearchCriteria, createIfMissing bool, token uint64) {
	cl.logger.InfoContext(ctx, "customer lookup started",
		slog.String("event_type", "customer_lookup_started"),
		slog.String("criteria_fields", criteriaFields(criteria)),
		slog.Bool("create_if_missing", createIfMissing),
		slog.Uint64("token", token),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (cl *ConsoleLogger) LogLookupCompleted(ctx context.Context, state models.LookupState, resultsCount int, durationMs int64) {
	cl.logger.InfoContext(ctx, "customer lookup completed",
		slog.String("event_type", "customer_lookup_completed"),
		slog.String("state", string(state)),
		slog.Int("results_count", resultsCount),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (cl *ConsoleLogger) LogLookupFailed(ctx context.Context, errorMsg string, durationMs int64) {
	cl.logger.WarnContext(ctx, "customer lookup failed",
		slog.String("event_type", "customer_lookup_failed"),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (cl *ConsoleLogger) LogFallbackCreate(ctx context.Context, email string, outcome string) {
	cl.logger.InfoContext(ctx, "fallback customer create",
		slog.String("event_type", "customer_fallback_create"),
		slog.String("email", maskEmail(email)),
		slog.String("outcome", outcome),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (cl *ConsoleLogger) LogStaleRenderDiscarded(ctx context.Context, region models.Region, token uint64) {
	cl.logger.DebugContext(ctx, "stale render discarded",
		slog.String("event_type", "stale_render_discarded"),
		slog.String("region", string(region)),
		slog.Uint64("token", token),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogTransportError is the diagnostic channel for failures the user only sees generically
func (cl *ConsoleLogger) LogTransportError(ctx context.Context, operation string, err error) {
	cl.logger.ErrorContext(ctx, "directory transport error",
		slog.String("event_type", "directory_transport_error"),
		slog.String("operation", operation),
		slog.String("error", err.Error()),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (cl *ConsoleLogger) LogActionCompleted(ctx context.Context, action string, outcome string, durationMs int64) {
	cl.logger.InfoContext(ctx, "console action completed",
		slog.String("event_type", "console_action_completed"),
		slog.String("action", action),
		slog.String("outcome", outcome),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (cl *ConsoleLogger) LogValidationFailure(ctx context.Context, operation string, errorMsg string) {
	cl.logger.WarnContext(ctx, "validation failure",
		slog.String("event_type", "validation_failure"),
		slog.String("operation", operation),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func criteriaFields(c models.SearchCriteria) string {
	fields := make([]string, 0, 3)
	if c.Name != "" {
		fields = append(fields, "name")
	}
	if c.Surname != "" {
		fields = append(fields, "surname")
	}
	if c.Email != "" {
		fields = append(fields, "email")
	}
	if len(fields) == 0 {
		return "none"
	}
	return strings.Join(fields, ",")
}

// maskEmail keeps only the domain
func maskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return RedactedValue
	}
	return RedactedValue + email[at:]
}
