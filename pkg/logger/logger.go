package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger wraps slog.Logger with additional functionality
type Logger struct {
	*slog.Logger
}

// New creates a new logger instance
func New() *Logger {
	level := getLogLevel(os.Getenv("LOG_LEVEL"))

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	// Text handler for development, JSON for production
	var handler slog.Handler
	if gin.Mode() == gin.DebugMode {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// getLogLevel converts string to slog.Level
func getLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRequestID adds request ID to logger context
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{
		Logger: l.Logger.With(slog.String("request_id", requestID)),
	}
}

// WithUserID adds user ID to logger context
func (l *Logger) WithUserID(userID string) *Logger {
	return &Logger{
		Logger: l.Logger.With(slog.String("user_id", userID)),
	}
}

// WithError adds error to logger context
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Logger: l.Logger.With(slog.String("error", err.Error())),
	}
}

// HTTP logging methods

// LogHTTPRequest logs an HTTP request
func (l *Logger) LogHTTPRequest(c *gin.Context, duration time.Duration) {
	l.Logger.InfoContext(c.Request.Context(),
		"HTTP Request",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("query", c.Request.URL.RawQuery),
		slog.Int("status", c.Writer.Status()),
		slog.Duration("duration", duration),
		slog.String("ip", c.ClientIP()),
		slog.Int("size", c.Writer.Size()),
	)
}

// Business logic logging methods

// LogSessionCreated logs when a visitor session is opened
func (l *Logger) LogSessionCreated(ctx context.Context, sessionID, userID string, isMember bool) {
	l.Logger.InfoContext(ctx,
		"Session Created",
		slog.String("session_id", sessionID),
		slog.String("user_id", userID),
		slog.Bool("is_member", isMember),
	)
}

// LogBookingCreated logs when a seat booking is confirmed
func (l *Logger) LogBookingCreated(ctx context.Context, bookingID, cafeID, userID, paymentMethod string) {
	l.Logger.InfoContext(ctx,
		"Booking Confirmed",
		slog.String("booking_id", bookingID),
		slog.String("cafe_id", cafeID),
		slog.String("user_id", userID),
		slog.String("payment_method", paymentMethod),
	)
}

// LogBookingRejected logs a rejected booking attempt
func (l *Logger) LogBookingRejected(ctx context.Context, cafeID, userID, reason string) {
	l.Logger.WarnContext(ctx,
		"Booking Rejected",
		slog.String("cafe_id", cafeID),
		slog.String("user_id", userID),
		slog.String("reason", reason),
	)
}

// LogBookingCancelled logs when a booking is cancelled
func (l *Logger) LogBookingCancelled(ctx context.Context, bookingID, userID string) {
	l.Logger.InfoContext(ctx,
		"Booking Cancelled",
		slog.String("booking_id", bookingID),
		slog.String("user_id", userID),
	)
}

// LogDonation logs a pay-it-forward donation
func (l *Logger) LogDonation(ctx context.Context, userID string, amount, poolTotal int) {
	l.Logger.InfoContext(ctx,
		"Credits Donated",
		slog.String("user_id", userID),
		slog.Int("amount", amount),
		slog.Int("pool_total", poolTotal),
	)
}

// LogCreditClaimed logs a pay-it-forward claim attempt
func (l *Logger) LogCreditClaimed(ctx context.Context, userID string, claimed bool, poolTotal int) {
	l.Logger.InfoContext(ctx,
		"Credit Claim",
		slog.String("user_id", userID),
		slog.Bool("claimed", claimed),
		slog.Int("pool_total", poolTotal),
	)
}

// Global logger instance (can be replaced with dependency injection)
var defaultLogger = New()

// GetDefault returns the default logger instance
func GetDefault() *Logger {
	return defaultLogger
}

// SetDefault sets the default logger instance
func SetDefault(logger *Logger) {
	defaultLogger = logger
}
