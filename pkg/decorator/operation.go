// Package decorator provides decorator patterns for cross-cutting concerns in the application.
// It wraps ledger operations with structured logging of their outcome and
// duration.
package decorator

import (
	"context"
	"log/slog"
	"time"

	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/domain"
)

// OperationDecorator defines the interface for operation decorators.
//
// Example usage:
//
//	type Service struct {
//	    op decorator.OperationDecorator
//	}
//
//	func (s *Service) Deposit(ctx context.Context, taxID string, amount money.Money) error {
//	    return s.op.Execute(ctx, "deposit", func() error {
//	        // Business logic only
//	        return client.ExecuteTransaction(acc, transaction.NewDeposit(amount))
//	    }, "tax_id", taxID)
//	}
type OperationDecorator interface {
	// Execute runs operation and logs its outcome under name. attrs are
	// key/value pairs added to every log line. The operation's error is
	// returned unchanged.
	Execute(ctx context.Context, name string, operation func() error, attrs ...any) error
}

// LoggingDecorator implements OperationDecorator on top of slog.
//
// Outcome levels:
//   - Info when the operation succeeds;
//   - Warn when it fails with a business-rule error (domain.IsBusinessError);
//   - Error for any other failure, and for recovered panics, which are re-raised.
type LoggingDecorator struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewLoggingDecorator creates a new LoggingDecorator. A nil logger falls back
// to slog.Default().
func NewLoggingDecorator(logger *slog.Logger) *LoggingDecorator {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingDecorator{logger: logger, now: time.Now}
}

// Execute implements OperationDecorator.
func (d *LoggingDecorator) Execute(
	ctx context.Context,
	name string,
	operation func() error,
	attrs ...any,
) (err error) {
	logger := d.logger.With("operation", name).With(attrs...)
	start := d.now()
	logger.DebugContext(ctx, "Operation started")

	defer func() {
		if r := recover(); r != nil {
			logger.ErrorContext(ctx, "Operation panic recovered", "panic", r)
			panic(r)
		}
	}()

	err = operation()
	elapsed := d.now().Sub(start)
	switch {
	case err == nil:
		logger.InfoContext(ctx, "Operation completed", "duration", elapsed)
	case domain.IsBusinessError(err):
		logger.WarnContext(ctx, "Operation rejected", "error", err, "duration", elapsed)
	default:
		logger.ErrorContext(ctx, "Operation failed", "error", err, "duration", elapsed)
	}
	return err
}
