package allocator

import (
	"context"
	"log/slog"
	"time"

	"reservation-service/internal/pkg/config"
	"reservation-service/internal/usecase/queries"
)

// Gateway is the best-effort side of the allocator client. Each call runs on a
// detached goroutine with its own bounded deadline, so a slow or dead
// allocator can neither block the inbound request nor fail it. Failures are
// routed to the log, not to the caller.
type Gateway struct {
	client  *Client
	logger  *slog.Logger
	timeout time.Duration
}

func NewGateway(client *Client, logger *slog.Logger, cfg config.AllocatorConfig) *Gateway {
	return &Gateway{
		client:  client,
		logger:  logger,
		timeout: cfg.Timeout,
	}
}

func (g *Gateway) RequestAllocation(id, customerName string) {
	g.dispatch("request allocation", "reservation_id", id, func(ctx context.Context) error {
		return g.client.Reserve(ctx, id, customerName)
	})
}

func (g *Gateway) ReleaseTable(tableNumber string) {
	g.dispatch("release table", "table_number", tableNumber, func(ctx context.Context) error {
		return g.client.Release(ctx, tableNumber)
	})
}

func (g *Gateway) SyncReview(rv queries.ReviewView) {
	g.dispatch("sync review", "review_id", rv.ID, func(ctx context.Context) error {
		return g.client.PushReview(ctx, rv)
	})
}

// dispatch detaches the call from the inbound request lifecycle. The context
// is fresh on purpose: the outbound call must survive the HTTP handler
// returning, bounded only by the configured timeout.
func (g *Gateway) dispatch(operation, targetKey, targetValue string, call func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), g.timeout)
		defer cancel()

		if err := call(ctx); err != nil {
			g.logger.Warn("best-effort allocator call failed",
				"operation", operation,
				targetKey, targetValue,
				"error", err,
			)
		}
	}()
}
