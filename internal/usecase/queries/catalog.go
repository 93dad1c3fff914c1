package queries

import (
	"context"
	"encoding/json"

	"reservation-service/internal/pkg/errs"
)

// ErrAllocatorUnavailable marks read-through failures. Unlike the best-effort
// write side, the proxy has no local fallback data, so the failure is surfaced.
var ErrAllocatorUnavailable = errs.New("allocator unavailable")

// CatalogSource is the synchronous read side of the allocator client. Payloads
// pass through untouched; this service owns no menu or table data.
type CatalogSource interface {
	Menu(ctx context.Context) (json.RawMessage, error)
	Tables(ctx context.Context) (json.RawMessage, error)
}

type CatalogQueries interface {
	Menu(ctx context.Context) (json.RawMessage, error)
	Tables(ctx context.Context) (json.RawMessage, error)
}

type catalogQueriesImpl struct {
	source CatalogSource
}

func NewCatalogQueries(source CatalogSource) CatalogQueries {
	return &catalogQueriesImpl{source: source}
}

func (q *catalogQueriesImpl) Menu(ctx context.Context) (json.RawMessage, error) {
	raw, err := q.source.Menu(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrAllocatorUnavailable)
	}
	return raw, nil
}

func (q *catalogQueriesImpl) Tables(ctx context.Context) (json.RawMessage, error) {
	raw, err := q.source.Tables(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrAllocatorUnavailable)
	}
	return raw, nil
}
