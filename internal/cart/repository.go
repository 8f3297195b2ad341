package cart

import "context"

// Repository persists committed lines so a cart survives restarts.
// The in-memory store stays authoritative within a session.
type Repository interface {
	SaveLine(ctx context.Context, owner string, line *LineItem) error
	DeleteLine(ctx context.Context, owner string, lineID string) error
	ListByOwner(ctx context.Context, owner string) ([]LineItem, error)
}
