package ports

import "context"

// TxRunner executes fn inside a single atomic unit of work. Every repository
// call made with the ctx passed to fn participates in the same transaction:
// all writes commit together or none do. Returning an error from fn aborts
// the unit.
type TxRunner interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
