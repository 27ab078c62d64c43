package transaction

import "context"

// Transactor runs fn inside one unit of work. Repositories called with the
// ctx passed to fn join that unit of work.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
