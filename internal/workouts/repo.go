package workouts

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo is the ownership scoped data access layer. Every method takes the
// caller's user id and re-checks ownership of what it touches.
type Repo struct {
	db      *pgxpool.Pool
	catalog *ExerciseCatalogCache
	now     func() time.Time
}

func NewRepo(db *pgxpool.Pool, catalog *ExerciseCatalogCache) *Repo {
	return &Repo{
		db:      db,
		catalog: catalog,
		now:     time.Now,
	}
}

func (r *Repo) withTx(ctx context.Context, fn func(tx pgx.Tx) error) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
			return
		}
		if commitErr := tx.Commit(ctx); commitErr != nil {
			err = fmt.Errorf("commit transaction: %w", commitErr)
		}
	}()

	return fn(tx)
}
