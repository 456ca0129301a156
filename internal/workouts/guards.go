package workouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// dbtx is satisfied by both *pgxpool.Pool and pgx.Tx.
type dbtx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func forUpdate(lock bool, clause string) string {
	if !lock {
		return ""
	}
	return " " + clause
}

func scanOwned(row pgx.Row, dest ...any) error {
	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFoundOrUnauthorized
		}
		return fmt.Errorf("ownership check [query]: %w", err)
	}
	return nil
}

// requireWorkoutOwnership checks that workoutID belongs to userID. With lock set,
// the workout row stays locked until the surrounding transaction ends.
func requireWorkoutOwnership(ctx context.Context, q dbtx, userID, workoutID string, lock bool) error {
	var id string
	return scanOwned(q.QueryRow(ctx, `
		SELECT w.id
		FROM workout w
		WHERE w.id = $1 AND w.user_id = $2`+forUpdate(lock, "FOR UPDATE"),
		workoutID, userID,
	), &id)
}

// requireWorkoutExerciseOwnership walks workout_exercise -> workout.
func requireWorkoutExerciseOwnership(ctx context.Context, q dbtx, userID, workoutExerciseID string, lock bool) error {
	var id string
	return scanOwned(q.QueryRow(ctx, `
		SELECT we.id
		FROM workout_exercise we
		JOIN workout w ON w.id = we.workout_id
		WHERE we.id = $1 AND w.user_id = $2`+forUpdate(lock, "FOR UPDATE OF we"),
		workoutExerciseID, userID,
	), &id)
}

// requireSetOwnership walks workout_set -> workout_exercise -> workout and
// returns the set's workout exercise id. With lock set, the parent workout
// exercise row is locked so numbering of its sets is serialized.
func requireSetOwnership(ctx context.Context, q dbtx, userID, setID string, lock bool) (workoutExerciseID string, err error) {
	err = scanOwned(q.QueryRow(ctx, `
		SELECT we.id
		FROM workout_set s
		JOIN workout_exercise we ON we.id = s.workout_exercise_id
		JOIN workout w ON w.id = we.workout_id
		WHERE s.id = $1 AND w.user_id = $2`+forUpdate(lock, "FOR UPDATE OF we"),
		setID, userID,
	), &workoutExerciseID)
	return workoutExerciseID, err
}

// requireExerciseVisible checks that the exercise is global or owned by userID.
func requireExerciseVisible(ctx context.Context, q dbtx, userID, exerciseID string) error {
	var id string
	return scanOwned(q.QueryRow(ctx, `
		SELECT e.id
		FROM exercise e
		WHERE e.id = $1 AND (e.user_id IS NULL OR e.user_id = $2)`,
		exerciseID, userID,
	), &id)
}
