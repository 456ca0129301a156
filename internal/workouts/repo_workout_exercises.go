package workouts

import (
	"context"
	"fmt"

	"github.com/2beens/workoutlog/internal/telemetry/tracing"
	"github.com/2beens/workoutlog/pkg"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

// ListWorkoutExercisesWithSets returns the exercises of an owned workout with
// their sets. A workout that is missing or owned by someone else yields an empty list.
func (r *Repo) ListWorkoutExercisesWithSets(ctx context.Context, userID, workoutID string) (_ []WorkoutExerciseWithSets, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listWorkoutExercisesWithSets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := requireUser(userID); err != nil {
		return nil, err
	}
	workoutID, err = validateID("workoutId", workoutID)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("workout.id", workoutID))

	rows, err := r.db.Query(ctx, `
		SELECT
			we.id, we.workout_id, we."order", e.id, e.name,
			s.id, s.set_number, s.reps, s.weight::text, s.weight_unit::text, s.created_at
		FROM workout_exercise we
		JOIN workout w ON w.id = we.workout_id
		JOIN exercise e ON e.id = we.exercise_id
		LEFT JOIN workout_set s ON s.workout_exercise_id = we.id
		WHERE we.workout_id = $1 AND w.user_id = $2
		ORDER BY we."order" ASC, we.created_at ASC, s.set_number ASC
	`, workoutID, userID)
	if err != nil {
		return nil, fmt.Errorf("list workout exercises [query]: %w", err)
	}
	defer rows.Close()

	var flat []exerciseSetRow
	for rows.Next() {
		var row exerciseSetRow
		if err := rows.Scan(
			&row.WorkoutExerciseID, &row.WorkoutID, &row.Order, &row.ExerciseID, &row.ExerciseName,
			&row.SetID, &row.SetNumber, &row.Reps, &row.Weight, &row.WeightUnit, &row.SetCreatedAt,
		); err != nil {
			return nil, fmt.Errorf("list workout exercises [scan]: %w", err)
		}
		if row.Weight != nil {
			canonical, err := CanonicalWeight(*row.Weight)
			if err == nil {
				row.Weight = &canonical
			}
		}
		flat = append(flat, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list workout exercises [rows]: %w", err)
	}

	return assembleExercisesWithSets(flat), nil
}

// AddExerciseToWorkout attaches a visible exercise to an owned workout at
// position "number of exercises already attached" and returns the new
// workout exercise id.
func (r *Repo) AddExerciseToWorkout(ctx context.Context, userID, workoutID, exerciseID string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.addExerciseToWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := requireUser(userID); err != nil {
		return "", err
	}
	workoutID, err = validateID("workoutId", workoutID)
	if err != nil {
		return "", err
	}
	exerciseID, err = validateID("exerciseId", exerciseID)
	if err != nil {
		return "", err
	}
	span.SetAttributes(
		attribute.String("workout.id", workoutID),
		attribute.String("exercise.id", exerciseID),
	)

	var workoutExerciseID string
	err = r.withTx(ctx, func(tx pgx.Tx) error {
		if err := requireWorkoutOwnership(ctx, tx, userID, workoutID, true); err != nil {
			return err
		}
		if err := requireExerciseVisible(ctx, tx, userID, exerciseID); err != nil {
			return err
		}

		var err error
		workoutExerciseID, err = attachExercise(ctx, tx, workoutID, exerciseID)
		return err
	})
	if err != nil {
		return "", err
	}

	span.SetAttributes(attribute.String("workout_exercise.id", workoutExerciseID))
	return workoutExerciseID, nil
}

// attachExercise expects the workout row to be locked by the caller.
func attachExercise(ctx context.Context, tx pgx.Tx, workoutID, exerciseID string) (string, error) {
	var order int
	if err := tx.QueryRow(ctx, `
		SELECT count(*) FROM workout_exercise WHERE workout_id = $1
	`, workoutID).Scan(&order); err != nil {
		return "", fmt.Errorf("count workout exercises [query]: %w", err)
	}

	var id string
	err := tx.QueryRow(ctx, `
		INSERT INTO workout_exercise (workout_id, exercise_id, "order")
		VALUES ($1, $2, $3)
		RETURNING id
	`, workoutID, exerciseID, order).Scan(&id)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return "", ErrNotFoundOrUnauthorized
		}
		return "", fmt.Errorf("attach exercise [query]: %w", err)
	}
	return id, nil
}

// CreateExerciseAndAddToWorkout creates a private exercise and attaches it to
// an owned workout in one transaction.
func (r *Repo) CreateExerciseAndAddToWorkout(ctx context.Context, userID, workoutID, name string) (_ *Exercise, _ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.createExerciseAndAddToWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := requireUser(userID); err != nil {
		return nil, "", err
	}
	workoutID, err = validateID("workoutId", workoutID)
	if err != nil {
		return nil, "", err
	}
	name, err = validateName("name", name)
	if err != nil {
		return nil, "", err
	}
	span.SetAttributes(attribute.String("workout.id", workoutID))

	var (
		exercise          *Exercise
		workoutExerciseID string
	)
	err = r.withTx(ctx, func(tx pgx.Tx) error {
		if err := requireWorkoutOwnership(ctx, tx, userID, workoutID, true); err != nil {
			return err
		}

		var err error
		exercise, err = insertExercise(ctx, tx, userID, name)
		if err != nil {
			return err
		}
		workoutExerciseID, err = attachExercise(ctx, tx, workoutID, exercise.ID)
		return err
	})
	if err != nil {
		return nil, "", err
	}

	r.catalog.Invalidate(userID)
	return exercise, workoutExerciseID, nil
}

// RemoveExerciseFromWorkout detaches an exercise, deleting its sets with it.
// Orders of the remaining exercises are left as they are.
func (r *Repo) RemoveExerciseFromWorkout(ctx context.Context, userID, workoutExerciseID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.removeExerciseFromWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := requireUser(userID); err != nil {
		return err
	}
	workoutExerciseID, err = validateID("workoutExerciseId", workoutExerciseID)
	if err != nil {
		return err
	}
	span.SetAttributes(attribute.String("workout_exercise.id", workoutExerciseID))

	if err := requireWorkoutExerciseOwnership(ctx, r.db, userID, workoutExerciseID, false); err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, `
		DELETE FROM workout_exercise we
		USING workout w
		WHERE we.id = $1 AND w.id = we.workout_id AND w.user_id = $2
	`, workoutExerciseID, userID)
	if err != nil {
		return fmt.Errorf("remove workout exercise [exec]: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFoundOrUnauthorized
	}
	return nil
}
