package workouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/workoutlog/internal/telemetry/tracing"
	"github.com/2beens/workoutlog/pkg"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

const setColumns = `id, workout_exercise_id, set_number, reps, weight::text, weight_unit::text, created_at`

func scanSet(row pgx.Row) (*Set, error) {
	s := &Set{}
	if err := row.Scan(
		&s.ID, &s.WorkoutExerciseID, &s.SetNumber,
		&s.Reps, &s.Weight, &s.WeightUnit, &s.CreatedAt,
	); err != nil {
		return nil, err
	}
	if s.Weight != nil {
		if canonical, err := CanonicalWeight(*s.Weight); err == nil {
			s.Weight = &canonical
		}
	}
	return s, nil
}

// AddSet appends a set to an owned workout exercise, numbered after the existing ones.
func (r *Repo) AddSet(ctx context.Context, userID, workoutExerciseID string, in SetInput) (_ *Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.addSet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := requireUser(userID); err != nil {
		return nil, err
	}
	workoutExerciseID, err = validateID("workoutExerciseId", workoutExerciseID)
	if err != nil {
		return nil, err
	}
	in, err = normalizeSetInput(in)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("workout_exercise.id", workoutExerciseID))

	var set *Set
	err = r.withTx(ctx, func(tx pgx.Tx) error {
		if err := requireWorkoutExerciseOwnership(ctx, tx, userID, workoutExerciseID, true); err != nil {
			return err
		}

		var count int
		if err := tx.QueryRow(ctx, `
			SELECT count(*) FROM workout_set WHERE workout_exercise_id = $1
		`, workoutExerciseID).Scan(&count); err != nil {
			return fmt.Errorf("count sets [query]: %w", err)
		}

		var err error
		set, err = scanSet(tx.QueryRow(ctx, `
			INSERT INTO workout_set (workout_exercise_id, set_number, reps, weight, weight_unit)
			VALUES ($1, $2, $3, $4::numeric, $5::weight_unit)
			RETURNING `+setColumns,
			workoutExerciseID, count+1, in.Reps, in.Weight, string(in.WeightUnit),
		))
		if err != nil {
			if pkg.IsCheckViolationError(err) {
				return validationErr("set", "rejected by database: %s", err)
			}
			return fmt.Errorf("add set [query]: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("set.number", set.SetNumber))
	return set, nil
}

// UpdateSet overwrites reps, weight and unit of an owned set. The set number stays.
func (r *Repo) UpdateSet(ctx context.Context, userID, setID string, in SetInput) (_ *Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.updateSet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := requireUser(userID); err != nil {
		return nil, err
	}
	setID, err = validateID("setId", setID)
	if err != nil {
		return nil, err
	}
	in, err = normalizeSetInput(in)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("set.id", setID))

	if _, err := requireSetOwnership(ctx, r.db, userID, setID, false); err != nil {
		return nil, err
	}

	set, err := scanSet(r.db.QueryRow(ctx, `
		UPDATE workout_set s
		SET reps = $3, weight = $4::numeric, weight_unit = $5::weight_unit
		FROM workout_exercise we, workout w
		WHERE s.id = $1
			AND we.id = s.workout_exercise_id
			AND w.id = we.workout_id
			AND w.user_id = $2
		RETURNING s.id, s.workout_exercise_id, s.set_number, s.reps, s.weight::text, s.weight_unit::text, s.created_at
	`, setID, userID, in.Reps, in.Weight, string(in.WeightUnit)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFoundOrUnauthorized
		}
		if pkg.IsCheckViolationError(err) {
			return nil, validationErr("set", "rejected by database: %s", err)
		}
		return nil, fmt.Errorf("update set [query]: %w", err)
	}
	return set, nil
}

// DeleteSet removes an owned set and renumbers its siblings to 1..N in the same transaction.
func (r *Repo) DeleteSet(ctx context.Context, userID, setID string) (_ *DeletedSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.deleteSet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := requireUser(userID); err != nil {
		return nil, err
	}
	setID, err = validateID("setId", setID)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("set.id", setID))

	deleted := &DeletedSet{SetID: setID}
	err = r.withTx(ctx, func(tx pgx.Tx) error {
		workoutExerciseID, err := requireSetOwnership(ctx, tx, userID, setID, true)
		if err != nil {
			return err
		}
		deleted.WorkoutExerciseID = workoutExerciseID

		if _, err := tx.Exec(ctx, `DELETE FROM workout_set WHERE id = $1`, setID); err != nil {
			return fmt.Errorf("delete set [exec]: %w", err)
		}

		deleted.Renumbered, err = renumberSets(ctx, tx, workoutExerciseID)
		return err
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("sets.renumbered", deleted.Renumbered))
	return deleted, nil
}
