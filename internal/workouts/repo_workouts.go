package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/workoutlog/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

const workoutColumns = `id, user_id, name, date, started_at, completed_at, created_at, updated_at`

func scanWorkout(row pgx.Row) (*Workout, error) {
	w := &Workout{}
	if err := row.Scan(
		&w.ID, &w.UserID, &w.Name, &w.Date,
		&w.StartedAt, &w.CompletedAt, &w.CreatedAt, &w.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return w, nil
}

// scanOwnedWorkout maps "no rows" of an ownership filtered statement to ErrNotFoundOrUnauthorized.
func scanOwnedWorkout(row pgx.Row, op string) (*Workout, error) {
	w, err := scanWorkout(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFoundOrUnauthorized
		}
		return nil, fmt.Errorf("%s [query]: %w", op, err)
	}
	return w, nil
}

// GetWorkout returns nil without an error when the workout is missing or not owned by the user.
func (r *Repo) GetWorkout(ctx context.Context, userID, id string) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.getWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := requireUser(userID); err != nil {
		return nil, err
	}
	id, err = validateID("id", id)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("workout.id", id))

	w, err := scanWorkout(r.db.QueryRow(ctx, `
		SELECT `+workoutColumns+`
		FROM workout
		WHERE id = $1 AND user_id = $2
	`, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get workout [query]: %w", err)
	}
	return w, nil
}

func (r *Repo) CreateWorkout(ctx context.Context, userID, name, date string) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.createWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := requireUser(userID); err != nil {
		return nil, err
	}
	name, err = validateName("name", name)
	if err != nil {
		return nil, err
	}
	workoutDate, err := ParseWorkoutDate(date)
	if err != nil {
		return nil, err
	}

	w, err := scanWorkout(r.db.QueryRow(ctx, `
		INSERT INTO workout (user_id, name, date)
		VALUES ($1, $2, $3)
		RETURNING `+workoutColumns,
		userID, name, workoutDate,
	))
	if err != nil {
		return nil, fmt.Errorf("create workout [query]: %w", err)
	}

	span.SetAttributes(attribute.String("workout.id", w.ID))
	return w, nil
}

// UpdateWorkout changes name and date of an owned workout.
func (r *Repo) UpdateWorkout(ctx context.Context, userID, id, name, date string) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.updateWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := requireUser(userID); err != nil {
		return nil, err
	}
	id, err = validateID("id", id)
	if err != nil {
		return nil, err
	}
	name, err = validateName("name", name)
	if err != nil {
		return nil, err
	}
	workoutDate, err := ParseWorkoutDate(date)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("workout.id", id))

	return scanOwnedWorkout(r.db.QueryRow(ctx, `
		UPDATE workout
		SET name = $3, date = $4, updated_at = $5
		WHERE id = $1 AND user_id = $2
		RETURNING `+workoutColumns,
		id, userID, name, workoutDate, r.now(),
	), "update workout")
}

// DeleteWorkout removes an owned workout together with its exercises and sets.
func (r *Repo) DeleteWorkout(ctx context.Context, userID, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.deleteWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := requireUser(userID); err != nil {
		return err
	}
	id, err = validateID("id", id)
	if err != nil {
		return err
	}
	span.SetAttributes(attribute.String("workout.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM workout WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete workout [exec]: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFoundOrUnauthorized
	}
	return nil
}

// StartWorkout stamps started_at of an owned workout with the current time.
func (r *Repo) StartWorkout(ctx context.Context, userID, id string) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.startWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := requireUser(userID); err != nil {
		return nil, err
	}
	id, err = validateID("id", id)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("workout.id", id))

	now := r.now()
	return scanOwnedWorkout(r.db.QueryRow(ctx, `
		UPDATE workout
		SET started_at = $3, completed_at = NULL, updated_at = $3
		WHERE id = $1 AND user_id = $2
		RETURNING `+workoutColumns,
		id, userID, now,
	), "start workout")
}

// CompleteWorkout stamps completed_at of an owned workout. A workout that was
// never started is treated as started now.
func (r *Repo) CompleteWorkout(ctx context.Context, userID, id string) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.completeWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := requireUser(userID); err != nil {
		return nil, err
	}
	id, err = validateID("id", id)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("workout.id", id))

	now := r.now()
	return scanOwnedWorkout(r.db.QueryRow(ctx, `
		UPDATE workout
		SET started_at = COALESCE(started_at, $3), completed_at = $3, updated_at = $3
		WHERE id = $1 AND user_id = $2
		RETURNING `+workoutColumns,
		id, userID, now,
	), "complete workout")
}

// ListWorkoutsForDate returns the user's workouts on the calendar day of day,
// each with the names of its exercises in attachment order.
func (r *Repo) ListWorkoutsForDate(ctx context.Context, userID string, day time.Time) (_ []WorkoutSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listWorkoutsForDate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := requireUser(userID); err != nil {
		return nil, err
	}

	dayStart, dayEnd := DayRange(day)
	span.SetAttributes(attribute.String("day", dayStart.Format(time.DateOnly)))

	rows, err := r.db.Query(ctx, `
		SELECT w.id, w.name, w.date, w.started_at, w.completed_at, e.name
		FROM workout w
		LEFT JOIN workout_exercise we ON we.workout_id = w.id
		LEFT JOIN exercise e ON e.id = we.exercise_id
		WHERE w.user_id = $1 AND w.date >= $2 AND w.date < $3
		ORDER BY w.created_at ASC, w.id ASC, we."order" ASC, we.created_at ASC
	`, userID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("list workouts for date [query]: %w", err)
	}
	defer rows.Close()

	var flat []daySummaryRow
	for rows.Next() {
		var row daySummaryRow
		if err := rows.Scan(
			&row.WorkoutID, &row.Name, &row.Date,
			&row.StartedAt, &row.CompletedAt, &row.ExerciseName,
		); err != nil {
			return nil, fmt.Errorf("list workouts for date [scan]: %w", err)
		}
		flat = append(flat, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list workouts for date [rows]: %w", err)
	}

	summaries := assembleDaySummaries(flat)
	span.SetAttributes(attribute.Int("workouts.count", len(summaries)))
	return summaries, nil
}
