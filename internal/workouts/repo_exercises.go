package workouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/workoutlog/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

// ListVisibleExercises returns global exercises plus the user's own, sorted by name.
func (r *Repo) ListVisibleExercises(ctx context.Context, userID string) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listVisibleExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := requireUser(userID); err != nil {
		return nil, err
	}

	if cached, ok := r.catalog.Get(userID); ok {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return cached, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, name, user_id, created_at
		FROM exercise
		WHERE user_id IS NULL OR user_id = $1
		ORDER BY name ASC, created_at ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list exercises [query]: %w", err)
	}
	defer rows.Close()

	exercises := make([]Exercise, 0)
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.UserID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("list exercises [scan]: %w", err)
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list exercises [rows]: %w", err)
	}

	span.SetAttributes(attribute.Int("exercises.count", len(exercises)))
	r.catalog.Set(userID, exercises)
	return exercises, nil
}

// CreateExercise adds a private exercise. Names are not unique.
func (r *Repo) CreateExercise(ctx context.Context, userID, name string) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.createExercise")
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

	exercise, err := insertExercise(ctx, r.db, userID, name)
	if err != nil {
		return nil, err
	}

	r.catalog.Invalidate(userID)
	span.SetAttributes(attribute.String("exercise.id", exercise.ID))
	return exercise, nil
}

func insertExercise(ctx context.Context, q dbtx, userID, name string) (*Exercise, error) {
	e := &Exercise{}
	err := q.QueryRow(ctx, `
		INSERT INTO exercise (name, user_id)
		VALUES ($1, $2)
		RETURNING id, name, user_id, created_at
	`, name, userID).Scan(&e.ID, &e.Name, &e.UserID, &e.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create exercise [query]: %w", err)
	}
	return e, nil
}

// CreateGlobalExercise adds an exercise visible to every user.
// It returns false when a global exercise with the same name already exists.
func (r *Repo) CreateGlobalExercise(ctx context.Context, name string) (_ *Exercise, created bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.createGlobalExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	name, err = validateName("name", name)
	if err != nil {
		return nil, false, err
	}

	e := &Exercise{}
	err = r.db.QueryRow(ctx, `
		SELECT id, name, user_id, created_at
		FROM exercise
		WHERE user_id IS NULL AND lower(name) = lower($1)
		LIMIT 1
	`, name).Scan(&e.ID, &e.Name, &e.UserID, &e.CreatedAt)
	switch {
	case err == nil:
		return e, false, nil
	case !errors.Is(err, pgx.ErrNoRows):
		return nil, false, fmt.Errorf("find global exercise [query]: %w", err)
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO exercise (name)
		VALUES ($1)
		RETURNING id, name, user_id, created_at
	`, name).Scan(&e.ID, &e.Name, &e.UserID, &e.CreatedAt)
	if err != nil {
		return nil, false, fmt.Errorf("create global exercise [query]: %w", err)
	}
	return e, true, nil
}
