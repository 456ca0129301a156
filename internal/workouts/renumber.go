package workouts

import (
	"context"
	"fmt"
)

// renumberSets rewrites set numbers of the given workout exercise to 1..N,
// keeping their current relative order. Rows already in place are not written.
// It returns how many rows got a new number.
func renumberSets(ctx context.Context, q dbtx, workoutExerciseID string) (renumbered int, err error) {
	rows, err := q.Query(ctx, `
		SELECT id, set_number
		FROM workout_set
		WHERE workout_exercise_id = $1
		ORDER BY set_number ASC, created_at ASC
	`, workoutExerciseID)
	if err != nil {
		return 0, fmt.Errorf("renumber sets [query]: %w", err)
	}

	type numberedSet struct {
		id     string
		number int
	}
	var sets []numberedSet
	for rows.Next() {
		var s numberedSet
		if err := rows.Scan(&s.id, &s.number); err != nil {
			rows.Close()
			return 0, fmt.Errorf("renumber sets [scan]: %w", err)
		}
		sets = append(sets, s)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("renumber sets [rows]: %w", err)
	}

	for i, s := range sets {
		want := i + 1
		if s.number == want {
			continue
		}
		if _, err := q.Exec(ctx, `
			UPDATE workout_set
			SET set_number = $1
			WHERE id = $2 AND workout_exercise_id = $3
		`, want, s.id, workoutExerciseID); err != nil {
			return renumbered, fmt.Errorf("renumber set %s [exec]: %w", s.id, err)
		}
		renumbered++
	}

	return renumbered, nil
}
