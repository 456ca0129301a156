package workouts

import "time"

// exerciseSetRow is one row of workout_exercise joined with exercise and left joined with workout_set.
// The set columns are nil when the exercise has no sets yet.
type exerciseSetRow struct {
	WorkoutExerciseID string
	WorkoutID         string
	Order             int
	ExerciseID        string
	ExerciseName      string

	SetID        *string
	SetNumber    *int
	Reps         *int
	Weight       *string
	WeightUnit   *WeightUnit
	SetCreatedAt *time.Time
}

// daySummaryRow is one row of workout left joined with workout_exercise and exercise.
type daySummaryRow struct {
	WorkoutID    string
	Name         string
	Date         time.Time
	StartedAt    *time.Time
	CompletedAt  *time.Time
	ExerciseName *string
}

// groupOrdered folds flat rows into groups keyed by key, keeping the order
// in which keys were first seen. add is called for every row, in row order,
// with a pointer to the row's group.
func groupOrdered[K comparable, R, G any](
	rows []R,
	key func(R) K,
	newGroup func(R) G,
	add func(*G, R),
) []G {
	groups := make([]G, 0)
	index := make(map[K]int)
	for _, row := range rows {
		k := key(row)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, newGroup(row))
		}
		add(&groups[i], row)
	}
	return groups
}

func assembleExercisesWithSets(rows []exerciseSetRow) []WorkoutExerciseWithSets {
	return groupOrdered(
		rows,
		func(r exerciseSetRow) string { return r.WorkoutExerciseID },
		func(r exerciseSetRow) WorkoutExerciseWithSets {
			return WorkoutExerciseWithSets{
				ID:           r.WorkoutExerciseID,
				WorkoutID:    r.WorkoutID,
				ExerciseID:   r.ExerciseID,
				ExerciseName: r.ExerciseName,
				Order:        r.Order,
				Sets:         make([]Set, 0),
			}
		},
		func(g *WorkoutExerciseWithSets, r exerciseSetRow) {
			if r.SetID == nil {
				return
			}
			set := Set{
				ID:                *r.SetID,
				WorkoutExerciseID: r.WorkoutExerciseID,
				Reps:              r.Reps,
				Weight:            r.Weight,
				WeightUnit:        r.WeightUnit,
			}
			if r.SetNumber != nil {
				set.SetNumber = *r.SetNumber
			}
			if r.SetCreatedAt != nil {
				set.CreatedAt = *r.SetCreatedAt
			}
			g.Sets = append(g.Sets, set)
		},
	)
}

func assembleDaySummaries(rows []daySummaryRow) []WorkoutSummary {
	return groupOrdered(
		rows,
		func(r daySummaryRow) string { return r.WorkoutID },
		func(r daySummaryRow) WorkoutSummary {
			summary := WorkoutSummary{
				ID:            r.WorkoutID,
				Name:          r.Name,
				Date:          r.Date,
				StartedAt:     r.StartedAt,
				CompletedAt:   r.CompletedAt,
				ExerciseNames: make([]string, 0),
			}
			if d, ok := sessionDuration(r.StartedAt, r.CompletedAt); ok {
				seconds := int64(d.Seconds())
				summary.DurationSeconds = &seconds
			}
			return summary
		},
		func(g *WorkoutSummary, r daySummaryRow) {
			if r.ExerciseName == nil {
				return
			}
			g.ExerciseNames = append(g.ExerciseNames, *r.ExerciseName)
		},
	)
}
