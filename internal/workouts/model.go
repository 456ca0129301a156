package workouts

import "time"

type WeightUnit string

const (
	WeightUnitKg  WeightUnit = "kg"
	WeightUnitLbs WeightUnit = "lbs"

	DefaultWeightUnit = WeightUnitKg
)

func (u WeightUnit) Valid() bool {
	return u == WeightUnitKg || u == WeightUnitLbs
}

// Exercise is global when UserID is nil, private to its owner otherwise.
type Exercise struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UserID    *string   `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (e Exercise) IsGlobal() bool {
	return e.UserID == nil
}

type Workout struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Name        string     `json:"name"`
	Date        time.Time  `json:"date"`
	StartedAt   *time.Time `json:"startedAt"`
	CompletedAt *time.Time `json:"completedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (w Workout) Duration() (time.Duration, bool) {
	return sessionDuration(w.StartedAt, w.CompletedAt)
}

func sessionDuration(startedAt, completedAt *time.Time) (time.Duration, bool) {
	if startedAt == nil || completedAt == nil || completedAt.Before(*startedAt) {
		return 0, false
	}
	return completedAt.Sub(*startedAt), true
}

type WorkoutExercise struct {
	ID         string    `json:"id"`
	WorkoutID  string    `json:"workoutId"`
	ExerciseID string    `json:"exerciseId"`
	Order      int       `json:"order"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Set struct {
	ID                string      `json:"id"`
	WorkoutExerciseID string      `json:"workoutExerciseId"`
	SetNumber         int         `json:"setNumber"`
	Reps              *int        `json:"reps"`
	Weight            *string     `json:"weight"`
	WeightUnit        *WeightUnit `json:"weightUnit"`
	CreatedAt         time.Time   `json:"createdAt"`
}

// SetInput carries the user editable fields of a set.
type SetInput struct {
	Reps       *int       `json:"reps"`
	Weight     *string    `json:"weight"`
	WeightUnit WeightUnit `json:"weightUnit"`
}

// WorkoutExerciseWithSets is one attached exercise with its sets ordered by set number.
type WorkoutExerciseWithSets struct {
	ID           string `json:"id"`
	WorkoutID    string `json:"workoutId"`
	ExerciseID   string `json:"exerciseId"`
	ExerciseName string `json:"exerciseName"`
	Order        int    `json:"order"`
	Sets         []Set  `json:"sets"`
}

// WorkoutSummary is a workout of a single day with the names of its exercises.
type WorkoutSummary struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Date            time.Time  `json:"date"`
	StartedAt       *time.Time `json:"startedAt"`
	CompletedAt     *time.Time `json:"completedAt"`
	DurationSeconds *int64     `json:"durationSeconds"`
	ExerciseNames   []string   `json:"exerciseNames"`
}

type DeletedSet struct {
	SetID             string `json:"setId"`
	WorkoutExerciseID string `json:"workoutExerciseId"`
	Renumbered        int    `json:"renumbered"`
}
