// Package editstate tracks which single row of a workout's exercise list is
// open in an edit form.
package editstate

import "fmt"

type Kind int

const (
	KindIdle Kind = iota
	KindEditingSet
	KindAddingSet
)

func (k Kind) String() string {
	switch k {
	case KindIdle:
		return "idle"
	case KindEditingSet:
		return "editingSet"
	case KindAddingSet:
		return "addingSet"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// State is one of Idle, EditingSet or AddingSet. Only the id belonging to the
// current kind is set.
type State struct {
	Kind              Kind   `json:"kind"`
	SetID             string `json:"setId,omitempty"`
	WorkoutExerciseID string `json:"workoutExerciseId,omitempty"`
}

func Idle() State {
	return State{Kind: KindIdle}
}

func EditingSet(setID string) State {
	return State{Kind: KindEditingSet, SetID: setID}
}

func AddingSet(workoutExerciseID string) State {
	return State{Kind: KindAddingSet, WorkoutExerciseID: workoutExerciseID}
}

func (s State) IsIdle() bool {
	return s.Kind == KindIdle
}

func IsEditing(s State, setID string) bool {
	return s.Kind == KindEditingSet && s.SetID == setID
}

func IsAdding(s State, workoutExerciseID string) bool {
	return s.Kind == KindAddingSet && s.WorkoutExerciseID == workoutExerciseID
}
