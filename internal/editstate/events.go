package editstate

// Event is anything the exercise list view reports to Reduce.
type Event interface {
	isEvent()
}

type SetRowClicked struct {
	SetID string
}

type AddSetClicked struct {
	WorkoutExerciseID string
}

type Submitted struct{}

type Cancelled struct{}

// ExistingExerciseSelected is raised when the picked exercise is already
// attached to the workout.
type ExistingExerciseSelected struct {
	WorkoutExerciseID string
}

func (SetRowClicked) isEvent()            {}
func (AddSetClicked) isEvent()            {}
func (Submitted) isEvent()                {}
func (Cancelled) isEvent()                {}
func (ExistingExerciseSelected) isEvent() {}

// Reduce returns the state following e. Opening a form replaces whatever form
// was open before, so at most one row is ever being edited.
func Reduce(s State, e Event) State {
	switch ev := e.(type) {
	case SetRowClicked:
		if ev.SetID == "" {
			return s
		}
		return EditingSet(ev.SetID)
	case AddSetClicked:
		if ev.WorkoutExerciseID == "" {
			return s
		}
		return AddingSet(ev.WorkoutExerciseID)
	case ExistingExerciseSelected:
		if ev.WorkoutExerciseID == "" {
			return s
		}
		return AddingSet(ev.WorkoutExerciseID)
	case Submitted, Cancelled:
		return Idle()
	default:
		return s
	}
}
