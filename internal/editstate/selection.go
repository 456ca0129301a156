package editstate

import "strings"

// Attachment is an exercise already attached to the workout.
type Attachment struct {
	WorkoutExerciseID string
	ExerciseID        string
}

// CatalogEntry is an exercise offered by the add exercise search.
type CatalogEntry struct {
	ID   string
	Name string
}

// ResolveExerciseSelection reports whether picking exerciseID needs a new
// attachment. When the exercise is already attached, the returned event opens
// the add set form of the existing attachment and insert is false.
func ResolveExerciseSelection(attached []Attachment, exerciseID string) (ev ExistingExerciseSelected, insert bool) {
	for _, a := range attached {
		if a.ExerciseID == exerciseID {
			return ExistingExerciseSelected{WorkoutExerciseID: a.WorkoutExerciseID}, false
		}
	}
	return ExistingExerciseSelected{}, true
}

// FilterCatalog keeps entries whose name contains the trimmed query, ignoring
// case. An empty query keeps everything.
func FilterCatalog(catalog []CatalogEntry, query string) []CatalogEntry {
	q := strings.ToLower(strings.TrimSpace(query))
	filtered := make([]CatalogEntry, 0, len(catalog))
	for _, e := range catalog {
		if q == "" || strings.Contains(strings.ToLower(e.Name), q) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// ShouldOfferCreate is true when the query is not blank and no catalog entry
// has exactly that name, ignoring case.
func ShouldOfferCreate(catalog []CatalogEntry, query string) bool {
	q := strings.TrimSpace(query)
	if q == "" {
		return false
	}
	for _, e := range catalog {
		if strings.EqualFold(strings.TrimSpace(e.Name), q) {
			return false
		}
	}
	return true
}
