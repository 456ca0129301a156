package editstate

import "strconv"

const DefaultWeightUnit = "kg"

// SetRow is the part of a logged set the forms care about.
type SetRow struct {
	ID         string
	Reps       *int
	Weight     *string
	WeightUnit *string
}

// FormValues are the initial field values of a set form. Empty strings mean
// an empty field.
type FormValues struct {
	Reps       string `json:"reps"`
	Weight     string `json:"weight"`
	WeightUnit string `json:"weightUnit"`
}

// NewSetDefaults carries the previous set's values forward into a new set
// form. Without a previous set the fields are empty and the unit is kg.
func NewSetDefaults(previous *SetRow) FormValues {
	if previous == nil {
		return FormValues{WeightUnit: DefaultWeightUnit}
	}
	return EditDefaults(*previous)
}

func EditDefaults(row SetRow) FormValues {
	values := FormValues{WeightUnit: DefaultWeightUnit}
	if row.Reps != nil {
		values.Reps = strconv.Itoa(*row.Reps)
	}
	if row.Weight != nil {
		values.Weight = *row.Weight
	}
	if row.WeightUnit != nil && *row.WeightUnit != "" {
		values.WeightUnit = *row.WeightUnit
	}
	return values
}
