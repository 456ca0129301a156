package workouts

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	maxWeightInputLen = 32
	maxWeightScale    = 4
)

var maxWeight = decimal.NewFromInt(10000)

var workoutDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func requireUser(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return ErrUnauthorized
	}
	return nil
}

func validateID(field, id string) (string, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return "", validationErr(field, "invalid id %q", id)
	}
	return parsed.String(), nil
}

func validateName(field, name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", validationErr(field, "must not be empty")
	}
	return trimmed, nil
}

// ParseWorkoutDate accepts RFC 3339 timestamps, local date-times and plain dates (UTC midnight).
func ParseWorkoutDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range workoutDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, validationErr("date", "cannot parse %q", value)
}

// Today returns the current calendar day at UTC midnight, the form plain dates are stored in.
func Today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// DayRange returns the [start, end) interval of the calendar day t falls on.
func DayRange(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

// CanonicalWeight parses a positive decimal and returns it without redundant zeros,
// e.g. "062.50" becomes "62.5". Weights above 10000 or with more than four
// decimal places are rejected.
func CanonicalWeight(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if len(raw) > maxWeightInputLen {
		return "", validationErr("weight", "too long")
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return "", validationErr("weight", "not a decimal number: %q", raw)
	}
	// bound the exponent before any arithmetic rescales the coefficient
	if exp := d.Exponent(); exp > maxWeightInputLen || exp < -maxWeightInputLen {
		return "", validationErr("weight", "out of range")
	}
	if !d.IsPositive() {
		return "", validationErr("weight", "must be positive")
	}
	if d.GreaterThan(maxWeight) {
		return "", validationErr("weight", "must not exceed %s", maxWeight)
	}
	if !d.Round(maxWeightScale).Equal(d) {
		return "", validationErr("weight", "at most %d decimal places", maxWeightScale)
	}
	return d.String(), nil
}

// normalizeSetInput validates in and returns a copy with the weight canonicalized.
func normalizeSetInput(in SetInput) (SetInput, error) {
	out := SetInput{WeightUnit: in.WeightUnit}

	if in.Reps != nil {
		if *in.Reps <= 0 {
			return SetInput{}, validationErr("reps", "must be a positive integer")
		}
		reps := *in.Reps
		out.Reps = &reps
	}

	if in.Weight != nil {
		weight, err := CanonicalWeight(*in.Weight)
		if err != nil {
			return SetInput{}, err
		}
		out.Weight = &weight
	}

	if !in.WeightUnit.Valid() {
		return SetInput{}, validationErr("weightUnit", "must be one of kg, lbs")
	}

	return out, nil
}
