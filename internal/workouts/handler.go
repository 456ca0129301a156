package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/workoutlog/internal/auth"
	"github.com/2beens/workoutlog/internal/editstate"
	"github.com/2beens/workoutlog/internal/telemetry/metrics"
	"github.com/2beens/workoutlog/internal/telemetry/tracing"
	"github.com/2beens/workoutlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=$GOFILE -destination=workouts_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	ListVisibleExercises(ctx context.Context, userID string) ([]Exercise, error)
	CreateExercise(ctx context.Context, userID, name string) (*Exercise, error)

	ListWorkoutsForDate(ctx context.Context, userID string, day time.Time) ([]WorkoutSummary, error)
	GetWorkout(ctx context.Context, userID, id string) (*Workout, error)
	CreateWorkout(ctx context.Context, userID, name, date string) (*Workout, error)
	UpdateWorkout(ctx context.Context, userID, id, name, date string) (*Workout, error)
	DeleteWorkout(ctx context.Context, userID, id string) error
	StartWorkout(ctx context.Context, userID, id string) (*Workout, error)
	CompleteWorkout(ctx context.Context, userID, id string) (*Workout, error)

	ListWorkoutExercisesWithSets(ctx context.Context, userID, workoutID string) ([]WorkoutExerciseWithSets, error)
	AddExerciseToWorkout(ctx context.Context, userID, workoutID, exerciseID string) (string, error)
	CreateExerciseAndAddToWorkout(ctx context.Context, userID, workoutID, name string) (*Exercise, string, error)
	RemoveExerciseFromWorkout(ctx context.Context, userID, workoutExerciseID string) error

	AddSet(ctx context.Context, userID, workoutExerciseID string, in SetInput) (*Set, error)
	UpdateSet(ctx context.Context, userID, setID string, in SetInput) (*Set, error)
	DeleteSet(ctx context.Context, userID, setID string) (*DeletedSet, error)
}

type WorkoutRequest struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

// AddExerciseRequest attaches an existing exercise by id, or creates a new
// private one by name and attaches it.
type AddExerciseRequest struct {
	ExerciseID string `json:"exerciseId"`
	Name       string `json:"name"`
}

type AddExerciseResponse struct {
	WorkoutExerciseID string          `json:"workoutExerciseId"`
	Existing          bool            `json:"existing"`
	Exercise          *Exercise       `json:"exercise,omitempty"`
	EditState         editstate.State `json:"editState"`
}

type ExerciseView struct {
	WorkoutExerciseWithSets
	NextSetDefaults editstate.FormValues `json:"nextSetDefaults"`
}

type WorkoutResponse struct {
	Workout   *Workout       `json:"workout"`
	Exercises []ExerciseView `json:"exercises"`
}

type DeleteResponse struct {
	DeletedID string `json:"deletedId"`
}

type SetResponse struct {
	Set       *Set            `json:"set"`
	EditState editstate.State `json:"editState"`
}

type Handler struct {
	repo           workoutsRepo
	metricsManager *metrics.Manager
}

func NewHandler(repo workoutsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/exercises", handler.HandleListExercises).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/exercises", handler.HandleCreateExercise).Methods("POST", "OPTIONS").Name("new-exercise")

	r.HandleFunc("/workouts", handler.HandleListWorkouts).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/workouts", handler.HandleCreateWorkout).Methods("POST", "OPTIONS").Name("new-workout")
	r.HandleFunc("/workouts/{id}", handler.HandleGetWorkout).Methods("GET", "OPTIONS").Name("get-workout")
	r.HandleFunc("/workouts/{id}", handler.HandleUpdateWorkout).Methods("PUT", "OPTIONS").Name("update-workout")
	r.HandleFunc("/workouts/{id}", handler.HandleDeleteWorkout).Methods("DELETE", "OPTIONS").Name("delete-workout")
	r.HandleFunc("/workouts/{id}/start", handler.HandleStartWorkout).Methods("POST", "OPTIONS").Name("start-workout")
	r.HandleFunc("/workouts/{id}/complete", handler.HandleCompleteWorkout).Methods("POST", "OPTIONS").Name("complete-workout")
	r.HandleFunc("/workouts/{id}/exercises", handler.HandleAddExercise).Methods("POST", "OPTIONS").Name("add-workout-exercise")

	r.HandleFunc("/workout-exercises/{id}", handler.HandleRemoveExercise).Methods("DELETE", "OPTIONS").Name("remove-workout-exercise")
	r.HandleFunc("/workout-exercises/{id}/sets", handler.HandleAddSet).Methods("POST", "OPTIONS").Name("add-set")

	r.HandleFunc("/sets/{id}", handler.HandleUpdateSet).Methods("PUT", "OPTIONS").Name("update-set")
	r.HandleFunc("/sets/{id}", handler.HandleDeleteSet).Methods("DELETE", "OPTIONS").Name("delete-set")
}

// writeRepoError maps repository errors onto status codes.
func writeRepoError(w http.ResponseWriter, span trace.Span, op string, err error) {
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		log.Tracef("%s: %s", op, err)
		span.SetStatus(codes.Error, "validation")
		http.Error(w, validationErr.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrUnauthorized):
		span.SetStatus(codes.Error, "unauthorized")
		http.Error(w, "no can do", http.StatusUnauthorized)
	case errors.Is(err, ErrNotFoundOrUnauthorized):
		log.Tracef("%s: %s", op, err)
		span.SetStatus(codes.Error, "not-found")
		http.Error(w, "not found", http.StatusNotFound)
	default:
		log.Errorf("%s: %s", op, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		http.Error(w, op+" failed", http.StatusInternalServerError)
	}
}

func decodeJSON(r *http.Request, v any) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), pkg.ContentType.JSON) {
		return errors.New("invalid content type")
	}
	return json.NewDecoder(r.Body).Decode(v)
}

func requestUser(r *http.Request) string {
	id, _ := auth.UserFromContext(r.Context())
	return id
}

func (handler *Handler) HandleListExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.listExercises")
	defer span.End()

	exercises, err := handler.repo.ListVisibleExercises(ctx, requestUser(r))
	if err != nil {
		writeRepoError(w, span, "list exercises", err)
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		pkg.WriteJSON(w, exercises, http.StatusOK)
		return
	}

	entries := make([]editstate.CatalogEntry, 0, len(exercises))
	byID := make(map[string]Exercise, len(exercises))
	for _, e := range exercises {
		entries = append(entries, editstate.CatalogEntry{ID: e.ID, Name: e.Name})
		byID[e.ID] = e
	}
	filtered := make([]Exercise, 0)
	for _, e := range editstate.FilterCatalog(entries, query) {
		filtered = append(filtered, byID[e.ID])
	}

	pkg.WriteJSON(w, struct {
		Exercises   []Exercise `json:"exercises"`
		OfferCreate bool       `json:"offerCreate"`
	}{
		Exercises:   filtered,
		OfferCreate: editstate.ShouldOfferCreate(entries, query),
	}, http.StatusOK)
}

func (handler *Handler) HandleCreateExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.newExercise")
	defer span.End()

	var req struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &req); err != nil {
		log.Tracef("new exercise, unmarshal json params: %s", err)
		http.Error(w, "add exercise failed", http.StatusBadRequest)
		return
	}

	exercise, err := handler.repo.CreateExercise(ctx, requestUser(r), req.Name)
	if err != nil {
		writeRepoError(w, span, "create exercise", err)
		return
	}

	log.Debugf("new exercise added: [%s] %s", exercise.Name, exercise.ID)
	pkg.WriteJSON(w, exercise, http.StatusCreated)
}

func (handler *Handler) HandleListWorkouts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.listForDate")
	defer span.End()

	day := Today(time.Now())
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := ParseWorkoutDate(dateStr)
		if err != nil {
			http.Error(w, "error, invalid <date> param", http.StatusBadRequest)
			return
		}
		day = parsed
	}

	summaries, err := handler.repo.ListWorkoutsForDate(ctx, requestUser(r), day)
	if err != nil {
		writeRepoError(w, span, "list workouts", err)
		return
	}

	pkg.WriteJSON(w, summaries, http.StatusOK)
}

func (handler *Handler) HandleCreateWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.new")
	defer span.End()

	var req WorkoutRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Tracef("new workout, unmarshal json params: %s", err)
		http.Error(w, "add workout failed", http.StatusBadRequest)
		return
	}

	workout, err := handler.repo.CreateWorkout(ctx, requestUser(r), req.Name, req.Date)
	if err != nil {
		writeRepoError(w, span, "create workout", err)
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterWorkoutsCreated.Inc()
	}
	log.Debugf("new workout added: [%s] %s", workout.Name, workout.ID)
	pkg.WriteJSON(w, workout, http.StatusCreated)
}

func (handler *Handler) HandleGetWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	id := mux.Vars(r)["id"]
	user := requestUser(r)

	workout, err := handler.repo.GetWorkout(ctx, user, id)
	if err != nil {
		writeRepoError(w, span, "get workout", err)
		return
	}
	if workout == nil {
		http.Error(w, "workout not found", http.StatusNotFound)
		return
	}

	exercises, err := handler.repo.ListWorkoutExercisesWithSets(ctx, user, workout.ID)
	if err != nil {
		writeRepoError(w, span, "list workout exercises", err)
		return
	}

	views := make([]ExerciseView, 0, len(exercises))
	for _, e := range exercises {
		views = append(views, ExerciseView{
			WorkoutExerciseWithSets: e,
			NextSetDefaults:         editstate.NewSetDefaults(lastSetRow(e.Sets)),
		})
	}

	pkg.WriteJSON(w, WorkoutResponse{
		Workout:   workout,
		Exercises: views,
	}, http.StatusOK)
}

func lastSetRow(sets []Set) *editstate.SetRow {
	if len(sets) == 0 {
		return nil
	}
	last := sets[len(sets)-1]
	row := &editstate.SetRow{
		ID:     last.ID,
		Reps:   last.Reps,
		Weight: last.Weight,
	}
	if last.WeightUnit != nil {
		unit := string(*last.WeightUnit)
		row.WeightUnit = &unit
	}
	return row
}

func (handler *Handler) HandleUpdateWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.update")
	defer span.End()

	var req WorkoutRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Tracef("update workout, unmarshal json params: %s", err)
		http.Error(w, "update workout failed", http.StatusBadRequest)
		return
	}

	workout, err := handler.repo.UpdateWorkout(ctx, requestUser(r), mux.Vars(r)["id"], req.Name, req.Date)
	if err != nil {
		writeRepoError(w, span, "update workout", err)
		return
	}

	pkg.WriteJSON(w, workout, http.StatusOK)
}

func (handler *Handler) HandleDeleteWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	if err := handler.repo.DeleteWorkout(ctx, requestUser(r), id); err != nil {
		writeRepoError(w, span, "delete workout", err)
		return
	}

	pkg.WriteJSON(w, DeleteResponse{DeletedID: id}, http.StatusOK)
}

func (handler *Handler) HandleStartWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.start")
	defer span.End()

	workout, err := handler.repo.StartWorkout(ctx, requestUser(r), mux.Vars(r)["id"])
	if err != nil {
		writeRepoError(w, span, "start workout", err)
		return
	}

	pkg.WriteJSON(w, workout, http.StatusOK)
}

func (handler *Handler) HandleCompleteWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.complete")
	defer span.End()

	workout, err := handler.repo.CompleteWorkout(ctx, requestUser(r), mux.Vars(r)["id"])
	if err != nil {
		writeRepoError(w, span, "complete workout", err)
		return
	}

	pkg.WriteJSON(w, workout, http.StatusOK)
}

func (handler *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.addExercise")
	defer span.End()

	var req AddExerciseRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Tracef("add workout exercise, unmarshal json params: %s", err)
		http.Error(w, "add exercise failed", http.StatusBadRequest)
		return
	}

	user := requestUser(r)
	workoutID := mux.Vars(r)["id"]

	if req.ExerciseID == "" {
		exercise, workoutExerciseID, err := handler.repo.CreateExerciseAndAddToWorkout(ctx, user, workoutID, req.Name)
		if err != nil {
			writeRepoError(w, span, "create and add exercise", err)
			return
		}
		pkg.WriteJSON(w, AddExerciseResponse{
			WorkoutExerciseID: workoutExerciseID,
			Exercise:          exercise,
			EditState:         editstate.Reduce(editstate.Idle(), editstate.AddSetClicked{WorkoutExerciseID: workoutExerciseID}),
		}, http.StatusCreated)
		return
	}

	exerciseID, err := validateID("exerciseId", req.ExerciseID)
	if err != nil {
		writeRepoError(w, span, "add exercise", err)
		return
	}

	attached, err := handler.repo.ListWorkoutExercisesWithSets(ctx, user, workoutID)
	if err != nil {
		writeRepoError(w, span, "add exercise", err)
		return
	}
	attachments := make([]editstate.Attachment, 0, len(attached))
	for _, a := range attached {
		attachments = append(attachments, editstate.Attachment{
			WorkoutExerciseID: a.ID,
			ExerciseID:        a.ExerciseID,
		})
	}

	selected, insert := editstate.ResolveExerciseSelection(attachments, exerciseID)
	if !insert {
		pkg.WriteJSON(w, AddExerciseResponse{
			WorkoutExerciseID: selected.WorkoutExerciseID,
			Existing:          true,
			EditState:         editstate.Reduce(editstate.Idle(), selected),
		}, http.StatusOK)
		return
	}

	workoutExerciseID, err := handler.repo.AddExerciseToWorkout(ctx, user, workoutID, exerciseID)
	if err != nil {
		writeRepoError(w, span, "add exercise", err)
		return
	}

	pkg.WriteJSON(w, AddExerciseResponse{
		WorkoutExerciseID: workoutExerciseID,
		EditState:         editstate.Reduce(editstate.Idle(), editstate.AddSetClicked{WorkoutExerciseID: workoutExerciseID}),
	}, http.StatusCreated)
}

func (handler *Handler) HandleRemoveExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.removeExercise")
	defer span.End()

	id := mux.Vars(r)["id"]
	if err := handler.repo.RemoveExerciseFromWorkout(ctx, requestUser(r), id); err != nil {
		writeRepoError(w, span, "remove exercise", err)
		return
	}

	pkg.WriteJSON(w, DeleteResponse{DeletedID: id}, http.StatusOK)
}

func (handler *Handler) HandleAddSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.addSet")
	defer span.End()

	in, ok := decodeSetInput(w, r)
	if !ok {
		return
	}

	set, err := handler.repo.AddSet(ctx, requestUser(r), mux.Vars(r)["id"], in)
	if err != nil {
		writeRepoError(w, span, "add set", err)
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterSetsLogged.Inc()
	}
	pkg.WriteJSON(w, SetResponse{
		Set:       set,
		EditState: editstate.Reduce(editstate.AddingSet(set.WorkoutExerciseID), editstate.Submitted{}),
	}, http.StatusCreated)
}

func (handler *Handler) HandleUpdateSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.updateSet")
	defer span.End()

	in, ok := decodeSetInput(w, r)
	if !ok {
		return
	}

	set, err := handler.repo.UpdateSet(ctx, requestUser(r), mux.Vars(r)["id"], in)
	if err != nil {
		writeRepoError(w, span, "update set", err)
		return
	}

	pkg.WriteJSON(w, SetResponse{
		Set:       set,
		EditState: editstate.Reduce(editstate.EditingSet(set.ID), editstate.Submitted{}),
	}, http.StatusOK)
}

// decodeSetInput reads a set form; a missing unit falls back to kg.
func decodeSetInput(w http.ResponseWriter, r *http.Request) (SetInput, bool) {
	var in SetInput
	if err := decodeJSON(r, &in); err != nil {
		log.Tracef("set, unmarshal json params: %s", err)
		http.Error(w, "invalid set", http.StatusBadRequest)
		return SetInput{}, false
	}
	if in.WeightUnit == "" {
		in.WeightUnit = DefaultWeightUnit
	}
	return in, true
}

func (handler *Handler) HandleDeleteSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.deleteSet")
	defer span.End()

	deleted, err := handler.repo.DeleteSet(ctx, requestUser(r), mux.Vars(r)["id"])
	if err != nil {
		writeRepoError(w, span, "delete set", err)
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterSetsRenumbered.Add(float64(deleted.Renumbered))
	}
	pkg.WriteJSON(w, deleted, http.StatusOK)
}
