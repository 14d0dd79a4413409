package generator

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fitforge/webfront/internal/fitapi"
	"github.com/fitforge/webfront/internal/muscles"
	"github.com/fitforge/webfront/internal/telemetry/metrics"
	"github.com/fitforge/webfront/internal/telemetry/tracing"
	"github.com/fitforge/webfront/internal/wizard"
	"github.com/fitforge/webfront/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=handler.go -destination=handler_mocks_test.go -package=generator_test

type workoutsApi interface {
	GenerateWorkout(ctx context.Context, sessionToken string, req fitapi.GenerateWorkoutRequest) (*fitapi.GeneratedWorkout, error)
	CreateWorkoutHistory(ctx context.Context, sessionToken string, req fitapi.CreateHistoryRequest) (*fitapi.HistoryMutation, error)
	Program(ctx context.Context, sessionToken string, id int64) (*fitapi.ProgramDetail, error)
}

type Handler struct {
	workouts       *SessionStore
	selections     *muscles.SelectionStore
	configs        *wizard.ConfigStore
	api            workoutsApi
	metricsManager *metrics.Manager
}

func NewHandler(
	workouts *SessionStore,
	selections *muscles.SelectionStore,
	configs *wizard.ConfigStore,
	api workoutsApi,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		workouts:       workouts,
		selections:     selections,
		configs:        configs,
		api:            api,
		metricsManager: metricsManager,
	}
}

func sessionToken(r *http.Request) string {
	return r.Header.Get("X-FITFORGE-TOKEN")
}

// HandleGenerate builds the generation request from the session's
// muscle selection and wizard config. Incomplete state is rejected
// before anything is sent upstream, and a failed generation leaves
// whatever workout was there before untouched.
func (handler *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.generator.generate")
	defer span.End()

	token := sessionToken(r)
	selection := handler.selections.Selection(token)
	config := handler.configs.Config(token)

	if len(selection.MuscleIDs) == 0 {
		http.Error(w, "no muscles selected", http.StatusConflict)
		return
	}
	if config.Intensity == nil || config.Goal == nil {
		http.Error(w, "workout config incomplete", http.StatusConflict)
		return
	}

	req := fitapi.GenerateWorkoutRequest{
		MusclesTargeted: selection.MuscleIDs,
		Duration:        config.Duration,
		Intensity:       *config.Intensity,
		Goal:            *config.Goal,
		Equipment:       config.Setting,
	}
	span.SetAttributes(
		attribute.Int("muscles.count", len(req.MusclesTargeted)),
		attribute.String("workout.goal", req.Goal),
	)

	workout, err := handler.api.GenerateWorkout(ctx, token, req)
	if err != nil {
		log.Errorf("generate workout: %s", err)
		fitapi.RespondError(w, err)
		return
	}

	handler.workouts.Set(token, workout)
	handler.metricsManager.CounterWorkoutsGenerated.Inc()

	handler.writeWorkout(w, workout)
}

func (handler *Handler) HandleCurrent(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.generator.current")
	defer span.End()

	workout := handler.workouts.Current(sessionToken(r))
	if workout == nil {
		http.Error(w, "no workout generated", http.StatusNotFound)
		return
	}

	handler.writeWorkout(w, workout)
}

// HandleSave persists the session's current workout as a history
// record. The response carries any achievements the save unlocked.
func (handler *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.generator.save")
	defer span.End()

	token := sessionToken(r)
	workout := handler.workouts.Current(token)
	if workout == nil {
		http.Error(w, "no workout generated", http.StatusNotFound)
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if r.Body != nil {
		// the body is optional, a bare POST saves as planned
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	status := req.Status
	if status == "" {
		status = fitapi.HistoryStatusPlanned
	}
	switch status {
	case fitapi.HistoryStatusPlanned, fitapi.HistoryStatusInProgress, fitapi.HistoryStatusCompleted:
	default:
		http.Error(w, "invalid workout status", http.StatusBadRequest)
		return
	}

	saved, err := handler.api.CreateWorkoutHistory(ctx, token, fitapi.CreateHistoryRequest{
		MusclesTargeted: workout.MusclesTargeted,
		Duration:        workout.Duration,
		Intensity:       workout.Intensity,
		Goal:            workout.Goal,
		Equipment:       workout.Equipment,
		Exercises:       workout.WorkoutPlan.Exercises,
		Status:          status,
	})
	if err != nil {
		log.Errorf("save workout: %s", err)
		fitapi.RespondError(w, err)
		return
	}

	handler.metricsManager.CounterWorkoutsSaved.Inc()

	savedJson, err := json.Marshal(saved)
	if err != nil {
		log.Errorf("marshal saved workout: %s", err)
		http.Error(w, "failed to save workout", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, savedJson, http.StatusCreated)
}

// HandleFromDay generates a workout seeded from a program day instead
// of the wizard: muscles, duration and intensity come from the day,
// equipment from the program, and the goal is always hypertrophy since
// program days carry no goal of their own.
func (handler *Handler) HandleFromDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.generator.fromDay")
	defer span.End()

	var req struct {
		ProgramID int64 `json:"programId"`
		DayID     int64 `json:"dayId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	span.SetAttributes(
		attribute.Int64("program.id", req.ProgramID),
		attribute.Int64("program.day.id", req.DayID),
	)

	token := sessionToken(r)
	program, err := handler.api.Program(ctx, token, req.ProgramID)
	if err != nil {
		log.Errorf("get program %d: %s", req.ProgramID, err)
		fitapi.RespondError(w, err)
		return
	}

	var day *fitapi.ProgramDay
	for i := range program.ProgramDays {
		if program.ProgramDays[i].ID == req.DayID {
			day = &program.ProgramDays[i]
			break
		}
	}
	if day == nil {
		http.Error(w, "program day not found", http.StatusNotFound)
		return
	}
	if day.IsRestDay {
		http.Error(w, "cannot generate a workout for a rest day", http.StatusBadRequest)
		return
	}

	equipment := program.EquipmentNeeded
	if equipment == "" {
		equipment = fitapi.EquipmentGym
	}

	workout, err := handler.api.GenerateWorkout(ctx, token, fitapi.GenerateWorkoutRequest{
		MusclesTargeted: day.MusclesTargeted,
		Duration:        day.Duration,
		Intensity:       day.Intensity,
		Goal:            fitapi.GoalHypertrophy,
		Equipment:       equipment,
	})
	if err != nil {
		log.Errorf("generate workout from day %d: %s", req.DayID, err)
		fitapi.RespondError(w, err)
		return
	}

	handler.workouts.Set(token, workout)
	handler.metricsManager.CounterWorkoutsGenerated.Inc()

	handler.writeWorkout(w, workout)
}

func (handler *Handler) writeWorkout(w http.ResponseWriter, workout *fitapi.GeneratedWorkout) {
	workoutJson, err := json.Marshal(workout)
	if err != nil {
		log.Errorf("marshal workout: %s", err)
		http.Error(w, "failed to read workout", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, workoutJson)
}
