package programs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/fitforge/webfront/internal/fitapi"
	"github.com/fitforge/webfront/internal/telemetry/metrics"
	"github.com/fitforge/webfront/internal/telemetry/tracing"
	"github.com/fitforge/webfront/pkg"

	"github.com/coocood/freecache"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=handler.go -destination=handler_mocks_test.go -package=programs_test

type programsApi interface {
	Programs(ctx context.Context, sessionToken string, params fitapi.ProgramListParams) ([]fitapi.Program, error)
	FeaturedPrograms(ctx context.Context, sessionToken string) ([]fitapi.Program, error)
	Program(ctx context.Context, sessionToken string, id int64) (*fitapi.ProgramDetail, error)
	Enrollments(ctx context.Context, sessionToken string) ([]fitapi.Enrollment, error)
	ActiveEnrollment(ctx context.Context, sessionToken string) (*fitapi.EnrollmentDetail, error)
	Enroll(ctx context.Context, sessionToken string, programID int64) (*fitapi.Enrollment, error)
	CompleteDay(ctx context.Context, sessionToken string, enrollmentID int64, req fitapi.CompleteDayRequest) (*fitapi.EnrollmentDetail, error)
	PauseEnrollment(ctx context.Context, sessionToken string, enrollmentID int64) (*fitapi.Enrollment, error)
	ResumeEnrollment(ctx context.Context, sessionToken string, enrollmentID int64) (*fitapi.Enrollment, error)
	AbandonEnrollment(ctx context.Context, sessionToken string, enrollmentID int64) (*fitapi.Enrollment, error)
}

// DayView is a program day annotated with the viewer's progress.
type DayView struct {
	fitapi.ProgramDay
	Completed bool `json:"completed"`
	IsNext    bool `json:"isNext"`
}

// ProgramView is the composite detail the frontend renders from: the
// program itself, its days with per-day progress, and the actions the
// viewer may take.
type ProgramView struct {
	fitapi.Program
	Days           []DayView          `json:"days"`
	UserEnrollment *fitapi.Enrollment `json:"userEnrollment"`
	Actions        Actions            `json:"actions"`
}

type Handler struct {
	api             programsApi
	cache           *freecache.Cache
	cacheTTLSeconds int
	metricsManager  *metrics.Manager
}

func NewHandler(
	api programsApi,
	cache *freecache.Cache,
	cacheTTL time.Duration,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		api:             api,
		cache:           cache,
		cacheTTLSeconds: int(cacheTTL.Seconds()),
		metricsManager:  metricsManager,
	}
}

func sessionToken(r *http.Request) string {
	return r.Header.Get("X-FITFORGE-TOKEN")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.list")
	defer span.End()

	params := fitapi.ProgramListParams{
		Difficulty: r.URL.Query().Get("difficulty"),
		Goal:       r.URL.Query().Get("goal"),
		Search:     r.URL.Query().Get("search"),
		Ordering:   r.URL.Query().Get("ordering"),
	}

	cacheKey := fmt.Sprintf("programs||%s||%s||%s||%s", params.Difficulty, params.Goal, params.Search, params.Ordering)
	if cached, err := handler.cache.Get([]byte(cacheKey)); err == nil {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, cached)
		return
	}

	programs, err := handler.api.Programs(ctx, sessionToken(r), params)
	if err != nil {
		log.Errorf("list programs: %s", err)
		fitapi.RespondError(w, err)
		return
	}

	programsJson, err := json.Marshal(programs)
	if err != nil {
		log.Errorf("marshal programs: %s", err)
		http.Error(w, "failed to load programs", http.StatusInternalServerError)
		return
	}
	if err := handler.cache.Set([]byte(cacheKey), programsJson, handler.cacheTTLSeconds); err != nil {
		log.Errorf("cache programs: %s", err)
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, programsJson)
}

func (handler *Handler) HandleFeatured(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.featured")
	defer span.End()

	cacheKey := "programs-featured"
	if cached, err := handler.cache.Get([]byte(cacheKey)); err == nil {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, cached)
		return
	}

	programs, err := handler.api.FeaturedPrograms(ctx, sessionToken(r))
	if err != nil {
		log.Errorf("list featured programs: %s", err)
		fitapi.RespondError(w, err)
		return
	}

	programsJson, err := json.Marshal(programs)
	if err != nil {
		log.Errorf("marshal featured programs: %s", err)
		http.Error(w, "failed to load programs", http.StatusInternalServerError)
		return
	}
	if err := handler.cache.Set([]byte(cacheKey), programsJson, handler.cacheTTLSeconds); err != nil {
		log.Errorf("cache featured programs: %s", err)
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, programsJson)
}

// HandleDetail composes the program with the viewer's progress. The
// program and the active enrollment are fetched concurrently; only a
// failing program fetch fails the request. A missing active enrollment,
// or one we failed to fetch, just means no progress to annotate.
func (handler *Handler) HandleDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.detail")
	defer span.End()

	programID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "error, program id NaN", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int64("program.id", programID))

	token := sessionToken(r)

	var (
		program *fitapi.ProgramDetail
		active  *fitapi.EnrollmentDetail
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var programErr error
		program, programErr = handler.api.Program(groupCtx, token, programID)
		return programErr
	})
	group.Go(func() error {
		activeEnrollment, activeErr := handler.api.ActiveEnrollment(groupCtx, token)
		if activeErr != nil {
			log.Errorf("get active enrollment for program %d: %s", programID, activeErr)
			return nil
		}
		active = activeEnrollment
		return nil
	})
	if err := group.Wait(); err != nil {
		log.Errorf("get program %d: %s", programID, err)
		fitapi.RespondError(w, err)
		return
	}

	view := handler.composeView(program, active)
	viewJson, err := json.Marshal(view)
	if err != nil {
		log.Errorf("marshal program view: %s", err)
		http.Error(w, "failed to load program", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, viewJson)
}

func (handler *Handler) composeView(program *fitapi.ProgramDetail, active *fitapi.EnrollmentDetail) ProgramView {
	// the active enrollment only annotates days when it belongs to
	// this very program
	var enrolledHere *fitapi.EnrollmentDetail
	hasActiveElsewhere := false
	if active != nil {
		if active.Program.ID == program.ID {
			enrolledHere = active
		} else {
			hasActiveElsewhere = true
		}
	}

	enrollment := program.UserEnrollment
	if enrolledHere != nil {
		enrollment = &enrolledHere.Enrollment
	}

	days := make([]DayView, 0, len(program.ProgramDays))
	for _, day := range program.ProgramDays {
		dayView := DayView{ProgramDay: day}
		if enrolledHere != nil {
			dayView.Completed = IsDayCompleted(enrolledHere, day.ID)
			dayView.IsNext = IsNextDay(&enrolledHere.Enrollment, day.ID)
		}
		days = append(days, dayView)
	}

	return ProgramView{
		Program:        program.Program,
		Days:           days,
		UserEnrollment: enrollment,
		Actions:        AvailableActions(hasActiveElsewhere, enrollment),
	}
}

func (handler *Handler) HandleEnroll(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.enroll")
	defer span.End()

	programID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "error, program id NaN", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int64("program.id", programID))

	token := sessionToken(r)
	if _, err := handler.api.Enroll(ctx, token, programID); err != nil {
		log.Errorf("enroll into program %d: %s", programID, err)
		fitapi.RespondError(w, err)
		return
	}

	handler.metricsManager.CounterProgramEnrollments.Inc()
	handler.invalidateCatalog()

	// re-read so the client gets the authoritative enrollment state,
	// next workout day included
	active, err := handler.api.ActiveEnrollment(ctx, token)
	if err != nil {
		log.Errorf("get active enrollment after enroll: %s", err)
		fitapi.RespondError(w, err)
		return
	}

	activeJson, err := json.Marshal(active)
	if err != nil {
		log.Errorf("marshal enrollment: %s", err)
		http.Error(w, "failed to enroll", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, activeJson, http.StatusCreated)
}

func (handler *Handler) HandleEnrollments(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.enrollments")
	defer span.End()

	enrollments, err := handler.api.Enrollments(ctx, sessionToken(r))
	if err != nil {
		log.Errorf("list enrollments: %s", err)
		fitapi.RespondError(w, err)
		return
	}

	enrollmentsJson, err := json.Marshal(enrollments)
	if err != nil {
		log.Errorf("marshal enrollments: %s", err)
		http.Error(w, "failed to load enrollments", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, enrollmentsJson)
}

// HandleActive returns the viewer's active or paused enrollment, or a
// JSON null when there is none. The null is deliberate, clients treat
// "no active program" as a regular state, not an error.
func (handler *Handler) HandleActive(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.active")
	defer span.End()

	active, err := handler.api.ActiveEnrollment(ctx, sessionToken(r))
	if err != nil {
		log.Errorf("get active enrollment: %s", err)
		fitapi.RespondError(w, err)
		return
	}

	activeJson, err := json.Marshal(active)
	if err != nil {
		log.Errorf("marshal active enrollment: %s", err)
		http.Error(w, "failed to load enrollment", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, activeJson)
}

func (handler *Handler) HandlePause(w http.ResponseWriter, r *http.Request) {
	handler.handleEnrollmentAction(w, r, "pause", handler.api.PauseEnrollment)
}

func (handler *Handler) HandleResume(w http.ResponseWriter, r *http.Request) {
	handler.handleEnrollmentAction(w, r, "resume", handler.api.ResumeEnrollment)
}

func (handler *Handler) HandleAbandon(w http.ResponseWriter, r *http.Request) {
	handler.handleEnrollmentAction(w, r, "abandon", handler.api.AbandonEnrollment)
}

func (handler *Handler) handleEnrollmentAction(
	w http.ResponseWriter, r *http.Request,
	action string,
	actionFunc func(ctx context.Context, sessionToken string, enrollmentID int64) (*fitapi.Enrollment, error),
) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs."+action)
	defer span.End()

	enrollmentID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "error, enrollment id NaN", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int64("enrollment.id", enrollmentID))

	enrollment, err := actionFunc(ctx, sessionToken(r), enrollmentID)
	if err != nil {
		log.Errorf("%s enrollment %d: %s", action, enrollmentID, err)
		fitapi.RespondError(w, err)
		return
	}

	enrollmentJson, err := json.Marshal(enrollment)
	if err != nil {
		log.Errorf("marshal enrollment: %s", err)
		http.Error(w, "failed to update enrollment", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, enrollmentJson)
}

// HandleCompleteDay marks a program day complete, optionally linking
// the history record of the workout that fulfilled it. The response is
// the refreshed enrollment detail, the core API advances next workout
// day and completion percentage itself.
func (handler *Handler) HandleCompleteDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.completeDay")
	defer span.End()

	enrollmentID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "error, enrollment id NaN", http.StatusBadRequest)
		return
	}

	var req struct {
		ProgramDayID     int64  `json:"programDayId"`
		WorkoutHistoryID *int64 `json:"workoutHistoryId"`
		Notes            string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.ProgramDayID <= 0 {
		http.Error(w, "programDayId is required", http.StatusBadRequest)
		return
	}
	span.SetAttributes(
		attribute.Int64("enrollment.id", enrollmentID),
		attribute.Int64("program.day.id", req.ProgramDayID),
	)

	enrollment, err := handler.api.CompleteDay(ctx, sessionToken(r), enrollmentID, fitapi.CompleteDayRequest{
		ProgramDayID:     req.ProgramDayID,
		WorkoutHistoryID: req.WorkoutHistoryID,
		Notes:            req.Notes,
	})
	if err != nil {
		log.Errorf("complete day %d for enrollment %d: %s", req.ProgramDayID, enrollmentID, err)
		fitapi.RespondError(w, err)
		return
	}

	handler.metricsManager.CounterProgramDaysComplete.Inc()

	enrollmentJson, err := json.Marshal(enrollment)
	if err != nil {
		log.Errorf("marshal enrollment: %s", err)
		http.Error(w, "failed to complete day", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, enrollmentJson)
}

// invalidateCatalog drops the cached unfiltered program lists, their
// enrollment counts change with every enroll.
func (handler *Handler) invalidateCatalog() {
	handler.cache.Del([]byte("programs-featured"))
	handler.cache.Del([]byte("programs||||||||"))
}
