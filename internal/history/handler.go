package history

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/fitforge/webfront/internal/fitapi"
	"github.com/fitforge/webfront/internal/telemetry/tracing"
	"github.com/fitforge/webfront/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=handler.go -destination=handler_mocks_test.go -package=history_test

type historyApi interface {
	WorkoutHistory(ctx context.Context, sessionToken string, params fitapi.HistoryListParams) ([]fitapi.HistoryEntry, error)
	UpdateWorkoutHistory(ctx context.Context, sessionToken string, id int64, req fitapi.PatchHistoryRequest) (*fitapi.HistoryMutation, error)
}

type Handler struct {
	api historyApi
}

func NewHandler(api historyApi) *Handler {
	return &Handler{api: api}
}

func sessionToken(r *http.Request) string {
	return r.Header.Get("X-FITFORGE-TOKEN")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.list")
	defer span.End()

	params := fitapi.HistoryListParams{
		Intensity: r.URL.Query().Get("intensity"),
		Goal:      r.URL.Query().Get("goal"),
		Equipment: r.URL.Query().Get("equipment"),
		Ordering:  r.URL.Query().Get("ordering"),
	}
	if params.Ordering == "" {
		// newest first unless the client asks otherwise
		params.Ordering = "-workout_date"
	}

	entries, err := handler.api.WorkoutHistory(ctx, sessionToken(r), params)
	if err != nil {
		log.Errorf("list workout history: %s", err)
		fitapi.RespondError(w, err)
		return
	}
	span.SetAttributes(attribute.Int("history.count", len(entries)))

	entriesJson, err := json.Marshal(entries)
	if err != nil {
		log.Errorf("marshal history: %s", err)
		http.Error(w, "failed to load history", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, entriesJson)
}

// HandleUpdate patches a history record's status. Workouts only move
// forward, planned to in progress to completed; the core API enforces
// the ordering, the value itself is checked here. Completion responses
// carry any achievements the workout unlocked.
func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.update")
	defer span.End()

	historyID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "error, history id NaN", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int64("history.id", historyID))

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	switch req.Status {
	case fitapi.HistoryStatusPlanned, fitapi.HistoryStatusInProgress, fitapi.HistoryStatusCompleted:
	default:
		http.Error(w, "invalid workout status", http.StatusBadRequest)
		return
	}

	updated, err := handler.api.UpdateWorkoutHistory(ctx, sessionToken(r), historyID, fitapi.PatchHistoryRequest{
		Status: req.Status,
	})
	if err != nil {
		log.Errorf("update history %d: %s", historyID, err)
		fitapi.RespondError(w, err)
		return
	}

	updatedJson, err := json.Marshal(updated)
	if err != nil {
		log.Errorf("marshal history entry: %s", err)
		http.Error(w, "failed to update history", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, updatedJson)
}
