package muscles

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/fitforge/webfront/internal/fitapi"
	"github.com/fitforge/webfront/internal/telemetry/tracing"
	"github.com/fitforge/webfront/pkg"

	"github.com/coocood/freecache"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=handler.go -destination=handler_mocks_test.go -package=muscles_test

const presetsCacheKey = "muscle-presets"

type presetsApi interface {
	MusclePresets(ctx context.Context, sessionToken string) ([]fitapi.Preset, error)
}

type Handler struct {
	store           *SelectionStore
	api             presetsApi
	cache           *freecache.Cache
	cacheTTLSeconds int
}

func NewHandler(
	store *SelectionStore,
	api presetsApi,
	cache *freecache.Cache,
	cacheTTL time.Duration,
) *Handler {
	return &Handler{
		store:           store,
		api:             api,
		cache:           cache,
		cacheTTLSeconds: int(cacheTTL.Seconds()),
	}
}

func sessionToken(r *http.Request) string {
	return r.Header.Get("X-FITFORGE-TOKEN")
}

func (handler *Handler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.muscles.toggle")
	defer span.End()

	var req struct {
		MuscleID string `json:"muscleId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("muscle.id", req.MuscleID))

	selection, err := handler.store.Toggle(sessionToken(r), req.MuscleID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	handler.writeSelection(w, selection)
}

func (handler *Handler) HandleClear(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.muscles.clear")
	defer span.End()

	handler.writeSelection(w, handler.store.Clear(sessionToken(r)))
}

func (handler *Handler) HandleSetView(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.muscles.setView")
	defer span.End()

	var req struct {
		View string `json:"view"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	selection, err := handler.store.SetView(sessionToken(r), req.View)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	handler.writeSelection(w, selection)
}

func (handler *Handler) HandlePresets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.muscles.presets")
	defer span.End()

	presets, err := handler.presets(ctx, sessionToken(r))
	if err != nil {
		fitapi.RespondError(w, err)
		return
	}

	presetsJson, err := json.Marshal(presets)
	if err != nil {
		log.Errorf("marshal presets: %s", err)
		http.Error(w, "failed to load presets", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, presetsJson)
}

func (handler *Handler) HandleApplyPreset(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.muscles.applyPreset")
	defer span.End()

	presetID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "error, preset id NaN", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int64("preset.id", presetID))

	presets, err := handler.presets(ctx, sessionToken(r))
	if err != nil {
		fitapi.RespondError(w, err)
		return
	}

	var preset *fitapi.Preset
	for i := range presets {
		if presets[i].ID == presetID {
			preset = &presets[i]
			break
		}
	}
	if preset == nil {
		http.Error(w, "preset not found", http.StatusNotFound)
		return
	}

	// replace semantics: the preset wipes whatever was selected before
	handler.writeSelection(w, handler.store.ApplyPreset(sessionToken(r), preset.MuscleGroups))
}

func (handler *Handler) presets(ctx context.Context, token string) ([]fitapi.Preset, error) {
	if cached, err := handler.cache.Get([]byte(presetsCacheKey)); err == nil {
		var presets []fitapi.Preset
		if err := json.Unmarshal(cached, &presets); err == nil {
			return presets, nil
		}
		log.Errorf("unmarshal cached presets: %s", err)
	} else if !errors.Is(err, freecache.ErrNotFound) {
		log.Errorf("get presets from cache: %s", err)
	}

	presets, err := handler.api.MusclePresets(ctx, token)
	if err != nil {
		return nil, err
	}

	presetsJson, err := json.Marshal(presets)
	if err == nil {
		if err := handler.cache.Set([]byte(presetsCacheKey), presetsJson, handler.cacheTTLSeconds); err != nil {
			log.Errorf("cache presets: %s", err)
		}
	}

	return presets, nil
}

func (handler *Handler) writeSelection(w http.ResponseWriter, selection Selection) {
	selectionJson, err := json.Marshal(selection)
	if err != nil {
		log.Errorf("marshal selection: %s", err)
		http.Error(w, "failed to read selection", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, selectionJson)
}
