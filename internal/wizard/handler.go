package wizard

import (
	"encoding/json"
	"net/http"

	"github.com/fitforge/webfront/internal/muscles"
	"github.com/fitforge/webfront/internal/telemetry/tracing"
	"github.com/fitforge/webfront/pkg"

	log "github.com/sirupsen/logrus"
)

type Handler struct {
	configs    *ConfigStore
	selections *muscles.SelectionStore
}

func NewHandler(configs *ConfigStore, selections *muscles.SelectionStore) *Handler {
	return &Handler{
		configs:    configs,
		selections: selections,
	}
}

type StateResponse struct {
	Selection muscles.Selection `json:"selection"`
	Config    Config            `json:"config"`
	Steps     StepValidity      `json:"steps"`
}

func sessionToken(r *http.Request) string {
	return r.Header.Get("X-FITFORGE-TOKEN")
}

func (handler *Handler) HandleState(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.wizard.state")
	defer span.End()

	token := sessionToken(r)
	selection := handler.selections.Selection(token)
	config := handler.configs.Config(token)

	handler.writeState(w, selection, config)
}

func (handler *Handler) HandleSetIntensity(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.wizard.setIntensity")
	defer span.End()

	var req struct {
		Intensity string `json:"intensity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	config, err := handler.configs.SetIntensity(sessionToken(r), req.Intensity)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	handler.writeState(w, handler.selections.Selection(sessionToken(r)), config)
}

func (handler *Handler) HandleSetGoal(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.wizard.setGoal")
	defer span.End()

	var req struct {
		Goal string `json:"goal"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	config, err := handler.configs.SetGoal(sessionToken(r), req.Goal)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	handler.writeState(w, handler.selections.Selection(sessionToken(r)), config)
}

func (handler *Handler) HandleSetDuration(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.wizard.setDuration")
	defer span.End()

	var req struct {
		Duration int `json:"duration"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	config := handler.configs.SetDuration(sessionToken(r), req.Duration)
	handler.writeState(w, handler.selections.Selection(sessionToken(r)), config)
}

func (handler *Handler) HandleSetSetting(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.wizard.setSetting")
	defer span.End()

	var req struct {
		Setting string `json:"setting"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	config, err := handler.configs.SetSetting(sessionToken(r), req.Setting)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	handler.writeState(w, handler.selections.Selection(sessionToken(r)), config)
}

func (handler *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.wizard.reset")
	defer span.End()

	token := sessionToken(r)
	// only the config resets, the muscle selection survives
	config := handler.configs.Reset(token)

	handler.writeState(w, handler.selections.Selection(token), config)
}

func (handler *Handler) writeState(w http.ResponseWriter, selection muscles.Selection, config Config) {
	state := StateResponse{
		Selection: selection,
		Config:    config,
		Steps:     Validity(len(selection.MuscleIDs), config),
	}

	stateJson, err := json.Marshal(state)
	if err != nil {
		log.Errorf("marshal wizard state: %s", err)
		http.Error(w, "failed to read wizard state", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, stateJson)
}
