package wizard_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fitforge/webfront/internal/muscles"
	"github.com/fitforge/webfront/internal/wizard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() (*wizard.Handler, *muscles.SelectionStore) {
	selections := muscles.NewSelectionStore(time.Hour)
	return wizard.NewHandler(wizard.NewConfigStore(time.Hour), selections), selections
}

func doRequest(handler http.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("X-FITFORGE-TOKEN", "test-session")
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func decodeState(t *testing.T, rr *httptest.ResponseRecorder) wizard.StateResponse {
	t.Helper()
	var state wizard.StateResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &state))
	return state
}

func TestHandler_State(t *testing.T) {
	handler, selections := newTestHandler()

	_, err := selections.Toggle("test-session", "chest")
	require.NoError(t, err)

	rr := doRequest(handler.HandleState, "GET", "/wizard/state", "")
	require.Equal(t, http.StatusOK, rr.Code)

	state := decodeState(t, rr)
	assert.Equal(t, []string{"chest"}, state.Selection.MuscleIDs)
	assert.Equal(t, 45, state.Config.Duration)
	assert.True(t, state.Steps.Muscles)
	assert.False(t, state.Steps.Review)
}

func TestHandler_SetIntensityAndGoal(t *testing.T) {
	handler, selections := newTestHandler()

	_, err := selections.Toggle("test-session", "quads")
	require.NoError(t, err)

	rr := doRequest(handler.HandleSetIntensity, "POST", "/wizard/intensity", `{"intensity": "moderate"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	state := decodeState(t, rr)
	require.NotNil(t, state.Config.Intensity)
	assert.Equal(t, "moderate", *state.Config.Intensity)
	assert.False(t, state.Steps.Review)

	rr = doRequest(handler.HandleSetGoal, "POST", "/wizard/goal", `{"goal": "strength"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	state = decodeState(t, rr)
	// with muscles, intensity and goal in place the review step unlocks
	assert.True(t, state.Steps.Review)

	rr = doRequest(handler.HandleSetIntensity, "POST", "/wizard/intensity", `{"intensity": "brutal"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_SetDurationClamps(t *testing.T) {
	handler, _ := newTestHandler()

	rr := doRequest(handler.HandleSetDuration, "POST", "/wizard/duration", `{"duration": 7}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 15, decodeState(t, rr).Config.Duration)
}

func TestHandler_Reset(t *testing.T) {
	handler, selections := newTestHandler()

	_, err := selections.Toggle("test-session", "chest")
	require.NoError(t, err)
	rr := doRequest(handler.HandleSetIntensity, "POST", "/wizard/intensity", `{"intensity": "intense"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(handler.HandleReset, "POST", "/wizard/reset", "")
	require.Equal(t, http.StatusOK, rr.Code)

	state := decodeState(t, rr)
	assert.Nil(t, state.Config.Intensity)
	assert.Equal(t, 45, state.Config.Duration)
	assert.Equal(t, "gym", state.Config.Setting)
	// the muscle selection is not part of the config reset
	assert.Equal(t, []string{"chest"}, state.Selection.MuscleIDs)
}
