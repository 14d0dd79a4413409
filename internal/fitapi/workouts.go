package fitapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

type HistoryListParams struct {
	Intensity string
	Goal      string
	Equipment string
	Ordering  string
}

type CreateHistoryRequest struct {
	MusclesTargeted []string   `json:"muscles_targeted"`
	Duration        int        `json:"duration"`
	Intensity       string     `json:"intensity"`
	Goal            string     `json:"goal"`
	Equipment       string     `json:"equipment"`
	Exercises       []Exercise `json:"exercises_completed"`
	Status          string     `json:"status"`
}

type PatchHistoryRequest struct {
	Status string `json:"status"`
}

// GenerateWorkout asks the core API to generate a workout plan. The
// generation is stochastic upstream, so there is no retry or idempotency
// key; the caller re-submits manually on failure.
func (c *Client) GenerateWorkout(ctx context.Context, sessionToken string, req GenerateWorkoutRequest) (*GeneratedWorkout, error) {
	workout := &GeneratedWorkout{}
	if err := c.do(
		ctx, sessionToken, http.MethodPost, "/workouts/generated/generate/", "generateWorkout",
		nil, req, workout,
	); err != nil {
		return nil, err
	}
	return workout, nil
}

func (c *Client) WorkoutHistory(ctx context.Context, sessionToken string, params HistoryListParams) ([]HistoryEntry, error) {
	queryParams := url.Values{}
	if params.Intensity != "" {
		queryParams.Set("intensity", params.Intensity)
	}
	if params.Goal != "" {
		queryParams.Set("goal", params.Goal)
	}
	if params.Equipment != "" {
		queryParams.Set("equipment", params.Equipment)
	}
	if params.Ordering != "" {
		queryParams.Set("ordering", params.Ordering)
	}

	var list ResultsList[HistoryEntry]
	if err := c.do(
		ctx, sessionToken, http.MethodGet, "/workouts/history/", "workoutHistory",
		queryParams, nil, &list,
	); err != nil {
		return nil, err
	}
	return list.Items, nil
}

func (c *Client) CreateWorkoutHistory(ctx context.Context, sessionToken string, req CreateHistoryRequest) (*HistoryMutation, error) {
	created := &HistoryMutation{}
	if err := c.do(
		ctx, sessionToken, http.MethodPost, "/workouts/history/", "createWorkoutHistory",
		nil, req, created,
	); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *Client) UpdateWorkoutHistory(ctx context.Context, sessionToken string, id int64, req PatchHistoryRequest) (*HistoryMutation, error) {
	updated := &HistoryMutation{}
	if err := c.do(
		ctx, sessionToken, http.MethodPatch, fmt.Sprintf("/workouts/history/%d/", id), "updateWorkoutHistory",
		nil, req, updated,
	); err != nil {
		return nil, err
	}
	return updated, nil
}
