package fitapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

type ProgramListParams struct {
	Difficulty string
	Goal       string
	IsFeatured *bool
	Search     string
	Ordering   string
}

func (c *Client) Programs(ctx context.Context, sessionToken string, params ProgramListParams) ([]Program, error) {
	queryParams := url.Values{}
	if params.Difficulty != "" {
		queryParams.Set("difficulty", params.Difficulty)
	}
	if params.Goal != "" {
		queryParams.Set("goal", params.Goal)
	}
	if params.IsFeatured != nil {
		queryParams.Set("is_featured", strconv.FormatBool(*params.IsFeatured))
	}
	if params.Search != "" {
		queryParams.Set("search", params.Search)
	}
	if params.Ordering != "" {
		queryParams.Set("ordering", params.Ordering)
	}

	var list ResultsList[Program]
	if err := c.do(
		ctx, sessionToken, http.MethodGet, "/workouts/programs/", "programs",
		queryParams, nil, &list,
	); err != nil {
		return nil, err
	}
	return list.Items, nil
}

func (c *Client) FeaturedPrograms(ctx context.Context, sessionToken string) ([]Program, error) {
	var list ResultsList[Program]
	if err := c.do(
		ctx, sessionToken, http.MethodGet, "/workouts/programs/featured/", "featuredPrograms",
		nil, nil, &list,
	); err != nil {
		return nil, err
	}
	return list.Items, nil
}

func (c *Client) Program(ctx context.Context, sessionToken string, id int64) (*ProgramDetail, error) {
	program := &ProgramDetail{}
	if err := c.do(
		ctx, sessionToken, http.MethodGet, fmt.Sprintf("/workouts/programs/%d/", id), "program",
		nil, nil, program,
	); err != nil {
		return nil, err
	}
	return program, nil
}

func (c *Client) MusclePresets(ctx context.Context, sessionToken string) ([]Preset, error) {
	var list ResultsList[Preset]
	if err := c.do(
		ctx, sessionToken, http.MethodGet, "/exercises/presets/", "musclePresets",
		nil, nil, &list,
	); err != nil {
		return nil, err
	}
	return list.Items, nil
}

func (c *Client) Enrollments(ctx context.Context, sessionToken string) ([]Enrollment, error) {
	queryParams := url.Values{}
	queryParams.Set("ordering", "-started_at")

	var list ResultsList[Enrollment]
	if err := c.do(
		ctx, sessionToken, http.MethodGet, "/workouts/enrollments/", "enrollments",
		queryParams, nil, &list,
	); err != nil {
		return nil, err
	}
	return list.Items, nil
}

// ActiveEnrollment returns the user's single active-or-paused enrollment,
// or nil when there is none (the core API answers 404 in that case).
func (c *Client) ActiveEnrollment(ctx context.Context, sessionToken string) (*EnrollmentDetail, error) {
	enrollment := &EnrollmentDetail{}
	if err := c.do(
		ctx, sessionToken, http.MethodGet, "/workouts/enrollments/active/", "activeEnrollment",
		nil, nil, enrollment,
	); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return enrollment, nil
}

// Enroll starts a new enrollment. The core API enforces the single
// active-or-paused enrollment rule and answers 4xx with an error string
// which is surfaced verbatim.
func (c *Client) Enroll(ctx context.Context, sessionToken string, programID int64) (*Enrollment, error) {
	enrollment := &Enrollment{}
	if err := c.do(
		ctx, sessionToken, http.MethodPost, "/workouts/enrollments/enroll/", "enroll",
		nil, map[string]int64{"program_id": programID}, enrollment,
	); err != nil {
		return nil, err
	}
	return enrollment, nil
}

func (c *Client) CompleteDay(ctx context.Context, sessionToken string, enrollmentID int64, req CompleteDayRequest) (*EnrollmentDetail, error) {
	enrollment := &EnrollmentDetail{}
	if err := c.do(
		ctx, sessionToken, http.MethodPost,
		fmt.Sprintf("/workouts/enrollments/%d/complete_day/", enrollmentID), "completeDay",
		nil, req, enrollment,
	); err != nil {
		return nil, err
	}
	return enrollment, nil
}

func (c *Client) PauseEnrollment(ctx context.Context, sessionToken string, enrollmentID int64) (*Enrollment, error) {
	return c.enrollmentAction(ctx, sessionToken, enrollmentID, "pause")
}

func (c *Client) ResumeEnrollment(ctx context.Context, sessionToken string, enrollmentID int64) (*Enrollment, error) {
	return c.enrollmentAction(ctx, sessionToken, enrollmentID, "resume")
}

func (c *Client) AbandonEnrollment(ctx context.Context, sessionToken string, enrollmentID int64) (*Enrollment, error) {
	return c.enrollmentAction(ctx, sessionToken, enrollmentID, "abandon")
}

func (c *Client) enrollmentAction(ctx context.Context, sessionToken string, enrollmentID int64, action string) (*Enrollment, error) {
	enrollment := &Enrollment{}
	if err := c.do(
		ctx, sessionToken, http.MethodPost,
		fmt.Sprintf("/workouts/enrollments/%d/%s/", enrollmentID, action), action+"Enrollment",
		nil, nil, enrollment,
	); err != nil {
		return nil, err
	}
	return enrollment, nil
}
