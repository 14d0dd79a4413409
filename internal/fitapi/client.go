package fitapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/fitforge/webfront/internal/auth"
	"github.com/fitforge/webfront/internal/telemetry/metrics"
	"github.com/fitforge/webfront/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	// ErrSessionExpired - the core API rejected both the access token and
	// the refresh attempt; the browser session has been evicted.
	ErrSessionExpired = errors.New("session expired")
	ErrNotFound       = errors.New("not found")
)

// APIError carries a core API 4xx/5xx response in a displayable form.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("core api [%d]: %s", e.StatusCode, e.Message)
}

// sessionTokens gives the client access to the core API JWT pair bound
// to a browser session token.
type sessionTokens interface {
	Tokens(ctx context.Context, sessionToken string) (auth.TokenPair, error)
	UpdateTokens(ctx context.Context, sessionToken string, tokens auth.TokenPair) error
	Evict(ctx context.Context, sessionToken string) error
}

// Client talks to the core FitForge REST API on behalf of browser
// sessions. On a 401 it attempts exactly one silent token refresh and
// retry per request; a second 401 evicts the session.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	sessions       sessionTokens
	metricsManager *metrics.Manager
}

func NewClient(
	baseURL string,
	timeout time.Duration,
	sessions sessionTokens,
	metricsManager *metrics.Manager,
) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   timeout,
		},
		sessions:       sessions,
		metricsManager: metricsManager,
	}
}

// do issues one request against the core API. endpoint is a low-cardinality
// operation name used as the metrics label. A non-empty sessionToken makes
// the request authenticated and eligible for the single refresh-retry.
func (c *Client) do(
	ctx context.Context,
	sessionToken, method, path, endpoint string,
	params url.Values,
	body, out any,
) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "fitapi."+endpoint)
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("fitapi.path", path))

	var bodyBytes []byte
	if body != nil {
		bodyBytes, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
	}

	var accessToken string
	if sessionToken != "" {
		tokens, err := c.sessions.Tokens(ctx, sessionToken)
		if err != nil {
			if errors.Is(err, auth.ErrSessionNotFound) {
				return ErrSessionExpired
			}
			return fmt.Errorf("get session tokens: %w", err)
		}
		accessToken = tokens.AccessToken
	}

	resp, err := c.send(ctx, method, path, params, bodyBytes, accessToken)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized && sessionToken != "" {
		if err := drainAndClose(resp); err != nil {
			log.Tracef("fitapi: close 401 response: %s", err)
		}

		accessToken, err = c.refreshTokens(ctx, span, sessionToken)
		if err != nil {
			return err
		}

		if c.metricsManager != nil {
			c.metricsManager.CounterUpstreamRetries.Inc()
		}
		resp, err = c.send(ctx, method, path, params, bodyBytes, accessToken)
		if err != nil {
			return err
		}

		// refreshed token rejected too, the session is beyond saving
		if resp.StatusCode == http.StatusUnauthorized {
			if err := drainAndClose(resp); err != nil {
				log.Tracef("fitapi: close 401 response: %s", err)
			}
			if err := c.sessions.Evict(ctx, sessionToken); err != nil {
				log.Errorf("fitapi: evict session after repeated 401: %s", err)
			}
			return ErrSessionExpired
		}
	}

	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return apiError(resp.StatusCode, respBytes)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBytes, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

func (c *Client) send(
	ctx context.Context,
	method, path string,
	params url.Values,
	body []byte,
	accessToken string,
) (*http.Response, error) {
	reqUrl := c.baseURL + path
	if len(params) > 0 {
		reqUrl += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqUrl, reqBody)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	begin := time.Now()
	resp, err := c.httpClient.Do(req)
	if c.metricsManager != nil {
		statusCode := 0
		if resp != nil {
			statusCode = resp.StatusCode
		}
		c.metricsManager.HistogramUpstreamDuration.WithLabelValues(
			path, strconv.Itoa(statusCode),
		).Observe(time.Since(begin).Seconds())
	}
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}

	return resp, nil
}

// refreshTokens performs the single silent refresh. A failed refresh
// evicts the session and returns ErrSessionExpired.
func (c *Client) refreshTokens(ctx context.Context, span trace.Span, sessionToken string) (string, error) {
	tokens, err := c.sessions.Tokens(ctx, sessionToken)
	if err != nil {
		if errors.Is(err, auth.ErrSessionNotFound) {
			return "", ErrSessionExpired
		}
		return "", fmt.Errorf("get session tokens: %w", err)
	}

	refreshBody, err := json.Marshal(map[string]string{"refresh": tokens.RefreshToken})
	if err != nil {
		return "", fmt.Errorf("marshal refresh request: %w", err)
	}

	resp, err := c.send(ctx, http.MethodPost, "/auth/token/refresh/", nil, refreshBody, "")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read refresh response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		span.SetStatus(codes.Error, "token-refresh-rejected")
		log.Debugf("fitapi: token refresh rejected [%d], evicting session", resp.StatusCode)
		if err := c.sessions.Evict(ctx, sessionToken); err != nil {
			log.Errorf("fitapi: evict session after failed refresh: %s", err)
		}
		return "", ErrSessionExpired
	}

	var refreshed struct {
		Access string `json:"access"`
	}
	if err := json.Unmarshal(respBytes, &refreshed); err != nil {
		return "", fmt.Errorf("unmarshal refresh response: %w", err)
	}

	if err := c.sessions.UpdateTokens(ctx, sessionToken, auth.TokenPair{
		AccessToken:  refreshed.Access,
		RefreshToken: tokens.RefreshToken,
	}); err != nil {
		return "", fmt.Errorf("update session tokens: %w", err)
	}

	return refreshed.Access, nil
}

// apiError extracts a displayable message from an error payload. The
// core API uses either {"error": "..."} or {"detail": "..."}.
func apiError(statusCode int, body []byte) error {
	var payload struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	message := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Error != "":
			message = payload.Error
		case payload.Detail != "":
			message = payload.Detail
		}
	}
	if message == "" {
		message = http.StatusText(statusCode)
	}

	if statusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	}

	return &APIError{
		StatusCode: statusCode,
		Message:    message,
	}
}

func drainAndClose(resp *http.Response) error {
	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		return err
	}
	return resp.Body.Close()
}
