package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/fitforge/webfront/internal/auth"
	"github.com/fitforge/webfront/internal/fitapi"
	"github.com/fitforge/webfront/internal/middleware"
	"github.com/fitforge/webfront/internal/telemetry/metrics"
	"github.com/fitforge/webfront/internal/telemetry/tracing"
	"github.com/fitforge/webfront/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=handler.go -destination=handler_mocks_test.go -package=accounts_test

type accountsApi interface {
	ObtainTokens(ctx context.Context, credentials fitapi.Credentials) (auth.TokenPair, error)
	Register(ctx context.Context, req fitapi.RegisterRequest) (*fitapi.Profile, error)
	Profile(ctx context.Context, sessionToken string) (*fitapi.Profile, error)
	UpdateProfile(ctx context.Context, sessionToken string, req fitapi.UpdateProfileRequest) (*fitapi.Profile, error)
}

type sessionManager interface {
	NewSession(ctx context.Context, tokens auth.TokenPair, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) (bool, error)
}

type Handler struct {
	api      accountsApi
	sessions sessionManager
}

func NewHandler(api accountsApi, sessions sessionManager) *Handler {
	return &Handler{
		api:      api,
		sessions: sessions,
	}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	loginRateLimitAllowedPerMin int,
	metricsManager *metrics.Manager,
) {
	mainRouter.HandleFunc("/profile", handler.handleGetProfile).Methods("GET", "OPTIONS").Name("profile")
	mainRouter.HandleFunc("/profile", handler.handleUpdateProfile).Methods("PATCH").Name("profile-update")

	loginSubrouter := mainRouter.PathPrefix("/a").Subrouter()
	loginSubrouter.
		HandleFunc("/login", handler.handleLogin).
		Methods("POST", "OPTIONS").Name("login")
	loginSubrouter.
		HandleFunc("/logout", handler.handleLogout).
		Methods("GET", "OPTIONS").Name("logout")
	loginSubrouter.
		HandleFunc("/register", handler.handleRegister).
		Methods("POST", "OPTIONS").Name("register")

	// rate limit the auth endpoints to prevent abuse
	loginSubrouter.Use(middleware.RateLimit(rateLimiter, "login", loginRateLimitAllowedPerMin, metricsManager))
	loginSubrouter.Use(middleware.Cors())
}

func (handler *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.accounts.login")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	var credentials fitapi.Credentials
	if r.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
			log.Errorf("login, unmarshal json params: %s", err)
			http.Error(w, "login failed", http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			log.Errorf("login failed, parse form error: %s", err)
			http.Error(w, "parse form error", http.StatusInternalServerError)
			return
		}
		credentials = fitapi.Credentials{
			Username: r.Form.Get("username"),
			Password: r.Form.Get("password"),
		}
	}

	if credentials.Username == "" {
		http.Error(w, "error, username empty", http.StatusBadRequest)
		return
	}
	if credentials.Password == "" {
		http.Error(w, "error, password empty", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("user.name", credentials.Username))

	tokens, err := handler.api.ObtainTokens(ctx, credentials)
	if err != nil {
		// only an upstream credentials rejection means wrong credentials,
		// a dead or broken core API must not masquerade as one
		apiErr := &fitapi.APIError{}
		if errors.As(err, &apiErr) &&
			(apiErr.StatusCode == http.StatusBadRequest || apiErr.StatusCode == http.StatusUnauthorized) {
			log.Tracef("failed login attempt for user: %s", credentials.Username)
			http.Error(w, "error, wrong credentials", http.StatusUnauthorized)
			return
		}
		log.Errorf("login, obtain tokens: %s", err)
		fitapi.RespondError(w, err)
		return
	}

	sessionToken, err := handler.sessions.NewSession(ctx, tokens, time.Now())
	if err != nil {
		log.Errorf("login failed, create session error: %s", err)
		http.Error(w, "create session error", http.StatusInternalServerError)
		return
	}

	log.Trace("new login success")
	pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"token": "%s"}`, sessionToken))
}

func (handler *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.accounts.logout")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "GET, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	sessionToken := r.Header.Get("X-FITFORGE-TOKEN")
	if sessionToken == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	loggedOut, err := handler.sessions.Logout(ctx, sessionToken)
	if err != nil {
		log.Tracef("[failed logout] => %s: %s", r.URL.Path, err)
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	if !loggedOut {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}

func (handler *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.accounts.register")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	var req fitapi.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Username == "" || req.Password == "" || req.Email == "" {
		http.Error(w, "username, email and password are required", http.StatusBadRequest)
		return
	}

	profile, err := handler.api.Register(ctx, req)
	if err != nil {
		log.Errorf("register user %q: %s", req.Username, err)
		fitapi.RespondError(w, err)
		return
	}

	handler.writeProfile(w, profile, http.StatusCreated)
}

func (handler *Handler) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.accounts.profile")
	defer span.End()

	profile, err := handler.api.Profile(ctx, r.Header.Get("X-FITFORGE-TOKEN"))
	if err != nil {
		log.Errorf("get profile: %s", err)
		fitapi.RespondError(w, err)
		return
	}

	handler.writeProfile(w, profile, http.StatusOK)
}

func (handler *Handler) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.accounts.updateProfile")
	defer span.End()

	var req fitapi.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	profile, err := handler.api.UpdateProfile(ctx, r.Header.Get("X-FITFORGE-TOKEN"), req)
	if err != nil {
		log.Errorf("update profile: %s", err)
		fitapi.RespondError(w, err)
		return
	}

	handler.writeProfile(w, profile, http.StatusOK)
}

func (handler *Handler) writeProfile(w http.ResponseWriter, profile *fitapi.Profile, statusCode int) {
	profileJson, err := json.Marshal(profile)
	if err != nil {
		log.Errorf("marshal profile: %s", err)
		http.Error(w, "failed to read profile", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, profileJson, statusCode)
}
