package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fitforge/webfront/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "fitforge-webfront-session||"
	tokensSetKey     = "fitforge-webfront-sessions"
)

var ErrSessionNotFound = errors.New("session not found")

// Admin guards the operational endpoints, it is not a core API user.
type Admin struct {
	Username     string
	PasswordHash string
}

// TokenPair holds the core API JWT credentials bound to a browser session.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type session struct {
	AccessToken   string `json:"access_token"`
	RefreshToken  string `json:"refresh_token"`
	CreatedAtUnix int64  `json:"created_at"`
}

type Service struct {
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewAuthService(
	ttl time.Duration,
	redisClient *redis.Client,
) *Service {
	return &Service{
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

// NewSession mints an opaque browser session token and binds the given
// core API token pair to it.
func (as *Service) NewSession(ctx context.Context, tokens TokenPair, createdAt time.Time) (string, error) {
	token, err := as.RandStringFunc(35)
	if err != nil {
		return "", err
	}

	sessionJson, err := json.Marshal(session{
		AccessToken:   tokens.AccessToken,
		RefreshToken:  tokens.RefreshToken,
		CreatedAtUnix: createdAt.Unix(),
	})
	if err != nil {
		return "", fmt.Errorf("marshal session: %w", err)
	}

	sessionKey := sessionKeyPrefix + token
	cmdSet := as.redisClient.Set(ctx, sessionKey, sessionJson, 0)
	if err := cmdSet.Err(); err != nil {
		return "", err
	}

	// add token to list of sessions
	cmdSAdd := as.redisClient.SAdd(ctx, tokensSetKey, token)
	if err := cmdSAdd.Err(); err != nil {
		return "", err
	}

	return token, nil
}

// Tokens returns the core API token pair bound to the given session token.
func (as *Service) Tokens(ctx context.Context, token string) (TokenPair, error) {
	s, err := as.getSession(ctx, token)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
	}, nil
}

// UpdateTokens stores a refreshed core API token pair for the given
// session token, keeping the original session creation time.
func (as *Service) UpdateTokens(ctx context.Context, token string, tokens TokenPair) error {
	s, err := as.getSession(ctx, token)
	if err != nil {
		return err
	}

	s.AccessToken = tokens.AccessToken
	s.RefreshToken = tokens.RefreshToken
	sessionJson, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	sessionKey := sessionKeyPrefix + token
	if err := as.redisClient.Set(ctx, sessionKey, sessionJson, 0).Err(); err != nil {
		return err
	}

	return nil
}

func (as *Service) Logout(ctx context.Context, token string) (bool, error) {
	sessionKey := sessionKeyPrefix + token
	cmd := as.redisClient.Get(ctx, sessionKey)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return false, ErrSessionNotFound
		}
		return false, err
	}

	if err := as.evict(ctx, token); err != nil {
		return false, err
	}

	return true, nil
}

// Evict drops a session whose core API credentials are no longer usable,
// e.g. after a failed token refresh.
func (as *Service) Evict(ctx context.Context, token string) error {
	return as.evict(ctx, token)
}

func (as *Service) evict(ctx context.Context, token string) error {
	sessionKey := sessionKeyPrefix + token
	if err := as.redisClient.Del(ctx, sessionKey).Err(); err != nil {
		return err
	}

	// remove token from the list of sessions
	if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
		return err
	}

	return nil
}

func (as *Service) getSession(ctx context.Context, token string) (*session, error) {
	sessionKey := sessionKeyPrefix + token
	cmd := as.redisClient.Get(ctx, sessionKey)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	var s session
	if err := json.Unmarshal([]byte(cmd.Val()), &s); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}

	return &s, nil
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old
func (as *Service) ScanAndClean(ctx context.Context) {
	cmd := as.redisClient.SMembers(ctx, tokensSetKey)
	if err := cmd.Err(); err != nil {
		log.Errorf("!!! auth service, scan and clean, get sessions: %s", err)
		return
	}

	sessionTokens := cmd.Val()
	if len(sessionTokens) == 0 {
		log.Warnln("=> auth service, scan and clean abort, no sessions")
		return
	}

	log.Warnf("=> auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	var toRemove []string
	for _, token := range sessionTokens {
		s, err := as.getSession(ctx, token)
		if err != nil {
			log.Errorf("=> auth service, scan and clean token %s: %s", token, err)
			continue
		}

		createdAt := time.Unix(s.CreatedAtUnix, 0)
		sessionDuration := time.Since(createdAt)
		if sessionDuration > as.ttl {
			log.Warnf("=>\twill clean the session with token: %s", token)
			toRemove = append(toRemove, token)
		}
	}

	for _, token := range toRemove {
		if err := as.evict(ctx, token); err != nil {
			log.Errorf("=> auth service, clean token %s: %s", token, err)
		}
	}
}
