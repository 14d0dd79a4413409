package fitapi

import (
	"context"
	"net/http"

	"github.com/fitforge/webfront/internal/auth"
)

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
}

type UpdateProfileRequest struct {
	Username  *string `json:"username,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// ObtainTokens exchanges user credentials for a core API JWT pair.
func (c *Client) ObtainTokens(ctx context.Context, credentials Credentials) (auth.TokenPair, error) {
	var tokens struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	if err := c.do(
		ctx, "", http.MethodPost, "/auth/token/", "obtainTokens",
		nil, credentials, &tokens,
	); err != nil {
		return auth.TokenPair{}, err
	}
	return auth.TokenPair{
		AccessToken:  tokens.Access,
		RefreshToken: tokens.Refresh,
	}, nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*Profile, error) {
	profile := &Profile{}
	if err := c.do(
		ctx, "", http.MethodPost, "/accounts/users/register/", "register",
		nil, req, profile,
	); err != nil {
		return nil, err
	}
	return profile, nil
}

func (c *Client) Profile(ctx context.Context, sessionToken string) (*Profile, error) {
	profile := &Profile{}
	if err := c.do(
		ctx, sessionToken, http.MethodGet, "/accounts/profiles/me/", "profile",
		nil, nil, profile,
	); err != nil {
		return nil, err
	}
	return profile, nil
}

func (c *Client) UpdateProfile(ctx context.Context, sessionToken string, req UpdateProfileRequest) (*Profile, error) {
	profile := &Profile{}
	if err := c.do(
		ctx, sessionToken, http.MethodPatch, "/accounts/profiles/update_profile/", "updateProfile",
		nil, req, profile,
	); err != nil {
		return nil, err
	}
	return profile, nil
}
