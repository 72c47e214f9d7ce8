// Package auth establishes the caller's identity from a Google ID token.
// Everything downstream treats the resulting user id as opaque.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	pkghttp "contact-scout/pkg/http"
)

const tokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

// Identity is the verified caller.
type Identity struct {
	UserID     string
	Email      string
	Name       string
	PictureURL string
}

// Verifier resolves a bearer token into an Identity.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// GoogleVerifier validates Google ID tokens against the tokeninfo endpoint.
type GoogleVerifier struct {
	clientID string
	baseURL  string
	http     *pkghttp.Client
}

func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{
		clientID: clientID,
		baseURL:  tokenInfoURL,
		http:     pkghttp.NewClient(10 * time.Second),
	}
}

// SetBaseURL overrides the tokeninfo endpoint. Useful for tests.
func (v *GoogleVerifier) SetBaseURL(u string) {
	v.baseURL = u
}

func (v *GoogleVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	resp, err := v.http.GetContext(ctx, v.baseURL+"?id_token="+url.QueryEscape(token))
	if err != nil {
		return nil, fmt.Errorf("tokeninfo request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("token rejected: status %d", resp.StatusCode)
	}

	var info struct {
		Sub     string `json:"sub"`
		Aud     string `json:"aud"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode tokeninfo response: %w", err)
	}

	if info.Sub == "" {
		return nil, fmt.Errorf("token has no subject")
	}
	if v.clientID != "" && info.Aud != v.clientID {
		return nil, fmt.Errorf("token audience mismatch")
	}

	return &Identity{
		UserID:     info.Sub,
		Email:      info.Email,
		Name:       info.Name,
		PictureURL: info.Picture,
	}, nil
}

// StaticVerifier maps fixed tokens to identities. Development and tests only.
type StaticVerifier struct {
	Tokens map[string]Identity
}

func (v *StaticVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	id, ok := v.Tokens[token]
	if !ok {
		return nil, fmt.Errorf("unknown token")
	}
	return &id, nil
}
