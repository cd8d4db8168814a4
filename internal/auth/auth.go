// Package auth resolves bearer tokens to user identities. Tokens are issued
// by the managed backend; they are verified either locally with the shared
// signing secret or with a call to the managed auth API.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("the bearer token is invalid or expired")
)

// User is the identity a bearer token resolves to.
type User struct {
	ID uuid.UUID
}

// Verifier resolves a bearer token to a user.
type Verifier interface {
	Verify(ctx context.Context, token string) (User, error)
}

// LocalVerifier verifies tokens with the shared HS256 signing secret of the
// managed auth service, without a network call per request.
type LocalVerifier struct {
	secret []byte
}

var _ Verifier = &LocalVerifier{}

func NewLocalVerifier(secret string) *LocalVerifier {
	return &LocalVerifier{secret: []byte(secret)}
}

func (v *LocalVerifier) Verify(_ context.Context, token string) (User, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !parsed.Valid {
		return User{}, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return User{}, ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return User{}, ErrInvalidToken
	}

	id, err := uuid.Parse(sub)
	if err != nil {
		return User{}, ErrInvalidToken
	}

	return User{ID: id}, nil
}

// RemoteVerifier verifies tokens with the managed auth API.
type RemoteVerifier struct {
	client *resty.Client
}

var _ Verifier = &RemoteVerifier{}

func NewRemoteVerifier(baseURL, apiKey string) *RemoteVerifier {
	return &RemoteVerifier{
		client: resty.New().
			SetBaseURL(baseURL).
			SetHeader("apikey", apiKey),
	}
}

func (v *RemoteVerifier) Verify(ctx context.Context, token string) (User, error) {
	var body struct {
		ID string `json:"id"`
	}

	resp, err := v.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&body).
		Get("/auth/v1/user")
	if err != nil {
		return User{}, fmt.Errorf("auth verification failed: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return User{}, ErrInvalidToken
	}

	id, err := uuid.Parse(body.ID)
	if err != nil {
		return User{}, ErrInvalidToken
	}

	return User{ID: id}, nil
}
