package utils

import (
	"context"
	"errors"
	"os"

	"google.golang.org/api/idtoken"
)

// IdentityClaims are the verified attributes we keep from a Google ID token.
type IdentityClaims struct {
	GoogleID string
	Email    string
	Name     string
	Picture  string
}

// VerifyGoogleToken checks the ID token signature and audience against
// GOOGLE_CLIENT_ID and extracts the profile claims.
func VerifyGoogleToken(ctx context.Context, token string) (*IdentityClaims, error) {
	payload, err := idtoken.Validate(ctx, token, os.Getenv("GOOGLE_CLIENT_ID"))
	if err != nil {
		return nil, err
	}

	claims := &IdentityClaims{GoogleID: payload.Subject}
	if v, ok := payload.Claims["email"].(string); ok {
		claims.Email = v
	}
	if v, ok := payload.Claims["name"].(string); ok {
		claims.Name = v
	}
	if v, ok := payload.Claims["picture"].(string); ok {
		claims.Picture = v
	}
	if claims.GoogleID == "" || claims.Email == "" {
		return nil, errors.New("token missing identity claims")
	}
	return claims, nil
}
