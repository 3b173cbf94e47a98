package services

import (
	"context"
	"fmt"

	"google.golang.org/api/idtoken"
)

type googleIDTokenVerifier struct {
	audience string
}

// NewGoogleVerifier returns a verifier that validates Google ID tokens
// against the configured OAuth client id.
func NewGoogleVerifier(clientID string) IGoogleVerifier {
	return &googleIDTokenVerifier{audience: clientID}
}

func (g *googleIDTokenVerifier) Verify(ctx context.Context, credential string) (*GoogleIdentity, error) {
	payload, err := idtoken.Validate(ctx, credential, g.audience)
	if err != nil {
		return nil, fmt.Errorf("invalid Google credential: %w", err)
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		return nil, fmt.Errorf("Google credential is missing an email claim")
	}

	return &GoogleIdentity{
		Subject: payload.Subject,
		Email:   email,
		Name:    name,
	}, nil
}
