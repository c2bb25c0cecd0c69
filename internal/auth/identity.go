// Package auth decodes sign-in credentials and manages in-memory sessions.
package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bobmcallan/stockwise/internal/models"
)

// DemoCredential is the credential the dashboard sends when sign-in is
// bypassed for demos. It resolves to the guest identity.
const DemoCredential = "MOCK_TOKEN_FOR_DEMO"

// ErrIdentityDecode is returned for credentials that cannot be decoded.
var ErrIdentityDecode = errors.New("identity decode failed")

// GuestIdentity is used for empty and demo credentials.
var GuestIdentity = models.ParsedIdentity{
	Name:  "Guest",
	Email: "guest@example.com",
}

// googleClaims is the subset of a Google ID token payload the dashboard uses.
type googleClaims struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
	jwt.RegisteredClaims
}

// DecodeCredential decodes the payload of a Google sign-in JWT.
// The signature is NOT verified; the identity provider boundary owns that.
func DecodeCredential(credential string) (models.ParsedIdentity, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" || credential == DemoCredential {
		return GuestIdentity, nil
	}

	var claims googleClaims
	if _, _, err := jwt.NewParser().ParseUnverified(credential, &claims); err != nil {
		return models.ParsedIdentity{}, fmt.Errorf("%w: %v", ErrIdentityDecode, err)
	}

	id := models.ParsedIdentity{
		Subject: claims.Subject,
		Name:    claims.Name,
		Email:   claims.Email,
		Picture: claims.Picture,
	}
	if id.Name == "" {
		id.Name = "Google User"
	}
	if id.Email == "" {
		id.Email = "user@google.com"
	}
	return id, nil
}

// UserID derives the session user ID from the credential: its first 10
// characters, or "guest-id" when there is none.
func UserID(credential string) string {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return "guest-id"
	}
	if len(credential) > 10 {
		return credential[:10]
	}
	return credential
}

// NewUser builds the session user for an identity. isAdmin decides the role;
// the watchlist is copied from seed.
func NewUser(id models.ParsedIdentity, userID string, isAdmin bool, seed []models.Stock) models.User {
	role := models.RoleUser
	if isAdmin {
		role = models.RoleAdmin
	}
	wl := make([]models.Stock, len(seed))
	for i, s := range seed {
		wl[i] = s.Clone()
	}
	return models.User{
		ID:        userID,
		Name:      id.Name,
		Email:     id.Email,
		Picture:   id.Picture,
		Role:      role,
		Watchlist: wl,
	}
}
