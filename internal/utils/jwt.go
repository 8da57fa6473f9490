package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/shopman/models"
)

// GenerateAccessToken creates a signed HMAC-SHA256 list access token.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the list the token is bound to
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//   - action:          the class of operations the token unlocks
//
// All parameters are required. Returns an error if any of them are empty,
// zero or the action is unknown.
//
// Example usage:
//
//	token, err := utils.GenerateAccessToken("shopman", listID, models.AccessEdit, 24*time.Hour, "secret")
func GenerateAccessToken(issuer, listID string, action models.AccessAction, tokenDuration time.Duration, signKey string) (models.AccessToken, error) {
	if issuer == "" || listID == "" || tokenDuration <= 0 || signKey == "" || !action.Valid() {
		return models.AccessToken{}, errors.New("invalid params for generating access token")
	}

	now := time.Now()
	expiresAt := now.Add(tokenDuration)
	claims := &models.AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   listID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Action: action,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return models.AccessToken{}, fmt.Errorf("error occurred during singing access token: %w", err)
	}

	return models.AccessToken{
		ListID:    listID,
		Action:    action,
		Token:     signed,
		ExpiresAt: expiresAt,
	}, nil
}

// ValidateAccessToken validates tokenString and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key (HS256 only)
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) and action claim presence
//
// Binding the claims to a particular list is left to the caller.
func ValidateAccessToken(tokenString, tokenSignKey, tokenIssuer string) (*models.AccessClaims, error) {
	claims := &models.AccessClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return nil, errors.New("empty subject error")
	}
	if !claims.Action.Valid() {
		return nil, fmt.Errorf("unknown token action %q", claims.Action)
	}

	return claims, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// PeekAccessToken reads the claims of a token issued by the Remote Authority
// without verifying its signature. The client cannot verify it and only uses
// the claims to know which list, action and lifetime the token covers; the
// server re-validates every token it receives.
func PeekAccessToken(tokenString string) (models.AccessToken, error) {
	claims := &models.AccessClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return models.AccessToken{}, fmt.Errorf("error occurred parsing token: %w", err)
	}
	if claims.Subject == "" || !claims.Action.Valid() {
		return models.AccessToken{}, errors.New("token does not describe a list access")
	}

	token := models.AccessToken{
		ListID: claims.Subject,
		Action: claims.Action,
		Token:  tokenString,
	}
	if claims.ExpiresAt != nil {
		token.ExpiresAt = claims.ExpiresAt.Time
	}
	return token, nil
}
