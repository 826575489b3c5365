// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer.
package sec

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token kinds embedded in the 'tkn' claim. Verification checks the kind so
// an access token can never be replayed as a refresh token and vice versa.
const (
	tokenKindAccess  = "access"
	tokenKindRefresh = "refresh"
)

// AuthClaims represents the payload embedded inside a Folio JWT.
//
// # Why custom claims?
//
// Embedding the UserID, Email, and Role keeps the identity self-describing,
// but claims are never trusted alone: the caller is re-resolved against the
// user repository on every request so revoked accounts lose access.
type AuthClaims struct {
	jwt.RegisteredClaims

	// Custom application claims are abbreviated to keep the JWT payload small.
	UserID string `json:"uid"`
	Email  string `json:"eml"`
	Role   string `json:"rol"`
	Kind   string `json:"tkn"`
}

// TokenPair bundles a freshly issued access/refresh token couple.
type TokenPair struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	AccessExpiry time.Time `json:"access_expiry"`
}

// TokenService signs and verifies JWTs using HS256.
//
// Access and refresh tokens are signed with distinct secrets. The service is
// stateless: there is no revocation list, expiry is the only invalidation
// mechanism.
type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	issuer        string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewTokenService creates a new TokenService.
//
// Both secrets are required and must differ; reusing one secret for both
// token kinds would collapse the access/refresh distinction.
func NewTokenService(accessSecret, refreshSecret, issuer string, accessTTL, refreshTTL time.Duration) (*TokenService, error) {
	if accessSecret == "" || refreshSecret == "" {
		return nil, fmt.Errorf("sec: both JWT secrets are required")
	}

	if accessSecret == refreshSecret {
		return nil, fmt.Errorf("sec: access and refresh secrets must be distinct")
	}

	return &TokenService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		issuer:        issuer,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}, nil
}

// IssuePair signs a new access/refresh token pair for the given identity.
func (service *TokenService) IssuePair(userID, email, role string) (*TokenPair, error) {
	currentTime := time.Now()
	accessExpiry := currentTime.Add(service.accessTTL)

	accessToken, err := service.sign(userID, email, role, tokenKindAccess, service.accessSecret, currentTime, accessExpiry)
	if err != nil {
		return nil, fmt.Errorf("sec: failed to sign access token: %w", err)
	}

	refreshToken, err := service.sign(userID, email, role, tokenKindRefresh, service.refreshSecret, currentTime, currentTime.Add(service.refreshTTL))
	if err != nil {
		return nil, fmt.Errorf("sec: failed to sign refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		AccessExpiry: accessExpiry,
	}, nil
}

// VerifyAccess checks the signature, expiry, and kind of an access token.
func (service *TokenService) VerifyAccess(tokenString string) (*AuthClaims, error) {
	return service.verify(tokenString, tokenKindAccess, service.accessSecret)
}

// VerifyRefresh checks the signature, expiry, and kind of a refresh token.
func (service *TokenService) VerifyRefresh(tokenString string) (*AuthClaims, error) {
	return service.verify(tokenString, tokenKindRefresh, service.refreshSecret)
}

// sign builds and signs a single token with the given secret and window.
func (service *TokenService) sign(userID, email, role, kind string, secret []byte, issuedAt, expiresAt time.Time) (string, error) {
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID: userID,
		Email:  email,
		Role:   role,
		Kind:   kind,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// verify parses a token string and validates signature, validity, and kind.
func (service *TokenService) verify(tokenString, kind string, secret []byte) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("sec: invalid token claims")
	}

	if claims.Kind != kind {
		return nil, fmt.Errorf("sec: wrong token kind: expected %s", kind)
	}

	return claims, nil
}
