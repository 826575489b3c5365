// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

/*
Package auth implements the core identity and access management (IAM) system.

It handles credential verification, stateless JWT issuance (access + refresh
pairs), failed-login throttling (counters in Redis), and the startup admin
bootstrap.

Architecture:

  - Service: Orchestrates business logic (Login, Refresh, ResolveCaller).
  - Repository: Abstracted interfaces for Postgres (Users) and Redis (Counters).
  - Security: Leverages bcrypt hashing and HS256-signed JWTs.

Tokens are self-contained: there is no session table and no revocation list.
Expiry is the only invalidation mechanism, which keeps the hot path at a
single indexed user lookup per authenticated request.
*/
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/minhngo/folio/internal/platform/apperr"
	"github.com/minhngo/folio/internal/platform/constants"
	"github.com/minhngo/folio/internal/platform/sec"
	"github.com/minhngo/folio/pkg/uuidv7"
)

// # Contracts & Types

// TokenProvider defines the contract for issuing and verifying token pairs.
type TokenProvider interface {
	// IssuePair signs a fresh access/refresh token pair for the identity.
	IssuePair(userID, email, role string) (*sec.TokenPair, error)

	// VerifyAccess validates an access token and returns its claims.
	VerifyAccess(tokenString string) (*sec.AuthClaims, error)

	// VerifyRefresh validates a refresh token and returns its claims.
	VerifyRefresh(tokenString string) (*sec.AuthClaims, error)
}

// Service implements user authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, throttling,
// or login logic must be reviewed carefully.
type Service struct {
	userRepository    UserRepository
	attemptRepository AttemptRepository
	tokenProvider     TokenProvider
	logger            *slog.Logger
}

// NewService constructs a new auth [Service] with necessary dependencies.
func NewService(
	userRepo UserRepository,
	attemptRepo AttemptRepository,
	tokenProv TokenProvider,
	logger *slog.Logger,
) *Service {
	return &Service{
		userRepository:    userRepo,
		attemptRepository: attemptRepo,
		tokenProvider:     tokenProv,
		logger:            logger,
	}
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email     string
	Password  string
	IPAddress string
}

// LoginSession represents a successfully established authentication.
type LoginSession struct {
	Tokens *sec.TokenPair
	User   *User
}

/*
Login validates user credentials and issues a stateless token pair.

Description: Verifies identity, performs constant-time password comparison,
enforces the failed-login budget, and signs a fresh access/refresh pair.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginSession: Transport-ready token pair and user profile
  - err: Unauthorized, RateLimited, or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {
	throttleKey := throttleKey(input.Email, input.IPAddress)

	// Reject early when the budget for this email+IP is already exhausted
	attempts, err := service.attemptRepository.Count(context, throttleKey)
	if err != nil {
		// Throttle storage being down must not lock every user out
		service.logger.WarnContext(context, "login_throttle_unavailable", slog.Any("error", err))
	}
	if attempts >= constants.LoginAttemptBudget {
		return nil, apperr.RateLimited(int(constants.LoginAttemptWindow.Seconds()))
	}

	// Look up by email. Generic message to prevent enumeration.
	user, err := service.userRepository.FindByEmail(context, strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		service.recordFailure(context, throttleKey)
		return nil, apperr.Unauthorized("Invalid email or password")
	}

	// Verify password hash using bcrypt's constant-time comparison
	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		service.recordFailure(context, throttleKey)
		return nil, apperr.Unauthorized("Invalid email or password")
	}

	// Successful authentication clears the failure counter
	_ = service.attemptRepository.Reset(context, throttleKey)

	tokens, err := service.tokenProvider.IssuePair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_issue_failed: %w", err)
	}

	return &LoginSession{Tokens: tokens, User: user}, nil
}

/*
Refresh exchanges a valid refresh token for a brand-new token pair.

Description: Verifies the refresh token signature and kind, re-resolves the
user so deleted accounts cannot refresh, and signs a fresh pair. The old
refresh token stays valid until its own expiry (stateless design).

Parameters:
  - context: context.Context
  - refreshToken: string

Returns:
  - *LoginSession: New token pair and user profile
  - err: Unauthorized or signing failures
*/
func (service *Service) Refresh(context context.Context, refreshToken string) (*LoginSession, error) {
	claims, err := service.tokenProvider.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired refresh token")
	}

	// Re-resolve the account so stale tokens for removed users fail here
	user, err := service.userRepository.FindByID(context, claims.UserID)
	if err != nil {
		return nil, apperr.Unauthorized("User not found")
	}

	tokens, err := service.tokenProvider.IssuePair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("auth_service_refresh_issue_failed: %w", err)
	}

	return &LoginSession{Tokens: tokens, User: user}, nil
}

// # Caller Resolution

/*
ResolveCaller turns a bearer access token into a request-scoped caller.

Description: Used by the HTTP authentication middleware and the GraphQL
context builder. Claims are never trusted alone: the account is re-fetched
so revoked or deleted users lose access within one request.

Parameters:
  - context: context.Context
  - tokenStr: string (raw access token)

Returns:
  - *sec.Caller: Resolved identity
  - err: Unauthorized when the token or account is invalid
*/
func (service *Service) ResolveCaller(context context.Context, tokenStr string) (*sec.Caller, error) {
	claims, err := service.tokenProvider.VerifyAccess(tokenStr)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired token")
	}

	user, err := service.userRepository.FindByID(context, claims.UserID)
	if err != nil {
		return nil, apperr.Unauthorized("User not found")
	}

	return user.Caller(), nil
}

// # Admin Bootstrap

// BootstrapInput holds the seed credentials for the first admin account.
type BootstrapInput struct {
	Email    string
	Password string
	Name     string
}

/*
EnsureAdmin creates the initial ADMIN account when none exists yet.

Description: Idempotent startup hook. A fresh install gets a usable back
office without manual SQL; an existing deployment is left untouched.

Parameters:
  - context: context.Context
  - input: BootstrapInput

Returns:
  - err: Hashing or persistence failures
*/
func (service *Service) EnsureAdmin(context context.Context, input BootstrapInput) error {
	count, err := service.userRepository.CountAdmins(context)
	if err != nil {
		return fmt.Errorf("auth_service_bootstrap_count_failed: %w", err)
	}

	if count > 0 {
		return nil
	}

	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return fmt.Errorf("auth_service_bootstrap_hash_failed: %w", err)
	}

	admin := &User{
		ID:           uuidv7.New(),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: hashedPassword,
		Name:         input.Name,
		Role:         sec.RoleAdmin,
	}

	if err := service.userRepository.Create(context, admin); err != nil {
		return fmt.Errorf("auth_service_bootstrap_create_failed: %w", err)
	}

	service.logger.InfoContext(context, "admin_account_bootstrapped", slog.String("email", admin.Email))
	return nil
}

// # Internals

// recordFailure bumps the throttle counter, tolerating storage errors.
func (service *Service) recordFailure(context context.Context, key string) {
	if _, err := service.attemptRepository.Increment(context, key); err != nil {
		service.logger.WarnContext(context, "login_throttle_record_failed", slog.Any("error", err))
	}
}

// throttleKey builds the composite email+IP counter key.
func throttleKey(email, ip string) string {
	return strings.ToLower(strings.TrimSpace(email)) + ":" + ip
}
