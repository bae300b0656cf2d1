package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Authorization errors
	ErrNotAuthorized = errors.New("caller is not authorized")

	// System lifecycle errors
	ErrNotInitialized     = errors.New("system is not initialized")
	ErrAlreadyInitialized = errors.New("system is already initialized")
	ErrSystemPaused       = errors.New("system is paused")

	// Validation errors
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrInvalidGame      = errors.New("invalid game")
	ErrInvalidPlayer    = errors.New("invalid player")

	// Registry errors
	ErrAlreadyExists    = errors.New("record already exists")
	ErrUsernameTaken    = fmt.Errorf("%w: username already claimed", ErrAlreadyExists)
	ErrContractNotFound = errors.New("contract not found")
	ErrGameNotFound     = errors.New("game not found")
	ErrAdminNotFound    = errors.New("admin entry not found")

	// Player errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrProfileLocked  = errors.New("profile is locked")

	// Verification errors
	ErrVerificationNotFound    = errors.New("no verification challenge")
	ErrInvalidVerificationCode = errors.New("invalid verification code")
	ErrVerificationExpired     = errors.New("verification code expired")
	ErrAttemptsExceeded        = errors.New("verification attempts exceeded")

	// Audit log errors
	ErrAdminActionNotFound = errors.New("admin action not found")
)
