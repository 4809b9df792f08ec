package model

import "errors"

// Common errors used across the application
var (
	// Account errors
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountExists   = errors.New("account already exists")

	// Asset errors
	ErrAssetNotFound = errors.New("asset not found")

	// Credential errors
	ErrCorruptCredential = errors.New("stored password hash is malformed")
)
