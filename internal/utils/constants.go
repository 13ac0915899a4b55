package utils

import "time"

// Application Constants
const (
	AppName    = "AutoLuxe"
	AppVersion = "1.0.0"

	// Catalog pagination: results are revealed in fixed steps
	RevealStep = 6

	// Mock mail delivery latency
	DefaultMailDelay = 1500 * time.Millisecond

	// Verification codes sent by the SMTP relay
	VerificationCodeLength = 6
)

// Response status values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error messages
const (
	ErrInternalServer   = "internal server error"
	ErrUnauthorized     = "unauthorized"
	ErrForbidden        = "forbidden"
	ErrValidationFailed = "validation failed"
)
