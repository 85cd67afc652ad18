package domain

import "errors"

var (
	ErrNoToken      = errors.New("no session token")
	ErrInvalidToken = errors.New("invalid session token")
	ErrTokenExpired = errors.New("session token expired")

	ErrInvalidRole = errors.New("invalid role: must be STUDENT or RECRUITER")
	ErrValidation  = errors.New("validation failed")

	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("access forbidden")
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("resource conflict")
	ErrServer       = errors.New("server error")
	ErrNetwork      = errors.New("network failure")
)
