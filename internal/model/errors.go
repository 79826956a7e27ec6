package model

import "errors"

var (
	// ErrStubNotFound is returned when a named stub file does not exist.
	ErrStubNotFound = errors.New("stub not found")

	// ErrInvalidStubName is returned for names that are not a plain *.tex base name.
	ErrInvalidStubName = errors.New("invalid stub name")

	// ErrApplicationIncomplete is returned when company, role or job description is missing.
	ErrApplicationIncomplete = errors.New("company, role and job description are required")
)
