package config

import "errors"

// Sentinel errors for configuration validation.
var (
	// ErrMissingInputDir indicates no input directory was provided.
	ErrMissingInputDir = errors.New("missing input directory")

	// ErrInvalidFontSize indicates a subtitle font size outside the valid range.
	ErrInvalidFontSize = errors.New("subtitle font size out of range")

	// ErrNoExtensions indicates the supported-format list is empty.
	ErrNoExtensions = errors.New("no video extensions configured")
)
