package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Recipe errors
	ErrMsgRecipeNotFound      = "recipe not found"
	ErrMsgUnparsableQuantity  = "failed to parse output_item_count as integer"
	ErrMsgDuplicateOutputItem = "duplicate recipe for output item"

	// Import errors
	ErrMsgImportFailed = "recipe import failed"

	// Database/System errors
	ErrMsgDatabaseError = "database error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Recipe errors
	ErrRecipeNotFound     = errors.New(ErrMsgRecipeNotFound)
	ErrUnparsableQuantity = errors.New(ErrMsgUnparsableQuantity)

	// Import errors
	ErrImportFailed = errors.New(ErrMsgImportFailed)

	// Database errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
