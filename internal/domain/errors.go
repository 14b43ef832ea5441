package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Stock errors
	ErrMsgInsufficientStock = "insufficient stock"
	ErrMsgOutOfStock        = "listing is out of stock"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Catalog errors
	ErrMsgItemNotFound      = "item not found"
	ErrMsgCaseNotFound      = "case not found"
	ErrMsgListingNotFound   = "shop listing not found"
	ErrMsgEmptyPool         = "case pool is empty"
	ErrMsgDuplicateID       = "duplicate catalog id"
	ErrMsgNoOutputCandidate = "no suitable output template"

	// Case opening errors
	ErrMsgDropPending   = "a drop is awaiting a keep or sell decision"
	ErrMsgNoPendingDrop = "no drop awaiting a decision"
	ErrMsgInvalidChoice = "invalid drop choice"

	// Crafting errors
	ErrMsgInvalidMode = "invalid crafting mode"
	ErrMsgInvalidTier = "invalid success tier"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInsufficientStock = errors.New(ErrMsgInsufficientStock)
	ErrOutOfStock        = errors.New(ErrMsgOutOfStock)

	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	ErrItemNotFound      = errors.New(ErrMsgItemNotFound)
	ErrCaseNotFound      = errors.New(ErrMsgCaseNotFound)
	ErrListingNotFound   = errors.New(ErrMsgListingNotFound)
	ErrEmptyPool         = errors.New(ErrMsgEmptyPool)
	ErrDuplicateID       = errors.New(ErrMsgDuplicateID)
	ErrNoOutputCandidate = errors.New(ErrMsgNoOutputCandidate)

	ErrDropPending   = errors.New(ErrMsgDropPending)
	ErrNoPendingDrop = errors.New(ErrMsgNoPendingDrop)
	ErrInvalidChoice = errors.New(ErrMsgInvalidChoice)

	ErrInvalidMode = errors.New(ErrMsgInvalidMode)
	ErrInvalidTier = errors.New(ErrMsgInvalidTier)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
