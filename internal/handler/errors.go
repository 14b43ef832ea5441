package handler

// Request-level error messages
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Request validation failed"
	ErrMsgMissingPathParam      = "Missing path parameter: %s"
	ErrMsgInvalidQueryParam     = "Invalid query parameter: %s"
)

// User-facing messages for domain errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgDropPendingError     = "Keep or sell your current drop first"
	ErrMsgNoPendingDropError   = "There is no drop to keep or sell"
	ErrMsgInvalidChoiceError   = "Choice must be keep or sell"
	ErrMsgInsufficientFundsErr = "Not enough money"
	ErrMsgInsufficientStockErr = "You don't own that"
	ErrMsgOutOfStockError      = "That listing is sold out"
	ErrMsgEmptyPoolError       = "That case has nothing in it"
	ErrMsgCaseNotFoundError    = "Case not found"
	ErrMsgItemNotFoundError    = "Item not found"
	ErrMsgListingNotFoundError = "Shop listing not found"
	ErrMsgInvalidModeError     = "Unknown crafting mode"
	ErrMsgInvalidTierError     = "Success tier must be 50, 35, 25 or 10"
	ErrMsgInvalidInputError    = "Invalid request. Please check your inputs."
	ErrMsgNoOutputCandidateErr = "No item can be crafted from that"
)

// Log messages
const (
	LogMsgDecodeFailed     = "Failed to decode request"
	LogMsgValidationFailed = "Request validation failed"
	LogMsgEncodeFailed     = "Failed to encode JSON response"
	LogMsgWriteFailed      = "Failed to write response buffer"
	LogMsgServiceError     = "Service call failed"
	LogMsgRarityRetuned    = "Rarity parameters replaced via admin API"
)
