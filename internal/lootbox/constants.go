package lootbox

// Log messages
const (
	LogMsgCaseOpened   = "Case opened"
	LogMsgDropKept     = "Drop kept"
	LogMsgDropSold     = "Drop sold"
	LogMsgOpenRejected = "Case opening rejected"
)

// Log field keys
const (
	LogFieldCase     = "case_id"
	LogFieldTemplate = "template_id"
	LogFieldQuality  = "quality"
	LogFieldPrice    = "adjusted_price"
	LogFieldCredited = "credited"
	LogFieldError    = "error"
)
