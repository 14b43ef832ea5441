package economy

// Error message formats
const (
	ErrMsgListingNotFoundFmt = "%w: %s"
	ErrMsgOutOfStockFmt      = "%w: %s"
	ErrMsgBuyFundsFmt        = "buy %s for %d: %w"
	ErrMsgNotOwnedFmt        = "%w: instance %s"
	ErrMsgUnknownTemplateFmt = "%w: template %s of instance %s"
	ErrMsgDepositFmt         = "deposit %d: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgPurchased      = "Shop purchase completed"
	LogMsgPurchaseFailed = "Shop purchase rejected"
	LogMsgSold           = "Item sold"
	LogMsgDeposited      = "Funds deposited"
	LogMsgGrantRollback  = "Purchase delivery failed, refunding"
)

// Log field keys
const (
	LogFieldListing  = "listing"
	LogFieldType     = "type"
	LogFieldPrice    = "price"
	LogFieldInstance = "instance"
	LogFieldTemplate = "template"
	LogFieldAmount   = "amount"
	LogFieldBalance  = "balance"
	LogFieldError    = "error"
)
