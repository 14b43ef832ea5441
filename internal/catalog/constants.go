package catalog

// Schema registered for catalog documents
const SchemaName = "catalog.schema.json"

// Sort fields accepted by SortItems
const (
	SortByPrice  = "price"
	SortByRarity = "rarity"
)

// Error message formats
const (
	ErrMsgReadCatalogFailed  = "failed to read catalog file: %w"
	ErrMsgParseCatalogFailed = "failed to parse catalog: %w"
	ErrMsgSchemaFailed       = "catalog schema validation failed: %w"

	ErrFmtInvalidDefinition = "%w: catalog definition: %s"
	ErrFmtDuplicateItem     = "%w: item '%s'"
	ErrFmtDuplicateCase     = "%w: case '%s'"
	ErrFmtDuplicateListing  = "%w: shop listing '%s'"
	ErrFmtDuplicateGrant    = "%w: free grant '%s'"
	ErrFmtPoolUnknownItem   = "%w: case '%s' pool references '%s'"
	ErrFmtGrantUnknownCase  = "%w: free grant references '%s'"
	ErrFmtListingUnknownRef = "%w: shop listing '%s'"
)

// Log messages
const (
	LogMsgCatalogLoaded = "Catalog loaded"
)
