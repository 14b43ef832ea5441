package game

// Holdings sort fields
const (
	SortByAcquired = "acquired"
	SortByPrice    = "price"
	SortByQuality  = "quality"
)

// Log messages
const (
	LogMsgRarityUpdated = "Rarity parameters updated"
)
