package domain

// Quality domain bounds
const (
	MinQuality = 0.0
	// MaxQuality is the largest representable quality; values are kept strictly below 1.0.
	MaxQuality = 0.999999
	// QualityPrecision is the number of decimal digits quality values are rounded to.
	QualityPrecision = 6
)

// Default category assigned to synthesized items when inputs are mixed
const DefaultCraftCategory = "weapon"

// SyntheticIDPrefix prefixes ids of templates synthesized by crafting
const SyntheticIDPrefix = "crafted_"
