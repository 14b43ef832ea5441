package quality

// Base distribution parameters. Beta(17, 3) has mean 0.85.
const (
	DefaultAlpha = 17.0
	DefaultBeta  = 3.0
)

// DefaultTailChance is the probability that a draw is replaced by an ultra-rare band value.
const DefaultTailChance = 0.005

// Report thresholds used to classify samples
const (
	ThresholdHigh  = 0.99
	ThresholdRare  = 0.9951
	ThresholdUltra = 0.999
)
