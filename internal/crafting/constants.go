package crafting

// Input bounds
const (
	MinInputs = 2
	MaxInputs = 8
	// UpgradeInputs is the exact input count for upgrade mode.
	UpgradeInputs = 1
)

// DefaultFeeRate is the share of the adjusted input sum charged per craft.
const DefaultFeeRate = 0.002

// MinFee is charged even when the adjusted sum rounds the fee to zero.
const MinFee = 1

// OutputRejectFactor rejects a selected template whose adjusted price exceeds
// this multiple of the target value.
const OutputRejectFactor = 4.0

// Deterministic and fusion multipliers
const (
	BaseMultiplier      = 1.0
	FusionStepPerInput  = 0.05
	SynthesizedNameFmt  = "Crafted %s"
	MixedCategoryName   = "Weapon"
	SyntheticRarityTier = 0
)

// Quality improvement caps by average input quality
// averageNoise is the largest gap between a mean and its rounded value treated
// as float error rather than a real fractional step.
const averageNoise = 1e-9

const (
	capBelow80  = 0.08
	capBelow90  = 0.05
	capBelow95  = 0.03
	capHighAvgQ = 0.02
)

// Error message formats
const (
	ErrMsgInputCountFmt      = "%s needs between %d and %d inputs (got %d)"
	ErrMsgUpgradeCountFmt    = "upgrade needs exactly %d input (got %d)"
	ErrMsgDuplicateInputFmt  = "instance %s selected more than once"
	ErrMsgNotOwnedFmt        = "instance %s is not owned"
	ErrMsgUnknownTemplateFmt = "template %s of instance %s"
	ErrMsgFeeFmt             = "craft fee %d"
)

// Log messages
const (
	LogMsgCraftRejected     = "Craft rejected"
	LogMsgCraftResolved     = "Craft resolved"
	LogMsgBurnRolledBack    = "Burn failed, inputs restored and fee refunded"
	LogMsgSynthesized       = "No catalog template fits, synthesizing output"
	LogMsgMaterializeFailed = "Craft output could not be added after inputs were burned"
)

// Log field keys
const (
	LogFieldMode        = "mode"
	LogFieldTier        = "tier"
	LogFieldInputs      = "inputs"
	LogFieldSuccess     = "success"
	LogFieldCost        = "cost"
	LogFieldTarget      = "target"
	LogFieldQuality     = "quality"
	LogFieldOutput      = "output"
	LogFieldSynthesized = "synthesized"
	LogFieldBurned      = "burned"
	LogFieldError       = "error"
)
