package bootstrap

// File system permissions
const (
	DirPermission = 0755
)

// Logger messages
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting CaseForge"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
)

// Event system messages
const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	ErrMsgFailedCreateDeadLetterDir  = "failed to create dead-letter directory"
	ErrMsgFailedOpenDeadLetter       = "failed to open dead-letter file"
)

// Engine assembly messages
const (
	LogMsgEngineReady         = "Engine ready"
	ErrMsgFailedCatalogLoader = "failed to create catalog loader"
	ErrMsgFailedLoadCatalog   = "failed to load catalog"
	ErrMsgFailedLoadTuning    = "failed to load tuning"
	ErrMsgFailedQuality       = "failed to create quality generator"
	ErrMsgFailedRarity        = "failed to create rarity weighter"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgDeadLetterCloseFailed      = "Dead-letter file close failed"
)
