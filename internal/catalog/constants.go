package catalog

// Config file location
const (
	DefaultConfigPath = "configs/programs.json"
)

// Error message constants
const (
	ErrMsgReadConfigFileFailed = "failed to read programs config: %w"
	ErrMsgParseConfigFailed    = "failed to parse programs config: %w"
	ErrMsgConfigNil            = "config is nil"
	ErrMsgNoProgramsDefined    = "no programs defined"

	ErrFmtDuplicateProgram     = "%w: '%s'"
	ErrFmtUnknownPrerequisite  = "%w: program '%s' requires unknown program '%s'"
	ErrFmtSelfPrerequisite     = "%w: program '%s' requires itself"
	ErrFmtPrerequisiteCycle    = "%w: involving program '%s'"
)

// Log message constants
const (
	LogMsgCatalogLoaded    = "Program catalog loaded"
	LogMsgProgramSkipped   = "Skipping invalid program definition"
	LogMsgUnknownBonusStat = "Program grants bonus for unknown stat"
)
