package config

// Application constants shared across the generator binaries
const (
	// Application Info
	AppName    = "noondeals"
	AppVersion = "1.2.0"

	// EnvPrefix namespaces all environment overrides (DEALGEN_*)
	EnvPrefix = "DEALGEN"

	// Generator Defaults
	DefaultOutputFile    = "noon_deal_sheets_generated.xlsx"
	DefaultFallbackStock = 10

	// File Paths (relative to working directory)
	DefaultLogFile = "logs/dealgen.log"
)
