// Package constants provides shared constants for the bimatrix-solver application.
package constants

// None marks an absent equilibrium in rendered and serialized results.
const None = "NONE"

// Display constants
const (
	// ProbabilityDecimals is the number of decimals shown for mixed strategy probabilities
	ProbabilityDecimals = 4

	// ProbabilityTolerance is the tolerance used when comparing probabilities in checks and tests
	ProbabilityTolerance = 1e-9
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default games file name
	DefaultConfigFile = "games.yaml"

	// ExampleConfigFile is the example games file name
	ExampleConfigFile = "games.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":5000"

	// DefaultMaxRequestSizeBytes is the default maximum request body size (64 KB)
	DefaultMaxRequestSizeBytes int64 = 64 * 1024

	// DefaultShutdownTimeoutSeconds bounds graceful shutdown of the HTTP server
	DefaultShutdownTimeoutSeconds = 10

	// EnvPrefix prefixes every environment variable read by the server
	EnvPrefix = "BIMATRIX_"
)
