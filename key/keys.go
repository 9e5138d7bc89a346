// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Source registry - these keys extend and narrow the compiled-in list of streaming sites.
const (
	SourcesCustom  = "sources.custom"
	SourcesDefault = "sources.default"
)

// Fetching - these keys govern the single HTTP request issued per source.
const (
	FetchTimeout        = "fetch.timeout"
	FetchUserAgent      = "fetch.user_agent"
	FetchTLSFingerprint = "fetch.tls_fingerprint"
)

// Playlist output.
const (
	PlaylistPath = "playlist.path"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment.
const (
	CliColored = "cli.colored"
)
