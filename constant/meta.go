// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// M3ugen is the canonical application identifier used for filesystem paths and CLI branding.
	M3ugen = "m3ugen"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// UserAgent is the default HTTP User-Agent string sent to streaming sites.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// DefaultPlaylist is the output file written to the working directory when no path is configured.
	DefaultPlaylist = "playlist.m3u"

	// DefaultTimeoutSeconds bounds a single source fetch.
	DefaultTimeoutSeconds = 20
)

// Build metadata, overridden with -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
