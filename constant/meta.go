// Package constant defines immutable application-level identifiers and build defaults.
package constant

const (
	// App is the canonical application identifier used for filesystem paths and CLI branding.
	App = "themekit"

	// Version is the current application semantic version string.
	Version = "0.3.0"

	// Namespace prefixes every compiled style variable and names the default icon collection.
	Namespace = "nst-sdc"
)

// Build metadata, overridden through -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
