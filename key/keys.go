// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Token Compilation - these keys control how the semantic token tree is named and sourced.
const (
	TokensNamespace = "tokens.namespace"
	TokensSchema    = "tokens.schema"
)

// Style Variable Output - these keys shape the compiled stylesheet.
const (
	CSSLightSelector  = "css.light_selector"
	CSSDarkSelector   = "css.dark_selector"
	CSSEmitPrimitives = "css.emit_primitives"
)

// Build Artifacts
const (
	BuildOutput = "build.output"
)

// Icon Aggregation - these keys locate the vector icon sources and name their collection.
const (
	IconsDir        = "icons.dir"
	IconsPattern    = "icons.pattern"
	IconsCollection = "icons.collection"
	IconsVariant    = "icons.variant"
)

// Terminal Theme - these keys select the mode used when previewing a resolved terminal theme.
const (
	TerminalMode      = "terminal.mode"
	TerminalOverrides = "terminal.overrides"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment
const (
	CliColored = "cli.colored"
)
