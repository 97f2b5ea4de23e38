package constant

// Theme modes. Each compiled rule set is gated by one of them.
const (
	ModeLight = "light"
	ModeDark  = "dark"
)

// Default selectors gating the light and dark rule sets.
const (
	LightSelector = `[data-theme="light"]`
	DarkSelector  = `[data-theme="dark"]`
)
