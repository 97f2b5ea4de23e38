package color

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"
)

// Step is a discrete lightness step of a Family, from 50 (lightest) to 950 (darkest).
type Step int

// Steps lists every lightness step in ascending order.
var Steps = []Step{50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950}

// ParseStep parses a decimal step such as "200".
func ParseStep(s string) (Step, error) {
	n, err := strconv.Atoi(s)
	if err != nil || !lo.Contains(Steps, Step(n)) {
		return 0, fmt.Errorf("invalid lightness step %q", s)
	}
	return Step(n), nil
}

// Family is a named set of lightness steps with an optional bare value.
// A family with only a bare value (white) has no steps.
type Family struct {
	Name  string
	Bare  string
	Shade map[Step]string
}

// Get returns the hex value of a step.
func (f Family) Get(step Step) (string, bool) {
	v, ok := f.Shade[step]
	return v, ok
}

// HasSteps reports whether the family defines the full step scale.
func (f Family) HasSteps() bool {
	return len(f.Shade) > 0
}

func scale(values ...string) map[Step]string {
	if len(values) != len(Steps) {
		panic(fmt.Sprintf("color scale needs %d values, got %d", len(Steps), len(values)))
	}
	m := make(map[Step]string, len(Steps))
	for i, s := range Steps {
		m[s] = values[i]
	}
	return m
}

// Base color families.
var (
	WhiteFamily = Family{Name: "white", Bare: "#FFFFFF"}

	Gray = Family{Name: "gray", Shade: scale(
		"#FAFAFA", "#F4F4F5", "#E4E4E7", "#D1D1D6", "#A0A0AB", "#71717A",
		"#52525B", "#3F3F46", "#27272A", "#18181B", "#09090B",
	)}

	// Accent is indigo-inspired.
	Accent = Family{Name: "accent", Shade: scale(
		"#EEF2FF", "#E0E7FF", "#C7D2FE", "#A5B4FC", "#818CF8", "#6366F1",
		"#4F46E5", "#4338CA", "#3730A3", "#312E81", "#1E1B4B",
	)}

	GreenFamily = Family{Name: "green", Shade: scale(
		"#ECFDF5", "#D1FAE5", "#A7F3D0", "#6EE7B7", "#34D399", "#10B981",
		"#059669", "#047857", "#065F46", "#064E3B", "#022C22",
	)}

	Orange = Family{Name: "orange", Shade: scale(
		"#FFF7ED", "#FFEDD5", "#FED7AA", "#FDBA74", "#FB923C", "#F97316",
		"#EA580C", "#C2410C", "#9A3412", "#7C2D12", "#431407",
	)}

	RedFamily = Family{Name: "red", Shade: scale(
		"#FEF2F2", "#FEE2E2", "#FECACA", "#FCA5A5", "#F87171", "#EF4444",
		"#DC2626", "#B91C1C", "#991B1B", "#7F1D1D", "#450A0A",
	)}

	BlueFamily = Family{Name: "blue", Shade: scale(
		"#EFF6FF", "#DBEAFE", "#BFDBFE", "#93C5FD", "#60A5FA", "#3B82F6",
		"#2563EB", "#1D4ED8", "#1E40AF", "#1E3A8A", "#172554",
	)}

	PurpleFamily = Family{Name: "purple", Shade: scale(
		"#FAF5FF", "#F3E8FF", "#E9D5FF", "#D8B4FE", "#C084FC", "#A855F7",
		"#9333EA", "#7E22CE", "#6B21A8", "#581C87", "#3B0764",
	)}
)

// Families lists the base families in declaration order.
var Families = []Family{WhiteFamily, Gray, Accent, GreenFamily, Orange, RedFamily, BlueFamily, PurpleFamily}

// Lookup finds a base family by name.
func Lookup(name string) (Family, bool) {
	return lo.Find(Families, func(f Family) bool { return f.Name == name })
}
