package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/nst-sdc/themekit/color"
	"github.com/nst-sdc/themekit/constant"
	"github.com/nst-sdc/themekit/key"
	"github.com/nst-sdc/themekit/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.App + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON includes the current and default values next to the description.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.TokensNamespace, constant.Namespace, "Namespace prefixed to every style variable.\nVariables are named --<namespace>-elements-<path>")
	register(key.TokensSchema, "", "Path to a token schema file (TOML).\nThe built-in schema is used when empty")
	register(key.CSSLightSelector, constant.LightSelector, "Selector gating the light rule set")
	register(key.CSSDarkSelector, constant.DarkSelector, "Selector gating the dark rule set")
	register(key.CSSEmitPrimitives, true, "Emit the primitive color namespace (families and alpha palettes) as :root variables")
	register(key.BuildOutput, "tokens.css", "Path the compiled stylesheet is written to")
	register(key.IconsDir, "icons", "Directory containing the vector icon sources")
	register(key.IconsPattern, "*.svg", "Glob pattern matched against files in icons.dir")
	register(key.IconsCollection, constant.Namespace, "Name of the icon collection")
	register(key.IconsVariant, "plain", "Status glyph variant used by CLI output.\nAvailable options are: emoji, nerd, plain")
	register(key.TerminalMode, constant.ModeDark, "Mode used when resolving the terminal theme.\nAvailable options are: light, dark")
	register(key.TerminalOverrides, []string{}, "Terminal theme overrides as role=value pairs, e.g. background=#111111.\nAn empty value clears the role")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
