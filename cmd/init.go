package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/nst-sdc/themekit/color"
	"github.com/nst-sdc/themekit/filesystem"
	"github.com/nst-sdc/themekit/icon"
	"github.com/nst-sdc/themekit/key"
	"github.com/nst-sdc/themekit/log"
	"github.com/nst-sdc/themekit/style"
	"github.com/nst-sdc/themekit/token"
	"github.com/nst-sdc/themekit/where"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolP("yes", "y", false, "Accept the defaults without prompting")
	initCmd.SetOut(os.Stdout)
}

type initAnswers struct {
	Namespace string `survey:"namespace"`
	Output    string `survey:"output"`
	Schema    bool   `survey:"schema"`
}

// initCmd writes a config file and, optionally, an editable copy of the built-in schema.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a config file and an editable token schema",
	Run: func(cmd *cobra.Command, args []string) {
		answers := initAnswers{
			Namespace: viper.GetString(key.TokensNamespace),
			Output:    viper.GetString(key.BuildOutput),
			Schema:    true,
		}

		if !lo.Must(cmd.Flags().GetBool("yes")) {
			handleErr(survey.Ask([]*survey.Question{
				{
					Name:     "namespace",
					Prompt:   &survey.Input{Message: "Variable namespace", Default: answers.Namespace},
					Validate: survey.Required,
				},
				{
					Name:     "output",
					Prompt:   &survey.Input{Message: "Stylesheet output path", Default: answers.Output},
					Validate: survey.Required,
				},
				{
					Name: "schema",
					Prompt: &survey.Confirm{
						Message: "Copy the built-in token schema so it can be edited?",
						Default: answers.Schema,
					},
				},
			}, &answers))
		}

		viper.Set(key.TokensNamespace, answers.Namespace)
		viper.Set(key.BuildOutput, answers.Output)

		if answers.Schema {
			path := filepath.Join(where.Schemas(), "tokens.toml")
			exists, err := afero.Exists(filesystem.API(), path)
			handleErr(err)

			if exists {
				cmd.Printf("%s %s already exists, keeping it\n", icon.Get(icon.Skip), path)
			} else {
				handleErr(afero.WriteFile(filesystem.API(), path, token.DefaultSchemaSource(), 0o644))
				cmd.Printf("%s wrote schema to %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(path))
			}

			viper.Set(key.TokensSchema, path)
		}

		handleErr(writeConfig())
		log.Infof("initialized config in %s", where.Config())

		cmd.Printf(
			"%s wrote config to %s\n%s run %s to compile\n",
			icon.Get(icon.Success),
			style.Fg(color.Yellow)(configFile()),
			icon.Get(icon.Arrow),
			style.Bold(fmt.Sprintf("%s build", rootCmd.Name())),
		)
	},
}
