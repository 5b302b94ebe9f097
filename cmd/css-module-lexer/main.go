package main

import (
	"fmt"
	"os"

	"github.com/ahabhgk/css-module-lexer/internal/logger"
	"github.com/ahabhgk/css-module-lexer/pkg/api"
	"github.com/spf13/cobra"
)

var modeFlag string

var rootCmd = &cobra.Command{
	Use:   "css-module-lexer <path>",
	Short: "Print the dependencies and warnings of a CSS file",
	Long: `Runs the CSS-module-aware dependency lexer over one file and prints every
dependency (urls, @import directives, local classes, composes relations,
ICSS bindings) and every warning it produces.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := parseMode(modeFlag)
		if err != nil {
			return err
		}

		path := args[0]
		contents, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
		input := string(contents)

		dependencies, warnings := api.CollectDependencies(input, mode)

		if len(dependencies) == 0 {
			fmt.Println("No dependencies found")
		} else {
			fmt.Println("Dependencies:")
			for _, dependency := range dependencies {
				fmt.Printf("%T%+v\n", dependency, dependency)
			}
		}

		if len(warnings) == 0 {
			fmt.Println("No warnings found")
		} else {
			fmt.Println("Warnings:")
			source := logger.Source{PrettyPath: path, Contents: input}
			for _, warning := range warnings {
				r := logger.RangeBetween(warning.Range.Start, warning.Range.End)
				logger.PrintMessageToStderr(logger.Msg{
					Kind: logger.Warning,
					Data: logger.MsgData{
						Text:     warning.String(),
						Location: logger.LocationOrNil(&source, r),
					},
				})
			}
		}
		return nil
	},
}

func parseMode(name string) (api.Mode, error) {
	switch name {
	case "local":
		return api.ModeLocal, nil
	case "global":
		return api.ModeGlobal, nil
	case "pure":
		return api.ModePure, nil
	case "css":
		return api.ModeCSS, nil
	}
	return 0, fmt.Errorf("invalid mode %q (expected local, global, pure, or css)", name)
}

func main() {
	rootCmd.Flags().StringVar(&modeFlag, "mode", "css", "CSS-Modules mode: local, global, pure, or css")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
