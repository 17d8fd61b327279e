package main

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/goliatone/go-theme"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/form"
	"github.com/goliatone/go-formfield/pkg/render"
	"github.com/goliatone/go-formfield/pkg/renderers/prompt"
	"github.com/goliatone/go-formfield/pkg/renderers/tui"
	"github.com/goliatone/go-formfield/pkg/renderers/vanilla"
)

func getRenderCmd(logger *log.Logger) *cobra.Command {
	var (
		src       sourceFlags
		page      bool
		themeName string
		variant   string
		output    string
		title     string
	)
	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Print the HTML markup for one field.",
		Example: "formfield render --fields signup.yaml --field email --error Required\n" +
			"formfield render --openapi api.yaml --component Account --page",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			state, name, err := src.state(ctx, logger)
			if err != nil {
				return err
			}
			props, err := state.Props(name)
			if err != nil {
				return err
			}

			var options render.RenderOptions
			if themeName != "" {
				options.Theme = &theme.RendererConfig{Theme: themeName, Variant: variant}
			}

			renderer, err := vanilla.New()
			if err != nil {
				return err
			}
			out, err := renderer.Render(ctx, props, options)
			if err != nil {
				return err
			}
			if page {
				if title == "" {
					title = props.Field.Label
				}
				if out, err = renderer.RenderPage(ctx, title, out, options); err != nil {
					return err
				}
			}

			if output != "" {
				if err := os.WriteFile(output, out, 0o644); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
				logger.Info("field written", "field", name, "path", output)
				return nil
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	src.bind(renderCmd)
	renderCmd.Flags().BoolVar(&page, "page", false, "wrap the fragment in a standalone HTML page with the stylesheet")
	renderCmd.Flags().StringVar(&title, "title", "", "page title used with --page (defaults to the field label)")
	renderCmd.Flags().StringVar(&themeName, "theme", "", "theme name emitted as data-theme")
	renderCmd.Flags().StringVar(&variant, "variant", "", "theme variant emitted as data-theme-variant")
	renderCmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	return renderCmd
}

func getPromptCmd(logger *log.Logger) *cobra.Command {
	var (
		src      sourceFlags
		attempts int
	)
	promptCmd := &cobra.Command{
		Use:   "prompt",
		Short: "Ask for one field in the terminal and validate the answer.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			state, name, err := src.state(ctx, logger)
			if err != nil {
				return err
			}
			spec, _ := state.Schema().Field(name)
			rules := form.NewRuleValidator()

			props, err := state.Props(name)
			if err != nil {
				return err
			}
			renderer := prompt.New(
				prompt.WithPromptDriver(prompt.NewSurveyDriver(cmd.ErrOrStderr())),
				prompt.WithMaxAttempts(attempts),
				prompt.WithChecker(func(value string) field.Feedback {
					return rules.ValidateField(spec, value)
				}),
			)
			if _, err := renderer.Render(ctx, props, render.RenderOptions{}); err != nil {
				return err
			}
			return printValue(cmd, state, name)
		},
	}
	src.bind(promptCmd)
	promptCmd.Flags().IntVar(&attempts, "attempts", 3, "maximum number of answers before giving up")
	return promptCmd
}

func getEditCmd(logger *log.Logger) *cobra.Command {
	var src sourceFlags
	editCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit one field interactively with live validation.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			state, name, err := src.state(ctx, logger, form.WithMode(form.ModeChange))
			if err != nil {
				return err
			}
			unsubscribe := state.Subscribe(func(event form.Event) {
				logger.Debug("field event", "kind", event.Kind, "field", event.Field)
			})
			defer unsubscribe()

			props, err := state.Props(name)
			if err != nil {
				return err
			}
			if _, err := tui.Run(ctx, props, tui.WithSource(func() (field.Props, error) {
				return state.Props(name)
			})); err != nil {
				return err
			}
			if !state.Validate() {
				logger.Warn("field is invalid", "field", name, "error", state.Errors()[name])
			}
			return printValue(cmd, state, name)
		},
	}
	src.bind(editCmd)
	return editCmd
}

func getKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the supported input kinds.",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, kind := range field.Kinds() {
				suffix := ""
				if kind == field.DefaultKind {
					suffix = " (default)"
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", kind, suffix); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func printValue(cmd *cobra.Command, state *form.State, name string) error {
	value, _ := state.Value(name)
	if spec, ok := state.Schema().Field(name); ok && spec.InputKind().Masked() {
		value = strings.Repeat("*", utf8.RuneCountInString(value))
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), value)
	return err
}
