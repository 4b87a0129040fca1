package commands

import (
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"go.trai.ch/screener/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the analysis settings",
	}
	cmd.AddCommand(c.newSettingsGetCmd(), c.newSettingsSetCmd())
	return cmd
}

func (c *CLI) newSettingsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the analysis settings and available models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := c.app.Settings(cmd.Context())
			if err != nil {
				return err
			}
			return c.emit(cmd, s, func(w io.Writer) {
				_, _ = fmt.Fprintf(w, "Model:       %s\n", s.Settings.OllamaModel)
				_, _ = fmt.Fprintf(w, "Temperature: %.2f\n", s.Settings.Temperature)
				_, _ = fmt.Fprintf(w, "Connected:   %t\n", s.OllamaConnected)
				_, _ = fmt.Fprintf(w, "Available:   %s\n", joinOrDash(s.AvailableModels))
			})
		},
	}
}

func (c *CLI) newSettingsSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change the analysis settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			current, err := c.app.Settings(cmd.Context())
			if err != nil {
				return err
			}

			next := current.Settings
			flags := cmd.Flags()
			if flags.Changed("model") {
				next.OllamaModel, _ = flags.GetString("model")
			}
			if flags.Changed("temperature") {
				next.Temperature, _ = flags.GetFloat64("temperature")
			}
			if flags.Changed("system-prompt") {
				next.SystemPrompt, _ = flags.GetString("system-prompt")
			}
			if err := validator.New().Struct(next); err != nil {
				return zerr.Wrap(err, domain.ErrInvalidInput.Error())
			}

			saved, err := c.app.UpdateSettings(cmd.Context(), next)
			if err != nil {
				return err
			}
			return c.emit(cmd, saved, func(w io.Writer) {
				_, _ = fmt.Fprintf(w, "saved settings: model %s, temperature %.2f\n", saved.OllamaModel, saved.Temperature)
			})
		},
	}
	cmd.Flags().String("model", "", "Ollama model used for analysis")
	cmd.Flags().Float64("temperature", 0, "Sampling temperature (0-2)")
	cmd.Flags().String("system-prompt", "", "System prompt sent with every analysis")
	return cmd
}
