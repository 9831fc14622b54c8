package cli

import (
	"flowpilot/internal/model"

	"github.com/spf13/cobra"
)

func newOnboardingCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "onboarding",
		Short: "Onboarding state commands",
	}

	cmd.AddCommand(newOnboardingStatusCmd(app))
	cmd.AddCommand(newOnboardingResetCmd(app))

	return cmd
}

func newOnboardingStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether onboarding has been completed",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := settings(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			rec, ok, err := st.LoadOnboarding(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			if !ok {
				rec = model.OnboardingRecord{}
			}
			return writeOut(cmd, app, rec)
		},
	}
}

func newOnboardingResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear the onboarding record so the questionnaire runs again",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := settings(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := st.ResetOnboarding(cmd.Context()); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"reset": true})
		},
	}
}
