package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"signup/internal/domain"
)

func draftCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Inspect or discard the saved registration form",
	}
	cmd.AddCommand(draftShowCmd(), draftClearCmd())
	return cmd
}

func draftShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the saved form with passwords masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			draft, ok, err := appCtx.Drafts.LoadDraft(passphrase)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !ok {
				fmt.Fprintln(out, "No saved draft.")
				return nil
			}

			fmt.Fprintf(out, "Saved %s\n", draft.SavedAt.Local().Format(time.RFC1123))
			for _, field := range domain.Fields {
				v, _ := draft.Form.Get(field)
				if field.Secret() {
					v = mask(v)
				}
				fmt.Fprintf(out, "  %-17s %s\n", field.Label()+":", v)
			}
			return nil
		},
	}
}

func draftClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the saved form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Drafts.ClearDraft(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Draft cleared.")
			return nil
		},
	}
}

// secretMask hides a saved password without hinting at its length.
const secretMask = "••••••••"

func mask(secret string) string {
	if secret == "" {
		return "(empty)"
	}
	return secretMask
}
