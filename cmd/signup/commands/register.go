package commands

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"signup/internal/domain"
	"signup/internal/form"
	"signup/internal/tui"
)

var (
	errNotRegistered   = errors.New("account not created")
	errFormHasProblems = errors.New("form has validation errors")
)

// fieldFlags maps each form field to the flag that can pre-fill it.
var fieldFlags = map[domain.Field]string{
	domain.FieldFirstName:       "first-name",
	domain.FieldLastName:        "last-name",
	domain.FieldEmail:           "email",
	domain.FieldPassword:        "password",
	domain.FieldConfirmPassword: "confirm-password",
}

func registerCmd() *cobra.Command {
	var (
		batch  bool
		values domain.RegistrationForm
	)
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Fill in and submit the registration form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			initial, drafts := prefill(cmd, values)
			holder := appCtx.NewHolder()
			holder.Load(initial)

			if batch {
				return runBatch(cmd, holder, drafts)
			}
			return runInteractive(cmd, holder, drafts)
		},
	}
	cmd.Flags().BoolVar(&batch, "batch", false, "submit the flag values once instead of opening the form")
	cmd.Flags().StringVar(&values.FirstName, fieldFlags[domain.FieldFirstName], "", "first name")
	cmd.Flags().StringVar(&values.LastName, fieldFlags[domain.FieldLastName], "", "last name")
	cmd.Flags().StringVar(&values.Email, fieldFlags[domain.FieldEmail], "", "email address")
	cmd.Flags().StringVar(&values.Password, fieldFlags[domain.FieldPassword], "", "password")
	cmd.Flags().StringVar(&values.ConfirmPassword, fieldFlags[domain.FieldConfirmPassword], "", "password confirmation")
	return cmd
}

// prefill starts from the saved draft, if any, and lets explicit flags win.
// drafts reports whether this run may save or clear the draft: never without
// a passphrase, and never when the existing draft could not be opened with it.
func prefill(cmd *cobra.Command, flagValues domain.RegistrationForm) (values domain.RegistrationForm, drafts bool) {
	if passphrase != "" {
		drafts = true
		draft, ok, err := appCtx.Drafts.LoadDraft(passphrase)
		switch {
		case err != nil:
			drafts = false
			appCtx.Log.WithError(err).Warn("Ignoring saved draft")
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: could not open saved draft, leaving it untouched: %v\n", err)
		case ok:
			appCtx.Log.WithField("saved_at", draft.SavedAt).Debug("Resuming saved draft")
			values = draft.Form
		}
	}
	for field, name := range fieldFlags {
		if cmd.Flags().Changed(name) {
			v, _ := flagValues.Get(field)
			values.Set(field, v)
		}
	}
	return values, drafts
}

func runBatch(cmd *cobra.Command, holder *form.Holder, drafts bool) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	outcome := holder.Submit(cmd.Context())
	switch outcome.Kind {
	case domain.OutcomeRegistered:
		fmt.Fprintln(out, outcome.Message)
		return persistDraft(errOut, drafts, true, holder.Values())
	case domain.OutcomeInvalid:
		printFieldErrors(errOut, outcome.Errors)
		if err := persistDraft(errOut, drafts, false, holder.Values()); err != nil {
			return err
		}
		return errFormHasProblems
	default:
		if err := persistDraft(errOut, drafts, false, holder.Values()); err != nil {
			return err
		}
		return fmt.Errorf("%w: %s", errNotRegistered, outcome.Message)
	}
}

func runInteractive(cmd *cobra.Command, holder *form.Holder, drafts bool) error {
	program := tea.NewProgram(
		tui.New(cmd.Context(), holder),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("run form: %w", err)
	}

	registered := false
	if m, ok := final.(tui.Model); ok {
		registered = m.Registered()
	}
	return persistDraft(cmd.ErrOrStderr(), drafts, registered, holder.Values())
}

// persistDraft clears the draft after a registration and otherwise keeps
// whatever is left in the form for next time.
func persistDraft(w io.Writer, enabled, registered bool, values domain.RegistrationForm) error {
	if !enabled {
		return nil
	}
	if registered || values.IsZero() {
		return appCtx.Drafts.ClearDraft()
	}
	if err := appCtx.Drafts.SaveDraft(passphrase, values); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	fmt.Fprintln(w, "Form saved as a draft; run register again with the same passphrase to continue.")
	return nil
}

func printFieldErrors(w io.Writer, errs domain.ValidationErrors) {
	for _, field := range errs.Fields() {
		fmt.Fprintf(w, "%s: %s\n", field.Label(), errs[field])
	}
}
