package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"signup/internal/app"
)

var (
	home       string
	passphrase string
	endpoint   string
	logFile    string
	envFile    string
	debug      bool
	timeout    = app.DefaultTimeout
	appCtx     *app.Wire
)

func Execute() error {
	return execute(newRootCmd())
}

// execute runs root and releases the app context however the command ended.
func execute(root *cobra.Command) error {
	appCtx = nil
	err := root.Execute()
	if appCtx != nil {
		if cerr := appCtx.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "signup",
		Short:        "Create an account on an authentication service",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := app.LoadEnv(envFile); err != nil {
				return err
			}
			cfg := app.Config{
				Home:        home,
				Endpoint:    endpoint,
				Timeout:     timeout,
				LogFile:     logFile,
				Debug:       debug,
				LogToStderr: !interactive(cmd),
			}
			if err := cfg.ApplyEnv(cmd.Flags().Changed); err != nil {
				return err
			}
			if cfg.Home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				cfg.Home = filepath.Join(dir, ".signup")
			}
			if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
				return err
			}

			w, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			appCtx = w
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.signup)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the saved draft (drafts are off when empty)")
	root.PersistentFlags().StringVar(&endpoint, "endpoint", app.DefaultEndpoint, "registration service base URL")
	root.PersistentFlags().DurationVar(&timeout, "timeout", app.DefaultTimeout, "give up on the registration request after this long")
	root.PersistentFlags().StringVar(&logFile, "log-file", "", "append JSON logs to this file")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "log at debug level")
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "load SIGNUP_* settings from this file if it exists")

	root.AddCommand(registerCmd(), draftCmd())
	return root
}

// interactive reports whether cmd will take over the terminal.
func interactive(cmd *cobra.Command) bool {
	if cmd.Name() != "register" {
		return false
	}
	batch, err := cmd.Flags().GetBool("batch")
	return err == nil && !batch
}
