package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pfrederiksen/summit-invite/internal/logger"
	"github.com/pfrederiksen/summit-invite/internal/signup"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// swapped in tests
var (
	now        = time.Now
	newBrowser = func(opts signup.ChromeOptions) (signup.Browser, error) {
		return signup.NewChrome(opts)
	}
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var (
		verbose  bool
		logLevel string
	)

	cmd := &cobra.Command{
		Use:   "summit-invite",
		Short: "Create a calendar invite for the AI Engineer Summit and sign up on its website",
		Long: `summit-invite writes an iCalendar (.ics) file for the AI Engineer Summit 2025,
or for an event described on the command line, and can drive a headless
browser to fill in the email signup form on the summit website.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logger.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			if verbose {
				level = logger.LevelDebug
			}
			logger.SetDefault(logger.New(level, cmd.ErrOrStderr()))
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", envOr(envLogLevel, "warn"), "Log level: debug, info, warn or error")

	cmd.AddCommand(
		newShowCmd(),
		newGenerateCmd(),
		newAutomateCmd(),
		newInspectCmd(),
		newVerifyCmd(),
		newBookmarkletCmd(),
	)

	return cmd
}

// Execute runs the CLI
func Execute() {
	// A missing .env is fine
	_ = godotenv.Load()

	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
