// Package cli implements the command-line interface for summit-invite.
//
// The Cobra root command offers show, generate, automate, inspect, verify and
// bookmarklet subcommands. Flags default from SUMMIT_* environment variables,
// which may also come from a .env file in the working directory.
package cli
