package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/swiftticket/swiftticket/internal/interfaces/cli/bot"
	"github.com/swiftticket/swiftticket/internal/interfaces/cli/migrate"
	"github.com/swiftticket/swiftticket/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "swiftticket",
		Short:   "SwiftTicket - support tickets for Discord",
		Long:    `SwiftTicket runs a Discord support-ticket bot with private ticket channels, staff claiming, transcripts and lightweight moderation.`,
		Version: version.String(),
	}

	rootCmd.AddCommand(
		bot.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
